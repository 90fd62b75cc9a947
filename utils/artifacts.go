package utils

import (
	"os"
	"path/filepath"
	"sync"
)

// ArtifactTracker records diagnostic files (page snapshots, screenshots)
// written during a run so they can all be removed before the process exits,
// whether or not extraction succeeded.
type ArtifactTracker struct {
	mu     sync.Mutex
	logger *Logger
	dir    string
	paths  []string
}

// NewArtifactTracker creates a tracker rooted at dir ("." for the working
// directory).
func NewArtifactTracker(dir string, logger *Logger) *ArtifactTracker {
	if dir == "" {
		dir = "."
	}
	return &ArtifactTracker{logger: logger, dir: dir}
}

// SaveHTML writes a page snapshot and registers it for cleanup.
func (a *ArtifactTracker) SaveHTML(name, html string) error {
	return a.save(name, []byte(html))
}

// SavePNG writes a screenshot and registers it for cleanup.
func (a *ArtifactTracker) SavePNG(name string, data []byte) error {
	return a.save(name, data)
}

func (a *ArtifactTracker) save(name string, data []byte) error {
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	a.mu.Lock()
	a.paths = append(a.paths, path)
	a.mu.Unlock()

	if a.logger != nil {
		a.logger.Debug("[artifacts] Saved %s", path)
	}
	return nil
}

// Cleanup removes every tracked file. Failures are logged and skipped so one
// stubborn file never blocks the rest of the sweep.
func (a *ArtifactTracker) Cleanup() {
	a.mu.Lock()
	paths := a.paths
	a.paths = nil
	a.mu.Unlock()

	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			if a.logger != nil {
				a.logger.Warn("[artifacts] Could not delete %s: %v", path, err)
			}
			continue
		}
		if a.logger != nil {
			a.logger.Info("[artifacts] Deleted %s", path)
		}
	}
}

// Count returns the number of artifacts currently tracked.
func (a *ArtifactTracker) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.paths)
}
