package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerFileSinkHasNoANSIEscapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraper.log")

	l := NewLogger(path)
	l.Info("listing collected %d references", 6)
	l.Warn("field %q fell back to placeholder", "GST No")
	l.Error("detail page failed: %v", "timeout")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "\033[") {
		t.Error("log file contains ANSI escape sequences")
	}
	for _, want := range []string{"INFO", "WARN", "ERROR", "fell back to placeholder"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}
}

func TestLoggerWithoutFileSink(t *testing.T) {
	l := NewLogger("")
	l.Info("no file sink") // must not panic
	if err := l.Close(); err != nil {
		t.Errorf("Close on sinkless logger: %v", err)
	}
}
