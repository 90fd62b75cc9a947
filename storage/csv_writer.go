package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"rera-scraper/models"
)

// Header is the fixed CSV column order. The output always has exactly these
// five columns, one row per record, in discovery order.
var Header = []string{
	"Project Name",
	"Rera Regd. No",
	"Promoter Name",
	"Address of the Promoter",
	"GST No",
}

// CSVWriter writes project records to a CSV file. It is safe for concurrent
// use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row, so a previous run's output is always replaced.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRecords appends one row per record, preserving order. Empty cells are
// backstopped with the placeholder so a row never carries a blank field.
func (c *CSVWriter) WriteRecords(records []*models.ProjectRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		row := []string{
			cell(r.ProjectName),
			cell(r.ReraRegdNo),
			cell(r.PromoterName),
			cell(r.PromoterAddress),
			cell(r.GSTNo),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func cell(v string) string {
	if v == "" {
		return models.Placeholder
	}
	return v
}
