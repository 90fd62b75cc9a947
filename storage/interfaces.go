package storage

import "rera-scraper/models"

// RecordWriter is the interface any output backend must satisfy.
type RecordWriter interface {
	WriteRecords(records []*models.ProjectRecord) error
	Close() error
}
