package models

import "time"

// Placeholder is written for any field whose value could not be located on
// the page. A CSV cell is never left empty.
const Placeholder = "--"

// ProjectRecord is one normalized row of registration details for a single
// RERA project. All five display fields are either a non-empty trimmed
// string or Placeholder. SourceURL and ScrapedAt are kept for logging and
// never written to the CSV.
type ProjectRecord struct {
	ProjectName     string
	ReraRegdNo      string
	PromoterName    string
	PromoterAddress string
	GSTNo           string

	SourceURL string
	ScrapedAt time.Time
}

// NewPlaceholderRecord returns a record with every field set to Placeholder,
// used when a detail page cannot be loaded at all.
func NewPlaceholderRecord(sourceURL string) *ProjectRecord {
	return &ProjectRecord{
		ProjectName:     Placeholder,
		ReraRegdNo:      Placeholder,
		PromoterName:    Placeholder,
		PromoterAddress: Placeholder,
		GSTNo:           Placeholder,
		SourceURL:       sourceURL,
		ScrapedAt:       time.Now(),
	}
}

// Complete reports whether every display field holds a real value.
func (r *ProjectRecord) Complete() bool {
	for _, v := range []string{r.ProjectName, r.ReraRegdNo, r.PromoterName, r.PromoterAddress, r.GSTNo} {
		if v == "" || v == Placeholder {
			return false
		}
	}
	return true
}
