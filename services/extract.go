package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"rera-scraper/models"
	"rera-scraper/utils"
)

// Extractor resolves labeled values out of a rendered page snapshot. The same
// semantic field is labeled differently depending on the promoter type
// ("Company Name" vs "Propietory Name"), so each field carries an ordered
// list of label variants and the first one with a real value wins.
type Extractor struct {
	logger *utils.Logger
}

// NewExtractor creates an Extractor with the given logger.
func NewExtractor(logger *utils.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ParseSnapshot parses a DOM snapshot returned by the browser into a
// queryable document.
func ParseSnapshot(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("extract: parse snapshot: %w", err)
	}
	return doc, nil
}

// Field looks up a semantic field by its label variants and returns the
// normalized value, or the placeholder when every variant misses. Fallbacks
// are logged so the log file can distinguish "absent on page" from a real
// value of "--" in the CSV.
func (e *Extractor) Field(doc *goquery.Document, field string, labels []string) string {
	value, ok := e.Lookup(doc, labels)
	if !ok && e.logger != nil {
		e.logger.Warn("[extract] No value found for %q (tried labels %v) — using placeholder", field, labels)
	}
	return value
}

// Lookup tries each candidate label in order and returns the first non-empty,
// non-placeholder value. ok is false when no candidate yielded a value; the
// returned string is then the placeholder.
func (e *Extractor) Lookup(doc *goquery.Document, labels []string) (string, bool) {
	for _, label := range labels {
		if value, ok := labeledValue(doc, label); ok {
			return value, true
		}
	}
	return models.Placeholder, false
}

// labeledValue finds the value element paired with one label variant. Two
// markups occur on the detail pages: promoter panels pair a <label> with a
// <strong> inside the same wrapper div, and the overview panel nests a
// <strong> under a div.details-project whose text carries the label.
func labeledValue(doc *goquery.Document, label string) (string, bool) {
	want := normalizeLabel(label)
	var value string
	var found bool

	doc.Find("label").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if normalizeLabel(sel.Text()) != want {
			return true
		}
		if v := NormalizeText(sel.Parent().Find("strong").First().Text()); usable(v) {
			value, found = v, true
			return false
		}
		return true
	})
	if found {
		return value, true
	}

	doc.Find("div.details-project").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(normalizeLabel(sel.Text()), want) {
			return true
		}
		if v := NormalizeText(sel.Find("strong").First().Text()); usable(v) {
			value, found = v, true
			return false
		}
		return true
	})

	return value, found
}

func usable(v string) bool {
	return v != "" && v != models.Placeholder
}

// normalizeLabel canonicalizes label text for comparison: whitespace
// collapsed, trailing colon stripped, case-insensitive.
func normalizeLabel(s string) string {
	s = strings.ToLower(NormalizeText(s))
	return strings.TrimSpace(strings.TrimSuffix(s, ":"))
}

// NormalizeText strips leading/trailing whitespace (including NBSP) and
// collapses internal whitespace runs to a single space.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
