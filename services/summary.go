package services

import (
	"fmt"
	"strings"

	"rera-scraper/models"
	"rera-scraper/utils"
)

// Summary holds the computed completeness report over the emitted records.
type Summary struct {
	TotalRecords         int
	CompleteRecords      int
	PlaceholderCells     int
	PlaceholdersByColumn map[string]int
}

// SummaryService computes and prints the end-of-run extraction report.
type SummaryService struct {
	logger *utils.Logger
}

// NewSummaryService creates a SummaryService with the given logger.
func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate walks the emitted records and counts placeholder cells per column.
func (s *SummaryService) Generate(records []*models.ProjectRecord) *Summary {
	report := &Summary{
		PlaceholdersByColumn: make(map[string]int),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalRecords = len(records)

	for _, r := range records {
		if r.Complete() {
			report.CompleteRecords++
		}
		cells := map[string]string{
			"Project Name":            r.ProjectName,
			"Rera Regd. No":           r.ReraRegdNo,
			"Promoter Name":           r.PromoterName,
			"Address of the Promoter": r.PromoterAddress,
			"GST No":                  r.GSTNo,
		}
		for col, v := range cells {
			if v == "" || v == models.Placeholder {
				report.PlaceholdersByColumn[col]++
				report.PlaceholderCells++
			}
		}
	}

	return report
}

// Print renders the report to stdout and mirrors the totals into the log.
func (s *SummaryService) Print(r *Summary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n%s\n", sep)
	fmt.Printf("  EXTRACTION SUMMARY\n")
	fmt.Printf("%s\n\n", sep)

	fmt.Printf("  Records emitted        : %d\n", r.TotalRecords)
	fmt.Printf("  Fully populated        : %d\n", r.CompleteRecords)
	fmt.Printf("  Placeholder cells      : %d\n", r.PlaceholderCells)
	fmt.Println()

	if r.PlaceholderCells > 0 {
		fmt.Printf("  Placeholders by column\n")
		fmt.Printf("  %s\n", thin)
		for _, col := range []string{
			"Project Name", "Rera Regd. No", "Promoter Name",
			"Address of the Promoter", "GST No",
		} {
			if n := r.PlaceholdersByColumn[col]; n > 0 {
				fmt.Printf("  %-30s %d\n", col, n)
			}
		}
	}

	fmt.Printf("\n%s\n\n", sep)

	s.logger.Info("[summary] %d records emitted, %d fully populated, %d placeholder cells",
		r.TotalRecords, r.CompleteRecords, r.PlaceholderCells)
}
