package main

import (
	"fmt"
	"os"

	"rera-scraper/config"
	"rera-scraper/scraper/rera"
	"rera-scraper/services"
	"rera-scraper/storage"
	"rera-scraper/utils"
)

func main() {
	os.Exit(run())
}

// run carries the whole pipeline so deferred cleanup executes before the
// process reports its exit code.
func run() int {
	cfg := config.Load()

	logger := utils.NewLogger(cfg.LogFilePath)
	defer logger.Close()

	logger.Info("=== Odisha RERA Project Scraper starting ===")
	logger.Info("Config — start URL: %s | projects: %d | output: %s",
		cfg.StartURL, cfg.ProjectCount, cfg.CSVOutputPath)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		return 1
	}
	defer csvWriter.Close()

	// Diagnostic snapshots are removed on every exit path past this point,
	// whether or not extraction succeeded.
	artifacts := utils.NewArtifactTracker(".", logger)
	defer artifacts.Cleanup()

	scraper := rera.New(cfg, logger, artifacts)
	records, scrapeErr := scraper.Run()
	if scrapeErr != nil {
		logger.Error("Scrape failed: %v", scrapeErr)
	}

	if len(records) == 0 {
		logger.Warn("No records were extracted — CSV will contain only the header row")
	}

	if err := csvWriter.WriteRecords(records); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("Results written to %s (%d rows)", cfg.CSVOutputPath, len(records))
	}

	summarySvc := services.NewSummaryService(logger)
	summarySvc.Print(summarySvc.Generate(records))

	fmt.Printf("  Done. Output → %s | Log → %s\n\n", cfg.CSVOutputPath, cfg.LogFilePath)

	return exitCode(scrapeErr, len(records))
}

// exitCode distinguishes "the browser or listing never came up" from a
// partial run: once at least one record exists, partial data plus the log is
// the contract and the process reports success.
func exitCode(scrapeErr error, records int) int {
	if scrapeErr != nil && records == 0 {
		return 1
	}
	return 0
}
