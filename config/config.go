package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. Every knob has a built-in
// default so a run with no environment at all behaves identically every time;
// env vars exist for local debugging (pointing at a Chrome binary, shortening
// timeouts against a fixture server, etc.).
type Config struct {
	StartURL     string
	ProjectCount int

	CSVOutputPath string
	LogFilePath   string
	ChromeBin     string

	PageLoadTimeoutS    int
	FieldSettleTimeoutS int
	TabContentTimeoutS  int
	PollIntervalMs      int
	ModalAttempts       int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		StartURL:     getEnv("START_URL", "https://rera.odisha.gov.in/projects/project-list"),
		ProjectCount: getEnvInt("PROJECT_COUNT", 6),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "projects_output.csv"),
		LogFilePath:   getEnv("LOG_FILE_PATH", "scraper.log"),
		ChromeBin:     getEnv("CHROME_BIN", ""),

		PageLoadTimeoutS:    getEnvInt("PAGE_LOAD_TIMEOUT_S", 120),
		FieldSettleTimeoutS: getEnvInt("FIELD_SETTLE_TIMEOUT_S", 60),
		TabContentTimeoutS:  getEnvInt("TAB_CONTENT_TIMEOUT_S", 40),
		PollIntervalMs:      getEnvInt("POLL_INTERVAL_MS", 500),
		ModalAttempts:       getEnvInt("MODAL_ATTEMPTS", 3),
	}
}

// PageLoadTimeout bounds a full page navigation.
func (c *Config) PageLoadTimeout() time.Duration {
	return time.Duration(c.PageLoadTimeoutS) * time.Second
}

// FieldSettleTimeout bounds waiting for an async-populated field value.
func (c *Config) FieldSettleTimeout() time.Duration {
	return time.Duration(c.FieldSettleTimeoutS) * time.Second
}

// TabContentTimeout bounds waiting for tab-panel content and spinners.
func (c *Config) TabContentTimeout() time.Duration {
	return time.Duration(c.TabContentTimeoutS) * time.Second
}

// PollInterval is the delay between readiness probes.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
