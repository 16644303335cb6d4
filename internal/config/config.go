// Package config reads timesheet settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds process-wide settings. Command-line flags override the
// corresponding fields.
type Config struct {
	DBPath   string
	LogLevel string

	// OTLPEndpoint enables trace export when set (host:port, gRPC).
	OTLPEndpoint string
	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string

	StrictCells bool
	OutputDir   string
	Format      string

	DefaultProject    string
	DefaultAuthorizer string
}

// DefaultConfig returns the settings used when no variable is set. DBPath
// is resolved by Load.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		OutputDir: ".",
		Format:    "pdf",
	}
}

// Load reads configuration from TIMESHEET_* environment variables, falling
// back to defaults for unset or unparsable values. The database defaults to
// ~/.timesheet/timesheet.db.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("TIMESHEET_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".timesheet", "timesheet.db")
	}

	cfg.LogLevel = strings.ToLower(getEnv("TIMESHEET_LOG_LEVEL", cfg.LogLevel))
	cfg.OTLPEndpoint = getEnv("TIMESHEET_OTLP_ENDPOINT", cfg.OTLPEndpoint)
	cfg.MetricsFile = getEnv("TIMESHEET_METRICS_FILE", cfg.MetricsFile)
	cfg.StrictCells = getEnvBool("TIMESHEET_STRICT_CELLS", cfg.StrictCells)
	cfg.OutputDir = getEnv("TIMESHEET_OUTPUT_DIR", cfg.OutputDir)
	cfg.Format = strings.ToLower(getEnv("TIMESHEET_FORMAT", cfg.Format))
	cfg.DefaultProject = getEnv("TIMESHEET_DEFAULT_PROJECT", cfg.DefaultProject)
	cfg.DefaultAuthorizer = getEnv("TIMESHEET_DEFAULT_AUTHORIZER", cfg.DefaultAuthorizer)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
