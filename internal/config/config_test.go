package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".timesheet", "timesheet.db"), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.StrictCells)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TIMESHEET_DB", "/tmp/ts.db")
	t.Setenv("TIMESHEET_LOG_LEVEL", "DEBUG")
	t.Setenv("TIMESHEET_OTLP_ENDPOINT", "localhost:4317")
	t.Setenv("TIMESHEET_METRICS_FILE", "/tmp/ts.prom")
	t.Setenv("TIMESHEET_STRICT_CELLS", "true")
	t.Setenv("TIMESHEET_OUTPUT_DIR", "/tmp/out")
	t.Setenv("TIMESHEET_FORMAT", "XLSX")
	t.Setenv("TIMESHEET_DEFAULT_PROJECT", "Reingeniería Cadena de Suministro")
	t.Setenv("TIMESHEET_DEFAULT_AUTHORIZER", "Luis Pérez")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ts.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "/tmp/ts.prom", cfg.MetricsFile)
	assert.True(t, cfg.StrictCells)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "xlsx", cfg.Format)
	assert.Equal(t, "Reingeniería Cadena de Suministro", cfg.DefaultProject)
	assert.Equal(t, "Luis Pérez", cfg.DefaultAuthorizer)
}

func TestLoad_InvalidBoolIgnored(t *testing.T) {
	t.Setenv("TIMESHEET_STRICT_CELLS", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.StrictCells)
}
