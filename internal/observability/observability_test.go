package observability

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(tt.level)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestMetrics_CountersAndSummary(t *testing.T) {
	m := NewMetrics()
	m.AddExtraction(2, 10, 1)
	m.AddExtraction(1, 5, 0)
	m.AddRecordsKept(7)
	m.IncrReport("success")
	m.IncrReport("decode")
	m.RecordStage(StageExtract, 20*time.Millisecond)

	assert.Equal(t, 15.0, testutil.ToFloat64(m.rowsRead))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportsTotal.WithLabelValues("decode")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.stageDuration))

	assert.Equal(t, RunSummary{FilesRead: 3, RowsRead: 15, RecordsKept: 7, CellIssues: 1, Succeeded: 1}, m.Summary())
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.AddRecordsKept(3)
	assert.Zero(t, b.Summary().RecordsKept)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.AddExtraction(1, 4, 0)
	m.IncrReport("success")

	path := filepath.Join(t.TempDir(), "timesheet.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timesheet_rows_read_total 4")
	assert.Contains(t, string(data), `timesheet_reports_total{status="success"} 1`)
}

func TestInitTracer_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := InitTracer("", "timesheet")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
