package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Pipeline stages reported in timesheet_stage_duration_seconds.
const (
	StageExtract   = "extract"
	StageFilter    = "filter"
	StageAggregate = "aggregate"
	StageAssemble  = "assemble"
	StageRender    = "render"
)

// Metrics holds the Prometheus metrics of the report pipeline.
type Metrics struct {
	// Registry owns these metrics; a private registry lets tests create
	// Metrics repeatedly.
	Registry *prometheus.Registry

	stageDuration *prometheus.HistogramVec
	filesRead     prometheus.Counter
	rowsRead      prometheus.Counter
	recordsKept   prometheus.Counter
	cellIssues    prometheus.Counter
	reportsTotal  *prometheus.CounterVec
}

// NewMetrics creates a dedicated registry and registers all pipeline metrics
// in it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		stageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "timesheet_stage_duration_seconds",
				Help:    "Duration of report pipeline stages.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		filesRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "timesheet_files_read_total",
			Help: "Spreadsheet files read.",
		}),
		rowsRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "timesheet_rows_read_total",
			Help: "Data rows read from spreadsheets, before the project filter.",
		}),
		recordsKept: factory.NewCounter(prometheus.CounterOpts{
			Name: "timesheet_records_kept_total",
			Help: "Activity records that passed the project and period filters.",
		}),
		cellIssues: factory.NewCounter(prometheus.CounterOpts{
			Name: "timesheet_cell_issues_total",
			Help: "Malformed date or hours cells found in matching rows.",
		}),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timesheet_reports_total",
				Help: "Report generations by outcome.",
			},
			[]string{"status"},
		),
	}
}

// RecordStage records the duration of a pipeline stage.
func (m *Metrics) RecordStage(stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// AddExtraction records the outcome of reading the input files.
func (m *Metrics) AddExtraction(files, rows, issues int) {
	m.filesRead.Add(float64(files))
	m.rowsRead.Add(float64(rows))
	m.cellIssues.Add(float64(issues))
}

// AddRecordsKept records the records left after filtering.
func (m *Metrics) AddRecordsKept(n int) {
	m.recordsKept.Add(float64(n))
}

// IncrReport increments the report counter with a status label
// ("success" or the failure kind).
func (m *Metrics) IncrReport(status string) {
	m.reportsTotal.WithLabelValues(status).Inc()
}

// RunSummary is a snapshot of the cumulative counters.
type RunSummary struct {
	FilesRead   int
	RowsRead    int
	RecordsKept int
	CellIssues  int
	Succeeded   int
}

// Summary returns the current counter values.
func (m *Metrics) Summary() RunSummary {
	return RunSummary{
		FilesRead:   int(counterValue(m.filesRead)),
		RowsRead:    int(counterValue(m.rowsRead)),
		RecordsKept: int(counterValue(m.recordsKept)),
		CellIssues:  int(counterValue(m.cellIssues)),
		Succeeded:   int(counterValue(m.reportsTotal.WithLabelValues("success"))),
	}
}

// WriteTextfile writes every metric in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// counterValue extracts the current value of a counter.
func counterValue(c prometheus.Counter) float64 {
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		return 0
	}
	if metric.Counter != nil && metric.Counter.Value != nil {
		return *metric.Counter.Value
	}
	return 0
}
