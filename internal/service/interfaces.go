package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/importer"
	"github.com/alexanderramin/timesheet/internal/render"
)

// GenerateRequest carries everything the wizard collects for one report.
type GenerateRequest struct {
	Consultant string
	Client     string
	Project    string
	Authorizer string

	Signature     []byte
	SignatureMIME string
	// RequireSignature rejects requests without a signature image, as the
	// interactive wizard does.
	RequireSignature bool

	Sources []importer.Source
	Period  aggregate.Period
	Strict  bool

	// Now closes an open-ended period; zero means the current time.
	Now time.Time
}

// GenerateResult is a successfully assembled report.
type GenerateResult struct {
	ID          string
	Model       domain.ReportModel
	Issues      []importer.CellIssue
	RowsRead    int
	RecordCount int
}

// PreviewRequest selects the records to inspect before generating a report.
type PreviewRequest struct {
	Client  string
	Project string
	Sources []importer.Source
	Period  aggregate.Period
	Strict  bool
	Now     time.Time
}

// PreviewResult holds the weekly groups a report would contain.
type PreviewResult struct {
	Groups      []domain.WeekGroup
	Total       float64
	Issues      []importer.CellIssue
	RowsRead    int
	RecordCount int
}

// ReportService runs the extraction, aggregation and assembly pipeline.
// Every error it returns is a *domain.GenerateError.
type ReportService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	// Preview runs extraction and aggregation only. It stores nothing.
	Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error)
	Render(ctx context.Context, res *GenerateResult, r render.Renderer, w io.Writer) error
}

// ProfileService manages the single stored profile.
type ProfileService interface {
	// Load returns the stored profile, or nil when none is stored.
	Load(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
	Clear(ctx context.Context) error
}
