package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/importer"
	"github.com/alexanderramin/timesheet/internal/observability"
	"github.com/alexanderramin/timesheet/internal/render"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("timesheet/service")

type reportService struct {
	profiles ProfileService
	metrics  *observability.Metrics
	observer UseCaseObserver
}

// NewReportService wires the pipeline. profiles receives the consultant's
// name, client and signature after every successful generation.
func NewReportService(profiles ProfileService, metrics *observability.Metrics, observers ...UseCaseObserver) ReportService {
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	return &reportService{
		profiles: profiles,
		metrics:  metrics,
		observer: useCaseObserverOrNoop(observers),
	}
}

// stage runs fn inside a span named after the pipeline stage and records its
// duration.
func (s *reportService) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "pipeline."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	s.metrics.RecordStage(name, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errorDetail(err))
	}
	return err
}

// collected is the output of the stages shared by Generate and Preview.
type collected struct {
	extracted importer.Result
	records   []domain.ActivityRecord
	groups    []domain.WeekGroup
}

// collect extracts, filters and aggregates. Errors are already classified.
func (s *reportService) collect(ctx context.Context, sources []importer.Source, project, client string, period aggregate.Period, strict bool, now time.Time, fields map[string]any) (*collected, error) {
	if now.IsZero() {
		now = time.Now()
	}
	var c collected

	err := s.stage(ctx, observability.StageExtract, func(ctx context.Context) error {
		var e error
		c.extracted, e = importer.ExtractAll(ctx, sources, project, importer.Options{Strict: strict})
		return e
	})
	if err != nil {
		return nil, domain.NewGenerateError(domain.ErrDecode, err)
	}
	s.metrics.AddExtraction(len(sources), c.extracted.RowsRead, len(c.extracted.Issues))
	fields["rows_read"] = c.extracted.RowsRead
	fields["cell_issues"] = len(c.extracted.Issues)

	_ = s.stage(ctx, observability.StageFilter, func(context.Context) error {
		c.records = aggregate.FilterPeriod(c.extracted.Records, period, now)
		return nil
	})
	fields["records"] = len(c.records)
	if len(c.records) == 0 {
		err = fmt.Errorf("%w: project %q, %d rows read", domain.ErrEmptyResult, project, c.extracted.RowsRead)
		return nil, domain.NewGenerateError(domain.ErrEmptyResult, err)
	}
	s.metrics.AddRecordsKept(len(c.records))

	_ = s.stage(ctx, observability.StageAggregate, func(context.Context) error {
		c.groups = aggregate.Aggregate(c.records, client)
		return nil
	})
	fields["weeks"] = len(c.groups)
	return &c, nil
}

// failSpan marks span as failed with the generic message.
func failSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, domain.GenerateFailedMessage)
	}
}

func (s *reportService) Generate(ctx context.Context, req GenerateRequest) (res *GenerateResult, err error) {
	ctx, span := tracer.Start(ctx, "ReportService.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("report.project", req.Project),
		attribute.Int("report.files", len(req.Sources)),
		attribute.Bool("report.strict", req.Strict),
	)

	fields := map[string]any{
		"project": req.Project,
		"files":   len(req.Sources),
		"strict":  req.Strict,
	}
	done := trackUseCase(ctx, s.observer, "generate-report", fields)
	defer func() {
		s.metrics.IncrReport(kindLabel(err))
		failSpan(span, err)
		done(err)
	}()

	if err = validateRequest(&req); err != nil {
		return nil, domain.NewGenerateError(domain.ErrInvalidInput, err)
	}

	c, err := s.collect(ctx, req.Sources, req.Project, req.Client, req.Period, req.Strict, req.Now, fields)
	if err != nil {
		return nil, err
	}

	var model domain.ReportModel
	_ = s.stage(ctx, observability.StageAssemble, func(context.Context) error {
		model = report.Assemble(c.groups, report.Meta{
			Consultant:      req.Consultant,
			Client:          req.Client,
			Project:         req.Project,
			Authorizer:      req.Authorizer,
			Signature:       req.Signature,
			SignatureMIME:   req.SignatureMIME,
			FirstRecordDate: c.records[0].Date,
		})
		return nil
	})

	res = &GenerateResult{
		ID:          uuid.New().String(),
		Model:       model,
		Issues:      c.extracted.Issues,
		RowsRead:    c.extracted.RowsRead,
		RecordCount: model.RecordCount(),
	}
	fields["report_id"] = res.ID
	span.SetAttributes(attribute.String("report.id", res.ID))

	if s.profiles != nil {
		perr := s.profiles.Save(ctx, &domain.Profile{
			EmployeeName:  req.Consultant,
			ClientName:    req.Client,
			Signature:     req.Signature,
			SignatureMIME: req.SignatureMIME,
		})
		fields["profile_saved"] = perr == nil
		if perr != nil {
			span.AddEvent("profile save failed", trace.WithAttributes(attribute.String("error", perr.Error())))
		}
	}
	return res, nil
}

func (s *reportService) Preview(ctx context.Context, req PreviewRequest) (res *PreviewResult, err error) {
	ctx, span := tracer.Start(ctx, "ReportService.Preview")
	defer span.End()
	span.SetAttributes(
		attribute.String("report.project", req.Project),
		attribute.Int("report.files", len(req.Sources)),
	)

	fields := map[string]any{
		"project": req.Project,
		"files":   len(req.Sources),
		"strict":  req.Strict,
	}
	done := trackUseCase(ctx, s.observer, "preview-report", fields)
	defer func() {
		failSpan(span, err)
		done(err)
	}()

	if err = validatePreview(req); err != nil {
		return nil, domain.NewGenerateError(domain.ErrInvalidInput, err)
	}

	c, err := s.collect(ctx, req.Sources, req.Project, req.Client, req.Period, req.Strict, req.Now, fields)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Groups:      c.groups,
		Total:       aggregate.GrandTotal(c.groups),
		Issues:      c.extracted.Issues,
		RowsRead:    c.extracted.RowsRead,
		RecordCount: len(c.records),
	}, nil
}

func (s *reportService) Render(ctx context.Context, res *GenerateResult, r render.Renderer, w io.Writer) (err error) {
	done := trackUseCase(ctx, s.observer, "render-report", map[string]any{"format": r.Ext(), "report_id": res.ID})
	defer func() { done(err) }()

	err = s.stage(ctx, observability.StageRender, func(ctx context.Context) error {
		return r.Render(ctx, res.Model, w)
	})
	if err != nil {
		return domain.NewGenerateError(domain.ErrRender, err)
	}
	return nil
}
