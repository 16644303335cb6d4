package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/importer"
	"github.com/alexanderramin/timesheet/internal/observability"
	"github.com/alexanderramin/timesheet/internal/repository"
	"github.com/alexanderramin/timesheet/internal/sheet"
	"github.com/alexanderramin/timesheet/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type testServices struct {
	reports  ReportService
	profiles ProfileService
	metrics  *observability.Metrics
	observer *recordingObserver
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	profiles := NewProfileService(repository.NewSQLiteProfileRepo(database), testutil.NewTestUoW(database), obs)
	metrics := observability.NewMetrics()
	return testServices{
		reports:  NewReportService(profiles, metrics, obs),
		profiles: profiles,
		metrics:  metrics,
		observer: obs,
	}
}

func workbook(t *testing.T, name string, rows ...sheet.Row) importer.Source {
	t.Helper()
	return importer.BytesSource(name, testutil.WorkbookBytes(t, rows...))
}

func baseRequest(sources ...importer.Source) GenerateRequest {
	return GenerateRequest{
		Consultant:    "Ana López",
		Client:        "Toks",
		Project:       "ProjA",
		Authorizer:    "Luis Pérez",
		Signature:     testutil.SignaturePNG,
		SignatureMIME: "image/png",
		Sources:       sources,
		Now:           time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}
