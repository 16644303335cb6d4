package testutil

import (
	"encoding/base64"
	"os"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/sheet"
)

// Date parses a YYYY-MM-DD string, panicking on bad test input.
func Date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Record options
type RecordOption func(*domain.ActivityRecord)

func WithTicket(ticket string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.Ticket = ticket
	}
}

func WithPhase(phase string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.Phase = phase
	}
}

func WithDescription(desc string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.Description = desc
	}
}

// NewTestRecord builds an ActivityRecord for date (YYYY-MM-DD) with its week
// number derived the same way the extractor derives it.
func NewTestRecord(date, project string, hours float64, opts ...RecordOption) domain.ActivityRecord {
	d := Date(date)
	r := domain.ActivityRecord{
		Date:        d,
		WeekNumber:  calendar.ISOWeekOf(d),
		Ticket:      "T1",
		Project:     project,
		Description: "desc",
		Hours:       hours,
		Phase:       "Dev",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// HeaderRow is the header line of a timesheet export.
func HeaderRow() sheet.Row {
	return sheet.Row{
		sheet.String("Fecha"), sheet.String("Ticket"), sheet.String("Proyecto"),
		sheet.String("Descripción"), sheet.String("Cliente"), sheet.String("Horas"), sheet.String("Fase"),
	}
}

// DataRow is one timesheet export line with a real date cell.
func DataRow(date, ticket, project, desc string, hours float64, phase string) sheet.Row {
	return sheet.Row{
		sheet.Date(Date(date)), sheet.String(ticket), sheet.String(project),
		sheet.String(desc), sheet.Empty(), sheet.Number(hours), sheet.String(phase),
	}
}

// WorkbookBytes encodes a single-sheet XLSX workbook holding a header row
// followed by rows.
func WorkbookBytes(t *testing.T, rows ...sheet.Row) []byte {
	t.Helper()
	all := append([]sheet.Row{HeaderRow()}, rows...)
	data, err := sheet.EncodeBytes([]sheet.Sheet{{Name: "Horas", Rows: all}})
	if err != nil {
		t.Fatalf("encoding test workbook: %v", err)
	}
	return data
}

// WriteWorkbook writes WorkbookBytes to a temp file and returns its path.
func WriteWorkbook(t *testing.T, name string, rows ...sheet.Row) string {
	t.Helper()
	path := t.TempDir() + "/" + name
	if err := os.WriteFile(path, WorkbookBytes(t, rows...), 0o644); err != nil {
		t.Fatalf("writing test workbook: %v", err)
	}
	return path
}

// SignaturePNG is a valid 1x1 RGBA PNG.
var SignaturePNG = mustBase64("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func mustBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
