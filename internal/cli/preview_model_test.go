package cli

import (
	"testing"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/importer"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/alexanderramin/timesheet/internal/teatest"
	"github.com/alexanderramin/timesheet/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func dayRecord(date, ticket string, hours float64, dow int) domain.DayRecord {
	return domain.DayRecord{
		ActivityRecord: testutil.NewTestRecord(date, "ProjA", hours, testutil.WithTicket(ticket)),
		DayOfWeek:      dow,
	}
}

func twoWeekPreview() *service.PreviewResult {
	return &service.PreviewResult{
		Groups: []domain.WeekGroup{
			{
				WeekNumber:  10,
				Client:      "Toks",
				Records:     []domain.DayRecord{dayRecord("2024-03-04", "#A-10", 8, 1)},
				HoursPerDay: [domain.DaysPerWeek]float64{0, 8},
				Total:       8,
			},
			{
				WeekNumber:  11,
				Client:      "Toks",
				Records:     []domain.DayRecord{dayRecord("2024-03-13", "#B-11", 3.5, 3)},
				HoursPerDay: [domain.DaysPerWeek]float64{0, 0, 0, 3.5},
				Total:       3.5,
			},
		},
		Total:  11.5,
		Issues: []importer.CellIssue{{Row: 4, Column: importer.ColHours, Reason: "missing hours"}},
	}
}

func TestPreviewModel_PagesThroughWeeks(t *testing.T) {
	d := teatest.New(t, newPreviewModel(twoWeekPreview()), teatest.WithSize(140, 30))

	d.RequireViewContains("SEMANA 10 · 1/2")
	d.RequireViewContains("#A-10")
	d.RequireViewContains("Total general: 11.5")
	d.RequireViewContains("1 malformed cell(s)")

	d.Press(tea.KeyRight)
	d.RequireViewContains("SEMANA 11 · 2/2")
	d.RequireViewContains("#B-11")
	assert.NotContains(t, d.View(), "#A-10")

	d.PressKey('l')
	d.RequireViewContains("SEMANA 11 · 2/2")

	d.PressKey('h')
	d.RequireViewContains("SEMANA 10 · 1/2")
	d.Press(tea.KeyLeft)
	d.RequireViewContains("SEMANA 10 · 1/2")

	assert.False(t, d.Quitting)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestPreviewModel_EmptyAndEsc(t *testing.T) {
	d := teatest.New(t, newPreviewModel(&service.PreviewResult{}))
	d.RequireViewContains("No records.")
	d.Press(tea.KeyRight)
	d.Press(tea.KeyEsc)
	assert.True(t, d.Quitting)
}
