// Package report assembles aggregated weeks and consultant metadata into the
// renderer-ready report model.
package report

import (
	"time"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/domain"
)

// Meta is the report header supplied by the wizard. FirstRecordDate is the
// date of the first extracted record; the report's year and month come from
// it alone, even when the data spans several months.
type Meta struct {
	Consultant      string
	Client          string
	Project         string
	Authorizer      string
	Signature       []byte
	SignatureMIME   string
	FirstRecordDate time.Time
}

// Assemble builds the report model. It performs no recomputation of hours
// and shares no storage with groups or meta.
func Assemble(groups []domain.WeekGroup, meta Meta) domain.ReportModel {
	year := meta.FirstRecordDate.Year()
	m := domain.ReportModel{
		Consultant:    meta.Consultant,
		Client:        meta.Client,
		Project:       meta.Project,
		Authorizer:    meta.Authorizer,
		Year:          year,
		Month:         calendar.MonthName(meta.FirstRecordDate.Month()),
		Weeks:         make([]domain.WeekSection, 0, len(groups)),
		Total:         aggregate.GrandTotal(groups),
		SignatureMIME: meta.SignatureMIME,
	}
	if len(meta.Signature) > 0 {
		m.Signature = append([]byte(nil), meta.Signature...)
	}
	for _, g := range groups {
		m.Weeks = append(m.Weeks, domain.WeekSection{
			Group:  g.Clone(),
			Labels: calendar.SundayStartWeekDates(year, g.WeekNumber),
		})
	}
	return m
}
