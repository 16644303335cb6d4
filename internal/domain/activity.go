package domain

import "time"

// ActivityRecord is one row of billable work read from a timesheet export.
// WeekNumber is always derived from Date by the extractor; it is never read
// from the spreadsheet.
type ActivityRecord struct {
	Date        time.Time
	WeekNumber  int
	Ticket      string
	Project     string
	Description string
	Hours       float64
	Phase       string
}

// HasValidDate reports whether the record's date cell could be interpreted.
// A malformed date is carried as the zero time.
func (r ActivityRecord) HasValidDate() bool {
	return !r.Date.IsZero()
}
