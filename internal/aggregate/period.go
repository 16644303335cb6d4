package aggregate

import (
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// Period is an inclusive date range. A nil From is open back to the epoch;
// a nil To ends with the calendar day of the filtering time, so records dated
// today are kept in any time zone.
type Period struct {
	From *time.Time
	To   *time.Time
}

// IsOpen reports whether neither bound is set.
func (p Period) IsOpen() bool {
	return p.From == nil && p.To == nil
}

func (p Period) bounds(now time.Time) (time.Time, time.Time) {
	from := time.Unix(0, 0).UTC()
	if p.From != nil {
		from = *p.From
	}
	y, m, d := now.Date()
	to := time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	if p.To != nil {
		to = *p.To
	}
	return from, to
}

// FilterPeriod keeps the records whose date falls inside p, preserving order.
// Records without a readable date never match a range.
func FilterPeriod(records []domain.ActivityRecord, p Period, now time.Time) []domain.ActivityRecord {
	from, to := p.bounds(now)
	out := make([]domain.ActivityRecord, 0, len(records))
	for _, r := range records {
		if !r.HasValidDate() {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}
