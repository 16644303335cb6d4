// Package aggregate filters activity records by period and groups them into
// weekly hour tables.
package aggregate

import (
	"sort"

	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/domain"
)

// Aggregate groups records by week number and sums their hours per day of
// week (Sunday=0). Within a group records are ordered by day of week, keeping
// input order on ties; groups are ordered by ascending week number.
//
// Hours are summed as given: a NaN poisons its day and the group total.
// Records without a readable date have no day of week and are skipped.
func Aggregate(records []domain.ActivityRecord, client string) []domain.WeekGroup {
	byWeek := make(map[int]*domain.WeekGroup)
	for _, r := range records {
		if !r.HasValidDate() {
			continue
		}
		g, ok := byWeek[r.WeekNumber]
		if !ok {
			g = &domain.WeekGroup{WeekNumber: r.WeekNumber, Client: client}
			byWeek[r.WeekNumber] = g
		}
		dow := calendar.DayOfWeek(r.Date)
		g.Records = append(g.Records, domain.DayRecord{ActivityRecord: r, DayOfWeek: dow})
		g.HoursPerDay[dow] += r.Hours
		g.Total += r.Hours
	}

	groups := make([]domain.WeekGroup, 0, len(byWeek))
	for _, g := range byWeek {
		sort.SliceStable(g.Records, func(i, j int) bool {
			return g.Records[i].DayOfWeek < g.Records[j].DayOfWeek
		})
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].WeekNumber < groups[j].WeekNumber
	})
	return groups
}

// GrandTotal sums the week totals of groups.
func GrandTotal(groups []domain.WeekGroup) float64 {
	var total float64
	for _, g := range groups {
		total += g.Total
	}
	return total
}
