package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timesheet/internal/calendar"
)

// FormatWeek shows the ISO week of date and the Sunday-first labels a report
// prints for that week number in date's year.
func FormatWeek(date time.Time) string {
	week := calendar.ISOWeekOf(date)
	labels := calendar.SundayStartWeekDates(date.Year(), week)

	headers := make([]string, 0, len(labels))
	days := make([]string, 0, len(labels))
	months := make([]string, 0, len(labels))
	for _, l := range labels {
		headers = append(headers, l.Letter)
		if l.IsTotal() {
			days = append(days, "")
			months = append(months, "")
			continue
		}
		days = append(days, l.DayNumber)
		months = append(months, calendar.MonthName(time.Month(l.Month)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(date.Format("2006-01-02")), Dim(calendar.MonthName(date.Month())))
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Semana ISO:"), StyleTitle.Render(strconv.Itoa(week)))
	b.WriteString(RenderTable(headers, [][]string{days, months}))
	if calendar.DayOfWeek(date) == 0 {
		b.WriteString(Dim("Sunday: reports group it with the ISO week that began the Monday before.") + "\n")
	}
	return b.String()
}
