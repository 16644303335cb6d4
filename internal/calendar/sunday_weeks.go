package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// DayLetters are the Sunday-first weekday initials printed above week tables.
// Monday and Wednesday share "M"; that is how the printed reports read.
var DayLetters = [domain.DaysPerWeek]string{"D", "L", "M", "M", "J", "V", "S"}

// SundayStartWeekDates returns the labels for week number week of year, where
// week 1 starts on the Sunday on or before January 1st and every following
// week starts seven days later. The result has seven day entries followed by
// a "Total" sentinel carrying the start day's month.
//
// This numbering is not ISO-8601; see ISOWeekOf.
func SundayStartWeekDates(year, week int) []domain.WeekDateLabel {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	anchor := jan1.AddDate(0, 0, -DayOfWeek(jan1))
	start := anchor.AddDate(0, 0, (week-1)*7)

	labels := make([]domain.WeekDateLabel, 0, domain.DaysPerWeek+1)
	for i := 0; i < domain.DaysPerWeek; i++ {
		d := start.AddDate(0, 0, i)
		labels = append(labels, domain.WeekDateLabel{
			DayNumber: fmt.Sprintf("%02d", d.Day()),
			Month:     int(d.Month()),
			Letter:    DayLetters[DayOfWeek(d)],
		})
	}
	labels = append(labels, domain.WeekDateLabel{
		DayNumber: "",
		Month:     int(start.Month()),
		Letter:    domain.TotalLetter,
	})
	return labels
}
