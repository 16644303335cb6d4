// Package calendar holds the two week-numbering schemes used by timesheet
// reports. They are deliberately independent: records are grouped by ISO-8601
// week, while week tables are labelled by counting Sunday-started weeks from
// the Sunday on or before January 1st. Near year boundaries the two disagree.
package calendar

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// dateOf drops the time of day and location, keeping the calendar date as
// seen in t's own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// mondayIndex maps a Sunday=0 weekday onto Monday=0..Sunday=6.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ISOWeekOf returns the ISO-8601 week number (1..53) of t's calendar date,
// or 0 for the zero time, which stands for an unreadable date.
// The date is shifted to the Thursday of its week and compared against the
// first Thursday of that Thursday's year, so late-December dates can fall in
// week 1 and early-January dates in week 52 or 53 of the previous year.
func ISOWeekOf(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	d := dateOf(t)
	thursday := d.AddDate(0, 0, 3-mondayIndex(d))

	jan4 := time.Date(thursday.Year(), time.January, 4, 0, 0, 0, 0, time.UTC)
	firstThursday := jan4.AddDate(0, 0, 3-mondayIndex(jan4))

	weeks := float64(thursday.Sub(firstThursday)) / float64(7*day)
	return 1 + int(math.Round(weeks))
}

// DayOfWeek returns t's weekday with Sunday=0..Saturday=6.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}
