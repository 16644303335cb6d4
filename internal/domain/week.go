package domain

// DaysPerWeek is the width of every per-day hours table (Sunday..Saturday).
const DaysPerWeek = 7

// TotalLetter marks the trailing sentinel entry of a week's label sequence.
const TotalLetter = "Total"

// DayRecord is an ActivityRecord decorated with its day of week (0=Sunday).
type DayRecord struct {
	ActivityRecord
	DayOfWeek int
}

// WeekGroup aggregates every record sharing one ISO week number.
// Total always equals the sum of HoursPerDay.
type WeekGroup struct {
	WeekNumber  int
	Client      string
	Records     []DayRecord
	HoursPerDay [DaysPerWeek]float64
	Total       float64
}

// Clone returns a copy of g that shares no backing storage with it.
func (g WeekGroup) Clone() WeekGroup {
	out := g
	out.Records = append([]DayRecord(nil), g.Records...)
	return out
}

// WeekDateLabel is the display label for one calendar day of a week table.
type WeekDateLabel struct {
	DayNumber string
	Month     int
	Letter    string
}

// IsTotal reports whether the label is the trailing "Total" sentinel.
func (l WeekDateLabel) IsTotal() bool {
	return l.DayNumber == "" && l.Letter == TotalLetter
}
