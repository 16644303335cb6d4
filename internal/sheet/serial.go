package sheet

import (
	"math"
	"strings"
	"time"
)

var (
	epoch1900 = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// SerialToTime converts an Excel date serial to a UTC time. Fractions of a
// day are kept as time of day, rounded to the second.
func SerialToTime(serial float64, uses1904 bool) time.Time {
	base := epoch1900
	if uses1904 {
		base = epoch1904
	}
	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)
	return base.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}

// TimeToSerial is the inverse of SerialToTime for the 1900 date system.
func TimeToSerial(t time.Time) float64 {
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := math.Round(date.Sub(epoch1900).Hours() / 24)
	frac := float64(t.Hour()*3600+t.Minute()*60+t.Second()) / 86400
	return days + frac
}

// builtinDateFormats are the SpreadsheetML predefined number format ids that
// render as dates or times.
var builtinDateFormats = map[uint32]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormatCode reports whether a custom number format code renders a
// date: it contains a day, month or year token outside quoted literals,
// escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)
	if code == "" || code == "general" {
		return false
	}
	inQuote := false
	inBracket := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		case c == 'd' || c == 'm' || c == 'y':
			return true
		}
	}
	return false
}
