package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/sheet"
)

// CellIssue marks one malformed cell. Row is 1-based as shown by spreadsheet
// applications; Column is 0-based in the fixed layout.
type CellIssue struct {
	File   string
	Sheet  string
	Row    int
	Column int
	Reason string
}

func (i CellIssue) Error() string {
	loc := fmt.Sprintf("row %d, %s", i.Row, ColumnName(i.Column))
	if i.Sheet != "" {
		loc = i.Sheet + " " + loc
	}
	if i.File != "" {
		loc = i.File + ": " + loc
	}
	return fmt.Sprintf("%s: %s", loc, i.Reason)
}

// RowResult is the outcome of parsing one data row. Record is always filled;
// cells listed in Issues hold NaN hours or the zero date.
type RowResult struct {
	Record domain.ActivityRecord
	Issues []CellIssue
}

// Valid reports whether every mapped cell parsed cleanly.
func (r RowResult) Valid() bool {
	return len(r.Issues) == 0
}

// dateLayouts are tried in order for dates typed as text.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// ParseRow maps one data row onto an ActivityRecord using the fixed column
// layout. rowNum is the 1-based sheet row used in issue markers.
func ParseRow(row sheet.Row, rowNum int) RowResult {
	var res RowResult
	issue := func(col int, format string, args ...any) {
		res.Issues = append(res.Issues, CellIssue{Row: rowNum, Column: col, Reason: fmt.Sprintf(format, args...)})
	}

	date, err := parseDate(row.At(ColDate))
	if err != nil {
		issue(ColDate, "%v", err)
	}
	hours, err := parseHours(row.At(ColHours))
	if err != nil {
		issue(ColHours, "%v", err)
	}

	res.Record = domain.ActivityRecord{
		Date:        date,
		WeekNumber:  calendar.ISOWeekOf(date),
		Ticket:      row.At(ColTicket).AsText(),
		Project:     row.At(ColProject).AsText(),
		Description: row.At(ColDescription).AsText(),
		Hours:       hours,
		Phase:       row.At(ColPhase).AsText(),
	}
	return res
}

func parseDate(c sheet.Cell) (time.Time, error) {
	switch c.Kind {
	case sheet.KindDate:
		return midnight(c.Time), nil
	case sheet.KindNumber:
		if math.IsNaN(c.Number) || c.Number <= 0 {
			return time.Time{}, fmt.Errorf("invalid date serial %v", c.Number)
		}
		return midnight(sheet.SerialToTime(c.Number, false)), nil
	case sheet.KindString:
		s := strings.TrimSpace(c.Text)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return midnight(t), nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid date %q", c.Text)
	case sheet.KindEmpty:
		return time.Time{}, fmt.Errorf("missing date")
	default:
		return time.Time{}, fmt.Errorf("invalid date cell of type %s", c.Kind)
	}
}

func parseHours(c sheet.Cell) (float64, error) {
	switch c.Kind {
	case sheet.KindNumber:
		if c.Number < 0 {
			return c.Number, fmt.Errorf("negative hours %v", c.Number)
		}
		return c.Number, nil
	case sheet.KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("invalid hours %q", c.Text)
		}
		if f < 0 {
			return f, fmt.Errorf("negative hours %v", f)
		}
		return f, nil
	case sheet.KindEmpty:
		return math.NaN(), fmt.Errorf("missing hours")
	default:
		return math.NaN(), fmt.Errorf("invalid hours cell of type %s", c.Kind)
	}
}

// midnight keeps the calendar date only.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
