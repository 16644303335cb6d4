// Package sheet decodes spreadsheet workbooks into rows of tagged cell values.
// It makes no assumption about column meaning; see the importer package for
// the timesheet layout.
package sheet

import (
	"strconv"
	"time"
)

// CellKind tags the dynamic type of a decoded cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindString
	KindNumber
	KindDate
	KindBool
)

func (k CellKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	default:
		return "empty"
	}
}

// Cell is one decoded spreadsheet value. Only the field matching Kind is set.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
	Bool   bool
}

// Row is an ordered sequence of cells; missing columns are KindEmpty.
type Row []Cell

// Sheet is one worksheet of a workbook.
type Sheet struct {
	Name string
	Rows []Row
}

// String returns a cell for s.
func String(s string) Cell { return Cell{Kind: KindString, Text: s} }

// Number returns a cell for f.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// Date returns a cell for t.
func Date(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// Bool returns a cell for b.
func Bool(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// Empty returns a blank cell.
func Empty() Cell { return Cell{} }

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// AsText renders the cell as text the way a spreadsheet displays raw values.
// Dates are rendered as YYYY-MM-DD.
func (c Cell) AsText() string {
	switch c.Kind {
	case KindString:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Time.Format("2006-01-02")
	case KindBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// At returns the cell at col, or an empty cell when the row is shorter.
func (r Row) At(col int) Cell {
	if col < 0 || col >= len(r) {
		return Empty()
	}
	return r[col]
}
