package importer

// Fixed column layout of a timesheet export (0-indexed). The first row of
// every sheet is a header and is skipped.
const (
	ColDate        = 0
	ColTicket      = 1
	ColProject     = 2
	ColDescription = 3
	ColReserved    = 4
	ColHours       = 5
	ColPhase       = 6
)

var columnNames = map[int]string{
	ColDate:        "date",
	ColTicket:      "ticket",
	ColProject:     "project",
	ColDescription: "description",
	ColHours:       "hours",
	ColPhase:       "phase",
}

// ColumnName returns the field name mapped to col.
func ColumnName(col int) string {
	if n, ok := columnNames[col]; ok {
		return n
	}
	return "unused"
}

// Options controls how malformed cells are treated.
type Options struct {
	// Strict drops rows that carry any cell issue. When false, malformed
	// hours propagate as NaN and malformed dates as the zero time.
	Strict bool
}
