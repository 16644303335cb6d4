package importer

import (
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/sheet"
)

// Result is the outcome of extracting one or more sheets.
type Result struct {
	Records  []domain.ActivityRecord
	Issues   []CellIssue
	RowsRead int
}

func (r *Result) append(other Result) {
	r.Records = append(r.Records, other.Records...)
	r.Issues = append(r.Issues, other.Issues...)
	r.RowsRead += other.RowsRead
}

// Extract maps the data rows of one sheet (rows[0] is the header) onto
// activity records and keeps only those whose project equals target exactly:
// case-sensitive, no trimming. Issues are reported only for rows that pass
// the project filter.
func Extract(rows []sheet.Row, target string, opts Options) Result {
	var res Result
	if len(rows) <= 1 {
		return res
	}
	for i, row := range rows[1:] {
		res.RowsRead++
		parsed := ParseRow(row, i+2)
		if parsed.Record.Project != target {
			continue
		}
		res.Issues = append(res.Issues, parsed.Issues...)
		if opts.Strict && !parsed.Valid() {
			continue
		}
		res.Records = append(res.Records, parsed.Record)
	}
	return res
}

// ExtractWorkbook extracts the first sheet of a decoded workbook. Later
// sheets (summaries, pivots) are ignored even when they mention the project.
func ExtractWorkbook(sheets []sheet.Sheet, target string, opts Options) Result {
	if len(sheets) == 0 {
		return Result{}
	}
	first := sheets[0]
	res := Extract(first.Rows, target, opts)
	for i := range res.Issues {
		res.Issues[i].Sheet = first.Name
	}
	return res
}
