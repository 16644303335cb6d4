package sheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// Decode reads every worksheet of the XLSX workbook in r. Rows keep their
// sheet position: a missing row decodes as an empty Row and missing cells
// inside a row decode as KindEmpty.
func Decode(r io.ReaderAt, size int64) ([]Sheet, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	d := decoder{wb: wb, dateStyles: dateStyleIDs(wb), uses1904: uses1904(wb)}

	sheets := make([]Sheet, 0, len(wb.Sheets()))
	for _, ws := range wb.Sheets() {
		sheets = append(sheets, d.sheet(ws))
	}
	return sheets, nil
}

// DecodeBytes decodes an in-memory workbook.
func DecodeBytes(data []byte) ([]Sheet, error) {
	return Decode(bytes.NewReader(data), int64(len(data)))
}

// DecodeFile decodes the workbook at path.
func DecodeFile(path string) ([]Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return DecodeBytes(data)
}

type decoder struct {
	wb         *spreadsheet.Workbook
	dateStyles map[uint32]bool
	uses1904   bool
}

func (d decoder) sheet(ws spreadsheet.Sheet) Sheet {
	out := Sheet{Name: ws.Name()}
	for _, row := range ws.Rows() {
		idx := int(row.RowNumber()) - 1
		if idx < 0 {
			continue
		}
		for len(out.Rows) < idx {
			out.Rows = append(out.Rows, Row{})
		}

		var cells Row
		for _, c := range row.Cells() {
			colName, err := c.Column()
			if err != nil {
				continue
			}
			col := int(reference.ColumnToIndex(colName))
			for len(cells) <= col {
				cells = append(cells, Empty())
			}
			cells[col] = d.cell(c)
		}
		if idx < len(out.Rows) {
			out.Rows[idx] = cells
		} else {
			out.Rows = append(out.Rows, cells)
		}
	}
	return out
}

func (d decoder) cell(c spreadsheet.Cell) Cell {
	x := c.X()
	switch x.TAttr {
	case sml.ST_CellTypeS, sml.ST_CellTypeStr, sml.ST_CellTypeInlineStr, sml.ST_CellTypeE:
		s := c.GetString()
		if s == "" {
			return Empty()
		}
		return String(s)
	case sml.ST_CellTypeB:
		if x.V == nil {
			return Empty()
		}
		return Bool(*x.V == "1" || strings.EqualFold(*x.V, "true"))
	}

	if x.V == nil || *x.V == "" {
		return Empty()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*x.V), 64)
	if err != nil {
		return String(*x.V)
	}
	if x.SAttr != nil && d.dateStyles[*x.SAttr] {
		return Date(SerialToTime(f, d.uses1904))
	}
	return Number(f)
}

// dateStyleIDs returns the cell style indexes whose number format renders a date.
func dateStyleIDs(wb *spreadsheet.Workbook) map[uint32]bool {
	ids := make(map[uint32]bool)
	ss := wb.StyleSheet.X()
	if ss == nil || ss.CellXfs == nil {
		return ids
	}

	custom := make(map[uint32]bool)
	if ss.NumFmts != nil {
		for _, nf := range ss.NumFmts.NumFmt {
			if nf != nil && isDateFormatCode(nf.FormatCodeAttr) {
				custom[nf.NumFmtIdAttr] = true
			}
		}
	}

	for i, xf := range ss.CellXfs.Xf {
		if xf == nil || xf.NumFmtIdAttr == nil {
			continue
		}
		id := *xf.NumFmtIdAttr
		if builtinDateFormats[id] || custom[id] {
			ids[uint32(i)] = true
		}
	}
	return ids
}

func uses1904(wb *spreadsheet.Workbook) bool {
	x := wb.X()
	if x == nil || x.WorkbookPr == nil || x.WorkbookPr.Date1904Attr == nil {
		return false
	}
	return *x.WorkbookPr.Date1904Attr
}
