package sheet

import (
	"bytes"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
)

// Encode writes sheets as an XLSX workbook. Date cells are stored as serials
// with the standard date format so Decode reads them back as KindDate.
func Encode(w io.Writer, sheets []Sheet) error {
	wb := spreadsheet.New()
	dateStyle := wb.StyleSheet.AddCellStyle()
	dateStyle.SetNumberFormatStandard(spreadsheet.StandardFormatDate)

	for _, s := range sheets {
		ws := wb.AddSheet()
		if s.Name != "" {
			ws.SetName(s.Name)
		}
		for _, r := range s.Rows {
			row := ws.AddRow()
			for _, c := range r {
				cell := row.AddCell()
				switch c.Kind {
				case KindString:
					cell.SetString(c.Text)
				case KindNumber:
					cell.SetNumber(c.Number)
				case KindDate:
					cell.SetNumber(TimeToSerial(c.Time))
					cell.SetStyle(dateStyle)
				case KindBool:
					cell.SetBool(c.Bool)
				}
			}
		}
	}
	return wb.Save(w)
}

// EncodeBytes is Encode into memory.
func EncodeBytes(sheets []Sheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, sheets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
