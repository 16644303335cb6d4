package render

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// SummarySheetName is the first sheet of a rendered workbook.
const SummarySheetName = "Resumen"

// DetailHeader is the column header row of every week table.
var DetailHeader = func() []string {
	h := []string{"Cliente", "Proyecto", "Fase", "Num Ticket", "Tarea/Actividad"}
	h = append(h, calendar.DayLetters[:]...)
	return append(h, domain.TotalLetter)
}()

// XLSXRenderer writes a workbook with a summary sheet followed by one sheet
// per week.
type XLSXRenderer struct{}

func (XLSXRenderer) Ext() string { return "xlsx" }

type xlsxStyles struct {
	title  spreadsheet.CellStyle
	header spreadsheet.CellStyle
	label  spreadsheet.CellStyle
	total  spreadsheet.CellStyle
}

var (
	corporateBlue = color.RGB(33, 92, 152)
	headerBlue    = color.RGB(45, 125, 206)
	summaryBlue   = color.RGB(192, 230, 245)
)

func newXLSXStyles(wb *spreadsheet.Workbook) xlsxStyles {
	filled := func(bg color.Color, fg color.Color, bold bool) spreadsheet.CellStyle {
		cs := wb.StyleSheet.AddCellStyle()
		font := wb.StyleSheet.AddFont()
		if bold {
			font.SetBold(true)
		}
		font.SetColor(fg)
		cs.SetFont(font)

		fill := wb.StyleSheet.Fills().AddFill()
		pf := fill.SetPatternFill()
		pf.SetPattern(sml.ST_PatternTypeSolid)
		pf.SetFgColor(bg)
		cs.SetFill(fill)
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentCenter)
		return cs
	}
	return xlsxStyles{
		title:  filled(corporateBlue, color.White, true),
		header: filled(headerBlue, color.White, true),
		label:  filled(corporateBlue, color.White, false),
		total:  filled(summaryBlue, color.Black, true),
	}
}

func (XLSXRenderer) Render(ctx context.Context, m domain.ReportModel, w io.Writer) error {
	wb := spreadsheet.New()
	st := newXLSXStyles(wb)

	writeSummarySheet(wb, st, m)
	for _, week := range m.Weeks {
		if err := ctx.Err(); err != nil {
			return renderErr("xlsx", err)
		}
		writeWeekSheet(wb, st, m, week)
	}
	if err := wb.Save(w); err != nil {
		return renderErr("xlsx", err)
	}
	return nil
}

func writeSummarySheet(wb *spreadsheet.Workbook, st xlsxStyles, m domain.ReportModel) {
	ws := wb.AddSheet()
	ws.SetName(SummarySheetName)
	setWidths(ws, 22, 40)

	info := [][2]string{
		{"Nombre Consultor", m.Consultant},
		{"Periodo", fmt.Sprint(m.Year)},
		{"Mes", m.Month},
		{"Cliente", m.Client},
		{"Proyecto", m.Project},
	}
	for _, kv := range info {
		row := ws.AddRow()
		c := row.AddCell()
		c.SetString(kv[0])
		c.SetStyle(st.label)
		row.AddCell().SetString(kv[1])
	}
	ws.AddRow()

	head := ws.AddRow()
	for _, s := range []string{m.Month, "Suma de Total"} {
		c := head.AddCell()
		c.SetString(s)
		c.SetStyle(st.total)
	}
	for _, week := range m.Weeks {
		row := ws.AddRow()
		row.AddCell().SetString(fmt.Sprintf("Semana %d", week.Group.WeekNumber))
		setHours(row.AddCell(), week.Group.Total)
	}
	foot := ws.AddRow()
	foot.AddCell().SetStyle(st.total)
	tc := foot.AddCell()
	setHours(tc, m.Total)
	tc.SetStyle(st.total)
	ws.AddRow()

	for _, kv := range [][2]string{{"Elaboró", m.Consultant}, {"Autorizó", m.Authorizer}} {
		row := ws.AddRow()
		c := row.AddCell()
		c.SetString(kv[0])
		c.SetStyle(st.label)
		row.AddCell().SetString(kv[1])
	}
}

func writeWeekSheet(wb *spreadsheet.Workbook, st xlsxStyles, m domain.ReportModel, week domain.WeekSection) {
	ws := wb.AddSheet()
	ws.SetName(fmt.Sprintf("Semana %d", week.Group.WeekNumber))
	setWidths(ws, 16, 28, 14, 12, 60, 5, 5, 5, 5, 5, 5, 5, 8)

	for _, kv := range [][2]string{
		{"Periodo", fmt.Sprint(m.Year)},
		{"Nombre Consultor", m.Consultant},
		{"Semana", fmt.Sprintf("Semana %d", week.Group.WeekNumber)},
		{"Cliente", m.Client},
		{"Proyecto", m.Project},
		{"Mes", m.Month},
	} {
		row := ws.AddRow()
		c := row.AddCell()
		c.SetString(kv[0])
		c.SetStyle(st.label)
		row.AddCell().SetString(kv[1])
	}
	ws.AddRow()

	// Title row: caption across the text columns, then the day numbers.
	title := ws.AddRow()
	titleRow := title.RowNumber()
	for i := 0; i < report.RowFirstDay; i++ {
		c := title.AddCell()
		if i == 0 {
			c.SetString("Reporte de Tiempos")
		}
		c.SetStyle(st.title)
	}
	for _, l := range week.Labels {
		c := title.AddCell()
		c.SetString(l.DayNumber)
		c.SetStyle(st.title)
	}
	ws.AddMergedCells(
		fmt.Sprintf("%s%d", reference.IndexToColumn(0), titleRow),
		fmt.Sprintf("%s%d", reference.IndexToColumn(report.RowDescription), titleRow),
	)

	header := ws.AddRow()
	for _, h := range DetailHeader {
		c := header.AddCell()
		c.SetString(h)
		c.SetStyle(st.header)
	}

	for _, r := range week.Group.Records {
		row := ws.AddRow()
		for _, v := range report.DetailRow(week.Group.Client, r) {
			c := row.AddCell()
			switch v := v.(type) {
			case report.Hours:
				setHours(c, float64(v))
			case string:
				if v != "" {
					c.SetString(v)
				}
			}
		}
	}

	totals := ws.AddRow()
	for i := 0; i < report.RowFirstDay; i++ {
		c := totals.AddCell()
		if i == report.RowDescription {
			c.SetString("Total")
		}
		c.SetStyle(st.total)
	}
	for _, h := range week.Group.HoursPerDay {
		c := totals.AddCell()
		setHours(c, h)
		c.SetStyle(st.total)
	}
	c := totals.AddCell()
	setHours(c, week.Group.Total)
	c.SetStyle(st.total)
}

// setHours writes h as a number, or the text NaN when it is not finite.
func setHours(c spreadsheet.Cell, h float64) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		c.SetString(report.Hours(h).String())
		return
	}
	c.SetNumber(h)
}

func setWidths(ws spreadsheet.Sheet, widths ...float64) {
	for i, w := range widths {
		w := w
		custom := true
		col := ws.Column(uint32(i + 1))
		col.X().WidthAttr = &w
		col.X().CustomWidthAttr = &custom
	}
}
