package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/go-pdf/fpdf"
)

// PDFRenderer writes a landscape A4 document: a summary page followed by one
// page per week.
type PDFRenderer struct{}

func (PDFRenderer) Ext() string { return "pdf" }

type rgb struct{ r, g, b int }

var (
	pdfBlue    = rgb{33, 92, 152}
	pdfHeader  = rgb{45, 125, 206}
	pdfSummary = rgb{192, 230, 245}
	pdfWhite   = rgb{255, 255, 255}
	pdfBlack   = rgb{0, 0, 0}
)

const (
	pdfMargin     = 10.0
	pdfLineHeight = 3.5
	signatureName = "signature"
)

// detail table column widths in mm: five text columns, seven days, total.
var pdfColumnWidths = []float64{25, 40, 20, 20, 95, 8, 8, 8, 8, 8, 8, 8, 12}

// SignatureImageType maps a signature image to the fpdf image type, sniffing
// the data when mime is empty.
func SignatureImageType(mime string, data []byte) (string, error) {
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	switch strings.ToLower(mime) {
	case "image/png":
		return "PNG", nil
	case "image/jpeg", "image/jpg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported signature image type %q", mime)
	}
}

type pdfDoc struct {
	pdf          *fpdf.Fpdf
	tr           func(string) string
	hasSignature bool
}

func (d *pdfDoc) fill(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }
func (d *pdfDoc) text(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }
func (d *pdfDoc) draw(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }
func (d *pdfDoc) font(style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
}

func (d *pdfDoc) cell(w, h float64, s, border, align string, fill bool) {
	d.pdf.CellFormat(w, h, d.tr(s), border, 0, align, fill, 0, "")
}

func (PDFRenderer) Render(ctx context.Context, m domain.ReportModel, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(fmt.Sprintf("Reporte de Tiempos %s %d", m.Month, m.Year), true)
	pdf.SetAuthor(m.Consultant, true)
	pdf.SetCreator("timesheet", false)

	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if len(m.Signature) > 0 {
		typ, err := SignatureImageType(m.SignatureMIME, m.Signature)
		if err != nil {
			return renderErr("pdf", err)
		}
		pdf.RegisterImageOptionsReader(signatureName, fpdf.ImageOptions{ImageType: typ}, bytes.NewReader(m.Signature))
		d.hasSignature = pdf.Ok()
	}

	d.summaryPage(m)
	for _, week := range m.Weeks {
		if err := ctx.Err(); err != nil {
			return renderErr("pdf", err)
		}
		d.weekPage(m, week)
	}

	if err := pdf.Error(); err != nil {
		return renderErr("pdf", err)
	}
	if err := pdf.Output(w); err != nil {
		return renderErr("pdf", err)
	}
	return nil
}

func (d *pdfDoc) infoBlock(x float64, rows [][2]string, labelW, valueW float64) {
	for _, kv := range rows {
		d.pdf.SetX(x)
		d.font("B", 10)
		d.fill(pdfBlue)
		d.text(pdfWhite)
		d.cell(labelW, 5, kv[0], "", "L", true)
		d.font("", 10)
		d.text(pdfBlue)
		d.cell(valueW, 5, kv[1], "", "L", false)
		d.pdf.Ln(5)
	}
}

func (d *pdfDoc) summaryPage(m domain.ReportModel) {
	d.pdf.AddPage()
	d.pdf.SetY(20)
	d.infoBlock(65, [][2]string{
		{"Nombre Consultor", m.Consultant},
		{"Periodo", fmt.Sprint(m.Year)},
		{"Mes", m.Month},
	}, 32, 80)

	d.pdf.Ln(8)
	x := 70.0
	d.draw(rgb{68, 179, 225})
	d.text(pdfBlack)

	d.pdf.SetX(x)
	d.font("", 10)
	d.fill(pdfSummary)
	d.cell(35, 5, "Cliente", "B", "L", true)
	d.cell(25, 5, m.Client, "B", "R", true)
	d.pdf.Ln(8)

	d.pdf.SetX(x)
	d.font("B", 10)
	d.cell(35, 5, "Periodo", "B", "L", true)
	d.cell(25, 5, "Suma de Total", "B", "R", true)
	d.pdf.Ln(5)
	d.pdf.SetX(x)
	d.cell(35, 5, fmt.Sprint(m.Year), "B", "L", false)
	d.cell(25, 5, report.Hours(m.Total).String(), "B", "R", false)
	d.pdf.Ln(10)

	tableY := d.pdf.GetY()
	d.pdf.SetX(x + 5)
	d.cell(40, 5, m.Month, "", "C", false)
	d.cell(15, 5, report.Hours(m.Total).String(), "", "R", false)
	d.pdf.Ln(5)
	d.font("", 10)
	for _, week := range m.Weeks {
		d.pdf.SetX(x + 5)
		d.cell(40, 5, fmt.Sprintf("Semana %d", week.Group.WeekNumber), "", "C", false)
		d.cell(15, 5, report.Hours(week.Group.Total).String(), "", "R", false)
		d.pdf.Ln(5)
	}
	d.pdf.SetX(x + 5)
	d.font("B", 10)
	d.cell(40, 5, "", "T", "R", true)
	d.cell(15, 5, report.Hours(m.Total).String(), "T", "R", true)

	sx := x + 80
	if d.hasSignature {
		d.pdf.ImageOptions(signatureName, sx+20, tableY-15, 17, 13, false, fpdf.ImageOptions{}, 0, "")
	}
	d.signatureLine(sx, tableY, "Elaboró", m.Consultant)
	d.signatureLine(sx, tableY+37, "Autorizó", m.Authorizer)
}

func (d *pdfDoc) signatureLine(x, y float64, label, name string) {
	d.pdf.SetXY(x, y)
	d.draw(pdfBlack)
	d.text(pdfBlack)
	d.font("B", 10)
	d.cell(20, 5, label, "", "L", false)
	d.font("", 10)
	d.cell(60, 5, name, "B", "L", false)
}

func (d *pdfDoc) weekPage(m domain.ReportModel, week domain.WeekSection) {
	d.pdf.AddPage()
	d.pdf.SetY(5)
	d.infoBlock(55, [][2]string{
		{"Periodo", fmt.Sprint(m.Year)},
		{"Nombre Consultor", m.Consultant},
		{"Semana", fmt.Sprintf("Semana %d", week.Group.WeekNumber)},
		{"Cliente", m.Client},
		{"Proyecto", m.Project},
	}, 40, 80)

	d.pdf.SetXY(235, 35)
	d.font("B", 10)
	d.text(pdfBlue)
	d.cell(40, 5, m.Month, "", "L", false)
	d.pdf.SetY(42)

	d.tableHeader(week.Labels)
	d.font("", 6)
	d.text(pdfBlack)
	for _, r := range week.Group.Records {
		d.detailRow(week.Group.Client, r, week.Labels)
	}
	d.totalsRow(week.Group)
}

func (d *pdfDoc) tableHeader(labels []domain.WeekDateLabel) {
	d.draw(pdfBlack)
	d.pdf.SetLineWidth(0.2)
	d.font("B", 8)
	d.text(pdfWhite)

	d.fill(pdfBlue)
	d.pdf.SetX(pdfMargin)
	var textW float64
	for _, w := range pdfColumnWidths[:report.RowFirstDay] {
		textW += w
	}
	d.cell(textW, 4, "Reporte de Tiempos", "1", "C", true)
	for i, l := range labels {
		d.cell(pdfColumnWidths[report.RowFirstDay+i], 4, l.DayNumber, "1", "C", true)
	}
	d.pdf.Ln(4)

	d.fill(pdfHeader)
	d.pdf.SetX(pdfMargin)
	for i, h := range DetailHeader {
		d.cell(pdfColumnWidths[i], 4, h, "1", "C", true)
	}
	d.pdf.Ln(4)
}

func (d *pdfDoc) detailRow(client string, r domain.DayRecord, labels []domain.WeekDateLabel) {
	cells := report.DetailRow(client, r)
	texts := make([]string, len(cells))
	lines := 1
	for i, v := range cells {
		texts[i] = d.tr(fmt.Sprint(v))
		if i < report.RowFirstDay {
			if n := d.lineCount(texts[i], pdfColumnWidths[i]); n > lines {
				lines = n
			}
		}
	}
	h := float64(lines) * pdfLineHeight
	if h < 4 {
		h = 4
	}

	_, pageH := d.pdf.GetPageSize()
	if d.pdf.GetY()+h > pageH-pdfMargin {
		d.pdf.AddPage()
		d.pdf.SetY(pdfMargin)
		d.tableHeader(labels)
		d.font("", 6)
		d.text(pdfBlack)
	}

	x, y := pdfMargin, d.pdf.GetY()
	for i, s := range texts {
		w := pdfColumnWidths[i]
		if i < report.RowFirstDay {
			d.pdf.Rect(x, y, w, h, "D")
			d.pdf.SetXY(x, y)
			align := "C"
			if i == report.RowProject || i == report.RowDescription {
				align = "L"
			}
			d.pdf.MultiCell(w, pdfLineHeight, s, "", align, false)
		} else {
			d.pdf.SetXY(x, y)
			d.pdf.CellFormat(w, h, s, "1", 0, "C", false, 0, "")
		}
		x += w
	}
	d.pdf.SetXY(pdfMargin, y+h)
}

// lineCount estimates how many lines MultiCell needs for s (already
// translated) in a column of width w. It errs on the high side.
func (d *pdfDoc) lineCount(s string, w float64) int {
	usable := w - 2
	if usable <= 0 || s == "" {
		return 1
	}
	return int(d.pdf.GetStringWidth(s)/usable) + 1
}

func (d *pdfDoc) totalsRow(g domain.WeekGroup) {
	d.font("B", 7)
	d.fill(pdfSummary)
	d.pdf.SetX(pdfMargin)
	var textW float64
	for _, w := range pdfColumnWidths[:report.RowFirstDay] {
		textW += w
	}
	d.cell(textW, 4, "Total", "1", "R", true)
	for i, h := range g.HoursPerDay {
		d.cell(pdfColumnWidths[report.RowFirstDay+i], 4, report.Hours(h).String(), "1", "C", true)
	}
	d.cell(pdfColumnWidths[report.RowTotal], 4, report.Hours(g.Total).String(), "1", "C", true)
	d.pdf.Ln(4)
}
