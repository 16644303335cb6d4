package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/importer"
)

// WeekHeaders are the columns of a week detail table.
func WeekHeaders(labels []domain.WeekDateLabel) []string {
	headers := []string{"Fecha", "Ticket", "Fase", "Descripción"}
	for i, letter := range calendar.DayLetters {
		h := letter
		if i < len(labels) && labels[i].DayNumber != "" {
			h = letter + " " + labels[i].DayNumber
		}
		headers = append(headers, h)
	}
	return append(headers, domain.TotalLetter)
}

// WeekRows returns one table row per record, hours under the record's day.
func WeekRows(g domain.WeekGroup) [][]string {
	rows := make([][]string, 0, len(g.Records))
	for _, r := range g.Records {
		row := []string{ShortDate(r.Date), r.Ticket, r.Phase, truncate(r.Description, 40)}
		for d := 0; d < domain.DaysPerWeek; d++ {
			cell := ""
			if d == r.DayOfWeek {
				cell = Hours(r.Hours)
			}
			row = append(row, cell)
		}
		rows = append(rows, append(row, Hours(r.Hours)))
	}
	return rows
}

// WeekFooter is the per-day totals row.
func WeekFooter(g domain.WeekGroup) []string {
	row := []string{Bold("Total"), "", "", ""}
	for _, h := range g.HoursPerDay {
		row = append(row, Hours(h))
	}
	return append(row, Bold(Hours(g.Total)))
}

// FormatWeekGroup renders one week as a detail table with a totals footer.
func FormatWeekGroup(g domain.WeekGroup, year int) string {
	labels := calendar.SundayStartWeekDates(year, g.WeekNumber)
	right := make(map[int]bool, domain.DaysPerWeek+1)
	for i := 4; i < 4+domain.DaysPerWeek+1; i++ {
		right[i] = true
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Semana %d", g.WeekNumber)))
	b.WriteString("\n")
	b.WriteString(Table{
		Headers: WeekHeaders(labels),
		Rows:    WeekRows(g),
		Footer:  WeekFooter(g),
		Right:   right,
	}.Render())
	return b.String()
}

// FormatWeekGroups renders every week followed by a grand total line.
func FormatWeekGroups(groups []domain.WeekGroup, total float64) string {
	if len(groups) == 0 {
		return Dim("No records.") + "\n"
	}
	year := GroupYear(groups)
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(FormatWeekGroup(g, year))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %s\n", Bold("Total general:"), Hours(total))
	return b.String()
}

// GroupYear is the year used for day labels: the year of the first dated
// record, as in the assembled report.
func GroupYear(groups []domain.WeekGroup) int {
	for _, g := range groups {
		for _, r := range g.Records {
			if r.HasValidDate() {
				return r.Date.Year()
			}
		}
	}
	return 0
}

// FormatSummary renders the per-week totals of a report.
func FormatSummary(m domain.ReportModel) string {
	rows := make([][]string, 0, len(m.Weeks))
	for _, w := range m.Weeks {
		rows = append(rows, []string{
			"Semana " + strconv.Itoa(w.Group.WeekNumber),
			strconv.Itoa(len(w.Group.Records)),
			Hours(w.Group.Total),
		})
	}
	info := KeyValues(
		[2]string{"Consultor", m.Consultant},
		[2]string{"Cliente", m.Client},
		[2]string{"Proyecto", m.Project},
		[2]string{"Periodo", fmt.Sprintf("%s %d", m.Month, m.Year)},
		[2]string{"Autorizó", m.Authorizer},
	)
	table := Table{
		Headers: []string{"Semana", "Registros", "Horas"},
		Rows:    rows,
		Footer:  []string{Bold("Total"), strconv.Itoa(m.RecordCount()), Bold(Hours(m.Total))},
		Right:   map[int]bool{1: true, 2: true},
	}.Render()
	return info + "\n\n" + table
}

// FormatIssues lists malformed cells, at most limit of them.
func FormatIssues(issues []importer.CellIssue, limit int) string {
	if len(issues) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleWarn.Render(fmt.Sprintf("⚠ %d malformed cell(s)", len(issues))))
	b.WriteString("\n")
	for i, issue := range issues {
		if limit > 0 && i == limit {
			b.WriteString(Dim(fmt.Sprintf("  … and %d more", len(issues)-limit)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  " + Dim(issue.Error()) + "\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
