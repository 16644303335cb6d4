package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timesheet/internal/calendar"
	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// previewChrome is the number of lines around the table: header, footer,
// grand total and help.
const previewChrome = 8

type previewKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var previewKeys = previewKeyMap{
	Prev: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev week")),
	Next: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next week")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// previewModel pages through the week groups of a preview, one table per week.
type previewModel struct {
	groups []domain.WeekGroup
	total  float64
	issues int
	year   int
	page   int

	table table.Model
	help  help.Model
}

func newPreviewModel(res *service.PreviewResult) previewModel {
	m := previewModel{
		groups: res.Groups,
		total:  res.Total,
		issues: len(res.Issues),
		year:   formatter.GroupYear(res.Groups),
		help:   help.New(),
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorTitle).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorAccent)

	m.table = table.New(
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithStyles(styles),
	)
	m.showPage(0)
	return m
}

func (m *previewModel) showPage(page int) {
	if len(m.groups) == 0 {
		return
	}
	m.page = page
	g := m.groups[page]
	labels := calendar.SundayStartWeekDates(m.year, g.WeekNumber)

	headers := formatter.WeekHeaders(labels)
	widths := []int{10, 10, 8, 32}
	cols := make([]table.Column, 0, len(headers))
	for i, h := range headers {
		w := 5
		if i < len(widths) {
			w = widths[i]
		}
		if i == len(headers)-1 {
			w = 6
		}
		cols = append(cols, table.Column{Title: h, Width: w})
	}

	rows := make([]table.Row, 0, len(g.Records))
	for _, r := range g.Records {
		date := "—"
		if r.HasValidDate() {
			date = r.Date.Format(dateLayout)
		}
		row := table.Row{date, r.Ticket, r.Phase, r.Description}
		for d := 0; d < domain.DaysPerWeek; d++ {
			cell := ""
			if d == r.DayOfWeek {
				cell = report.Hours(r.Hours).String()
			}
			row = append(row, cell)
		}
		rows = append(rows, append(row, report.Hours(r.Hours).String()))
	}

	// Rows must be cleared before the column count changes.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if h := msg.Height - previewChrome; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, previewKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, previewKeys.Next):
			if m.page < len(m.groups)-1 {
				m.showPage(m.page + 1)
			}
			return m, nil
		case key.Matches(msg, previewKeys.Prev):
			if m.page > 0 {
				m.showPage(m.page - 1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if len(m.groups) == 0 {
		return formatter.Dim("No records.") + "\n"
	}
	g := m.groups[m.page]

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Semana %d · %d/%d", g.WeekNumber, m.page+1, len(m.groups))))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	days := make([]string, 0, domain.DaysPerWeek)
	for i, h := range g.HoursPerDay {
		days = append(days, calendar.DayLetters[i]+" "+formatter.Hours(h))
	}
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		formatter.Bold("Semana:"), formatter.Hours(g.Total),
		formatter.Dim("por día"), strings.Join(days, "  "))
	fmt.Fprintf(&b, "%s %s", formatter.Bold("Total general:"), formatter.Hours(m.total))
	if m.issues > 0 {
		b.WriteString("   " + formatter.StyleWarn.Render(fmt.Sprintf("⚠ %d malformed cell(s)", m.issues)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(previewKeys))
	return b.String()
}
