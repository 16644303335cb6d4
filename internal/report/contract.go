package report

import (
	"math"
	"strconv"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// Hours is an hour amount as it appears in rendered output. Values that are
// not finite print and marshal as "NaN".
type Hours float64

func (h Hours) String() string {
	f := float64(h)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (h Hours) MarshalJSON() ([]byte, error) {
	f := float64(h)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(`"NaN"`), nil
	}
	return []byte(h.String()), nil
}

// Contract is the structure handed to renderers.
type Contract struct {
	Year       int            `json:"year"`
	Month      string         `json:"month"`
	Employee   string         `json:"employee"`
	Client     string         `json:"client"`
	Project    string         `json:"project"`
	Authorizer string         `json:"authorizer"`
	GrandTotal Hours          `json:"grandTotal"`
	Weeks      []WeekContract `json:"weeks"`
}

// WeekContract is one week table.
type WeekContract struct {
	WeekNumber  int         `json:"weekNumber"`
	DateLabels  []DateLabel `json:"dateLabels"`
	Rows        [][]any     `json:"rows"`
	TotalPerDay []Hours     `json:"totalPerDay"`
	GrandTotal  Hours       `json:"grandTotal"`
}

type DateLabel struct {
	DayNumber string `json:"dayNumber"`
	Month     int    `json:"month"`
	Letter    string `json:"letter"`
}

// Detail row layout: five text columns, seven day columns, the row total.
const (
	RowClient = iota
	RowProject
	RowPhase
	RowTicket
	RowDescription
	RowFirstDay
	RowTotal = RowFirstDay + domain.DaysPerWeek
	RowWidth = RowTotal + 1
)

// DetailRow lays a record out as a week table row. The record's hours sit
// under its own weekday; the other day cells are empty strings.
func DetailRow(client string, r domain.DayRecord) []any {
	row := make([]any, RowWidth)
	row[RowClient] = client
	row[RowProject] = r.Project
	row[RowPhase] = r.Phase
	row[RowTicket] = r.Ticket
	row[RowDescription] = r.Description
	for d := 0; d < domain.DaysPerWeek; d++ {
		row[RowFirstDay+d] = ""
	}
	row[RowFirstDay+r.DayOfWeek] = Hours(r.Hours)
	row[RowTotal] = Hours(r.Hours)
	return row
}

// ToContract converts an assembled model into the renderer contract.
func ToContract(m domain.ReportModel) Contract {
	c := Contract{
		Year:       m.Year,
		Month:      m.Month,
		Employee:   m.Consultant,
		Client:     m.Client,
		Project:    m.Project,
		Authorizer: m.Authorizer,
		GrandTotal: Hours(m.Total),
		Weeks:      make([]WeekContract, 0, len(m.Weeks)),
	}
	for _, w := range m.Weeks {
		wc := WeekContract{
			WeekNumber:  w.Group.WeekNumber,
			DateLabels:  make([]DateLabel, 0, len(w.Labels)),
			Rows:        make([][]any, 0, len(w.Group.Records)),
			TotalPerDay: make([]Hours, 0, domain.DaysPerWeek),
			GrandTotal:  Hours(w.Group.Total),
		}
		for _, l := range w.Labels {
			wc.DateLabels = append(wc.DateLabels, DateLabel{DayNumber: l.DayNumber, Month: l.Month, Letter: l.Letter})
		}
		for _, r := range w.Group.Records {
			wc.Rows = append(wc.Rows, DetailRow(w.Group.Client, r))
		}
		for _, h := range w.Group.HoursPerDay {
			wc.TotalPerDay = append(wc.TotalPerDay, Hours(h))
		}
		c.Weeks = append(c.Weeks, wc)
	}
	return c
}
