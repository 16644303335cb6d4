package domain

// ReportModel is the renderer-ready timesheet. It owns copies of everything
// it references; nothing in it points back at caller state.
type ReportModel struct {
	Consultant string
	Client     string
	Project    string
	Authorizer string
	Year       int
	Month      string
	Weeks      []WeekSection
	Total      float64

	Signature     []byte
	SignatureMIME string
}

// WeekSection is one detail page of the report: the aggregated week and the
// Sunday-first day labels printed above its table.
type WeekSection struct {
	Group  WeekGroup
	Labels []WeekDateLabel
}

// RecordCount returns the number of detail rows across all weeks.
func (m ReportModel) RecordCount() int {
	n := 0
	for _, w := range m.Weeks {
		n += len(w.Group.Records)
	}
	return n
}
