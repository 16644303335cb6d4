package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(days [domain.DaysPerWeek]float64) float64 {
	var s float64
	for _, h := range days {
		s += h
	}
	return s
}

func TestAggregate_SingleMondayRecord(t *testing.T) {
	records := []domain.ActivityRecord{testutil.NewTestRecord("2024-03-04", "ProjA", 8)}

	groups := Aggregate(records, "Acme")
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 10, g.WeekNumber)
	assert.Equal(t, "Acme", g.Client)
	assert.Equal(t, 8.0, g.Total)
	assert.Equal(t, [domain.DaysPerWeek]float64{0, 8, 0, 0, 0, 0, 0}, g.HoursPerDay)
	require.Len(t, g.Records, 1)
	assert.Equal(t, 1, g.Records[0].DayOfWeek)
}

func TestAggregate_GroupsSortedAndDaysStable(t *testing.T) {
	records := []domain.ActivityRecord{
		testutil.NewTestRecord("2024-03-15", "P", 2, testutil.WithTicket("fri")),
		testutil.NewTestRecord("2024-03-06", "P", 3, testutil.WithTicket("wed-a")),
		testutil.NewTestRecord("2024-03-04", "P", 4, testutil.WithTicket("mon")),
		testutil.NewTestRecord("2024-03-06", "P", 1, testutil.WithTicket("wed-b")),
		testutil.NewTestRecord("2024-03-11", "P", 5, testutil.WithTicket("mon2")),
	}

	groups := Aggregate(records, "C")
	require.Len(t, groups, 2)
	assert.Equal(t, 10, groups[0].WeekNumber)
	assert.Equal(t, 11, groups[1].WeekNumber)

	var tickets []string
	for _, r := range groups[0].Records {
		tickets = append(tickets, r.Ticket)
	}
	assert.Equal(t, []string{"mon", "wed-a", "wed-b"}, tickets)
	assert.Equal(t, 4.0, groups[0].HoursPerDay[1])
	assert.Equal(t, 4.0, groups[0].HoursPerDay[3])

	require.Len(t, groups[1].Records, 2)
	assert.Equal(t, "mon2", groups[1].Records[0].Ticket)
	assert.Equal(t, "fri", groups[1].Records[1].Ticket)
}

func TestAggregate_SundayComesFirst(t *testing.T) {
	// 2024-03-10 is a Sunday; ISO puts it in the same week as the preceding Monday.
	records := []domain.ActivityRecord{
		testutil.NewTestRecord("2024-03-04", "P", 1, testutil.WithTicket("mon")),
		testutil.NewTestRecord("2024-03-10", "P", 1, testutil.WithTicket("sun")),
	}
	groups := Aggregate(records, "C")
	require.Len(t, groups, 1)
	assert.Equal(t, "sun", groups[0].Records[0].Ticket)
	assert.Equal(t, 0, groups[0].Records[0].DayOfWeek)
}

func TestAggregate_TotalsMatchInput(t *testing.T) {
	var records []domain.ActivityRecord
	start := testutil.Date("2023-12-20")
	var want float64
	for i := 0; i < 60; i++ {
		d := start.AddDate(0, 0, i*2).Format("2006-01-02")
		h := float64(i%9) + 0.5
		want += h
		records = append(records, testutil.NewTestRecord(d, "P", h))
	}

	groups := Aggregate(records, "C")
	counts := map[int]int{}
	for _, r := range records {
		counts[r.WeekNumber]++
	}

	var got float64
	for _, g := range groups {
		assert.InDelta(t, g.Total, sum(g.HoursPerDay), 1e-9, "week %d", g.WeekNumber)
		assert.Len(t, g.Records, counts[g.WeekNumber], "week %d", g.WeekNumber)
		got += g.Total
	}
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, want, GrandTotal(groups), 1e-9)
	assert.Len(t, groups, len(counts))
}

func TestAggregate_NaNPoisonsDayAndTotal(t *testing.T) {
	records := []domain.ActivityRecord{
		testutil.NewTestRecord("2024-03-04", "P", 8),
		testutil.NewTestRecord("2024-03-05", "P", math.NaN()),
		testutil.NewTestRecord("2024-03-11", "P", 3),
	}

	groups := Aggregate(records, "C")
	require.Len(t, groups, 2)
	assert.Equal(t, 8.0, groups[0].HoursPerDay[1])
	assert.True(t, math.IsNaN(groups[0].HoursPerDay[2]))
	assert.True(t, math.IsNaN(groups[0].Total))
	assert.Equal(t, 3.0, groups[1].Total, "other weeks are unaffected")
}

func TestAggregate_SkipsRecordsWithoutDate(t *testing.T) {
	records := []domain.ActivityRecord{
		{Project: "P", Hours: 5},
		testutil.NewTestRecord("2024-03-04", "P", 2),
	}
	groups := Aggregate(records, "C")
	require.Len(t, groups, 1)
	assert.Equal(t, 2.0, groups[0].Total)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, "C"))
	assert.Zero(t, GrandTotal(nil))
}

func TestAggregate_DoesNotAliasInput(t *testing.T) {
	records := []domain.ActivityRecord{testutil.NewTestRecord("2024-03-04", "P", 8)}
	groups := Aggregate(records, "C")
	records[0].Ticket = "changed"
	assert.Equal(t, "T1", groups[0].Records[0].Ticket)
}

func ptr(t time.Time) *time.Time { return &t }

func TestFilterPeriod(t *testing.T) {
	records := []domain.ActivityRecord{
		testutil.NewTestRecord("2024-02-28", "P", 1, testutil.WithTicket("before")),
		testutil.NewTestRecord("2024-03-01", "P", 1, testutil.WithTicket("from")),
		testutil.NewTestRecord("2024-03-15", "P", 1, testutil.WithTicket("mid")),
		testutil.NewTestRecord("2024-03-31", "P", 1, testutil.WithTicket("to")),
		testutil.NewTestRecord("2024-04-01", "P", 1, testutil.WithTicket("after")),
	}
	now := testutil.Date("2024-12-31")

	tickets := func(rs []domain.ActivityRecord) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Ticket)
		}
		return out
	}

	tests := []struct {
		name   string
		period Period
		want   []string
	}{
		{"inclusive range", Period{From: ptr(testutil.Date("2024-03-01")), To: ptr(testutil.Date("2024-03-31"))}, []string{"from", "mid", "to"}},
		{"open start", Period{To: ptr(testutil.Date("2024-03-01"))}, []string{"before", "from"}},
		{"open end", Period{From: ptr(testutil.Date("2024-03-31"))}, []string{"to", "after"}},
		{"open", Period{}, []string{"before", "from", "mid", "to", "after"}},
		{"excludes all", Period{From: ptr(testutil.Date("2025-01-01"))}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tickets(FilterPeriod(records, tt.period, now)))
		})
	}
}

func TestFilterPeriod_OpenEndStopsAtNow(t *testing.T) {
	records := []domain.ActivityRecord{
		testutil.NewTestRecord("2024-03-01", "P", 1),
		testutil.NewTestRecord("2030-01-01", "P", 1),
	}
	got := FilterPeriod(records, Period{}, testutil.Date("2025-06-01"))
	require.Len(t, got, 1)
	assert.Equal(t, testutil.Date("2024-03-01"), got[0].Date)
}

func TestFilterPeriod_OpenEndKeepsLocalToday(t *testing.T) {
	brisbane := time.FixedZone("AEST", 10*60*60)
	now := time.Date(2024, 3, 6, 2, 0, 0, 0, brisbane)
	records := []domain.ActivityRecord{
		testutil.NewTestRecord("2024-03-06", "P", 8),
		testutil.NewTestRecord("2024-03-07", "P", 8),
	}

	got := FilterPeriod(records, Period{}, now)
	require.Len(t, got, 1, "record dated the local today is kept, tomorrow is not")
	assert.Equal(t, testutil.Date("2024-03-06"), got[0].Date)
}

func TestFilterPeriod_DropsRecordsWithoutDate(t *testing.T) {
	records := []domain.ActivityRecord{{Project: "P", Hours: 1}}
	assert.Empty(t, FilterPeriod(records, Period{}, time.Now()))
	assert.True(t, Period{}.IsOpen())
}
