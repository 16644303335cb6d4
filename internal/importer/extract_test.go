package importer

import (
	"math"
	"testing"

	"github.com/alexanderramin/timesheet/internal/sheet"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FiltersByProject(t *testing.T) {
	rows := []sheet.Row{
		testutil.HeaderRow(),
		testutil.DataRow("2024-03-04", "T1", "ProjectA", "a1", 8, "Dev"),
		testutil.DataRow("2024-03-05", "T2", "ProjectB", "b1", 4, "Dev"),
		testutil.DataRow("2024-03-06", "T3", "ProjectA", "a2", 6, "QA"),
		testutil.DataRow("2024-03-07", "T4", "ProjectB", "b2", 2, "Dev"),
	}

	res := Extract(rows, "ProjectA", Options{})
	require.Len(t, res.Records, 2)
	for _, r := range res.Records {
		assert.Equal(t, "ProjectA", r.Project)
	}
	assert.Equal(t, "a1", res.Records[0].Description)
	assert.Equal(t, "a2", res.Records[1].Description)
	assert.Equal(t, 4, res.RowsRead)
	assert.Empty(t, res.Issues)
}

func TestExtract_ProjectMatchIsExact(t *testing.T) {
	rows := []sheet.Row{
		testutil.HeaderRow(),
		testutil.DataRow("2024-03-04", "T1", "projecta", "lower", 1, "Dev"),
		testutil.DataRow("2024-03-04", "T1", " ProjectA", "padded", 1, "Dev"),
		testutil.DataRow("2024-03-04", "T1", "ProjectA", "exact", 1, "Dev"),
	}

	res := Extract(rows, "ProjectA", Options{})
	require.Len(t, res.Records, 1)
	assert.Equal(t, "exact", res.Records[0].Description)
}

func TestExtract_MapsFixedColumns(t *testing.T) {
	rows := []sheet.Row{
		testutil.HeaderRow(),
		{
			sheet.Date(testutil.Date("2024-03-04")), sheet.String("#001731"), sheet.String("ProjA"),
			sheet.String("Ajuste integración"), sheet.String("ignored"), sheet.Number(7.5), sheet.String("Desarrollo"),
		},
	}

	res := Extract(rows, "ProjA", Options{})
	require.Len(t, res.Records, 1)
	r := res.Records[0]
	assert.Equal(t, testutil.Date("2024-03-04"), r.Date)
	assert.Equal(t, 10, r.WeekNumber)
	assert.Equal(t, "#001731", r.Ticket)
	assert.Equal(t, "Ajuste integración", r.Description)
	assert.Equal(t, 7.5, r.Hours)
	assert.Equal(t, "Desarrollo", r.Phase)
}

func TestExtract_HeaderOnlyOrEmpty(t *testing.T) {
	assert.Empty(t, Extract(nil, "ProjA", Options{}).Records)
	assert.Empty(t, Extract([]sheet.Row{testutil.HeaderRow()}, "ProjA", Options{}).Records)
}

func TestExtract_LenientPropagatesMalformedCells(t *testing.T) {
	rows := []sheet.Row{
		testutil.HeaderRow(),
		{sheet.String("not a date"), sheet.String("T1"), sheet.String("ProjA"), sheet.String("d"), sheet.Empty(), sheet.String("ocho"), sheet.String("Dev")},
	}

	res := Extract(rows, "ProjA", Options{})
	require.Len(t, res.Records, 1)
	r := res.Records[0]
	assert.False(t, r.HasValidDate())
	assert.Equal(t, 0, r.WeekNumber)
	assert.True(t, math.IsNaN(r.Hours))

	require.Len(t, res.Issues, 2)
	assert.Equal(t, ColDate, res.Issues[0].Column)
	assert.Equal(t, 2, res.Issues[0].Row)
	assert.Equal(t, ColHours, res.Issues[1].Column)
}

func TestExtract_StrictDropsMalformedRows(t *testing.T) {
	rows := []sheet.Row{
		testutil.HeaderRow(),
		testutil.DataRow("2024-03-04", "T1", "ProjA", "ok", 8, "Dev"),
		{sheet.Date(testutil.Date("2024-03-05")), sheet.String("T2"), sheet.String("ProjA"), sheet.String("bad"), sheet.Empty(), sheet.Empty(), sheet.String("Dev")},
	}

	res := Extract(rows, "ProjA", Options{Strict: true})
	require.Len(t, res.Records, 1)
	assert.Equal(t, "ok", res.Records[0].Description)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, 3, res.Issues[0].Row)
	assert.Contains(t, res.Issues[0].Error(), "missing hours")
}

func TestExtract_IssuesOnlyForMatchingProject(t *testing.T) {
	rows := []sheet.Row{
		testutil.HeaderRow(),
		{sheet.Empty(), sheet.Empty(), sheet.String("Other"), sheet.Empty(), sheet.Empty(), sheet.Empty(), sheet.Empty()},
	}
	res := Extract(rows, "ProjA", Options{})
	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Records)
}

func TestExtractWorkbook_FirstSheetOnly(t *testing.T) {
	sheets := []sheet.Sheet{
		{Name: "Marzo", Rows: []sheet.Row{testutil.HeaderRow(), {sheet.String("x"), sheet.Empty(), sheet.String("ProjA")}}},
		{Name: "Resumen", Rows: []sheet.Row{testutil.HeaderRow(), testutil.DataRow("2024-03-04", "T1", "ProjA", "summary", 40, "Dev")}},
	}

	res := ExtractWorkbook(sheets, "ProjA", Options{})
	require.Len(t, res.Records, 1)
	assert.NotEqual(t, "summary", res.Records[0].Description)
	assert.Equal(t, 1, res.RowsRead)
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, "Marzo", res.Issues[0].Sheet)

	assert.Empty(t, ExtractWorkbook(nil, "ProjA", Options{}).Records)
}
