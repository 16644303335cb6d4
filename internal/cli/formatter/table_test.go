package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AlignsVisibleWidths(t *testing.T) {
	out := stripANSI(Table{
		Headers: []string{"A", "Num"},
		Rows:    [][]string{{"x", "1"}, {StyleError.Render("long"), "10"}},
		Footer:  []string{"tot", "11"},
		Right:   map[int]bool{1: true},
	}.Render())

	assert.Equal(t, []string{
		"A     Num",
		"────  ───",
		"x       1",
		"long   10",
		"────  ───",
		"tot    11",
		"",
	}, strings.Split(out, "\n"))
}

func TestRenderTable_ShortRowsAndNoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))

	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	assert.Equal(t, "only", strings.TrimRight(strings.Split(out, "\n")[2], " "))
}
