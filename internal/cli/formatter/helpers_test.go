package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

// stripANSI keeps assertions independent of the terminal's color profile.
func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestRenderBox(t *testing.T) {
	out := stripANSI(RenderBox("Profile", "content"))
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "content")
	assert.Contains(t, out, "╭")

	out = stripANSI(RenderBox("", "only"))
	assert.Contains(t, out, "only")
	assert.NotContains(t, out, "PROFILE")
}

func TestKeyValues(t *testing.T) {
	out := stripANSI(KeyValues([2]string{"Cliente", "Toks"}, [2]string{"Firma", ""}))
	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"Cliente  Toks", "Firma    —"}, lines)
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "2024-03-04", ShortDate(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "fecha inválida", stripANSI(ShortDate(time.Time{})))
}

func TestHours(t *testing.T) {
	assert.Equal(t, "7.5", stripANSI(Hours(7.5)))
	assert.Equal(t, "0", stripANSI(Hours(0)))
	assert.Equal(t, "NaN", stripANSI(Hours(nan())))
}
