package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatWeek(t *testing.T) {
	out := stripANSI(FormatWeek(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, out, "2024-03-04 Marzo")
	assert.Contains(t, out, "Semana ISO: 10")
	// Sunday-started week 10 of 2024 begins on March 3rd.
	assert.Regexp(t, `03\s+04\s+05\s+06\s+07\s+08\s+09`, out)
	assert.NotContains(t, out, "Sunday:")
}

func TestFormatWeek_SundayNote(t *testing.T) {
	out := stripANSI(FormatWeek(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, out, "Semana ISO: 52")
	assert.Contains(t, out, "Sunday:")
}

func TestFormatProfile(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, stripANSI(FormatProfile(nil, now)), "No profile stored")

	out := stripANSI(FormatProfile(&domain.Profile{
		EmployeeName:  "Ana",
		ClientName:    "Toks",
		Signature:     []byte{1, 2, 3},
		SignatureMIME: "image/png",
		UpdatedAt:     now.AddDate(0, 0, -3),
	}, now))
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "image/png, 3 bytes")
	assert.Contains(t, out, "3d ago")

	out = stripANSI(FormatProfile(&domain.Profile{EmployeeName: "Ana"}, now))
	assert.Contains(t, out, "none")
}
