package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValue(t *testing.T) {
	var target *time.Time
	v := newDateValue(&target)

	assert.Equal(t, "", v.String())
	assert.Equal(t, "date", v.Type())

	require.NoError(t, v.Set(" 2024-03-04 "))
	require.NotNil(t, target)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), *target)
	assert.Equal(t, "2024-03-04", v.String())

	assert.Error(t, v.Set("04/03/2024"))
	assert.NotNil(t, target, "failed Set keeps the previous value")

	require.NoError(t, v.Set(""))
	assert.Nil(t, target)
}

func TestAddPeriodFlags(t *testing.T) {
	var p aggregate.Period
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addPeriodFlags(fs, &p)

	require.NoError(t, fs.Parse([]string{"--from", "2024-03-01"}))
	require.NotNil(t, p.From)
	assert.Nil(t, p.To)
	assert.Equal(t, 1, p.From.Day())
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b", firstNonBlank("", "  ", " b ", "c"))
	assert.Equal(t, "", firstNonBlank("", " "))
}
