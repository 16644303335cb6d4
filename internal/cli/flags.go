package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value for an optional YYYY-MM-DD date. An unset flag
// leaves the target nil.
type dateValue struct {
	target **time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(target **time.Time) *dateValue {
	return &dateValue{target: target}
}

func (d *dateValue) String() string {
	if d.target == nil || *d.target == nil {
		return ""
	}
	return (*d.target).Format(dateLayout)
}

func (d *dateValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d.target = nil
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	*d.target = &t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// addPeriodFlags registers --from and --to on fs.
func addPeriodFlags(fs *pflag.FlagSet, p *aggregate.Period) {
	fs.Var(newDateValue(&p.From), "from", "First day of the period, inclusive (YYYY-MM-DD)")
	fs.Var(newDateValue(&p.To), "to", "Last day of the period, inclusive (YYYY-MM-DD); default today")
}

// firstNonBlank returns the first value that is not empty after trimming.
func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
