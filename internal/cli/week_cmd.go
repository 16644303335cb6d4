package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week [DATE]",
		Short: "Show the ISO week of a date and its report labels",
		Long: "Show the ISO week number a record dated DATE is grouped under, and the\n" +
			"Sunday-first day labels printed above that week's table. DATE defaults to today.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := app.now()
			if len(args) == 1 {
				t, err := time.Parse(dateLayout, args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q: use YYYY-MM-DD format", args[0])
				}
				date = t
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(date))
			return nil
		},
	}
}
