package cli

import (
	"fmt"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPreviewCmd(app *App) *cobra.Command {
	var (
		project string
		client  string
		period  aggregate.Period
		strict  bool
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "preview [flags] FILE...",
		Short: "Browse the weekly groups a report would contain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if client == "" {
				if p, err := app.Profiles.Load(ctx); err == nil {
					client = profileClient(p)
				}
			}
			req := service.PreviewRequest{
				Project: firstNonBlank(project, app.Config.DefaultProject),
				Client:  client,
				Sources: fileSources(args),
				Period:  period,
				Strict:  app.Config.StrictCells,
				Now:     app.now(),
			}
			if cmd.Flags().Changed("strict") {
				req.Strict = strict
			}

			res, err := app.Reports.Preview(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain || !app.interactive() {
				fmt.Fprint(out, formatter.FormatIssues(res.Issues, maxIssuesShown))
				fmt.Fprint(out, formatter.FormatWeekGroups(res.Groups, res.Total))
				return nil
			}
			_, err = tea.NewProgram(newPreviewModel(res), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&project, "project", "", "Project to preview; matched exactly against the project column")
	f.StringVar(&client, "client", "", "Client shown on detail rows (default: stored profile)")
	addPeriodFlags(f, &period)
	f.BoolVar(&strict, "strict", false, "Drop rows with malformed date or hours cells")
	f.BoolVar(&plain, "plain", false, "Print tables instead of opening the interactive view")

	return cmd
}
