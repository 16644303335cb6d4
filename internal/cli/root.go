package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Reports  service.ReportService
	Profiles service.ProfileService
	Config   config.Config
	Logger   *zap.Logger

	// IsInteractive reports whether stdin is a terminal. The bare command
	// opens the wizard only when it returns true.
	IsInteractive func() bool
	// Now is the clock used for open periods and relative dates.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "timesheet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timesheet",
		Short: "Monthly timesheet reports from activity spreadsheets",
		Long: "Reads activity exports (.xlsx), keeps the rows of one project, groups them\n" +
			"by ISO week and writes a signed monthly report as PDF, XLSX or JSON.\n" +
			"Run without arguments in a terminal to open the wizard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runWizard(cmd.Context(), app, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGenerateCmd(app),
		newWizardCmd(app),
		newPreviewCmd(app),
		newProfileCmd(app),
		newWeekCmd(app),
	)

	return root
}

// ErrorMessage is the text shown to the user for err. Pipeline failures
// show the generic message, except invalid input which names what is wrong.
func ErrorMessage(err error) string {
	var ge *domain.GenerateError
	if errors.As(err, &ge) {
		if errors.Is(ge.Kind, domain.ErrInvalidInput) {
			return ge.Detail()
		}
		return ge.Error()
	}
	return err.Error()
}
