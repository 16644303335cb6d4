package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxIssuesShown caps the malformed-cell listing after a run.
const maxIssuesShown = 10

type generateOptions struct {
	name       string
	client     string
	project    string
	authorizer string
	signature  string
	period     aggregate.Period
	format     string
	out        string
	strict     bool
}

func newGenerateCmd(app *App) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [flags] FILE...",
		Short: "Generate a report without the wizard",
		Long: "Generate a report from one or more activity spreadsheets.\n" +
			"Consultant name, client and signature default to the stored profile.\n" +
			"Fails with \"no activity records matched\" when no row of the project falls\n" +
			"inside the period; no empty report is written.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profile, err := app.Profiles.Load(ctx)
			if err != nil {
				app.logger().Warn("loading profile", zap.Error(err))
			}

			req := service.GenerateRequest{
				Consultant: firstNonBlank(opts.name, profileName(profile)),
				Client:     firstNonBlank(opts.client, profileClient(profile)),
				Project:    firstNonBlank(opts.project, app.Config.DefaultProject),
				Authorizer: firstNonBlank(opts.authorizer, app.Config.DefaultAuthorizer),
				Sources:    fileSources(args),
				Period:     opts.period,
				Strict:     app.Config.StrictCells,
				Now:        app.now(),
			}
			if cmd.Flags().Changed("strict") {
				req.Strict = opts.strict
			}
			if opts.signature != "" {
				data, err := os.ReadFile(opts.signature)
				if err != nil {
					return fmt.Errorf("reading signature: %w", err)
				}
				req.Signature = data
			} else if profile.HasSignature() {
				req.Signature, req.SignatureMIME = profile.Signature, profile.SignatureMIME
			}

			job := generateJob{
				Request: req,
				Format:  firstNonBlank(opts.format, app.Config.Format),
				OutPath: opts.out,
			}
			res, path, err := job.run(ctx, app, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			status := cmd.OutOrStdout()
			if path == stdoutPath {
				status = cmd.ErrOrStderr()
			}
			printGenerated(status, res, path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "Consultant name (default: stored profile)")
	f.StringVar(&opts.client, "client", "", "Client name (default: stored profile)")
	f.StringVar(&opts.project, "project", "", "Project to report; matched exactly against the project column")
	f.StringVar(&opts.authorizer, "authorizer", "", "Name of the person who authorizes the report")
	f.StringVar(&opts.signature, "signature", "", "Signature image (PNG, JPEG or GIF; default: stored profile)")
	addPeriodFlags(f, &opts.period)
	f.StringVar(&opts.format, "format", "", "Output format: json, pdf or xlsx (default from TIMESHEET_FORMAT)")
	f.StringVarP(&opts.out, "out", "o", "", "Output file, or - for stdout (default: named after project and month)")
	f.BoolVar(&opts.strict, "strict", false, "Drop rows with malformed date or hours cells")
	f.StringVar(&app.Config.MetricsFile, "metrics-file", app.Config.MetricsFile, "Write run metrics in Prometheus textfile format")

	return cmd
}

func printGenerated(w io.Writer, res *service.GenerateResult, path string) {
	if issues := formatter.FormatIssues(res.Issues, maxIssuesShown); issues != "" {
		fmt.Fprint(w, issues)
	}
	where := path
	if path == stdoutPath {
		where = "stdout"
	}
	fmt.Fprintln(w, formatter.SuccessLine(fmt.Sprintf("%s %d: %d records, %s h → %s",
		res.Model.Month, res.Model.Year, res.RecordCount, report.Hours(res.Model.Total), where)))
}
