package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/render"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// timesheetHuhTheme styles huh forms with the formatter palette.
func timesheetHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: title accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorTitle).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorTitle)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorOK)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorTitle).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorTitle)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorTitle)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorError)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardState holds the answers of one wizard pass. Dates and paths stay as
// typed until request builds the GenerateRequest.
type wizardState struct {
	Consultant string
	Client     string
	Project    string
	Authorizer string
	From       string
	To         string

	SignaturePath string
	Files         string

	Format  string
	OutPath string
	Confirm bool
}

// newWizardState prefills the answers from the stored profile and the
// configured defaults.
func newWizardState(p *domain.Profile, cfg config.Config) *wizardState {
	return &wizardState{
		Consultant: profileName(p),
		Client:     profileClient(p),
		Project:    cfg.DefaultProject,
		Authorizer: cfg.DefaultAuthorizer,
		Format:     firstNonBlank(cfg.Format, "pdf"),
		Confirm:    true,
	}
}

// splitPaths returns the non-blank lines of s.
func splitPaths(s string) []string {
	var paths []string
	for _, line := range strings.Split(s, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func required(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateSignatureFile accepts a readable PNG, JPEG or GIF. An empty path is
// accepted only when a stored signature can be reused.
func validateSignatureFile(haveStored bool) func(string) error {
	return func(path string) error {
		path = strings.TrimSpace(path)
		if path == "" {
			if haveStored {
				return nil
			}
			return errors.New("a signature image is required")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read %s", path)
		}
		if _, err := render.SignatureImageType("", data); err != nil {
			return errors.New("use a PNG, JPEG or GIF image")
		}
		return nil
	}
}

// validateSpreadsheets requires at least one path, each an existing file.
func validateSpreadsheets(s string) error {
	paths := splitPaths(s)
	if len(paths) == 0 {
		return errors.New("add at least one spreadsheet")
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			return fmt.Errorf("%s is not a file", p)
		}
	}
	return nil
}

// parseOptionalDate parses a validated optional date.
func parseOptionalDate(s string) *time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

// job turns the answers into a generation job. Without a new signature file
// the stored signature is reused.
func (st *wizardState) job(stored *domain.Profile, now time.Time) (generateJob, error) {
	req := service.GenerateRequest{
		Consultant:       st.Consultant,
		Client:           st.Client,
		Project:          st.Project,
		Authorizer:       st.Authorizer,
		RequireSignature: true,
		Sources:          fileSources(splitPaths(st.Files)),
		Period: aggregate.Period{
			From: parseOptionalDate(st.From),
			To:   parseOptionalDate(st.To),
		},
		Now: now,
	}
	if path := strings.TrimSpace(st.SignaturePath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return generateJob{}, fmt.Errorf("reading signature: %w", err)
		}
		req.Signature = data
	} else if stored.HasSignature() {
		req.Signature, req.SignatureMIME = stored.Signature, stored.SignatureMIME
	}
	return generateJob{Request: req, Format: st.Format, OutPath: strings.TrimSpace(st.OutPath)}, nil
}

// wizardForm builds the multi-step form: project data, signature,
// spreadsheets, output.
func wizardForm(st *wizardState, haveStoredSignature bool) *huh.Form {
	formats := make([]huh.Option[string], 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, huh.NewOption(strings.ToUpper(f), f))
	}

	signatureHelp := "Path to a PNG, JPEG or GIF image"
	if haveStoredSignature {
		signatureHelp += "; leave empty to reuse the stored signature"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Consultant").Value(&st.Consultant).Validate(required("consultant")),
			huh.NewInput().Title("Client").Value(&st.Client).Validate(required("client")),
			huh.NewInput().Title("Project").
				Description("Matched exactly against the project column").
				Value(&st.Project).Validate(required("project")),
			huh.NewInput().Title("Authorized by").Value(&st.Authorizer).Validate(required("authorizer")),
			huh.NewInput().Title("From").Placeholder("YYYY-MM-DD (optional)").Value(&st.From).Validate(validateOptionalDate),
			huh.NewInput().Title("To").Placeholder("YYYY-MM-DD (optional, default today)").Value(&st.To).Validate(validateOptionalDate),
		).Title("Project data"),
		huh.NewGroup(
			huh.NewInput().Title("Signature").
				Description(signatureHelp).
				Value(&st.SignaturePath).
				Validate(validateSignatureFile(haveStoredSignature)),
		).Title("Signature"),
		huh.NewGroup(
			huh.NewText().Title("Spreadsheets").
				Description("One .xlsx path per line").
				Value(&st.Files).
				Validate(validateSpreadsheets),
		).Title("Activity files"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Format").Options(formats...).Value(&st.Format),
			huh.NewInput().Title("Output file").
				Placeholder("default: named after project and month").
				Value(&st.OutPath),
			huh.NewConfirm().Title("Generate report?").Affirmative("Yes").Negative("No").Value(&st.Confirm),
		).Title("Output"),
	).WithTheme(timesheetHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(timesheetHuhTheme()).WithShowHelp(false)
}

// runWizard runs the form until a report is written or the user gives up.
// After a failure the previous answers are kept for the next attempt.
func runWizard(ctx context.Context, app *App, out, errOut io.Writer) error {
	stored, err := app.Profiles.Load(ctx)
	if err != nil {
		app.logger().Warn("loading profile", zap.Error(err))
	}
	st := newWizardState(stored, app.Config)

	for {
		if err := wizardForm(st, stored.HasSignature()).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !st.Confirm {
			return nil
		}

		job, err := st.job(stored, app.now())
		if err == nil {
			stop := formatter.StartSpinner(errOut, "Generating report…")
			var res *service.GenerateResult
			var path string
			res, path, err = job.run(ctx, app, out)
			stop()
			if err == nil {
				fmt.Fprintln(out, formatter.FormatSummary(res.Model))
				printGenerated(out, res, path)
				return nil
			}
		}

		fmt.Fprintln(errOut, formatter.ErrorLine(ErrorMessage(err)))
		retry := true
		if ferr := wizardConfirm("Try again?", &retry).RunWithContext(ctx); ferr != nil || !retry {
			return err
		}
	}
}

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a report step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd.Context(), app, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
