package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/importer"
	"github.com/alexanderramin/timesheet/internal/render"
	"github.com/alexanderramin/timesheet/internal/service"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stdoutPath as an output path writes the report to standard output.
const stdoutPath = "-"

func fileSources(paths []string) []importer.Source {
	sources := make([]importer.Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, importer.FileSource(p))
	}
	return sources
}

// defaultFileName names a report after its project and period, e.g.
// "reporte-proyecto-a-2024-marzo.pdf".
func defaultFileName(m domain.ReportModel, ext string) string {
	return fmt.Sprintf("reporte-%s-%d-%s.%s", slug(m.Project), m.Year, slug(m.Month), ext)
}

// slug lowercases s, strips accents and joins the remaining words with dashes.
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	fields := strings.FieldsFunc(strings.ToLower(plain), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return "reporte"
	}
	return strings.Join(fields, "-")
}

// resolveOutPath picks where the report goes: the explicit path, or a file
// named after the report inside dir.
func resolveOutPath(out, dir string, m domain.ReportModel, ext string) string {
	if out != "" {
		return out
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, defaultFileName(m, ext))
}

// writeReport renders res to path, or to stdout when path is "-". A failed
// render leaves no partial file behind.
func writeReport(ctx context.Context, reports service.ReportService, res *service.GenerateResult, r render.Renderer, path string, stdout io.Writer) (err error) {
	if path == stdoutPath {
		return reports.Render(ctx, res, r, stdout)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return reports.Render(ctx, res, r, f)
}

// generateJob is one fully specified report run, shared by the generate
// command and the wizard.
type generateJob struct {
	Request service.GenerateRequest
	Format  string
	OutPath string
}

// run generates, renders and writes the report and returns where it went.
func (j generateJob) run(ctx context.Context, app *App, stdout io.Writer) (*service.GenerateResult, string, error) {
	r, err := render.ByFormat(j.Format)
	if err != nil {
		return nil, "", domain.NewGenerateError(domain.ErrInvalidInput, err)
	}
	res, err := app.Reports.Generate(ctx, j.Request)
	if err != nil {
		return nil, "", err
	}
	path := resolveOutPath(j.OutPath, app.Config.OutputDir, res.Model, r.Ext())
	if err := writeReport(ctx, app.Reports, res, r, path, stdout); err != nil {
		return res, "", domain.NewGenerateError(domain.ErrRender, err)
	}
	return res, path, nil
}
