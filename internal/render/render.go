// Package render paints assembled timesheet reports in the supported output
// formats.
package render

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// Renderer writes a report model in one output format.
type Renderer interface {
	Render(ctx context.Context, m domain.ReportModel, w io.Writer) error
	// Ext is the file extension of the output, without the dot.
	Ext() string
}

var renderers = map[string]func() Renderer{
	"json": func() Renderer { return JSONRenderer{} },
	"xlsx": func() Renderer { return XLSXRenderer{} },
	"pdf":  func() Renderer { return PDFRenderer{} },
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByFormat returns the renderer registered under name (case-insensitive).
func ByFormat(name string) (Renderer, error) {
	mk, ok := renderers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown output format %q (want one of %s)",
			domain.ErrInvalidInput, name, strings.Join(Formats(), ", "))
	}
	return mk(), nil
}

func renderErr(format string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrRender, format, err)
}
