package render

import (
	"context"
	"encoding/json"
	"io"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/report"
)

// JSONRenderer writes the renderer contract as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Ext() string { return "json" }

func (JSONRenderer) Render(ctx context.Context, m domain.ReportModel, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return renderErr("json", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.ToContract(m)); err != nil {
		return renderErr("json", err)
	}
	return nil
}
