package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alexanderramin/timesheet/internal/aggregate"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/render"
)

// validateRequest checks the fields the wizard marks as required and fills
// in a sniffed signature MIME type.
func validateRequest(req *GenerateRequest) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"consultant name", req.Consultant},
		{"client", req.Client},
		{"project", req.Project},
		{"authorizer", req.Authorizer},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(req.Sources) == 0 {
		missing = append(missing, "at least one spreadsheet")
	}
	if req.RequireSignature && len(req.Signature) == 0 {
		missing = append(missing, "signature")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}

	if err := validatePeriod(req.Period); err != nil {
		return err
	}

	if len(req.Signature) > 0 {
		if req.SignatureMIME == "" {
			req.SignatureMIME = http.DetectContentType(req.Signature)
		}
		if _, err := render.SignatureImageType(req.SignatureMIME, req.Signature); err != nil {
			return err
		}
	}
	return nil
}

// validatePreview checks the fields a preview needs.
func validatePreview(req PreviewRequest) error {
	var missing []string
	if strings.TrimSpace(req.Project) == "" {
		missing = append(missing, "project")
	}
	if len(req.Sources) == 0 {
		missing = append(missing, "at least one spreadsheet")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return validatePeriod(req.Period)
}

func validatePeriod(p aggregate.Period) error {
	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		return fmt.Errorf("period starts %s after it ends %s",
			p.From.Format("2006-01-02"), p.To.Format("2006-01-02"))
	}
	return nil
}

// kindLabel names the failure kind of err for metrics.
func kindLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrDecode):
		return "decode"
	case errors.Is(err, domain.ErrEmptyResult):
		return "empty"
	case errors.Is(err, domain.ErrRender):
		return "render"
	default:
		return "error"
	}
}

// errorDetail returns the full cause of err; GenerateError hides it behind
// the generic message.
func errorDetail(err error) string {
	var ge *domain.GenerateError
	if errors.As(err, &ge) {
		return ge.Detail()
	}
	return err.Error()
}
