package domain

import (
	"errors"
	"fmt"
)

// Kinds of report generation failure. A GenerateError always wraps exactly one
// of these so callers can discriminate with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDecode       = errors.New("spreadsheet could not be read")
	ErrEmptyResult  = errors.New("no activity records matched")
	ErrRender       = errors.New("report could not be rendered")
)

// GenerateFailedMessage is the single user-facing message for any pipeline failure.
const GenerateFailedMessage = "could not generate report"

// GenerateError is returned by the report pipeline. Its message is always the
// generic GenerateFailedMessage; the underlying cause is available through
// errors.Is / errors.As and Detail.
type GenerateError struct {
	Kind error
	Err  error
}

func (e *GenerateError) Error() string {
	return GenerateFailedMessage
}

// Detail returns the full cause chain for logs.
func (e *GenerateError) Detail() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", GenerateFailedMessage, e.Kind)
	}
	return fmt.Sprintf("%s: %v", GenerateFailedMessage, e.Err)
}

func (e *GenerateError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewGenerateError classifies err under kind. If err already is a
// GenerateError it is returned unchanged.
func NewGenerateError(kind, err error) *GenerateError {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge
	}
	return &GenerateError{Kind: kind, Err: err}
}

// KindOf returns the failure kind of err, or nil when err is not a GenerateError.
func KindOf(err error) error {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return nil
}
