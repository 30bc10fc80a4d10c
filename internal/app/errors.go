package app

import (
	"errors"
	"strings"
)

// ErrInvalidRequest matches every ValidationError.
var ErrInvalidRequest = errors.New("missing required fields")

// ValidationError lists the request fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ErrorKind classifies a failed orchestration step.
type ErrorKind string

const (
	UpstreamFetchFailure ErrorKind = "upstream_fetch"
	RenderFailure        ErrorKind = "render"
	UpstreamWriteFailure ErrorKind = "upstream_write"
)

// StepError wraps the cause of a failed step.
type StepError struct {
	Kind ErrorKind
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Outcome maps an error from CreatePurchaseOrder to a short label for logs
// and metrics. A nil error is "success".
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return string(stepErr.Kind)
	}
	return "internal"
}
