package pipeline

import (
	"errors"
	"fmt"
)

// Error taxonomy of the pipeline. Extraction degradation with a defined
// fallback (an unreadable text layer routing to the scan path) is handled
// locally and never becomes an error; everything that does surface falls
// into one of these.
var (
	// ErrUnsupportedFormat covers unclassifiable documents and language
	// tags the service is not configured for. Never retried.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrOversizeInput is reported before any extraction work begins.
	ErrOversizeInput = errors.New("input exceeds configured size limit")
)

// ProcessingError wraps an unexpected failure during extraction,
// recognition, or anonymization. The stage names where the pipeline was;
// callers surface a generic processing error and keep the cause for logs.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed at %s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

func processingErr(stage string, err error) error {
	return &ProcessingError{Stage: stage, Err: err}
}
