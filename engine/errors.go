package engine

import "fmt"

// ValidationError signals missing or malformed request input. Maps to 400 and
// is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// ParsingError signals input that is empty or unrecognizable as the target
// document type. The original text is preserved so the caller can retry
// manually. Sparse-but-recognizable input never produces a ParsingError.
type ParsingError struct {
	DocType string // "resume" or "job"
	Message string
	RawText string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.DocType, e.Message)
}

// StageError wraps a pipeline stage failure with the name of the failing
// stage. Output of upstream stages is discarded for the request.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// TimeoutError signals that the scan exceeded its configured budget. No
// automatic retry happens in this layer.
type TimeoutError struct {
	Stage string
}

func (e *TimeoutError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("scan timed out during stage %s", e.Stage)
	}
	return "scan timed out"
}

// PersistenceError signals a scan-history save failure. Logged only; never
// surfaced as a user-facing error.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist scan: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
