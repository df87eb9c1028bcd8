package bench

import (
	"errors"
	"fmt"
)

// ErrNoRows is wrapped in a SchemaError when the file has a header but no data lines.
var ErrNoRows = errors.New("no data rows")

// MissingInputError reports that the results file does not exist.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("the file '%s' was not found; run the benchmark client first to generate it", e.Path)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// SchemaError reports a header or value that does not match the expected columns.
// Line is 1-based (the header is line 1); zero when the error is not tied to a line.
type SchemaError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	msg := "invalid benchmark results " + e.Path
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", e.Value)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }
