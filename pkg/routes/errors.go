package routes

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the sentinel matched by every ParseError
	ErrParse = errors.New("parse error")

	// ErrNonFinite is the cause for NaN or infinite numeric fields
	ErrNonFinite = errors.New("value is not a finite number")
	// ErrEmptyIdentifier is the cause for blank origin or destination codes
	ErrEmptyIdentifier = errors.New("airport identifier is empty")
	// ErrInvalidIdentifier is the cause for identifiers CheckIdentifier rejects
	ErrInvalidIdentifier = errors.New("invalid airport identifier")

	errMissingColumn = errors.New("column missing from header")
)

// ParseError reports an input field that could not be turned into a Record.
// A ParseError aborts ingestion; no partial record set is returned.
type ParseError struct {
	Line   int    // 1-based line (or row) number, 0 when unknown
	Column string // Column name, empty for row-level failures
	Value  string // Offending raw value
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Column != "" && e.Line > 0:
		return fmt.Sprintf("parse line %d (column %s, value %q): %v", e.Line, e.Column, e.Value, e.Cause)
	case e.Column != "":
		return fmt.Sprintf("parse column %s (value %q): %v", e.Column, e.Value, e.Cause)
	case e.Line > 0:
		return fmt.Sprintf("parse line %d: %v", e.Line, e.Cause)
	default:
		return fmt.Sprintf("parse: %v", e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrParse or matches the cause.
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	return target == ErrParse || errors.Is(e.Cause, target)
}

// IsParseError returns true if err carries a ParseError.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// NewParseError creates a ParseError for a single field.
func NewParseError(line int, column, value string, cause error) error {
	return &ParseError{Line: line, Column: column, Value: value, Cause: cause}
}
