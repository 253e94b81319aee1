package errors

import (
	"fmt"
)

// ParseError represents a failure to decode user input (a YAML document or a
// command-line value) with optional line metadata.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or scenario validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MismatchError reports that a replayed scenario diverged from its expected
// output. Diff holds a unified diff of expected versus actual.
type MismatchError struct {
	Scenario string
	Diff     string
}

// NewMismatchError constructs a MismatchError.
func NewMismatchError(scenario, diff string) error {
	return &MismatchError{Scenario: scenario, Diff: diff}
}

func (e *MismatchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Scenario != "" {
		return fmt.Sprintf("scenario %s: output does not match expectation", e.Scenario)
	}
	return "scenario output does not match expectation"
}
