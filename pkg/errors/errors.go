// Package errors defines the typed error family surfaced by theme loading
// and theme-pack operations. Resolution failures never travel as errors;
// they are represented as missing values in the resolution channel.
package errors

import (
	"fmt"
)

// ParseError represents a theme-file parsing failure with optional line
// metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme-file validation issues.
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

// PackError represents a failure while fetching or scanning a theme pack.
type PackError struct {
	URL string
	Err error
}

// NewPackError constructs a PackError for the given pack URL.
func NewPackError(url string, err error) error {
	return &PackError{URL: url, Err: err}
}

func (e *PackError) Error() string {
	if e == nil {
		return ""
	}
	if e.URL != "" {
		return fmt.Sprintf("theme pack error: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("theme pack error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *PackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
