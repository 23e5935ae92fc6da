package errors

import (
	"fmt"
)

// DecodeError represents a payload or config decoding failure with optional
// line metadata.
type DecodeError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &DecodeError{Source: source, Line: line, Message: message, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("decode error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("decode error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or payload validation issues.
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

// FetchError represents a failed request against the product endpoint.
// StatusCode is zero when no response was received.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

// NewFetchError constructs a FetchError.
func NewFetchError(endpoint string, statusCode int, err error) error {
	return &FetchError{Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch error: %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("fetch error: %s: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the root error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
