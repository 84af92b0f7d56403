// Package errors provides structured error types for the collage tool.
//
// Every failure the tool reports to a user carries a machine-readable code so
// the CLI can decide how to present it and tests can match on the category
// instead of the message text.
//
// # Error Codes
//
//   - INVALID_CONFIGURATION: a flag, config file key or value is malformed or out of range
//   - EMPTY_INPUT: no decodable images were found
//   - CANVAS_TOO_SMALL: padding, border or frame consume the whole canvas
//   - IMAGE_DECODE_FAILURE: a single input file could not be decoded
//   - OUTPUT_WRITE_FAILURE: the collage could not be written
//   - INTERNAL_ERROR: anything unexpected
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfiguration, "--padding: must be >= 0, got %d", p)
//	if errors.Is(err, errors.ErrCodeInvalidConfiguration) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutputWrite, origErr, "failed to write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	ErrCodeEmptyInput           Code = "EMPTY_INPUT"
	ErrCodeCanvasTooSmall       Code = "CANVAS_TOO_SMALL"
	ErrCodeImageDecode          Code = "IMAGE_DECODE_FAILURE"
	ErrCodeOutputWrite          Code = "OUTPUT_WRITE_FAILURE"
	ErrCodeInternal             Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Hint    string // Suggested remediation (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithHint returns a copy of e carrying a remediation hint.
func (e *Error) WithHint(format string, args ...any) *Error {
	c := *e
	c.Hint = fmt.Sprintf(format, args...)
	return &c
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (and hint) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		msg := e.Message
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		if e.Hint != "" {
			msg += "\n  hint: " + e.Hint
		}
		return msg
	}
	return err.Error()
}
