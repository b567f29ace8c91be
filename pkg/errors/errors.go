// Package errors provides structured error types for gridpath.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core packages and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the failure classes of the search core:
//   - PRECONDITION_VIOLATION: a run or edit was requested in a state that forbids it
//   - OUT_OF_RANGE: a cell lookup fell outside the grid
//   - INVALID_DIMENSION: a grid was built with a non-positive size
//   - INTERNAL_INCONSISTENCY: predecessor bookkeeping is corrupt (a bug, never user error)
//
// The remaining INVALID_* codes cover CLI input such as layouts and config files.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfRange, "cell (%d,%d) outside grid", row, col)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Core errors
	ErrCodePrecondition     Code = "PRECONDITION_VIOLATION"
	ErrCodeOutOfRange       Code = "OUT_OF_RANGE"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInternal         Code = "INTERNAL_INCONSISTENCY"
	ErrCodeCancelled        Code = "CANCELLED"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Internal reports a broken invariant. Unlike the other codes it always
// indicates a bug, so callers should log it loudly instead of retrying.
func Internal(format string, args ...any) *Error {
	return New(ErrCodeInternal, format, args...)
}
