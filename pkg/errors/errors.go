// Package errors provides structured error types for the Caldera library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the data model, registry, and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Construction and input validation failures
//   - *_NOT_FOUND: Registry lookup misses
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCellCount, "row has %d values, table declares %d columns", got, want)
//	if errors.Is(err, errors.ErrCodeInvalidCellCount) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDate, parseErr, "column %q", label)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Data model construction errors
	ErrCodeInvalidRowDefinition   Code = "INVALID_ROW_DEFINITION"
	ErrCodeInvalidCellCount       Code = "INVALID_CELL_COUNT"
	ErrCodeInvalidDate            Code = "INVALID_DATE"
	ErrCodeInvalidColumnIndex     Code = "INVALID_COLUMN_INDEX"
	ErrCodeInvalidColumnType      Code = "INVALID_COLUMN_TYPE"
	ErrCodeInvalidRowIndex        Code = "INVALID_ROW_INDEX"
	ErrCodeInvalidTableDefinition Code = "INVALID_TABLE_DEFINITION"

	// Renderable errors
	ErrCodeInvalidLabel     Code = "INVALID_LABEL"
	ErrCodeInvalidChartType Code = "INVALID_CHART_TYPE"

	// Registry lookup errors
	ErrCodeChartNotFound     Code = "CHART_NOT_FOUND"
	ErrCodeDashboardNotFound Code = "DASHBOARD_NOT_FOUND"

	// Collaborator errors (config files, data import)
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidData   Code = "INVALID_DATA"
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
