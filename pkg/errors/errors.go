// Package errors provides structured error types for metronav.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the loader and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Lookups that matched nothing
//   - NO_ROUTE: Stations exist but are not connected
//   - INTERNAL_*: Unexpected internal errors
//
// The route search itself never returns errors; these codes are used where a
// search outcome or a loader problem has to leave the process as an error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeStationNotFound, "no line serves %q", name)
//	if errors.Is(err, errors.ErrCodeStationNotFound) {
//	    // Handle missing station
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidNetwork, origErr, "load %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidLine    Code = "INVALID_LINE"
	ErrCodeInvalidStation Code = "INVALID_STATION"
	ErrCodeInvalidNetwork Code = "INVALID_NETWORK"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeLineNotFound    Code = "LINE_NOT_FOUND"
	ErrCodeStationNotFound Code = "STATION_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Search outcomes
	ErrCodeNoRoute Code = "NO_ROUTE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// LineError reports a problem with one line of a loaded network.
type LineError struct {
	Line    string // Line ID
	Station string // Offending station, if any
	Reason  string
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Station != "" {
		return fmt.Sprintf("line %s: %s: %q", e.Line, e.Reason, e.Station)
	}
	return fmt.Sprintf("line %s: %s", e.Line, e.Reason)
}

// Code returns the error code for this error type.
func (e *LineError) Code() Code {
	return ErrCodeInvalidLine
}
