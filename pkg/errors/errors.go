// Package errors provides structured error types for the graphops engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the error *kinds* the engine distinguishes: an
// invariant violation inside the graph, a cycle found during closure
// computation, malformed input on load, a not-found lookup, or an I/O
// failure.
//
// # Usage
//
//	err := errors.New(errors.CodeInvariantViolation, "duplicate node %q", key)
//	if errors.Is(err, errors.CodeInvariantViolation) {
//	    // Handle invariant violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.CodeIOError, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the engine's error kinds (spec.md §7).
const (
	// CodeInvariantViolation covers duplicate node/edge, an edge touching
	// an unknown endpoint, or a conflicting classification assignment.
	// Fatal to the operation; the graph is left unchanged.
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"

	// CodeCycleDetected is returned by a reach/domain closure when no
	// cycle sink was supplied. The message includes the guard chain.
	CodeCycleDetected Code = "CYCLE_DETECTED"

	// CodeMalformedInput covers non-object JSON and edges referencing a
	// missing target node on load. The load fails cleanly.
	CodeMalformedInput Code = "MALFORMED_INPUT"

	// CodeNotFound is for front-ends that report a missing item as an
	// error (e.g. the HTTP server's node lookup). The core's lookups return
	// an absent value instead, and Connect reports a missing endpoint as
	// CodeInvariantViolation.
	CodeNotFound Code = "NOT_FOUND"

	// CodeIOError wraps file read/write failures from the serializer.
	CodeIOError Code = "IO_ERROR"
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
