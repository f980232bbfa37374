// Package errors provides structured error types for rustbrew.
//
// Every failure that can abort a run carries a [Code] so the top-level
// handler can tell a bad query apart from an unreachable endpoint or a
// corrupted snapshot without string matching.
//
// # Error Codes
//
//   - INVALID_INPUT: the query failed validation (checked before any I/O)
//   - INVALID_CONFIG: the configuration file could not be used
//   - IO: a filesystem read or write failed
//   - PARSE: the catalog snapshot is not well-formed or mismatches the schema
//   - NETWORK: the catalog endpoint could not be reached or answered badly
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "query too long: %q", q)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeIO            Code = "IO"
	ErrCodeParse         Code = "PARSE"
	ErrCodeNetwork       Code = "NETWORK"
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
// It only inspects the outermost *Error in the chain, so a NETWORK error
// wrapping an IO error reports NETWORK.
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
// For *Error types, returns the message and cause without code prefixes,
// including those of nested *Error causes. Any context wrapped around the
// outermost *Error is kept. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + UserMessage(e.Cause)
	}
	if full, inner := err.Error(), e.Error(); full != inner && strings.HasSuffix(full, inner) {
		msg = strings.TrimSuffix(full, inner) + msg
	}
	return msg
}
