// Package errors provides structured error types for qrlabels.
//
// Every failure the tool reports falls into one of a small number of
// categories, each identified by a [Code]:
//   - INVALID_*, CONFLICTING_INPUT: configuration errors, detected before
//     any rendering starts
//   - IO_ERROR: the output location cannot be read or written
//   - CAPACITY_EXCEEDED: more unique codes were requested than the alphabet
//     can represent
//   - ENCODING_FAILED: a code could not be encoded as a QR symbol
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "count must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidSpec  Code = "INVALID_SPEC"
	ErrCodeConflict     Code = "CONFLICTING_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Resource errors
	ErrCodeIO Code = "IO_ERROR"

	// Generation and rendering errors
	ErrCodeCapacity Code = "CAPACITY_EXCEEDED"
	ErrCodeEncoding Code = "ENCODING_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// For *Error types the code prefix is dropped and the cause, if any, is
// appended after a colon. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
