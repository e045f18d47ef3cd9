// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error classification for the plainsock library.

package api

import "fmt"

// Sentinel errors shared across the library.
var (
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrNotConnected     = fmt.Errorf("transport is not connected")
	ErrAlreadyConnected = fmt.Errorf("transport is already connected")
	ErrConnectionClosed = fmt.Errorf("connection closed by peer")
	ErrPollFailed       = fmt.Errorf("readiness poll failed")
	ErrNotSupported     = fmt.Errorf("operation not supported")
)

// ErrorCode classifies transport outcomes for callers that dispatch on
// category rather than on a concrete sentinel.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeNotConnected
	ErrCodePeerClosed
	ErrCodePollFailed
	ErrCodeIO
	ErrCodeNotSupported
)

// Error is a structured transport error carrying a code and, when the
// platform provides one, the underlying errno-style cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a structured error.
func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
