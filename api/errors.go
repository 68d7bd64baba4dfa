// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the mirrorbuf library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrMappingFailed    = fmt.Errorf("mirror mapping failed")
	ErrCapacityExceeded = fmt.Errorf("capacity exceeds representable maximum")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrBufferClosed     = fmt.Errorf("buffer is closed")
	ErrZeroSizedElement = fmt.Errorf("element type has zero size")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeMappingFailed
	ErrCodeCapacityExceeded
	ErrCodeClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
