package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Registry errors
	ErrUnknownEvent   ErrorCode = "UNKNOWN_EVENT"
	ErrDuplicateEvent ErrorCode = "DUPLICATE_EVENT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// EvokeError represents a structured error with code and details
type EvokeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EvokeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EvokeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EvokeError) Is(target error) bool {
	var targetErr *EvokeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EvokeError with the given code and message
func New(code ErrorCode, message string) *EvokeError {
	return &EvokeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EvokeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EvokeError {
	return &EvokeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EvokeError
func Wrap(err error, code ErrorCode, message string) *EvokeError {
	if err == nil {
		return nil
	}
	return &EvokeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EvokeError {
	if err == nil {
		return nil
	}
	return &EvokeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EvokeError) WithDetail(key string, value interface{}) *EvokeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var evokeErr *EvokeError
	if errors.As(err, &evokeErr) {
		return evokeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EvokeError
func GetErrorCode(err error) ErrorCode {
	var evokeErr *EvokeError
	if errors.As(err, &evokeErr) {
		return evokeErr.Code
	}
	return ErrUnknown
}
