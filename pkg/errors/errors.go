package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the matching and synthesis domain
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Matching errors
	ErrNotSolvable ErrorCode = "NOT_SOLVABLE"
	ErrUnsupported ErrorCode = "UNSUPPORTED_OPERATION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// ItemError represents a structured error with code and details
type ItemError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ItemError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ItemError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an ItemError with the same code
func (e *ItemError) Is(target error) bool {
	var targetErr *ItemError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ItemError with the given code and message
func New(code ErrorCode, message string) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ItemError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ItemError {
	return &ItemError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ItemError
func Wrap(err error, code ErrorCode, message string) *ItemError {
	if err == nil {
		return nil
	}
	return &ItemError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ItemError {
	if err == nil {
		return nil
	}
	return &ItemError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// NotSolvable is shorthand for the error every matcher returns when it has no
// inverse for the requested seed.
func NotSolvable(format string, args ...interface{}) *ItemError {
	return Newf(ErrNotSolvable, format, args...)
}

// WithDetail adds a detail to the error
func (e *ItemError) WithDetail(key string, value interface{}) *ItemError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ItemError) WithDetails(details map[string]interface{}) *ItemError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ItemError
func GetErrorCode(err error) ErrorCode {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ItemError
func GetErrorDetails(err error) map[string]interface{} {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Details
	}
	return nil
}
