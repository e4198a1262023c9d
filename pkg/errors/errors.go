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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Link store errors
	ErrStoreLoad ErrorCode = "STORE_LOAD"
	ErrStoreSave ErrorCode = "STORE_SAVE"

	// Source tree errors
	ErrScan ErrorCode = "SCAN"

	// FileSystem errors
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Watch adapter errors
	ErrWatchInit  ErrorCode = "WATCH_INIT"
	ErrWatchEvent ErrorCode = "WATCH_EVENT"
)

// CratedigError represents a structured error with code and details
type CratedigError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CratedigError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CratedigError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CratedigError) Is(target error) bool {
	var targetErr *CratedigError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CratedigError with the given code and message
func New(code ErrorCode, message string) *CratedigError {
	return &CratedigError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CratedigError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CratedigError {
	return &CratedigError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CratedigError
func Wrap(err error, code ErrorCode, message string) *CratedigError {
	if err == nil {
		return nil
	}
	return &CratedigError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CratedigError {
	if err == nil {
		return nil
	}
	return &CratedigError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CratedigError) WithDetail(key string, value interface{}) *CratedigError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cdErr *CratedigError
	if errors.As(err, &cdErr) {
		return cdErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CratedigError
func GetErrorCode(err error) ErrorCode {
	var cdErr *CratedigError
	if errors.As(err, &cdErr) {
		return cdErr.Code
	}
	return ErrUnknown
}
