// Package errors defines the coded error type shared by every nxj component.
// Each failure surfaced to the user carries a stable ErrorCode so callers and
// tests can tell a link failure from a transport failure without parsing text.
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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrPOMParse    ErrorCode = "POM_PARSE"

	// Link errors
	ErrLinkFailed ErrorCode = "LINK_FAILED"
	ErrLinkIO     ErrorCode = "LINK_IO"

	// Upload errors
	ErrUploadFailed   ErrorCode = "UPLOAD_FAILED"
	ErrDeviceNotFound ErrorCode = "DEVICE_NOT_FOUND"
	ErrTransportIO    ErrorCode = "TRANSPORT_IO"

	// Process errors
	ErrProcessSpawn ErrorCode = "PROCESS_SPAWN"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileExists   ErrorCode = "FILE_EXISTS"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// NxjError represents a structured error with code and details
type NxjError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NxjError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NxjError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NxjError) Is(target error) bool {
	var targetErr *NxjError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NxjError with the given code and message
func New(code ErrorCode, message string) *NxjError {
	return &NxjError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NxjError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NxjError {
	return &NxjError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an NxjError
func Wrap(err error, code ErrorCode, message string) *NxjError {
	if err == nil {
		return nil
	}
	return &NxjError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NxjError {
	if err == nil {
		return nil
	}
	return &NxjError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NxjError) WithDetail(key string, value interface{}) *NxjError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nxjErr *NxjError
	if errors.As(err, &nxjErr) {
		return nxjErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an NxjError
func GetErrorCode(err error) ErrorCode {
	var nxjErr *NxjError
	if errors.As(err, &nxjErr) {
		return nxjErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an NxjError
func GetErrorDetails(err error) map[string]interface{} {
	var nxjErr *NxjError
	if errors.As(err, &nxjErr) {
		return nxjErr.Details
	}
	return nil
}
