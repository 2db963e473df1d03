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
	ErrUnsupported  ErrorCode = "UNSUPPORTED"

	// Terminal settings errors
	ErrConfigNotFound  ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigAmbiguous ErrorCode = "CONFIG_AMBIGUOUS"
	ErrConfigParse     ErrorCode = "CONFIG_PARSE"
	ErrConfigConflict  ErrorCode = "CONFIG_CONFLICT"

	// Tool configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Transaction errors
	ErrActionFailed       ErrorCode = "ACTION_FAILED"
	ErrTransactionCleanup ErrorCode = "TRANSACTION_CLEANUP"

	// Profile errors
	ErrProfileNotSelected ErrorCode = "PROFILE_NOT_SELECTED"
	ErrProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"

	// Process errors
	ErrProcessLaunch ErrorCode = "PROCESS_LAUNCH_FAILED"

	// Shell integration errors
	ErrRegistry ErrorCode = "REGISTRY"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// WtlError represents a structured error with code and details
type WtlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WtlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WtlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WtlError) Is(target error) bool {
	var targetErr *WtlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WtlError with the given code and message
func New(code ErrorCode, message string) *WtlError {
	return &WtlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WtlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WtlError {
	return &WtlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WtlError
func Wrap(err error, code ErrorCode, message string) *WtlError {
	if err == nil {
		return nil
	}
	return &WtlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WtlError {
	if err == nil {
		return nil
	}
	return &WtlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WtlError) WithDetail(key string, value interface{}) *WtlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if any error in the chain has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &WtlError{Code: code})
}

// GetErrorCode returns the outermost error code, or ErrUnknown if not a WtlError
func GetErrorCode(err error) ErrorCode {
	var wtlErr *WtlError
	if errors.As(err, &wtlErr) {
		return wtlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WtlError
func GetErrorDetails(err error) map[string]interface{} {
	var wtlErr *WtlError
	if errors.As(err, &wtlErr) {
		return wtlErr.Details
	}
	return nil
}

// Exit statuses. A run either never touched anything or touched something and
// did not finish cleanly; scripts need to tell those apart.
const (
	ExitOK           = 0
	ExitNotAttempted = 1
	ExitPartial      = 2
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrActionFailed, ErrTransactionCleanup, ErrProcessLaunch, ErrRegistry, ErrFileWrite:
		return ExitPartial
	default:
		return ExitNotAttempted
	}
}
