package errors

import (
	"errors"
	"fmt"
	"io/fs"
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
	ErrPermission   ErrorCode = "PERMISSION"

	// ErrCancelled marks a run the user declined. It is not a failure.
	ErrCancelled ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Toolchain errors
	ErrToolchainInstall ErrorCode = "TOOLCHAIN_INSTALL"
	ErrToolchainMissing ErrorCode = "TOOLCHAIN_MISSING"

	// Repository errors
	ErrClone ErrorCode = "CLONE"
	ErrPull  ErrorCode = "PULL"

	// Build errors
	ErrBuild           ErrorCode = "BUILD"
	ErrArtifactMissing ErrorCode = "ARTIFACT_MISSING"
	ErrBinaryMissing   ErrorCode = "BINARY_MISSING"

	// Shell integration errors
	ErrMarkerMismatch ErrorCode = "MARKER_MISMATCH"

	// Rules errors
	ErrRuleNotFound ErrorCode = "RULE_NOT_FOUND"
	ErrRuleParse    ErrorCode = "RULE_PARSE"

	// Command errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrDirRemove    ErrorCode = "DIR_REMOVE"
	ErrBackup       ErrorCode = "BACKUP"
)

// DetailExitCode is the detail key holding a child process exit status
const DetailExitCode = "exit_code"

// SawkitError represents a structured error with code and details
type SawkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SawkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SawkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SawkitError) Is(target error) bool {
	var targetErr *SawkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SawkitError with the given code and message
func New(code ErrorCode, message string) *SawkitError {
	return &SawkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SawkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SawkitError {
	return &SawkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SawkitError
func Wrap(err error, code ErrorCode, message string) *SawkitError {
	if err == nil {
		return nil
	}
	return &SawkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SawkitError {
	if err == nil {
		return nil
	}
	return &SawkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SawkitError) WithDetail(key string, value interface{}) *SawkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sawErr *SawkitError
	if errors.As(err, &sawErr) {
		return sawErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SawkitError
func GetErrorCode(err error) ErrorCode {
	var sawErr *SawkitError
	if errors.As(err, &sawErr) {
		return sawErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SawkitError
func GetErrorDetails(err error) map[string]interface{} {
	var sawErr *SawkitError
	if errors.As(err, &sawErr) {
		return sawErr.Details
	}
	return nil
}

// ExitCode returns the child process exit status carried by err, if any.
// Errors that carry no status map to 1; nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if details := GetErrorDetails(err); details != nil {
		if code, ok := details[DetailExitCode].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}

// IsNotExist reports whether err, or anything it wraps, is fs.ErrNotExist
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
