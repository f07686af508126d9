// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used by strcore packages. Codes are stable strings
//              so they survive JSON logging and can be matched by callers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set
// - 2026-10-12 v0.2.0: Added CodeOutOfMemory and CodeIOError

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Resources
	CodeOutOfMemory Code = "OUT_OF_MEMORY"
	CodeIOError     Code = "IO_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the codes defined above.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeOutOfMemory, CodeIOError,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeValueOutOfRange, CodeInvalidFormat:
		return true
	}
	return false
}
