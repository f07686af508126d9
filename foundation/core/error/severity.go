// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps them onto
//              log levels when an error is reported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input or a missing optional resource
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates the requested operation could not be completed,
	// e.g. an allocator refused to grow a buffer
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical

	case CodeOutOfMemory, CodeInternal, CodeIOError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeValueOutOfRange, CodeInvalidFormat, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
