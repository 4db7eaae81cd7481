// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for structured errors and the
//              default severity derived from an error code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2026-10-19 v0.2.0: Code mapping for buffer and conversion codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. the allocator refused memory
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
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
	case CodeInternal:
		return SeverityCritical
	case CodeAllocationFailed, CodeInvalidState:
		return SeverityHigh
	case CodeCapacityExceeded, CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeOverflow:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeNilInput, CodeInvalidBase, CodeInvalidFormat,
		CodeValidationFailed, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
