// File: codes.go
// Title: Error Codes
// Description: Structured error codes used across the foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial code catalogue
// - 2026-10-19 v0.2.0: Replaced service/TCOL codes with buffer and conversion codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Buffer management
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	CodeNilInput         Code = "NIL_INPUT"
	CodeInvalidState     Code = "INVALID_STATE"

	// Conversion
	CodeInvalidBase   Code = "INVALID_BASE"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeOverflow      Code = "OVERFLOW"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeAllocationFailed, CodeCapacityExceeded, CodeNilInput, CodeInvalidState,
		CodeInvalidBase, CodeInvalidFormat, CodeOverflow,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAllocationFailed, CodeCapacityExceeded, CodeNilInput, CodeInvalidState:
		return "buffer"
	case CodeInvalidBase, CodeInvalidFormat, CodeOverflow:
		return "conversion"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
