// File: standards.go
// Title: Error Standards for mDW Foundation
// Description: Module identifiers, standardized codes and constructors used
//              by the foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-19 v0.2.0: Text core modules and codes

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/mdwtext/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextx   = "textx"
	ModuleMathx   = "mathx"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "mdwtext"
)

// Standardized error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	CodeTextxAllocationFailed = "TEXTX_ALLOCATION_FAILED"
	CodeTextxCapacityExceeded = "TEXTX_CAPACITY_EXCEEDED"
	CodeTextxOperationFailed  = "TEXTX_OPERATION_FAILED"

	CodeMathxInvalidBase   = "MATHX_INVALID_BASE"
	CodeMathxInvalidNumber = "MATHX_INVALID_NUMBER"

	CodeConfigInvalidValue = "CONFIG_INVALID_VALUE"
	CodeConfigWatchFailed  = "CONFIG_WATCH_FAILED"
)

// Sentinel creates a reusable package-level error for a module operation.
// Sentinels are created once at package initialisation and returned as-is,
// so failing hot-path operations do not allocate.
func Sentinel(module, operation string, code mdwerror.Code, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(code).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(mdwerror.Code(CodeInvalidInput)).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithSeverity(mdwerror.SeverityLow)
}

// OperationError creates a standardized operation failure error wrapping cause
func OperationError(module, operation string, cause error, context map[string]interface{}) *mdwerror.Error {
	if cause == nil {
		return nil
	}
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return mdwerror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(mdwerror.Code(getOperationErrorCode(module))).
		WithOperation(module + "." + operation).
		WithDetails(context).
		WithSeverity(mdwerror.SeverityHigh)
}

func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleTextx:
		switch {
		case strings.Contains(operation, "reserve") || strings.Contains(operation, "alloc"):
			return CodeTextxAllocationFailed
		case strings.Contains(operation, "capacity"):
			return CodeTextxCapacityExceeded
		default:
			return CodeTextxOperationFailed
		}
	case ModuleMathx:
		switch {
		case strings.Contains(operation, "base"):
			return CodeMathxInvalidBase
		case strings.Contains(operation, "parse"):
			return CodeMathxInvalidNumber
		default:
			return CodeInvalidInput
		}
	case ModuleConfig:
		if strings.Contains(operation, "watch") {
			return CodeConfigWatchFailed
		}
		return CodeConfigInvalidValue
	default:
		return CodeOperationFailed
	}
}

func getOperationErrorCode(module string) string {
	switch module {
	case ModuleTextx:
		return CodeTextxOperationFailed
	case ModuleConfig:
		return CodeConfigWatchFailed
	default:
		return CodeOperationFailed
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// ExtractDetails extracts all details from a mDW error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}
