// Package errors provides the standard way for foundation modules to build
// structured errors.
//
// Package: errors
// Title: Standard Error Handling API for mDW Foundation
// Description: Module identifiers, module-scoped error codes and a fluent
//              builder on top of the core error package. Every error built
//              here carries "module" and "operation" details so failures can
//              be attributed without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Modules reduced to textx, mathx, stringx and config;
//                      added Sentinel for allocation-free failure returns
//
// Usage:
//
//	var ErrAllocationFailed = errors.Sentinel(errors.ModuleTextx, "reserve",
//		mdwerror.CodeAllocationFailed, "heap block allocation failed")
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("policy").
//		Messagef("alignment %d is not a power of two", a).
//		Code(errors.CodeConfigInvalidValue).
//		Build()
package errors
