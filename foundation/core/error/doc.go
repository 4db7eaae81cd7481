// Package error provides structured error values for the mDW text core.
//
// Package: error
// Title: mDW Error Handling Framework
// Description: Structured errors with codes, severities, operation names and
//              details. The text core keeps its failure modes (allocation
//              failure, capacity ceiling, nil input, bad conversion base) as
//              package-level sentinels built from this type so that failing
//              mutations never allocate a fresh error value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Text-domain codes, Is() matching by code, trimmed
//                      service-only context (user/request IDs, i18n keys)
//
// Usage:
//
//	var ErrTooLarge = error.New("requested capacity exceeds ceiling").
//		WithCode(error.CodeCapacityExceeded).
//		WithOperation("textx.Reserve")
//
//	if errors.Is(err, ErrTooLarge) {
//		// handle
//	}
//
//	wrapped := error.Wrap(ioErr, "failed to load tuning file").
//		WithCode(error.CodeConfigError).
//		WithDetail("path", path)
package error
