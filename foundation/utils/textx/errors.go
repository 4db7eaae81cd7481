// File: errors.go
// Title: Text Error Values
// Description: Sentinel errors returned by textx operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	mdwerror "github.com/msto63/mdwtext/foundation/core/error"
	mdwerrors "github.com/msto63/mdwtext/foundation/core/errors"
	mdwmathx "github.com/msto63/mdwtext/foundation/utils/mathx"
)

// Errors are shared values; compare with errors.Is.
var (
	// ErrAllocationFailed reports that the allocator had no block.
	ErrAllocationFailed = mdwerrors.Sentinel(mdwerrors.ModuleTextx, "Reserve",
		mdwerror.CodeAllocationFailed, "heap allocation failed")

	// ErrCapacityExceeded reports a request above Policy.MaxCapacity.
	ErrCapacityExceeded = mdwerrors.Sentinel(mdwerrors.ModuleTextx, "Reserve",
		mdwerror.CodeCapacityExceeded, "requested capacity exceeds maximum")

	// ErrNilInput reports a missing operand or an operand without buffer.
	ErrNilInput = mdwerrors.Sentinel(mdwerrors.ModuleTextx, "Concat",
		mdwerror.CodeNilInput, "operand has no buffer")

	// ErrInvalidBase reports a radix outside 2..36.
	ErrInvalidBase = mdwmathx.ErrInvalidBase
)
