// File: digits.go
// Title: Radix Integer Formatting
// Description: Base 2..36 integer rendering and two's-complement patterns.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: Initial implementation

package mathx

import (
	"strconv"

	mdwerror "github.com/msto63/mdwtext/foundation/core/error"
	mdwerrors "github.com/msto63/mdwtext/foundation/core/errors"
)

const (
	// MinBase is the smallest supported radix.
	MinBase = 2
	// MaxBase is the largest supported radix ('0'-'9' then 'a'-'z').
	MaxBase = 36
)

// ErrInvalidBase is returned for a radix outside MinBase..MaxBase.
var ErrInvalidBase = mdwerrors.Sentinel(mdwerrors.ModuleMathx, "AppendInt",
	mdwerror.CodeInvalidBase, "base must be between 2 and 36")

// ValidBase reports whether base is a supported radix.
func ValidBase(base int) bool {
	return base >= MinBase && base <= MaxBase
}

// AppendInt appends the signed rendering of v in the given base.
func AppendInt(dst []byte, v int64, base int) ([]byte, error) {
	if !ValidBase(base) {
		return dst, ErrInvalidBase
	}
	return strconv.AppendInt(dst, v, base), nil
}

// AppendUint appends the rendering of v in the given base.
func AppendUint(dst []byte, v uint64, base int) ([]byte, error) {
	if !ValidBase(base) {
		return dst, ErrInvalidBase
	}
	return strconv.AppendUint(dst, v, base), nil
}

// TwosComplement returns the low bitSize bits of v as an unsigned pattern,
// e.g. TwosComplement(-1, 8) == 0xff.
func TwosComplement(v int64, bitSize int) uint64 {
	if bitSize <= 0 || bitSize >= 64 {
		return uint64(v)
	}
	return uint64(v) & (1<<uint(bitSize) - 1)
}
