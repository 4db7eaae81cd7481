// File: convert.go
// Title: Numeric Conversion
// Description: Construction from integers and floats, and lenient parsing
//              of the content back to numbers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textx

import (
	"unsafe"

	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
	mdwmathx "github.com/msto63/mdwtext/foundation/utils/mathx"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// appendInteger renders v in base: signed decimal for base 10, the
// two's-complement pattern of T's width otherwise.
func appendInteger[T Integer](dst []byte, v T, base int) ([]byte, error) {
	if base == 10 {
		if isSigned[T]() {
			return mdwmathx.AppendInt(dst, int64(v), base)
		}
		return mdwmathx.AppendUint(dst, uint64(v), base)
	}
	bits := int(unsafe.Sizeof(v)) * 8
	return mdwmathx.AppendUint(dst, mdwmathx.TwosComplement(int64(v), bits), base)
}

// FromInteger returns v rendered in base 2..36. Base 10 renders the signed
// value; other bases render the two's-complement bit pattern of T, so
// FromInteger(int8(-1), 16) is "ff". An unsupported base yields an invalid
// value.
func FromInteger[T Integer](v T, base int) *Text {
	var tmp [72]byte
	b, err := appendInteger(tmp[:0], v, base)
	if err != nil {
		logger().Debug("integer conversion rejected", mdwlog.Field("base", base))
		t := &Text{}
		t.Invalidate()
		return t
	}
	return FromBytes(b)
}

// FromFloat returns v with the given number of decimals, in a field of at
// least decimals+2 bytes.
func FromFloat(v float64, decimals int) *Text {
	if decimals < 0 {
		decimals = 0
	}
	var tmp [40]byte
	return FromBytes(mdwmathx.AppendFixed(tmp[:0], v, decimals+2, decimals))
}

// ToInt parses a leading decimal integer, skipping leading whitespace.
// Content without one, and invalid values, yield 0.
func (t *Text) ToInt() int64 {
	return mdwmathx.ParseIntPrefix(t.Bytes())
}

// ToFloat parses a leading decimal number, "inf" or "nan". Content
// without one, and invalid values, yield 0.
func (t *Text) ToFloat() float64 {
	return mdwmathx.ParseFloatPrefix(t.Bytes())
}
