// File: fixed.go
// Title: Fixed-Point Float Rendering
// Description: Width and precision controlled float to text conversion with
//              half-up rounding.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: Initial implementation

package mathx

import "math"

// epsilon is the distance from 1.0 to the next larger float64.
const epsilon = 0x1p-52

// AppendFixed appends v with prec fractional digits, padded on the left with
// spaces to at least width bytes, and returns the extended buffer.
func AppendFixed(dst []byte, v float64, width, prec int) []byte {
	if math.IsNaN(v) {
		return append(dst, "nan"...)
	}
	if math.IsInf(v, 0) {
		return append(dst, "inf"...)
	}
	if prec < 0 {
		prec = 0
	}

	fill := width
	if prec > 0 {
		fill -= prec + 1
	}

	negative := false
	if v < 0 {
		negative = true
		fill--
		v = -v
	}

	rounding := 2.0
	for i := 0; i < prec; i++ {
		rounding *= 10
	}
	v += 1 / rounding

	tenpow := 1.0
	digits := 1
	for next := 10 * tenpow; v >= next; next = 10 * tenpow {
		tenpow = next
		digits++
	}

	// compensate for values that land a hair below a digit boundary
	v *= 1 + epsilon
	v /= tenpow
	fill -= digits

	for ; fill > 0; fill-- {
		dst = append(dst, ' ')
	}
	if negative {
		dst = append(dst, '-')
	}

	digits += prec
	for digits > 0 {
		digits--
		d := int(v)
		if d > 9 {
			d = 9
		}
		dst = append(dst, byte('0'+d))
		if digits == prec && prec > 0 {
			dst = append(dst, '.')
		}
		v -= float64(d)
		v *= 10
	}
	return dst
}

// FormatFixed is AppendFixed into a new string.
func FormatFixed(v float64, width, prec int) string {
	var buf [32]byte
	return string(AppendFixed(buf[:0], v, width, prec))
}
