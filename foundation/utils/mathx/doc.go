// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the numeric conversions behind the mDW
//              text buffer: fixed-point float rendering, radix formatting and
//              lenient prefix parsing.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-19 v0.3.0: Refocused on text conversions; decimal, currency and
//                      business calculations removed

// Package mathx converts between numbers and their textual form.
//
// # Fixed-point rendering
//
// AppendFixed renders a float64 with a fixed number of fractional digits,
// right-aligned in a minimum field width:
//
//	buf = mathx.AppendFixed(buf, 3.14159, 6, 2) // "  3.14"
//	buf = mathx.AppendFixed(buf, 1.999, 4, 2)   // "2.00"
//
// The value is rounded half-up at the requested precision before digits are
// extracted. NaN renders as "nan" and both infinities as "inf". The integer
// part is never truncated, so the result may exceed width.
//
// # Radix formatting
//
// AppendInt and AppendUint accept bases 2 through 36 and use lower-case
// digits. Any other base yields ErrInvalidBase. TwosComplement maps a signed
// value onto the unsigned bit pattern of a narrower integer type, which is
// how non-decimal renderings of negative numbers are produced.
//
// # Prefix parsing
//
// ParseIntPrefix and ParseFloatPrefix read the longest numeric prefix after
// optional leading whitespace and return 0 when there is none. They never
// fail: out-of-range integers saturate and out-of-range floats become
// infinities.
//
//	mathx.ParseIntPrefix([]byte("  42 apples"))  // 42
//	mathx.ParseFloatPrefix([]byte("2.5e1cm"))     // 25
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package mathx
