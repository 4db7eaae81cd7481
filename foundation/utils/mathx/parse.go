// File: parse.go
// Title: Lenient Numeric Prefix Parsing
// Description: Parses the leading number of a byte sequence, ignoring any
//              trailing text.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: Initial implementation

package mathx

import (
	"math"
	"strconv"

	mdwstringx "github.com/msto63/mdwtext/foundation/utils/stringx"
)

func isDigit(c byte) bool { return c-'0' < 10 }

// skipSign skips leading whitespace and an optional sign.
func skipSign(b []byte) (i int, negative bool) {
	for i < len(b) && mdwstringx.IsSpace(b[i]) {
		i++
	}
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		negative = b[i] == '-'
		i++
	}
	return i, negative
}

// ParseIntPrefix parses an optionally signed decimal integer at the start of
// b. It returns 0 when b holds no digits and saturates at the int64 limits.
func ParseIntPrefix(b []byte) int64 {
	i, negative := skipSign(b)

	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}

	var n uint64
	for ; i < len(b) && isDigit(b[i]); i++ {
		d := uint64(b[i] - '0')
		if n > (limit-d)/10 {
			n = limit
			break
		}
		n = n*10 + d
	}

	if negative {
		return int64(-n)
	}
	return int64(n)
}

// ParseFloatPrefix parses a decimal floating point number, "inf", "infinity"
// or "nan" at the start of b. Letter case is ignored for the special forms.
// It returns 0 when b holds no number.
func ParseFloatPrefix(b []byte) float64 {
	start, negative := skipSign(b)
	rest := b[start:]

	if prefixFold(rest, "infinity") >= 3 {
		if negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if prefixFold(rest, "nan") == 3 {
		return math.NaN()
	}

	end := scanDecimal(rest)
	if end == 0 {
		return 0
	}

	// A scanned prefix is always valid syntax; only range errors remain,
	// and those already carry ±Inf or 0.
	v, _ := strconv.ParseFloat(mdwstringx.BytesToString(rest[:end]), 64)
	if negative {
		return -v
	}
	return v
}

// scanDecimal returns the length of the longest prefix of b matching
// digits [. digits] [e [sign] digits], with at least one mantissa digit.
func scanDecimal(b []byte) int {
	i := 0
	mantissa := 0
	for i < len(b) && isDigit(b[i]) {
		i++
		mantissa++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && isDigit(b[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		if j < len(b) && isDigit(b[j]) {
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

// prefixFold returns how many leading bytes of b match word, ignoring case.
func prefixFold(b []byte, word string) int {
	n := 0
	for n < len(b) && n < len(word) && mdwstringx.ToLowerByte(b[n]) == word[n] {
		n++
	}
	return n
}
