// File: stringx.go
// Title: Core Byte Utility Functions
// Description: Whitespace classification, trimming bounds and offset-based
//              search over byte slices.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.3.0: Byte-level search and classification

package stringx

import "bytes"

// spaceTable marks the C-locale whitespace bytes.
var spaceTable = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

// IsSpace reports whether c is one of space, \t, \n, \v, \f or \r.
func IsSpace(c byte) bool {
	return spaceTable[c]
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !spaceTable[s[i]] {
			return false
		}
	}
	return true
}

// TrimBounds returns the half-open range of b left after stripping leading
// and trailing whitespace. An all-space input yields start == end.
func TrimBounds(b []byte) (start, end int) {
	end = len(b)
	for start < end && spaceTable[b[start]] {
		start++
	}
	for end > start && spaceTable[b[end-1]] {
		end--
	}
	return start, end
}

// IndexFrom returns the absolute index of the first occurrence of needle in
// b at or after from, or -1. A negative from is treated as 0.
func IndexFrom(b, needle []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(b) {
		return -1
	}
	i := bytes.Index(b[from:], needle)
	if i < 0 {
		return -1
	}
	return from + i
}

// IndexByteFrom is IndexFrom for a single byte.
func IndexByteFrom(b []byte, c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(b) {
		return -1
	}
	i := bytes.IndexByte(b[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// LastIndexFrom returns the largest index i <= from at which needle occurs
// in b, or -1. The match may extend past from.
func LastIndexFrom(b, needle []byte, from int) int {
	if from < 0 {
		return -1
	}
	limit := from + len(needle)
	if limit > len(b) {
		limit = len(b)
	}
	return bytes.LastIndex(b[:limit], needle)
}

// LastIndexByteFrom returns the largest index i <= from holding c, or -1.
func LastIndexByteFrom(b []byte, c byte, from int) int {
	if from < 0 {
		return -1
	}
	if from >= len(b) {
		from = len(b) - 1
	}
	return bytes.LastIndexByte(b[:from+1], c)
}
