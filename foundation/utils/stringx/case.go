// File: case.go
// Title: ASCII Case Utilities
// Description: Case classification, in-place conversion and case-insensitive
//              comparison restricted to ASCII letters.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.3.0: Replaced naming conventions with ASCII folding

package stringx

// IsUpper reports whether c is in 'A'..'Z'.
func IsUpper(c byte) bool { return c-'A' < 26 }

// IsLower reports whether c is in 'a'..'z'.
func IsLower(c byte) bool { return c-'a' < 26 }

// ToLowerByte maps 'A'..'Z' to lower case and returns other bytes unchanged.
func ToLowerByte(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpperByte maps 'a'..'z' to upper case and returns other bytes unchanged.
func ToUpperByte(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

// ToLowerInPlace lowers every ASCII letter of b.
func ToLowerInPlace(b []byte) {
	for i, c := range b {
		if IsUpper(c) {
			b[i] = c + ('a' - 'A')
		}
	}
}

// ToUpperInPlace uppers every ASCII letter of b.
func ToUpperInPlace(b []byte) {
	for i, c := range b {
		if IsLower(c) {
			b[i] = c - ('a' - 'A')
		}
	}
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// Unlike bytes.EqualFold it does not apply Unicode simple folding.
func EqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if ToLowerByte(a[i]) != ToLowerByte(b[i]) {
			return false
		}
	}
	return true
}
