// File: unsafe.go
// Title: Zero-Copy Conversions
// Description: String and byte slice views that share memory.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: Initial implementation

package stringx

import "unsafe"

// BytesToString returns a string sharing b's memory. b must not be modified
// while the string is in use.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes returns a read-only byte view of s. Writing to the result
// is undefined behavior.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
