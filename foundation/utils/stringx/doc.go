// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides byte-level text helpers used by the
//              mDW text buffer: C-locale classification, ASCII case folding,
//              bounded search and zero-copy conversions.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-19 v0.3.0: Reworked around byte-oriented helpers; naming
//                      conventions and random generators removed

// Package stringx provides byte-oriented text helpers for the mDW foundation.
//
// Everything here works on single bytes. Classification follows the C locale:
// the whitespace set is space, \t, \n, \v, \f and \r, and case mapping only
// touches 'A'..'Z' and 'a'..'z'. Bytes >= 0x80 are never altered, so UTF-8
// sequences pass through case conversion unchanged.
//
// # Search
//
// IndexFrom and LastIndexFrom mirror bytes.Index and bytes.LastIndex with an
// explicit starting offset, returning absolute positions:
//
//	pos := stringx.IndexFrom(buf, []byte("ll"), 3)
//	last := stringx.LastIndexByteFrom(buf, 'l', 10)
//
// # Zero-copy views
//
// BytesToString and StringToBytes share memory with their argument. The
// caller must not modify the bytes while the other view is alive.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Functions ending in
// InPlace mutate their argument and need external synchronization.
package stringx
