// File: fixed_test.go
// Title: Unit Tests for Fixed-Point Rendering
// Description: Table tests for width, precision, rounding and special values.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: Initial test implementation

package mathx

import (
	"math"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		width    int
		prec     int
		expected string
	}{
		{"rounds up into next digit", 1.999, 4, 2, "2.00"},
		{"negative", -3.14159, 4, 2, "-3.14"},
		{"integer part never truncated", 123.456, 3, 1, "123.5"},
		{"zero", 0, 4, 2, "0.00"},
		{"left padded", 3.14159, 6, 2, "  3.14"},
		{"negative padded", -1.5, 6, 1, "  -1.5"},
		{"no fraction", 42, 2, 0, "42"},
		{"half rounds up", 2.5, 1, 0, "3"},
		{"negative half", -0.5, 0, 0, "-1"},
		{"small fraction", 0.125, 0, 2, "0.13"},
		{"large value", 1e6, 0, 2, "1000000.00"},
		{"negative precision treated as zero", 7.2, 0, -3, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFixed(tt.value, tt.width, tt.prec); got != tt.expected {
				t.Errorf("FormatFixed(%v, %d, %d) = %q; want %q", tt.value, tt.width, tt.prec, got, tt.expected)
			}
		})
	}
}

func TestFormatFixedSpecialValues(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "inf"},
	}

	for _, tt := range tests {
		if got := FormatFixed(tt.value, 10, 2); got != tt.expected {
			t.Errorf("FormatFixed(%v) = %q; want %q", tt.value, got, tt.expected)
		}
	}
}

func TestAppendFixedKeepsPrefix(t *testing.T) {
	buf := []byte("x=")
	buf = AppendFixed(buf, 2.25, 4, 1)
	if string(buf) != "x= 2.3" {
		t.Errorf("AppendFixed() = %q; want %q", buf, "x= 2.3")
	}
}
