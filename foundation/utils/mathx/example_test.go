// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-19 v0.3.0: Examples for text conversions

package mathx_test

import (
	"fmt"

	mdwmathx "github.com/msto63/mdwtext/foundation/utils/mathx"
)

func ExampleFormatFixed() {
	fmt.Printf("[%s]\n", mdwmathx.FormatFixed(3.14159, 6, 2))
	fmt.Printf("[%s]\n", mdwmathx.FormatFixed(1.999, 4, 2))
	fmt.Printf("[%s]\n", mdwmathx.FormatFixed(-42, 0, 0))
	// Output:
	// [  3.14]
	// [2.00]
	// [-42]
}

func ExampleAppendInt() {
	buf, _ := mdwmathx.AppendInt(nil, 255, 16)
	fmt.Println(string(buf))

	_, err := mdwmathx.AppendInt(nil, 255, 40)
	fmt.Println(err)
	// Output:
	// ff
	// base must be between 2 and 36
}

func ExampleTwosComplement() {
	buf, _ := mdwmathx.AppendUint(nil, mdwmathx.TwosComplement(-1, 8), 2)
	fmt.Println(string(buf))
	// Output:
	// 11111111
}

func ExampleParseIntPrefix() {
	fmt.Println(mdwmathx.ParseIntPrefix([]byte("  42 apples")))
	fmt.Println(mdwmathx.ParseIntPrefix([]byte("apples")))
	// Output:
	// 42
	// 0
}

func ExampleParseFloatPrefix() {
	fmt.Println(mdwmathx.ParseFloatPrefix([]byte("2.5e1cm")))
	fmt.Println(mdwmathx.ParseFloatPrefix([]byte("-inf")))
	// Output:
	// 25
	// -Inf
}
