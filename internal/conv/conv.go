// Package conv provides safe integer narrowing for the regexp protocol
// layer.
//
// Length coercion works in float64-derived int64 space (up to 2^53-1)
// while subject offsets are plain ints. These helpers perform the
// narrowing after the caller has bounds-checked the value; they panic on
// overflow since that indicates a programming error, not bad input.
package conv

import "math"

// Int64ToInt safely narrows an int64 to int.
// Panics if n is outside the int range.
//
//go:inline
func Int64ToInt(n int64) int {
	if n < math.MinInt || n > math.MaxInt {
		panic("integer overflow: int64 value out of int range")
	}
	return int(n)
}
