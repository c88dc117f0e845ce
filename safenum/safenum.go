// Package safenum provides range-checked string-to-number parsing and
// overflow-checked unsigned 64-bit arithmetic.
//
// The parsing functions return false instead of a partially converted
// value whenever the input is malformed or out of the target type's
// range; a minus sign in front of an unsigned target is always a
// failure. Float64 additionally rejects NaN and the infinities, which
// the underlying parser would accept as spelled-out literals.
//
// AddUint64 and MulUint64 report overflow instead of silently wrapping,
// so callers can keep intermediate arithmetic exact.
//
// All functions are safe for concurrent use by multiple goroutines.
package safenum

import (
	"math"
	"math/bits"
	"strconv"
)

// Int16 parses s as a signed 16-bit integer.
func Int16(s string) (int16, bool) {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(n), true
}

// Uint16 parses s as an unsigned 16-bit integer.
func Uint16(s string) (uint16, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Int32 parses s as a signed 32-bit integer.
func Int32(s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Uint32 parses s as an unsigned 32-bit integer.
func Uint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Int64 parses s as a signed 64-bit integer.
func Int64(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Uint64 parses s as an unsigned 64-bit integer.
func Uint64(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float64 parses s as a finite float64. Inputs that parse to NaN or an
// infinity, including overflowing decimal literals, return false.
func Float64(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// AddUint64 returns a + b, reporting false if the sum wraps.
func AddUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// MulUint64 returns a * b, reporting false if the product wraps.
func MulUint64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
