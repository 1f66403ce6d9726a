// Package numeric defines the element type constraint shared by the
// vector and matrix code, plus the checked conversions between the
// element type and the wide integer result types (int64 for dot
// products and sums, uint64 for magnitudes).
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Element is the set of types a vector or matrix may hold: any
// fixed-size integer or floating-point type. Elements are copied by
// value and combined with +, - and *.
type Element interface {
	constraints.Integer | constraints.Float
}

// Boundaries of the wide integer types as float64 values. Both are
// powers of two and therefore exact.
const (
	maxInt64f  = 9223372036854775808.0  // 2^63
	maxUint64f = 18446744073709551616.0 // 2^64
)

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Element]() bool {
	return T(1)/T(2) != 0
}

// IsUnsigned reports whether T is an unsigned integer type.
func IsUnsigned[T Element]() bool {
	var zero T
	return zero-1 > zero
}

// ToInt64 converts an accumulated value to the wide signed result
// type. Floats truncate toward zero; NaN and out-of-range values
// report false.
func ToInt64[T Element](v T) (int64, bool) {
	if IsFloat[T]() {
		f := float64(v)
		if math.IsNaN(f) || f >= maxInt64f || f < -maxInt64f {
			return 0, false
		}
		return int64(f), true
	}
	n := int64(v)
	if (n < 0) != (v < 0) {
		// Unsigned value past MaxInt64 wrapped negative.
		return 0, false
	}
	return n, true
}

// ToUint64 converts an accumulated value to the wide unsigned result
// type. Negative values, NaN and out-of-range floats report false.
func ToUint64[T Element](v T) (uint64, bool) {
	if IsFloat[T]() {
		f := float64(v)
		if math.IsNaN(f) || f < 0 || f >= maxUint64f {
			return 0, false
		}
		return uint64(f), true
	}
	if v < 0 {
		return 0, false
	}
	return uint64(v), true
}

// FromInt64 converts a wide signed value into the element type.
// Integer targets are round-trip checked; float targets always
// succeed (precision loss on very large values is allowed, matching
// the accumulate-then-convert contract).
func FromInt64[T Element](v int64) (T, bool) {
	t := T(v)
	if IsFloat[T]() {
		return t, true
	}
	if v < 0 && IsUnsigned[T]() {
		return 0, false
	}
	if int64(t) != v {
		return 0, false
	}
	return t, true
}

// maxRoot is the largest r with r*r representable in a uint64.
const maxRoot = 1<<32 - 1

// Isqrt returns the floor of the square root of v.
func Isqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(v)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > v {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= v {
		r++
	}
	return r
}
