// Package kernel implements the arithmetic shared by both storage
// strategies. Every function operates on the contiguous []T views the
// strategies expose, tries the accelerated path in internal/simd
// first and falls back to a generic loop.
//
// Binary operations assume the caller has already validated operand
// lengths; the only length check here is the length-3 precondition of
// the cross product, which the public layer enforces.
package kernel

import (
	"github.com/vecmat/vecmat/internal/numeric"
	"github.com/vecmat/vecmat/internal/simd"
)

// AddInPlace adds rhs into dst elementwise.
func AddInPlace[T numeric.Element](dst, rhs []T) {
	if simd.AddInPlace(dst, rhs) {
		return
	}
	for i := range dst {
		dst[i] += rhs[i]
	}
}

// SubInPlace subtracts rhs from dst elementwise.
func SubInPlace[T numeric.Element](dst, rhs []T) {
	if simd.SubInPlace(dst, rhs) {
		return
	}
	for i := range dst {
		dst[i] -= rhs[i]
	}
}

// MulInPlace multiplies dst by rhs elementwise (entrywise product).
func MulInPlace[T numeric.Element](dst, rhs []T) {
	if simd.MulInPlace(dst, rhs) {
		return
	}
	for i := range dst {
		dst[i] *= rhs[i]
	}
}

// ScaleInPlace multiplies every element of v by factor.
func ScaleInPlace[T numeric.Element](v []T, factor T) {
	if simd.ScaleInPlace(v, factor) {
		return
	}
	for i := range v {
		v[i] *= factor
	}
}

// Dot returns the dot product of a and b, accumulated in T.
func Dot[T numeric.Element](a, b []T) T {
	if v, ok := simd.Dot(a, b); ok {
		return v
	}
	var acc T
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

// Sum returns the sum of all elements, accumulated in T.
func Sum[T numeric.Element](v []T) T {
	if s, ok := simd.Sum(v); ok {
		return s
	}
	var acc T
	for _, x := range v {
		acc += x
	}
	return acc
}

// SumSquares returns the sum of squared elements, accumulated in T.
func SumSquares[T numeric.Element](v []T) T {
	if s, ok := simd.Dot(v, v); ok {
		return s
	}
	var acc T
	for _, x := range v {
		acc += x * x
	}
	return acc
}

// Cross writes the 3-element cross product of a and b into dst.
// dst may alias a or b; all operands must have length 3.
func Cross[T numeric.Element](dst, a, b []T) {
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	dst[0], dst[1], dst[2] = x, y, z
}
