package simd

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/vecmat/vecmat/internal/numeric"
)

// AddInPlace adds rhs into dst elementwise. Reports whether an
// accelerated path handled the operation.
func AddInPlace[T numeric.Element](dst, rhs []T) bool {
	if len(dst) == 0 {
		return false
	}
	switch d := any(dst).(type) {
	case []float64:
		vek.Add_Inplace(d, any(rhs).([]float64))
	case []float32:
		vek32.Add_Inplace(d, any(rhs).([]float32))
	default:
		return false
	}
	return true
}

// SubInPlace subtracts rhs from dst elementwise.
func SubInPlace[T numeric.Element](dst, rhs []T) bool {
	if len(dst) == 0 {
		return false
	}
	switch d := any(dst).(type) {
	case []float64:
		vek.Sub_Inplace(d, any(rhs).([]float64))
	case []float32:
		vek32.Sub_Inplace(d, any(rhs).([]float32))
	default:
		return false
	}
	return true
}

// MulInPlace multiplies dst by rhs elementwise.
func MulInPlace[T numeric.Element](dst, rhs []T) bool {
	if len(dst) == 0 {
		return false
	}
	switch d := any(dst).(type) {
	case []float64:
		vecmath.MulBlockInPlace(d, any(rhs).([]float64))
	case []float32:
		vek32.Mul_Inplace(d, any(rhs).([]float32))
	default:
		return false
	}
	return true
}

// ScaleInPlace multiplies every element of v by factor.
func ScaleInPlace[T numeric.Element](v []T, factor T) bool {
	if len(v) == 0 {
		return false
	}
	switch s := any(v).(type) {
	case []float64:
		vek.MulNumber_Inplace(s, float64(factor))
	case []float32:
		vek32.MulNumber_Inplace(s, float32(factor))
	default:
		return false
	}
	return true
}

// Dot returns the dot product of a and b when an accelerated path
// applies.
func Dot[T numeric.Element](a, b []T) (T, bool) {
	if len(a) == 0 {
		return 0, false
	}
	switch x := any(a).(type) {
	case []float64:
		return T(vek.Dot(x, any(b).([]float64))), true
	case []float32:
		return T(vek32.Dot(x, any(b).([]float32))), true
	}
	return 0, false
}

// Sum returns the sum of all elements of v when an accelerated path
// applies.
func Sum[T numeric.Element](v []T) (T, bool) {
	if len(v) == 0 {
		return 0, false
	}
	switch x := any(v).(type) {
	case []float64:
		return T(vek.Sum(x)), true
	case []float32:
		return T(vek32.Sum(x)), true
	}
	return 0, false
}
