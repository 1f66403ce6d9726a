package vecmat

import (
	"github.com/vecmat/vecmat/internal/kernel"
	"github.com/vecmat/vecmat/internal/numeric"
)

// The operation set below is the shared arithmetic contract: both
// storage strategies run the identical kernel, and every immutable
// form is defined as clone-then-in-place so the two forms cannot
// drift apart. Results are backed by the receiver's strategy.

// factorOf converts a scalar factor into the element type or dies
// trying.
func factorOf[T Element](op string, factor int64) T {
	f, ok := numeric.FromInt64[T](factor)
	if !ok {
		representationPanic(op, "factor %d is not representable in the element type", factor)
	}
	return f
}

func (v Vector[T]) checkDim(op string, rhs Vector[T]) {
	if v.Dim() != rhs.Dim() {
		shapePanic(op, v.Dim(), rhs.Dim())
	}
}

func (v Vector[T]) checkCross(rhs Vector[T]) {
	if v.Dim() != 3 {
		shapePanic("cross", 3, v.Dim())
	}
	if rhs.Dim() != 3 {
		shapePanic("cross", 3, rhs.Dim())
	}
}

// Scale returns a new vector with every element multiplied by factor.
// It panics with *RepresentationError if factor cannot be represented
// in the element type.
func (v Vector[T]) Scale(factor int64) Vector[T] {
	out := v.Clone()
	out.ScaleInPlace(factor)
	return out
}

// ScaleInPlace multiplies every element by factor, updating the
// receiver's storage.
func (v Vector[T]) ScaleInPlace(factor int64) {
	kernel.ScaleInPlace(v.view(), factorOf[T]("scale", factor))
}

// Dot returns the dot product of two equal-dimension vectors,
// accumulated in the element type and converted to int64. An
// accumulated value with no int64 representation is fatal.
func (v Vector[T]) Dot(rhs Vector[T]) int64 {
	v.checkDim("dot", rhs)
	acc := kernel.Dot(v.view(), rhs.view())
	n, ok := numeric.ToInt64(acc)
	if !ok {
		representationPanic("dot", "accumulated value %v has no int64 representation", acc)
	}
	return n
}

// Add returns the elementwise sum of two equal-dimension vectors.
func (v Vector[T]) Add(rhs Vector[T]) Vector[T] {
	v.checkDim("add", rhs)
	out := v.Clone()
	kernel.AddInPlace(out.view(), rhs.view())
	return out
}

// AddInPlace adds rhs into the receiver elementwise.
func (v Vector[T]) AddInPlace(rhs Vector[T]) {
	v.checkDim("add", rhs)
	kernel.AddInPlace(v.view(), rhs.view())
}

// Sub returns the elementwise difference of two equal-dimension
// vectors.
func (v Vector[T]) Sub(rhs Vector[T]) Vector[T] {
	v.checkDim("sub", rhs)
	out := v.Clone()
	kernel.SubInPlace(out.view(), rhs.view())
	return out
}

// SubInPlace subtracts rhs from the receiver elementwise.
func (v Vector[T]) SubInPlace(rhs Vector[T]) {
	v.checkDim("sub", rhs)
	kernel.SubInPlace(v.view(), rhs.view())
}

// Entrywise returns the elementwise product of two equal-dimension
// vectors.
func (v Vector[T]) Entrywise(rhs Vector[T]) Vector[T] {
	v.checkDim("entrywise", rhs)
	out := v.Clone()
	kernel.MulInPlace(out.view(), rhs.view())
	return out
}

// EntrywiseInPlace multiplies the receiver by rhs elementwise.
func (v Vector[T]) EntrywiseInPlace(rhs Vector[T]) {
	v.checkDim("entrywise", rhs)
	kernel.MulInPlace(v.view(), rhs.view())
}

// Cross returns the cross product of two 3-dimensional vectors using
// (a1*b2-a2*b1, a2*b0-a0*b2, a0*b1-a1*b0). Any other dimension
// panics with *ShapeError: 3 is a fixed constant of the operation,
// unrelated to the operands' shared dimension in general.
func (v Vector[T]) Cross(rhs Vector[T]) Vector[T] {
	v.checkCross(rhs)
	out := v.Clone()
	kernel.Cross(out.view(), v.view(), rhs.view())
	return out
}

// CrossInPlace replaces the receiver with the cross product of the
// receiver and rhs.
func (v Vector[T]) CrossInPlace(rhs Vector[T]) {
	v.checkCross(rhs)
	kernel.Cross(v.view(), v.view(), rhs.view())
}

// Outer returns the tensor (outer) product as a rows×rhs.Dim()
// matrix with out[i][j] = v[i] * rhs[j]. The row count is supplied by
// the caller and is normally v.Dim(); it is the caller's
// responsibility that rows does not exceed it (reading past the
// receiver's dimension is a fatal indexing error).
func (v Vector[T]) Outer(rows int, rhs Vector[T]) Matrix[T] {
	out := ZeroMatrix[T](rows, rhs.Dim())
	a, b := v.view(), rhs.view()
	for i := 0; i < rows; i++ {
		row := out.rows[i].view()
		for j := range b {
			row[j] = a[i] * b[j]
		}
	}
	return out
}

// Magnitude returns the floor of the Euclidean norm: the integer
// square root of the sum of squared elements. The sum accumulates in
// the element type; a sum with no uint64 representation (overflowed
// negative, NaN) is fatal.
func (v Vector[T]) Magnitude() uint64 {
	acc := kernel.SumSquares(v.view())
	u, ok := numeric.ToUint64(acc)
	if !ok {
		representationPanic("magnitude", "accumulated sum of squares %v has no uint64 representation", acc)
	}
	return numeric.Isqrt(u)
}

// Sum returns the sum of all elements, accumulated in the element
// type and converted to int64.
func (v Vector[T]) Sum() int64 {
	acc := kernel.Sum(v.view())
	n, ok := numeric.ToInt64(acc)
	if !ok {
		representationPanic("sum", "accumulated value %v has no int64 representation", acc)
	}
	return n
}
