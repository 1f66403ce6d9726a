package vecmat

import (
	"fmt"
	"iter"
	"slices"

	"github.com/vecmat/vecmat/internal/numeric"
	"github.com/vecmat/vecmat/internal/storage"
)

// Element is the set of types a vector or matrix may hold: any
// fixed-size integer or floating-point type.
type Element = numeric.Element

// StorageKind identifies which strategy backs a vector.
type StorageKind = storage.Kind

const (
	// KindInline marks the fixed-capacity inline strategy.
	KindInline = storage.KindInline
	// KindHeap marks the exact-size heap strategy.
	KindHeap = storage.KindHeap
)

const (
	// InlineCapacity is the maximum dimension the inline strategy can
	// hold. Plain construction beyond it falls back to heap storage.
	InlineCapacity = storage.InlineCapacity

	// HeapThreshold is the dimension above which Random switches to
	// heap storage, trading one allocation against the cost of moving
	// a very large inline buffer around.
	HeapThreshold = 5000
)

// Vector is a fixed-dimension mathematical vector backed by one of
// two storage strategies: a fixed-capacity inline buffer or an
// exact-size heap allocation. Exactly one strategy is active; every
// operation dispatches to it transparently, and results of arithmetic
// are backed by the receiver's strategy (an inline operand never
// silently produces a heap result).
//
// A Vector value behaves like a slice header: plain copies share the
// backing storage, Clone makes it independent. The zero Vector has
// dimension 0.
type Vector[T Element] struct {
	inline *storage.Inline[T]
	heap   *storage.Heap[T]
}

// New creates an inline vector holding elems. Sources longer than
// InlineCapacity are backed by heap storage instead, since the inline
// buffer is size-bounded.
func New[T Element](elems ...T) Vector[T] {
	return FromSlice(len(elems), elems)
}

// NewHeap creates a heap-backed vector holding elems.
func NewHeap[T Element](elems ...T) Vector[T] {
	return HeapFromSlice(len(elems), elems)
}

// FromSlice creates a vector of dimension dim from a copy of src,
// inline by default. It panics with *ShapeError unless src has
// exactly dim elements.
func FromSlice[T Element](dim int, src []T) Vector[T] {
	if len(src) != dim {
		shapePanic("new vector", dim, len(src))
	}
	if dim > InlineCapacity {
		return Vector[T]{heap: storage.NewHeap(src)}
	}
	return Vector[T]{inline: storage.NewInline(src)}
}

// HeapFromSlice creates a heap-backed vector of dimension dim from a
// copy of src. It panics with *ShapeError unless src has exactly dim
// elements.
func HeapFromSlice[T Element](dim int, src []T) Vector[T] {
	if len(src) != dim {
		shapePanic("new heap vector", dim, len(src))
	}
	return Vector[T]{heap: storage.NewHeap(src)}
}

// FromSeq builds an inline-default vector of dimension dim from a
// finite sequence. The sequence must yield exactly dim elements;
// fewer or more panics with *ShapeError.
func FromSeq[T Element](dim int, seq iter.Seq[T]) Vector[T] {
	buf := make([]T, 0, dim)
	for x := range seq {
		if len(buf) == dim {
			shapePanic("vector from sequence", dim, dim+1)
		}
		buf = append(buf, x)
	}
	return FromSlice(dim, buf)
}

// Zero returns a vector of dim default-valued elements, inline by
// default.
func Zero[T Element](dim int) Vector[T] {
	if dim > InlineCapacity {
		return Vector[T]{heap: storage.ZeroHeap[T](dim)}
	}
	return Vector[T]{inline: storage.ZeroInline[T](dim)}
}

// Random creates a vector of dim uniformly distributed values drawn
// from rng. Dimensions above HeapThreshold use heap storage;
// everything else stays inline.
func Random[T Element](dim int, rng *RNG) Vector[T] {
	if dim > HeapThreshold {
		logger.Debug("random vector construction", "dim", dim, "storage", KindHeap)
		return HeapRandom[T](dim, rng)
	}
	logger.Debug("random vector construction", "dim", dim, "storage", KindInline)
	v := Vector[T]{inline: storage.ZeroInline[T](dim)}
	randomFill(v.view(), rng)
	return v
}

// HeapRandom creates a heap-backed vector of dim uniformly
// distributed values drawn from rng.
func HeapRandom[T Element](dim int, rng *RNG) Vector[T] {
	v := Vector[T]{heap: storage.ZeroHeap[T](dim)}
	randomFill(v.view(), rng)
	return v
}

// view returns the active strategy's contiguous elements.
func (v Vector[T]) view() []T {
	switch {
	case v.inline != nil:
		return v.inline.View()
	case v.heap != nil:
		return v.heap.View()
	default:
		return nil
	}
}

// Dim returns the fixed element count.
func (v Vector[T]) Dim() int {
	return len(v.view())
}

// Kind reports which storage strategy backs the vector.
func (v Vector[T]) Kind() StorageKind {
	if v.heap != nil {
		return KindHeap
	}
	return KindInline
}

// At returns element i (0-based). Out-of-range indices are fatal.
func (v Vector[T]) At(i int) T {
	return v.view()[i]
}

// Set stores x at element i (0-based). Out-of-range indices are
// fatal.
func (v Vector[T]) Set(i int, x T) {
	v.view()[i] = x
}

// ToSlice returns an independent copy of the elements.
func (v Vector[T]) ToSlice() []T {
	return slices.Clone(v.view())
}

// Clone returns a vector with the same elements and strategy backed
// by independent storage.
func (v Vector[T]) Clone() Vector[T] {
	switch {
	case v.heap != nil:
		return Vector[T]{heap: v.heap.Clone()}
	case v.inline != nil:
		return Vector[T]{inline: v.inline.Clone()}
	default:
		return Vector[T]{}
	}
}

// Equal reports elementwise equality, independent of which strategy
// backs either side. Vectors of different dimensions are unequal.
func (v Vector[T]) Equal(rhs Vector[T]) bool {
	return slices.Equal(v.view(), rhs.view())
}

// All returns a restartable forward iterator over (index, element)
// pairs; a fresh range always starts at index 0.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.view() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a restartable forward iterator over the elements.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.view() {
			if !yield(x) {
				return
			}
		}
	}
}

// Transform rewrites every element in place with fn. This is the
// mutable counterpart of All.
func (v Vector[T]) Transform(fn func(i int, x T) T) {
	view := v.view()
	for i, x := range view {
		view[i] = fn(i, x)
	}
}

// String renders the elements like a slice, e.g. "[1 2 3]".
func (v Vector[T]) String() string {
	return fmt.Sprint(v.view())
}
