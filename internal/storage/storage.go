// Package storage holds the two backing strategies a vector can be
// constructed with: a fixed-capacity inline buffer and an exact-size
// heap allocation. Both expose their elements as a contiguous []T
// view; all arithmetic lives in internal/kernel and operates on those
// views, so the strategies never duplicate math.
package storage

import (
	"fmt"

	"github.com/vecmat/vecmat/internal/numeric"
)

// InlineCapacity bounds the inline strategy. It equals the dimension
// threshold above which random vector construction switches to heap
// storage, so "fits inline" and "random stays inline" coincide.
const InlineCapacity = 5000

// Kind tags which strategy backs a vector.
type Kind uint8

const (
	KindInline Kind = iota
	KindHeap
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindHeap:
		return "heap"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Inline is the fixed-capacity strategy: one contiguous buffer
// embedded in the struct, sized at compile time. Elements past n are
// unused padding. Length never changes after construction.
type Inline[T numeric.Element] struct {
	n   int
	buf [InlineCapacity]T
}

// NewInline copies src into a fresh inline store. Callers route
// oversized sources to the heap strategy instead; exceeding the
// capacity here is a bug.
func NewInline[T numeric.Element](src []T) *Inline[T] {
	if len(src) > InlineCapacity {
		panic(fmt.Sprintf("storage: inline capacity %d exceeded by %d elements", InlineCapacity, len(src)))
	}
	s := &Inline[T]{n: len(src)}
	copy(s.buf[:], src)
	return s
}

// ZeroInline returns an inline store of n zero-valued elements.
func ZeroInline[T numeric.Element](n int) *Inline[T] {
	if n > InlineCapacity {
		panic(fmt.Sprintf("storage: inline capacity %d exceeded by %d elements", InlineCapacity, n))
	}
	return &Inline[T]{n: n}
}

// Len returns the element count.
func (s *Inline[T]) Len() int { return s.n }

// View returns the live elements. The slice aliases the backing
// buffer; writes through it are visible to every holder.
func (s *Inline[T]) View() []T { return s.buf[:s.n] }

// Clone returns an independent copy of the store.
func (s *Inline[T]) Clone() *Inline[T] {
	c := *s
	return &c
}

// Heap is the exact-size strategy: elements live in a separately
// allocated buffer of exactly Len elements. Slower to create than the
// inline strategy but unbounded. Length never changes after
// construction.
type Heap[T numeric.Element] struct {
	data []T
}

// NewHeap copies src into a fresh heap store.
func NewHeap[T numeric.Element](src []T) *Heap[T] {
	data := make([]T, len(src))
	copy(data, src)
	return &Heap[T]{data: data}
}

// ZeroHeap returns a heap store of n zero-valued elements.
func ZeroHeap[T numeric.Element](n int) *Heap[T] {
	return &Heap[T]{data: make([]T, n)}
}

// Len returns the element count.
func (s *Heap[T]) Len() int { return len(s.data) }

// View returns the live elements. The slice aliases the backing
// buffer; writes through it are visible to every holder.
func (s *Heap[T]) View() []T { return s.data }

// Clone returns an independent copy of the store.
func (s *Heap[T]) Clone() *Heap[T] { return NewHeap(s.data) }
