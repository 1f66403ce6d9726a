// Package vecmat provides fixed-dimension vectors and matrices for
// basic linear algebra over any integer or float element type.
//
// The distinguishing design is the storage strategy behind Vector:
// every vector owns exactly Dim elements, but the backing buffer is
// chosen at construction between a fixed-capacity inline block (fast,
// bounded by InlineCapacity) and an exact-size heap allocation
// (slower, unbounded). One unified Vector type dispatches to
// whichever strategy is active, so downstream code (including Matrix)
// never cares which one it got.
//
// # Quick Start
//
//	v := vecmat.New[int](1, 2, 3, 4)
//	w := vecmat.NewHeap[int](5, 6, 7, 8)
//
//	v.Dot(w)       // 70
//	v.Add(w)       // [6 8 10 12], inline like v
//	v.Entrywise(w) // [5 12 21 32]
//
//	a := vecmat.NewMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})
//	b := vecmat.NewMatrix([][]int{{3, 1}, {9, 6}})
//	a.Mul(b) // [[21 13] [45 27] [69 41]]
//
// Random construction chooses the strategy automatically: dimensions
// above HeapThreshold go to the heap, everything else stays inline.
//
//	rng := vecmat.NewRNG(4711)
//	r := vecmat.Random[float32](128, rng)
//
// # Mutating Forms
//
// Every binary operation has an ...InPlace form that updates the
// receiver instead of allocating a result. The in-place forms are
// behaviorally identical to their immutable counterparts and exist
// purely to avoid the allocation (heap strategy) or the copy (inline
// strategy).
//
// # Error Model
//
// All operations are total on valid shapes. A violated structural
// precondition (dimension mismatch, cross product on a non-3
// dimension, construction from a source of the wrong length) panics
// with *ShapeError; a disallowed numeric conversion (scalar factor or
// accumulated result with no representation in the target type)
// panics with *RepresentationError. Both are programmer errors, never
// returned as error values.
//
// Go has no operator overloading, so the named operations are the
// only spelling: Add, Sub, Entrywise, Cross, Outer, Dot.
//
// # Key Features
//
//   - Inline and heap storage behind one Vector type
//   - Shared arithmetic kernel, implemented once over both strategies
//   - SIMD-accelerated float32/float64 paths (viterin/vek, algo-vecmath)
//   - Two-regime matrix multiply (direct vs transpose-and-dot)
//   - Deterministic, injectable random construction
package vecmat
