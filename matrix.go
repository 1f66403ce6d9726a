package vecmat

import (
	"iter"
	"strings"

	"github.com/vecmat/vecmat/internal/numeric"
	"github.com/vecmat/vecmat/internal/storage"
)

// mulTransposeThreshold is the output element count at which Mul
// switches from the direct triple loop to transposing the right
// operand once and computing output rows as dot products. Heuristic
// constant; both regimes produce identical results.
const mulTransposeThreshold = 240_000

// Matrix is a fixed-shape M×N matrix built from M row vectors of
// dimension N. The shape is fixed for the lifetime of the value;
// mutation happens only through Set, Row and the row vectors' own
// in-place operations. Like Vector, plain copies share row storage
// and Clone deep-copies.
type Matrix[T Element] struct {
	rows []Vector[T]
	cols int
}

// NewMatrix builds a matrix from a 2D literal, one inner slice per
// row. Rows are heap backed (exact-size allocations). All rows must
// have equal length; ragged input panics with *ShapeError.
func NewMatrix[T Element](rows [][]T) Matrix[T] {
	if len(rows) == 0 {
		return Matrix[T]{}
	}
	cols := len(rows[0])
	m := Matrix[T]{rows: make([]Vector[T], len(rows)), cols: cols}
	for i, r := range rows {
		if len(r) != cols {
			shapePanic("new matrix", cols, len(r))
		}
		m.rows[i] = HeapFromSlice(cols, r)
	}
	return m
}

// MatrixFromRows assembles a matrix from existing vectors, keeping
// each row's storage strategy. The rows share storage with the
// inputs. All rows must have equal dimension.
func MatrixFromRows[T Element](rows ...Vector[T]) Matrix[T] {
	if len(rows) == 0 {
		return Matrix[T]{}
	}
	cols := rows[0].Dim()
	for _, r := range rows[1:] {
		if r.Dim() != cols {
			shapePanic("matrix from rows", cols, r.Dim())
		}
	}
	m := Matrix[T]{rows: make([]Vector[T], len(rows)), cols: cols}
	copy(m.rows, rows)
	return m
}

// ZeroMatrix returns an m×n matrix of default-valued elements. All
// intermediate buffers in this package are built this way before
// being populated; nothing relies on uninitialized memory.
func ZeroMatrix[T Element](m, n int) Matrix[T] {
	out := Matrix[T]{rows: make([]Vector[T], m), cols: n}
	for i := range out.rows {
		out.rows[i] = Vector[T]{heap: storage.ZeroHeap[T](n)}
	}
	return out
}

// RandomMatrix returns an m×n matrix of uniformly distributed values
// drawn from rng.
func RandomMatrix[T Element](m, n int, rng *RNG) Matrix[T] {
	out := ZeroMatrix[T](m, n)
	for _, row := range out.rows {
		randomFill(row.view(), rng)
	}
	return out
}

// Rows returns the row count M.
func (m Matrix[T]) Rows() int { return len(m.rows) }

// Cols returns the column count N.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the element at row r, column c (0-based). Out-of-range
// positions are fatal.
func (m Matrix[T]) At(r, c int) T { return m.rows[r].At(c) }

// Set stores x at row r, column c (0-based). Out-of-range positions
// are fatal.
func (m Matrix[T]) Set(r, c int, x T) { m.rows[r].Set(c, x) }

// Row returns row r. The vector shares storage with the matrix, so
// in-place operations on it mutate the matrix.
func (m Matrix[T]) Row(r int) Vector[T] { return m.rows[r] }

// All returns a restartable forward iterator over (index, row) pairs.
func (m Matrix[T]) All() iter.Seq2[int, Vector[T]] {
	return func(yield func(int, Vector[T]) bool) {
		for i, row := range m.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Clone returns a matrix backed by independent storage.
func (m Matrix[T]) Clone() Matrix[T] {
	out := Matrix[T]{rows: make([]Vector[T], len(m.rows)), cols: m.cols}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}
	return out
}

// Equal reports elementwise equality across all M×N positions,
// independent of row storage strategies. Matrices of different shapes
// are unequal.
func (m Matrix[T]) Equal(rhs Matrix[T]) bool {
	if len(m.rows) != len(rhs.rows) || m.cols != rhs.cols {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(rhs.rows[i]) {
			return false
		}
	}
	return true
}

// Mul returns the matrix product of the M×N receiver and the N×P
// argument as a new M×P matrix. Outputs below mulTransposeThreshold
// elements use the direct triple loop (inner accumulation over the
// shared dimension N); larger outputs transpose rhs once and compute
// every output element as a row dot product, amortizing the
// transpose cost. The split is purely a performance heuristic.
func (m Matrix[T]) Mul(rhs Matrix[T]) Matrix[T] {
	if m.cols != rhs.Rows() {
		shapePanic("matrix multiply", m.cols, rhs.Rows())
	}
	if m.Rows()*rhs.Cols() < mulTransposeThreshold {
		logger.Debug("matrix multiply", "regime", "direct", "rows", m.Rows(), "cols", rhs.Cols())
		return m.mulDirect(rhs)
	}
	logger.Debug("matrix multiply", "regime", "transpose", "rows", m.Rows(), "cols", rhs.Cols())
	return m.mulTransposed(rhs)
}

// mulDirect accumulates out[r][c] = Σ_k m[r][k] * rhs[k][c] in the
// element type.
func (m Matrix[T]) mulDirect(rhs Matrix[T]) Matrix[T] {
	out := ZeroMatrix[T](m.Rows(), rhs.Cols())
	rhsViews := make([][]T, rhs.Rows())
	for k, row := range rhs.rows {
		rhsViews[k] = row.view()
	}
	for r, row := range m.rows {
		lhs := row.view()
		outRow := out.rows[r].view()
		for c := 0; c < rhs.Cols(); c++ {
			var acc T
			for k := 0; k < m.cols; k++ {
				acc += lhs[k] * rhsViews[k][c]
			}
			outRow[c] = acc
		}
	}
	return out
}

// mulTransposed transposes rhs once and fills each output element
// from a row-by-row dot product, converted back into the element
// type. A dot product with no representation in the element type is
// fatal.
func (m Matrix[T]) mulTransposed(rhs Matrix[T]) Matrix[T] {
	t := rhs.Transpose()
	out := ZeroMatrix[T](m.Rows(), rhs.Cols())
	for r, row := range m.rows {
		outRow := out.rows[r].view()
		for c, col := range t.rows {
			x, ok := numeric.FromInt64[T](row.Dot(col))
			if !ok {
				representationPanic("matrix multiply", "dot product at (%d,%d) is not representable in the element type", r, c)
			}
			outRow[c] = x
		}
	}
	return out
}

func (m Matrix[T]) checkShape(op string, rhs Matrix[T]) {
	if len(m.rows) != len(rhs.rows) {
		shapePanic(op, len(m.rows), len(rhs.rows))
	}
	if m.cols != rhs.cols {
		shapePanic(op, m.cols, rhs.cols)
	}
}

// Add returns the elementwise sum of two equal-shape matrices, row by
// row. Result rows are backed by the receiver's row strategies.
func (m Matrix[T]) Add(rhs Matrix[T]) Matrix[T] {
	m.checkShape("matrix add", rhs)
	out := Matrix[T]{rows: make([]Vector[T], len(m.rows)), cols: m.cols}
	for i := range m.rows {
		out.rows[i] = m.rows[i].Add(rhs.rows[i])
	}
	return out
}

// Sub returns the elementwise difference of two equal-shape matrices,
// row by row.
func (m Matrix[T]) Sub(rhs Matrix[T]) Matrix[T] {
	m.checkShape("matrix subtract", rhs)
	out := Matrix[T]{rows: make([]Vector[T], len(m.rows)), cols: m.cols}
	for i := range m.rows {
		out.rows[i] = m.rows[i].Sub(rhs.rows[i])
	}
	return out
}

// Transpose returns the N×M transpose as a new matrix.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := ZeroMatrix[T](m.cols, m.Rows())
	for r, row := range m.rows {
		for c, x := range row.view() {
			out.rows[c].view()[r] = x
		}
	}
	return out
}

// String renders the matrix as nested rows, e.g. "[[1 2] [3 4]]".
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range m.rows {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}
