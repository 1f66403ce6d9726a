package vecmat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 4, m.At(1, 1))

	m.Set(1, 1, 40)
	assert.Equal(t, 40, m.At(1, 1))

	assert.Panics(t, func() { m.At(3, 0) })
	assert.Panics(t, func() { m.At(0, 2) })
}

func TestNewMatrixRaggedIsFatal(t *testing.T) {
	requireShapePanic(t, func() {
		NewMatrix([][]int{{1, 2}, {3, 4, 5}})
	})
}

func TestMatrixFromRowsKeepsStrategies(t *testing.T) {
	m := MatrixFromRows(New(1, 2), NewHeap(3, 4))

	assert.Equal(t, KindInline, m.Row(0).Kind())
	assert.Equal(t, KindHeap, m.Row(1).Kind())

	requireShapePanic(t, func() { MatrixFromRows(New(1, 2), New(3, 4, 5)) })
}

func TestZeroMatrix(t *testing.T) {
	m := ZeroMatrix[int](2, 3)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.True(t, m.Equal(NewMatrix([][]int{{0, 0, 0}, {0, 0, 0}})))
}

func TestRandomMatrix(t *testing.T) {
	a := RandomMatrix[int](4, 5, NewRNG(7))
	b := RandomMatrix[int](4, 5, NewRNG(7))

	assert.Equal(t, 4, a.Rows())
	assert.Equal(t, 5, a.Cols())
	assert.True(t, a.Equal(b), "same seed, same matrix")
}

func TestMatrixMul(t *testing.T) {
	a := NewMatrix([][]uint8{{1, 2}, {3, 4}, {5, 6}})
	b := NewMatrix([][]uint8{{3, 1}, {9, 6}})

	got := a.Mul(b)
	want := NewMatrix([][]uint8{{21, 13}, {45, 27}, {69, 41}})

	assert.True(t, got.Equal(want))
}

func TestMatrixMulShapeMismatchIsFatal(t *testing.T) {
	a := NewMatrix([][]int{{1, 2, 3}})
	b := NewMatrix([][]int{{1, 2}, {3, 4}})

	requireShapePanic(t, func() { a.Mul(b) })
}

func TestMulRegimesAgree(t *testing.T) {
	t.Run("Concrete", func(t *testing.T) {
		a := NewMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})
		b := NewMatrix([][]int{{3, 1}, {9, 6}})
		want := NewMatrix([][]int{{21, 13}, {45, 27}, {69, 41}})

		require.True(t, a.mulDirect(b).Equal(want))
		require.True(t, a.mulTransposed(b).Equal(want))
	})

	t.Run("NonSquare", func(t *testing.T) {
		a := NewMatrix([][]int{
			{2, -1, 0, 3},
			{1, 4, -2, 5},
		})
		b := NewMatrix([][]int{
			{1, 0, 2},
			{-3, 1, 1},
			{4, 4, 0},
			{2, -2, 3},
		})

		assert.True(t, a.mulDirect(b).Equal(a.mulTransposed(b)))
	})

	t.Run("Random", func(t *testing.T) {
		rng := NewRNG(1234)
		a := RandomMatrix[uint8](20, 8, rng)
		b := RandomMatrix[uint8](8, 31, rng)

		// Both regimes accumulate in the element type, so even
		// wrapping products must agree exactly.
		assert.True(t, a.mulDirect(b).Equal(a.mulTransposed(b)))
	})
}

// The public Mul must produce the same result on both sides of the
// regime threshold. A 300×2 by 2×800 product lands exactly on
// 240,000 output elements (transpose regime); dropping one column
// stays below it (direct regime).
func TestMulAcrossRegimeThreshold(t *testing.T) {
	rng := NewRNG(42)
	a := RandomMatrix[int32](300, 2, rng)
	b := RandomMatrix[int32](2, 800, rng)

	require.GreaterOrEqual(t, a.Rows()*b.Cols(), mulTransposeThreshold)
	large := a.Mul(b)
	assert.True(t, large.Equal(a.mulTransposed(b)))
	assert.True(t, large.Equal(a.mulDirect(b)))

	bSmall := NewMatrix([][]int32{b.Row(0).ToSlice()[:799], b.Row(1).ToSlice()[:799]})
	require.Less(t, a.Rows()*bSmall.Cols(), mulTransposeThreshold)
	small := a.Mul(bSmall)
	assert.True(t, small.Equal(a.mulDirect(bSmall)))
	assert.True(t, small.Equal(a.mulTransposed(bSmall)))
}

func TestMatrixAdd(t *testing.T) {
	a := NewMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})
	b := NewMatrix([][]int{{3, 1}, {9, 6}, {2, 3}})

	got := a.Add(b)
	want := NewMatrix([][]int{{4, 3}, {12, 10}, {7, 9}})

	assert.True(t, got.Equal(want))
	assert.True(t, a.Equal(NewMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})), "receiver untouched")
}

func TestMatrixSub(t *testing.T) {
	a := NewMatrix([][]int{{5, 2}, {100, 8}, {5, 6}})
	b := NewMatrix([][]int{{3, 1}, {9, 6}, {2, 3}})

	got := a.Sub(b)
	want := NewMatrix([][]int{{2, 1}, {91, 2}, {3, 3}})

	assert.True(t, got.Equal(want))
}

func TestMatrixAddShapeMismatchIsFatal(t *testing.T) {
	a := NewMatrix([][]int{{1, 2}})
	requireShapePanic(t, func() { a.Add(NewMatrix([][]int{{1, 2}, {3, 4}})) })
	requireShapePanic(t, func() { a.Sub(NewMatrix([][]int{{1, 2, 3}})) })
}

func TestTranspose(t *testing.T) {
	m := NewMatrix([][]int{{1, 2, 3}, {4, 5, 6}})

	got := m.Transpose()
	want := NewMatrix([][]int{{1, 4}, {2, 5}, {3, 6}})

	assert.True(t, got.Equal(want))
	assert.True(t, m.Transpose().Transpose().Equal(m), "transpose is an involution")
}

func TestMatrixEqual(t *testing.T) {
	a := NewMatrix([][]int{{1, 2}, {3, 4}})

	assert.True(t, a.Equal(MatrixFromRows(New(1, 2), NewHeap(3, 4))), "row strategy is invisible to equality")
	assert.False(t, a.Equal(NewMatrix([][]int{{1, 2}})))
	assert.False(t, a.Equal(NewMatrix([][]int{{1, 2}, {3, 5}})))
}

func TestMatrixCloneIsIndependent(t *testing.T) {
	a := NewMatrix([][]int{{1, 2}, {3, 4}})
	c := a.Clone()
	c.Set(0, 0, 99)

	assert.Equal(t, 1, a.At(0, 0))
}

func TestRowSharesStorage(t *testing.T) {
	m := NewMatrix([][]int{{1, 2}, {3, 4}})
	m.Row(0).AddInPlace(New(10, 10))

	assert.Equal(t, 11, m.At(0, 0))
	assert.Equal(t, 12, m.At(0, 1))
}

func TestMatrixIteration(t *testing.T) {
	m := NewMatrix([][]int{{1, 2}, {3, 4}})

	var rows [][]int
	for _, row := range m.All() {
		rows = append(rows, row.ToSlice())
	}

	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, rows)
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, "[[1 2] [3 4]]", NewMatrix([][]int{{1, 2}, {3, 4}}).String())
}
