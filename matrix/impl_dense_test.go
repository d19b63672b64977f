// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroSized verifies that 0×0 is a legal empty matrix.
func TestNewDenseZeroSized(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewDenseZeroFilled verifies zero initialization.
func TestNewDenseZeroFilled(t *testing.T) {
	m := MustDense(t, 3, 2)
	m.Do(func(i, j int, v float64) bool {
		require.Zerof(t, v, "cell (%d,%d)", i, j)
		return true
	})
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, matrix.KindDense, m.Kind())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	cases := []struct {
		name string
		i, j int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row == m", 2, 0},
		{"col == n", 0, 2},
		{"both past end", 5, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.At(tc.i, tc.j)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias

			err = m.Set(tc.i, tc.j, 1.5)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

// TestAtErrorCarriesContext checks the method/coordinate prefix.
func TestAtErrorCarriesContext(t *testing.T) {
	m := MustDense(t, 1, 1)
	_, err := m.At(3, 4)
	require.EqualError(t, err, "Dense.At(3,4): matrix: index out of range")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	// Row-major layout: (1,2) is the last cell.
	raw := m.RawRowMajor()
	require.Equal(t, 7.89, raw[1*3+2])
}

// TestSetNaNPolicy checks that non-finite values pass by default and are
// rejected when the policy is enabled.
func TestSetNaNPolicy(t *testing.T) {
	loose := MustDense(t, 1, 1)
	require.NoError(t, loose.Set(0, 0, math.NaN()))

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(true))
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, strict.Set(0, 0, 3))
}

// TestNewDenseFrom covers copy semantics and length validation.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 100 // must not leak into m

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 1, []float64{math.NaN()}, matrix.WithValidateNaNInf(true))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, 1, 0, 0, 2)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestEqual covers shape, value and nil comparisons.
func TestEqual(t *testing.T) {
	a := NewFilledDense(t, 2, 2, 1, 2, 3, 4)
	b := NewFilledDense(t, 2, 2, 1, 2, 3, 4)
	c := NewFilledDense(t, 1, 4, 1, 2, 3, 4)
	d := NewFilledDense(t, 2, 2, 1, 2, 3, 5)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))

	var n1, n2 *matrix.Dense
	require.True(t, n1.Equal(n2))
}

// TestDoEarlyStop verifies row-major visiting order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := NewFilledDense(t, 2, 2, 1, 2, 3, 4)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
