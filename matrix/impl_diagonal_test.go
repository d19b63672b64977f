// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDiagonal(t *testing.T) {
	d, err := matrix.NewDiagonal(3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Size())
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.Equal(t, matrix.KindDiagonal, d.Kind())
	require.Equal(t, []float64{0, 0, 0}, d.Diag())

	_, err = matrix.NewDiagonal(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDiagonal_OffDiagonalReadIsZero(t *testing.T) {
	d := MustDiagonal(t, 5, 10, 15)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, []float64{5, 10, 15}[i], v)
			} else {
				require.Zerof(t, v, "off-diagonal (%d,%d)", i, j)
			}
		}
	}
}

func TestDiagonal_OffDiagonalWriteRejected(t *testing.T) {
	d := MustDiagonal(t, 1, 2, 3)

	err := d.Set(0, 1, 9)
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)
	require.EqualError(t, err, "Diagonal.Set(0,1): matrix: invalid operation")

	// Rejected write leaves storage untouched.
	require.Equal(t, []float64{1, 2, 3}, d.Diag())

	require.NoError(t, d.Set(2, 2, 30))
	v, err := d.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)
}

func TestDiagonal_Bounds(t *testing.T) {
	d := MustDiagonal(t, 1, 2)

	cases := []struct {
		name string
		i, j int
	}{
		{"row past end", 2, 0},
		{"col past end", 0, 2},
		{"diagonal past end", 2, 2},
		{"negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.At(tc.i, tc.j)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)

			// Index errors win over the off-diagonal check.
			err = d.Set(tc.i, tc.j, 1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.NotErrorIs(t, err, matrix.ErrInvalidOperation)
		})
	}
}

func TestDiagonal_NaNPolicy(t *testing.T) {
	d, err := matrix.NewDiagonal(2, matrix.WithValidateNaNInf(true))
	require.NoError(t, err)
	require.ErrorIs(t, d.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)

	_, err = matrix.NewDiagonalFrom([]float64{1, math.NaN()}, matrix.WithValidateNaNInf(true))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDiagonal_CloneAndEqual(t *testing.T) {
	d := MustDiagonal(t, 4, 5)
	c := d.Clone().(*matrix.Diagonal)
	require.True(t, d.Equal(c))

	require.NoError(t, c.Set(0, 0, 40))
	require.False(t, d.Equal(c))
	require.Equal(t, []float64{4, 5}, d.Diag())

	require.False(t, d.Equal(MustDiagonal(t, 4, 5, 6)))
}

func TestDiagonal_ToDense(t *testing.T) {
	d := MustDiagonal(t, 5, 10, 15)
	want := NewFilledDense(t, 3, 3,
		5, 0, 0,
		0, 10, 0,
		0, 0, 15,
	)
	require.True(t, want.Equal(d.ToDense()))
}

func TestDiagonal_String(t *testing.T) {
	d := MustDiagonal(t, 1, 2)
	require.Equal(t, "[1, 0]\n[0, 2]\n", d.String())
}

func TestNewAndParseKind(t *testing.T) {
	for _, name := range []string{"dense", "DENSE", " dense "} {
		k, err := matrix.ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, matrix.KindDense, k)
	}
	for _, name := range []string{"diagonal", "diag"} {
		k, err := matrix.ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, matrix.KindDiagonal, k)
	}
	_, err := matrix.ParseKind("sparse")
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)

	s, err := matrix.New(matrix.KindDiagonal)
	require.NoError(t, err)
	require.Equal(t, 0, s.Rows())
	require.Equal(t, matrix.KindDiagonal, s.Kind())

	_, err = matrix.New("sparse")
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)
}
