package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

func TestToDenseAndToDiagonal(t *testing.T) {
	d := MustDiagonal(t, 5, 10, 15)

	// 1) Diagonal -> Dense materializes zeros.
	dense, err := matrix.ToDense(d)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 0, 0, 0, 10, 0, 0, 0, 15}, dense.RawRowMajor())

	// 2) Dense -> Diagonal round-trips.
	back, err := matrix.ToDiagonal(dense)
	require.NoError(t, err)
	require.True(t, d.Equal(back))

	// 3) Generic fallback path.
	viaHide, err := matrix.ToDense(hide{d})
	require.NoError(t, err)
	require.True(t, dense.Equal(viaHide))
}

func TestToDiagonal_Rejects(t *testing.T) {
	_, err := matrix.ToDiagonal(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ToDiagonal(NewFilledDense(t, 2, 2, 1, 2, 0, 3))
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)

	_, err = matrix.ToDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestConvert(t *testing.T) {
	src := NewFilledDense(t, 2, 2, 1, 0, 0, 2)

	s, err := matrix.Convert(src, matrix.KindDiagonal)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDiagonal, s.Kind())

	s, err = matrix.Convert(src, matrix.KindDense)
	require.NoError(t, err)
	require.True(t, src.Equal(s.(*matrix.Dense)))
	// Copy, not alias.
	require.NoError(t, s.Set(0, 0, 9))
	require.Equal(t, []float64{1, 0, 0, 2}, src.RawRowMajor())

	_, err = matrix.Convert(src, "sparse")
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)
}
