// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultPrecision, o.Precision())
	require.Equal(t, matrix.DefaultMemoryMap, o.MemoryMap())
}

// TestOptions_LastWriterWins ensures later options override earlier ones and
// nil options are skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithValidateNaNInf(true), nil, matrix.WithValidateNaNInf(false))
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithPrecision(4), matrix.WithMemoryMap(true), matrix.WithPrecision(6))
	require.Equal(t, 6, o.Precision())
	require.True(t, o.MemoryMap())
}

func TestWithPrecision_PanicsOnInvalid(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithPrecision: precision must be >= -1", func() {
		matrix.WithPrecision(-2)
	})
	require.NotPanics(t, func() { matrix.WithPrecision(-1) })
}
