// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise addition, the only arithmetic the package offers.
//   - Dense fast-path over the flat buffers; generic At-based fallback for any
//     other Matrix (e.g. Diagonal operands).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "fmt"

// matrixErrorf tags an error with the public operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Add returns a new Dense holding a[i,j] + b[i,j].
//
// Implementation:
//   - Stage 1: nil and shape validation.
//   - Stage 2: Dense×Dense fast path over flat buffers.
//   - Stage 3: generic fallback via At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Notes:
//   - The result never aliases a or b.
//   - The result carries a's numeric policy when a is Dense.
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	r, c := a.Rows(), a.Cols()
	out := newDenseUnchecked(r, c)

	// Dense fast-path: single pass over the flat row-major buffers.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		out.validateNaNInf = da.validateNaNInf
		for k := range out.data {
			out.data[k] = da.data[k] + db.data[k]
		}

		return out, nil
	}
	if okA {
		out.validateNaNInf = da.validateNaNInf
	}

	// Generic fallback via At (still deterministic).
	var i, j int
	var va, vb float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf("Add", err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf("Add", err)
			}
			out.data[i*c+j] = va + vb
		}
	}

	return out, nil
}

// Add returns m + other as a new Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Dense.Add", ErrNilMatrix)
	}
	if other == nil {
		return nil, matrixErrorf("Dense.Add", ErrNilMatrix)
	}

	return Add(m, other)
}
