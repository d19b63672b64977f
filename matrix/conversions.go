// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ToDense copies any Matrix into a new *Dense.
//
// Time Complexity: O(r*c)
func ToDense(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	switch v := src.(type) {
	case *Dense:
		return v.Clone().(*Dense), nil
	case *Diagonal:
		return v.ToDense(), nil
	}

	r, c := src.Rows(), src.Cols()
	out := newDenseUnchecked(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := src.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToDense", err)
			}
			out.data[i*c+j] = x
		}
	}

	return out, nil
}

// ToDiagonal copies a square Matrix into a new *Diagonal.
// Every off-diagonal cell must be exactly zero.
//
// Errors:
//   - ErrDimensionMismatch when src is not square.
//   - ErrInvalidOperation when an off-diagonal cell is non-zero.
//
// Time Complexity: O(n²)
func ToDiagonal(src Matrix) (*Diagonal, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("ToDiagonal", err)
	}
	if d, ok := src.(*Diagonal); ok {
		return d.Clone().(*Diagonal), nil
	}
	n := src.Rows()
	if src.Cols() != n {
		return nil, matrixErrorf("ToDiagonal", ErrDimensionMismatch)
	}

	out := newDiagonalUnchecked(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := src.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToDiagonal", err)
			}
			if i == j {
				out.diag[i] = x
				continue
			}
			if x != 0 {
				return nil, fmt.Errorf("ToDiagonal: cell (%d,%d)=%g: %w", i, j, x, ErrInvalidOperation)
			}
		}
	}

	return out, nil
}

// Convert copies src into a new Storage of the requested kind.
func Convert(src Matrix, kind Kind) (Storage, error) {
	switch kind {
	case KindDense:
		d, err := ToDense(src)
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindDiagonal:
		d, err := ToDiagonal(src)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	return nil, fmt.Errorf("Convert(%q): %w", string(kind), ErrInvalidOperation)
}
