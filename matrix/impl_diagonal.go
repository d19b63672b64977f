// SPDX-License-Identifier: MIT

// Package matrix - Diagonal storage & safe accessors.
//
// Purpose:
//   - Store only the n diagonal cells of an n×n matrix.
//   - Reads off the diagonal return 0 (a value, never a handle into storage).
//   - Writes off the diagonal are rejected with ErrInvalidOperation.
//
// Complexity quicksheet:
//   - NewDiagonal: O(n); At/Set: O(1); Clone/Equal: O(n); ToDense: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// diagErrorf wraps an error with a uniform Diagonal context and coordinates.
func diagErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Diagonal.%s(%d,%d): %w", method, row, col, err)
}

// Diagonal is an n×n matrix whose off-diagonal cells are implicitly zero.
type Diagonal struct {
	diag           []float64 // diag[i] is cell (i,i); len == size
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// NewDiagonal creates a size×size Diagonal with a zero diagonal.
//
// Errors:
//   - ErrInvalidDimensions (negative size).
func NewDiagonal(size int, opts ...Option) (*Diagonal, error) {
	if err := ValidateShape(size, size); err != nil {
		return nil, fmt.Errorf("NewDiagonal(%d): %w", size, err)
	}
	d := newDiagonalUnchecked(size)
	d.validateNaNInf = gatherOptions(opts...).validateNaNInf

	return d, nil
}

// NewDiagonalFrom creates a len(values)×len(values) Diagonal holding a copy
// of values on its diagonal.
//
// Errors:
//   - ErrNaNInf (non-finite value under the finite-only policy).
func NewDiagonalFrom(values []float64, opts ...Option) (*Diagonal, error) {
	d := newDiagonalUnchecked(len(values))
	d.validateNaNInf = gatherOptions(opts...).validateNaNInf
	for i, v := range values {
		if err := validateFinite(d.validateNaNInf, v); err != nil {
			return nil, fmt.Errorf("NewDiagonalFrom: index %d: %w", i, err)
		}
	}
	copy(d.diag, values)

	return d, nil
}

// newDiagonalUnchecked allocates without validation; callers guarantee size >= 0.
func newDiagonalUnchecked(size int) *Diagonal {
	return &Diagonal{
		diag:           make([]float64, size),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// Size returns n for an n×n Diagonal.
func (d *Diagonal) Size() int { return len(d.diag) }

// Rows returns n.
func (d *Diagonal) Rows() int { return len(d.diag) }

// Cols returns n.
func (d *Diagonal) Cols() int { return len(d.diag) }

// Kind reports KindDiagonal.
func (d *Diagonal) Kind() Kind { return KindDiagonal }

// At returns cell (row, col): the stored value on the diagonal, 0 elsewhere.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, n).
func (d *Diagonal) At(row, col int) (float64, error) {
	n := len(d.diag)
	if err := ValidateIndex(row, col, n, n); err != nil {
		return 0, diagErrorf(ctxAt, row, col, err)
	}
	if row != col {
		return 0, nil
	}

	return d.diag[row], nil
}

// Set stores v at (row, row).
//
// Errors (in priority order):
//   - ErrOutOfRange when either index is outside [0, n).
//   - ErrInvalidOperation when row != col.
//   - ErrNaNInf for non-finite values when the policy is enabled.
func (d *Diagonal) Set(row, col int, v float64) error {
	n := len(d.diag)
	if err := ValidateIndex(row, col, n, n); err != nil {
		return diagErrorf(ctxSet, row, col, err)
	}
	if row != col {
		return diagErrorf(ctxSet, row, col, ErrInvalidOperation)
	}
	if err := validateFinite(d.validateNaNInf, v); err != nil {
		return diagErrorf(ctxSet, row, col, err)
	}
	d.diag[row] = v

	return nil
}

// Clone returns a deep copy.
func (d *Diagonal) Clone() Matrix {
	cp := make([]float64, len(d.diag))
	copy(cp, d.diag)

	return &Diagonal{diag: cp, validateNaNInf: d.validateNaNInf}
}

// Diag returns a copy of the diagonal values in order.
func (d *Diagonal) Diag() []float64 {
	out := make([]float64, len(d.diag))
	copy(out, d.diag)

	return out
}

// Equal reports whether o has the same size and diagonal.
func (d *Diagonal) Equal(o *Diagonal) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.diag) != len(o.diag) {
		return false
	}
	for i := range d.diag {
		if d.diag[i] != o.diag[i] {
			return false
		}
	}

	return true
}

// ToDense materializes the full n×n grid.
// Complexity: O(n²) space.
func (d *Diagonal) ToDense() *Dense {
	n := len(d.diag)
	out := newDenseUnchecked(n, n)
	out.validateNaNInf = d.validateNaNInf
	for i, v := range d.diag {
		out.data[i*n+i] = v
	}

	return out
}

// String renders the full grid as "[a, 0]" lines for diagnostics.
func (d *Diagonal) String() string {
	var b strings.Builder
	n := len(d.diag)
	for i := 0; i < n; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < n; j++ {
			if i == j {
				b.WriteString(strconv.FormatFloat(d.diag[i], 'g', -1, 64))
			} else {
				b.WriteString("0")
			}
			if j+1 < n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// commit swaps in a freshly decoded diagonal.
func (d *Diagonal) commit(diag []float64) { d.diag = diag }
