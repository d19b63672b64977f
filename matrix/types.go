// SPDX-License-Identifier: MIT

// Package matrix: public interfaces and the storage kind enumeration.
// Errors and options live in dedicated files (errors.go, options.go).

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Matrix represents a two-dimensional mutable array of float64 values.
// Every implementation enforces bounds checking and returns errors on misuse.
//
// Complexity notes: all methods are expected O(1) except Clone (O(stored cells)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid; layouts that cannot hold
	// the cell return ErrInvalidOperation.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Storage is a Matrix that can persist itself as text and render itself.
// Callers operate uniformly over *Dense and *Diagonal through it.
type Storage interface {
	Matrix

	// Kind reports the storage layout.
	Kind() Kind

	// Import replaces the contents with the matrix stored at path.
	// On any error the receiver is left untouched.
	Import(path string, opts ...Option) error

	// Export writes the matrix to path in the layout Import reads.
	Export(path string, opts ...Option) error

	// Print writes the full grid to standard output.
	Print(opts ...Option)

	// Fprint writes the full grid to w.
	Fprint(w io.Writer, opts ...Option) error
}

// Compile-time assertions for interface conformance.
var (
	_ Storage = (*Dense)(nil)
	_ Storage = (*Diagonal)(nil)
)

// Kind names a storage layout.
type Kind string

// Supported storage layouts.
const (
	KindDense    Kind = "dense"
	KindDiagonal Kind = "diagonal"
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// ParseKind maps a case-insensitive name to a Kind.
// Returns ErrInvalidOperation for unknown names.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDense:
		return KindDense, nil
	case KindDiagonal, "diag":
		return KindDiagonal, nil
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrInvalidOperation)
}

// New returns an empty (0×0) Storage of the given kind, ready for Import.
func New(kind Kind) (Storage, error) {
	switch kind {
	case KindDense:
		return newDenseUnchecked(0, 0), nil
	case KindDiagonal:
		return newDiagonalUnchecked(0), nil
	}

	return nil, fmt.Errorf("New(%q): %w", string(kind), ErrInvalidOperation)
}
