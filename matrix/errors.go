// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public method returns one of these (wrapped with method
// context) and tests MUST check them via errors.Is. No method panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("Dense.Set(%d,%d): %w", ...) so that
// errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> off-diagonal write -> numeric policy.
// For Import: I/O (open) -> format (dimensions, then values) -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidOperation signals a write that the storage layout cannot hold,
	// e.g. Set(i,j) with i != j on a Diagonal.
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes or a row-major slice of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIO is returned when a matrix file cannot be opened, created, read,
	// written or closed. The underlying os error is wrapped alongside.
	ErrIO = errors.New("matrix: i/o failure")

	// ErrFormat is returned when file content does not parse as the expected
	// sequence of numeric tokens (bad token, bad dimension, too few values).
	ErrFormat = errors.New("matrix: malformed matrix text")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
