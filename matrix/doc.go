// Package matrix offers two interchangeable matrix storage layouts with a
// plain-text persistence format.
//
// The matrix package provides:
//
//   - Dense: every cell stored in a flat row-major buffer (offset i*cols + j).
//   - Diagonal: only the n diagonal cells of an n×n matrix are stored;
//     off-diagonal reads return 0 and off-diagonal writes fail with
//     ErrInvalidOperation.
//   - Storage: the interface both layouts satisfy (At/Set, Import/Export,
//     Print), so callers can work with either one uniformly.
//   - Add: elementwise addition of equally shaped matrices.
//
// File format (whitespace separated, line layout is free on input):
//
//	dense:     <m> <n>         diagonal:  <size>
//	           <row 0 values>             <diagonal values>
//	           ...
//
// Import is atomic: on any error (ErrIO, ErrFormat, ErrNaNInf) the receiver
// keeps its previous shape and contents. Export with the default precision
// round-trips every float64 exactly.
//
// All failures are reported with sentinel errors (errors.go) wrapped with
// method context; match them with errors.Is.
package matrix
