// Package lvmat stores matrices in two interchangeable layouts and moves them
// to and from a plain text format.
//
// What is inside?
//
//	• matrix: the Storage interface with Dense (row-major, every cell) and
//	  Diagonal (only the main diagonal) layouts, elementwise Add,
//	  layout conversion, Import/Export/Print.
//	• cmd/lvmat: a small CLI that shows, adds, converts and watches matrix files.
//
// File format
//
//	Dense:    "<rows> <cols>" followed by rows*cols values in row-major order.
//	Diagonal: "<size>" followed by size diagonal values.
//
// Tokens are separated by any whitespace, so line layout is free on input.
// Export writes one matrix row per line and round-trips every float64 exactly.
//
// Quick start:
//
//	go get github.com/katalvlaran/lvmat
//	go install github.com/katalvlaran/lvmat/cmd/lvmat@latest
//	lvmat demo
//
// See matrix/doc.go for the full contract of each operation.
package lvmat
