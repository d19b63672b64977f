// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"os"
)

// Fprint writes the m×n grid to w, one row per line.
// Only WithPrecision is read from opts.
func (m *Dense) Fprint(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	writeGrid(bw, m.r, m.c, o.precision, func(i, j int) float64 { return m.data[i*m.c+j] })

	return flushIO(bw)
}

// Print writes the grid to standard output. Write errors are dropped.
func (m *Dense) Print(opts ...Option) { _ = m.Fprint(os.Stdout, opts...) }

// Fprint writes the full n×n grid to w with 0 off the diagonal.
// Only WithPrecision is read from opts.
func (d *Diagonal) Fprint(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	n := len(d.diag)
	writeGrid(bw, n, n, o.precision, func(i, j int) float64 {
		if i != j {
			return 0
		}
		return d.diag[i]
	})

	return flushIO(bw)
}

// Print writes the grid to standard output. Write errors are dropped.
func (d *Diagonal) Print(opts ...Option) { _ = d.Fprint(os.Stdout, opts...) }
