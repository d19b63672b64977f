// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Text codec shared by Import/Export and usable on any io.Reader/io.Writer.
//
// Format:
//   - Dense:    "<m> <n>\n" then m lines of n space-separated values.
//   - Diagonal: "<size>\n" then one line of size space-separated values.
//   - Readers only care about whitespace-separated tokens; line layout is
//     free on input. Tokens after the required count are ignored.
//
// Determinism:
//   - Values are written with strconv 'g' formatting; the default precision
//     (-1) is the shortest text that parses back to the identical float64.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// maxCapHint bounds the up-front allocation while decoding, so a file that
// declares huge dimensions but holds few values fails with ErrFormat instead
// of exhausting memory.
const maxCapHint = 1 << 16

// maxEmptyDim bounds the non-zero dimension of a shape with no cells
// (e.g. "n 0"), since such a matrix still prints one line per row.
const maxEmptyDim = maxCapHint

// maxTokenLen is the longest token the reader accepts. Longer tokens are
// malformed content and surface as ErrFormat.
const maxTokenLen = bufio.MaxScanTokenSize

// tokenReader yields whitespace-separated tokens and counts them for error messages.
type tokenReader struct {
	sc *bufio.Scanner
	n  int // tokens consumed so far
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenLen)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next token or ErrFormat on premature end of input.
// Read failures from the underlying reader surface as ErrIO.
func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", fmt.Errorf("token %d (%s): longer than %d bytes: %w", t.n+1, what, maxTokenLen, ErrFormat)
			}
			return "", fmt.Errorf("reading %s: %w: %w", what, ErrIO, err)
		}

		return "", fmt.Errorf("token %d (%s): unexpected end of input: %w", t.n+1, what, ErrFormat)
	}
	t.n++

	return t.sc.Text(), nil
}

// dim reads a non-negative integer dimension.
func (t *tokenReader) dim(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("token %d (%s) %q: not a non-negative integer: %w", t.n, what, tok, ErrFormat)
	}

	return v, nil
}

// value reads a float64 and applies the numeric policy.
func (t *tokenReader) value(finiteOnly bool) (float64, error) {
	tok, err := t.next("value")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d %q: not a number: %w", t.n, tok, ErrFormat)
	}
	if err = validateFinite(finiteOnly, v); err != nil {
		return 0, fmt.Errorf("token %d %q: %w", t.n, tok, err)
	}

	return v, nil
}

// values reads exactly count values.
func (t *tokenReader) values(count int, finiteOnly bool) ([]float64, error) {
	out := make([]float64, 0, min(count, maxCapHint))
	for k := 0; k < count; k++ {
		v, err := t.value(finiteOnly)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// decodeDense parses "<m> <n>" followed by m*n values.
func decodeDense(r io.Reader, finiteOnly bool) (rows, cols int, data []float64, err error) {
	tr := newTokenReader(r)
	if rows, err = tr.dim("rows"); err != nil {
		return 0, 0, nil, err
	}
	if cols, err = tr.dim("cols"); err != nil {
		return 0, 0, nil, err
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, 0, nil, fmt.Errorf("shape %d×%d overflows: %w", rows, cols, ErrFormat)
	}
	if (rows == 0 || cols == 0) && max(rows, cols) > maxEmptyDim {
		return 0, 0, nil, fmt.Errorf("empty shape %d×%d: dimension exceeds %d: %w", rows, cols, maxEmptyDim, ErrFormat)
	}
	if data, err = tr.values(rows*cols, finiteOnly); err != nil {
		return 0, 0, nil, err
	}

	return rows, cols, data, nil
}

// decodeDiagonal parses "<size>" followed by size values.
func decodeDiagonal(r io.Reader, finiteOnly bool) ([]float64, error) {
	tr := newTokenReader(r)
	size, err := tr.dim("size")
	if err != nil {
		return nil, err
	}

	return tr.values(size, finiteOnly)
}

// formatValue renders v with the configured precision.
func formatValue(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// writeGrid writes rows×cols cells produced by cell(i,j), one row per line,
// cells separated by a single space.
func writeGrid(w *bufio.Writer, rows, cols int, prec int, cell func(i, j int) float64) {
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j > 0 {
				_ = w.WriteByte(' ')
			}
			_, _ = w.WriteString(formatValue(cell(i, j), prec))
		}
		_ = w.WriteByte('\n')
	}
}

// flushIO flushes w and reports failures as ErrIO. bufio.Writer keeps the
// first write error, so checking once at the end covers every write.
func flushIO(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// Encode writes the dense text format to w.
//
// Errors:
//   - ErrIO when w fails.
func (m *Dense) Encode(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "%d %d\n", m.r, m.c)
	writeGrid(bw, m.r, m.c, o.precision, func(i, j int) float64 { return m.data[i*m.c+j] })

	return flushIO(bw)
}

// Decode replaces the receiver with the dense matrix read from r.
// The receiver is modified only if the whole input parses.
//
// Errors:
//   - ErrFormat for malformed or insufficient tokens.
//   - ErrNaNInf for non-finite values when the policy is on (receiver or opts).
//   - ErrIO when r fails.
func (m *Dense) Decode(r io.Reader, opts ...Option) error {
	o := gatherOptions(opts...)
	rows, cols, data, err := decodeDense(r, m.validateNaNInf || o.validateNaNInf)
	if err != nil {
		return err
	}
	m.commit(rows, cols, data)

	return nil
}

// Encode writes the diagonal text format to w.
//
// Errors:
//   - ErrIO when w fails.
func (d *Diagonal) Encode(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "%d\n", len(d.diag))
	writeGrid(bw, 1, len(d.diag), o.precision, func(_, j int) float64 { return d.diag[j] })

	return flushIO(bw)
}

// Decode replaces the receiver with the diagonal read from r.
// The receiver is modified only if the whole input parses.
//
// Errors:
//   - ErrFormat, ErrNaNInf, ErrIO as for Dense.Decode.
func (d *Diagonal) Decode(r io.Reader, opts ...Option) error {
	o := gatherOptions(opts...)
	diag, err := decodeDiagonal(r, d.validateNaNInf || o.validateNaNInf)
	if err != nil {
		return err
	}
	d.commit(diag)

	return nil
}
