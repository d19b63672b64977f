// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - File-backed Import/Export for both layouts.
//   - Files are opened at the start of each call and closed on every exit path.
//   - Import is atomic: a failed call leaves the receiver untouched.

package matrix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// exportPerm is the permission used for newly created matrix files.
const exportPerm = 0o644

// withSource opens path and hands fn a reader over its content, either
// buffered or through a read-only memory map.
func withSource(path string, memoryMap bool, fn func(r io.Reader) error) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	if !memoryMap {
		return fn(bufio.NewReader(f))
	}

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	// Zero-length files cannot be mapped; they parse as empty input.
	if info.Size() == 0 {
		return fn(bytes.NewReader(nil))
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if uerr := mm.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, uerr)
		}
	}()

	return fn(bytes.NewReader(mm))
}

// withSink creates (or truncates) path and hands fn the file.
// If the create fails nothing is written.
func withSink(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, exportPerm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	return fn(f)
}

// Import replaces the receiver with the dense matrix stored at path.
//
// Errors:
//   - ErrIO when path cannot be opened or read.
//   - ErrFormat for malformed or insufficient tokens.
//   - ErrNaNInf under the finite-only policy.
func (m *Dense) Import(path string, opts ...Option) error {
	o := gatherOptions(opts...)
	err := withSource(path, o.memoryMap, func(r io.Reader) error {
		return m.Decode(r, opts...)
	})
	if err != nil {
		return fmt.Errorf("Dense.%s(%q): %w", ctxImport, path, err)
	}

	return nil
}

// Export writes the receiver to path, replacing any existing file.
//
// Errors:
//   - ErrIO when path cannot be created or written.
func (m *Dense) Export(path string, opts ...Option) error {
	if err := withSink(path, func(w io.Writer) error { return m.Encode(w, opts...) }); err != nil {
		return fmt.Errorf("Dense.%s(%q): %w", ctxExport, path, err)
	}

	return nil
}

// Import replaces the receiver with the diagonal stored at path.
//
// Errors:
//   - ErrIO, ErrFormat, ErrNaNInf as for Dense.Import.
func (d *Diagonal) Import(path string, opts ...Option) error {
	o := gatherOptions(opts...)
	err := withSource(path, o.memoryMap, func(r io.Reader) error {
		return d.Decode(r, opts...)
	})
	if err != nil {
		return fmt.Errorf("Diagonal.%s(%q): %w", ctxImport, path, err)
	}

	return nil
}

// Export writes the receiver to path, replacing any existing file.
//
// Errors:
//   - ErrIO when path cannot be created or written.
func (d *Diagonal) Export(path string, opts ...Option) error {
	if err := withSink(path, func(w io.Writer) error { return d.Encode(w, opts...) }); err != nil {
		return fmt.Errorf("Diagonal.%s(%q): %w", ctxExport, path, err)
	}

	return nil
}
