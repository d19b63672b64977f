// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and the text
// codec. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Constructors (NewDense, NewDiagonal, ...) read only the numeric policy.
//   - Import reads the numeric policy and the memory-map switch.
//   - Export, Print and Fprint read only the precision.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-value validation on Set and Import.
	// Off by default: the storage accepts any float64.
	DefaultValidateNaNInf = false

	// DefaultPrecision is the number of significant digits written by Export
	// and Print. -1 selects the shortest text that parses back to the exact
	// same float64, which is what makes Export/Import lossless.
	DefaultPrecision = -1

	// DefaultMemoryMap selects buffered reads for Import. When true, Import
	// maps the file read-only and parses straight from the mapping.
	DefaultMemoryMap = false
)

const panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	precision      int  // DefaultPrecision
	memoryMap      bool // DefaultMemoryMap
}

// defaultOptions returns Options populated with the package defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		precision:      DefaultPrecision,
		memoryMap:      DefaultMemoryMap,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// NewOptions resolves opts into an Options value. Useful for callers that
// want to inspect the effective configuration (CLI diagnostics, tests).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// ValidateNaNInf reports whether NaN/±Inf are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Precision reports the number of significant digits used for text output.
func (o Options) Precision() int { return o.precision }

// MemoryMap reports whether Import reads through a memory map.
func (o Options) MemoryMap() bool { return o.memoryMap }

// WithValidateNaNInf enables or disables rejection of NaN/±Inf values.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithPrecision sets the significant digits for Export/Print ('g' format).
// Panics if p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithMemoryMap makes Import read the file through a read-only memory map.
func WithMemoryMap(on bool) Option {
	return func(o *Options) { o.memoryMap = on }
}
