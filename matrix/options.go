// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a final Options value.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The determinant strategy is an explicit choice. The default is the
//     diagonal-product rule; Laplace expansion must be requested.
//   - A zero singular tolerance keeps the exact "det == 0" test.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultSingularTolerance is the |det| bound under which a matrix counts as singular.
	// Zero means exact comparison.
	DefaultSingularTolerance = 0.0

	// DefaultStrictDivide keeps IEEE-754 semantics for Divide by zero (±Inf/NaN).
	DefaultStrictDivide = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid   = "matrix: WithSingularTolerance: eps must be finite, non-negative"
	panicDeterminantInvalid = "matrix: WithDeterminant: nil DetFunc"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	det          DetFunc // DiagonalRule by default
	singularTol  float64 // >= 0; DefaultSingularTolerance
	strictDivide bool    // DefaultStrictDivide
}

// WithDeterminant selects the determinant algorithm used for n ≥ 3 by Det,
// Cofactors, Adjugate, Inverse and ColumnDeterminants.
// Panics on a nil function.
func WithDeterminant(f DetFunc) Option {
	if f == nil {
		panic(panicDeterminantInvalid)
	}

	return func(o *Options) { o.det = f }
}

// WithSingularTolerance treats |det| <= eps as zero.
// Panics when eps is negative or non-finite.
func WithSingularTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.singularTol = eps }
}

// WithStrictDivide makes Divide fail with ErrDivideByZero instead of
// producing ±Inf/NaN.
func WithStrictDivide() Option {
	return func(o *Options) { o.strictDivide = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		det:          DiagonalRule,
		singularTol:  DefaultSingularTolerance,
		strictDivide: DefaultStrictDivide,
	}
}

// gatherOptions applies opts in order on top of the defaults.
// Later options win; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isZero reports whether v is zero under the singular tolerance.
func (o Options) isZero(v float64) bool {
	if o.singularTol == 0 {
		return v == 0
	}

	return math.Abs(v) <= o.singularTol
}

// IsSingular reports whether a determinant value counts as zero under opts.
// With default options this is exactly d == 0.
func IsSingular(d float64, opts ...Option) bool {
	return gatherOptions(opts...).isZero(d)
}
