// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an op tag)
// and callers MUST match them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// rendered message reads "Op: matrix: ..." while errors.Is still matches.
//
// ERROR PRIORITY (enforced in tests):
// nil -> malformed input / shape -> dimension mismatch -> square -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrMalformedInput is returned when a grid is empty or jagged
	// (inner rows of differing length).
	ErrMalformedInput = errors.New("matrix: malformed input grid")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes, Mul where a.Cols != b.Rows, or ReplaceCol with a
	// non-column operand.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is zero under the configured tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivideByZero is returned by Divide under WithStrictDivide when k == 0.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidTolerance is returned when a comparison tolerance is negative or non-finite.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite and >= 0")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownDeterminant is returned by DeterminantByName for unregistered names.
	ErrUnknownDeterminant = errors.New("matrix: unknown determinant strategy")
)
