// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateGrid walks data (O(r*c)).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is ValidateNotNil on both operands followed by
// ValidateSameShape. Used by Add/Sub and the equality helpers.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks both operands are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateColumnVector checks that b is a single column with exactly rows entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateColumnVector(b Matrix, rows int) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.Cols() != 1 {
		return validatorErrorf("ValidateColumnVector: Columns", ErrDimensionMismatch)
	}
	if b.Rows() != rows {
		return validatorErrorf("ValidateColumnVector: Rows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateGrid checks that grid is non-empty, rectangular and finite.
//
// Errors:
//   - ErrMalformedInput: no rows, an empty first row, or a row whose length
//     differs from the first.
//   - ErrNaNInf: a NaN or ±Inf entry.
//
// Complexity: O(r*c).
func ValidateGrid(grid [][]float64) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return validatorErrorf("ValidateGrid", ErrMalformedInput)
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d values, want %d", i, len(row), cols), ErrMalformedInput)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateGrid: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("%s: %d not in [0,%d)", tag, i, n), ErrOutOfRange)
	}

	return nil
}
