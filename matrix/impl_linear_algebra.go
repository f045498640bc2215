// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling/division and equality. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - Non-*Dense operands are materialized once via toDense, then the flat
//     buffers are walked in a fixed order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opDivide     = "Divide"
	opEqual      = "EqualWithin"
	opDet        = "Det"
	opMinor      = "RemoveRowCol"
	opCofactors  = "Cofactors"
	opAdjugate   = "Adjugate"
	opInverse    = "Inverse"
	opReplaceCol = "ReplaceCol"
	opColDets    = "ColumnDeterminants"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize both operands and run a single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→u triple loop; each C[i,j] accumulates Σ_u A[i,u]·B[u,j]
//     in increasing u order starting from ZeroSum.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, u int
		sum     float64
	)
	for i = 0; i < da.r; i++ {
		for j = 0; j < db.c; j++ {
			sum = ZeroSum
			for u = 0; u < da.c; u++ {
				sum += da.data[i*da.c+u] * db.data[u*db.c+j]
			}
			res.data[i*res.c+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a cols×rows matrix with result[i,j] = m[j,i].
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*res.c+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m element-wise.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Divide returns m/k element-wise.
// By default a zero k follows IEEE-754 (±Inf, or NaN for 0/0); with
// WithStrictDivide it fails with ErrDivideByZero.
// Complexity: O(r*c).
func Divide(m Matrix, k float64, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	o := gatherOptions(opts...)
	if k == 0 && o.strictDivide {
		return nil, matrixErrorf(opDivide, ErrDivideByZero)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] /= k
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and every element
// compares equal under exact float64 ==. NaN is never equal to anything.
// Nil operands are never equal.
func Equal(a, b Matrix) bool {
	ok, err := equalWithin(a, b, 0, true)

	return err == nil && ok
}

// NotEqual is !Equal(a, b).
func NotEqual(a, b Matrix) bool { return !Equal(a, b) }

// EqualWithin checks shape equality and |a[i,j]-b[i,j]| <= eps element-wise.
// A shape mismatch is reported as (false, nil), matching Equal.
//
// Errors:
//   - ErrInvalidTolerance for negative or non-finite eps.
//   - ErrNilMatrix for nil operands.
func EqualWithin(a, b Matrix, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, matrixErrorf(opEqual, ErrInvalidTolerance)
	}

	return equalWithin(a, b, eps, eps == 0)
}

// equalWithin is the shared body of Equal and EqualWithin.
func equalWithin(a, b Matrix, eps float64, exact bool) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range da.data {
		if exact {
			if da.data[idx] != db.data[idx] {
				return false, nil
			}
			continue
		}
		// NaN fails the <= test, so it never compares close.
		if !(math.Abs(da.data[idx]-db.data[idx]) <= eps) {
			return false, nil
		}
	}

	return true, nil
}
