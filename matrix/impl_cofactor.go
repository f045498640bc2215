// SPDX-License-Identifier: MIT
// Package matrix - minors, cofactors, adjugate, inverse and column replacement.
//
// Every determinant in this file goes through the DetFunc resolved from the
// caller's options, so switching strategies changes Inverse and the Cramer
// numerators together.

package matrix

import "fmt"

// RemoveRowCol returns a copy of m without row x and column y, shape
// (r-1)×(c-1).
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange for x or y outside m;
//   - ErrInvalidDimensions when m has a single row or column (the result would be empty).
func RemoveRowCol(m Matrix, x, y int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validateIndex("row", x, m.Rows()); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validateIndex("col", y, m.Cols()); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(dm, x, y), nil
}

// Sign returns the checkerboard cofactor sign: +1 when i+j is even, else -1.
func Sign(i, j int) int {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Cofactors returns C with C[i,j] = Sign(i,j) · det(minor(i,j)).
// The single cofactor of a 1×1 matrix is the selected strategy's determinant
// of the empty minor: 0 under DiagonalRule, 1 under Laplace.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - n² minor determinants: O(n⁴) with DiagonalRule, O(n²·(n-1)!) with Laplace.
func Cofactors(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return cofactors(dm, gatherOptions(opts...)), nil
}

func cofactors(a *Dense, o Options) *Dense {
	n := a.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: a.validateNaNInf}
	if n == 1 {
		out.data[0] = o.det(&Dense{validateNaNInf: a.validateNaNInf})
		return out
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = float64(Sign(i, j)) * o.det(minorOf(a, i, j))
		}
	}

	return out
}

// Adjugate returns the transpose of the cofactor matrix.
// It satisfies A·adj(A) = det(A)·I whenever the determinant strategy is exact.
func Adjugate(m Matrix, opts ...Option) (*Dense, error) {
	c, err := Cofactors(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	t, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return t, nil
}

// Inverse returns adj(m) / det(m).
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: d = det(m); singular when d is zero under the tolerance.
//   - Stage 3: Divide(Adjugate(m), d).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	d := o.det(dm)
	if o.isZero(d) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", d, ErrSingular))
	}
	adj, err := Transpose(cofactors(dm, o))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Divide(adj, d, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// ReplaceCol returns a copy of m whose column x is replaced by the column
// vector b.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when b is not a column of m.Rows() entries;
//   - ErrOutOfRange when x is not a column of m.
func ReplaceCol(m, b Matrix, x int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceCol, err)
	}
	if err := ValidateColumnVector(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opReplaceCol, err)
	}
	if err := validateIndex("col", x, m.Cols()); err != nil {
		return nil, matrixErrorf(opReplaceCol, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReplaceCol, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opReplaceCol, err)
	}

	return replaceCol(dm, db, x), nil
}

func replaceCol(a, b *Dense, x int) *Dense {
	out := a.clone()
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+x] = b.data[i]
	}

	return out
}

// ColumnDeterminants returns det(ReplaceCol(a, b, i)) for every column i of
// the square matrix a: the Cramer's-rule numerators.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func ColumnDeterminants(a, b Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opColDets, err)
	}
	if err := ValidateColumnVector(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opColDets, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opColDets, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opColDets, err)
	}
	o := gatherOptions(opts...)
	dets := make([]float64, da.c)
	for i := range dets {
		dets[i] = o.det(replaceCol(da, db, i))
	}

	return dets, nil
}
