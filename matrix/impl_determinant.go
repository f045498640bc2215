// SPDX-License-Identifier: MIT
// Package matrix - determinant strategies.
//
// Purpose:
//   - Isolate the determinant behind a single pluggable function (DetFunc) so
//     every consumer (Det, Cofactors, Adjugate, Inverse, ColumnDeterminants)
//     uses the same, explicitly chosen algorithm.
//
// Strategies:
//   - DiagonalRule (default): column-wrapped diagonal products, the 3×3 rule of
//     Sarrus applied to any n. Exact for n ≤ 3; for n ≥ 4 it is NOT the
//     determinant. It is kept as the literal behavior of the solver.
//   - Laplace: recursive first-row cofactor expansion, exact for every n,
//     O(n!) time.
//
// Both strategies share the closed forms for 1×1 and 2×2. They differ on the
// empty 0×0 minor met by 1×1 cofactors: DiagonalRule gives 0 (no diagonals to
// sum), Laplace gives 1.

package matrix

import (
	"fmt"
	"strings"
)

// DetFunc computes the determinant of a non-nil square *Dense, including the
// 0×0 empty minor of a 1×1 matrix.
// Implementations must not mutate a.
type DetFunc func(a *Dense) float64

// Strategy names accepted by DeterminantByName.
const (
	DetNameDiagonal = "diagonal"
	DetNameLaplace  = "laplace"
)

// DeterminantByName maps a strategy name (case-insensitive) to its DetFunc.
// The empty name selects the default, DiagonalRule.
// Errors: ErrUnknownDeterminant.
func DeterminantByName(name string) (DetFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DetNameDiagonal, "":
		return DiagonalRule, nil
	case DetNameLaplace:
		return Laplace, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownDeterminant)
	}
}

// Det returns the determinant of a square matrix using the DetFunc selected
// by opts (DiagonalRule unless WithDeterminant says otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Det").
//
// Complexity:
//   - DiagonalRule O(n²); Laplace O(n!).
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return gatherOptions(opts...).det(dm), nil
}

// detSmall handles the closed forms. ok is false for n ≥ 3.
func detSmall(a *Dense) (d float64, ok bool) {
	switch a.r {
	case 1:
		return a.data[0], true
	case 2:
		return a.data[0]*a.data[3] - a.data[1]*a.data[2], true
	default:
		return 0, false
	}
}

// DiagonalRule extends a conceptually to n×(2n-1) by re-appending its first
// n-1 columns, then for every offset k = 0..n-1 adds the product of the
// forward diagonal (i, k+i) and subtracts the product of the backward
// diagonal (n-1-i, k+i). Column k+i wraps to (k+i) mod n, so nothing is copied.
//
// Exact for n ≤ 3 only.
func DiagonalRule(a *Dense) float64 {
	if d, ok := detSmall(a); ok {
		return d
	}
	n := a.r
	var (
		i, k, col int
		p1, p2    float64
		sum       = ZeroSum
	)
	for k = 0; k < n; k++ {
		p1, p2 = 1, 1
		for i = 0; i < n; i++ {
			col = (k + i) % n
			p1 *= a.data[i*n+col]
			p2 *= a.data[(n-1-i)*n+col]
		}
		sum += p1 - p2
	}

	return sum
}

// Laplace expands along the first row: det(a) = Σ_j (-1)^j · a[0,j] · det(M0j).
// Zero entries of the first row are skipped. The 0×0 matrix has determinant 1.
func Laplace(a *Dense) float64 {
	if a.r == 0 {
		return 1
	}
	if d, ok := detSmall(a); ok {
		return d
	}
	n := a.r
	sum := ZeroSum
	for j := 0; j < n; j++ {
		v := a.data[j]
		if v == 0 {
			continue
		}
		sum += float64(Sign(0, j)) * v * Laplace(minorOf(a, 0, j))
	}

	return sum
}

// minorOf copies a without row x and column y. a must be at least 2×2 and
// x, y in range; public callers go through RemoveRowCol.
func minorOf(a *Dense, x, y int) *Dense {
	out := &Dense{
		r:              a.r - 1,
		c:              a.c - 1,
		data:           make([]float64, (a.r-1)*(a.c-1)),
		validateNaNInf: a.validateNaNInf,
	}
	idx := 0
	for i := 0; i < a.r; i++ {
		if i == x {
			continue
		}
		for j := 0; j < a.c; j++ {
			if j == y {
				continue
			}
			out.data[idx] = a.data[i*a.c+j]
			idx++
		}
	}

	return out
}
