// SPDX-License-Identifier: MIT
// Package matrix: constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors on top of NewDense/NewDenseFrom.
//   - Avoid any logic duplication: each facade delegates to the canonical constructor.

package matrix

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewColumn returns a len(values)×1 column vector holding a copy of values.
// Errors: ErrMalformedInput for an empty slice, ErrNaNInf for non-finite values.
func NewColumn(values []float64) (*Dense, error) {
	grid := make([][]float64, len(values))
	for i, v := range values {
		grid[i] = []float64{v}
	}

	return NewDenseFrom(grid)
}

// IdentityLike returns I with dimension Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// Column returns column j of m as a fresh slice.
// Errors: ErrNilMatrix, ErrOutOfRange.
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Column", err)
	}
	if err := validateIndex("col", j, m.Cols()); err != nil {
		return nil, matrixErrorf("Column", err)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf("Column", err)
		}
	}

	return out, nil
}
