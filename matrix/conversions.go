// SPDX-License-Identifier: MIT
// Package matrix provides converters between *Dense and gonum's mat types,
// so callers can hand a problem to gonum (or check a result against it)
// without re-reading the data.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense with the same shape.
//
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	buf := make([]float64, len(dm.data))
	copy(buf, dm.data)

	// mat.NewDense takes ownership of buf, hence the copy above.
	return mat.NewDense(dm.r, dm.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Non-finite entries are rejected under the default numeric policy.
//
// Time Complexity: O(r*c)
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return out, nil
}
