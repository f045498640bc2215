// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the interface materialization path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from a literal grid or fails the test.
func MustFrom(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(grid)
	require.NoError(t, err)

	return m
}

// MustColumn builds a column vector or fails the test.
func MustColumn(t testing.TB, values ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewColumn(values)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustDet computes the determinant or fails the test.
func MustDet(t testing.TB, m matrix.Matrix, opts ...matrix.Option) float64 {
	t.Helper()
	d, err := matrix.Det(m, opts...)
	require.NoError(t, err)

	return d
}

// RandomFill fills m with deterministic values in [-1, 1).
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// RandDense returns an r×c *Dense filled by RandomFill.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// CompareExact asserts m equals want element by element under ==.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j = 0; j < m.Cols(); j++ {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose asserts m is within eps of want element-wise.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.EqualWithin(MustFrom(t, want), m, eps)
	require.NoError(t, err)
	require.True(t, ok, "want %v\ngot\n%v", want, m)
}
