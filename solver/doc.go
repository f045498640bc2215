// SPDX-License-Identifier: MIT

// Package solver classifies and solves a square linear system A·x = b using
// the primitives of package matrix.
//
// The procedure has three terminal outcomes and no intermediate state:
//
//   - det(A) != 0: Unique, x = inverse(A)·b.
//   - det(A) == 0 and every Cramer numerator det(A with column i := b) is zero: Infinite.
//   - det(A) == 0 and some numerator is nonzero: None.
//
// "Zero" is exact unless a singular tolerance is passed through WithMatrixOptions.
//
// ReadProblem and WriteResult implement the console protocol: the integer n
// followed by n rows of n+1 numbers on input, and one of three fixed
// messages on output. Run wires the three together.
package solver
