// SPDX-License-Identifier: MIT

// Package linsys solves square systems of linear equations A·x = b by the
// inverse-matrix method and classifies singular systems with Cramer's rule.
//
// The module is organized as:
//
//	matrix/          dense float64 matrix: arithmetic, minors, cofactors,
//	                 adjugate, inverse and pluggable determinant strategies
//	solver/          problem parsing, classification (unique / infinite / none)
//	                 and the console output protocol
//	internal/config/ YAML + environment configuration and logger setup
//	cmd/linsys/      the command-line entry point
//
// Input is whitespace-separated: n, then n rows of n+1 numbers (coefficients
// followed by the right-hand side):
//
//	echo "2  2 1 3  1 1 2" | linsys
//	The system of linear equations has the only solution:
//	1
//	1
//
// The default determinant is the generalized diagonal (Sarrus) rule, exact for
// n ≤ 3. Select exact cofactor expansion with --det laplace.
package linsys
