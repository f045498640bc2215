// Package matrix implements a dense float64 matrix value type and the
// linear-algebra primitives a determinant-based solver needs.
//
// The matrix package provides:
//
//   - *Dense, a row-major matrix built zero-filled (NewDense) or from a
//     validated rectangular grid (NewDenseFrom).
//   - Arithmetic: Add, Sub, Mul, Scale, Divide, Transpose, and exact
//     Equal alongside a tolerance-based EqualWithin.
//   - Minor/cofactor machinery: RemoveRowCol, Sign, Cofactors, Adjugate,
//     Inverse, ReplaceCol and ColumnDeterminants.
//   - Det with a pluggable DetFunc: DiagonalRule (default) or Laplace.
//
// Every operation returns a new *Dense; operands are never modified.
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ErrMalformedInput, ...) matched with errors.Is.
//
// DiagonalRule generalizes the 3×3 rule of Sarrus by wrapping columns. It is
// exact up to 3×3 and diverges from the true determinant from 4×4 on; pass
// WithDeterminant(Laplace) when an exact value is required.
package matrix
