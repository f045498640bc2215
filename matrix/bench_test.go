// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the linear-algebra kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
)

// benchSizes are the matrix sizes for O(n²)/O(n³) kernels.
var benchSizes = []int{16, 64, 128}

// laplaceSizes stay small: Laplace expansion is O(n!).
var laplaceSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1337)
			B := RandDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 7)
			B := RandDense(b, n, n, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDetDiagonal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkDetLaplace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range laplaceSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A, matrix.WithDeterminant(matrix.Laplace))
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 16, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 21)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
