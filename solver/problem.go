// SPDX-License-Identifier: MIT

package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/linsys/matrix"
)

// maxPrealloc caps the capacity reserved from the declared n before any
// coefficient has been read.
const maxPrealloc = 64

// Problem is one linear system: an n×n coefficient matrix A and an n×1
// right-hand side B.
type Problem struct {
	A matrix.Matrix
	B matrix.Matrix
}

// NewProblem validates the shapes of a and b and returns the Problem.
//
// Errors: ErrMalformedProblem wrapping matrix.ErrNilMatrix,
// matrix.ErrNonSquare or matrix.ErrDimensionMismatch.
func NewProblem(a, b matrix.Matrix) (*Problem, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%w: coefficients: %w", ErrMalformedProblem, err)
	}
	if err := matrix.ValidateColumnVector(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("%w: right-hand side: %w", ErrMalformedProblem, err)
	}

	return &Problem{A: a, B: b}, nil
}

// Size returns n.
func (p *Problem) Size() int { return p.A.Rows() }

// ReadProblem reads whitespace-delimited input: an integer n > 0, then n
// rows of n+1 numbers, the n coefficients of a row followed by its b value.
// Line breaks carry no meaning; tokens after the last expected number are
// ignored.
//
// Errors: ErrMalformedProblem for a bad n, a non-numeric token or early end
// of input; read errors are returned wrapped as is.
func ReadProblem(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedProblem, what)
	}

	tok, err := next("n")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: n must be a positive integer, got %q", ErrMalformedProblem, tok)
	}

	// Storage grows with the tokens actually read; n alone never sizes an
	// allocation beyond maxPrealloc.
	hint := min(n, maxPrealloc)
	grid := make([][]float64, 0, hint)
	rhs := make([]float64, 0, hint)
	var (
		i, j int
		v    float64
		row  []float64
	)
	for i = 0; i < n; i++ {
		row = make([]float64, 0, hint)
		for j = 0; j <= n; j++ {
			what := fmt.Sprintf("row %d value %d", i+1, j+1)
			if tok, err = next(what); err != nil {
				return nil, err
			}
			if v, err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("%w: %s: %q is not a number", ErrMalformedProblem, what, tok)
			}
			if j == n {
				rhs = append(rhs, v)
			} else {
				row = append(row, v)
			}
		}
		grid = append(grid, row)
	}

	a, err := matrix.NewDenseFrom(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: coefficients: %w", ErrMalformedProblem, err)
	}
	b, err := matrix.NewColumn(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: right-hand side: %w", ErrMalformedProblem, err)
	}

	return NewProblem(a, b)
}
