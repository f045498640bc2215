// SPDX-License-Identifier: MIT

package solver

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Console messages. Spacing and line breaks are part of the protocol.
const (
	MsgNoSolution = "No solution"
	MsgInfinite   = "The system of linear equations has infinitely many solutions:\n"
	MsgUnique     = "The system of linear equations has the only solution: \n"
)

// FormatValue renders v with 6 significant digits in the shortest of fixed
// or exponent notation: 1, 0.333333, 1.5e+07. Non-finite values print as
// inf, -inf and nan.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// WriteResult writes res in the console protocol. A unique solution is
// printed one component per line, each followed by a space.
func WriteResult(w io.Writer, res *Result) error {
	if res == nil {
		return fmt.Errorf("write result: nil result")
	}
	bw := bufio.NewWriter(w)
	switch res.Outcome {
	case None:
		bw.WriteString(MsgNoSolution)
	case Infinite:
		bw.WriteString(MsgInfinite)
	case Unique:
		bw.WriteString(MsgUnique)
		for _, v := range res.Solution {
			bw.WriteString(FormatValue(v))
			bw.WriteString(" \n")
		}
	default:
		return fmt.Errorf("write result: unknown outcome %v", res.Outcome)
	}

	return bw.Flush()
}

// Run reads one problem from r, solves it and writes the result to w.
func Run(r io.Reader, w io.Writer, opts ...Option) (*Result, error) {
	p, err := ReadProblem(r)
	if err != nil {
		return nil, err
	}
	res, err := Solve(p, opts...)
	if err != nil {
		return nil, err
	}
	if err = WriteResult(w, res); err != nil {
		return nil, err
	}

	return res, nil
}
