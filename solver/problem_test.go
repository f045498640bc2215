package solver_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
	"github.com/stretchr/testify/require"
)

func TestReadProblem(t *testing.T) {
	p, err := solver.ReadProblem(strings.NewReader("2\n2 1 3\n1 1 2\n\ntrailing tokens are ignored"))
	require.NoError(t, err)
	require.Equal(t, 2, p.Size())

	want, err := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 1}})
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, p.A))

	b, err := matrix.Column(p.B, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2}, b)
}

func TestReadProblem_Malformed(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "  \n\t"},
		{"zero n", "0"},
		{"negative n", "-2 1 2 3"},
		{"fractional n", "1.5 1 2"},
		{"word n", "two"},
		{"short row", "2\n1 2 3\n4 5"},
		{"not a number", "2\n1 x 3\n4 5 6"},
		{"NaN coefficient", "1\nNaN 1"},
		{"Inf rhs", "1\n1 Inf"},
		{"huge n on short input", "1000000000000 1 2"},
		{"huge n overflowing int", "99999999999999999999 1 2"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := solver.ReadProblem(strings.NewReader(tc.input))
			require.ErrorIs(t, err, solver.ErrMalformedProblem)
		})
	}
}

func TestReadProblem_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := solver.ReadProblem(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, solver.ErrMalformedProblem)
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{-2, "-2"},
		{0.5, "0.5"},
		{1.0 / 3, "0.333333"},
		{2.0 / 3, "0.666667"},
		{123456, "123456"},
		{1234567, "1.23457e+06"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	} {
		require.Equal(t, tc.want, solver.FormatValue(tc.in), "%v", tc.in)
	}
}

func TestWriteResult(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, solver.WriteResult(&out, &solver.Result{Outcome: solver.Unique, Solution: []float64{1.5, -0.25}}))
	require.Equal(t, solver.MsgUnique+"1.5 \n-0.25 \n", out.String())

	out.Reset()
	require.NoError(t, solver.WriteResult(&out, &solver.Result{Outcome: solver.None}))
	require.Equal(t, "No solution", out.String())

	require.Error(t, solver.WriteResult(&out, nil))
	require.Error(t, solver.WriteResult(&out, &solver.Result{}))
}
