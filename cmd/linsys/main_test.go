package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvDeterminant, "")
	t.Setenv(config.EnvTolerance, "")
	t.Setenv(config.EnvLogLevel, "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// swapSystem is I4 with its first two rows exchanged. The diagonal rule sees
// det 0 here while the true determinant is -1.
const swapSystem = `4
0 1 0 0 1
1 0 0 0 2
0 0 1 0 3
0 0 0 1 4
`

func TestRoot_Stdin(t *testing.T) {
	out, err := execute(t, "2\n2 1 3\n1 1 2\n")
	require.NoError(t, err)
	require.Equal(t, solver.MsgUnique+"1 \n1 \n", out)

	out, err = execute(t, "2\n1 2 3\n2 4 7\n")
	require.NoError(t, err)
	require.Equal(t, solver.MsgNoSolution, out)
}

func TestRoot_InputFileAndLaplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.txt")
	require.NoError(t, os.WriteFile(path, []byte(swapSystem), 0o644))

	out, err := execute(t, "", "--input", path)
	require.NoError(t, err)
	require.Equal(t, solver.MsgInfinite, out)

	out, err = execute(t, "", "--input", path, "--det", "laplace")
	require.NoError(t, err)
	require.Equal(t, solver.MsgUnique+"2 \n1 \n3 \n4 \n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linsys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("determinant: laplace\nlogging:\n  level: error\n"), 0o644))

	out, err := execute(t, swapSystem, "-c", path)
	require.NoError(t, err)
	require.Equal(t, solver.MsgUnique+"2 \n1 \n3 \n4 \n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "2\n1 2")
	require.ErrorIs(t, err, solver.ErrMalformedProblem)

	_, err = execute(t, "1\n1 1", "--det", "gauss")
	require.ErrorIs(t, err, matrix.ErrUnknownDeterminant)

	_, err = execute(t, "", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UsesConfig(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultConfig()
	require.NoError(t, run(strings.NewReader("1\n5 10"), &out, cfg, zap.NewNop()))
	require.Equal(t, solver.MsgUnique+"0 \n", out.String())

	out.Reset()
	cfg.Determinant = "laplace"
	require.NoError(t, run(strings.NewReader("1\n5 10"), &out, cfg, zap.NewNop()))
	require.Equal(t, solver.MsgUnique+"2 \n", out.String())

	cfg.Determinant = "nope"
	require.Error(t, run(strings.NewReader("1\n5 10"), &out, cfg, zap.NewNop()))
}
