// SPDX-License-Identifier: MIT

// Package main is the linsys console program: it reads a square linear
// system from stdin (or --input) and prints whether it has a unique
// solution, infinitely many, or none.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	input        string
	configPath   string
	det          string
	strictDivide bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var (
		flags  rootFlags
		cfg    *config.Config
		logger = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:   "linsys",
		Short: "Classify and solve a square system of linear equations",
		Long: `linsys reads n followed by n rows of n+1 numbers (coefficients, then the
right-hand side) and reports the only solution, infinitely many solutions,
or no solution.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(flags.configPath); err != nil {
				return err
			}
			if cmd.Flags().Changed("det") {
				cfg.Determinant = flags.det
			}
			if flags.strictDivide {
				cfg.StrictDivide = true
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if logger, err = cfg.NewLogger(flags.verbose); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if flags.input != "" && flags.input != "-" {
				f, err := os.Open(flags.input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return run(in, cmd.OutOrStdout(), cfg, logger)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.input, "input", "i", "", "read the system from a file instead of stdin")
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&flags.det, "det", "diagonal", "determinant strategy: diagonal or laplace")
	pf.BoolVar(&flags.strictDivide, "strict-divide", false, "fail on division by zero instead of producing Inf/NaN")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(r io.Reader, w io.Writer, cfg *config.Config, logger *zap.Logger) error {
	mopts, err := cfg.MatrixOptions()
	if err != nil {
		return err
	}
	res, err := solver.Run(r, w,
		solver.WithLogger(logger),
		solver.WithMatrixOptions(mopts...),
	)
	if err != nil {
		return err
	}
	logger.Info("system solved",
		zap.Stringer("outcome", res.Outcome),
		zap.Float64("det", res.Det),
		zap.String("determinant", cfg.Determinant),
	)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "linsys: %v\n", err)
		os.Exit(1)
	}
}
