// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"go.uber.org/zap"
)

// Outcome is the classification of a linear system.
type Outcome int

const (
	// Unique means det(A) != 0 and Result.Solution holds x.
	Unique Outcome = iota + 1
	// Infinite means det(A) == 0 and every Cramer numerator is zero.
	Infinite
	// None means det(A) == 0 and at least one Cramer numerator is nonzero.
	None
)

func (o Outcome) String() string {
	switch o {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is what Solve found.
type Result struct {
	Outcome Outcome
	// Det is det(A) under the selected determinant strategy.
	Det float64
	// Solution is x, set only for Unique.
	Solution []float64
	// Numerators are the Cramer numerators, set only when det(A) is zero.
	Numerators []float64
}

// Solver carries the matrix options and logger used by Solve.
// The zero value is not usable; call New.
type Solver struct {
	logger     *zap.Logger
	matrixOpts []matrix.Option
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMatrixOptions forwards opts (determinant strategy, singular tolerance,
// strict division) to every matrix call the solver makes.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(s *Solver) { s.matrixOpts = append(s.matrixOpts, opts...) }
}

// New returns a Solver with a no-op logger and default matrix options.
func New(opts ...Option) *Solver {
	s := &Solver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve is New(opts...).Solve(p).
func Solve(p *Problem, opts ...Option) (*Result, error) {
	return New(opts...).Solve(p)
}

// Solve classifies p and, when the solution is unique, computes it as
// inverse(A)·b.
//
// Errors: ErrMalformedProblem for a nil problem; matrix errors are returned
// wrapped and match with errors.Is.
func (s *Solver) Solve(p *Problem) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrMalformedProblem)
	}
	if _, err := NewProblem(p.A, p.B); err != nil {
		return nil, err
	}
	log := s.logger.With(zap.Int("n", p.Size()))

	d, err := matrix.Det(p.A, s.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("determinant: %w", err)
	}
	log.Debug("determinant computed", zap.Float64("det", d))

	if !matrix.IsSingular(d, s.matrixOpts...) {
		x, err := s.unique(p)
		if err != nil {
			return nil, err
		}
		log.Debug("unique solution", zap.Float64s("x", x))
		return &Result{Outcome: Unique, Det: d, Solution: x}, nil
	}

	nums, err := matrix.ColumnDeterminants(p.A, p.B, s.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("cramer numerators: %w", err)
	}
	res := &Result{Outcome: Infinite, Det: d, Numerators: nums}
	for i, v := range nums {
		if !matrix.IsSingular(v, s.matrixOpts...) {
			log.Debug("nonzero cramer numerator", zap.Int("column", i), zap.Float64("det", v))
			res.Outcome = None
			break
		}
	}
	log.Debug("singular system classified",
		zap.Stringer("outcome", res.Outcome),
		zap.Float64s("numerators", nums))

	return res, nil
}

// unique computes x = inverse(A)·b and flattens it.
func (s *Solver) unique(p *Problem) ([]float64, error) {
	inv, err := matrix.Inverse(p.A, s.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	x, err := matrix.Mul(inv, p.B)
	if err != nil {
		return nil, fmt.Errorf("inverse·b: %w", err)
	}

	return matrix.Column(x, 0)
}
