// Package solver finds a value for the single unknown of an equation by
// running an ordered chain of numeric strategies.
package solver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/mathline/internal/expr"
)

// Unsolved is the text shown when every strategy declines.
const Unsolved = "Could not solve equation"

// Result is the outcome of a solve. Value and Strategy are set only when
// Solved is true.
type Result struct {
	Variable string
	Solved   bool
	Value    string
	Strategy string
}

func (r Result) String() string {
	if !r.Solved {
		return Unsolved
	}
	return r.Variable + " = " + r.Value
}

// Solver runs strategies in order; the first to accept a value wins.
type Solver struct {
	env        expr.Env
	strategies []Strategy
}

// New creates a solver that resolves non-unknown identifiers from env.
// With no strategies it uses DefaultStrategies.
func New(env expr.Env, strategies ...Strategy) *Solver {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Solver{
		env:        env,
		strategies: strategies,
	}
}

// Solve parses raw as an equation and runs the strategy chain. It returns
// ErrNotEquation or ErrNoVariable when raw is not a single-variable
// equation, and the context error when cancelled.
func (s *Solver) Solve(ctx context.Context, raw string) (Result, error) {
	eq, err := Parse(raw, s.env)
	if err != nil {
		return Result{}, err
	}
	return s.SolveEquation(ctx, eq)
}

// SolveEquation runs the strategy chain on an already parsed equation.
func (s *Solver) SolveEquation(ctx context.Context, eq *Equation) (Result, error) {
	res := Result{Variable: eq.Variable}
	for _, st := range s.strategies {
		out, ok, err := st.Solve(ctx, eq)
		if err != nil {
			return res, fmt.Errorf("%s strategy interrupted: %w", st.Name(), err)
		}
		if ok {
			slog.Debug("Equation solved", "strategy", st.Name(), "variable", eq.Variable, "value", out)
			res.Solved = true
			res.Value = out
			res.Strategy = st.Name()
			return res, nil
		}
		slog.Debug("Strategy declined", "strategy", st.Name(), "left", eq.Left, "right", eq.Right)
	}
	return res, nil
}
