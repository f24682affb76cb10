// Package calc dispatches one line of input to assignment, equation
// solving or arithmetic evaluation and formats the single line of output.
package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/averycrespi/mathline/internal/expr"
	"github.com/averycrespi/mathline/internal/normalize"
	"github.com/averycrespi/mathline/internal/solver"
	"github.com/averycrespi/mathline/internal/vars"
	"github.com/averycrespi/mathline/pkg/types"
	"github.com/spf13/cast"
)

// DefaultSolveTimeout bounds a single solve when no timeout is configured.
const DefaultSolveTimeout = 10 * time.Second

// PanicMessage is printed when a turn fails unexpectedly.
const PanicMessage = "Error - try again"

// ErrNotFinite is returned when an assignment value is infinite or NaN.
var ErrNotFinite = errors.New("value is not a finite number")

// Engine implements types.Calculator on top of a variable store
type Engine struct {
	store   *vars.Store
	solver  *solver.Solver
	timeout time.Duration
}

var _ types.Calculator = (*Engine)(nil)

// New creates an engine backed by store. A non-positive solveTimeout
// selects DefaultSolveTimeout.
func New(store *vars.Store, solveTimeout time.Duration) *Engine {
	if solveTimeout <= 0 {
		solveTimeout = DefaultSolveTimeout
	}
	return &Engine{
		store:   store,
		solver:  solver.New(store),
		timeout: solveTimeout,
	}
}

// Process handles one line. It never fails: every error becomes the text
// of an OutcomeError. Expression results and expression errors are both
// printed after "= ".
func (e *Engine) Process(ctx context.Context, line string) (out types.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from panic", "line", line, "panic", r)
			out = types.Outcome{Kind: types.OutcomeError, Text: PanicMessage}
		}
	}()

	line = strings.TrimSpace(line)
	normalized := normalize.Normalize(line)

	if name, raw, ok := splitAssignment(line, normalized); ok {
		slog.Debug("Dispatching assignment", "name", name)
		v, err := e.Assign(name, raw)
		if err != nil {
			return types.Outcome{Kind: types.OutcomeError, Text: assignmentError(name, err)}
		}
		return types.Outcome{Kind: types.OutcomeAssignment, Text: fmt.Sprintf("Set %s = %s", name, formatAssigned(raw, v))}
	}

	if solver.IsEquation(normalized) {
		slog.Debug("Dispatching equation", "equation", normalized)
		sol, err := e.Solve(ctx, line)
		if err != nil {
			slog.Warn("Equation solve interrupted", "equation", normalized, "error", err)
			return types.Outcome{Kind: types.OutcomeError, Text: solver.Unsolved + ": " + interruption(err)}
		}
		if !sol.Solved {
			return types.Outcome{Kind: types.OutcomeEquation, Text: solver.Unsolved}
		}
		return types.Outcome{Kind: types.OutcomeEquation, Text: sol.Variable + " = " + sol.Value}
	}

	slog.Debug("Dispatching expression", "expression", normalized)
	ev, err := e.Evaluate(ctx, line)
	if err != nil {
		return types.Outcome{Kind: types.OutcomeError, Text: "= " + err.Error()}
	}
	return types.Outcome{Kind: types.OutcomeExpression, Text: "= " + ev.Result}
}

// Evaluate normalizes input and evaluates it against the variable store.
// Errors are *expr.Error values whose message is the user-facing text.
func (e *Engine) Evaluate(_ context.Context, input string) (*types.Evaluation, error) {
	normalized := normalize.Normalize(strings.TrimSpace(input))
	v, err := expr.Evaluate(normalized, e.store)
	if err != nil {
		return nil, err
	}
	return &types.Evaluation{
		Input:      input,
		Normalized: normalized,
		Result:     v.String(),
		ValueKind:  v.Kind().String(),
	}, nil
}

// Solve normalizes equation and runs the solver under the configured
// timeout. A nil error with Solved false means every strategy declined.
func (e *Engine) Solve(ctx context.Context, equation string) (*types.Solution, error) {
	normalized := normalize.Normalize(strings.TrimSpace(equation))

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	res, err := e.solver.Solve(ctx, normalized)
	if err != nil {
		return nil, err
	}
	slog.Debug("Solve finished", "equation", normalized, "solved", res.Solved, "elapsed", time.Since(start))

	return &types.Solution{
		Equation: normalized,
		Variable: res.Variable,
		Solved:   res.Solved,
		Value:    res.Value,
		Strategy: res.Strategy,
	}, nil
}

// Assign binds name to the number in raw. Plain numbers are parsed
// directly; anything else is evaluated as an expression. The name is
// stored in its canonical lowercase form.
func (e *Engine) Assign(name, raw string) (float64, error) {
	name = vars.Canonical(strings.TrimSpace(name))
	raw = strings.TrimSpace(raw)
	if err := vars.ValidateName(name); err != nil {
		return 0, err
	}

	v, err := cast.ToFloat64E(raw)
	if err != nil || raw == "" {
		ev, evalErr := expr.Evaluate(normalize.Normalize(raw), e.store)
		if evalErr != nil {
			return 0, evalErr
		}
		v = ev.Float64()
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotFinite
	}

	if err := e.store.Set(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// Variables returns the stored variables sorted by name.
func (e *Engine) Variables() []types.Variable {
	return e.store.Snapshot()
}

// splitAssignment recognizes "name=value" where the left side is a bare
// identifier that the right side does not mention. It returns the
// normalized name and the raw right side.
func splitAssignment(line, normalized string) (string, string, bool) {
	if strings.Count(normalized, "=") != 1 || strings.Count(line, "=") != 1 {
		return "", "", false
	}
	left, right, _ := strings.Cut(normalized, "=")
	name := strings.TrimSpace(left)
	if !vars.IsIdentifier(name) {
		return "", "", false
	}
	if n, err := expr.Parse(right); err == nil && expr.DependsOn(n, name) {
		return "", "", false
	}
	_, raw, _ := strings.Cut(line, "=")
	return name, strings.TrimSpace(raw), true
}

// formatAssigned echoes the value as typed when it was a plain number and
// the computed value otherwise.
func formatAssigned(raw string, v float64) string {
	if _, err := cast.ToFloat64E(raw); err == nil {
		return raw
	}
	return cast.ToString(v)
}

func assignmentError(name string, err error) string {
	var exprErr *expr.Error
	switch {
	case errors.As(err, &exprErr):
		return exprErr.Error()
	case errors.Is(err, vars.ErrReservedName):
		return "Invalid - Cannot assign to " + name
	case errors.Is(err, ErrNotFinite):
		return "Invalid - Not a number"
	default:
		return PanicMessage
	}
}

func interruption(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out"
	}
	return "cancelled"
}
