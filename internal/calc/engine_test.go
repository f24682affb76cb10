package calc

import (
	"context"
	"testing"
	"time"

	"github.com/averycrespi/mathline/internal/vars"
	"github.com/averycrespi/mathline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		kind     types.OutcomeKind
		expected string
	}{
		{name: "addition", line: "2+3", kind: types.OutcomeExpression, expected: "= 5"},
		{name: "true division", line: "15/3", kind: types.OutcomeExpression, expected: "= 5"},
		{name: "float division", line: "15.0/4", kind: types.OutcomeExpression, expected: "= 3.75"},
		{name: "caret", line: "2^3", kind: types.OutcomeExpression, expected: "= 8"},
		{name: "fractions", line: "1/2 + 1/3", kind: types.OutcomeExpression, expected: "= 5/6"},
		{name: "mixed fractions", line: "2 1/2 + 1/4", kind: types.OutcomeExpression, expected: "= 2 3/4"},
		{name: "fraction to integer", line: "1/2 * 2", kind: types.OutcomeExpression, expected: "= 1"},
		{name: "squared", line: "9 squared", kind: types.OutcomeExpression, expected: "= 81"},
		{name: "cubed", line: "5 cubed", kind: types.OutcomeExpression, expected: "= 125"},
		{name: "sqrt", line: "sqrt 16", kind: types.OutcomeExpression, expected: "= 4.0"},
		{name: "function", line: "sin(0) + cos(0)", kind: types.OutcomeExpression, expected: "= 1.0"},
		{name: "surrounding space", line: "  2*3  ", kind: types.OutcomeExpression, expected: "= 6"},
		{name: "equation", line: "6+x=7", kind: types.OutcomeEquation, expected: "x = 1"},
		{name: "implicit product", line: "2x+4=10", kind: types.OutcomeEquation, expected: "x = 3"},
		{name: "large constant", line: "5x+101010=10", kind: types.OutcomeEquation, expected: "x = -20200"},
		{name: "uppercase unknown", line: "2X+4=10", kind: types.OutcomeEquation, expected: "x = 3"},
		{name: "unsolved", line: "x^2=-1", kind: types.OutcomeEquation, expected: "Could not solve equation"},
		{name: "assignment", line: "y=5", kind: types.OutcomeAssignment, expected: "Set y = 5"},
		{name: "self reference is an equation", line: "x=2*x-3", kind: types.OutcomeEquation, expected: "x = 3"},
		{name: "division by zero", line: "1/0", kind: types.OutcomeError, expected: "= Invalid - Division by zero"},
		{name: "unknown variable", line: "z+1", kind: types.OutcomeError, expected: "= Invalid - Unknown variable: z"},
		{name: "syntax error", line: "2+*3", kind: types.OutcomeError, expected: "= Invalid - Syntax error"},
		{name: "no unknown", line: "2+3=5", kind: types.OutcomeError, expected: "= Invalid - Syntax error"},
		{name: "domain error", line: "sqrt(-1)", kind: types.OutcomeError, expected: "= Invalid - Value error: math domain error"},
		{name: "reserved assignment", line: "pi=3", kind: types.OutcomeError, expected: "Invalid - Cannot assign to pi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(vars.NewStore(), 0)
			out := e.Process(context.Background(), tt.line)
			assert.Equal(t, tt.kind, out.Kind)
			assert.Equal(t, tt.expected, out.Text)
		})
	}
}

func TestAssignmentThenUse(t *testing.T) {
	e := New(vars.NewStore(), 0)
	ctx := context.Background()

	assert.Equal(t, "Set x = 5", e.Process(ctx, "x=5").Text)
	assert.Equal(t, "= 8.0", e.Process(ctx, "x+3").Text)
	assert.Equal(t, "= 10.0", e.Process(ctx, "2*x").Text)
	assert.Equal(t, "= 5.0", e.Process(ctx, "sqrt(x*x)").Text)

	assert.Equal(t, "Set half = 0.5", e.Process(ctx, "half = 1/2").Text)
	assert.Equal(t, "Set y = 7", e.Process(ctx, "y=x+2").Text)

	// Stored variables are constants inside equations.
	assert.Equal(t, "z = 2", e.Process(ctx, "z*x=10").Text)

	assert.Equal(t, []types.Variable{
		{Name: "half", Value: 0.5},
		{Name: "x", Value: 5},
		{Name: "y", Value: 7},
	}, e.Variables())
}

func TestAssign(t *testing.T) {
	e := New(vars.NewStore(), 0)

	v, err := e.Assign("r", " 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	v, err = e.Assign("s", "2 squared")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = e.Assign("t", "1/0")
	assert.Error(t, err)

	_, err = e.Assign("u", "")
	assert.Error(t, err)

	_, err = e.Assign("e", "1")
	assert.ErrorIs(t, err, vars.ErrReservedName)

	_, err = e.Assign("big", "inf")
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestAssignUppercaseName(t *testing.T) {
	e := New(vars.NewStore(), 0)
	ctx := context.Background()

	_, err := e.Assign("Rate", "2")
	require.NoError(t, err)
	assert.Equal(t, "= 8.0", e.Process(ctx, "RATE*4").Text)
	assert.Equal(t, []types.Variable{{Name: "rate", Value: 2}}, e.Variables())

	_, err = e.Assign("PI", "3")
	assert.ErrorIs(t, err, vars.ErrReservedName)
}

func TestEvaluate(t *testing.T) {
	e := New(vars.NewStore(), 0)

	ev, err := e.Evaluate(context.Background(), "2 1/2 + 1/4")
	require.NoError(t, err)
	assert.Equal(t, &types.Evaluation{
		Input:      "2 1/2 + 1/4",
		Normalized: "frac(5, 2) + frac(1, 4)",
		Result:     "2 3/4",
		ValueKind:  "rational",
	}, ev)
}

func TestSolve(t *testing.T) {
	e := New(vars.NewStore(), 0)

	sol, err := e.Solve(context.Background(), "4x^2=1")
	require.NoError(t, err)
	assert.Equal(t, &types.Solution{
		Equation: "4x**2=1",
		Variable: "x",
		Solved:   true,
		Value:    "-1/2",
		Strategy: "fractional_offset",
	}, sol)
}

func TestSolveTimeout(t *testing.T) {
	e := New(vars.NewStore(), time.Millisecond)

	out := e.Process(context.Background(), "x^2=-1")
	assert.Equal(t, types.OutcomeError, out.Kind)
	assert.Equal(t, "Could not solve equation: timed out", out.Text)
}
