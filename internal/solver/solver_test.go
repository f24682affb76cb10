package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/averycrespi/mathline/internal/expr"
	"github.com/averycrespi/mathline/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name     string
		equation string
		expected string
		strategy string
	}{
		{name: "addition", equation: "6+x=7", expected: "x = 1", strategy: "integer_search"},
		{name: "implicit product", equation: "2x+4=10", expected: "x = 3", strategy: "linear"},
		{name: "large constant", equation: "5x+101010=10", expected: "x = -20200", strategy: "linear"},
		{name: "explicit product", equation: "2*x-3=5", expected: "x = 4", strategy: "linear"},
		{name: "fractional linear", equation: "3x=1", expected: "x = 1/3", strategy: "linear"},
		{name: "quadratic finds lowest root", equation: "x**2-4=0", expected: "x = -2", strategy: "integer_search"},
		{name: "caret quadratic", equation: "x^2-4=0", expected: "x = -2", strategy: "integer_search"},
		{name: "product of unknowns takes the linear path", equation: "x*x=4", expected: "x = 4", strategy: "linear"},
		{name: "cubic with a product takes the linear path", equation: "2*x**3=16", expected: "x = 8", strategy: "linear"},
		{name: "square of the unknown skips the linear path", equation: "2*x**2=8", expected: "x = -2", strategy: "integer_search"},
		{name: "fractional root", equation: "4x^2=1", expected: "x = -1/2", strategy: "fractional_offset"},
		{name: "third root", equation: "9x^2=1", expected: "x = -1/3", strategy: "fractional_offset"},
		{name: "other name", equation: "2y+1=7", expected: "y = 3", strategy: "linear"},
		{name: "unknown on both sides", equation: "2x+1=x", expected: "x = -1", strategy: "integer_search"},
		{name: "functions are not unknowns", equation: "sqrt(x)=3", expected: "x = 9", strategy: "integer_search"},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Solve(context.Background(), tt.equation)
			require.NoError(t, err)
			assert.True(t, res.Solved)
			assert.Equal(t, tt.expected, res.String())
			assert.Equal(t, tt.strategy, res.Strategy)
		})
	}
}

func TestSolveUnsolved(t *testing.T) {
	for _, eq := range []string{"x^2=2", "x^2=-1", "x+=1", "x=y"} {
		t.Run(eq, func(t *testing.T) {
			res, err := New(nil).Solve(context.Background(), eq)
			require.NoError(t, err)
			assert.False(t, res.Solved)
			assert.Equal(t, "Could not solve equation", res.String())
		})
	}
}

func TestSolveNewton(t *testing.T) {
	res, err := New(nil).Solve(context.Background(), "x^3+x-3=0")
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, "newton", res.Strategy)
	assert.True(t, strings.HasPrefix(res.Value, "1.2134"), "got %s", res.Value)
}

func TestNewtonFlatDerivative(t *testing.T) {
	eq, err := Parse("x**3=2", nil)
	require.NoError(t, err)

	// The centered derivative at zero is Step squared
	out, ok, err := Newton{Iterations: 50, Step: 1e-4}.Solve(context.Background(), eq)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestNewtonStepConvergence(t *testing.T) {
	// Scaling keeps the residual above tolerance once the step is below it
	eq, err := Parse("1000000*x**3+1000000*x=3000000", nil)
	require.NoError(t, err)

	out, ok, err := Newton{Iterations: 50, Step: 1e-4}.Solve(context.Background(), eq)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.213412", out)

	_, ok, err = Newton{Iterations: 1, Step: 1e-4}.Solve(context.Background(), eq)
	require.NoError(t, err)
	assert.False(t, ok, "one iteration is not enough to converge")
}

func TestIntegerSearchEndpoints(t *testing.T) {
	s := New(nil, IntegerSearch{Min: -100000, Max: 100000})

	res, err := s.Solve(context.Background(), "x-100000=0")
	require.NoError(t, err)
	assert.Equal(t, "x = 100000", res.String())

	res, err = s.Solve(context.Background(), "x+100000=0")
	require.NoError(t, err)
	assert.Equal(t, "x = -100000", res.String())

	res, err = s.Solve(context.Background(), "x-100001=0")
	require.NoError(t, err)
	assert.False(t, res.Solved)
}

func TestSolveUsesEnvironment(t *testing.T) {
	env := expr.MapEnv{"k": value.Float(4)}
	res, err := New(env).Solve(context.Background(), "x*k=2")
	require.NoError(t, err)
	assert.Equal(t, "x = 1/2", res.String())
}

func TestSolvePreconditions(t *testing.T) {
	s := New(nil)

	_, err := s.Solve(context.Background(), "1+1")
	assert.ErrorIs(t, err, ErrNotEquation)

	_, err = s.Solve(context.Background(), "x=1=2")
	assert.ErrorIs(t, err, ErrNotEquation)

	_, err = s.Solve(context.Background(), "2+3=5")
	assert.ErrorIs(t, err, ErrNoVariable)

	_, err = s.Solve(context.Background(), "pi*2=6")
	assert.ErrorIs(t, err, ErrNoVariable)
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Solve(ctx, "x^2=-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	_, err := New(nil).Solve(ctx, "x^2=-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExplicitProducts(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "2x+4", expected: "2*x+4"},
		{input: "2(x+1)", expected: "2*(x+1)"},
		{input: "2 x", expected: "2 x"},
		{input: "1e3x", expected: "1e3*x"},
		{input: "x2", expected: "x2"},
		{input: "2*x", expected: "2*x"},
		{input: "4x**2", expected: "4*x**2"},
		{input: "2x$", expected: "2x$"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExplicitProducts(tt.input))
		})
	}
}

func TestStrategiesIndependently(t *testing.T) {
	parse := func(s string) *Equation {
		eq, err := Parse(s, nil)
		require.NoError(t, err)
		return eq
	}
	ctx := context.Background()

	out, ok, err := Linear{}.Solve(ctx, parse("6+x=7"))
	require.NoError(t, err)
	assert.False(t, ok, "linear needs a product")
	assert.Empty(t, out)

	out, ok, err = IntegerSearch{Min: -10, Max: 10}.Solve(ctx, parse("x*x*x=27"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", out)

	_, ok, err = Newton{Iterations: 50, Step: 1e-4}.Solve(ctx, parse("x^2=4"))
	require.NoError(t, err)
	assert.False(t, ok, "newton needs a cubic term")

	out, ok, err = OffsetSearch{MinWhole: -5, MaxWhole: 5, MaxDenominator: 1000}.Solve(ctx, parse("4x=3"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3/4", out)
}
