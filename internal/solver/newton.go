package solver

import (
	"context"
	"math"

	"github.com/averycrespi/mathline/internal/value"
)

// Newton runs Newton-Raphson from zero with a centered numerical
// derivative. It only applies when the left side has a cubic term in the
// unknown.
type Newton struct {
	Iterations int
	Step       float64
}

func (Newton) Name() string { return "newton" }

func (s Newton) Solve(ctx context.Context, eq *Equation) (string, bool, error) {
	if !eq.hasPowerOfUnknown(3) {
		return "", false, nil
	}

	f := func(x float64) (float64, error) {
		return eq.Residual(value.Float(x))
	}

	x := 0.0
	for i := 0; i < s.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}

		fx, err := f(x)
		if err != nil {
			return "", false, nil
		}
		if math.Abs(fx) < tolerance {
			return formatRoot(x), true, nil
		}

		hi, err := f(x + s.Step)
		if err != nil {
			return "", false, nil
		}
		lo, err := f(x - s.Step)
		if err != nil {
			return "", false, nil
		}
		dfx := (hi - lo) / (2 * s.Step)
		if math.Abs(dfx) < tolerance {
			return "", false, nil
		}

		next := x - fx/dfx
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return "", false, nil
		}
		if math.Abs(next-x) < tolerance {
			return formatRoot(next), true, nil
		}
		x = next
	}
	return "", false, nil
}
