package solver

import (
	"context"
	"math"

	"github.com/averycrespi/mathline/internal/value"
)

// Linear solves a*x + b = c in closed form by evaluating the left side at 0
// and 1. It applies whenever the left side has a multiplication and no
// square of the unknown, so other non-linear forms such as x*x=4 report
// the secant value through 0 and 1 rather than a root.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) Solve(ctx context.Context, eq *Equation) (string, bool, error) {
	if !eq.hasProduct() || eq.hasPowerOfUnknown(2) || !eq.rightIsConstant() {
		return "", false, nil
	}

	b, c, err := eq.Sides(value.Int(0))
	if err != nil {
		return "", false, nil
	}
	ab, _, err := eq.Sides(value.Int(1))
	if err != nil {
		return "", false, nil
	}
	a := value.Sub(ab, b)
	if a.IsZero() {
		return "", false, nil
	}

	x := (c.Float64() - b.Float64()) / a.Float64()
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", false, nil
	}

	if n, ok := nearInteger(x); ok {
		return formatInteger(n), true, nil
	}
	if s, f, ok := formatFraction(x, 10000); ok && math.Abs(f-x) < tolerance {
		return s, true, nil
	}
	return formatDecimal(x), true, nil
}
