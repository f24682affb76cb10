package solver

import (
	"context"
	"strconv"

	"github.com/averycrespi/mathline/internal/value"
)

// IntegerSearch tries every integer in [Min, Max] in ascending order and
// accepts the first one that satisfies the equation.
type IntegerSearch struct {
	Min, Max int64
}

func (IntegerSearch) Name() string { return "integer_search" }

func (s IntegerSearch) Solve(ctx context.Context, eq *Equation) (string, bool, error) {
	for i, n := 0, s.Min; n <= s.Max; i, n = i+1, n+1 {
		if err := poll(ctx, i); err != nil {
			return "", false, err
		}
		if eq.Satisfied(value.Int(n)) {
			return strconv.FormatInt(n, 10), true, nil
		}
	}
	return "", false, nil
}
