package solver

import (
	"context"
)

// tolerance is the absolute error accepted by every strategy.
const tolerance = 1e-4

// pollEvery is how many candidates a search loop tries between context checks.
const pollEvery = 1024

// Strategy tries to solve an equation one way.
type Strategy interface {
	Name() string
	// Solve returns the display form of the value it found and true, or
	// false when it declines. The error is reserved for cancellation.
	Solve(ctx context.Context, eq *Equation) (string, bool, error)
}

// DefaultStrategies returns the standard chain: closed-form linear,
// bounded integer search, Newton-Raphson for cubics, then fractional
// offsets.
func DefaultStrategies() []Strategy {
	return []Strategy{
		Linear{},
		IntegerSearch{Min: -100000, Max: 100000},
		Newton{Iterations: 50, Step: 1e-4},
		OffsetSearch{MinWhole: -50, MaxWhole: 50, MaxDenominator: 1000},
	}
}

func poll(ctx context.Context, i int) error {
	if i%pollEvery != 0 {
		return nil
	}
	return ctx.Err()
}
