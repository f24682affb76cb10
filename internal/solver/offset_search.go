package solver

import (
	"context"

	"github.com/averycrespi/mathline/internal/value"
)

// offsets are tried in this order for each whole part.
var offsets = []float64{0.5, 0.25, 0.75, 1.0 / 3, 2.0 / 3}

// OffsetSearch tries whole±offset for each whole part in
// [MinWhole, MaxWhole], testing the sum before the difference, and reports
// the first hit as a fraction.
type OffsetSearch struct {
	MinWhole, MaxWhole int
	MaxDenominator     int64
}

func (OffsetSearch) Name() string { return "fractional_offset" }

func (s OffsetSearch) Solve(ctx context.Context, eq *Equation) (string, bool, error) {
	for whole := s.MinWhole; whole <= s.MaxWhole; whole++ {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		for _, off := range offsets {
			for _, x := range []float64{float64(whole) + off, float64(whole) - off} {
				if !eq.Satisfied(value.Float(x)) {
					continue
				}
				if out, _, ok := formatFraction(x, s.MaxDenominator); ok {
					return out, true, nil
				}
			}
		}
	}
	return "", false, nil
}
