package solver

import (
	"fmt"
	"math"

	"github.com/averycrespi/mathline/internal/value"
)

// nearInteger reports whether x is within tolerance of an integer and
// returns that integer.
func nearInteger(x float64) (float64, bool) {
	r := math.Round(x)
	return r, math.Abs(x-r) < tolerance
}

func formatInteger(x float64) string {
	if x == 0 {
		// Avoid printing negative zero.
		return "0"
	}
	return fmt.Sprintf("%.0f", x)
}

func formatDecimal(x float64) string {
	return fmt.Sprintf("%.6f", x)
}

// formatFraction renders the best fraction for x with a bounded
// denominator, "n" when it is whole.
func formatFraction(x float64, maxDen int64) (string, float64, bool) {
	r := value.ApproximateFloat(x, maxDen)
	if r == nil {
		return "", 0, false
	}
	f, _ := r.Float64()
	return value.FormatFraction(r), f, true
}

// formatRoot renders a root found numerically: an integer when one is
// within tolerance, otherwise six decimals.
func formatRoot(x float64) string {
	if n, ok := nearInteger(x); ok {
		return formatInteger(n)
	}
	return formatDecimal(x)
}
