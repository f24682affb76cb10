package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// String renders v for display.
//
// Integers print as digits. Rationals print as an integer when the
// denominator is 1, as "a/b" when proper and as a mixed number
// "whole rem/den" when improper. Floats use the shortest repr that
// round-trips, always with a fractional part or an exponent.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return v.exact().Num().String()
	case KindRational:
		return FormatRational(v.exact())
	default:
		return FormatFloat(v.f)
	}
}

// FormatRational renders r as an integer, a proper fraction, or a mixed
// number. The sign is carried by the whole part: -11/4 is "-2 3/4".
func FormatRational(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	num, den := r.Num(), r.Denom()
	absNum := new(big.Int).Abs(num)
	if absNum.Cmp(den) < 0 {
		return num.String() + "/" + den.String()
	}
	whole, rem := new(big.Int).QuoRem(absNum, den, new(big.Int))
	if num.Sign() < 0 {
		whole.Neg(whole)
	}
	return whole.String() + " " + rem.String() + "/" + den.String()
}

// FormatFraction renders r as "n/d", or just "n" when r is an integer.
// Unlike FormatRational it never produces a mixed number.
func FormatFraction(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + "/" + r.Denom().String()
}

// FormatFloat renders f the way an interactive calculator echoes floats:
// "4.0", "0.5", "3.141592653589793", "1e-05", "1e+16".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
