// Package value implements the numeric tower used by the evaluator:
// exact integers, exact rationals and float64, with the promotion rules of
// an everyday calculator (mixing in a float makes the result a float,
// mixing in a rational keeps the result exact).
package value

import (
	"errors"
	"math"
	"math/big"
)

// Kind identifies the representation of a Value.
type Kind int

const (
	// KindInt is an exact integer of arbitrary size.
	KindInt Kind = iota
	// KindRational is an exact fraction.
	KindRational
	// KindFloat is an IEEE-754 double.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRational:
		return "rational"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

var (
	// ErrDivisionByZero is returned for any division, modulo or negative
	// power of zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain is returned when a function is called outside its domain.
	ErrDomain = errors.New("math domain error")
	// ErrComplex is returned when a result would be a complex number.
	ErrComplex = errors.New("negative number cannot be raised to a fractional power")
	// ErrTooLarge is returned when an exact power would be unreasonably large.
	ErrTooLarge = errors.New("result too large")
	// ErrOverflow is returned when a float power overflows.
	ErrOverflow = errors.New("numerical result out of range")
)

// Value is an immutable number. The zero Value is the integer 0.
type Value struct {
	kind Kind
	rat  *big.Rat
	f    float64
}

// Int returns an exact integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, rat: new(big.Rat).SetInt64(n)}
}

// BigInt returns an exact integer value for n.
func BigInt(n *big.Int) Value {
	return Value{kind: KindInt, rat: new(big.Rat).SetInt(n)}
}

// Rational returns an exact fraction. The rational stays a rational even
// when its denominator is 1, so that 4/2 displays as 2 and still combines
// exactly with other fractions.
func Rational(r *big.Rat) Value {
	return Value{kind: KindRational, rat: new(big.Rat).Set(r)}
}

// Frac builds the rational num/den.
func Frac(num, den *big.Int) (Value, error) {
	if den.Sign() == 0 {
		return Value{}, ErrDivisionByZero
	}
	return Value{kind: KindRational, rat: new(big.Rat).SetFrac(num, den)}, nil
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Kind reports the representation of v.
func (v Value) Kind() Kind { return v.kind }

// IsExact reports whether v is an integer or a rational.
func (v Value) IsExact() bool { return v.kind != KindFloat }

// Rat returns a copy of the exact value, or nil for floats.
func (v Value) Rat() *big.Rat {
	if v.kind == KindFloat {
		return nil
	}
	return new(big.Rat).Set(v.exact())
}

// Float64 converts v to the nearest float64. Huge exact values become ±Inf.
func (v Value) Float64() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	f, _ := v.exact().Float64()
	return f
}

// IsInteger reports whether v holds an integral number.
func (v Value) IsInteger() bool {
	if v.kind == KindFloat {
		return !math.IsInf(v.f, 0) && v.f == math.Trunc(v.f)
	}
	return v.exact().IsInt()
}

// IsZero reports whether v equals zero.
func (v Value) IsZero() bool {
	if v.kind == KindFloat {
		return v.f == 0
	}
	return v.exact().Sign() == 0
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	if v.kind == KindFloat {
		switch {
		case v.f < 0:
			return -1
		case v.f > 0:
			return 1
		}
		return 0
	}
	return v.exact().Sign()
}

// IsFinite reports whether v is neither infinite nor NaN.
func (v Value) IsFinite() bool {
	if v.kind == KindFloat {
		return !math.IsInf(v.f, 0) && !math.IsNaN(v.f)
	}
	return true
}

func (v Value) exact() *big.Rat {
	if v.rat == nil {
		return new(big.Rat)
	}
	return v.rat
}
