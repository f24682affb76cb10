package expr

import (
	"math"
	"math/big"

	"github.com/averycrespi/mathline/internal/value"
)

// RationalConstructor is the namespace name of the exact fraction builder.
// The normalizer rewrites fraction literals into calls to it.
const RationalConstructor = "frac"

type builtin struct {
	minArgs, maxArgs int
	fn               func(args []value.Value) (value.Value, error)
}

var functions = map[string]builtin{
	"sqrt":              {1, 1, unaryFloat(sqrt)},
	"sin":               {1, 1, unaryFloat(finite(math.Sin))},
	"cos":               {1, 1, unaryFloat(finite(math.Cos))},
	"tan":               {1, 1, unaryFloat(finite(math.Tan))},
	"log":               {1, 2, logarithm},
	RationalConstructor: {1, 2, rational},
}

var constants = map[string]value.Value{
	"pi": value.Float(math.Pi),
	"e":  value.Float(math.E),
}

// IsFunction reports whether name is a namespace function.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// IsConstant reports whether name is a namespace constant.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// IsReserved reports whether name belongs to the closed namespace and so
// cannot be used as a variable.
func IsReserved(name string) bool {
	return IsFunction(name) || IsConstant(name)
}

func unaryFloat(f func(float64) (float64, error)) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		r, err := f(args[0].Float64())
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(r), nil
	}
}

func finite(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if math.IsInf(x, 0) {
			return 0, value.ErrDomain
		}
		return f(x), nil
	}
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, value.ErrDomain
	}
	return math.Sqrt(x), nil
}

// logarithm is log(x) or log(x, base).
func logarithm(args []value.Value) (value.Value, error) {
	x, err := ln(args[0])
	if err != nil {
		return value.Value{}, err
	}
	if len(args) == 1 {
		return value.Float(x), nil
	}
	b, err := ln(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if b == 0 {
		return value.Value{}, value.ErrDivisionByZero
	}
	return value.Float(x / b), nil
}

// ln computes the natural log, staying accurate for exact values too large
// to fit in a float64.
func ln(v value.Value) (float64, error) {
	if v.Sign() <= 0 {
		return 0, value.ErrDomain
	}
	r := v.Rat()
	if r == nil {
		return math.Log(v.Float64()), nil
	}
	return lnInt(r.Num()) - lnInt(r.Denom()), nil
}

func lnInt(n *big.Int) float64 {
	const keep = 64
	shift := n.BitLen() - keep
	if shift <= 0 {
		f, _ := new(big.Float).SetInt(n).Float64()
		return math.Log(f)
	}
	top, _ := new(big.Float).SetInt(new(big.Int).Rsh(n, uint(shift))).Float64()
	return math.Log(top) + float64(shift)*math.Ln2
}

// rational is frac(x) or frac(num, den).
func rational(args []value.Value) (value.Value, error) {
	if len(args) == 1 {
		if r := args[0].Rat(); r != nil {
			return value.Rational(r), nil
		}
		f := args[0].Float64()
		r := new(big.Rat).SetFloat64(f)
		if r == nil {
			return value.Value{}, value.ErrDomain
		}
		return value.Rational(r), nil
	}
	num, den := args[0].Rat(), args[1].Rat()
	if num == nil || den == nil {
		return value.Value{}, errNotRational
	}
	if den.Sign() == 0 {
		return value.Value{}, value.ErrDivisionByZero
	}
	return value.Rational(new(big.Rat).Quo(num, den)), nil
}
