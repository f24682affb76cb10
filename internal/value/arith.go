package value

import (
	"math"
	"math/big"
)

const (
	// maxExponent bounds exact integer powers.
	maxExponent = 10000
	// maxPowerBits bounds the estimated size of an exact power result.
	maxPowerBits = 1 << 22
)

// resultKind is the kind of a binary result for + - * and exact division.
func resultKind(a, b Value) Kind {
	switch {
	case a.kind == KindFloat || b.kind == KindFloat:
		return KindFloat
	case a.kind == KindRational || b.kind == KindRational:
		return KindRational
	default:
		return KindInt
	}
}

// Neg returns -v.
func Neg(v Value) Value {
	if v.kind == KindFloat {
		return Float(-v.f)
	}
	return Value{kind: v.kind, rat: new(big.Rat).Neg(v.exact())}
}

// Abs returns |v|.
func Abs(v Value) Value {
	if v.Sign() < 0 {
		return Neg(v)
	}
	return v
}

// Add returns a + b.
func Add(a, b Value) Value {
	k := resultKind(a, b)
	if k == KindFloat {
		return Float(a.Float64() + b.Float64())
	}
	return Value{kind: k, rat: new(big.Rat).Add(a.exact(), b.exact())}
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	k := resultKind(a, b)
	if k == KindFloat {
		return Float(a.Float64() - b.Float64())
	}
	return Value{kind: k, rat: new(big.Rat).Sub(a.exact(), b.exact())}
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	k := resultKind(a, b)
	if k == KindFloat {
		return Float(a.Float64() * b.Float64())
	}
	return Value{kind: k, rat: new(big.Rat).Mul(a.exact(), b.exact())}
}

// Div returns a / b. Dividing two integers is true division and yields a
// float; any rational operand keeps the quotient exact.
func Div(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	switch resultKind(a, b) {
	case KindFloat:
		return Float(a.Float64() / b.Float64()), nil
	case KindRational:
		return Value{kind: KindRational, rat: new(big.Rat).Quo(a.exact(), b.exact())}, nil
	default:
		q := new(big.Rat).Quo(a.exact(), b.exact())
		f, _ := q.Float64()
		return Float(f), nil
	}
}

// Pow returns a ** b.
func Pow(a, b Value) (Value, error) {
	if a.kind != KindFloat && b.kind != KindFloat && b.exact().IsInt() {
		return exactPow(a, b.exact().Num())
	}
	return floatPow(a.Float64(), b.Float64())
}

func exactPow(a Value, exp *big.Int) (Value, error) {
	if !exp.IsInt64() || abs64(exp.Int64()) > maxExponent {
		return Value{}, ErrTooLarge
	}
	n := exp.Int64()
	base := a.exact()
	bits := int64(base.Num().BitLen() + base.Denom().BitLen())
	if bits*abs64(n) > maxPowerBits {
		return Value{}, ErrTooLarge
	}

	// Negative integer powers of an integer leave the exact domain.
	if a.kind == KindInt && n < 0 {
		if base.Sign() == 0 {
			return Value{}, ErrDivisionByZero
		}
		return floatPow(a.Float64(), float64(n))
	}

	num := new(big.Int).Exp(base.Num(), big.NewInt(abs64(n)), nil)
	den := new(big.Int).Exp(base.Denom(), big.NewInt(abs64(n)), nil)
	if n < 0 {
		if num.Sign() == 0 {
			return Value{}, ErrDivisionByZero
		}
		num, den = den, num
	}
	return Value{kind: a.kind, rat: new(big.Rat).SetFrac(num, den)}, nil
}

func floatPow(x, y float64) (Value, error) {
	if x == 0 && y < 0 {
		return Value{}, ErrDivisionByZero
	}
	if x < 0 && y != math.Trunc(y) {
		return Value{}, ErrComplex
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return Value{}, ErrOverflow
	}
	return Float(r), nil
}

// Compare returns -1, 0 or +1 comparing a and b numerically.
func Compare(a, b Value) int {
	if a.kind == KindFloat || b.kind == KindFloat {
		x, y := a.Float64(), b.Float64()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return a.exact().Cmp(b.exact())
}

// Distance returns |a - b| as a float64.
func Distance(a, b Value) float64 {
	return math.Abs(Sub(a, b).Float64())
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
