package value

import "math/big"

// LimitDenominator returns the closest fraction to r whose denominator is
// at most maxDen, walking the continued-fraction convergents of |r| and
// picking between the last convergent and the best semiconvergent.
func LimitDenominator(r *big.Rat, maxDen int64) *big.Rat {
	if maxDen < 1 {
		maxDen = 1
	}
	limit := big.NewInt(maxDen)
	if r.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(r)
	}

	neg := r.Sign() < 0
	n := new(big.Int).Abs(r.Num())
	d := new(big.Int).Set(r.Denom())

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	for {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	k := new(big.Int).Quo(new(big.Int).Sub(limit, q0), q1)
	semiQ := new(big.Int).Add(q0, new(big.Int).Mul(k, q1))
	semiP := new(big.Int).Add(p0, new(big.Int).Mul(k, p1))

	// The last convergent wins when 2*d*semiQ <= den(r).
	lhs := new(big.Int).Mul(big.NewInt(2), d)
	lhs.Mul(lhs, semiQ)

	var out *big.Rat
	if lhs.Cmp(r.Denom()) <= 0 {
		out = new(big.Rat).SetFrac(p1, q1)
	} else {
		out = new(big.Rat).SetFrac(semiP, semiQ)
	}
	if neg {
		out.Neg(out)
	}
	return out
}

// ApproximateFloat returns the fraction closest to f with a denominator no
// larger than maxDen. It returns nil for infinities and NaN.
func ApproximateFloat(f float64, maxDen int64) *big.Rat {
	exact := new(big.Rat).SetFloat64(f)
	if exact == nil {
		return nil
	}
	return LimitDenominator(exact, maxDen)
}
