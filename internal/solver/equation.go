package solver

import (
	"errors"
	"math"
	"strings"

	"github.com/averycrespi/mathline/internal/expr"
	"github.com/averycrespi/mathline/internal/value"
)

var (
	// ErrNotEquation is returned when the input does not contain exactly one '='.
	ErrNotEquation = errors.New("not an equation")
	// ErrNoVariable is returned when the left side names no unknown.
	ErrNoVariable = errors.New("no variable on the left side")
)

// Equation is a single-variable equation prepared for the strategies.
// Either side may have failed to parse; every evaluation then reports
// that failure and the strategies treat it as "no match".
type Equation struct {
	Left     string
	Right    string
	Variable string

	left, right expr.Node
	err         error
	env         expr.Env
}

// Parse splits raw on its '=' and locates the unknown: the first
// identifier on the left side that is not a function or constant name.
// Identifiers other than the unknown resolve from env, which may be nil.
func Parse(raw string, env expr.Env) (*Equation, error) {
	if strings.Count(raw, "=") != 1 {
		return nil, ErrNotEquation
	}
	left, right, _ := strings.Cut(raw, "=")

	eq := &Equation{
		Left:  ExplicitProducts(strings.TrimSpace(left)),
		Right: ExplicitProducts(strings.TrimSpace(right)),
		env:   env,
	}
	eq.Variable = firstUnknown(eq.Left)
	if eq.Variable == "" {
		return nil, ErrNoVariable
	}

	if eq.left, eq.err = expr.Parse(eq.Left); eq.err == nil {
		eq.right, eq.err = expr.Parse(eq.Right)
	}
	return eq, nil
}

// IsEquation reports whether raw would be accepted by Parse.
func IsEquation(raw string) bool {
	if strings.Count(raw, "=") != 1 {
		return false
	}
	left, _, _ := strings.Cut(raw, "=")
	return firstUnknown(ExplicitProducts(strings.TrimSpace(left))) != ""
}

func firstUnknown(side string) string {
	toks, err := expr.Lex(side)
	if err != nil {
		return ""
	}
	for _, t := range toks {
		if t.Type == expr.IDENT && !expr.IsReserved(t.Text) {
			return t.Text
		}
	}
	return ""
}

// ExplicitProducts inserts '*' where a number is written directly against
// an identifier or an opening parenthesis, so "2x" becomes "2*x". Text
// that does not lex is returned unchanged.
func ExplicitProducts(src string) string {
	toks, err := expr.Lex(src)
	if err != nil {
		return src
	}
	var b strings.Builder
	last := 0
	for i := 0; i+1 < len(toks); i++ {
		cur, next := toks[i], toks[i+1]
		if cur.Type != expr.NUMBER || next.Pos != cur.Pos+len(cur.Text) {
			continue
		}
		if next.Type == expr.IDENT || next.Type == expr.LPAREN {
			b.WriteString(src[last:next.Pos])
			b.WriteByte('*')
			last = next.Pos
		}
	}
	b.WriteString(src[last:])
	return b.String()
}

// Sides evaluates both sides with the unknown bound to x.
func (eq *Equation) Sides(x value.Value) (value.Value, value.Value, error) {
	if eq.err != nil {
		return value.Value{}, value.Value{}, eq.err
	}
	env := expr.Bind(eq.env, eq.Variable, x)
	l, err := expr.Eval(eq.left, env)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	r, err := expr.Eval(eq.right, env)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	return l, r, nil
}

// Residual returns left(x) - right(x) as a float.
func (eq *Equation) Residual(x value.Value) (float64, error) {
	l, r, err := eq.Sides(x)
	if err != nil {
		return 0, err
	}
	return value.Sub(l, r).Float64(), nil
}

// Satisfied reports whether x solves the equation within tolerance.
// Evaluation failures count as not satisfied.
func (eq *Equation) Satisfied(x value.Value) bool {
	d, err := eq.Residual(x)
	return err == nil && math.Abs(d) < tolerance
}

// hasProduct reports whether the left side contains a multiplication.
func (eq *Equation) hasProduct() bool {
	return eq.left != nil && containsNode(eq.left, func(n expr.Node) bool {
		b, ok := n.(*expr.Binary)
		return ok && b.Op == expr.STAR
	})
}

// hasPowerOfUnknown reports whether the left side raises an expression in
// the unknown to a power. With exponent > 0 only that exact integer
// exponent counts.
func (eq *Equation) hasPowerOfUnknown(exponent int64) bool {
	return eq.left != nil && containsNode(eq.left, func(n expr.Node) bool {
		b, ok := n.(*expr.Binary)
		if !ok || b.Op != expr.POW || !expr.DependsOn(b.Left, eq.Variable) {
			return false
		}
		if exponent <= 0 {
			return true
		}
		num, ok := b.Right.(*expr.Number)
		return ok && num.Value.IsExact() && value.Compare(num.Value, value.Int(exponent)) == 0
	})
}

// rightIsConstant reports whether the right side does not mention the unknown.
func (eq *Equation) rightIsConstant() bool {
	return eq.right != nil && !expr.DependsOn(eq.right, eq.Variable)
}

func containsNode(root expr.Node, pred func(expr.Node) bool) bool {
	found := false
	expr.Walk(root, func(n expr.Node) bool {
		if pred(n) {
			found = true
		}
		return !found
	})
	return found
}
