package expr

import (
	"errors"
	"math"

	"github.com/averycrespi/mathline/internal/value"
)

var errNotRational = errors.New("both arguments should be rational")

// Env resolves variable names to values.
type Env interface {
	Lookup(name string) (value.Value, bool)
}

// MapEnv is an Env backed by a map.
type MapEnv map[string]value.Value

// Lookup implements Env.
func (m MapEnv) Lookup(name string) (value.Value, bool) {
	v, ok := m[name]
	return v, ok
}

type binding struct {
	name   string
	val    value.Value
	parent Env
}

// Bind returns an Env where name resolves to v and every other name is
// looked up in parent, which may be nil.
func Bind(parent Env, name string, v value.Value) Env {
	return &binding{name: name, val: v, parent: parent}
}

func (b *binding) Lookup(name string) (value.Value, bool) {
	if name == b.name {
		return b.val, true
	}
	if b.parent == nil {
		return value.Value{}, false
	}
	return b.parent.Lookup(name)
}

// Evaluate parses src and evaluates it against env. A float result that is
// infinite or NaN is reported as an error rather than returned.
func Evaluate(src string, env Env) (value.Value, error) {
	n, err := Parse(src)
	if err != nil {
		return value.Value{}, err
	}
	v, err := Eval(n, env)
	if err != nil {
		return value.Value{}, err
	}
	return v, checkFinite(v)
}

func checkFinite(v value.Value) error {
	f := v.Float64()
	switch {
	case v.Kind() != value.KindFloat:
		return nil
	case math.IsNaN(f):
		return &Error{Kind: NotANumber, Pos: -1}
	case math.IsInf(f, 0):
		return &Error{Kind: DivisionByZero, Pos: -1}
	}
	return nil
}

// Eval walks the tree n. Identifiers are resolved against the namespace
// constants first and then env; they are never substituted textually.
func Eval(n Node, env Env) (value.Value, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil

	case *Ident:
		if v, ok := constants[n.Name]; ok {
			return v, nil
		}
		if IsFunction(n.Name) {
			return value.Value{}, syntaxError(n.At, "function %s used as a value", n.Name)
		}
		if env != nil {
			if v, ok := env.Lookup(n.Name); ok {
				return v, nil
			}
		}
		return value.Value{}, unknownVariable(n.Name, n.At)

	case *Unary:
		x, err := Eval(n.X, env)
		if err != nil {
			return value.Value{}, err
		}
		if n.Op == MINUS {
			return value.Neg(x), nil
		}
		return x, nil

	case *Binary:
		return evalBinary(n, env)

	case *Call:
		return evalCall(n, env)
	}
	return value.Value{}, mathError(n.Pos(), "unsupported node %T", n)
}

func evalBinary(n *Binary, env Env) (value.Value, error) {
	l, err := Eval(n.Left, env)
	if err != nil {
		return value.Value{}, err
	}
	r, err := Eval(n.Right, env)
	if err != nil {
		return value.Value{}, err
	}

	var out value.Value
	switch n.Op {
	case PLUS:
		out = value.Add(l, r)
	case MINUS:
		out = value.Sub(l, r)
	case STAR:
		out = value.Mul(l, r)
	case SLASH:
		out, err = value.Div(l, r)
	case POW:
		out, err = value.Pow(l, r)
	default:
		return value.Value{}, mathError(n.At, "unsupported operator %s", n.Op)
	}
	if err != nil {
		return value.Value{}, fromValueError(err, n.At)
	}
	return out, nil
}

func evalCall(n *Call, env Env) (value.Value, error) {
	fn, ok := functions[n.Name]
	if !ok {
		if IsConstant(n.Name) || (env != nil && isBound(env, n.Name)) {
			return value.Value{}, mathError(n.At, "%s is not callable", n.Name)
		}
		return value.Value{}, unknownVariable(n.Name, n.At)
	}
	if len(n.Args) < fn.minArgs || len(n.Args) > fn.maxArgs {
		return value.Value{}, mathError(n.At, "%s takes %d to %d arguments, got %d",
			n.Name, fn.minArgs, fn.maxArgs, len(n.Args))
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, env)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	out, err := fn.fn(args)
	if err != nil {
		return value.Value{}, fromValueError(err, n.At)
	}
	return out, nil
}

func isBound(env Env, name string) bool {
	_, ok := env.Lookup(name)
	return ok
}
