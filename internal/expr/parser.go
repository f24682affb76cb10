package expr

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/averycrespi/mathline/internal/value"
)

// maxDepth bounds parser recursion so deeply nested input fails cleanly.
const maxDepth = 200

type parser struct {
	toks  []Token
	i     int
	depth int
}

// Parse parses a canonical arithmetic expression:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := ('+'|'-') unary | power
//	power   := primary (('**'|'^') unary)?
//	primary := NUMBER | IDENT | IDENT '(' args ')' | '(' expr ')'
//
// Exponentiation is right associative and binds tighter than a sign on its
// left, so -2**2 is -4 and 2**-1 is 0.5.
func Parse(src string) (Node, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Type != EOF {
		return nil, syntaxError(t.Pos, "unexpected %s", t.Type)
	}
	return n, nil
}

func (p *parser) peek() Token { return p.toks[p.i] }

func (p *parser) next() Token {
	t := p.toks[p.i]
	if t.Type != EOF {
		p.i++
	}
	return t
}

func (p *parser) match(types ...TokenType) (Token, bool) {
	t := p.peek()
	for _, tt := range types {
		if t.Type == tt {
			p.i++
			return t, true
		}
	}
	return t, false
}

func (p *parser) need(tt TokenType) (Token, error) {
	t := p.peek()
	if t.Type != tt {
		return t, syntaxError(t.Pos, "expected %s, got %s", tt, t.Type)
	}
	p.i++
	return t, nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return syntaxError(p.peek().Pos, "expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) expr() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(PLUS, MINUS)
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Type, Left: left, Right: right, At: op.Pos}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(STAR, SLASH)
		if !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Type, Left: left, Right: right, At: op.Pos}
	}
}

func (p *parser) unary() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if op, ok := p.match(PLUS, MINUS); ok {
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.Type, X: x, At: op.Pos}, nil
	}
	return p.power()
}

func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	op, ok := p.match(POW)
	if !ok {
		return base, nil
	}
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: POW, Left: base, Right: exp, At: op.Pos}, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.Type {
	case NUMBER:
		v, err := parseNumber(t.Text)
		if err != nil {
			return nil, syntaxError(t.Pos, "invalid number %q", t.Text)
		}
		return &Number{Value: v, Text: t.Text, At: t.Pos}, nil
	case IDENT:
		if _, ok := p.match(LPAREN); ok {
			return p.call(t)
		}
		return &Ident{Name: t.Text, At: t.Pos}, nil
	case LPAREN:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, syntaxError(t.Pos, "unexpected %s", t.Type)
	}
}

func (p *parser) call(name Token) (Node, error) {
	c := &Call{Name: name.Text, At: name.Pos}
	if _, ok := p.match(RPAREN); ok {
		return c, nil
	}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, arg)
		if _, ok := p.match(COMMA); !ok {
			break
		}
	}
	if _, err := p.need(RPAREN); err != nil {
		return nil, err
	}
	return c, nil
}

// parseNumber turns a literal into an exact integer, or a float when it
// has a fraction or an exponent.
func parseNumber(text string) (value.Value, error) {
	if !strings.ContainsAny(text, ".eE") {
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return value.Value{}, strconv.ErrSyntax
		}
		return value.BigInt(n), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return value.Value{}, err
	}
	return value.Float(f), nil
}
