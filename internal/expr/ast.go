package expr

import (
	"strings"

	"github.com/averycrespi/mathline/internal/value"
)

// Node is the interface all AST nodes implement.
type Node interface {
	Pos() int
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value value.Value
	Text  string
	At    int
}

// Ident is a reference to a constant or a variable.
type Ident struct {
	Name string
	At   int
}

// Unary is a prefix sign.
type Unary struct {
	Op TokenType // PLUS or MINUS
	X  Node
	At int
}

// Binary is an infix operation.
type Binary struct {
	Op          TokenType // PLUS, MINUS, STAR, SLASH, POW
	Left, Right Node
	At          int
}

// Call is an application of a namespace function.
type Call struct {
	Name string
	Args []Node
	At   int
}

func (n *Number) Pos() int { return n.At }
func (n *Ident) Pos() int  { return n.At }
func (n *Unary) Pos() int  { return n.At }
func (n *Binary) Pos() int { return n.At }
func (n *Call) Pos() int   { return n.At }

func (n *Number) String() string { return n.Text }
func (n *Ident) String() string  { return n.Name }

func (n *Unary) String() string {
	return "(" + opText(n.Op) + n.X.String() + ")"
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + opText(n.Op) + " " + n.Right.String() + ")"
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func opText(op TokenType) string {
	switch op {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case POW:
		return "**"
	}
	return op.String()
}

// Walk visits n and its children depth-first, left to right. Children are
// skipped when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Unary:
		Walk(n.X, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Call:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	}
}

// Identifiers returns the names referenced by n in source order, without
// duplicates. Function names and constants are not included.
func Identifiers(n Node) []string {
	var names []string
	seen := map[string]bool{}
	Walk(n, func(n Node) bool {
		if id, ok := n.(*Ident); ok && !IsReserved(id.Name) && !seen[id.Name] {
			seen[id.Name] = true
			names = append(names, id.Name)
		}
		return true
	})
	return names
}

// DependsOn reports whether n references the identifier name.
func DependsOn(n Node, name string) bool {
	found := false
	Walk(n, func(n Node) bool {
		if id, ok := n.(*Ident); ok && id.Name == name {
			found = true
		}
		return !found
	})
	return found
}
