package expr

import (
	"errors"
	"fmt"

	"github.com/averycrespi/mathline/internal/value"
)

// Kind classifies evaluation failures.
type Kind int

const (
	DivisionByZero Kind = iota + 1
	NotANumber
	UnknownVariable
	SyntaxError
	ValueError
	GenericMathError
)

func (k Kind) String() string {
	switch k {
	case DivisionByZero:
		return "division_by_zero"
	case NotANumber:
		return "not_a_number"
	case UnknownVariable:
		return "unknown_variable"
	case SyntaxError:
		return "syntax_error"
	case ValueError:
		return "value_error"
	case GenericMathError:
		return "math_error"
	default:
		return "unknown"
	}
}

// Error is a recoverable evaluation failure. Its message is the text shown
// to the user.
type Error struct {
	Kind Kind
	// Name is the offending identifier for UnknownVariable.
	Name string
	// Detail carries the ValueError text, or a diagnostic for other kinds.
	Detail string
	// Pos is the byte offset of the failure in the source, or -1.
	Pos int
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return "Invalid - Division by zero"
	case NotANumber:
		return "Invalid - Not a number"
	case UnknownVariable:
		return "Invalid - Unknown variable: " + e.Name
	case SyntaxError:
		return "Invalid - Syntax error"
	case ValueError:
		return "Invalid - Value error: " + e.Detail
	default:
		return "Invalid - Math error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func syntaxError(pos int, format string, args ...any) *Error {
	return &Error{Kind: SyntaxError, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}

func unknownVariable(name string, pos int) *Error {
	return &Error{Kind: UnknownVariable, Name: name, Pos: pos}
}

func mathError(pos int, format string, args ...any) *Error {
	return &Error{Kind: GenericMathError, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}

// fromValueError maps numeric failures from the value package onto kinds.
func fromValueError(err error, pos int) *Error {
	switch {
	case errors.Is(err, value.ErrDivisionByZero):
		return &Error{Kind: DivisionByZero, Pos: pos, Err: err}
	case errors.Is(err, value.ErrDomain), errors.Is(err, value.ErrComplex):
		return &Error{Kind: ValueError, Detail: err.Error(), Pos: pos, Err: err}
	default:
		return &Error{Kind: GenericMathError, Detail: err.Error(), Pos: pos, Err: err}
	}
}
