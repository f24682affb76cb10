package vars

import (
	"errors"
	"fmt"
	"strings"

	"github.com/averycrespi/mathline/internal/expr"
)

var (
	// ErrInvalidName is returned for names that are not identifiers.
	ErrInvalidName = errors.New("invalid variable name")
	// ErrReservedName is returned for function and constant names.
	ErrReservedName = errors.New("reserved name")
)

// Canonical returns the stored form of name. Input is lowercased before
// evaluation, so variables are too.
func Canonical(name string) string {
	return strings.ToLower(name)
}

// ValidateName reports whether name can be bound as a variable.
func ValidateName(name string) error {
	if !IsIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if expr.IsReserved(Canonical(name)) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// IsIdentifier reports whether s lexes as a single identifier.
func IsIdentifier(s string) bool {
	toks, err := expr.Lex(s)
	return err == nil && len(toks) == 2 && toks[0].Type == expr.IDENT && toks[0].Text == s
}
