// Package normalize rewrites free-form calculator input into canonical
// arithmetic that the expr package can parse.
package normalize

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/averycrespi/mathline/internal/expr"
)

// Rule names, in the order the rewrites are applied.
const (
	RuleLowercase    = "lowercase"
	RuleSquared      = "squared"
	RuleCubed        = "cubed"
	RuleSqrtOf       = "sqrt_of"
	RuleSquareRootOf = "square_root_of"
	RuleSqrt         = "sqrt"
	RuleMixed        = "mixed_fraction"
	RuleFraction     = "fraction"
	RuleCaret        = "caret"
)

type rule struct {
	name    string
	rewrite func(string) string
}

var (
	squaredRe      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+squared`)
	cubedRe        = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+cubed`)
	sqrtOfRe       = regexp.MustCompile(`sqrt\s+of\s+(\d+(?:\.\d+)?)`)
	squareRootOfRe = regexp.MustCompile(`square\s+root\s+of\s+(\d+(?:\.\d+)?)`)
	sqrtRe         = regexp.MustCompile(`sqrt\s+(\d+(?:\.\d+)?)`)
	mixedRe        = regexp.MustCompile(`(\d+)\s+(\d+)/(\d+)`)
	fractionRe     = regexp.MustCompile(`(\d+)/(\d+)`)
	caretRe        = regexp.MustCompile(`(\d+(?:\.\d+)?|\w+)\^(\d+(?:\.\d+)?|\w+)`)
)

// Order matters: the mixed fraction rule must see "2 1/2" before the plain
// fraction rule consumes "1/2", and caret runs last so it sees the
// parentheses produced by the earlier rules.
var rules = []rule{
	{RuleLowercase, strings.ToLower},
	{RuleSquared, replacer(squaredRe, `($1)**2`)},
	{RuleCubed, replacer(cubedRe, `($1)**3`)},
	{RuleSqrtOf, replacer(sqrtOfRe, `sqrt($1)`)},
	{RuleSquareRootOf, replacer(squareRootOfRe, `sqrt($1)`)},
	{RuleSqrt, replacer(sqrtRe, `sqrt($1)`)},
	{RuleMixed, mixedFractions},
	{RuleFraction, fractions},
	{RuleCaret, replacer(caretRe, `$1**$2`)},
}

// Normalize returns the canonical form of raw.
func Normalize(raw string) string {
	out, _ := Trace(raw)
	return out
}

// Trace returns the canonical form of raw together with the names of the
// rules that changed the text, in application order.
func Trace(raw string) (string, []string) {
	s := raw
	var fired []string
	for _, r := range rules {
		next := r.rewrite(s)
		if next != s {
			fired = append(fired, r.name)
		}
		s = next
	}
	return s, fired
}

func replacer(re *regexp.Regexp, tmpl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, tmpl)
	}
}

func mixedFractions(s string) string {
	return replaceIntegers(s, mixedRe, func(g []string) string {
		whole, _ := new(big.Int).SetString(g[0], 10)
		num, _ := new(big.Int).SetString(g[1], 10)
		den, _ := new(big.Int).SetString(g[2], 10)
		improper := new(big.Int).Mul(whole, den)
		improper.Add(improper, num)
		return rationalLiteral(improper.String(), den.String())
	})
}

func fractions(s string) string {
	return replaceIntegers(s, fractionRe, func(g []string) string {
		return rationalLiteral(g[0], g[1])
	})
}

func rationalLiteral(num, den string) string {
	return expr.RationalConstructor + "(" + num + ", " + den + ")"
}

// replaceIntegers rewrites matches of re whose outermost digits are whole
// integer tokens. A match glued to a decimal point or an identifier on
// either side is left alone, so "1.5/2" and "x2/3" are not split.
func replaceIntegers(s string, re *regexp.Regexp, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && isWordOrDot(s[start-1]) || end < len(s) && isWordOrDot(s[end]) {
			continue
		}
		groups := make([]string, 0, len(m)/2-1)
		for i := 2; i < len(m); i += 2 {
			groups = append(groups, s[m[i]:m[i+1]])
		}
		b.WriteString(s[last:start])
		b.WriteString(repl(groups))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func isWordOrDot(c byte) bool {
	return c == '.' || c == '_' || c >= '0' && c <= '9' || c|0x20 >= 'a' && c|0x20 <= 'z'
}
