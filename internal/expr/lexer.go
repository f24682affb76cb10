package expr

import (
	"fmt"
	"strings"
)

// TokenType represents the kind of a lexical token.
type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	IDENT
	PLUS   // "+"
	MINUS  // "-"
	STAR   // "*"
	SLASH  // "/"
	POW    // "**" or "^"
	LPAREN // "("
	RPAREN // ")"
	COMMA  // ","
)

var tokenNames = map[TokenType]string{
	EOF:    "end of input",
	NUMBER: "number",
	IDENT:  "identifier",
	PLUS:   "'+'",
	MINUS:  "'-'",
	STAR:   "'*'",
	SLASH:  "'/'",
	POW:    "'**'",
	LPAREN: "'('",
	RPAREN: "')'",
	COMMA:  "','",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a lexical token with its byte offset in the source.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

// Lex splits src into tokens. Any character outside the arithmetic
// alphabet is a syntax error.
func Lex(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			end := scanNumber(src, i)
			toks = append(toks, Token{Type: NUMBER, Text: src[i:end], Pos: i})
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < len(src) && isIdentPart(src[end]) {
				end++
			}
			toks = append(toks, Token{Type: IDENT, Text: src[i:end], Pos: i})
			i = end
		case c == '*' && strings.HasPrefix(src[i:], "**"):
			toks = append(toks, Token{Type: POW, Text: "**", Pos: i})
			i += 2
		default:
			tt, ok := punct[c]
			if !ok {
				return nil, syntaxError(i, "unexpected character %q", c)
			}
			toks = append(toks, Token{Type: tt, Text: string(c), Pos: i})
			i++
		}
	}
	toks = append(toks, Token{Type: EOF, Pos: len(src)})
	return toks, nil
}

var punct = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'^': POW,
	'(': LPAREN,
	')': RPAREN,
	',': COMMA,
}

// scanNumber returns the end offset of the number starting at i:
// digits, an optional fraction and an optional exponent.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
