package equations

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token classifies a lexical token.
type Token int

const (
	// TokenNone is the zero Token. The scanner never produces it.
	TokenNone Token = iota
	// TokenNumber is a numeric literal like 3 or 3.14.
	TokenNumber
	// TokenVariable is a variable name, one or more letters.
	TokenVariable
	// TokenOperator is one of + - * / ^.
	TokenOperator
	// TokenLParen is (.
	TokenLParen
	// TokenRParen is ).
	TokenRParen
)

func (t Token) String() string {
	switch t {
	case TokenNumber:
		return "NUMBER"
	case TokenVariable:
		return "VARIABLE"
	case TokenOperator:
		return "OPERATOR"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	default:
		return "NONE"
	}
}

// TokenValue pairs a token classification with the exact text it matched.
type TokenValue struct {
	Type Token
	Text string
}

func (t TokenValue) String() string {
	return t.Type.String() + ":" + t.Text
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/^"

// Tokenize scans an infix expression into tokens in left-to-right order. All
// whitespace is removed before scanning, so positions reported in errors are
// offsets into the whitespace-stripped text. Numbers and variables match
// their maximal run: "12.5x" scans as 12.5 then x, and "abc123" as abc then
// 123, since variable names are letters only.
func Tokenize(src string) ([]TokenValue, error) {
	clean := stripSpace(src)
	if clean == "" {
		return nil, &EmptyExpressionError{}
	}
	var tokens []TokenValue
	for i := 0; i < len(clean); {
		c := clean[i]
		switch {
		case isDigit(c):
			j := i + 1
			for j < len(clean) && isDigit(clean[j]) {
				j++
			}
			// A fractional part needs at least one digit after the dot.
			// A bare trailing dot is left behind to be rejected.
			if j+1 < len(clean) && clean[j] == '.' && isDigit(clean[j+1]) {
				j += 2
				for j < len(clean) && isDigit(clean[j]) {
					j++
				}
			}
			tokens = append(tokens, TokenValue{TokenNumber, clean[i:j]})
			i = j
		case isLetter(c):
			j := i + 1
			for j < len(clean) && isLetter(clean[j]) {
				j++
			}
			tokens = append(tokens, TokenValue{TokenVariable, clean[i:j]})
			i = j
		case strings.IndexByte(Operators, c) >= 0:
			tokens = append(tokens, TokenValue{TokenOperator, string(c)})
			i++
		case c == '(':
			tokens = append(tokens, TokenValue{TokenLParen, "("})
			i++
		case c == ')':
			tokens = append(tokens, TokenValue{TokenRParen, ")"})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(clean[i:])
			return nil, &LexError{Char: r, Pos: i}
		}
	}
	return tokens, nil
}

// stripSpace removes every whitespace character from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
