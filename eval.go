package equations

import (
	"math"
	"strconv"
)

// Evaluate computes the value of an expression tree using the given variable
// bindings. A nil root or nil bindings map is an ArgumentError; errors from
// the expression itself are MissingVariableError or DivisionByZeroError.
// Exponentiation follows IEEE-754 pow semantics, so undefined cases produce
// NaN or infinities rather than errors.
func Evaluate(root Node, vars map[string]float64) (float64, error) {
	if root == nil {
		return 0, &ArgumentError{What: "expression tree root"}
	}
	if vars == nil {
		return 0, &ArgumentError{What: "variables map"}
	}
	return root.Eval(vars)
}

func (n *Operand) Eval(vars map[string]float64) (float64, error) {
	// Numeric literals never consult the bindings. The tokenizer only
	// produces numbers that begin with a digit, so variable names that
	// ParseFloat would accept, like inf, stay variables.
	if isNumeric(n.Symbol) {
		v, err := strconv.ParseFloat(n.Symbol, 64)
		if err != nil {
			panic("equations: invalid number: " + n.Symbol + " (" + err.Error() + ")")
		}
		return v, nil
	}
	v, ok := vars[n.Symbol]
	if !ok {
		return 0, &MissingVariableError{Name: n.Symbol}
	}
	return v, nil
}

func (n *Operator) Eval(vars map[string]float64) (float64, error) {
	l, err := n.Left.Eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, &DivisionByZeroError{}
		}
		return l / r, nil
	case '^':
		return math.Pow(l, r), nil
	default:
		panic("equations: unsupported operator " + strconv.QuoteRune(rune(n.Op)))
	}
}

// isNumeric reports whether an operand symbol is a numeric literal.
func isNumeric(s string) bool {
	return s != "" && isDigit(s[0])
}
