package equations

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// EvalBig computes the value of an expression tree in arbitrary-precision
// arithmetic. prec is the precision of calculations in bits; zero means 64.
// Big floats have no NaN or infinity, so exponentiating a negative base
// returns a DomainError where Evaluate would produce an IEEE-754 result.
func EvalBig(root Node, vars map[string]*big.Float, prec uint) (*big.Float, error) {
	if root == nil {
		return nil, &ArgumentError{What: "expression tree root"}
	}
	if vars == nil {
		return nil, &ArgumentError{What: "variables map"}
	}
	if prec == 0 {
		prec = 64
	}
	return evalBig(root, vars, prec)
}

func evalBig(n Node, vars map[string]*big.Float, prec uint) (*big.Float, error) {
	switch n := n.(type) {
	case *Operand:
		if isNumeric(n.Symbol) {
			r, _, err := new(big.Float).SetPrec(prec).Parse(n.Symbol, 10)
			if err != nil {
				panic("equations: invalid number: " + n.Symbol + " (" + err.Error() + ")")
			}
			return r, nil
		}
		v := vars[n.Symbol]
		if v == nil {
			return nil, &MissingVariableError{Name: n.Symbol}
		}
		return new(big.Float).SetPrec(prec).Set(v), nil
	case *Operator:
		l, err := evalBig(n.Left, vars, prec)
		if err != nil {
			return nil, err
		}
		r, err := evalBig(n.Right, vars, prec)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case '+':
			return l.Add(l, r), nil
		case '-':
			return l.Sub(l, r), nil
		case '*':
			return l.Mul(l, r), nil
		case '/':
			if r.Sign() == 0 {
				return nil, &DivisionByZeroError{}
			}
			return l.Quo(l, r), nil
		case '^':
			// bigfloat.Pow is undefined for negative bases.
			if l.Sign() < 0 {
				return nil, &DomainError{Op: '^'}
			}
			bigfloat.Pow(l, l, r)
			return l, nil
		default:
			panic("equations: unsupported operator " + strconv.QuoteRune(rune(n.Op)))
		}
	default:
		panic("equations: unknown node type")
	}
}
