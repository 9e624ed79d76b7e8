package equations

// precedence returns the binding strength of an operator character. Higher
// binds tighter.
func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		panic("equations: unknown operator " + string(op))
	}
}

// popsBefore reports whether the stacked operator top is emitted to the
// output before the incoming operator is pushed. Exponentiation is
// right-associative, so an incoming ^ does not pop an equal-precedence ^; all
// other operators are left-associative.
func popsBefore(top, incoming byte) bool {
	if incoming == '^' {
		return precedence(top) > precedence(incoming)
	}
	return precedence(top) >= precedence(incoming)
}

// ToPostfix reorders infix tokens into postfix order using the shunting-yard
// algorithm. Parenthesis tokens are consumed by the conversion and never
// appear in the output.
func ToPostfix(tokens []TokenValue) ([]TokenValue, error) {
	if len(tokens) == 0 {
		return nil, &EmptyExpressionError{}
	}
	output := make([]TokenValue, 0, len(tokens))
	var stack []TokenValue
	for _, tok := range tokens {
		switch tok.Type {
		case TokenNumber, TokenVariable:
			output = append(output, tok)
		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != TokenOperator || !popsBefore(top.Text[0], tok.Text[0]) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenLParen:
			stack = append(stack, tok)
		case TokenRParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == TokenLParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, &BracketError{Missing: '('}
			}
		default:
			panic("equations: unexpected token " + tok.String())
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		top := stack[i]
		if top.Type == TokenLParen || top.Type == TokenRParen {
			return nil, &BracketError{Missing: ')'}
		}
		output = append(output, top)
	}
	return output, nil
}
