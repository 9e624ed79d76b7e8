package equations

// BuildTree folds postfix tokens into a binary expression tree. An operator
// pops its right operand first and its left operand second, preserving
// left-to-right source order.
func BuildTree(postfix []TokenValue) (Node, error) {
	if len(postfix) == 0 {
		return nil, &EmptyExpressionError{}
	}
	var stack []Node
	for _, tok := range postfix {
		switch tok.Type {
		case TokenNumber, TokenVariable:
			stack = append(stack, &Operand{Symbol: tok.Text})
		case TokenOperator:
			if len(stack) < 2 {
				return nil, &OperandError{Op: tok.Text[0]}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &Operator{Op: tok.Text[0], Left: left, Right: right})
		default:
			// The converter never emits parentheses, so one here is a bug.
			panic("equations: unexpected token in postfix expression: " + tok.String())
		}
	}
	if len(stack) != 1 {
		return nil, &TreeError{Nodes: len(stack)}
	}
	return stack[0], nil
}
