package equations

import "strconv"

// SyntaxError is an error describing malformed expression input. Every error
// returned for an invalid expression implements SyntaxError.
type SyntaxError interface {
	error
	syntax()
}

// LexError indicates a character that cannot begin any token.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Pos is the 0-based offset of Char in the whitespace-stripped input.
	Pos int
}

func (err *LexError) Error() string {
	return "illegal character " + strconv.QuoteRune(err.Char) + " at position " + strconv.Itoa(err.Pos)
}

// EmptyExpressionError indicates blank input or input with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "expression is empty"
}

// BracketError indicates unbalanced parentheses.
type BracketError struct {
	// Missing is the parenthesis that was absent, '(' or ')'.
	Missing byte
}

func (err *BracketError) Error() string {
	if err.Missing == '(' {
		return "unbalanced parentheses: missing left parenthesis"
	}
	return "unbalanced parentheses: missing right parenthesis"
}

// OperandError indicates an operator in postfix order with fewer than two
// operands available.
type OperandError struct {
	// Op is the operator character.
	Op byte
}

func (err *OperandError) Error() string {
	return "invalid postfix expression: insufficient operands for operator " + strconv.QuoteRune(rune(err.Op))
}

// TreeError indicates a postfix sequence that does not reduce to a single
// tree.
type TreeError struct {
	// Nodes is the number of roots left over after building.
	Nodes int
}

func (err *TreeError) Error() string {
	return "invalid postfix expression: should result in exactly one root node, got " + strconv.Itoa(err.Nodes)
}

func (*LexError) syntax()             {}
func (*EmptyExpressionError) syntax() {}
func (*BracketError) syntax()         {}
func (*OperandError) syntax()         {}
func (*TreeError) syntax()            {}

var (
	_ SyntaxError = (*LexError)(nil)
	_ SyntaxError = (*EmptyExpressionError)(nil)
	_ SyntaxError = (*BracketError)(nil)
	_ SyntaxError = (*OperandError)(nil)
	_ SyntaxError = (*TreeError)(nil)
)

// MissingVariableError indicates a variable that is absent from the bindings
// during evaluation.
type MissingVariableError struct {
	// Name is the variable that was missing.
	Name string
}

func (err *MissingVariableError) Error() string {
	return "variable not provided: " + strconv.Quote(err.Name)
}

// DivisionByZeroError indicates a division whose right operand evaluated to
// exactly zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// DomainError indicates an operation whose result is not representable in
// big-float arithmetic, which has no NaN or infinity.
type DomainError struct {
	// Op is the operator character.
	Op byte
}

func (err *DomainError) Error() string {
	return "operand outside the domain of " + strconv.QuoteRune(rune(err.Op))
}

// ArgumentError indicates misuse of an entry point rather than a bad
// expression, such as a nil tree or nil bindings.
type ArgumentError struct {
	// What names the offending argument.
	What string
}

func (err *ArgumentError) Error() string {
	return err.What + " cannot be nil"
}
