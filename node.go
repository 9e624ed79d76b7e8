package equations

import "strings"

// Node is a node in the abstract syntax tree of an expression. A tree is
// strictly binary: every interior node is an *Operator with two non-nil
// children and every leaf is an *Operand. Trees are never mutated after
// construction.
type Node interface {
	// Eval computes the value of the subtree rooted at this node using the
	// given variable bindings.
	Eval(vars map[string]float64) (float64, error)
	// hash appends the canonical rendering of the subtree to b.
	hash(b *strings.Builder)
}

// Operand is a leaf holding the text of a numeric literal or a variable name.
type Operand struct {
	Symbol string
}

// Operator is an interior node applying a binary operator to two subtrees.
type Operator struct {
	Op    byte
	Left  Node
	Right Node
}

func (n *Operand) hash(b *strings.Builder) {
	b.WriteString(n.Symbol)
}

func (n *Operator) hash(b *strings.Builder) {
	b.WriteByte('(')
	n.Left.hash(b)
	b.WriteByte(n.Op)
	n.Right.hash(b)
	b.WriteByte(')')
}

func (n *Operand) String() string {
	return n.Symbol
}

func (n *Operator) String() string {
	var b strings.Builder
	n.hash(&b)
	return b.String()
}

// Hash renders a tree as a fully parenthesized infix string with no
// whitespace, a canonical key for detecting mathematically identical
// expressions. Whitespace and redundant source parentheses never reach the
// tree, so they never affect the hash. Operand order and spelling do: a+b and
// b+a hash differently, and so do 3 and 3.0.
func Hash(root Node) string {
	var b strings.Builder
	root.hash(&b)
	return b.String()
}
