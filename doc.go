// Package equations parses infix mathematical expressions, evaluates them
// against variable bindings, and canonicalizes them for deduplication.
//
// An expression is scanned into tokens, reordered into postfix form with the
// shunting-yard algorithm, and folded into a binary syntax tree. The tree
// evaluates in float64 or arbitrary-precision arithmetic, and its structural
// hash identifies mathematically identical expressions regardless of
// whitespace or redundant parentheses.
//
// The grammar is deliberately small: decimal numbers, letter-only variable
// names, the binary operators + - * / ^, and parentheses. There are no
// functions, no unary operators, and no implicit multiplication.
package equations
