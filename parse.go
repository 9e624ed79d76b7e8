package equations

// Parse converts an infix expression into its abstract syntax tree. It
// composes Tokenize, ToPostfix, and BuildTree and surfaces any stage's error
// unchanged.
func Parse(src string) (Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return BuildTree(postfix)
}
