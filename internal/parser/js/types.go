package js

// Argument is one argument of a call expression
type Argument struct {
	// Kind is the tree-sitter node kind: string, number, true, false,
	// identifier, call_expression and so on
	Kind string
	// Raw is the argument's source text
	Raw string
	// Value is the unquoted content for string literals, otherwise Raw
	Value string
}

// Call is a function call found in an inline event handler
type Call struct {
	Callee    string
	Arguments []Argument
}
