package js

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Parser handles parsing inline JavaScript event handlers
type Parser struct {
	parser *sitter.Parser
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Call returns the first call expression in handler, or nil when the
// handler contains none or does not parse cleanly.
func (p *Parser) Call(handler string) *Call {
	source := []byte(handler)
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil
	}

	node := findCall(root)
	if node == nil {
		return nil
	}
	return callFromNode(node, source)
}

func findCall(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Kind() == "call_expression" {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := findCall(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func callFromNode(node *sitter.Node, source []byte) *Call {
	call := &Call{}

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "arguments":
			call.Arguments = argumentsFromNode(child, source)
		case "(", ")", "?.":
		default:
			if call.Callee == "" {
				call.Callee = text(child, source)
			}
		}
	}

	return call
}

func argumentsFromNode(node *sitter.Node, source []byte) []Argument {
	args := []Argument{}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		kind := child.Kind()

		// Skip punctuation like '(' ')' ','
		if kind == "(" || kind == ")" || kind == "," {
			continue
		}

		arg := Argument{Kind: kind, Raw: text(child, source)}
		arg.Value = arg.Raw
		if kind == "string" {
			arg.Value = stringValue(child, source)
		}
		args = append(args, arg)
	}
	return args
}

// stringValue joins the fragments of a string literal, dropping the quotes.
// Escape sequences are kept as written.
func stringValue(node *sitter.Node, source []byte) string {
	var value string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "string_fragment", "escape_sequence":
			value += text(child, source)
		}
	}
	return value
}

func text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
