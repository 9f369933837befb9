package css

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
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

// Declarations parses the value of a style="..." attribute.
// The content is wrapped in "x{...}" to make it a valid rule.
func (p *Parser) Declarations(style string) ([]Declaration, error) {
	source := []byte("x{" + style + "}")
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	var declarations []Declaration
	p.walkTree(tree.RootNode(), source, &declarations)
	return declarations, nil
}

// walkTree recursively walks the tree collecting declarations
func (p *Parser) walkTree(node *sitter.Node, source []byte, declarations *[]Declaration) {
	if node == nil {
		return
	}

	if node.Kind() == "declaration" {
		if d, ok := declarationFromNode(node, source); ok {
			*declarations = append(*declarations, d)
		}
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		p.walkTree(node.Child(i), source, declarations)
	}
}

func declarationFromNode(node *sitter.Node, source []byte) (Declaration, bool) {
	var d Declaration
	var first, last *sitter.Node

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch kind := child.Kind(); kind {
		case "property_name":
			d.Property = string(source[child.StartByte():child.EndByte()])
		case ":", ";":
		case "important":
			d.Important = true
		default:
			if first == nil {
				first = child
			}
			last = child
		}
	}

	if d.Property == "" {
		return Declaration{}, false
	}
	if first != nil {
		d.Value = strings.TrimSpace(string(source[first.StartByte():last.EndByte()]))
	}
	return d, true
}
