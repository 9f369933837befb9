package html

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser finds elements in HTML documents
type Parser struct {
	parser *sitter.Parser
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
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

// Elements returns every element whose class list contains class, in
// document order. An empty class returns every element.
func (p *Parser) Elements(source string, class string) []Element {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	var elements []Element
	walk(tree.RootNode(), sourceBytes, func(e Element) {
		if class == "" || e.HasClass(class) {
			elements = append(elements, e)
		}
	})
	return elements
}

func walk(node *sitter.Node, source []byte, visit func(Element)) {
	if node == nil {
		return
	}

	if node.Kind() == "element" {
		if e, ok := elementFromNode(node, source); ok {
			visit(e)
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walk(node.Child(i), source, visit)
	}
}

func elementFromNode(node *sitter.Node, source []byte) (Element, bool) {
	var tag *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if kind := child.Kind(); kind == "start_tag" || kind == "self_closing_tag" {
			tag = child
			break
		}
	}
	if tag == nil {
		return Element{}, false
	}

	e := Element{
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		Line:      node.StartPosition().Row,
		Column:    node.StartPosition().Column,
	}

	for i := uint(0); i < tag.ChildCount(); i++ {
		child := tag.Child(i)
		switch child.Kind() {
		case "tag_name":
			e.Tag = text(child, source)
		case "attribute":
			e.Attributes = append(e.Attributes, attributeFromNode(child, source))
		}
	}

	return e, true
}

func attributeFromNode(node *sitter.Node, source []byte) Attribute {
	var attr Attribute
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "attribute_name":
			attr.Name = text(child, source)
		case "attribute_value":
			attr.Value = text(child, source)
		case "quoted_attribute_value":
			// "" has no attribute_value child
			for j := uint(0); j < child.ChildCount(); j++ {
				if v := child.Child(j); v.Kind() == "attribute_value" {
					attr.Value = text(v, source)
				}
			}
		}
	}
	return attr
}

func text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
