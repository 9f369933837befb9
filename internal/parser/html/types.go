package html

import "strings"

// Attribute is one name/value pair from a start tag, in source order
type Attribute struct {
	Name  string
	Value string
}

// Element is an HTML element found in a document
type Element struct {
	Tag        string
	Attributes []Attribute
	// StartByte and EndByte bound the whole element, end tag included
	StartByte uint
	EndByte   uint
	// Line and Column are 0-indexed
	Line   uint
	Column uint
}

// Attr returns the value of the first attribute with the given name
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the element's class list contains class
func (e *Element) HasClass(class string) bool {
	classes, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}
