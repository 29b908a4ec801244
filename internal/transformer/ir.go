package transformer

// Node is a parsed IR node: *TextNode or *ElementNode.
type Node interface {
	irNode()
}

// TextNode holds literal text.
type TextNode struct {
	Content string
}

// ElementNode is a raw-tag element with ordered attributes and children.
// The reserved children prop never appears in Attributes.
type ElementNode struct {
	TagName    string
	Attributes []Attribute
	Children   []Node
}

// Attribute is one declared attribute. Value is a bool, string, number or
// vnode.Style; other types fail generation.
type Attribute struct {
	Name  string
	Value any
}

func (*TextNode) irNode()    {}
func (*ElementNode) irNode() {}
