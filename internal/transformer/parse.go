package transformer

import "git.home.luguber.info/inful/elvtdocs/internal/vnode"

// Parse converts a host UI node into IR. Text and numbers become a TextNode,
// raw-tag elements become an ElementNode and anything else (nil, component
// references, unknown values) yields nil.
func Parse(n any) Node {
	if text, ok := vnode.TextOf(n); ok {
		return &TextNode{Content: text}
	}

	el, ok := vnode.AsElement(n)
	if !ok {
		return nil
	}
	tag, ok := el.Tag()
	if !ok || tag == "" {
		return nil
	}

	node := &ElementNode{
		TagName:    tag,
		Attributes: make([]Attribute, 0, len(el.Props)),
	}
	for _, p := range el.Props {
		if p.Name == vnode.ChildrenProp {
			continue
		}
		node.Attributes = append(node.Attributes, Attribute{Name: p.Name, Value: p.Value})
	}

	children, _ := el.Children()
	node.Children = parseChildren(children)
	return node
}

func parseChildren(children any) []Node {
	switch c := children.(type) {
	case nil:
		return []Node{}
	case []any:
		out := make([]Node, 0, len(c))
		for _, child := range c {
			if parsed := Parse(child); parsed != nil {
				out = append(out, parsed)
			}
		}
		return out
	default:
		if parsed := Parse(c); parsed != nil {
			return []Node{parsed}
		}
		return []Node{}
	}
}
