// Package markup turns example HTML into host UI nodes the transformer accepts.
package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/vnode"
)

// selfClosingCustom matches self-closing custom elements such as <elvt-icon name="x" />.
// HTML5 only honors the slash on void elements, so these would otherwise
// swallow their following siblings.
var selfClosingCustom = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*-[a-zA-Z0-9-]*)(\s[^<>]*?)?\s*/>`)

// ExpandSelfClosing rewrites self-closing custom elements as explicit pairs.
func ExpandSelfClosing(src string) string {
	return selfClosingCustom.ReplaceAllString(src, "<$1$2></$1>")
}

// Parse parses an HTML fragment in body context. Text becomes a string,
// elements become vnode.Element with attribute order kept, and attributes
// without a value become true. Comments and doctypes are dropped.
func Parse(src string) ([]any, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(ExpandSelfClosing(src)), context)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryMarkup, "parse example markup").Build()
	}

	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		if v, ok := convert(n); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func convert(n *html.Node) (any, bool) {
	switch n.Type {
	case html.TextNode:
		return n.Data, true
	case html.ElementNode:
		props := make([]vnode.Prop, 0, len(n.Attr))
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			if a.Val == "" {
				props = append(props, vnode.Attr(name, true))
				continue
			}
			props = append(props, vnode.Attr(name, a.Val))
		}

		var children []any
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if v, ok := convert(c); ok {
				children = append(children, v)
			}
		}
		return vnode.H(n.Data, props, children...), true
	default:
		return nil, false
	}
}
