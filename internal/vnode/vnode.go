// Package vnode models the UI node trees the documentation layer hands to the
// transformer.
//
// A node is an untyped value. Three shapes are recognized:
//
//   - text: a string or any integer or floating point value;
//   - element: an Element (or non-nil *Element) whose Type is a string for raw
//     tags or a Component for component references;
//   - anything else is unrecognized and contributes nothing.
//
// The reserved "children" prop carries either a single child node or a []any
// sequence, the same way JSX props do.
package vnode

// ChildrenProp is the reserved prop name holding an element's children.
const ChildrenProp = "children"

// Element is a host UI element: a tag identifier plus ordered props.
type Element struct {
	Type  any
	Props []Prop
}

// Prop is one declared element property.
type Prop struct {
	Name  string
	Value any
}

// Component references a component by name instead of a raw tag.
type Component struct {
	Name string
}

// Style is the object form of a style prop, kept in declaration order.
type Style []StyleDecl

// StyleDecl is a single CSS declaration.
type StyleDecl struct {
	Property string
	Value    string
}

// Attr builds a Prop.
func Attr(name string, value any) Prop {
	return Prop{Name: name, Value: value}
}

// H builds a raw-tag element. A single child is stored directly, several are
// stored as a sequence and no children leaves the children prop out.
func H(tag string, props []Prop, children ...any) Element {
	return build(tag, props, children)
}

// C builds an element referencing a component.
func C(name string, props []Prop, children ...any) Element {
	return build(Component{Name: name}, props, children)
}

func build(typ any, props []Prop, children []any) Element {
	all := make([]Prop, 0, len(props)+1)
	all = append(all, props...)
	switch len(children) {
	case 0:
	case 1:
		all = append(all, Prop{Name: ChildrenProp, Value: children[0]})
	default:
		all = append(all, Prop{Name: ChildrenProp, Value: children})
	}
	return Element{Type: typ, Props: all}
}

// Tag returns the raw tag name when Type is a string.
func (e Element) Tag() (string, bool) {
	s, ok := e.Type.(string)
	return s, ok
}

// Name returns the tag identifier: the raw tag or the component name.
func (e Element) Name() string {
	switch t := e.Type.(type) {
	case string:
		return t
	case Component:
		return t.Name
	case *Component:
		if t != nil {
			return t.Name
		}
	}
	return ""
}

// Prop returns the value of the first prop called name.
func (e Element) Prop(name string) (any, bool) {
	for _, p := range e.Props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Children returns the children prop, if declared.
func (e Element) Children() (any, bool) {
	return e.Prop(ChildrenProp)
}

// AsElement reports whether n is a recognized element.
func AsElement(n any) (Element, bool) {
	switch v := n.(type) {
	case Element:
		return v, true
	case *Element:
		if v != nil {
			return *v, true
		}
	}
	return Element{}, false
}

// TextOf reports whether n is a text node and returns its string form.
func TextOf(n any) (string, bool) {
	switch v := n.(type) {
	case string:
		return v, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return FormatNumber(v), true
	}
	return "", false
}
