package transformer

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/vnode"
)

const indentUnit = "  "

// Generate renders n as fw source text, indented by indent levels of two
// spaces. A nil node renders as "". It fails for unknown frameworks and for
// attribute values outside bool, string, number and vnode.Style.
func Generate(n Node, fw framework.ID, indent int) (string, error) {
	profile, ok := framework.Lookup(fw)
	if !ok {
		return "", errors.ValidationError("unsupported framework").
			WithContext("framework", string(fw)).
			Build()
	}
	return generate(n, fw, profile, indent)
}

func generate(n Node, fw framework.ID, profile framework.Profile, indent int) (string, error) {
	switch node := n.(type) {
	case *TextNode:
		if node == nil {
			return "", nil
		}
		return strings.TrimSpace(node.Content), nil
	case *ElementNode:
		if node == nil {
			return "", nil
		}
		return generateElement(node, fw, profile, indent)
	default:
		return "", nil
	}
}

func generateElement(el *ElementNode, fw framework.ID, profile framework.Profile, indent int) (string, error) {
	spacing := strings.Repeat(indentUnit, max(indent, 0))

	tagName := el.TagName
	if HasNativePrefix(tagName) {
		tagName = transformComponentName(tagName, fw, profile)
	}

	attrs, err := renderAttributes(el.Attributes, fw, profile)
	if err != nil {
		return "", fmt.Errorf("<%s>: %w", el.TagName, err)
	}
	if attrs != "" {
		attrs = " " + attrs
	}

	lines := make([]string, 0, len(el.Children))
	for _, child := range el.Children {
		if text, ok := child.(*TextNode); ok {
			if trimmed := strings.TrimSpace(text.Content); trimmed != "" {
				lines = append(lines, spacing+indentUnit+trimmed)
			}
			continue
		}
		code, err := generate(child, fw, profile, indent+1)
		if err != nil {
			return "", err
		}
		if code != "" {
			lines = append(lines, code)
		}
	}

	if len(lines) == 0 {
		if profile.ClosingTagStyle == framework.SelfClosing && fw == framework.React {
			return spacing + "<" + tagName + attrs + " />", nil
		}
		return spacing + "<" + tagName + attrs + "></" + tagName + ">", nil
	}

	var b strings.Builder
	b.WriteString(spacing + "<" + tagName + attrs + ">\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n" + spacing + "</" + tagName + ">")
	return b.String(), nil
}

func renderAttributes(attrs []Attribute, fw framework.ID, profile framework.Profile) (string, error) {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		rendered, err := renderAttribute(a, fw, profile)
		if err != nil {
			return "", err
		}
		if rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, " "), nil
}

func renderAttribute(a Attribute, fw framework.ID, profile framework.Profile) (string, error) {
	react := fw == framework.React
	if a.Name == styleAttribute {
		if rendered, ok := renderStyle(a.Value, react); ok {
			return rendered, nil
		}
	}

	name := convertAttributeName(a.Name, profile.AttributeStyle)
	switch v := a.Value.(type) {
	case bool:
		switch {
		case !v:
			return "", nil
		case react:
			return name + "={true}", nil
		default:
			return name, nil
		}
	case string:
		return name + `="` + v + `"`, nil
	}
	if vnode.IsNumber(a.Value) {
		return name + `="` + vnode.FormatNumber(a.Value) + `"`, nil
	}
	return "", errors.GenerateError("unsupported attribute value").
		WithContext("attribute", a.Name).
		WithContext("type", fmt.Sprintf("%T", a.Value)).
		Build()
}
