package transformer

import (
	"strings"

	"git.home.luguber.info/inful/elvtdocs/internal/vnode"
)

const styleAttribute = "style"

// ParseStyle splits a CSS declaration string into declarations. Empty
// properties or values are skipped.
func ParseStyle(css string) vnode.Style {
	var out vnode.Style
	for _, decl := range strings.Split(css, ";") {
		prop, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		prop, val = strings.TrimSpace(prop), strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		out = append(out, vnode.StyleDecl{Property: prop, Value: val})
	}
	return out
}

// styleObject renders declarations as a JSX style object: {{ color: 'red' }}.
func styleObject(style vnode.Style) string {
	if len(style) == 0 {
		return "{{}}"
	}
	entries := make([]string, 0, len(style))
	for _, d := range style {
		entries = append(entries, ToCamelCase(d.Property)+": '"+d.Value+"'")
	}
	return "{{ " + strings.Join(entries, ", ") + " }}"
}

// styleString renders declarations as an inline CSS string.
func styleString(style vnode.Style) string {
	entries := make([]string, 0, len(style))
	for _, d := range style {
		entries = append(entries, ToKebabCase(d.Property)+": "+d.Value)
	}
	return strings.Join(entries, "; ")
}

// renderStyle handles the style attribute. ok is false when the value is not a
// style form (string or vnode.Style) and generic rendering should apply.
func renderStyle(value any, react bool) (string, bool) {
	switch v := value.(type) {
	case string:
		if react {
			return styleAttribute + "=" + styleObject(ParseStyle(v)), true
		}
		return styleAttribute + `="` + v + `"`, true
	case vnode.Style:
		if react {
			return styleAttribute + "=" + styleObject(v), true
		}
		return styleAttribute + `="` + styleString(v) + `"`, true
	}
	return "", false
}
