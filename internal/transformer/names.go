package transformer

import (
	"regexp"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/util/sets"
	"git.home.luguber.info/inful/elvtdocs/internal/vnode"
)

// ExtractComponentNames walks host UI nodes depth-first, left to right, and
// returns each design-system tag or component name once, in first-seen order.
func ExtractComponentNames(children []any) []string {
	var names []string
	var walk func(n any)
	walk = func(n any) {
		if seq, ok := n.([]any); ok {
			for _, c := range seq {
				walk(c)
			}
			return
		}
		el, ok := vnode.AsElement(n)
		if !ok {
			return
		}
		if name := el.Name(); name != "" && HasNativePrefix(name) {
			names = append(names, name)
		}
		if c, ok := el.Children(); ok {
			walk(c)
		}
	}
	for _, c := range children {
		walk(c)
	}
	return sets.Dedupe(names)
}

var nativeTagPattern = regexp.MustCompile(`<(elvt-[a-zA-Z0-9-]+)`)

// ExtractComponentNamesFromCode finds elvt- tags in a markup string and
// returns their React component names, deduplicated.
func ExtractComponentNamesFromCode(code string) []string {
	matches := nativeTagPattern.FindAllStringSubmatch(code, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, TransformComponentName(m[1], framework.React))
	}
	return sets.Dedupe(names)
}
