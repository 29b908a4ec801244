package transformer

import (
	"regexp"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

var (
	openTagPattern   = regexp.MustCompile(`<elvt-([a-zA-Z0-9-]+)`)
	closeTagPattern  = regexp.MustCompile(`</elvt-([a-zA-Z0-9-]+)>`)
	styleAttrPattern = regexp.MustCompile(`style="([^"]+)"`)
	kebabAttrPattern = regexp.MustCompile(`(\s)([a-z]+(?:-[a-z]+)+)(=|\s|/?>)`)
)

// TransformWebComponentCode rewrites a web-component markup string for fw
// without parsing it. Web component and HTML code is returned as-is, as is
// code for unknown frameworks.
func TransformWebComponentCode(code string, fw framework.ID) string {
	if fw == framework.WebComponent || fw == framework.HTML {
		return code
	}
	profile, ok := framework.Lookup(fw)
	if !ok {
		return code
	}

	out := openTagPattern.ReplaceAllStringFunc(code, func(m string) string {
		name := openTagPattern.FindStringSubmatch(m)[1]
		return "<" + transformComponentName(nativePrefix+name, fw, profile)
	})
	out = closeTagPattern.ReplaceAllStringFunc(out, func(m string) string {
		name := closeTagPattern.FindStringSubmatch(m)[1]
		return "</" + transformComponentName(nativePrefix+name, fw, profile) + ">"
	})

	if fw != framework.React {
		return out
	}

	out = styleAttrPattern.ReplaceAllStringFunc(out, func(m string) string {
		css := styleAttrPattern.FindStringSubmatch(m)[1]
		return styleAttribute + "=" + styleObject(ParseStyle(css))
	})
	// Adjacent attributes share the whitespace between them, so a single pass
	// can skip every other one.
	for range 2 {
		out = kebabAttrPattern.ReplaceAllStringFunc(out, func(m string) string {
			sub := kebabAttrPattern.FindStringSubmatch(m)
			return sub[1] + ToCamelCase(sub[2]) + sub[3]
		})
	}
	return out
}
