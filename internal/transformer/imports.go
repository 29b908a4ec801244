package transformer

import (
	"strings"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/util/sets"
)

// PackageName is the npm package the design system is published as.
const PackageName = "@inform-elevate/elevate-core-ui"

// UnsupportedImports is returned for frameworks without an import template.
const UnsupportedImports = "// Framework not supported"

// GetFrameworkImports returns the import snippet readers need for fw. The
// React and Svelte templates list components, deduplicated in first-seen order.
func GetFrameworkImports(fw framework.ID, components []string) string {
	list := strings.Join(sets.Dedupe(components), ", ")

	switch fw {
	case framework.WebComponent:
		return "// Web Components are auto-registered\n" +
			"import '" + PackageName + "';"
	case framework.React:
		return "// React wrappers\n" +
			"import { " + list + " } from '" + PackageName + "/react';"
	case framework.Angular:
		return "// Import Angular module\n" +
			"import { ElevateModule } from '" + PackageName + "/angular';\n" +
			"\n" +
			"// Add to your module imports:\n" +
			"// imports: [ElevateModule]"
	case framework.Vue:
		return "// Vue plugin\n" +
			"import { ElevatePlugin } from '" + PackageName + "/vue';\n" +
			"\n" +
			"// Use plugin in your app:\n" +
			"// app.use(ElevatePlugin);"
	case framework.Svelte:
		return "// Svelte components\n" +
			"import { " + list + " } from '" + PackageName + "/svelte';"
	case framework.HTML:
		return "<!-- Include in your build process -->\n" +
			`<script type="module" src="./dist/elevate-core-ui.js"></script>` + "\n" +
			`<link rel="stylesheet" href="./dist/elevate.css">`
	default:
		return UnsupportedImports
	}
}

// ImportNames maps design-system tag names to the identifiers fw imports.
// React and Svelte wrappers are PascalCase components; other frameworks
// register tags globally and keep the tag names.
func ImportNames(fw framework.ID, tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		switch fw {
		case framework.React:
			out = append(out, TransformComponentName(tag, framework.React))
		case framework.Svelte:
			out = append(out, nativePascalPrefix+PascalCase(strings.TrimPrefix(tag, nativePrefix)))
		default:
			out = append(out, tag)
		}
	}
	return sets.Dedupe(out)
}
