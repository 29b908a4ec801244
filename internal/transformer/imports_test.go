package transformer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

func TestGetFrameworkImports(t *testing.T) {
	components := []string{"ElvtButton", "ElvtIcon", "ElvtButton"}

	require.Equal(t,
		"// React wrappers\nimport { ElvtButton, ElvtIcon } from '@inform-elevate/elevate-core-ui/react';",
		GetFrameworkImports(framework.React, components))
	require.Equal(t,
		"// Svelte components\nimport { ElvtButton, ElvtIcon } from '@inform-elevate/elevate-core-ui/svelte';",
		GetFrameworkImports(framework.Svelte, components))
	require.Equal(t,
		"// Web Components are auto-registered\nimport '@inform-elevate/elevate-core-ui';",
		GetFrameworkImports(framework.WebComponent, components))

	angular := GetFrameworkImports(framework.Angular, nil)
	require.Contains(t, angular, "import { ElevateModule } from '@inform-elevate/elevate-core-ui/angular';")
	require.Contains(t, angular, "// imports: [ElevateModule]")

	vue := GetFrameworkImports(framework.Vue, nil)
	require.Contains(t, vue, "import { ElevatePlugin } from '@inform-elevate/elevate-core-ui/vue';")
	require.Contains(t, vue, "// app.use(ElevatePlugin);")

	html := GetFrameworkImports(framework.HTML, nil)
	require.Contains(t, html, `<script type="module" src="./dist/elevate-core-ui.js"></script>`)
	require.Contains(t, html, `<link rel="stylesheet" href="./dist/elevate.css">`)
}

func TestGetFrameworkImports_Unsupported(t *testing.T) {
	require.Equal(t, UnsupportedImports, GetFrameworkImports("ember", []string{"ElvtButton"}))
	require.Equal(t, "// Framework not supported", UnsupportedImports)
}

func TestGetFrameworkImports_EmptyComponentList(t *testing.T) {
	require.Equal(t,
		"// React wrappers\nimport {  } from '@inform-elevate/elevate-core-ui/react';",
		GetFrameworkImports(framework.React, nil))
}

func TestImportNames(t *testing.T) {
	tags := []string{"elvt-button", "elvt-icon-button", "elvt-button"}

	require.Equal(t, []string{"ElvtButton", "ElvtIconButton"}, ImportNames(framework.React, tags))
	require.Equal(t, []string{"ElvtButton", "ElvtIconButton"}, ImportNames(framework.Svelte, tags))
	require.Equal(t, []string{"elvt-button", "elvt-icon-button"}, ImportNames(framework.Vue, tags))
	require.Equal(t, []string{}, ImportNames(framework.React, nil))
}
