package transformer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/elvtdocs/internal/vnode"
)

func TestExtractComponentNames(t *testing.T) {
	tree := []any{
		vnode.C("ElvtDialog", nil,
			vnode.H("elvt-button", nil, "OK"),
			vnode.H("div", nil, vnode.H("elvt-button", nil, "Cancel")),
		),
		"text",
		[]any{vnode.H("elvt-icon", nil)},
		vnode.C("Fragment", nil, vnode.H("elvt-tooltip", nil)),
		nil,
	}

	require.Equal(t, []string{"ElvtDialog", "elvt-button", "elvt-icon", "elvt-tooltip"}, ExtractComponentNames(tree))
}

func TestExtractComponentNames_Dedupes(t *testing.T) {
	tree := []any{vnode.H("elvt-button", nil), vnode.H("elvt-button", nil, "again")}
	require.Equal(t, []string{"elvt-button"}, ExtractComponentNames(tree))
}

func TestExtractComponentNames_Empty(t *testing.T) {
	require.Equal(t, []string{}, ExtractComponentNames(nil))
	require.Equal(t, []string{}, ExtractComponentNames([]any{"only text", 42}))
}

func TestExtractComponentNamesFromCode(t *testing.T) {
	code := `<elvt-button tone="primary"><elvt-icon name="x"></elvt-icon></elvt-button>
<elvt-button>Again</elvt-button><div class="elvt-like"></div>`

	require.Equal(t, []string{"ElvtButton", "ElvtIcon"}, ExtractComponentNamesFromCode(code))
	require.Equal(t, []string{}, ExtractComponentNamesFromCode("<div></div>"))
}
