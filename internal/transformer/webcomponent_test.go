package transformer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

func TestTransformWebComponentCode_React(t *testing.T) {
	code := `<elvt-button variant="primary" icon-position="left" style="margin-top: 4px; font-size: 12px">Go</elvt-button>`

	require.Equal(t,
		`<ElvtButton variant="primary" iconPosition="left" style={{ marginTop: '4px', fontSize: '12px' }}>Go</ElvtButton>`,
		TransformWebComponentCode(code, framework.React))
}

func TestTransformWebComponentCode_ReactAdjacentBareAttributes(t *testing.T) {
	code := `<elvt-chip is-open has-icon></elvt-chip>`
	require.Equal(t, `<ElvtChip isOpen hasIcon></ElvtChip>`, TransformWebComponentCode(code, framework.React))

	selfClosing := `<elvt-icon icon-name="x" />`
	require.Equal(t, `<ElvtIcon iconName="x" />`, TransformWebComponentCode(selfClosing, framework.React))
}

func TestTransformWebComponentCode_Nested(t *testing.T) {
	code := "<elvt-card>\n  <elvt-card-header>Title</elvt-card-header>\n</elvt-card>"
	require.Equal(t,
		"<ElvtCard>\n  <ElvtCardHeader>Title</ElvtCardHeader>\n</ElvtCard>",
		TransformWebComponentCode(code, framework.React))
}

func TestTransformWebComponentCode_PassThrough(t *testing.T) {
	code := `<elvt-button icon-position="left" style="color: red">Go</elvt-button>`

	for _, fw := range []framework.ID{framework.WebComponent, framework.HTML, framework.Vue, framework.Angular, framework.Svelte} {
		require.Equal(t, code, TransformWebComponentCode(code, fw), fw)
	}
	require.Equal(t, code, TransformWebComponentCode(code, "unknown"))
}
