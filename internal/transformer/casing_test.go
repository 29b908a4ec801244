package transformer

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

func TestTransformComponentName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		fw   framework.ID
		want string
	}{
		{"react pascal", "elvt-icon-button", framework.React, "ElvtIconButton"},
		{"react single", "elvt-button", framework.React, "ElvtButton"},
		{"vue keeps tag", "elvt-icon-button", framework.Vue, "elvt-icon-button"},
		{"angular keeps tag", "elvt-card", framework.Angular, "elvt-card"},
		{"unknown framework", "elvt-card", "solid", "elvt-card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TransformComponentName(tt.in, tt.fw))
		})
	}
}

func TestPascalCase(t *testing.T) {
	require.Equal(t, "IconButton", PascalCase("icon-button"))
	require.Equal(t, "A", PascalCase("a"))
	require.Equal(t, "", PascalCase(""))
	require.Equal(t, "ÉtatBadge", PascalCase("état-badge"))
}

func TestAttributeCasing(t *testing.T) {
	require.Equal(t, "aria-label", ToKebabCase("ariaLabel"))
	require.Equal(t, "icon-position", ToKebabCase("iconPosition"))
	require.Equal(t, "ariaLabel", ToCamelCase("aria-label"))
	require.Equal(t, "tone", ToCamelCase("tone"))
	require.Equal(t, "a-B", ToCamelCase("a--b"))
}

func TestCasingRoundTrip_KebabCamelKebab(t *testing.T) {
	fixed := []string{"", "-", "a", "a-b", "aria-label", "-lead", "trail-", "a--b", "x-y-z"}
	for _, s := range fixed {
		require.Equal(t, s, ToKebabCase(ToCamelCase(s)), s)
	}

	rng := rand.New(rand.NewPCG(7, 11))
	alphabet := []byte("abcxyz-")
	for range 500 {
		b := make([]byte, rng.IntN(12))
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		s := string(b)
		require.Equal(t, s, ToKebabCase(ToCamelCase(s)), s)
	}
}

func TestCasingRoundTrip_CamelKebabCamel(t *testing.T) {
	fixed := []string{"tone", "ariaLabel", "iconPosition", "ABC", "xY"}
	for _, s := range fixed {
		require.Equal(t, s, ToCamelCase(ToKebabCase(s)), s)
	}

	rng := rand.New(rand.NewPCG(3, 5))
	alphabet := []byte("abqzABQZ")
	for range 500 {
		b := make([]byte, rng.IntN(12))
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		s := string(b)
		require.Equal(t, s, ToCamelCase(ToKebabCase(s)), s)
	}
}
