package transformer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

const (
	nativePrefix       = "elvt-"
	nativePascalPrefix = "Elvt"
)

// HasNativePrefix reports whether name belongs to the design system, in either
// its tag (elvt-) or PascalCase (Elvt) spelling.
func HasNativePrefix(name string) bool {
	return strings.HasPrefix(name, nativePrefix) || strings.HasPrefix(name, nativePascalPrefix)
}

// TransformComponentName renames a design-system tag for fw. The elvt- prefix
// is stripped and replaced by the profile prefix; React additionally
// PascalCases the remainder. Unknown frameworks return name unchanged.
func TransformComponentName(name string, fw framework.ID) string {
	profile, ok := framework.Lookup(fw)
	if !ok {
		return name
	}
	return transformComponentName(name, fw, profile)
}

func transformComponentName(name string, fw framework.ID, profile framework.Profile) string {
	base := strings.TrimPrefix(name, nativePrefix)
	if fw == framework.React {
		return profile.ComponentPrefix + PascalCase(base)
	}
	return profile.ComponentPrefix + base
}

// PascalCase splits s on '-' and upper-cases the first letter of every segment.
func PascalCase(s string) string {
	// Casers carry state, so each call gets its own.
	upper := cases.Upper(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range strings.Split(s, "-") {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteString(upper.String(string(r)))
		b.WriteString(seg[size:])
	}
	return b.String()
}

// ToKebabCase replaces every ASCII upper-case letter with '-' and its lower-case form.
func ToKebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ToCamelCase replaces every '-' followed by an ASCII lower-case letter with
// that letter upper-cased. It is the inverse of ToKebabCase.
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func convertAttributeName(name string, style framework.AttributeStyle) string {
	if style == framework.KebabCase {
		return ToKebabCase(name)
	}
	return ToCamelCase(name)
}
