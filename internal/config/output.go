package config

import "git.home.luguber.info/inful/elvtdocs/internal/foundation/normalization"

// OutputFormat selects how showcase pages are written.
type OutputFormat string

const (
	// OutputFormatJSON writes one <doc>.showcase.json file per page.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatMarkdown writes one generated Markdown page per source page.
	OutputFormatMarkdown OutputFormat = "markdown"
)

var outputFormatNormalizer = normalization.NewEnumNormalizer("output format", map[string]OutputFormat{
	"json":     OutputFormatJSON,
	"markdown": OutputFormatMarkdown,
	"md":       OutputFormatMarkdown,
}, OutputFormatJSON)

// NormalizeOutputFormat maps raw onto an OutputFormat, defaulting to json.
func NormalizeOutputFormat(raw string) OutputFormat {
	return outputFormatNormalizer.Normalize(raw)
}

// ParseOutputFormat is NormalizeOutputFormat that rejects unknown input.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.NormalizeWithValidation(raw)
}
