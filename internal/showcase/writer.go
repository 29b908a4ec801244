package showcase

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/frontmatter"
)

// pageWriter persists a rendered page. changed is false when the existing
// output already matched and nothing was written.
type pageWriter interface {
	write(outDir string, page *Page) (changed bool, err error)
}

// OutputPath returns the file a page is written to for the given extension.
func OutputPath(outDir, doc, ext string) string {
	base := strings.TrimSuffix(doc, path.Ext(doc))
	return filepath.Join(outDir, filepath.FromSlash(base)+ext)
}

type jsonWriter struct{}

func (jsonWriter) write(outDir string, page *Page) (bool, error) {
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return false, foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to encode showcase page").
			WithContext("doc", page.Doc).
			Build()
	}
	data = append(data, '\n')

	target := OutputPath(outDir, page.Doc, ".showcase.json")
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	return true, writeFile(target, data)
}

type markdownWriter struct{}

func (markdownWriter) write(outDir string, page *Page) (bool, error) {
	target := OutputPath(outDir, page.Doc, ".md")
	body := []byte(RenderMarkdown(page))
	fields := map[string]any{
		"title":              page.Title,
		frontmatter.UIDField: page.UID,
		"showcase_source":    page.Doc,
	}

	fp, err := frontmatter.Fingerprint(fields, body)
	if err != nil {
		return false, foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to fingerprint showcase page").
			WithContext("doc", page.Doc).
			Build()
	}
	if existing, err := os.ReadFile(target); err == nil {
		if doc, err := frontmatter.Parse(existing); err == nil && doc.String(frontmatter.FingerprintField) == fp {
			return false, nil
		}
	}

	fields[frontmatter.FingerprintField] = fp
	out, err := (&frontmatter.Document{Fields: fields, Body: body, Newline: "\n"}).Bytes()
	if err != nil {
		return false, foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to render showcase page").
			WithContext("doc", page.Doc).
			Build()
	}
	return true, writeFile(target, out)
}

// RenderMarkdown renders a page body: one section per example with a fenced
// block per framework.
func RenderMarkdown(page *Page) string {
	var b strings.Builder
	b.WriteString("# " + page.Title + "\n")
	for _, ex := range page.Examples {
		title := ex.Title
		if title == "" {
			title = "Example " + strconv.Itoa(ex.Index+1)
		}
		b.WriteString("\n## " + title + "\n\n")
		b.WriteString("<!-- showcase:" + ex.ID + " -->\n")

		if ex.Error != "" {
			b.WriteString("\n> Example could not be rendered: " + ex.Error + "\n")
			continue
		}
		for _, v := range ex.Variants {
			b.WriteString("\n### " + v.Label + "\n\n")
			b.WriteString("```" + v.Language + "\n")
			b.WriteString(v.Imports + "\n\n")
			b.WriteString(v.Code + "\n")
			b.WriteString("```\n")
		}
	}
	return b.String()
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", filepath.Dir(target)).
			Build()
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to write showcase page").
			WithContext("path", target).
			Build()
	}
	return nil
}
