// Package frontmatter reads and writes the YAML header of documentation pages.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ErrMissingClosingDelimiter indicates the page opened a YAML header but never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a page split into its header fields and Markdown body.
type Document struct {
	Fields map[string]any
	Body   []byte
	// Newline is the line ending detected in the source ("\n" or "\r\n").
	Newline string
}

// Parse splits content into header fields and body. Pages without a header
// yield empty Fields and the whole content as Body.
func Parse(content []byte) (*Document, error) {
	fm, body, _, err := Split(content)
	if err != nil {
		return nil, err
	}
	fields, err := ParseYAML(fm)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return &Document{Fields: fields, Body: body, Newline: detectNewline(content)}, nil
}

// String returns a header field as trimmed text, or "" if absent.
func (d *Document) String(key string) string {
	v, ok := d.Fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Title returns the page title field.
func (d *Document) Title() string { return d.String("title") }

// Bytes renders the document back to page content. An empty field set
// renders the body alone.
func (d *Document) Bytes() ([]byte, error) {
	if len(d.Fields) == 0 {
		return d.Body, nil
	}
	fm, err := SerializeYAML(d.Fields, d.Newline)
	if err != nil {
		return nil, err
	}
	return Join(fm, d.Body, d.Newline), nil
}

// Split separates a `---` delimited YAML header from the body. had is false
// when content does not open with a delimiter, in which case body is content.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closeSeq := []byte(nl + delimiter + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// Join wraps fm in delimiters and prepends it to body.
func Join(fm []byte, body []byte, newline string) []byte {
	if newline == "" {
		newline = "\n"
	}
	line := delimiter + newline

	out := make([]byte, 0, 2*len(line)+len(fm)+len(body))
	out = append(out, line...)
	out = append(out, fm...)
	out = append(out, line...)
	return append(out, body...)
}

// ParseYAML decodes a raw header (without delimiters). Empty input yields an
// empty map.
func ParseYAML(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
