package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	showcaseLanguage = "html"
	showcaseFlag     = "showcase"
)

var titleAttr = regexp.MustCompile(`title="([^"]*)"`)

// Block is a fenced showcase example found in a Markdown body.
type Block struct {
	// Index is the block's position among the document's showcases, from 0.
	Index int
	Title string
	// Source is the raw markup between the fences.
	Source string
	// Line is the 1-based line of the opening fence.
	Line int
}

// ExtractShowcases returns the fenced code blocks marked as showcases, in
// document order. A showcase fence looks like:
//
//	```html showcase title="Primary button"
func ExtractShowcases(body []byte) []Block {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	blocks := make([]Block, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		fence, ok := n.(*gmast.FencedCodeBlock)
		if !ok || fence.Info == nil {
			return gmast.WalkContinue, nil
		}

		info := string(fence.Info.Segment.Value(body))
		title, isShowcase := parseInfo(info)
		if !isShowcase {
			return gmast.WalkSkipChildren, nil
		}

		var src bytes.Buffer
		lines := fence.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			src.Write(seg.Value(body))
		}

		blocks = append(blocks, Block{
			Index:  len(blocks),
			Title:  title,
			Source: src.String(),
			Line:   bytes.Count(body[:fence.Info.Segment.Start], []byte("\n")) + 1,
		})
		return gmast.WalkSkipChildren, nil
	})
	return blocks
}

// parseInfo reads a fence info string. The language must be html and the
// showcase flag must appear among the remaining words.
func parseInfo(info string) (title string, showcase bool) {
	if m := titleAttr.FindStringSubmatch(info); m != nil {
		title = strings.TrimSpace(m[1])
		info = titleAttr.ReplaceAllString(info, "")
	}
	fields := strings.Fields(info)
	if len(fields) == 0 || fields[0] != showcaseLanguage {
		return "", false
	}
	for _, f := range fields[1:] {
		if strings.Trim(f, "{}") == showcaseFlag {
			return title, true
		}
	}
	return "", false
}
