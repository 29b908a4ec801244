package commands

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/markup"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
)

// TransformCmd implements the 'transform' command.
type TransformCmd struct {
	File      string `arg:"" optional:"" default:"-" help:"Markup file to transform, or - for standard input"`
	Framework string `short:"f" default:"react" help:"Target framework (webcomponent, react, angular, vue, svelte, html)"`
	All       bool   `help:"Render every framework"`
	Imports   bool   `short:"i" help:"Prepend the framework's import snippet"`
	JSON      bool   `name:"json" help:"Emit JSON instead of code"`
	Raw       bool   `help:"Rewrite tags and attributes textually instead of parsing the markup"`
}

// TransformOutput is one framework rendering in --json output.
type TransformOutput struct {
	Framework  string   `json:"framework"`
	Language   string   `json:"language"`
	Code       string   `json:"code"`
	Imports    string   `json:"imports"`
	Components []string `json:"components"`
	Fallback   bool     `json:"fallback,omitempty"`
}

func (t *TransformCmd) Run(g *Global, _ *CLI) error {
	src, err := readInput(g, t.File)
	if err != nil {
		return err
	}

	frameworks := framework.All()
	if !t.All {
		fw, err := framework.Parse(t.Framework)
		if err != nil {
			return err
		}
		frameworks = []framework.ID{fw}
	}

	outputs, err := t.render(g, src, frameworks)
	if err != nil {
		return err
	}
	return t.write(stdout(g), outputs)
}

func (t *TransformCmd) render(g *Global, src string, frameworks []framework.ID) ([]TransformOutput, error) {
	out := make([]TransformOutput, 0, len(frameworks))

	if t.Raw {
		tags := transformer.ExtractComponentNamesFromCode(src)
		for _, fw := range frameworks {
			profile, _ := framework.Lookup(fw)
			out = append(out, TransformOutput{
				Framework:  string(fw),
				Language:   profile.SyntaxLanguage,
				Code:       transformer.TransformWebComponentCode(strings.TrimSpace(src), fw),
				Imports:    transformer.GetFrameworkImports(fw, tags),
				Components: tags,
			})
		}
		return out, nil
	}

	nodes, err := markup.Parse(src)
	if err != nil {
		return nil, err
	}
	components := transformer.ExtractComponentNames(nodes)
	tr := transformer.New(logger(g), nil)
	for _, fw := range frameworks {
		profile, _ := framework.Lookup(fw)
		res := tr.Transform(nodes, fw)
		out = append(out, TransformOutput{
			Framework:  string(fw),
			Language:   profile.SyntaxLanguage,
			Code:       res.String(),
			Imports:    transformer.GetFrameworkImports(fw, transformer.ImportNames(fw, components)),
			Components: components,
			Fallback:   !res.OK(),
		})
	}
	return out, nil
}

func (t *TransformCmd) write(w io.Writer, outputs []TransformOutput) error {
	if t.JSON {
		var v any = outputs
		if len(outputs) == 1 && !t.All {
			v = outputs[0]
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for i, o := range outputs {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		if t.All {
			profile, _ := framework.Lookup(framework.ID(o.Framework))
			_, _ = fmt.Fprintf(w, "// ----- %s -----\n", profile.Label)
		}
		if t.Imports {
			_, _ = fmt.Fprintln(w, o.Imports)
			_, _ = fmt.Fprintln(w)
		}
		if _, err := fmt.Fprintln(w, o.Code); err != nil {
			return err
		}
	}
	return nil
}
