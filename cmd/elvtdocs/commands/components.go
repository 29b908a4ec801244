package commands

import (
	"fmt"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/markup"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
)

// ComponentsCmd implements the 'components' command.
type ComponentsCmd struct {
	File      string `arg:"" optional:"" default:"-" help:"Markup file, or - for standard input"`
	Framework string `short:"f" help:"Print the names a framework imports instead of tag names"`
}

func (c *ComponentsCmd) Run(g *Global, _ *CLI) error {
	src, err := readInput(g, c.File)
	if err != nil {
		return err
	}
	nodes, err := markup.Parse(src)
	if err != nil {
		return err
	}

	names := transformer.ExtractComponentNames(nodes)
	if c.Framework != "" {
		fw, err := framework.Parse(c.Framework)
		if err != nil {
			return err
		}
		names = transformer.ImportNames(fw, names)
	}

	w := stdout(g)
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
