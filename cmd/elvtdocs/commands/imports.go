package commands

import (
	"fmt"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
)

// ImportsCmd implements the 'imports' command.
type ImportsCmd struct {
	Framework string   `short:"f" default:"react" help:"Target framework"`
	Tags      []string `arg:"" optional:"" help:"Design-system tags, e.g. elvt-button"`
}

func (i *ImportsCmd) Run(g *Global, _ *CLI) error {
	fw, err := framework.Parse(i.Framework)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout(g), transformer.GetFrameworkImports(fw, transformer.ImportNames(fw, i.Tags)))
	return err
}
