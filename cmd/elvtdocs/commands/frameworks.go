package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

// FrameworksCmd implements the 'frameworks' command.
type FrameworksCmd struct{}

func (f *FrameworksCmd) Run(g *Global, _ *CLI) error {
	tw := tabwriter.NewWriter(stdout(g), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tLABEL\tPREFIX\tATTRIBUTES\tCLOSING\tEVENTS\tLANGUAGE")
	for _, id := range framework.All() {
		p, _ := framework.Lookup(id)
		name := string(id)
		if id == framework.Default {
			name += " (default)"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			name, p.Label, p.ComponentPrefix, p.AttributeStyle, p.ClosingTagStyle, p.EventHandling, p.SyntaxLanguage)
	}
	return tw.Flush()
}
