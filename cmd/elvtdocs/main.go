package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/elvtdocs/cmd/elvtdocs/commands"
	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("elvtdocs"),
		kong.Description("Render design-system examples as React, Angular, Vue, Svelte and HTML code."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout, In: os.Stdin}
	if err := parser.Run(global, cli); err != nil {
		adapter := foundationerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		os.Exit(adapter.HandleError(err))
	}
}
