package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/elvtdocs/internal/config"
	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/logfields"
	"git.home.luguber.info/inful/elvtdocs/internal/showcase"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	DocsDir string `name:"docs" help:"Docs directory (overrides docs_dir)"`
	Output  string `short:"o" help:"Output directory (overrides output.directory)"`
	Format  string `help:"Output format: json or markdown (overrides output.format)"`
	Clean   bool   `help:"Remove the output directory first"`
	Strict  bool   `help:"Fail when any example cannot be rendered"`
}

// apply folds command-line overrides into cfg.
func (b *BuildCmd) apply(cfg *config.Config) error {
	if b.DocsDir != "" {
		cfg.DocsDir = b.DocsDir
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Format != "" {
		f, err := config.ParseOutputFormat(b.Format)
		if err != nil {
			return foundationerrors.ValidationError("invalid output format").
				WithCause(err).
				WithContext("format", b.Format).
				Build()
		}
		cfg.Output.Format = f
	}
	if b.Clean {
		cfg.Output.Clean = true
	}
	return nil
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if err := b.apply(cfg); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	recorder, _ := newRecorder(cfg)
	return runBuild(ctx, g, cfg, showcase.NewBuilder(cfg, logger(g), recorder), b.Strict)
}

func runBuild(ctx context.Context, g *Global, cfg *config.Config, builder *showcase.Builder, strict bool) error {
	log := logger(g)
	log.Info("Starting showcase build",
		logfields.Path(cfg.DocsDir),
		slog.String("output", cfg.Output.Directory),
		slog.String("format", string(cfg.Output.Format)))

	report, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	for _, f := range report.Failures {
		log.Warn("Example could not be rendered",
			logfields.Doc(f.Doc),
			slog.Int("line", f.Line),
			logfields.Error(f.Err))
	}

	_, _ = fmt.Fprintf(stdout(g), "Rendered %d examples from %d pages (%d written, %d unchanged, %d failed)\n",
		report.Examples, report.Pages, report.Written, report.Unchanged, len(report.Failures))

	if strict && len(report.Failures) > 0 {
		return foundationerrors.MarkupError("examples failed to render").
			WithContext("failures", len(report.Failures)).
			Build()
	}
	return nil
}
