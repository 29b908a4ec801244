package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/elvtdocs/internal/showcase"
	"git.home.luguber.info/inful/elvtdocs/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	BuildCmd `embed:""`
	Debounce time.Duration `default:"300ms" help:"Quiet period before rebuilding"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if err := w.apply(cfg); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	recorder, _ := newRecorder(cfg)
	builder := showcase.NewBuilder(cfg, logger(g), recorder)
	if err := runBuild(ctx, g, cfg, builder, w.Strict); err != nil {
		return err
	}

	// Later builds must not wipe output written by the first one mid-edit.
	cfg.Output.Clean = false
	watcher, err := watch.New(cfg.DocsDir, func(ctx context.Context, _ []string) error {
		return runBuild(ctx, g, cfg, builder, false)
	}, watch.WithDebounce(w.Debounce), watch.WithLogger(logger(g)))
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
