package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/elvtdocs/internal/config"
	"git.home.luguber.info/inful/elvtdocs/internal/metrics"
)

// Global is shared state passed to every command's Run.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
	In     io.Reader
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"elvtdocs.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Transform  TransformCmd  `cmd:"" help:"Transform example markup into framework code"`
	Imports    ImportsCmd    `cmd:"" help:"Print the import snippet for a framework"`
	Components ComponentsCmd `cmd:"" help:"List the design-system components used by example markup"`
	Build      BuildCmd      `cmd:"" help:"Render showcase examples of the docs tree"`
	Serve      ServeCmd      `cmd:"" help:"Serve the transform HTTP API"`
	Watch      WatchCmd      `cmd:"" help:"Build, then rebuild whenever docs change"`
	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
	Frameworks FrameworksCmd `cmd:"" help:"List supported frameworks and their syntax rules"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the configuration and reinstalls the logger with the
// configured level and format. --verbose still forces debug.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Logging.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)

	if cfg.Source != "" {
		g.Logger.Debug("Loaded configuration", slog.String("path", cfg.Source))
	}
	return cfg, nil
}

// newRecorder returns the Prometheus recorder and its registry when metrics
// are enabled, and a NoopRecorder otherwise.
func newRecorder(cfg *config.Config) (metrics.Recorder, *prom.Registry) {
	if !cfg.Metrics.Enabled {
		return metrics.NoopRecorder{}, nil
	}
	reg := prom.NewRegistry()
	return metrics.NewPrometheusRecorder(reg), reg
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func logger(g *Global) *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func stdout(g *Global) io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func stdin(g *Global) io.Reader {
	if g == nil || g.In == nil {
		return os.Stdin
	}
	return g.In
}
