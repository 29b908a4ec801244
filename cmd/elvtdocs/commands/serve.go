package commands

import (
	"github.com/gin-gonic/gin"

	"git.home.luguber.info/inful/elvtdocs/internal/server"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (overrides server.addr)"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}
	if !root.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signalContext()
	defer cancel()

	recorder, reg := newRecorder(cfg)
	srv := server.New(cfg, server.Options{Logger: logger(g), Recorder: recorder, Registry: reg})
	return srv.Run(ctx)
}
