// Package server exposes the transformer over HTTP for the documentation
// site's code-display widget.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/elvtdocs/internal/config"
	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/metrics"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
)

const shutdownTimeout = 5 * time.Second

// Options carries optional dependencies. Zero values are replaced by defaults.
type Options struct {
	Logger   *slog.Logger
	Recorder metrics.Recorder
	// Registry enables GET /metrics when set.
	Registry *prom.Registry
}

// Server serves the transform API.
type Server struct {
	cfg          *config.Config
	engine       *gin.Engine
	transformer  *transformer.Transformer
	errorAdapter *foundationerrors.HTTPErrorAdapter
	logger       *slog.Logger
}

// New wires routes and middleware for cfg.
func New(cfg *config.Config, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}

	s := &Server{
		cfg:          cfg,
		engine:       gin.New(),
		transformer:  transformer.New(opts.Logger, opts.Recorder),
		errorAdapter: foundationerrors.NewHTTPErrorAdapter(opts.Logger),
		logger:       opts.Logger,
	}

	s.engine.Use(requestLogger(s.logger), recovery(s.logger, s.errorAdapter))
	s.engine.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	s.engine.GET("/healthz", s.handleHealth)
	api := s.engine.Group("/api")
	{
		api.GET("/frameworks", s.handleFrameworks)
		api.POST("/transform", s.handleTransform)
		api.POST("/imports", s.handleImports)
	}
	if opts.Registry != nil {
		s.engine.GET("/metrics", gin.WrapH(metrics.HTTPHandler(opts.Registry)))
	}
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryRuntime, "failed to listen").
			WithContext("addr", s.cfg.Server.Addr).
			Build()
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP API listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return foundationerrors.WrapError(err, foundationerrors.CategoryRuntime, "HTTP server failed").Build()
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("Shutting down HTTP API")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryRuntime, "HTTP server shutdown failed").Build()
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
