package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/logfields"
)

// requestLogger logs method, path, status and duration of every request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			slog.String("method", c.Request.Method),
			logfields.Path(c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			logfields.Since(start),
			slog.String("remote_addr", c.ClientIP()))
	}
}

// recovery turns handler panics into a structured 500 response.
func recovery(logger *slog.Logger, adapter *foundationerrors.HTTPErrorAdapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("HTTP handler panic",
					logfields.Error(fmt.Errorf("%v", r)),
					logfields.Path(c.Request.URL.Path),
					slog.String("method", c.Request.Method))

				panicErr := foundationerrors.InternalError("internal server error").
					WithContext("path", c.Request.URL.Path).
					Build()
				adapter.WriteErrorResponse(c.Writer, c.Request, panicErr)
				c.Abort()
			}
		}()
		c.Next()
	}
}
