package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/markup"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
	"git.home.luguber.info/inful/elvtdocs/internal/version"
)

func (s *Server) writeError(c *gin.Context, err error) {
	s.errorAdapter.WriteErrorResponse(c.Writer, c.Request, err)
	c.Abort()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version.Version})
}

func (s *Server) handleFrameworks(c *gin.Context) {
	out := make([]FrameworkResponse, 0, len(framework.All()))
	for _, id := range framework.All() {
		p, _ := framework.Lookup(id)
		out = append(out, FrameworkResponse{
			ID:              string(id),
			Label:           p.Label,
			Language:        p.SyntaxLanguage,
			Prefix:          p.ComponentPrefix,
			AttributeStyle:  string(p.AttributeStyle),
			ClosingTagStyle: string(p.ClosingTagStyle),
			EventHandling:   p.EventHandling,
			SlotSyntax:      p.SlotSyntax,
			Default:         id == framework.Default,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleTransform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, foundationerrors.ValidationError("invalid request body").WithCause(err).Build())
		return
	}

	fw := framework.Default
	if strings.TrimSpace(req.Framework) != "" {
		parsed, err := framework.Parse(req.Framework)
		if err != nil {
			s.writeError(c, err)
			return
		}
		fw = parsed
	}

	nodes, err := markup.Parse(req.Markup)
	if err != nil {
		s.writeError(c, err)
		return
	}

	res := s.transformer.Transform(nodes, fw)
	components := transformer.ExtractComponentNames(nodes)
	profile, _ := framework.Lookup(fw)
	c.JSON(http.StatusOK, TransformResponse{
		Framework:  string(fw),
		Code:       res.String(),
		Imports:    transformer.GetFrameworkImports(fw, transformer.ImportNames(fw, components)),
		Components: components,
		Language:   profile.SyntaxLanguage,
		Fallback:   !res.OK(),
	})
}

func (s *Server) handleImports(c *gin.Context) {
	var req ImportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, foundationerrors.ValidationError("invalid request body").WithCause(err).Build())
		return
	}

	fw, err := framework.Parse(req.Framework)
	if err != nil {
		// Unknown frameworks still get an answer: the unsupported marker.
		c.JSON(http.StatusOK, ImportsResponse{Imports: transformer.UnsupportedImports})
		return
	}

	names := append([]string{}, req.Components...)
	names = append(names, transformer.ImportNames(fw, req.Tags)...)
	c.JSON(http.StatusOK, ImportsResponse{Imports: transformer.GetFrameworkImports(fw, names)})
}
