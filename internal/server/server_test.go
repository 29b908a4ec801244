package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/elvtdocs/internal/config"
	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/metrics"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(config.Default(), opts)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = bytes.NewBufferString(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[HealthResponse](t, rec).Status)
}

func TestFrameworks(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodGet, "/api/frameworks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]FrameworkResponse](t, rec)
	require.Len(t, list, 6)
	require.Equal(t, "webcomponent", list[0].ID)
	require.True(t, list[0].Default)
	require.Equal(t, FrameworkResponse{
		ID:              "react",
		Label:           "React",
		Language:        "jsx",
		Prefix:          "Elvt",
		AttributeStyle:  "camelCase",
		ClosingTagStyle: "self-closing",
		EventHandling:   "onEvent={handler}",
		SlotSyntax:      `slot="name"`,
	}, list[1])
}

func TestTransform(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/api/transform", TransformRequest{
		Markup:    `<elvt-button tone="primary">Click me</elvt-button>`,
		Framework: "React",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[TransformResponse](t, rec)
	require.Equal(t, TransformResponse{
		Framework:  "react",
		Code:       "<ElvtButton tone=\"primary\">\n  Click me\n</ElvtButton>",
		Imports:    "// React wrappers\nimport { ElvtButton } from '@inform-elevate/elevate-core-ui/react';",
		Components: []string{"elvt-button"},
		Language:   "jsx",
	}, got)
}

func TestTransform_DefaultFramework(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := do(t, s.Handler(), http.MethodPost, "/api/transform", TransformRequest{Markup: `<elvt-icon name="x" />`})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[TransformResponse](t, rec)
	require.Equal(t, "webcomponent", got.Framework)
	require.Equal(t, `<elvt-icon name="x"></elvt-icon>`, got.Code)
}

func TestTransform_BadRequests(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := do(t, s.Handler(), http.MethodPost, "/api/transform", TransformRequest{Markup: "<p></p>", Framework: "ember"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decode[foundationerrors.HTTPErrorResponse](t, rec)
	require.Equal(t, "validation", payload.Code)
	require.Equal(t, "ember", payload.Details["framework"])

	rec = do(t, s.Handler(), http.MethodPost, "/api/transform", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s.Handler(), http.MethodPost, "/api/transform", TransformRequest{Framework: "react"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImports(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := do(t, s.Handler(), http.MethodPost, "/api/imports", ImportsRequest{
		Framework:  "svelte",
		Components: []string{"ElvtCard"},
		Tags:       []string{"elvt-icon-button", "elvt-card"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"// Svelte components\nimport { ElvtCard, ElvtIconButton } from '@inform-elevate/elevate-core-ui/svelte';",
		decode[ImportsResponse](t, rec).Imports)

	rec = do(t, s.Handler(), http.MethodPost, "/api/imports", ImportsRequest{Framework: "ember"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, transformer.UnsupportedImports, decode[ImportsResponse](t, rec).Imports)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Server.AllowedOrigins = []string{"https://docs.example.com"}
	s := New(cfg, Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://docs.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, "https://docs.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	s := newTestServer(t, Options{Recorder: rec, Registry: reg})

	resp := do(t, s.Handler(), http.MethodPost, "/api/transform", TransformRequest{Markup: "<elvt-badge>1</elvt-badge>", Framework: "vue"})
	require.Equal(t, http.StatusOK, resp.Code)

	out := do(t, s.Handler(), http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, out.Code)
	require.Contains(t, out.Body.String(), "elvtdocs_transform_results_total")

	noMetrics := newTestServer(t, Options{})
	require.Equal(t, http.StatusNotFound, do(t, noMetrics.Handler(), http.MethodGet, "/metrics", nil).Code)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, Options{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
