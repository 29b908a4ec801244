package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
)

func run(t *testing.T, stdinText string, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("elvtdocs"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	g := &Global{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:    &out,
		In:     strings.NewReader(stdinText),
	}
	err = kctx.Run(g, &cli)
	return out.String(), err
}

const buttonMarkup = `<elvt-button tone="primary">Click me</elvt-button>`

func TestTransform_Stdin(t *testing.T) {
	out, err := run(t, buttonMarkup, "transform", "--framework", "react")
	require.NoError(t, err)
	require.Equal(t, "<ElvtButton tone=\"primary\">\n  Click me\n</ElvtButton>\n", out)
}

func TestTransform_FileWithImports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.html")
	require.NoError(t, os.WriteFile(path, []byte(buttonMarkup), 0o644))

	out, err := run(t, "", "transform", path, "-f", "svelte", "--imports")
	require.NoError(t, err)
	require.Equal(t, "// Svelte components\n"+
		"import { ElvtButton } from '@inform-elevate/elevate-core-ui/svelte';\n"+
		"\n"+
		"<elvt-button tone=\"primary\">\n  Click me\n</elvt-button>\n", out)
}

func TestTransform_JSON(t *testing.T) {
	out, err := run(t, buttonMarkup, "transform", "-f", "angular", "--json")
	require.NoError(t, err)

	var got TransformOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "angular", got.Framework)
	require.Equal(t, "typescript", got.Language)
	require.Equal(t, []string{"elvt-button"}, got.Components)
	require.Contains(t, got.Imports, "ElevateModule")
}

func TestTransform_All(t *testing.T) {
	out, err := run(t, buttonMarkup, "transform", "--all", "--json")
	require.NoError(t, err)

	var got []TransformOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 6)
	require.Equal(t, "webcomponent", got[0].Framework)

	text, err := run(t, buttonMarkup, "transform", "--all")
	require.NoError(t, err)
	require.Contains(t, text, "// ----- React -----\n<ElvtButton")
	require.Contains(t, text, "// ----- HTML -----\n<elvt-button")
}

func TestTransform_Raw(t *testing.T) {
	out, err := run(t, `<elvt-button icon-position="left">Go</elvt-button>`+"\n", "transform", "--raw", "-f", "react")
	require.NoError(t, err)
	require.Equal(t, "<ElvtButton iconPosition=\"left\">Go</ElvtButton>\n", out)
}

func TestTransform_Errors(t *testing.T) {
	_, err := run(t, buttonMarkup, "transform", "-f", "ember")
	require.Error(t, err)
	require.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryValidation))

	_, err = run(t, "", "transform", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	require.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryNotFound))
}

func TestImports(t *testing.T) {
	out, err := run(t, "", "imports", "-f", "react", "elvt-button", "elvt-icon", "elvt-button")
	require.NoError(t, err)
	require.Equal(t, "// React wrappers\nimport { ElvtButton, ElvtIcon } from '@inform-elevate/elevate-core-ui/react';\n", out)
}

func TestComponents(t *testing.T) {
	src := `<elvt-card><elvt-button>A</elvt-button><elvt-icon-button icon="x" /></elvt-card>`

	out, err := run(t, src, "components")
	require.NoError(t, err)
	require.Equal(t, "elvt-card\nelvt-button\nelvt-icon-button\n", out)

	out, err = run(t, src, "components", "-f", "react")
	require.NoError(t, err)
	require.Equal(t, "ElvtCard\nElvtButton\nElvtIconButton\n", out)
}

func TestFrameworks(t *testing.T) {
	out, err := run(t, "", "frameworks")
	require.NoError(t, err)
	require.Contains(t, out, "webcomponent (default)")
	require.Contains(t, out, "onEvent={handler}")
	require.Equal(t, 7, strings.Count(out, "\n"))
}

func TestInitAndBuild(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := run(t, "", "init")
	require.NoError(t, err)
	require.Contains(t, out, "initialized successfully")
	require.FileExists(t, filepath.Join(dir, "elvtdocs.yaml"))

	_, err = run(t, "", "init")
	require.Error(t, err)
	require.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryConfig))

	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "buttons.md"),
		[]byte("# Buttons\n\n```html showcase\n"+buttonMarkup+"\n```\n"), 0o644))

	out, err = run(t, "", "build", "--format", "markdown", "-o", "public")
	require.NoError(t, err)
	require.Equal(t, "Rendered 1 examples from 1 pages (1 written, 0 unchanged, 0 failed)\n", out)
	require.FileExists(t, filepath.Join(dir, "public", "buttons.md"))

	_, err = run(t, "", "build", "--format", "xml")
	require.Error(t, err)
	require.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryValidation))
}

func TestBuild_MissingDocs(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := run(t, "", "build")
	require.Error(t, err)
	require.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryNotFound))
}
