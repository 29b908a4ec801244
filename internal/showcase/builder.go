package showcase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/elvtdocs/internal/config"
	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/frontmatter"
	"git.home.luguber.info/inful/elvtdocs/internal/logfields"
	"git.home.luguber.info/inful/elvtdocs/internal/markdown"
	"git.home.luguber.info/inful/elvtdocs/internal/markup"
	"git.home.luguber.info/inful/elvtdocs/internal/metrics"
	"git.home.luguber.info/inful/elvtdocs/internal/transformer"
)

// Builder renders the showcase examples of a docs tree.
type Builder struct {
	cfg         *config.Config
	transformer *transformer.Transformer
	recorder    metrics.Recorder
	logger      *slog.Logger
	writer      pageWriter
}

// NewBuilder creates a Builder for cfg. Nil logger and recorder fall back to
// slog.Default and a NoopRecorder.
func NewBuilder(cfg *config.Config, logger *slog.Logger, recorder metrics.Recorder) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	var w pageWriter = jsonWriter{}
	if cfg.Output.Format == config.OutputFormatMarkdown {
		w = markdownWriter{}
	}
	return &Builder{
		cfg:         cfg,
		transformer: transformer.New(logger, recorder),
		recorder:    recorder,
		logger:      logger,
		writer:      w,
	}
}

// Build renders every page below the docs directory and writes the results.
// Example failures are collected in the report; only discovery, output and
// cancellation errors abort the build.
func (b *Builder) Build(ctx context.Context) (report *Report, err error) {
	start := time.Now()
	report = &Report{}
	defer func() {
		report.Duration = time.Since(start)
		b.recorder.ObserveBuildDuration(report.Duration)
		b.recorder.IncBuildOutcome(report.outcome(err))
	}()

	docs, err := Discover(b.cfg.DocsDir)
	if err != nil {
		return report, err
	}
	report.Docs = len(docs)

	if b.cfg.Output.Clean {
		if err := os.RemoveAll(b.cfg.Output.Directory); err != nil {
			return report, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to clean output directory").
				WithContext("path", b.cfg.Output.Directory).
				Build()
		}
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			b.logger.Warn("Showcase build canceled", logfields.Doc(doc))
			return report, err
		}

		content, err := os.ReadFile(filepath.Join(b.cfg.DocsDir, filepath.FromSlash(doc)))
		if err != nil {
			return report, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to read document").
				WithContext("doc", doc).
				Build()
		}

		page, failures, err := b.BuildPage(doc, content)
		if err != nil {
			return report, err
		}
		report.Failures = append(report.Failures, failures...)
		if len(page.Examples) == 0 {
			continue
		}
		report.Pages++
		report.Examples += len(page.Examples)
		b.recorder.IncShowcases(len(page.Examples))

		changed, err := b.writer.write(b.cfg.Output.Directory, page)
		if err != nil {
			return report, err
		}
		if changed {
			report.Written++
		} else {
			report.Unchanged++
		}
	}

	b.logger.Info("Showcase build complete",
		slog.Int("docs", report.Docs),
		slog.Int("pages", report.Pages),
		logfields.Count(report.Examples),
		slog.Int("failures", len(report.Failures)),
		logfields.Since(start))
	return report, nil
}

// BuildPage renders the showcase examples of a single document. doc is the
// slash-separated path used for ids and output names.
func (b *Builder) BuildPage(doc string, content []byte) (*Page, []Failure, error) {
	parsed, err := frontmatter.Parse(content)
	if err != nil {
		return nil, nil, foundationerrors.WrapError(err, foundationerrors.CategoryMarkup, "failed to read document frontmatter").
			WithContext("doc", doc).
			Build()
	}

	page := &Page{
		Doc:      doc,
		UID:      pageUID(doc),
		Title:    parsed.Title(),
		Examples: []Example{},
	}
	if page.Title == "" {
		page.Title = titleFromPath(doc)
	}

	var failures []Failure
	for _, block := range markdown.ExtractShowcases(parsed.Body) {
		ex := Example{
			ID:     exampleID(doc, block.Index),
			Index:  block.Index,
			Title:  block.Title,
			Line:   block.Line,
			Source: block.Source,
		}

		nodes, err := markup.Parse(block.Source)
		if err != nil {
			b.logger.Error("Failed to parse showcase markup",
				logfields.Doc(doc),
				logfields.Example(ex.ID),
				logfields.Error(err))
			ex.Error = err.Error()
			ex.Components = []string{}
			failures = append(failures, Failure{Doc: doc, Example: block.Index, Line: block.Line, Err: err})
			page.Examples = append(page.Examples, ex)
			continue
		}

		ex.Components = transformer.ExtractComponentNames(nodes)
		ex.Variants = b.variants(nodes, ex.Components)
		page.Examples = append(page.Examples, ex)
	}
	return page, failures, nil
}

func (b *Builder) variants(nodes []any, components []string) []Variant {
	out := make([]Variant, 0, len(b.cfg.Frameworks))
	for _, fw := range b.cfg.Frameworks {
		profile, _ := framework.Lookup(fw)
		res := b.transformer.Transform(nodes, fw)
		out = append(out, Variant{
			Framework: fw,
			Label:     profile.Label,
			Language:  profile.SyntaxLanguage,
			Code:      res.String(),
			Imports:   transformer.GetFrameworkImports(fw, transformer.ImportNames(fw, components)),
			Fallback:  !res.OK(),
		})
	}
	return out
}

// titleFromPath derives a page title from its file name: buttons/icon-button.md
// becomes "Icon Button".
func titleFromPath(doc string) string {
	name := strings.TrimSuffix(path.Base(doc), path.Ext(doc))
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = transformer.PascalCase(w)
	}
	return strings.Join(words, " ")
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
