package transformer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/framework"
	"git.home.luguber.info/inful/elvtdocs/internal/logfields"
	"git.home.luguber.info/inful/elvtdocs/internal/metrics"
)

// FallbackComment replaces the output of any transformation that failed.
const FallbackComment = "// Error generating code for this framework"

// Result is the outcome of a transformation. Err is set when Code could not
// be produced; String then yields FallbackComment.
type Result struct {
	Framework framework.ID
	Code      string
	Err       error
}

// OK reports whether the transformation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// String returns the code to display.
func (r Result) String() string {
	if r.Err != nil {
		return FallbackComment
	}
	return r.Code
}

// Transformer runs parse and generate over top-level nodes, logging and
// counting failures. The zero value is not usable; call New.
type Transformer struct {
	logger   *slog.Logger
	recorder metrics.Recorder
}

// New creates a Transformer. Nil arguments fall back to slog.Default and a
// NoopRecorder.
func New(logger *slog.Logger, recorder metrics.Recorder) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Transformer{logger: logger, recorder: recorder}
}

// Transform renders children for fw. Nodes are parsed, unrecognized ones
// dropped, and each remaining node's code is separated by a blank line.
func (t *Transformer) Transform(children []any, fw framework.ID) Result {
	start := time.Now()
	code, err := transform(children, fw)
	t.recorder.ObserveTransformDuration(string(fw), time.Since(start))

	if err != nil {
		t.recorder.IncTransformResult(string(fw), metrics.ResultFallback)
		t.logger.Warn("Framework transformation failed, showing fallback",
			logfields.Framework(string(fw)),
			logfields.Error(err))
		return Result{Framework: fw, Err: err}
	}
	t.recorder.IncTransformResult(string(fw), metrics.ResultSuccess)
	return Result{Framework: fw, Code: code}
}

func transform(children []any, fw framework.ID) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.InternalError("transformation panicked").
				WithCause(fmt.Errorf("%v", r)).
				WithContext("framework", string(fw)).
				Build()
		}
	}()

	profile, ok := framework.Lookup(fw)
	if !ok {
		return "", errors.ValidationError("unsupported framework").
			WithContext("framework", string(fw)).
			Build()
	}

	blocks := make([]string, 0, len(children))
	for _, child := range flatten(children) {
		node := Parse(child)
		if node == nil {
			continue
		}
		out, err := generate(node, fw, profile, 0)
		if err != nil {
			return "", err
		}
		if out != "" {
			blocks = append(blocks, out)
		}
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n")), nil
}

// flatten expands nested sequences the way a host framework flattens child arrays.
func flatten(children []any) []any {
	out := make([]any, 0, len(children))
	for _, c := range children {
		if nested, ok := c.([]any); ok {
			out = append(out, flatten(nested)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

var defaultTransformer = New(nil, nil)

// TransformToFramework renders children for fw and always returns displayable
// text: the generated code, or FallbackComment on failure.
func TransformToFramework(children []any, fw framework.ID) string {
	return defaultTransformer.Transform(children, fw).String()
}
