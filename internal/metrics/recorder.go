package metrics

import "time"

// ResultLabel enumerates transformation result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFallback ResultLabel = "fallback"
)

// Recorder defines observability hooks for transformations and showcase builds.
type Recorder interface {
	ObserveTransformDuration(framework string, d time.Duration)
	IncTransformResult(framework string, result ResultLabel)
	IncShowcases(n int)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|partial|failed|canceled
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveTransformDuration(string, time.Duration) {}
func (NoopRecorder) IncTransformResult(string, ResultLabel)         {}
func (NoopRecorder) IncShowcases(int)                               {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)             {}
func (NoopRecorder) IncBuildOutcome(string)                         {}
