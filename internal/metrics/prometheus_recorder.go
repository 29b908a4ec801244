package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	transformDuration *prom.HistogramVec
	transformResults  *prom.CounterVec
	showcases         prom.Counter
	buildDuration     prom.Histogram
	buildOutcome      *prom.CounterVec
}

// NewPrometheusRecorder constructs metrics and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		transformDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "elvtdocs",
			Name:      "transform_duration_seconds",
			Help:      "Duration of markup to framework code transformations",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"framework"}),
		transformResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "elvtdocs",
			Name:      "transform_results_total",
			Help:      "Transformation results by framework and outcome",
		}, []string{"framework", "result"}),
		showcases: prom.NewCounter(prom.CounterOpts{
			Namespace: "elvtdocs",
			Name:      "showcases_rendered_total",
			Help:      "Showcase examples rendered by docs builds",
		}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "elvtdocs",
			Name:      "build_duration_seconds",
			Help:      "Total showcase build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "elvtdocs",
			Name:      "build_outcomes_total",
			Help:      "Showcase builds by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.transformDuration, pr.transformResults, pr.showcases, pr.buildDuration, pr.buildOutcome)
	return pr
}

func (p *PrometheusRecorder) ObserveTransformDuration(framework string, d time.Duration) {
	p.transformDuration.WithLabelValues(framework).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncTransformResult(framework string, result ResultLabel) {
	p.transformResults.WithLabelValues(framework, string(result)).Inc()
}

func (p *PrometheusRecorder) IncShowcases(n int) {
	if n > 0 {
		p.showcases.Add(float64(n))
	}
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

// HTTPHandler serves the metrics gathered by reg, or the default registry when reg is nil.
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
