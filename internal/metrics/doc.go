// Package metrics provides observability hooks for transformations and docs builds.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so call sites never nil-check:
//
//	t := transformer.New(logger, metrics.NoopRecorder{})
//
// When metrics are enabled in config, a PrometheusRecorder is registered on a
// dedicated registry and exposed through HTTPHandler by the API server.
package metrics
