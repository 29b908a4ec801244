package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFramework  = "framework"
	KeyDoc        = "doc"
	KeyExample    = "example"
	KeyComponent  = "component"
	KeyStage      = "stage"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Framework(f string) slog.Attr     { return slog.String(KeyFramework, f) }
func Doc(d string) slog.Attr           { return slog.String(KeyDoc, d) }
func Example(id string) slog.Attr      { return slog.String(KeyExample, id) }
func Component(name string) slog.Attr  { return slog.String(KeyComponent, name) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Since(start time.Time) slog.Attr  { return DurationMS(float64(time.Since(start).Microseconds()) / 1000) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
