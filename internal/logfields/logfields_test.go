package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Framework", KeyFramework, "react", Framework("react")},
		{"Doc", KeyDoc, "components/button.mdx", Doc("components/button.mdx")},
		{"Example", KeyExample, "ex1", Example("ex1")},
		{"Component", KeyComponent, "elvt-button", Component("elvt-button")},
		{"Stage", KeyStage, "render", Stage("render")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s: expected key %s got %s", c.name, c.attrKey, c.attr.Key)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Errorf("%s: expected value %s got %s", c.name, c.attrVal, c.attr.Value.String())
		}
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil); got.Value.String() != "" {
		t.Errorf("expected empty value for nil error, got %q", got.Value.String())
	}
	if got := Error(errors.New("boom")); got.Key != KeyError || got.Value.String() != "boom" {
		t.Errorf("unexpected attr %v", got)
	}
}
