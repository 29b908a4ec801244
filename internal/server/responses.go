package server

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// FrameworkResponse describes one framework profile.
type FrameworkResponse struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	Language        string `json:"language"`
	Prefix          string `json:"prefix"`
	AttributeStyle  string `json:"attributeStyle"`
	ClosingTagStyle string `json:"closingTagStyle"`
	EventHandling   string `json:"eventHandling"`
	SlotSyntax      string `json:"slotSyntax"`
	Default         bool   `json:"default,omitempty"`
}

// TransformRequest is the body of POST /api/transform. An empty framework
// selects the default one.
type TransformRequest struct {
	Markup    string `json:"markup" binding:"required"`
	Framework string `json:"framework"`
}

// TransformResponse carries the rendered code. Fallback is set when Code is
// the fallback comment.
type TransformResponse struct {
	Framework  string   `json:"framework"`
	Code       string   `json:"code"`
	Imports    string   `json:"imports"`
	Components []string `json:"components"`
	Language   string   `json:"language"`
	Fallback   bool     `json:"fallback,omitempty"`
}

// ImportsRequest is the body of POST /api/imports. Components are import
// identifiers used as given; Tags are design-system tag names converted to
// the framework's identifiers first.
type ImportsRequest struct {
	Framework  string   `json:"framework"`
	Components []string `json:"components"`
	Tags       []string `json:"tags"`
}

// ImportsResponse is returned by POST /api/imports.
type ImportsResponse struct {
	Imports string `json:"imports"`
}
