// Package showcase builds per-framework code listings for every showcase
// example in the documentation tree.
package showcase

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

// Namespace seeds the name-based UUIDs of pages and examples, so ids survive
// rebuilds as long as a page keeps its path and its examples their order.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://elvtdocs.dev/showcase"))

// Variant is one framework rendering of an example.
type Variant struct {
	Framework framework.ID `json:"framework"`
	Label     string       `json:"label"`
	Language  string       `json:"language"`
	Code      string       `json:"code"`
	Imports   string       `json:"imports"`
	Fallback  bool         `json:"fallback,omitempty"`
}

// Example is a single showcase block and its renderings.
type Example struct {
	ID         string    `json:"id"`
	Index      int       `json:"index"`
	Title      string    `json:"title,omitempty"`
	Line       int       `json:"line"`
	Source     string    `json:"source"`
	Components []string  `json:"components"`
	Variants   []Variant `json:"variants,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Page groups the examples of one documentation file.
type Page struct {
	// Doc is the slash-separated path relative to the docs directory.
	Doc      string    `json:"doc"`
	UID      string    `json:"uid"`
	Title    string    `json:"title"`
	Examples []Example `json:"examples"`
}

// Failure records an example that could not be rendered.
type Failure struct {
	Doc     string
	Example int
	Line    int
	Err     error
}

// Report summarizes a build.
type Report struct {
	Docs      int
	Pages     int
	Examples  int
	Written   int
	Unchanged int
	Failures  []Failure
	Duration  time.Duration
}

// Build outcomes, as recorded in metrics.
const (
	OutcomeSuccess  = "success"
	OutcomePartial  = "partial"
	OutcomeFailed   = "failed"
	OutcomeCanceled = "canceled"
)

func (r *Report) outcome(err error) string {
	switch {
	case err != nil && isCanceled(err):
		return OutcomeCanceled
	case err != nil:
		return OutcomeFailed
	case len(r.Failures) > 0:
		return OutcomePartial
	default:
		return OutcomeSuccess
	}
}

func exampleID(doc string, index int) string {
	return uuid.NewSHA1(Namespace, []byte(doc+"#"+strconv.Itoa(index))).String()
}

func pageUID(doc string) string {
	return uuid.NewSHA1(Namespace, []byte(doc)).String()
}
