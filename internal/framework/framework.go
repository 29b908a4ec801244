// Package framework holds the target dialects the transformer can emit and
// their syntax profiles.
package framework

import (
	"git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/foundation/normalization"
)

// ID identifies a target framework dialect.
type ID string

const (
	WebComponent ID = "webcomponent"
	React        ID = "react"
	Angular      ID = "angular"
	Vue          ID = "vue"
	Svelte       ID = "svelte"
	HTML         ID = "html"
)

// Default is the framework shown before a reader picks one.
const Default = WebComponent

var all = []ID{WebComponent, React, Angular, Vue, Svelte, HTML}

// All returns every supported framework in display order.
func All() []ID {
	out := make([]ID, len(all))
	copy(out, all)
	return out
}

// Valid reports whether id is one of the supported frameworks.
func (id ID) Valid() bool {
	_, ok := profiles[id]
	return ok
}

func (id ID) String() string { return string(id) }

var idNormalizer = func() *normalization.EnumNormalizer[ID] {
	values := make(map[string]ID, len(all))
	for _, id := range all {
		values[string(id)] = id
	}
	return normalization.NewEnumNormalizer("framework", values, "")
}()

// Parse normalizes raw (trim, lowercase) into a framework ID.
func Parse(raw string) (ID, error) {
	id, err := idNormalizer.NormalizeWithValidation(raw)
	if err != nil {
		return "", errors.ValidationError("unsupported framework").
			WithCause(err).
			WithContext("framework", raw).
			WithContext("valid", idNormalizer.ValidValues()).
			Build()
	}
	return id, nil
}

// ParseList parses a list of framework names, keeping order and dropping repeats.
func ParseList(raw []string) ([]ID, error) {
	out := make([]ID, 0, len(raw))
	seen := make(map[ID]bool, len(raw))
	for _, r := range raw {
		id, err := Parse(r)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}
