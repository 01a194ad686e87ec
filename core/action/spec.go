package action

import (
	"fmt"
	"slices"
)

// Entry is one middleware id with its default applicability.
type Entry struct {
	ID      string `yaml:"id" validate:"required"`
	Enabled bool   `yaml:"enabled"`
}

// Spec is the ordered, process-wide middleware configuration.
// It cannot be changed after NewSpec returns.
type Spec struct {
	entries []Entry
}

// NewSpec builds a Spec in outer-to-inner order.
func NewSpec(entries ...Entry) (Spec, error) {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return Spec{}, fmt.Errorf("%w: entry %d", ErrEmptyMiddlewareID, i)
		}
		if _, ok := seen[e.ID]; ok {
			return Spec{}, fmt.Errorf("%w: %q", ErrDuplicateMiddlewareID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return Spec{entries: slices.Clone(entries)}, nil
}

// MustSpec is like NewSpec but panics on error.
func MustSpec(entries ...Entry) Spec {
	s, err := NewSpec(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Entries returns a copy of the configured entries.
func (s Spec) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of configured middlewares.
func (s Spec) Len() int {
	return len(s.entries)
}

// Has reports whether id is part of the spec.
func (s Spec) Has(id string) bool {
	return slices.ContainsFunc(s.entries, func(e Entry) bool { return e.ID == id })
}

// Merge returns the enabled middleware ids in spec order.
// An override replaces the default of a known id. Unknown ids are ignored.
func Merge(spec Spec, overrides map[string]bool) []string {
	ids := make([]string, 0, len(spec.entries))
	for _, e := range spec.entries {
		enabled := e.Enabled
		if v, ok := overrides[e.ID]; ok {
			enabled = v
		}
		if enabled {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
