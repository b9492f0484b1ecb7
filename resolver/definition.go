package resolver

import (
	"fmt"
	"iter"
	"slices"
)

// Definition describes the contract of one declared key.
// It is immutable; two Definitions with equal fields are interchangeable.
type Definition struct {
	name         string
	defaultValue any
	required     bool
	types        []string
	description  string
}

// NewDefinition creates a Definition. A nil types slice is stored as an
// empty one, meaning "untyped".
func NewDefinition(name string, defaultValue any, required bool, description string, types []string) Definition {
	if types == nil {
		types = []string{}
	}

	return Definition{
		name:         name,
		defaultValue: defaultValue,
		required:     required,
		types:        slices.Clone(types),
		description:  description,
	}
}

func (d Definition) Name() string { return d.name }

// Default returns the default value, or nil when the key has none.
func (d Definition) Default() any { return d.defaultValue }

func (d Definition) Required() bool { return d.required }

// Types returns a copy of the accepted type names. Empty means untyped.
func (d Definition) Types() []string { return slices.Clone(d.types) }

// Description returns the human-readable description, or "" if none was set.
func (d Definition) Description() string { return d.description }

// DefinitionSet is a read-only, ordered collection of Definitions with
// unique names.
type DefinitionSet struct {
	defs  []Definition
	index map[string]int
}

// NewDefinitionSet builds a set from defs. A later Definition with an
// already-seen name replaces the earlier one in place.
func NewDefinitionSet(defs ...Definition) *DefinitionSet {
	s := &DefinitionSet{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}

	for _, d := range defs {
		if i, ok := s.index[d.name]; ok {
			s.defs[i] = d
			continue
		}

		s.index[d.name] = len(s.defs)
		s.defs = append(s.defs, d)
	}

	return s
}

// Get returns the Definition for name or an error wrapping ErrDefinitionNotFound.
func (s *DefinitionSet) Get(name string) (Definition, error) {
	d, ok := s.Lookup(name)
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrDefinitionNotFound, name)
	}

	return d, nil
}

// Lookup returns the Definition for name and whether it exists.
func (s *DefinitionSet) Lookup(name string) (Definition, bool) {
	i, ok := s.index[name]
	if !ok {
		return Definition{}, false
	}

	return s.defs[i], true
}

// All returns the Definitions in insertion order.
func (s *DefinitionSet) All() []Definition {
	return slices.Clone(s.defs)
}

// Each iterates the Definitions in insertion order.
func (s *DefinitionSet) Each() iter.Seq[Definition] {
	return slices.Values(s.defs)
}

// Names returns the definition names in insertion order.
func (s *DefinitionSet) Names() []string {
	names := make([]string, 0, len(s.defs))
	for _, d := range s.defs {
		names = append(names, d.name)
	}

	return names
}

func (s *DefinitionSet) Len() int { return len(s.defs) }
