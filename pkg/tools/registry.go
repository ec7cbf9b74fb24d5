package tools

import (
	"fmt"
	"sort"

	"github.com/suiteops/suitepilot/pkg/llm"
)

// Registry maps canonical and sanitized names to descriptors. External
// connector tools are resolved at dispatch time and never registered here.
type Registry struct {
	byCanonical map[string]*Descriptor
	bySanitized map[string]*Descriptor
}

// NewRegistry builds a registry from descriptors, rejecting sanitized-name
// collisions so the canonical/sanitized mapping stays bijective.
func NewRegistry(descriptors []*Descriptor) (*Registry, error) {
	r := &Registry{
		byCanonical: make(map[string]*Descriptor, len(descriptors)),
		bySanitized: make(map[string]*Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("tool descriptor with empty name")
		}
		sanitized := Sanitize(d.Name)
		if len(sanitized) > MaxSanitizedNameLen {
			return nil, fmt.Errorf("tool %q: sanitized name exceeds %d bytes", d.Name, MaxSanitizedNameLen)
		}
		if prev, exists := r.bySanitized[sanitized]; exists {
			return nil, fmt.Errorf("tool %q: sanitized name %q collides with %q", d.Name, sanitized, prev.Name)
		}
		r.byCanonical[d.Name] = d
		r.bySanitized[sanitized] = d
	}
	return r, nil
}

// LookupSanitized resolves the descriptor behind an advertised tool name.
func (r *Registry) LookupSanitized(name string) (*Descriptor, bool) {
	d, ok := r.bySanitized[name]
	return d, ok
}

// Lookup resolves a descriptor by its canonical dotted name.
func (r *Registry) Lookup(canonical string) (*Descriptor, bool) {
	d, ok := r.byCanonical[canonical]
	return d, ok
}

// Names returns all canonical names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byCanonical))
	for name := range r.byCanonical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions renders tool definitions for the given canonical subset. An
// empty subset yields no definitions: agents only see tools they are
// configured for. Unknown names are skipped so an agent's configured
// subset degrades rather than failing its turn.
func (r *Registry) Definitions(subset []string) []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(subset))
	for _, name := range subset {
		if d, ok := r.byCanonical[name]; ok {
			defs = append(defs, d.Definition())
		}
	}
	return defs
}
