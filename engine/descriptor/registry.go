package descriptor

import "sort"

// Registry maps descriptor identifiers to descriptors. It is consulted once
// at engine initialization to resolve a caller's chosen identifier into a
// concrete descriptor; an unknown identifier is a caller error, not an engine
// runtime condition.
type Registry struct {
	m map[string]Descriptor
}

// NewRegistry creates an empty descriptor registry.
//
// Returns:
//   - *Registry: the new registry
func NewRegistry() *Registry {
	return &Registry{m: map[string]Descriptor{}}
}

// Register adds a descriptor under its ID, replacing any previous entry with
// the same ID. Nil descriptors are ignored.
//
// Parameters:
//   - d: the descriptor to register
func (r *Registry) Register(d Descriptor) {
	if d == nil {
		return
	}
	r.m[d.ID()] = d
}

// Get retrieves the descriptor registered under the given identifier.
//
// Parameters:
//   - id: the descriptor identifier
//
// Returns:
//   - Descriptor: the registered descriptor, or nil if not found
//   - bool: true if the identifier is registered
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.m[id]
	return d, ok
}

// List returns the registered identifiers in sorted order.
//
// Returns:
//   - []string: the sorted descriptor identifiers
func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for id := range r.m {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
