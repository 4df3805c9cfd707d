package scene

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Constructor builds a concrete shape from an attribute map. Registered
// constructors are used for clip construction and by the scene loader.
type Constructor func(attrs Attrs) Node

// Registry maps shape type names to constructors. Names are normalized to a
// capitalized first rune, so "circle" and "Circle" resolve to the same
// entry. Populate a registry with explicit Register calls; shape.Registry
// returns one preloaded with the built-in shapes.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor under the given type name, replacing any
// previous entry for that name.
func (r *Registry) Register(name string, ctor Constructor) {
	if ctor == nil {
		return
	}
	r.ctors[normalizeTypeName(name)] = ctor
}

// Lookup returns the constructor for a type name, if registered.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	ctor, ok := r.ctors[normalizeTypeName(name)]
	return ctor, ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalizeTypeName upper-cases the first rune to match registry keys.
func normalizeTypeName(name string) string {
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	upper := unicode.ToUpper(first)
	if upper == first {
		return name
	}
	return string(upper) + name[size:]
}
