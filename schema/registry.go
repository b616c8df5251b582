package schema

import "fmt"

var registry = map[string]*Spec{}

// Register records a kind schema in the package registry and returns it,
// so spec declarations read as package-level vars. Kinds are registered
// once at init time; a duplicate kind name is a programming error.
func Register(s *Spec) *Spec {
	if _, dup := registry[s.Kind]; dup {
		panic(fmt.Sprintf("schema: duplicate kind %q", s.Kind))
	}
	registry[s.Kind] = s
	return s
}

// Lookup returns the registered schema for a kind name.
func Lookup(kind string) (*Spec, bool) {
	s, ok := registry[kind]
	return s, ok
}
