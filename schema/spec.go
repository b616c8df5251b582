package schema

import "strings"

// Field declares how one typed attribute maps to an XML element: the
// element tag, the value kind, and an optional default substituted when a
// remote response omits the element. Serialization order is the field's
// position in Spec.Fields; the remote grammar is positional, so field
// slices must not be reordered once declared.
type Field struct {
	// Tag is the XML element name. A Nested field's tag contains '/'
	// separated segments forming a nested element chain.
	Tag string
	// Attr overrides the attribute name; when empty the attribute is
	// named after the last tag segment.
	Attr string
	// Kind is the value kind
	Kind ValueKind
	// Default is substituted on reads when the attribute is unset
	Default interface{}
}

// Name returns the attribute name for the field.
func (f Field) Name() string {
	if f.Attr != "" {
		return f.Attr
	}
	if i := strings.LastIndexByte(f.Tag, '/'); i >= 0 {
		return f.Tag[i+1:]
	}
	return f.Tag
}

// Spec is the static schema for one object kind. It is declared once as a
// package-level value and never mutated; it fully determines which
// attributes serialize, in what order, and which containment pairings the
// tree accepts.
type Spec struct {
	// Kind names the object kind, unique across the registry of specs
	Kind string
	// Path is the container path relative to the parent's element,
	// e.g. "address" or "import/resource"
	Path string
	// Suffix selects Entry (named) or Singleton addressing
	Suffix Suffix
	// Root anchors kinds attached directly under a device root
	Root Root
	// Fields is the ordered field schema
	Fields []Field
	// ChildKinds is the set of kinds this kind may contain
	ChildKinds []string
}

// Field returns the named field declaration.
func (s *Spec) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name() == name {
			return f, true
		}
	}
	return Field{}, false
}

// AllowsChild reports whether kind is a declared child kind.
func (s *Spec) AllowsChild(kind string) bool {
	for _, k := range s.ChildKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ContainerTag returns the final segment of the container path, the element
// the remote wraps entries of this kind in.
func (s *Spec) ContainerTag() string {
	if i := strings.LastIndexByte(s.Path, '/'); i >= 0 {
		return s.Path[i+1:]
	}
	return s.Path
}
