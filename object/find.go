package object

import (
	"github.com/panosdev/panconf/schema"
)

// Find returns the child of parent with the given kind and name. For
// singleton kinds name is ignored and the single instance is returned.
func (t *Tree) Find(parent Handle, kind, name string) (Handle, bool) {
	p, err := t.node(parent)
	if err != nil {
		return Handle{}, false
	}
	if spec, ok := schema.Lookup(kind); ok && spec.Suffix == schema.Singleton {
		if cs := t.childrenOf(p, kind); len(cs) > 0 {
			return cs[0], true
		}
		return Handle{}, false
	}
	return t.findChild(p, kind, name)
}

// FindAll returns parent's children of the given kind in attach order.
func (t *Tree) FindAll(parent Handle, kind string) []Handle {
	p, err := t.node(parent)
	if err != nil {
		return nil
	}
	return t.childrenOf(p, kind)
}

// FindOrAttach returns the existing child of the given kind and name, or
// attaches a new one with no explicit attributes.
func (t *Tree) FindOrAttach(parent Handle, spec *schema.Spec, name string) (Handle, error) {
	if h, ok := t.Find(parent, spec.Kind, name); ok {
		return h, nil
	}
	return t.Attach(parent, spec, name, nil)
}
