package object

import (
	"strings"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
)

// XPath returns the node's absolute address in the remote configuration
// store: the root scope's fixed prefix followed by one container segment
// per ancestor, root to leaf. Entry nodes append /entry[@name='<name>'];
// singletons contribute their container path only. Segment order is
// positional in the remote grammar and never reordered.
func (t *Tree) XPath(h Handle) (string, error) {
	n, err := t.node(h)
	if err != nil {
		return "", err
	}
	if h == t.root {
		return t.scope.RootPrefix(n.spec.Root)
	}
	prefix, err := t.parentPrefix(n)
	if err != nil {
		return "", err
	}
	return prefix + segment(n.spec, n.name), nil
}

// XPathShort returns the node's container address (the XPath without the
// final entry segment), used for set operations which carry the entry in
// the element body.
func (t *Tree) XPathShort(h Handle) (string, error) {
	n, err := t.node(h)
	if err != nil {
		return "", err
	}
	if h == t.root {
		return "", panerr.ScopeError{Scope: n.spec.Root.String(), Reason: "device root has no container path"}
	}
	prefix, err := t.parentPrefix(n)
	if err != nil {
		return "", err
	}
	if n.spec.Suffix == schema.Entry {
		return prefix + "/" + n.spec.Path, nil
	}
	// singleton: drop the last path segment, it is the element itself
	if i := strings.LastIndexByte(n.spec.Path, '/'); i >= 0 {
		return prefix + "/" + n.spec.Path[:i], nil
	}
	return prefix, nil
}

// parentPrefix resolves the absolute path of n's parent. A node attached
// directly under the device root anchors at its own declared root scope.
func (t *Tree) parentPrefix(n *node) (string, error) {
	if n.parent.gen == 0 {
		return "", panerr.ScopeError{Scope: n.spec.Root.String(), Reason: "node is not attached to a device root"}
	}
	if n.parent == t.root {
		return t.scope.RootPrefix(n.spec.Root)
	}
	return t.XPath(n.parent)
}

func segment(spec *schema.Spec, name string) string {
	s := "/" + spec.Path
	if spec.Suffix == schema.Entry {
		s += "/entry[@name='" + name + "']"
	}
	return s
}

// containerXPath resolves the container address for a kind under parent,
// used by collection refreshes.
func (t *Tree) containerXPath(parent Handle, spec *schema.Spec) (string, error) {
	if parent == t.root {
		prefix, err := t.scope.RootPrefix(spec.Root)
		if err != nil {
			return "", err
		}
		return prefix + "/" + spec.Path, nil
	}
	prefix, err := t.XPath(parent)
	if err != nil {
		return "", err
	}
	return prefix + "/" + spec.Path, nil
}
