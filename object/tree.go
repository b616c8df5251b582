package object

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xapi"
)

// Handle addresses one node in a Tree. Handles are opaque and cheap to
// copy. A handle goes stale when its node is deleted; the zero Handle is
// always invalid.
type Handle struct {
	idx uint32
	gen uint32
}

func (h Handle) String() string { return fmt.Sprintf("node#%d.%d", h.idx, h.gen) }

// State is a node's sync lifecycle state.
type State int

const (
	// Detached nodes exist locally with no confirmed remote counterpart
	Detached State = iota
	// Synced nodes reflect an explicit create, apply or refresh
	Synced
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Synced:
		return "synced"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrStaleHandle is returned for handles whose node was deleted, and for
// handles from another tree or the zero Handle.
var ErrStaleHandle = errors.New("object: stale or deleted node handle")

// ErrNoTransport is returned by sync operations on a tree constructed
// without a transport.
var ErrNoTransport = errors.New("object: no transport bound to tree")

// ScopeResolver resolves the fixed XPath prefix for a root scope. Device
// roots (firewalls, panoramas) implement it; scopes a device does not
// carry resolve to a panerr.ScopeError.
type ScopeResolver interface {
	RootPrefix(root schema.Root) (string, error)
}

type node struct {
	spec     *schema.Spec
	name     string
	values   *schema.Values
	parent   Handle
	children []Handle
	state    State
}

type slot struct {
	gen uint32
	n   *node
}

// Tree owns a configuration object tree rooted at a device node. All
// mutation and sync operations go through the Tree; nodes are never
// exposed directly.
type Tree struct {
	scope ScopeResolver
	tx    xapi.Transport
	slots []slot
	root  Handle
}

// NewTree returns a tree whose root node carries rootSpec (the device
// kind). scope resolves root-scope prefixes for the whole tree; tx may be
// nil for trees that are never synchronized.
func NewTree(rootSpec *schema.Spec, scope ScopeResolver, tx xapi.Transport) *Tree {
	t := &Tree{scope: scope, tx: tx}
	values, err := schema.NewValues(rootSpec, nil)
	if err != nil {
		// nil attrs cannot fail validation
		panic(err)
	}
	t.root = t.alloc(&node{spec: rootSpec, values: values})
	return t
}

// Root returns the device root handle.
func (t *Tree) Root() Handle { return t.root }

func (t *Tree) alloc(n *node) Handle {
	t.slots = append(t.slots, slot{gen: 1, n: n})
	return Handle{idx: uint32(len(t.slots) - 1), gen: 1}
}

func (t *Tree) node(h Handle) (*node, error) {
	if h.gen == 0 || int(h.idx) >= len(t.slots) {
		return nil, ErrStaleHandle
	}
	s := t.slots[h.idx]
	if s.gen != h.gen || s.n == nil {
		return nil, ErrStaleHandle
	}
	return s.n, nil
}

// invalidate bumps the slot generation so every outstanding handle to the
// node goes stale.
func (t *Tree) invalidate(h Handle) {
	t.slots[h.idx].gen++
	t.slots[h.idx].n = nil
}

// Attach creates a node of the given kind under parent and returns its
// handle. The child kind must be declared in the parent's ChildKinds,
// entry kinds require a name unique among siblings of the same kind, and
// singleton kinds permit one unnamed instance per parent. attrs is
// validated against the kind schema. On any failure the tree is unchanged.
func (t *Tree) Attach(parent Handle, spec *schema.Spec, name string, attrs map[string]interface{}) (Handle, error) {
	p, err := t.node(parent)
	if err != nil {
		return Handle{}, err
	}
	if !p.spec.AllowsChild(spec.Kind) {
		return Handle{}, panerr.ContainmentError{ParentKind: p.spec.Kind, ChildKind: spec.Kind, Name: name}
	}
	switch spec.Suffix {
	case schema.Entry:
		if name == "" {
			return Handle{}, panerr.ContainmentError{
				ParentKind: p.spec.Kind, ChildKind: spec.Kind,
				Reason: "entry kind requires a name"}
		}
		if _, ok := t.findChild(p, spec.Kind, name); ok {
			return Handle{}, panerr.ContainmentError{
				ParentKind: p.spec.Kind, ChildKind: spec.Kind, Name: name,
				Reason: "duplicate entry among siblings"}
		}
	case schema.Singleton:
		if name != "" {
			return Handle{}, panerr.ContainmentError{
				ParentKind: p.spec.Kind, ChildKind: spec.Kind, Name: name,
				Reason: "singleton kind takes no name"}
		}
		if len(t.childrenOf(p, spec.Kind)) > 0 {
			return Handle{}, panerr.ContainmentError{
				ParentKind: p.spec.Kind, ChildKind: spec.Kind,
				Reason: "singleton already present"}
		}
	}
	values, err := schema.NewValues(spec, attrs)
	if err != nil {
		return Handle{}, err
	}
	h := t.alloc(&node{spec: spec, name: name, values: values, parent: parent})
	p.children = append(p.children, h)
	return h, nil
}

// Detach removes a node from its parent's children without touching the
// remote store. The handle stays valid for reads and attribute access, but
// sync operations fail until the node belongs to a tree rooted at a device
// again. Descendants follow the node.
func (t *Tree) Detach(h Handle) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	if h == t.root {
		return errors.New("object: cannot detach the device root")
	}
	t.removeFromParent(h, n)
	n.state = Detached
	return nil
}

func (t *Tree) removeFromParent(h Handle, n *node) {
	if p, err := t.node(n.parent); err == nil {
		for i, c := range p.children {
			if c == h {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	n.parent = Handle{}
}

// Kind returns the node's kind name.
func (t *Tree) Kind(h Handle) (string, error) {
	n, err := t.node(h)
	if err != nil {
		return "", err
	}
	return n.spec.Kind, nil
}

// Name returns the node's identity name; "" for singletons.
func (t *Tree) Name(h Handle) (string, error) {
	n, err := t.node(h)
	if err != nil {
		return "", err
	}
	return n.name, nil
}

// Parent returns the node's parent handle; ok is false for the root and
// for detached nodes.
func (t *Tree) Parent(h Handle) (Handle, bool, error) {
	n, err := t.node(h)
	if err != nil {
		return Handle{}, false, err
	}
	if n.parent.gen == 0 {
		return Handle{}, false, nil
	}
	return n.parent, true, nil
}

// Children returns the node's child handles in attach order.
func (t *Tree) Children(h Handle) ([]Handle, error) {
	n, err := t.node(h)
	if err != nil {
		return nil, err
	}
	return append([]Handle(nil), n.children...), nil
}

// State returns the node's sync lifecycle state.
func (t *Tree) State(h Handle) (State, error) {
	n, err := t.node(h)
	if err != nil {
		return Detached, err
	}
	return n.state, nil
}

// Values returns the node's attribute set. The returned Values validates
// every Set against the kind schema.
func (t *Tree) Values(h Handle) (*schema.Values, error) {
	n, err := t.node(h)
	if err != nil {
		return nil, err
	}
	return n.values, nil
}

// SetAttr sets one attribute on the node.
func (t *Tree) SetAttr(h Handle, name string, val interface{}) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	return n.values.Set(name, val)
}

// Attr returns one attribute of the node, with the schema default
// substituted when unset.
func (t *Tree) Attr(h Handle, name string) (interface{}, error) {
	n, err := t.node(h)
	if err != nil {
		return nil, err
	}
	val, ok := n.values.Get(name)
	if !ok {
		return nil, panerr.UnknownFieldError{Kind: n.spec.Kind, Field: name}
	}
	return val, nil
}

func (t *Tree) findChild(p *node, kind, name string) (Handle, bool) {
	for _, c := range p.children {
		if n, err := t.node(c); err == nil && n.spec.Kind == kind && n.name == name {
			return c, true
		}
	}
	return Handle{}, false
}

func (t *Tree) childrenOf(p *node, kind string) (out []Handle) {
	for _, c := range p.children {
		if n, err := t.node(c); err == nil && n.spec.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
