package object

import (
	"context"

	"github.com/antchfx/xmlquery"

	"github.com/panosdev/panconf/codec"
	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xmlutil"
)

// RefreshOption adjusts refresh behavior.
type RefreshOption func(*refreshOptions)

type refreshOptions struct {
	running    bool
	noChildren bool
}

// FromRunningConfig reads the running configuration (show) instead of the
// candidate configuration (get).
func FromRunningConfig() RefreshOption {
	return func(o *refreshOptions) { o.running = true }
}

// WithoutChildren refreshes the node's own attributes only, leaving the
// local child set untouched.
func WithoutChildren() RefreshOption {
	return func(o *refreshOptions) { o.noChildren = true }
}

// Create pushes the node to the remote store with a set request at the
// node's container path. Set merges: attributes present in the payload are
// written, attributes absent are left as the remote has them. Existing
// entries of the same name are updated, not replaced. On success the node
// is Synced.
func (t *Tree) Create(ctx context.Context, h Handle) error {
	n, xpath, err := t.syncTarget(h, true)
	if err != nil {
		return err
	}
	element, err := codec.Marshal(n.name, n.values)
	if err != nil {
		return err
	}
	if _, err := t.tx.Set(ctx, xpath, string(element)); err != nil {
		return err
	}
	n.state = Synced
	return nil
}

// Apply replaces the node's remote element wholesale with an edit request
// at the node's full path. Remote attributes absent from the local value
// set are removed. On success the node is Synced.
func (t *Tree) Apply(ctx context.Context, h Handle) error {
	n, xpath, err := t.syncTarget(h, false)
	if err != nil {
		return err
	}
	element, err := codec.Marshal(n.name, n.values)
	if err != nil {
		return err
	}
	if _, err := t.tx.Edit(ctx, xpath, string(element)); err != nil {
		return err
	}
	n.state = Synced
	return nil
}

// Delete removes the node's element from the remote store, detaches it
// from its parent and invalidates the handle along with every descendant
// handle. Deletion is terminal: the handles never come back.
func (t *Tree) Delete(ctx context.Context, h Handle) error {
	n, xpath, err := t.syncTarget(h, false)
	if err != nil {
		return err
	}
	if h == t.root {
		return panerr.ScopeError{Scope: n.spec.Root.String(), Reason: "cannot delete the device root"}
	}
	if _, err := t.tx.Delete(ctx, xpath); err != nil {
		return err
	}
	t.removeFromParent(h, n)
	t.invalidateSubtree(h, n)
	return nil
}

// Refresh replaces the node's local attribute state with the remote
// element. By default children of registered kinds are rebuilt from the
// response as well: the local child set for each such kind is discarded,
// its handles go stale, and new handles reflect exactly what the remote
// returned. Conversion problems that keep raw text are reported as
// warnings; a response without the expected result element fails with a
// ResponseShapeError.
func (t *Tree) Refresh(ctx context.Context, h Handle, opts ...RefreshOption) ([]codec.Warning, error) {
	var o refreshOptions
	for _, opt := range opts {
		opt(&o)
	}
	n, xpath, err := t.syncTarget(h, false)
	if err != nil {
		return nil, err
	}
	doc, err := t.fetch(ctx, xpath, o.running)
	if err != nil {
		return nil, err
	}
	el, err := resultElement(doc, xpath, resultTag(n.spec))
	if err != nil {
		return nil, err
	}
	values, warnings, err := codec.Unmarshal(el, n.spec)
	if err != nil {
		return nil, err
	}
	n.values = values
	n.state = Synced
	if o.noChildren {
		return warnings, nil
	}
	for _, kind := range n.spec.ChildKinds {
		spec, ok := schema.Lookup(kind)
		if !ok {
			continue
		}
		ws, err := t.rebuildChildren(h, n, spec, el)
		if err != nil {
			return warnings, err
		}
		warnings = append(warnings, ws...)
	}
	return warnings, nil
}

// RefreshAll replaces parent's local children of one kind with the entries
// the remote holds at the kind's container path. Previous handles of that
// kind go stale; other kinds under parent are untouched. An absent
// container element yields zero entries without error.
func (t *Tree) RefreshAll(ctx context.Context, parent Handle, spec *schema.Spec, opts ...RefreshOption) ([]Handle, []codec.Warning, error) {
	var o refreshOptions
	for _, opt := range opts {
		opt(&o)
	}
	if t.tx == nil {
		return nil, nil, ErrNoTransport
	}
	p, err := t.node(parent)
	if err != nil {
		return nil, nil, err
	}
	if !p.spec.AllowsChild(spec.Kind) {
		return nil, nil, panerr.ContainmentError{ParentKind: p.spec.Kind, ChildKind: spec.Kind}
	}
	xpath, err := t.containerXPath(parent, spec)
	if err != nil {
		return nil, nil, err
	}
	doc, err := t.fetch(ctx, xpath, o.running)
	if err != nil {
		if panerr.IsNoSuchNode(err) {
			t.dropChildren(p, spec.Kind)
			return nil, nil, nil
		}
		return nil, nil, err
	}
	el, err := resultElement(doc, xpath, spec.ContainerTag())
	if err != nil {
		return nil, nil, err
	}
	t.dropChildren(p, spec.Kind)
	return t.attachEntries(parent, p, spec, el)
}

// Update pushes a single attribute of the node. A set attribute is edited
// in place at the field's own element path; an unset attribute is deleted
// from the remote element.
func (t *Tree) Update(ctx context.Context, h Handle, field string) error {
	n, xpath, err := t.syncTarget(h, false)
	if err != nil {
		return err
	}
	tag, err := codec.FieldPath(n.spec, field)
	if err != nil {
		return err
	}
	fieldXPath := xpath + "/" + tag
	if _, set := n.values.Lookup(field); !set {
		_, err := t.tx.Delete(ctx, fieldXPath)
		return err
	}
	element, err := codec.MarshalField(n.values, field)
	if err != nil {
		return err
	}
	_, err = t.tx.Edit(ctx, fieldXPath, string(element))
	return err
}

// RefreshField replaces a single attribute of the node from the remote
// element. A remote element missing the field unsets the attribute, so
// reads observe the schema default.
func (t *Tree) RefreshField(ctx context.Context, h Handle, field string, opts ...RefreshOption) (*codec.Warning, error) {
	var o refreshOptions
	for _, opt := range opts {
		opt(&o)
	}
	n, xpath, err := t.syncTarget(h, false)
	if err != nil {
		return nil, err
	}
	tag, err := codec.FieldPath(n.spec, field)
	if err != nil {
		return nil, err
	}
	doc, err := t.fetch(ctx, xpath+"/"+tag, o.running)
	if err != nil {
		if panerr.IsNoSuchNode(err) {
			n.values.Unset(field)
			return nil, nil
		}
		return nil, err
	}
	el, err := resultElement(doc, xpath+"/"+tag, lastSegment(tag))
	if err != nil {
		return nil, err
	}
	return codec.UnmarshalField(el, n.values, field)
}

// syncTarget resolves the node and XPath for one sync operation. short
// selects the container path used by set requests.
func (t *Tree) syncTarget(h Handle, short bool) (*node, string, error) {
	if t.tx == nil {
		return nil, "", ErrNoTransport
	}
	n, err := t.node(h)
	if err != nil {
		return nil, "", err
	}
	var xpath string
	if short {
		xpath, err = t.XPathShort(h)
	} else {
		xpath, err = t.XPath(h)
	}
	if err != nil {
		return nil, "", err
	}
	return n, xpath, nil
}

func (t *Tree) fetch(ctx context.Context, xpath string, running bool) (*xmlquery.Node, error) {
	if running {
		return t.tx.Show(ctx, xpath)
	}
	return t.tx.Get(ctx, xpath)
}

// resultElement locates the refreshed element inside a get/show response:
// the child of /response/result named after the last XPath segment.
func resultElement(doc *xmlquery.Node, xpath, tag string) (*xmlquery.Node, error) {
	result := xmlutil.ChildPath(doc, "response/result")
	if result == nil {
		return nil, panerr.ResponseShapeError{XPath: xpath, Missing: "result"}
	}
	el := xmlutil.Child(result, tag)
	if el == nil {
		return nil, panerr.ResponseShapeError{XPath: xpath, Missing: tag}
	}
	return el, nil
}

func resultTag(spec *schema.Spec) string {
	if spec.Suffix == schema.Entry {
		return "entry"
	}
	return spec.ContainerTag()
}

func lastSegment(tag string) string {
	segs := pathSegments(tag)
	return segs[len(segs)-1]
}

func pathSegments(tag string) []string {
	out := []string{}
	start := 0
	for i := 0; i <= len(tag); i++ {
		if i == len(tag) || tag[i] == '/' {
			out = append(out, tag[start:i])
			start = i + 1
		}
	}
	return out
}

// rebuildChildren replaces n's children of spec.Kind with the entries
// found under the refreshed parent element.
func (t *Tree) rebuildChildren(parent Handle, n *node, spec *schema.Spec, parentEl *xmlquery.Node) ([]codec.Warning, error) {
	container := xmlutil.ChildPath(parentEl, spec.Path)
	t.dropChildren(n, spec.Kind)
	if container == nil {
		return nil, nil
	}
	_, warnings, err := t.attachEntries(parent, n, spec, container)
	return warnings, err
}

// attachEntries materializes nodes for every entry (or the singleton
// element itself) under a refreshed container element.
func (t *Tree) attachEntries(parent Handle, p *node, spec *schema.Spec, container *xmlquery.Node) ([]Handle, []codec.Warning, error) {
	var handles []Handle
	var warnings []codec.Warning
	attach := func(name string, el *xmlquery.Node) error {
		values, ws, err := codec.Unmarshal(el, spec)
		if err != nil {
			return err
		}
		warnings = append(warnings, ws...)
		h := t.alloc(&node{spec: spec, name: name, values: values, parent: parent, state: Synced})
		p.children = append(p.children, h)
		handles = append(handles, h)
		return nil
	}
	if spec.Suffix == schema.Singleton {
		if err := attach("", container); err != nil {
			return nil, nil, err
		}
		return handles, warnings, nil
	}
	for _, entry := range xmlutil.Children(container, "entry") {
		if err := attach(codec.EntryName(entry), entry); err != nil {
			return nil, nil, err
		}
	}
	return handles, warnings, nil
}

// dropChildren detaches and invalidates every child of one kind, along
// with their descendants.
func (t *Tree) dropChildren(p *node, kind string) {
	keep := p.children[:0]
	for _, c := range p.children {
		n, err := t.node(c)
		if err != nil {
			continue
		}
		if n.spec.Kind != kind {
			keep = append(keep, c)
			continue
		}
		t.invalidateSubtree(c, n)
	}
	p.children = keep
}

func (t *Tree) invalidateSubtree(h Handle, n *node) {
	for _, c := range n.children {
		if cn, err := t.node(c); err == nil {
			t.invalidateSubtree(c, cn)
		}
	}
	t.invalidate(h)
}
