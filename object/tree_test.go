package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panosdev/panconf/panerr"
)

func TestAttachAndAccessors(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)

	h, err := tr.Attach(tr.Root(), addressSpec, "web-server-1", map[string]interface{}{
		"ip-netmask": "10.1.1.5/32",
	})
	check.NoError(err)

	kind, err := tr.Kind(h)
	check.NoError(err)
	check.Equal("test-address", kind)

	name, err := tr.Name(h)
	check.NoError(err)
	check.Equal("web-server-1", name)

	parent, ok, err := tr.Parent(h)
	check.NoError(err)
	check.True(ok)
	check.Equal(tr.Root(), parent)

	children, err := tr.Children(tr.Root())
	check.NoError(err)
	check.Equal([]Handle{h}, children)

	state, err := tr.State(h)
	check.NoError(err)
	check.Equal(Detached, state)

	val, err := tr.Attr(h, "ip-netmask")
	check.NoError(err)
	check.Equal("10.1.1.5/32", val)
}

func TestAttachRejections(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)
	root := tr.Root()

	_, err := tr.Attach(root, routeSpec, "default", nil)
	check.True(panerr.IsContainment(err), "route under root: %v", err)

	_, err = tr.Attach(root, addressSpec, "", nil)
	check.True(panerr.IsContainment(err), "entry without a name: %v", err)

	_, err = tr.Attach(root, addressSpec, "dup", nil)
	require.NoError(t, err)
	_, err = tr.Attach(root, addressSpec, "dup", nil)
	check.True(panerr.IsContainment(err), "duplicate sibling: %v", err)

	_, err = tr.Attach(root, settingsSpec, "named", nil)
	check.True(panerr.IsContainment(err), "named singleton: %v", err)

	_, err = tr.Attach(root, settingsSpec, "", nil)
	require.NoError(t, err)
	_, err = tr.Attach(root, settingsSpec, "", nil)
	check.True(panerr.IsContainment(err), "second singleton: %v", err)

	before, err := tr.Children(root)
	require.NoError(t, err)
	_, err = tr.Attach(root, addressSpec, "bad", map[string]interface{}{"bogus": 1})
	check.True(panerr.IsUnknownField(err))
	after, err := tr.Children(root)
	require.NoError(t, err)
	check.Equal(before, after, "failed attach must leave the tree unchanged")
}

func TestDetach(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", nil)
	require.NoError(t, err)
	check.NoError(tr.Detach(h))

	children, err := tr.Children(tr.Root())
	check.NoError(err)
	check.Empty(children)

	// the handle still reads after a detach
	name, err := tr.Name(h)
	check.NoError(err)
	check.Equal("a", name)
	_, ok, err := tr.Parent(h)
	check.NoError(err)
	check.False(ok)

	check.Error(tr.Detach(tr.Root()))
}

func TestStaleHandles(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", nil)
	require.NoError(t, err)

	n, err := tr.node(h)
	require.NoError(t, err)
	tr.removeFromParent(h, n)
	tr.invalidate(h)

	_, err = tr.Kind(h)
	check.ErrorIs(err, ErrStaleHandle)
	_, err = tr.Values(h)
	check.ErrorIs(err, ErrStaleHandle)
	check.ErrorIs(tr.SetAttr(h, "description", "x"), ErrStaleHandle)

	_, err = tr.Kind(Handle{})
	check.ErrorIs(err, ErrStaleHandle, "zero handle is never valid")
	_, err = tr.Kind(Handle{idx: 99, gen: 1})
	check.ErrorIs(err, ErrStaleHandle, "foreign handle is never valid")
}

func TestFind(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)
	root := tr.Root()

	a, err := tr.Attach(root, addressSpec, "a", nil)
	require.NoError(t, err)
	b, err := tr.Attach(root, addressSpec, "b", nil)
	require.NoError(t, err)
	s, err := tr.Attach(root, settingsSpec, "", nil)
	require.NoError(t, err)

	got, ok := tr.Find(root, "test-address", "b")
	check.True(ok)
	check.Equal(b, got)

	_, ok = tr.Find(root, "test-address", "missing")
	check.False(ok)

	got, ok = tr.Find(root, "test-settings", "")
	check.True(ok)
	check.Equal(s, got)

	check.Equal([]Handle{a, b}, tr.FindAll(root, "test-address"))
	check.Empty(tr.FindAll(root, "test-route"))
}

func TestFindOrAttach(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)

	h1, err := tr.FindOrAttach(tr.Root(), settingsSpec, "")
	check.NoError(err)
	h2, err := tr.FindOrAttach(tr.Root(), settingsSpec, "")
	check.NoError(err)
	check.Equal(h1, h2)
}

func TestSetAttrValidates(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)

	h, err := tr.Attach(tr.Root(), ifaceSpec, "ethernet1/1", nil)
	require.NoError(t, err)

	check.NoError(tr.SetAttr(h, "mtu", 1500))
	check.True(panerr.IsSerialization(tr.SetAttr(h, "mtu", true)))
	check.True(panerr.IsUnknownField(tr.SetAttr(h, "speed", 1000)))

	// unset attrs read their declared defaults
	val, err := tr.Attr(h, "link-state")
	check.NoError(err)
	check.Equal("auto", val)
}
