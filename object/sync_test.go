package object

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/xapi/mocks"
)

const vsysPrefix = devicePrefix + "/vsys/entry[@name='vsys1']"

func TestCreateSetsAtContainerPath(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), addressSpec, "web-server-1", map[string]interface{}{
		"ip-netmask":  "10.1.1.5/32",
		"description": "prod web",
	})
	require.NoError(t, err)

	tx.EXPECT().
		Set(gomock.Any(), vsysPrefix+"/address",
			`<entry name="web-server-1"><ip-netmask>10.1.1.5/32</ip-netmask><description>prod web</description></entry>`).
		Return(parseDoc(t, `<response status="success"/>`), nil)

	check.NoError(tr.Create(context.Background(), h))
	state, err := tr.State(h)
	check.NoError(err)
	check.Equal(Synced, state)
}

func TestApplyEditsAtFullPath(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", map[string]interface{}{"ip-netmask": "10.0.0.1/32"})
	require.NoError(t, err)

	tx.EXPECT().
		Edit(gomock.Any(), vsysPrefix+"/address/entry[@name='a']",
			`<entry name="a"><ip-netmask>10.0.0.1/32</ip-netmask></entry>`).
		Return(parseDoc(t, `<response status="success"/>`), nil)

	check.NoError(tr.Apply(context.Background(), h))
}

func TestDeleteInvalidatesSubtree(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	vr, err := tr.Attach(tr.Root(), routerSpec, "default", nil)
	require.NoError(t, err)
	route, err := tr.Attach(vr, routeSpec, "to-dmz", nil)
	require.NoError(t, err)

	tx.EXPECT().
		Delete(gomock.Any(), devicePrefix+"/network/virtual-router/entry[@name='default']").
		Return(parseDoc(t, `<response status="success"/>`), nil)

	check.NoError(tr.Delete(context.Background(), vr))

	_, err = tr.Kind(vr)
	check.ErrorIs(err, ErrStaleHandle)
	_, err = tr.Kind(route)
	check.ErrorIs(err, ErrStaleHandle, "descendant handles go stale too")

	children, err := tr.Children(tr.Root())
	check.NoError(err)
	check.Empty(children)
}

func TestDeleteRemoteFailureKeepsNode(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", nil)
	require.NoError(t, err)

	remote := panerr.ClassifyRemote("error", "7", "No such node")
	tx.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil, remote)

	err = tr.Delete(context.Background(), h)
	check.True(panerr.IsNoSuchNode(err), "remote errors surface verbatim, even no-such-node on delete")

	_, err = tr.Kind(h)
	check.NoError(err, "the local node survives a failed delete")
}

func TestRefreshReplacesValuesAndChildren(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	vr, err := tr.Attach(tr.Root(), routerSpec, "default", map[string]interface{}{
		"interfaces": []string{"ethernet1/9"},
	})
	require.NoError(t, err)
	stale, err := tr.Attach(vr, routeSpec, "local-only", nil)
	require.NoError(t, err)

	tx.EXPECT().
		Get(gomock.Any(), devicePrefix+"/network/virtual-router/entry[@name='default']").
		Return(parseDoc(t, `<response status="success"><result>
			<entry name="default">
				<interface><member>ethernet1/1</member><member>ethernet1/2</member></interface>
				<routing-table><ip><static-route>
					<entry name="to-dmz"><destination>10.9.0.0/16</destination><metric>50</metric></entry>
				</static-route></ip></routing-table>
			</entry>
		</result></response>`), nil)

	warnings, err := tr.Refresh(context.Background(), vr)
	check.NoError(err)
	check.Empty(warnings)

	ifaces, err := tr.Attr(vr, "interfaces")
	check.NoError(err)
	check.Equal([]string{"ethernet1/1", "ethernet1/2"}, ifaces)

	_, err = tr.Kind(stale)
	check.ErrorIs(err, ErrStaleHandle, "refresh replaces the local child set")

	routes := tr.FindAll(vr, "test-route")
	require.Len(t, routes, 1)
	name, err := tr.Name(routes[0])
	check.NoError(err)
	check.Equal("to-dmz", name)
	metric, err := tr.Attr(routes[0], "metric")
	check.NoError(err)
	check.Equal(50, metric)
	state, err := tr.State(routes[0])
	check.NoError(err)
	check.Equal(Synced, state)
}

func TestRefreshWithoutChildren(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	vr, err := tr.Attach(tr.Root(), routerSpec, "default", nil)
	require.NoError(t, err)
	kept, err := tr.Attach(vr, routeSpec, "local-only", nil)
	require.NoError(t, err)

	tx.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(parseDoc(t, `<response status="success"><result>
			<entry name="default"><interface><member>ethernet1/1</member></interface></entry>
		</result></response>`), nil)

	_, err = tr.Refresh(context.Background(), vr, WithoutChildren())
	check.NoError(err)

	_, err = tr.Kind(kept)
	check.NoError(err, "WithoutChildren leaves the local child set alone")
}

func TestRefreshFromRunningConfigUsesShow(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", nil)
	require.NoError(t, err)

	tx.EXPECT().
		Show(gomock.Any(), vsysPrefix+"/address/entry[@name='a']").
		Return(parseDoc(t, `<response status="success"><result>
			<entry name="a"><ip-netmask>10.0.0.1/32</ip-netmask></entry>
		</result></response>`), nil)

	_, err = tr.Refresh(context.Background(), h, FromRunningConfig())
	check.NoError(err)
}

func TestRefreshResponseShape(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", nil)
	require.NoError(t, err)

	tx.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(parseDoc(t, `<response status="success"/>`), nil)

	_, err = tr.Refresh(context.Background(), h)
	check.True(panerr.IsResponseShape(err))
}

func TestRefreshSurfacesRemoteErrors(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), addressSpec, "gone", nil)
	require.NoError(t, err)

	tx.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, panerr.ClassifyRemote("error", "", "No such node"))

	_, err = tr.Refresh(context.Background(), h)
	check.True(panerr.IsNoSuchNode(err))
}

func TestRefreshAllReplacesKind(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	old, err := tr.Attach(tr.Root(), addressSpec, "local-only", nil)
	require.NoError(t, err)
	other, err := tr.Attach(tr.Root(), ifaceSpec, "ethernet1/1", nil)
	require.NoError(t, err)

	tx.EXPECT().
		Get(gomock.Any(), vsysPrefix+"/address").
		Return(parseDoc(t, `<response status="success"><result><address>
			<entry name="a"><ip-netmask>10.0.0.1/32</ip-netmask></entry>
			<entry name="b"><description>second</description></entry>
		</address></result></response>`), nil)

	handles, warnings, err := tr.RefreshAll(context.Background(), tr.Root(), addressSpec)
	check.NoError(err)
	check.Empty(warnings)
	require.Len(t, handles, 2)

	names := make([]string, 0, 2)
	for _, h := range handles {
		name, err := tr.Name(h)
		check.NoError(err)
		names = append(names, name)
	}
	check.Equal([]string{"a", "b"}, names)

	_, err = tr.Kind(old)
	check.ErrorIs(err, ErrStaleHandle)
	_, err = tr.Kind(other)
	check.NoError(err, "other kinds under the parent are untouched")
}

func TestRefreshAllEmptyContainer(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	tx.EXPECT().
		Get(gomock.Any(), vsysPrefix+"/address").
		Return(parseDoc(t, `<response status="success"><result><address/></result></response>`), nil)

	handles, warnings, err := tr.RefreshAll(context.Background(), tr.Root(), addressSpec)
	check.NoError(err)
	check.Empty(warnings)
	check.Empty(handles, "a present but empty container is zero entries, not an error")
}

func TestRefreshAllMissingNode(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	old, err := tr.Attach(tr.Root(), addressSpec, "local-only", nil)
	require.NoError(t, err)

	tx.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, panerr.ClassifyRemote("error", "7", "No such node"))

	handles, _, err := tr.RefreshAll(context.Background(), tr.Root(), addressSpec)
	check.NoError(err, "an absent container means zero entries")
	check.Empty(handles)
	_, err = tr.Kind(old)
	check.ErrorIs(err, ErrStaleHandle)
}

func TestUpdateField(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), ifaceSpec, "ethernet1/1", map[string]interface{}{"mtu": 9216})
	require.NoError(t, err)
	fieldXPath := devicePrefix + "/network/interface/ethernet/entry[@name='ethernet1/1']/layer3/mtu"

	tx.EXPECT().Edit(gomock.Any(), fieldXPath, "<mtu>9216</mtu>").
		Return(parseDoc(t, `<response status="success"/>`), nil)
	check.NoError(tr.Update(context.Background(), h, "mtu"))

	// unsetting the attribute deletes the element
	require.NoError(t, tr.SetAttr(h, "mtu", nil))
	tx.EXPECT().Delete(gomock.Any(), fieldXPath).
		Return(parseDoc(t, `<response status="success"/>`), nil)
	check.NoError(tr.Update(context.Background(), h, "mtu"))

	check.True(panerr.IsUnknownField(tr.Update(context.Background(), h, "bogus")))
}

func TestRefreshField(t *testing.T) {
	check := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mocks.NewMockTransport(ctrl)
	tr := newTestTree(tx)

	h, err := tr.Attach(tr.Root(), ifaceSpec, "ethernet1/1", nil)
	require.NoError(t, err)
	fieldXPath := devicePrefix + "/network/interface/ethernet/entry[@name='ethernet1/1']/layer3/mtu"

	tx.EXPECT().Get(gomock.Any(), fieldXPath).
		Return(parseDoc(t, `<response status="success"><result><mtu>1400</mtu></result></response>`), nil)

	w, err := tr.RefreshField(context.Background(), h, "mtu")
	check.NoError(err)
	check.Nil(w)
	mtu, err := tr.Attr(h, "mtu")
	check.NoError(err)
	check.Equal(1400, mtu)

	// a missing remote element unsets the attribute
	tx.EXPECT().Get(gomock.Any(), fieldXPath).
		Return(nil, panerr.ClassifyRemote("error", "", "No such node"))
	w, err = tr.RefreshField(context.Background(), h, "mtu")
	check.NoError(err)
	check.Nil(w)
	v, err := tr.Values(h)
	require.NoError(t, err)
	_, set := v.Lookup("mtu")
	check.False(set)
}

func TestSyncWithoutTransport(t *testing.T) {
	check := assert.New(t)
	tr := newTestTree(nil)

	h, err := tr.Attach(tr.Root(), addressSpec, "a", nil)
	require.NoError(t, err)

	check.ErrorIs(tr.Create(context.Background(), h), ErrNoTransport)
	check.ErrorIs(tr.Apply(context.Background(), h), ErrNoTransport)
	check.ErrorIs(tr.Delete(context.Background(), h), ErrNoTransport)
	_, err = tr.Refresh(context.Background(), h)
	check.ErrorIs(err, ErrNoTransport)
	_, _, err = tr.RefreshAll(context.Background(), tr.Root(), addressSpec)
	check.ErrorIs(err, ErrNoTransport)
}
