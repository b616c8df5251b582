package object

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/require"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xapi"
)

const devicePrefix = "/config/devices/entry[@name='localhost.localdomain']"

// testScope resolves prefixes the way a firewall root does, without
// dragging the device package into these tests.
type testScope struct {
	vsys string
}

func (s *testScope) RootPrefix(root schema.Root) (string, error) {
	switch root {
	case schema.Device:
		return devicePrefix, nil
	case schema.Vsys:
		if s.vsys == "shared" {
			return "/config/shared", nil
		}
		return devicePrefix + "/vsys/entry[@name='" + s.vsys + "']", nil
	default:
		return "", panerr.ScopeError{Scope: root.String(), Reason: "not addressable in tests"}
	}
}

var (
	addressSpec = schema.Register(&schema.Spec{
		Kind:   "test-address",
		Path:   "address",
		Suffix: schema.Entry,
		Root:   schema.Vsys,
		Fields: []schema.Field{
			{Tag: "ip-netmask", Kind: schema.String},
			{Tag: "description", Kind: schema.String},
			{Tag: "tag", Kind: schema.Member},
		},
	})

	ifaceSpec = schema.Register(&schema.Spec{
		Kind:   "test-iface",
		Path:   "network/interface/ethernet",
		Suffix: schema.Entry,
		Root:   schema.Device,
		Fields: []schema.Field{
			{Tag: "link-state", Kind: schema.String, Default: "auto"},
			{Tag: "layer3/mtu", Attr: "mtu", Kind: schema.Int},
		},
	})

	routerSpec = schema.Register(&schema.Spec{
		Kind:   "test-router",
		Path:   "network/virtual-router",
		Suffix: schema.Entry,
		Root:   schema.Device,
		Fields: []schema.Field{
			{Tag: "interface", Attr: "interfaces", Kind: schema.Member},
		},
		ChildKinds: []string{"test-route"},
	})

	routeSpec = schema.Register(&schema.Spec{
		Kind:   "test-route",
		Path:   "routing-table/ip/static-route",
		Suffix: schema.Entry,
		Root:   schema.Device,
		Fields: []schema.Field{
			{Tag: "destination", Kind: schema.String},
			{Tag: "metric", Kind: schema.Int, Default: 10},
		},
	})

	settingsSpec = schema.Register(&schema.Spec{
		Kind:   "test-settings",
		Path:   "deviceconfig/system",
		Suffix: schema.Singleton,
		Root:   schema.Device,
		Fields: []schema.Field{
			{Tag: "hostname", Kind: schema.String},
			{Tag: "dns-setting/servers/primary", Attr: "dns-primary", Kind: schema.Nested},
		},
	})

	rootSpec = &schema.Spec{
		Kind: "test-firewall",
		Root: schema.Device,
		ChildKinds: []string{
			"test-address", "test-iface", "test-router", "test-settings",
		},
	}
)

func newTestTree(tx xapi.Transport) *Tree {
	return NewTree(rootSpec, &testScope{vsys: "vsys1"}, tx)
}

func parseDoc(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	n, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}
