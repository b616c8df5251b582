package device

import (
	"context"

	"github.com/panosdev/panconf/codec"
	"github.com/panosdev/panconf/network"
	"github.com/panosdev/panconf/object"
	_ "github.com/panosdev/panconf/objects" // register shared object kinds
	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xapi"
)

const (
	localhostPrefix = "/config/devices/entry[@name='localhost.localdomain']"

	// SharedVsys pins vsys-scoped kinds to the shared partition instead of
	// a virtual system.
	SharedVsys = "shared"

	// DefaultVsys is the virtual system every firewall ships with.
	DefaultVsys = "vsys1"
)

// Firewall is the device root for one PAN-OS firewall. It owns the
// configuration tree and resolves partition prefixes for every node in
// it. The vsys setting rescopes all vsys-partition kinds at XPath
// resolution time; nodes themselves never record a vsys.
//
// The interface index is derived state: it maps interface names to their
// tree handles and is maintained by AddInterface, DeleteInterface and
// RefreshInterfaces. It exists so zone and router membership updates can
// reach an interface node by name without walking the tree.
type Firewall struct {
	tree       *object.Tree
	vsys       string
	interfaces map[string]object.Handle
}

// NewFirewall returns a firewall root bound to tx, scoped to the given
// vsys ("" selects vsys1, SharedVsys selects the shared partition).
func NewFirewall(tx xapi.Transport, vsys string) *Firewall {
	if vsys == "" {
		vsys = DefaultVsys
	}
	f := &Firewall{vsys: vsys, interfaces: make(map[string]object.Handle)}
	f.tree = object.NewTree(firewallSpec, f, tx)
	return f
}

// RootPrefix implements object.ScopeResolver for firewall trees.
func (f *Firewall) RootPrefix(root schema.Root) (string, error) {
	switch root {
	case schema.Device:
		return localhostPrefix, nil
	case schema.Vsys:
		if f.vsys == SharedVsys {
			return "/config/shared", nil
		}
		return localhostPrefix + "/vsys/entry[@name='" + f.vsys + "']", nil
	case schema.MgtConfig:
		return "/config/mgt-config", nil
	case schema.Panorama:
		return "/config/panorama", nil
	default:
		return "", panerr.ScopeError{Scope: root.String(), Reason: "not addressable on a firewall"}
	}
}

// Tree returns the firewall's configuration tree.
func (f *Firewall) Tree() *object.Tree { return f.tree }

// Root returns the device root handle.
func (f *Firewall) Root() object.Handle { return f.tree.Root() }

// Vsys returns the vsys the firewall is scoped to.
func (f *Firewall) Vsys() string { return f.vsys }

// SetVsys rescopes the firewall. Every vsys-partition node in the tree
// resolves under the new vsys from now on; local state is untouched.
func (f *Firewall) SetVsys(vsys string) {
	if vsys == "" {
		vsys = DefaultVsys
	}
	f.vsys = vsys
}

// AddInterface attaches an ethernet interface node and indexes it by
// name. The node is local until created or applied.
func (f *Firewall) AddInterface(name string, attrs map[string]interface{}) (object.Handle, error) {
	h, err := f.tree.Attach(f.Root(), network.EthernetInterface, name, attrs)
	if err != nil {
		return object.Handle{}, err
	}
	f.interfaces[name] = h
	return h, nil
}

// Interface returns the indexed handle for an interface name.
func (f *Firewall) Interface(name string) (object.Handle, bool) {
	h, ok := f.interfaces[name]
	return h, ok
}

// DeleteInterface deletes the named interface from the device and drops
// it from the tree and the index.
func (f *Firewall) DeleteInterface(ctx context.Context, name string) error {
	h, ok := f.interfaces[name]
	if !ok {
		return panerr.ContainmentError{
			ParentKind: firewallSpec.Kind, ChildKind: network.EthernetInterface.Kind,
			Name: name, Reason: "not present in the interface index"}
	}
	if err := f.tree.Delete(ctx, h); err != nil {
		return err
	}
	delete(f.interfaces, name)
	return nil
}

// RefreshInterfaces replaces the tree's ethernet interfaces with the
// device's candidate configuration and rebuilds the index. Handles held
// from before the refresh go stale.
func (f *Firewall) RefreshInterfaces(ctx context.Context) ([]codec.Warning, error) {
	handles, warnings, err := f.tree.RefreshAll(ctx, f.Root(), network.EthernetInterface)
	if err != nil {
		return warnings, err
	}
	f.interfaces = make(map[string]object.Handle, len(handles))
	for _, h := range handles {
		name, err := f.tree.Name(h)
		if err != nil {
			return warnings, err
		}
		f.interfaces[name] = h
	}
	return warnings, nil
}

// CreateVsys creates a virtual system entry on the device.
func (f *Firewall) CreateVsys(ctx context.Context, name, displayName string) (object.Handle, error) {
	var attrs map[string]interface{}
	if displayName != "" {
		attrs = map[string]interface{}{"display-name": displayName}
	}
	h, err := f.tree.Attach(f.Root(), Vsys, name, attrs)
	if err != nil {
		return object.Handle{}, err
	}
	if err := f.tree.Create(ctx, h); err != nil {
		return object.Handle{}, err
	}
	return h, nil
}

// DeleteVsys deletes a virtual system entry from the device. A firewall
// currently scoped to that vsys keeps its scope; subsequent syncs of
// vsys-partition nodes will fail remotely until it is rescoped.
func (f *Firewall) DeleteVsys(ctx context.Context, h object.Handle) error {
	return f.tree.Delete(ctx, h)
}

// SetHostname pushes a new hostname through the system settings
// singleton, creating the local node on first use.
func (f *Firewall) SetHostname(ctx context.Context, hostname string) error {
	h, err := f.systemSettings()
	if err != nil {
		return err
	}
	if err := f.tree.SetAttr(h, "hostname", hostname); err != nil {
		return err
	}
	return f.tree.Update(ctx, h, "hostname")
}

// SetDNSServers pushes the primary and secondary DNS servers. An empty
// secondary removes the secondary server from the device.
func (f *Firewall) SetDNSServers(ctx context.Context, primary, secondary string) error {
	h, err := f.systemSettings()
	if err != nil {
		return err
	}
	if err := f.tree.SetAttr(h, "dns-primary", primary); err != nil {
		return err
	}
	if err := f.tree.Update(ctx, h, "dns-primary"); err != nil {
		return err
	}
	var val interface{}
	if secondary != "" {
		val = secondary
	}
	if err := f.tree.SetAttr(h, "dns-secondary", val); err != nil {
		return err
	}
	return f.tree.Update(ctx, h, "dns-secondary")
}

func (f *Firewall) systemSettings() (object.Handle, error) {
	return f.tree.FindOrAttach(f.Root(), SystemSettings, "")
}

// InterfaceRef addresses an interface for membership operations: by name,
// or by the handle of an interface node in the firewall's tree. The two
// variants are the only ways to reference an interface; there is no
// runtime type inspection of arbitrary arguments.
type InterfaceRef struct {
	name   string
	handle object.Handle
	byName bool
}

// InterfaceByName references an interface by its device name.
func InterfaceByName(name string) InterfaceRef {
	return InterfaceRef{name: name, byName: true}
}

// InterfaceByHandle references an interface through its tree handle.
func InterfaceByHandle(h object.Handle) InterfaceRef {
	return InterfaceRef{handle: h}
}

func (f *Firewall) interfaceName(ref InterfaceRef) (string, error) {
	if ref.byName {
		return ref.name, nil
	}
	return f.tree.Name(ref.handle)
}

// AttachToZone adds the referenced interface to a zone's membership list.
// The change is local until the zone is pushed.
func (f *Firewall) AttachToZone(zone object.Handle, ref InterfaceRef) error {
	return f.appendMember(zone, "interfaces", ref)
}

// AttachToRouter adds the referenced interface to a virtual router's
// interface list. The change is local until the router is pushed.
func (f *Firewall) AttachToRouter(vr object.Handle, ref InterfaceRef) error {
	return f.appendMember(vr, "interfaces", ref)
}

func (f *Firewall) appendMember(h object.Handle, field string, ref InterfaceRef) error {
	name, err := f.interfaceName(ref)
	if err != nil {
		return err
	}
	v, err := f.tree.Values(h)
	if err != nil {
		return err
	}
	var members []string
	if cur, ok := v.Lookup(field); ok {
		members = cur.([]string)
	}
	for _, m := range members {
		if m == name {
			return nil
		}
	}
	updated := append(append([]string(nil), members...), name)
	return v.Set(field, updated)
}

var _ object.ScopeResolver = (*Firewall)(nil)
