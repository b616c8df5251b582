package device

import (
	"github.com/panosdev/panconf/object"
	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xapi"
)

// Panorama is the device root for a Panorama management server. Vsys
// partition kinds resolve to the shared partition, and the template
// partition resolves inside the currently selected template. Requests
// proxied to a managed firewall go through a transport configured with
// that firewall's serial number.
type Panorama struct {
	tree        *object.Tree
	template    string
	deviceGroup string
}

// NewPanorama returns a Panorama root bound to tx.
func NewPanorama(tx xapi.Transport) *Panorama {
	p := &Panorama{}
	p.tree = object.NewTree(panoramaSpec, p, tx)
	return p
}

// RootPrefix implements object.ScopeResolver for Panorama trees.
func (p *Panorama) RootPrefix(root schema.Root) (string, error) {
	switch root {
	case schema.Device:
		return localhostPrefix, nil
	case schema.Vsys:
		if p.deviceGroup != "" {
			return localhostPrefix + "/device-group/entry[@name='" + p.deviceGroup + "']", nil
		}
		return "/config/shared", nil
	case schema.MgtConfig:
		return "/config/mgt-config", nil
	case schema.Panorama:
		return "/config/panorama", nil
	case schema.Template:
		if p.template == "" {
			return "", panerr.ScopeError{Scope: root.String(), Reason: "no template selected"}
		}
		return localhostPrefix + "/template/entry[@name='" + p.template + "']/config" + localhostPrefix, nil
	default:
		return "", panerr.ScopeError{Scope: root.String(), Reason: "not addressable on panorama"}
	}
}

// Tree returns the Panorama configuration tree.
func (p *Panorama) Tree() *object.Tree { return p.tree }

// Root returns the device root handle.
func (p *Panorama) Root() object.Handle { return p.tree.Root() }

// Template returns the selected template, or "".
func (p *Panorama) Template() string { return p.template }

// SetTemplate selects the template that template-partition kinds resolve
// inside. An empty name deselects.
func (p *Panorama) SetTemplate(name string) { p.template = name }

// DeviceGroup returns the selected device group, or "".
func (p *Panorama) DeviceGroup() string { return p.deviceGroup }

// SetDeviceGroup rescopes vsys-partition kinds into a device group. An
// empty name restores the shared partition.
func (p *Panorama) SetDeviceGroup(name string) { p.deviceGroup = name }

var _ object.ScopeResolver = (*Panorama)(nil)
