package device

import "github.com/panosdev/panconf/schema"

// firewallSpec is the root kind for firewall trees. Its child kinds are
// the kinds attachable directly under the device root; each resolves its
// own partition through the owning Firewall.
var firewallSpec = schema.Register(&schema.Spec{
	Kind: "firewall",
	Root: schema.Device,
	ChildKinds: []string{
		"vsys",
		"vsys-resources",
		"system-settings",
		"address-object",
		"tag",
		"ethernet-interface",
		"zone",
		"virtual-router",
	},
})

// panoramaSpec is the root kind for Panorama trees. Shared policy objects
// attach directly; device-partition kinds are managed through templates.
var panoramaSpec = schema.Register(&schema.Spec{
	Kind: "panorama",
	Root: schema.Panorama,
	ChildKinds: []string{
		"system-settings",
		"address-object",
		"tag",
	},
})

// Vsys is a virtual system entry on a multi-vsys firewall.
var Vsys = schema.Register(&schema.Spec{
	Kind:   "vsys",
	Path:   "vsys",
	Suffix: schema.Entry,
	Root:   schema.Device,
	Fields: []schema.Field{
		{Tag: "display-name", Kind: schema.String},
	},
	ChildKinds: []string{"vsys-resources"},
})

// VsysResources caps per-vsys session and rule consumption. All fields
// are unset by default, which the device reads as unlimited.
var VsysResources = schema.Register(&schema.Spec{
	Kind:   "vsys-resources",
	Path:   "import/resource",
	Suffix: schema.Singleton,
	Root:   schema.Vsys,
	Fields: []schema.Field{
		{Tag: "max-sessions", Kind: schema.Int},
		{Tag: "max-security-rules", Kind: schema.Int},
		{Tag: "max-nat-rules", Kind: schema.Int},
		{Tag: "max-ssl-decryption-rules", Kind: schema.Int},
	},
})

// SystemSettings is the device's management plane configuration.
var SystemSettings = schema.Register(&schema.Spec{
	Kind:   "system-settings",
	Path:   "deviceconfig/system",
	Suffix: schema.Singleton,
	Root:   schema.Device,
	Fields: []schema.Field{
		{Tag: "hostname", Kind: schema.String},
		{Tag: "ip-address", Kind: schema.String},
		{Tag: "netmask", Kind: schema.String},
		{Tag: "default-gateway", Kind: schema.String},
		{Tag: "timezone", Kind: schema.String, Default: "US/Pacific"},
		{Tag: "dns-setting/servers/primary", Attr: "dns-primary", Kind: schema.Nested},
		{Tag: "dns-setting/servers/secondary", Attr: "dns-secondary", Kind: schema.Nested},
		{Tag: "ntp-servers/primary-ntp-server/ntp-server-address", Attr: "ntp-primary", Kind: schema.Nested},
	},
})
