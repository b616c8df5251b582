package network

import "github.com/panosdev/panconf/schema"

// EthernetInterface is a physical ethernet port configured for layer 3
// operation. The mtu and management-profile attributes live under the
// layer3 element on the wire.
var EthernetInterface = schema.Register(&schema.Spec{
	Kind:   "ethernet-interface",
	Path:   "network/interface/ethernet",
	Suffix: schema.Entry,
	Root:   schema.Device,
	Fields: []schema.Field{
		{Tag: "link-state", Kind: schema.String, Default: "auto"},
		{Tag: "comment", Kind: schema.String},
		{Tag: "layer3/mtu", Attr: "mtu", Kind: schema.Int},
		{Tag: "layer3/interface-management-profile", Attr: "management-profile", Kind: schema.String},
		{Tag: "layer3/ip", Attr: "static-ips", Kind: schema.EntryList},
	},
})
