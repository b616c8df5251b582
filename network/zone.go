package network

import "github.com/panosdev/panconf/schema"

// Zone is a security zone. The interface membership list lives under the
// zone's network type element; only layer 3 zones are modeled.
var Zone = schema.Register(&schema.Spec{
	Kind:   "zone",
	Path:   "zone",
	Suffix: schema.Entry,
	Root:   schema.Vsys,
	Fields: []schema.Field{
		{Tag: "network/layer3", Attr: "interfaces", Kind: schema.Member},
		{Tag: "enable-user-identification", Kind: schema.Bool},
	},
})
