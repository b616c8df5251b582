package network

import "github.com/panosdev/panconf/schema"

// VirtualRouter is a routing instance owning a set of layer 3 interfaces.
// Static routes are declared as child entries.
var VirtualRouter = schema.Register(&schema.Spec{
	Kind:   "virtual-router",
	Path:   "network/virtual-router",
	Suffix: schema.Entry,
	Root:   schema.Device,
	Fields: []schema.Field{
		{Tag: "interface", Attr: "interfaces", Kind: schema.Member},
		{Tag: "admin-dists/static", Attr: "ad-static", Kind: schema.Int, Default: 10},
		{Tag: "admin-dists/ospf-int", Attr: "ad-ospf-int", Kind: schema.Int, Default: 30},
	},
	ChildKinds: []string{"static-route"},
})

// StaticRoute is an IPv4 static route under a virtual router.
var StaticRoute = schema.Register(&schema.Spec{
	Kind:   "static-route",
	Path:   "routing-table/ip/static-route",
	Suffix: schema.Entry,
	Root:   schema.Device,
	Fields: []schema.Field{
		{Tag: "destination", Kind: schema.String},
		{Tag: "interface", Kind: schema.String},
		{Tag: "nexthop/ip-address", Attr: "nexthop", Kind: schema.String},
		{Tag: "metric", Kind: schema.Int, Default: 10},
	},
})
