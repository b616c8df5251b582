package objects

import "github.com/panosdev/panconf/schema"

// AddressObject is a named address value referenced by policy: an IPv4/v6
// netmask, an address range or an FQDN. The three value fields are
// mutually exclusive on the device; the schema carries all three and the
// caller sets exactly one.
var AddressObject = schema.Register(&schema.Spec{
	Kind:   "address-object",
	Path:   "address",
	Suffix: schema.Entry,
	Root:   schema.Vsys,
	Fields: []schema.Field{
		{Tag: "ip-netmask", Kind: schema.String},
		{Tag: "ip-range", Kind: schema.String},
		{Tag: "fqdn", Kind: schema.String},
		{Tag: "description", Kind: schema.String},
		{Tag: "tag", Kind: schema.Member},
	},
})
