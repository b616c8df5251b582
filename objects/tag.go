package objects

import "github.com/panosdev/panconf/schema"

// Tag is an administrative tag applied to other objects. Colors are wire
// identifiers ("color1" .. "color42"), not display names.
var Tag = schema.Register(&schema.Spec{
	Kind:   "tag",
	Path:   "tag",
	Suffix: schema.Entry,
	Root:   schema.Vsys,
	Fields: []schema.Field{
		{Tag: "color", Kind: schema.String},
		{Tag: "comments", Kind: schema.String},
	},
})
