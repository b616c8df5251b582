package codec

import (
	"fmt"
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xmlutil"
)

// Warning reports a non-fatal conversion problem found while reading a
// remote response. The remote device is authoritative and may return an
// unexpected shape; the raw text is kept and the refresh continues.
type Warning struct {
	Kind  string
	Field string
	Text  string
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s.%s: %v (kept raw text %q)", w.Kind, w.Field, w.Err, w.Text)
}

// Unmarshal reads attribute values for spec out of an object element (an
// <entry> or a singleton container). Elements not named by the schema are
// ignored; schema fields absent from the document are left unset, so reads
// observe their declared defaults. Numeric coercion applies only to fields
// declared Int and never fails the refresh.
func Unmarshal(n *xmlquery.Node, spec *schema.Spec) (*schema.Values, []Warning, error) {
	v, err := schema.NewValues(spec, nil)
	if err != nil {
		return nil, nil, err
	}
	var warnings []Warning
	for _, f := range spec.Fields {
		name := f.Name()
		switch f.Kind {
		case schema.Member, schema.EntryList:
			parent := n
			if tag := f.Tag; tag != "" {
				parent = xmlutil.ChildPath(n, tag)
			}
			if parent == nil {
				continue
			}
			items := listItems(parent, f.Kind)
			if items != nil {
				if err := v.Set(name, items); err != nil {
					return nil, nil, err
				}
			}
		default:
			el := xmlutil.ChildPath(n, f.Tag)
			if el == nil {
				continue
			}
			text := xmlutil.Text(el)
			val, convErr := convert(f, text)
			if convErr != nil {
				warnings = append(warnings, Warning{Kind: spec.Kind, Field: name, Text: text, Err: convErr})
				if err := v.SetText(name, text); err != nil {
					return nil, nil, err
				}
				continue
			}
			if err := v.Set(name, val); err != nil {
				return nil, nil, err
			}
		}
	}
	return v, warnings, nil
}

// EntryName returns the name attribute of an <entry> element.
func EntryName(n *xmlquery.Node) string { return xmlutil.Attr(n, "name") }

// listItems collects a list field's items from its container element:
// <member> body text, or <entry> name attributes.
func listItems(parent *xmlquery.Node, kind schema.ValueKind) []string {
	var items []string
	if kind == schema.EntryList {
		for _, e := range xmlutil.Children(parent, "entry") {
			items = append(items, EntryName(e))
		}
		return items
	}
	for _, m := range xmlutil.Children(parent, "member") {
		items = append(items, xmlutil.Text(m))
	}
	return items
}

func convert(f schema.Field, text string) (interface{}, error) {
	switch f.Kind {
	case schema.Int:
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, err
		}
		return n, nil
	case schema.Bool:
		return text == "yes", nil
	default:
		return text, nil
	}
}
