package codec

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xmlutil"
)

// MarshalField serializes a single attribute to the XML fragment for an
// edit of the field's own element. Only the final tag segment is emitted;
// the intermediate segments belong to the XPath.
func MarshalField(v *schema.Values, name string) ([]byte, error) {
	spec := v.Spec()
	f, ok := spec.Field(name)
	if !ok {
		return nil, panerr.UnknownFieldError{Kind: spec.Kind, Field: name}
	}
	val, set := v.Lookup(name)
	if !set {
		return nil, panerr.SerializationError{Kind: spec.Kind, Field: name, Reason: "field is unset"}
	}
	segs := pathSegments(f.Tag)
	root := &elem{tag: segs[len(segs)-1]}
	if err := encode(root, spec.Kind, f, val); err != nil {
		return nil, err
	}
	var b strings.Builder
	root.render(&b)
	return []byte(b.String()), nil
}

// FieldPath returns the field's element path relative to the object
// element, for building per-field XPaths.
func FieldPath(spec *schema.Spec, name string) (string, error) {
	f, ok := spec.Field(name)
	if !ok {
		return "", panerr.UnknownFieldError{Kind: spec.Kind, Field: name}
	}
	return f.Tag, nil
}

// UnmarshalField reads one attribute value out of the field's own element,
// as returned by a per-field get. Int coercion failure keeps the raw text
// and reports a warning, matching whole-object refresh behavior.
func UnmarshalField(n *xmlquery.Node, v *schema.Values, name string) (*Warning, error) {
	spec := v.Spec()
	f, ok := spec.Field(name)
	if !ok {
		return nil, panerr.UnknownFieldError{Kind: spec.Kind, Field: name}
	}
	if f.Kind == schema.Member || f.Kind == schema.EntryList {
		items := listItems(n, f.Kind)
		if items == nil {
			return nil, v.Set(name, nil)
		}
		return nil, v.Set(name, items)
	}
	text := xmlutil.Text(n)
	val, convErr := convert(f, text)
	if convErr != nil {
		w := &Warning{Kind: spec.Kind, Field: name, Text: text, Err: convErr}
		return w, v.SetText(name, text)
	}
	return nil, v.Set(name, val)
}
