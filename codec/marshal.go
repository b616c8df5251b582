// Package codec converts object attribute values to XML configuration
// fragments for push operations, and remote XML documents back into
// attribute values for refresh operations. Element order follows the kind
// schema; the remote grammar is positional.
package codec

import (
	"strconv"
	"strings"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/schema"
	"github.com/panosdev/panconf/xmlutil"
)

// elem is a minimal element tree used to merge nested field chains that
// share a path prefix before rendering.
type elem struct {
	tag      string
	nameAttr string
	text     string
	members  []string
	children []*elem
}

func (e *elem) child(tag string) *elem {
	for _, c := range e.children {
		if c.tag == tag {
			return c
		}
	}
	c := &elem{tag: tag}
	e.children = append(e.children, c)
	return c
}

func (e *elem) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	if e.nameAttr != "" {
		b.WriteString(` name="`)
		b.WriteString(xmlutil.Escape(e.nameAttr))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(xmlutil.Escape(e.text))
	for _, m := range e.members {
		b.WriteString("<member>")
		b.WriteString(xmlutil.Escape(m))
		b.WriteString("</member>")
	}
	for _, c := range e.children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

// Marshal serializes an object's explicit attribute values to an XML
// fragment. Entry kinds produce <entry name="...">, singleton kinds the
// container tag itself. Fields appear in schema order; unset fields are
// omitted. A value that cannot be encoded for its declared kind fails with
// a SerializationError before any transport call is made.
func Marshal(name string, v *schema.Values) ([]byte, error) {
	spec := v.Spec()
	root := &elem{tag: "entry", nameAttr: name}
	if spec.Suffix == schema.Singleton {
		root = &elem{tag: spec.ContainerTag()}
	}
	for _, f := range spec.Fields {
		val, ok := v.Lookup(f.Name())
		if !ok {
			continue
		}
		target := root
		for _, seg := range pathSegments(f.Tag) {
			target = target.child(seg)
		}
		if err := encode(target, spec.Kind, f, val); err != nil {
			return nil, err
		}
	}
	var b strings.Builder
	root.render(&b)
	return []byte(b.String()), nil
}

func pathSegments(tag string) []string {
	return strings.Split(tag, "/")
}

func encode(target *elem, kind string, f schema.Field, val interface{}) error {
	switch f.Kind {
	case schema.String, schema.Nested:
		s, ok := val.(string)
		if !ok {
			return panerr.SerializationError{Kind: kind, Field: f.Name(), Reason: "value is not a string"}
		}
		target.text = s
	case schema.Int:
		switch n := val.(type) {
		case int:
			target.text = strconv.Itoa(n)
		case string:
			// raw text captured during a refresh; emitted verbatim
			target.text = n
		default:
			return panerr.SerializationError{Kind: kind, Field: f.Name(), Reason: "value is not an int"}
		}
	case schema.Bool:
		v, ok := val.(bool)
		if !ok {
			return panerr.SerializationError{Kind: kind, Field: f.Name(), Reason: "value is not a bool"}
		}
		if v {
			target.text = "yes"
		} else {
			target.text = "no"
		}
	case schema.Member:
		members, ok := val.([]string)
		if !ok {
			return panerr.SerializationError{Kind: kind, Field: f.Name(), Reason: "value is not a []string"}
		}
		target.members = append(target.members, members...)
	case schema.EntryList:
		names, ok := val.([]string)
		if !ok {
			return panerr.SerializationError{Kind: kind, Field: f.Name(), Reason: "value is not a []string"}
		}
		for _, name := range names {
			target.children = append(target.children, &elem{tag: "entry", nameAttr: name})
		}
	default:
		return panerr.SerializationError{Kind: kind, Field: f.Name(), Reason: "unsupported value kind " + f.Kind.String()}
	}
	return nil
}
