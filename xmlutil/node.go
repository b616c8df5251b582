package xmlutil

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Text returns the trimmed inner text of n, or "" for a nil node.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

// Attr returns the value of the named attribute on n.
func Attr(n *xmlquery.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Child returns the first child element of n with the given local name.
func Child(n *xmlquery.Node, name string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

// Children returns all child elements of n with the given local name.
func Children(n *xmlquery.Node, name string) (out []*xmlquery.Node) {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}
	return out
}

// ChildPath walks '/'-separated element names from n, returning the element
// at the end of the chain or nil when any segment is absent.
func ChildPath(n *xmlquery.Node, path string) *xmlquery.Node {
	for _, seg := range strings.Split(path, "/") {
		if n = Child(n, seg); n == nil {
			return nil
		}
	}
	return n
}
