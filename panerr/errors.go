package panerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContainmentError indicates an invalid parent/child kind pairing, or a
// sibling identity collision, detected when attaching a node to the tree.
// It is raised at the attach call; the tree is left unchanged.
type ContainmentError struct {
	ParentKind string
	ChildKind  string
	Name       string
	Reason     string
}

func (e ContainmentError) Error() string {
	s := fmt.Sprintf("containment error: kind %s not allowed under %s", e.ChildKind, e.ParentKind)
	if e.Name != "" {
		s += fmt.Sprintf(" (entry %q)", e.Name)
	}
	if e.Reason != "" {
		s += ": " + e.Reason
	}
	return s
}

// ScopeError indicates an XPath could not be resolved for the tree's
// declared root scope, such as a panorama-scoped path requested on a
// firewall tree.
type ScopeError struct {
	Scope  string
	Reason string
}

func (e ScopeError) Error() string {
	return fmt.Sprintf("scope error: cannot resolve %s root: %s", e.Scope, e.Reason)
}

// SerializationError indicates an attribute value could not be encoded for
// its declared field kind. It is raised before any transport call is made.
type SerializationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %s field %s: %s", e.Kind, e.Field, e.Reason)
}

// UnknownFieldError indicates an attribute name not declared in the object
// kind's schema. Unknown names are rejected at construction, never stored.
type UnknownFieldError struct {
	Kind  string
	Field string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for kind %s", e.Field, e.Kind)
}

// ResponseShapeError indicates a remote response did not contain the
// expected container element during a refresh. It is raised rather than
// returning an empty tree, since silent emptiness is indistinguishable from
// a device with nothing configured.
type ResponseShapeError struct {
	XPath   string
	Missing string
}

func (e ResponseShapeError) Error() string {
	return fmt.Sprintf("response shape error: no <%s> element in response for %s", e.Missing, e.XPath)
}

// IsContainment reports whether err is, or wraps, a ContainmentError.
func IsContainment(err error) bool {
	var ce ContainmentError
	return errors.As(err, &ce)
}

// IsScope reports whether err is, or wraps, a ScopeError.
func IsScope(err error) bool {
	var se ScopeError
	return errors.As(err, &se)
}

// IsUnknownField reports whether err is, or wraps, an UnknownFieldError.
func IsUnknownField(err error) bool {
	var ue UnknownFieldError
	return errors.As(err, &ue)
}

// IsSerialization reports whether err is, or wraps, a SerializationError.
func IsSerialization(err error) bool {
	var se SerializationError
	return errors.As(err, &se)
}

// IsResponseShape reports whether err is, or wraps, a ResponseShapeError.
func IsResponseShape(err error) bool {
	var re ResponseShapeError
	return errors.As(err, &re)
}
