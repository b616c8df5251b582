package schema

import (
	"fmt"

	"github.com/panosdev/panconf/panerr"
)

// Values is a validated attribute set for one object kind. Attribute names
// not declared in the kind's schema are rejected at construction and on
// Set, never accepted and silently stored. Values is not safe for
// concurrent mutation.
type Values struct {
	spec *Spec
	m    map[string]interface{}
}

// NewValues returns a Values for spec, populated from attrs.
func NewValues(spec *Spec, attrs map[string]interface{}) (*Values, error) {
	v := &Values{spec: spec, m: make(map[string]interface{}, len(attrs))}
	for name, val := range attrs {
		if err := v.Set(name, val); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Spec returns the kind schema the values conform to.
func (v *Values) Spec() *Spec { return v.spec }

// Set stores an attribute value, checking the name against the schema and
// the value against the field's declared kind.
func (v *Values) Set(name string, val interface{}) error {
	f, ok := v.spec.Field(name)
	if !ok {
		return panerr.UnknownFieldError{Kind: v.spec.Kind, Field: name}
	}
	if val == nil {
		delete(v.m, name)
		return nil
	}
	if err := checkKind(f, val); err != nil {
		return panerr.SerializationError{Kind: v.spec.Kind, Field: name, Reason: err.Error()}
	}
	v.m[name] = val
	return nil
}

// SetText stores raw element text for an attribute without kind conversion.
// The deserializer uses it when a declared-numeric field arrives with
// non-numeric text; the remote device is authoritative, so the raw text is
// kept rather than failing the refresh.
func (v *Values) SetText(name, raw string) error {
	if _, ok := v.spec.Field(name); !ok {
		return panerr.UnknownFieldError{Kind: v.spec.Kind, Field: name}
	}
	v.m[name] = raw
	return nil
}

// Get returns the attribute value, substituting the field default when the
// attribute is unset. ok is false only for names absent from the schema.
func (v *Values) Get(name string) (val interface{}, ok bool) {
	f, found := v.spec.Field(name)
	if !found {
		return nil, false
	}
	if val, ok = v.m[name]; ok {
		return val, true
	}
	return f.Default, true
}

// Lookup returns the attribute value only if it was explicitly set.
func (v *Values) Lookup(name string) (interface{}, bool) {
	val, ok := v.m[name]
	return val, ok
}

// Unset removes an explicit attribute value.
func (v *Values) Unset(name string) { delete(v.m, name) }

// Len returns the number of explicitly set attributes.
func (v *Values) Len() int { return len(v.m) }

// Clone returns a copy sharing the schema but not the attribute map.
func (v *Values) Clone() *Values {
	m := make(map[string]interface{}, len(v.m))
	for k, val := range v.m {
		if members, ok := val.([]string); ok {
			val = append([]string(nil), members...)
		}
		m[k] = val
	}
	return &Values{spec: v.spec, m: m}
}

// Equal reports whether both value sets were built against the same schema
// and hold the same explicit attributes.
func (v *Values) Equal(o *Values) bool {
	if v.spec != o.spec || len(v.m) != len(o.m) {
		return false
	}
	for k, val := range v.m {
		oval, ok := o.m[k]
		if !ok {
			return false
		}
		if a, ok := val.([]string); ok {
			b, ok := oval.([]string)
			if !ok || len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			continue
		}
		if val != oval {
			return false
		}
	}
	return true
}

func checkKind(f Field, val interface{}) error {
	switch f.Kind {
	case String, Nested:
		if _, ok := val.(string); !ok {
			return fmt.Errorf("want string, got %T", val)
		}
	case Int:
		switch val.(type) {
		case int, string:
			// string is permitted so a refreshed raw-text value survives a
			// subsequent round trip
		default:
			return fmt.Errorf("want int, got %T", val)
		}
	case Bool:
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("want bool, got %T", val)
		}
	case Member, EntryList:
		if _, ok := val.([]string); !ok {
			return fmt.Errorf("want []string, got %T", val)
		}
	default:
		return fmt.Errorf("unsupported value kind %s", f.Kind)
	}
	return nil
}
