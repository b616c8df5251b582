package schema

import "fmt"

// ValueKind is the typed element kind a field serializes to.
type ValueKind int

const (
	// String is a text element
	String ValueKind = iota
	// Int is a decimal text element
	Int
	// Bool is a yes/no text element
	Bool
	// Member is a list serialized as repeated <member> elements
	Member
	// Nested is a text element reached through a nested element chain;
	// the field tag contains '/' separated segments
	Nested
	// EntryList is a list serialized as repeated <entry name="..."/>
	// elements carrying no body
	EntryList
)

func (k ValueKind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Member:
		return "member"
	case Nested:
		return "nested"
	case EntryList:
		return "entry-list"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Suffix selects how an object is addressed within its container.
type Suffix int

const (
	// Entry objects are named: container/entry[@name='x']. Identity is the
	// (kind, name) pair, unique among siblings.
	Entry Suffix = iota
	// Singleton objects have no name; at most one instance per parent.
	Singleton
)

func (s Suffix) String() string {
	switch s {
	case Entry:
		return "entry"
	case Singleton:
		return "singleton"
	default:
		return fmt.Sprintf("Suffix(%d)", int(s))
	}
}

// Root is the configuration partition a kind's XPath is anchored to. The
// prefix for each root is resolved once by the tree's owning device and
// inherited by all descendants.
type Root int

const (
	// Device is the device-global partition
	Device Root = iota
	// Vsys is the per-virtual-system partition (or shared)
	Vsys
	// MgtConfig is the management configuration partition
	MgtConfig
	// Panorama is the Panorama shared partition
	Panorama
	// Template is the Panorama per-template partition
	Template
)

func (r Root) String() string {
	switch r {
	case Device:
		return "device"
	case Vsys:
		return "vsys"
	case MgtConfig:
		return "mgt-config"
	case Panorama:
		return "panorama"
	case Template:
		return "template"
	default:
		return fmt.Sprintf("Root(%d)", int(r))
	}
}
