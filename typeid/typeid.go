// Package typeid defines the single-byte type tag table that prefixes every
// value in the bxes values section. Tags are part of the on-disk format and
// must never be renumbered once assigned.
package typeid

// ID identifies the wire representation of a Value.
type ID uint8

// The canonical tag assignment. These numbers are load-bearing: they appear
// in every bxes file ever written and must stay stable across versions.
const (
	Int32             ID = 0
	Int64             ID = 1
	Uint32            ID = 2
	Uint64            ID = 3
	Float32           ID = 4
	Float64           ID = 5
	String            ID = 6
	Bool              ID = 7
	Timestamp         ID = 8
	BrafLifecycle     ID = 9
	StandardLifecycle ID = 10
	Artifact          ID = 11
	Drivers           ID = 12
	Guid              ID = 13
	SoftwareEventType ID = 14

	// maxKnown is the highest tag value this codec understands.
	maxKnown = SoftwareEventType
)

// Valid reports whether id falls within the known tag table.
func (id ID) Valid() bool {
	return id <= maxKnown
}

func (id ID) String() string {
	switch id {
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Uint32:
		return "Uint32"
	case Uint64:
		return "Uint64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Timestamp:
		return "Timestamp"
	case BrafLifecycle:
		return "BrafLifecycle"
	case StandardLifecycle:
		return "StandardLifecycle"
	case Artifact:
		return "Artifact"
	case Drivers:
		return "Drivers"
	case Guid:
		return "Guid"
	case SoftwareEventType:
		return "SoftwareEventType"
	default:
		return "Unknown"
	}
}
