package value

import (
	"encoding/binary"
	"math"

	"github.com/PM-IDE/bxes/typeid"
	"github.com/google/uuid"
)

// ArtifactEntry is one (instance, transition) index pair inside an Artifact value.
type ArtifactEntry struct {
	InstanceIdx   uint32
	TransitionIdx uint32
}

// Artifact is the extended-schema list-of-index-pairs value variant.
type Artifact struct {
	Entries []ArtifactEntry
}

func (v Artifact) Tag() typeid.ID { return typeid.Artifact }

func (v Artifact) Equal(o Value) bool {
	other, ok := o.(Artifact)
	if !ok || len(other.Entries) != len(v.Entries) {
		return false
	}
	for i, e := range v.Entries {
		if other.Entries[i] != e {
			return false
		}
	}

	return true
}

func (v Artifact) Hash() uint64 {
	buf := make([]byte, 0, 8*len(v.Entries))
	for _, e := range v.Entries {
		var tmp [8]byte
		binary.LittleEndian.PutUint32(tmp[0:4], e.InstanceIdx)
		binary.LittleEndian.PutUint32(tmp[4:8], e.TransitionIdx)
		buf = append(buf, tmp[:]...)
	}

	return hashSeeded(typeid.Artifact, buf)
}

// DriverEntry is one (amount, name index, type index) record inside a Drivers value.
type DriverEntry struct {
	Amount  float64
	NameIdx uint32
	TypeIdx uint32
}

// Drivers is the extended-schema list-of-driver-records value variant.
type Drivers struct {
	Entries []DriverEntry
}

func (v Drivers) Tag() typeid.ID { return typeid.Drivers }

func (v Drivers) Equal(o Value) bool {
	other, ok := o.(Drivers)
	if !ok || len(other.Entries) != len(v.Entries) {
		return false
	}
	for i, e := range v.Entries {
		oe := other.Entries[i]
		if oe.NameIdx != e.NameIdx || oe.TypeIdx != e.TypeIdx {
			return false
		}
		if math.Float64bits(oe.Amount) != math.Float64bits(e.Amount) {
			return false
		}
	}

	return true
}

func (v Drivers) Hash() uint64 {
	buf := make([]byte, 0, 16*len(v.Entries))
	for _, e := range v.Entries {
		var tmp [16]byte
		binary.LittleEndian.PutUint64(tmp[0:8], math.Float64bits(e.Amount))
		binary.LittleEndian.PutUint32(tmp[8:12], e.NameIdx)
		binary.LittleEndian.PutUint32(tmp[12:16], e.TypeIdx)
		buf = append(buf, tmp[:]...)
	}

	return hashSeeded(typeid.Drivers, buf)
}

// Guid is a 16-byte value, stored and compared byte-for-byte. ToUUID/GuidFromUUID
// bridge to github.com/google/uuid for callers that want a textual form.
type Guid [16]byte

func (v Guid) Tag() typeid.ID { return typeid.Guid }
func (v Guid) Equal(o Value) bool {
	other, ok := o.(Guid)
	return ok && other == v
}
func (v Guid) Hash() uint64 { return hashSeeded(typeid.Guid, v[:]) }

// ToUUID converts the raw bytes to a uuid.UUID.
func (v Guid) ToUUID() uuid.UUID { return uuid.UUID(v) }

// GuidFromUUID wraps a uuid.UUID as a Guid value.
func GuidFromUUID(u uuid.UUID) Guid { return Guid(u) }

// SoftwareEventType is the extended-schema software event type ordinal.
type SoftwareEventType uint8

func (v SoftwareEventType) Tag() typeid.ID { return typeid.SoftwareEventType }
func (v SoftwareEventType) Equal(o Value) bool {
	other, ok := o.(SoftwareEventType)
	return ok && other == v
}
func (v SoftwareEventType) Hash() uint64 { return hashUint64(typeid.SoftwareEventType, uint64(v)) }
