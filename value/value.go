// Package value implements the bxes attribute value model: a small closed
// set of tagged variants with structural equality and a hash compatible with
// that equality, so the writer can intern values by content rather than by
// identity.
package value

import (
	"encoding/binary"
	"math"

	"github.com/PM-IDE/bxes/typeid"
	"github.com/cespare/xxhash/v2"
)

// Value is the sum type over every attribute/name/lifecycle payload bxes can
// carry. Concrete types below are the only implementations; a type switch on
// Value is exhaustive over typeid's tag table.
type Value interface {
	// Tag returns the on-disk type tag for this variant.
	Tag() typeid.ID
	// Equal reports structural equality, the notion interning relies on.
	Equal(other Value) bool
	// Hash returns a hash consistent with Equal: equal values hash equal.
	Hash() uint64
}

// hashSeeded mixes the type tag into the hash as a seed so that two variants
// sharing the same underlying bit pattern (Int32(0) and Bool(false), say)
// still hash distinctly.
func hashSeeded(tag typeid.ID, payload []byte) uint64 {
	d := xxhash.NewWithSeed(uint64(tag))
	_, _ = d.Write(payload)

	return d.Sum64()
}

func hashUint64(tag typeid.ID, v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)

	return hashSeeded(tag, buf[:])
}

// Int32 is a signed 32-bit integer value.
type Int32 int32

func (v Int32) Tag() typeid.ID { return typeid.Int32 }
func (v Int32) Equal(o Value) bool {
	other, ok := o.(Int32)
	return ok && other == v
}
func (v Int32) Hash() uint64 { return hashUint64(typeid.Int32, uint64(uint32(v))) }

// Int64 is a signed 64-bit integer value.
type Int64 int64

func (v Int64) Tag() typeid.ID { return typeid.Int64 }
func (v Int64) Equal(o Value) bool {
	other, ok := o.(Int64)
	return ok && other == v
}
func (v Int64) Hash() uint64 { return hashUint64(typeid.Int64, uint64(v)) }

// Uint32 is an unsigned 32-bit integer value.
type Uint32 uint32

func (v Uint32) Tag() typeid.ID { return typeid.Uint32 }
func (v Uint32) Equal(o Value) bool {
	other, ok := o.(Uint32)
	return ok && other == v
}
func (v Uint32) Hash() uint64 { return hashUint64(typeid.Uint32, uint64(v)) }

// Uint64 is an unsigned 64-bit integer value.
type Uint64 uint64

func (v Uint64) Tag() typeid.ID { return typeid.Uint64 }
func (v Uint64) Equal(o Value) bool {
	other, ok := o.(Uint64)
	return ok && other == v
}
func (v Uint64) Hash() uint64 { return hashUint64(typeid.Uint64, uint64(v)) }

// Float32 is a 32-bit IEEE-754 float value. Equality compares the bit
// pattern, not the float, so that NaN == NaN holds and round-trip equality
// stays total.
type Float32 float32

func (v Float32) Tag() typeid.ID { return typeid.Float32 }
func (v Float32) Equal(o Value) bool {
	other, ok := o.(Float32)
	return ok && math.Float32bits(float32(other)) == math.Float32bits(float32(v))
}
func (v Float32) Hash() uint64 { return hashUint64(typeid.Float32, uint64(math.Float32bits(float32(v)))) }

// Float64 is a 64-bit IEEE-754 float value, with the same bitwise-equality
// rule as Float32.
type Float64 float64

func (v Float64) Tag() typeid.ID { return typeid.Float64 }
func (v Float64) Equal(o Value) bool {
	other, ok := o.(Float64)
	return ok && math.Float64bits(float64(other)) == math.Float64bits(float64(v))
}
func (v Float64) Hash() uint64 { return hashUint64(typeid.Float64, math.Float64bits(float64(v))) }

// String is a UTF-8 string value. It is also the only value type allowed as
// an attribute key.
type String string

func (v String) Tag() typeid.ID { return typeid.String }
func (v String) Equal(o Value) bool {
	other, ok := o.(String)
	return ok && other == v
}
func (v String) Hash() uint64 { return hashSeeded(typeid.String, []byte(v)) }

// Bool is a boolean value.
type Bool bool

func (v Bool) Tag() typeid.ID { return typeid.Bool }
func (v Bool) Equal(o Value) bool {
	other, ok := o.(Bool)
	return ok && other == v
}
func (v Bool) Hash() uint64 {
	if v {
		return hashUint64(typeid.Bool, 1)
	}

	return hashUint64(typeid.Bool, 0)
}

// Timestamp is a signed 64-bit tick count. The codec does not interpret its
// unit; it is stored and compared as an opaque integer distinct from Int64.
type Timestamp int64

func (v Timestamp) Tag() typeid.ID { return typeid.Timestamp }
func (v Timestamp) Equal(o Value) bool {
	other, ok := o.(Timestamp)
	return ok && other == v
}
func (v Timestamp) Hash() uint64 { return hashUint64(typeid.Timestamp, uint64(v)) }

// AsString type-asserts v as a string-tagged Value, the constraint bxes
// places on attribute and pair keys.
func AsString(v Value) (String, bool) {
	s, ok := v.(String)
	return s, ok
}

// IsLifecycle reports whether v holds one of the two lifecycle variants.
func IsLifecycle(v Value) bool {
	switch v.(type) {
	case BrafLifecycle, StandardLifecycle:
		return true
	default:
		return false
	}
}
