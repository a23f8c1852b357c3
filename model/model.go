// Package model holds the plain data containers bxes encodes and decodes:
// events, trace variants, and the event log envelope. Types here carry no
// behavior beyond construction and structural equality.
package model

import "github.com/PM-IDE/bxes/value"

// Attribute is an ordered (key, value) pair. The key is constrained to be a
// string-tagged value; that constraint is enforced by the type itself rather
// than validated at runtime.
type Attribute struct {
	Key   value.String
	Value value.Value
}

// Equal reports structural equality, order of the surrounding slice aside.
func (a Attribute) Equal(o Attribute) bool {
	return a.Key == o.Key && valuesEqual(a.Value, o.Value)
}

// Event is a single occurrence: a name, a timestamp, a lifecycle stage, and
// an optional ordered list of attributes.
type Event struct {
	Name       value.String
	Timestamp  int64
	Lifecycle  value.Value
	Attributes []Attribute
}

// Equal reports structural, order-sensitive equality between two events.
func (e Event) Equal(o Event) bool {
	if e.Name != o.Name || e.Timestamp != o.Timestamp {
		return false
	}
	if !valuesEqual(e.Lifecycle, o.Lifecycle) {
		return false
	}

	return attributesEqual(e.Attributes, o.Attributes)
}

// TraceVariant is a distinct trace pattern, its multiplicity, optional
// per-variant metadata, and its ordered sequence of events.
type TraceVariant struct {
	TracesCount uint32
	Metadata    []Attribute
	Events      []Event
}

// Equal reports structural, order-sensitive equality between two variants.
func (v TraceVariant) Equal(o TraceVariant) bool {
	if v.TracesCount != o.TracesCount {
		return false
	}
	if !attributesEqual(v.Metadata, o.Metadata) {
		return false
	}
	if len(v.Events) != len(o.Events) {
		return false
	}
	for i := range v.Events {
		if !v.Events[i].Equal(o.Events[i]) {
			return false
		}
	}

	return true
}

// EventLog is the top-level container: a schema version, optional metadata,
// and an ordered sequence of trace variants.
type EventLog struct {
	Version  uint32
	Metadata []Attribute
	Variants []TraceVariant
}

// Equal reports structural, order-sensitive equality between two logs.
func (l *EventLog) Equal(o *EventLog) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.Version != o.Version {
		return false
	}
	if !attributesEqual(l.Metadata, o.Metadata) {
		return false
	}
	if len(l.Variants) != len(o.Variants) {
		return false
	}
	for i := range l.Variants {
		if !l.Variants[i].Equal(o.Variants[i]) {
			return false
		}
	}

	return true
}

func valuesEqual(a, b value.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(b)
}

// attributesEqual treats a nil slice and an empty slice as identical: the
// wire format normalizes both "absent" and "present but empty" to the same
// in-memory shape.
func attributesEqual(a, b []Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
