// Package reader implements the bxes read path: the inverse of package
// writer's four-section stream, resolving value and pair indices back into
// an equivalent model.EventLog.
package reader

import (
	"io"

	"github.com/PM-IDE/bxes/codec"
	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/value"
)

// Pair is a resolved (key,value) attribute pair, indexed by its position in
// the pairs section.
type Pair struct {
	key value.String
	val value.Value
}

// Decode reads the four sections of a bxes stream (values, pairs, metadata,
// variants) and reconstructs an equivalent EventLog. It reads no version
// header; the returned log's Version is zero.
func Decode(src io.Reader) (*model.EventLog, error) {
	r := iobin.NewReader(src)

	values, err := ReadValuesSection(r)
	if err != nil {
		return nil, err
	}

	pairs, err := ReadPairsSection(r, values)
	if err != nil {
		return nil, err
	}

	metadata, err := ReadAttributesByIndex(r, pairs)
	if err != nil {
		return nil, err
	}

	variants, err := ReadVariantsSection(r, values, pairs)
	if err != nil {
		return nil, err
	}

	return &model.EventLog{Metadata: metadata, Variants: variants}, nil
}

// ReadValuesSection reads the values section into a slice indexed exactly as
// the writer assigned indices: first-seen order.
func ReadValuesSection(r *iobin.Reader) ([]value.Value, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	values := make([]value.Value, count)
	for i := range values {
		v, err := codec.ReadValue(r)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

func resolveValue(values []value.Value, idx uint32) (value.Value, error) {
	if int(idx) >= len(values) {
		return nil, &errs.IndexError{Kind: "value", Index: idx, Count: len(values)}
	}

	return values[idx], nil
}

// ReadPairsSection reads the pairs section, resolving each entry's key and
// value indices against the already-read values slice.
func ReadPairsSection(r *iobin.Reader, values []value.Value) ([]Pair, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, count)
	for i := range pairs {
		keyIdx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		valIdx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		keyVal, err := resolveValue(values, keyIdx)
		if err != nil {
			return nil, err
		}
		key, ok := value.AsString(keyVal)
		if !ok {
			return nil, errs.ErrAttributeKeyNotString
		}

		val, err := resolveValue(values, valIdx)
		if err != nil {
			return nil, err
		}

		pairs[i] = Pair{key: key, val: val}
	}

	return pairs, nil
}

func resolvePair(pairs []Pair, idx uint32) (model.Attribute, error) {
	if int(idx) >= len(pairs) {
		return model.Attribute{}, &errs.IndexError{Kind: "key-value", Index: idx, Count: len(pairs)}
	}

	p := pairs[idx]
	return model.Attribute{Key: p.key, Value: p.val}, nil
}

// ReadAttributesByIndex reads a u32 count followed by that many pair
// indices, resolving each into an Attribute. Used for log metadata, variant
// metadata, and event attributes alike.
func ReadAttributesByIndex(r *iobin.Reader, pairs []Pair) ([]model.Attribute, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	attrs := make([]model.Attribute, count)
	for i := range attrs {
		idx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		attr, err := resolvePair(pairs, idx)
		if err != nil {
			return nil, err
		}
		attrs[i] = attr
	}

	return attrs, nil
}

// ReadVariantsSection reads the variants section.
func ReadVariantsSection(r *iobin.Reader, values []value.Value, pairs []Pair) ([]model.TraceVariant, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	variants := make([]model.TraceVariant, count)
	for i := range variants {
		v, err := readVariant(r, values, pairs)
		if err != nil {
			return nil, err
		}
		variants[i] = v
	}

	return variants, nil
}

func readVariant(r *iobin.Reader, values []value.Value, pairs []Pair) (model.TraceVariant, error) {
	tracesCount, err := r.ReadUint32()
	if err != nil {
		return model.TraceVariant{}, err
	}

	metadata, err := ReadAttributesByIndex(r, pairs)
	if err != nil {
		return model.TraceVariant{}, err
	}

	eventCount, err := r.ReadUint32()
	if err != nil {
		return model.TraceVariant{}, err
	}

	events := make([]model.Event, eventCount)
	for i := range events {
		ev, err := readEvent(r, values, pairs)
		if err != nil {
			return model.TraceVariant{}, err
		}
		events[i] = ev
	}

	return model.TraceVariant{TracesCount: tracesCount, Metadata: metadata, Events: events}, nil
}

func readEvent(r *iobin.Reader, values []value.Value, pairs []Pair) (model.Event, error) {
	nameIdx, err := r.ReadUint32()
	if err != nil {
		return model.Event{}, err
	}
	nameVal, err := resolveValue(values, nameIdx)
	if err != nil {
		return model.Event{}, err
	}
	name, ok := value.AsString(nameVal)
	if !ok {
		return model.Event{}, errs.ErrNameOfEventNotString
	}

	timestamp, err := r.ReadInt64()
	if err != nil {
		return model.Event{}, err
	}

	lifecycle, err := codec.ReadValue(r)
	if err != nil {
		return model.Event{}, err
	}
	if !value.IsLifecycle(lifecycle) {
		return model.Event{}, errs.ErrLifecycleOutOfRange
	}

	attrs, err := ReadAttributesByIndex(r, pairs)
	if err != nil {
		return model.Event{}, err
	}

	return model.Event{Name: name, Timestamp: timestamp, Lifecycle: lifecycle, Attributes: attrs}, nil
}
