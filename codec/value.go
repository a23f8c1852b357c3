// Package codec implements the byte-level encoding of a single Value: one
// type tag byte followed by that variant's fixed payload. Every other
// section of the format (values, pairs, inline event fields) is built out of
// repeated calls into this package.
package codec

import (
	"fmt"

	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/typeid"
	"github.com/PM-IDE/bxes/value"
)

// WriteValue encodes v as a type tag byte followed by its payload.
func WriteValue(w *iobin.Writer, v value.Value) error {
	tag := v.Tag()
	if err := w.WriteUint8(uint8(tag)); err != nil {
		return err
	}

	switch tv := v.(type) {
	case value.Int32:
		return w.WriteInt32(int32(tv))
	case value.Int64:
		return w.WriteInt64(int64(tv))
	case value.Uint32:
		return w.WriteUint32(uint32(tv))
	case value.Uint64:
		return w.WriteUint64(uint64(tv))
	case value.Float32:
		return w.WriteFloat32(float32(tv))
	case value.Float64:
		return w.WriteFloat64(float64(tv))
	case value.String:
		return w.WriteString(string(tv))
	case value.Bool:
		return w.WriteBool(bool(tv))
	case value.Timestamp:
		return w.WriteInt64(int64(tv))
	case value.BrafLifecycle:
		return w.WriteUint8(uint8(tv))
	case value.StandardLifecycle:
		return w.WriteUint8(uint8(tv))
	case value.Artifact:
		return writeArtifact(w, tv)
	case value.Drivers:
		return writeDrivers(w, tv)
	case value.Guid:
		return w.WriteBytes(tv[:])
	case value.SoftwareEventType:
		return w.WriteUint8(uint8(tv))
	default:
		return fmt.Errorf("%w: unhandled value type %T", errs.ErrWriteFailed, v)
	}
}

func writeArtifact(w *iobin.Writer, a value.Artifact) error {
	if err := w.WriteUint32(uint32(len(a.Entries))); err != nil {
		return err
	}
	for _, e := range a.Entries {
		if err := w.WriteUint32(e.InstanceIdx); err != nil {
			return err
		}
		if err := w.WriteUint32(e.TransitionIdx); err != nil {
			return err
		}
	}

	return nil
}

func writeDrivers(w *iobin.Writer, d value.Drivers) error {
	if err := w.WriteUint32(uint32(len(d.Entries))); err != nil {
		return err
	}
	for _, e := range d.Entries {
		if err := w.WriteFloat64(e.Amount); err != nil {
			return err
		}
		if err := w.WriteUint32(e.NameIdx); err != nil {
			return err
		}
		if err := w.WriteUint32(e.TypeIdx); err != nil {
			return err
		}
	}

	return nil
}

// ReadValue decodes a type tag byte and its matching payload into a Value.
func ReadValue(r *iobin.Reader) (value.Value, error) {
	rawTag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}

	tag := typeid.ID(rawTag)
	if !tag.Valid() {
		return nil, &errs.TypeIDError{Tag: rawTag}
	}

	switch tag {
	case typeid.Int32:
		v, err := r.ReadInt32()
		return value.Int32(v), err
	case typeid.Int64:
		v, err := r.ReadInt64()
		return value.Int64(v), err
	case typeid.Uint32:
		v, err := r.ReadUint32()
		return value.Uint32(v), err
	case typeid.Uint64:
		v, err := r.ReadUint64()
		return value.Uint64(v), err
	case typeid.Float32:
		v, err := r.ReadFloat32()
		return value.Float32(v), err
	case typeid.Float64:
		v, err := r.ReadFloat64()
		return value.Float64(v), err
	case typeid.String:
		v, err := r.ReadString()
		return value.String(v), err
	case typeid.Bool:
		v, err := r.ReadBool()
		return value.Bool(v), err
	case typeid.Timestamp:
		v, err := r.ReadInt64()
		return value.Timestamp(v), err
	case typeid.BrafLifecycle:
		v, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		lc := value.BrafLifecycle(v)
		if !lc.Valid() {
			return nil, errs.ErrLifecycleOutOfRange
		}
		return lc, nil
	case typeid.StandardLifecycle:
		v, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		lc := value.StandardLifecycle(v)
		if !lc.Valid() {
			return nil, errs.ErrLifecycleOutOfRange
		}
		return lc, nil
	case typeid.Artifact:
		return readArtifact(r)
	case typeid.Drivers:
		return readDrivers(r)
	case typeid.Guid:
		b, err := r.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		var g value.Guid
		copy(g[:], b)
		return g, nil
	case typeid.SoftwareEventType:
		v, err := r.ReadUint8()
		return value.SoftwareEventType(v), err
	default:
		return nil, &errs.TypeIDError{Tag: rawTag}
	}
}

func readArtifact(r *iobin.Reader) (value.Value, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	entries := make([]value.ArtifactEntry, count)
	for i := range entries {
		inst, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		trans, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		entries[i] = value.ArtifactEntry{InstanceIdx: inst, TransitionIdx: trans}
	}

	return value.Artifact{Entries: entries}, nil
}

func readDrivers(r *iobin.Reader) (value.Value, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	entries := make([]value.DriverEntry, count)
	for i := range entries {
		amount, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		nameIdx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		typeIdx, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		entries[i] = value.DriverEntry{Amount: amount, NameIdx: nameIdx, TypeIdx: typeIdx}
	}

	return value.Drivers{Entries: entries}, nil
}
