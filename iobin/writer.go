// Package iobin is the primitive I/O layer the bxes writer and reader are
// built on: little-endian fixed-width scalar and string encoding, plus the
// seek/tell operations the writer's length-backpatch pattern depends on.
package iobin

import (
	"fmt"
	"io"
	"math"

	"github.com/PM-IDE/bxes/endian"
	"github.com/PM-IDE/bxes/errs"
)

// Writer encodes little-endian primitives onto an io.WriteSeeker. Seeking is
// required: the four-section codec reserves a placeholder count, writes the
// section's payloads, then seeks back to backpatch the real count.
type Writer struct {
	w       io.WriteSeeker
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewWriter wraps dst for little-endian primitive writes.
func NewWriter(dst io.WriteSeeker) *Writer {
	return &Writer{w: dst, engine: endian.GetLittleEndianEngine()}
}

func (w *Writer) writeScratch(n int) error {
	if _, err := w.w.Write(w.scratch[:n]); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrWriteFailed, err)
	}

	return nil
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	w.scratch[0] = v
	return w.writeScratch(1)
}

// WriteBool writes a boolean as one byte: 0 or 1.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteUint8(1)
	}

	return w.WriteUint8(0)
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) error {
	w.engine.PutUint32(w.scratch[:4], v)
	return w.writeScratch(4)
}

// WriteInt32 writes a little-endian int32.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteUint64 writes a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) error {
	w.engine.PutUint64(w.scratch[:8], v)
	return w.writeScratch(8)
}

// WriteInt64 writes a little-endian int64.
func (w *Writer) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

// WriteFloat32 writes a little-endian IEEE-754 float32.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a little-endian IEEE-754 float64.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteBytes writes raw bytes with no length prefix.
func (w *Writer) WriteBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrWriteFailed, err)
	}

	return nil
}

// WriteString writes a string as a u64 byte length followed by its UTF-8 bytes.
func (w *Writer) WriteString(s string) error {
	if err := w.WriteUint64(uint64(len(s))); err != nil {
		return err
	}

	return w.WriteBytes([]byte(s))
}

// Tell returns the writer's current position in the stream.
func (w *Writer) Tell() (int64, error) {
	pos, err := w.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrFailedToGetWriterPosition, err)
	}

	return pos, nil
}

// Seek moves the writer to an absolute byte offset.
func (w *Writer) Seek(pos int64) error {
	if _, err := w.w.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToSeek, err)
	}

	return nil
}

// WriteCountPrefixed implements the length-backpatch pattern: it reserves a
// u32 placeholder, runs fn to emit the section's payloads, then seeks back
// and overwrites the placeholder with the count fn returns.
func (w *Writer) WriteCountPrefixed(fn func() (uint32, error)) error {
	pos, err := w.Tell()
	if err != nil {
		return err
	}
	if err := w.WriteUint32(0); err != nil {
		return err
	}

	count, err := fn()
	if err != nil {
		return err
	}

	end, err := w.Tell()
	if err != nil {
		return err
	}
	if err := w.Seek(pos); err != nil {
		return err
	}
	if err := w.WriteUint32(count); err != nil {
		return err
	}

	return w.Seek(end)
}
