package iobin

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/PM-IDE/bxes/endian"
	"github.com/PM-IDE/bxes/errs"
)

// Reader decodes little-endian primitives from an io.Reader. Tell is only
// available when the underlying reader also implements io.Seeker; the decode
// paths read front to back and do not call it.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewReader wraps src for little-endian primitive reads.
func NewReader(src io.Reader) *Reader {
	return &Reader{r: src, engine: endian.GetLittleEndianEngine()}
}

func (r *Reader) readScratch(n int) error {
	if _, err := io.ReadFull(r.r, r.scratch[:n]); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToReadValue, err)
	}

	return nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.readScratch(1); err != nil {
		return 0, err
	}

	return r.scratch[0], nil
}

// ReadBool reads a single byte as a boolean: any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.readScratch(4); err != nil {
		return 0, err
	}

	return r.engine.Uint32(r.scratch[:4]), nil
}

// ReadInt32 reads a little-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.readScratch(8); err != nil {
		return 0, err
	}

	return r.engine.Uint64(r.scratch[:8]), nil
}

// ReadInt64 reads a little-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a little-endian IEEE-754 float32.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a little-endian IEEE-754 float64.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFailedToReadValue, err)
	}

	return buf, nil
}

// ReadString reads a u64 byte length followed by that many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return "", err
	}

	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.ErrFailedToCreateUTF8String
	}

	return string(b), nil
}

// Tell returns the reader's current position. The underlying reader must
// implement io.Seeker.
func (r *Reader) Tell() (int64, error) {
	seeker, ok := r.r.(io.Seeker)
	if !ok {
		return 0, fmt.Errorf("%w: underlying reader is not seekable", errs.ErrFailedToTell)
	}

	pos, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrFailedToTell, err)
	}

	return pos, nil
}
