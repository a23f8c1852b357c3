package codec_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/PM-IDE/bxes/codec"
	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/typeid"
	"github.com/PM-IDE/bxes/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v value.Value) value.Value {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "codec-*")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	w := iobin.NewWriter(f)
	require.NoError(t, codec.WriteValue(w, v))

	_, err = f.Seek(0, 0)
	require.NoError(t, err)

	r := iobin.NewReader(f)
	got, err := codec.ReadValue(r)
	require.NoError(t, err)

	return got
}

func TestWriteReadValueRoundTrip(t *testing.T) {
	cases := []value.Value{
		value.Int32(-7),
		value.Int64(1 << 40),
		value.Uint32(42),
		value.Uint64(1 << 60),
		value.Float32(1.5),
		value.Float64(-3.25),
		value.String("hello, bxes"),
		value.Bool(true),
		value.Timestamp(1234567890),
		value.BrafLifecycle(value.BrafCompletedSuccess),
		value.StandardLifecycle(value.StdComplete),
		value.Artifact{Entries: []value.ArtifactEntry{{InstanceIdx: 1, TransitionIdx: 2}}},
		value.Drivers{Entries: []value.DriverEntry{{Amount: 2.5, NameIdx: 1, TypeIdx: 2}}},
		value.Guid{1, 2, 3},
		value.SoftwareEventType(3),
	}

	for _, v := range cases {
		got := roundTrip(t, v)
		assert.True(t, v.Equal(got), "round trip mismatch for %T: want %v got %v", v, v, got)
		assert.Equal(t, v.Tag(), got.Tag())
	}
}

func TestReadValueRejectsUnknownTag(t *testing.T) {
	r := iobin.NewReader(bytes.NewReader([]byte{0xFF}))
	_, err := codec.ReadValue(r)
	assert.Error(t, err)
}

func TestReadValueAcceptsMaxLifecycleOrdinals(t *testing.T) {
	braf := roundTrip(t, value.BrafLifecycle(value.MaxBrafLifecycle))
	assert.Equal(t, value.BrafLifecycle(value.MaxBrafLifecycle), braf)

	std := roundTrip(t, value.StandardLifecycle(value.MaxStandardLifecycle))
	assert.Equal(t, value.StandardLifecycle(value.MaxStandardLifecycle), std)
}

func TestReadValueRejectsOutOfRangeBrafOrdinal(t *testing.T) {
	// tag byte for BrafLifecycle, then ordinal 20 (one past the 0..19 range).
	r := iobin.NewReader(bytes.NewReader([]byte{byte(typeid.BrafLifecycle), 20}))
	_, err := codec.ReadValue(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLifecycleOutOfRange))
}

func TestReadValueRejectsOutOfRangeStandardOrdinal(t *testing.T) {
	// tag byte for StandardLifecycle, then ordinal 14 (one past the 0..13 range).
	r := iobin.NewReader(bytes.NewReader([]byte{byte(typeid.StandardLifecycle), 14}))
	_, err := codec.ReadValue(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLifecycleOutOfRange))
}

func TestReadValueRejectsMalformedUTF8String(t *testing.T) {
	var buf bytes.Buffer
	w := iobin.NewWriter(&seekableBuffer{&buf})
	require.NoError(t, w.WriteUint8(byte(typeid.String)))
	require.NoError(t, w.WriteUint64(1))
	require.NoError(t, w.WriteBytes([]byte{0xFF}))

	r := iobin.NewReader(bytes.NewReader(buf.Bytes()))
	_, err := codec.ReadValue(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFailedToCreateUTF8String))
}

// seekableBuffer adapts a bytes.Buffer to io.WriteSeeker for tests that only
// ever seek forward by writing sequentially (no backpatch needed here).
type seekableBuffer struct{ buf *bytes.Buffer }

func (s *seekableBuffer) Write(p []byte) (int, error) { return s.buf.Write(p) }
func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	return int64(s.buf.Len()), nil
}
