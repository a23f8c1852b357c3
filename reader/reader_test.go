package reader_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PM-IDE/bxes/codec"
	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/internal/pool"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/reader"
	"github.com/PM-IDE/bxes/value"
	"github.com/PM-IDE/bxes/writer"
	"github.com/stretchr/testify/require"
)

// buildValuesSection writes a standalone values-section byte stream (count
// followed by each tagged value), the shape ReadValuesSection expects.
func buildValuesSection(t *testing.T, values ...value.Value) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := iobin.NewWriter(&seekableBuffer{&buf})
	require.NoError(t, w.WriteUint32(uint32(len(values))))
	for _, v := range values {
		require.NoError(t, codec.WriteValue(w, v))
	}

	return buf.Bytes()
}

// seekableBuffer adapts a bytes.Buffer to io.WriteSeeker for tests that only
// ever seek forward by writing sequentially (no backpatch needed here).
type seekableBuffer struct{ buf *bytes.Buffer }

func (s *seekableBuffer) Write(p []byte) (int, error) { return s.buf.Write(p) }
func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	return int64(s.buf.Len()), nil
}

func TestReadPairsSectionRejectsOutOfRangeValueIndex(t *testing.T) {
	valuesBytes := buildValuesSection(t, value.String("only-one-value"))
	valuesReader := iobin.NewReader(bytes.NewReader(valuesBytes))
	values, err := reader.ReadValuesSection(valuesReader)
	require.NoError(t, err)
	require.Len(t, values, 1)

	var pairsBuf bytes.Buffer
	pw := iobin.NewWriter(&seekableBuffer{&pairsBuf})
	require.NoError(t, pw.WriteUint32(1))  // one pair
	require.NoError(t, pw.WriteUint32(99)) // key index, out of range
	require.NoError(t, pw.WriteUint32(0))  // value index

	pr := iobin.NewReader(bytes.NewReader(pairsBuf.Bytes()))
	_, err = reader.ReadPairsSection(pr, values)
	require.Error(t, err)

	var idxErr *errs.IndexError
	require.True(t, errors.As(err, &idxErr))
	require.Equal(t, "value", idxErr.Kind)
}

func TestReadAttributesByIndexRejectsOutOfRangePairIndex(t *testing.T) {
	var buf bytes.Buffer
	w := iobin.NewWriter(&seekableBuffer{&buf})
	require.NoError(t, w.WriteUint32(1))  // one attribute
	require.NoError(t, w.WriteUint32(99)) // pair index, out of range

	r := iobin.NewReader(bytes.NewReader(buf.Bytes()))
	_, err := reader.ReadAttributesByIndex(r, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrFailedToIndexKeyValue))
}

func TestReadValueRejectsUnknownTag(t *testing.T) {
	r := iobin.NewReader(bytes.NewReader([]byte{0xFE}))
	_, err := codec.ReadValue(r)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrFailedToParseTypeID))
}

func TestDecodeRejectsOutOfRangeBrafLifecycleOrdinal(t *testing.T) {
	log := &model.EventLog{
		Variants: []model.TraceVariant{
			{
				TracesCount: 1,
				Events: []model.Event{
					{
						Name:      "a",
						Timestamp: 1,
						// MaxBrafLifecycle+1 is one past the 20-member enum (ordinals 0..19).
						Lifecycle: value.BrafLifecycle(value.MaxBrafLifecycle + 1),
					},
				},
			},
		},
	}

	sw := pool.NewSeekWriter(pool.NewBuffer(0))
	require.NoError(t, writer.Encode(sw, log))

	_, err := reader.Decode(bytes.NewReader(sw.Bytes()))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrLifecycleOutOfRange))
}

func TestDecodeRejectsOutOfRangeStandardLifecycleOrdinal(t *testing.T) {
	log := &model.EventLog{
		Variants: []model.TraceVariant{
			{
				TracesCount: 1,
				Events: []model.Event{
					{
						Name:      "a",
						Timestamp: 1,
						// MaxStandardLifecycle+1 is one past the 14-member enum (ordinals 0..13).
						Lifecycle: value.StandardLifecycle(value.MaxStandardLifecycle + 1),
					},
				},
			},
		},
	}

	sw := pool.NewSeekWriter(pool.NewBuffer(0))
	require.NoError(t, writer.Encode(sw, log))

	_, err := reader.Decode(bytes.NewReader(sw.Bytes()))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrLifecycleOutOfRange))
}
