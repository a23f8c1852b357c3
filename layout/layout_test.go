package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/layout"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog() *model.EventLog {
	return &model.EventLog{
		Version:  2,
		Metadata: []model.Attribute{{Key: "source", Value: value.String("layout-test")}},
		Variants: []model.TraceVariant{
			{
				TracesCount: 3,
				Metadata:    []model.Attribute{{Key: "tag", Value: value.Int32(1)}},
				Events: []model.Event{
					{
						Name:       "start",
						Timestamp:  10,
						Lifecycle:  value.StandardLifecycle(value.StdStart),
						Attributes: []model.Attribute{{Key: "k", Value: value.Int32(1)}},
					},
					{
						Name:      "complete",
						Timestamp: 20,
						Lifecycle: value.StandardLifecycle(value.StdComplete),
					},
				},
			},
		},
	}
}

func TestSingleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.bxes")
	log := sampleLog()

	require.NoError(t, layout.WriteSingleFile(path, log))

	decoded, err := layout.ReadSingleFile(path)
	require.NoError(t, err)
	assert.True(t, log.Equal(decoded))
	assert.Equal(t, log.Version, decoded.Version)
}

func TestSplitRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "split-log")
	log := sampleLog()

	require.NoError(t, layout.WriteSplit(dir, log))

	decoded, err := layout.ReadSplit(dir)
	require.NoError(t, err)
	assert.True(t, log.Equal(decoded))
	assert.Equal(t, log.Version, decoded.Version)
}

func TestSplitDetectsVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	log := sampleLog()
	require.NoError(t, layout.WriteSplit(dir, log))

	// Overwrite the pairs file's version header so it disagrees with the
	// other three files.
	path := filepath.Join(dir, layout.PairsFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] = data[0] + 1
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = layout.ReadSplit(dir)
	require.Error(t, err)

	var mismatch *errs.VersionMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.zip")
	log := sampleLog()

	require.NoError(t, layout.WriteArchive(path, log))

	decoded, err := layout.ReadArchive(path)
	require.NoError(t, err)
	assert.True(t, log.Equal(decoded))
	assert.Equal(t, log.Version, decoded.Version)
}
