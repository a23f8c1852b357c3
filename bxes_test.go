package bxes_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/PM-IDE/bxes"
	"github.com/PM-IDE/bxes/internal/randomlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomLogsRoundTripThroughEveryLayout(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	opts := randomlog.DefaultOptions()

	for i := 0; i < 20; i++ {
		log := randomlog.Generate(r, opts)

		t.Run("single-file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.bxes")
			require.NoError(t, bxes.WriteSingleFile(path, log))
			decoded, err := bxes.ReadSingleFile(path)
			require.NoError(t, err)
			assert.True(t, log.Equal(decoded))
		})

		t.Run("split", func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "split")
			require.NoError(t, bxes.WriteSplit(dir, log))
			decoded, err := bxes.ReadSplit(dir)
			require.NoError(t, err)
			assert.True(t, log.Equal(decoded))
		})

		t.Run("archive", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.zip")
			require.NoError(t, bxes.WriteArchive(path, log))
			decoded, err := bxes.ReadArchive(path)
			require.NoError(t, err)
			assert.True(t, log.Equal(decoded))
		})
	}
}
