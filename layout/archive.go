package layout

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/internal/pool"
	"github.com/PM-IDE/bxes/model"
	"github.com/klauspost/compress/flate"
)

func init() {
	zip.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, DeflateLevel)
	})
	zip.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}

// WriteArchive encodes log as the single-file layout into a pooled in-memory
// buffer, then wraps that buffer as the lone entry of a DEFLATE zip archive
// at path. The entry name is the destination file's stem with a .bxes
// extension. Staging in memory rather than through a temporary file avoids
// a filesystem round trip for the common case of a log small enough to fit
// comfortably in RAM.
func WriteArchive(path string, log *model.EventLog) error {
	staging := pool.Get()
	defer pool.Put(staging)

	if err := WriteSingleFileTo(pool.NewSeekWriter(staging), log); err != nil {
		return err
	}

	archiveFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToCreateArchive, err)
	}
	defer archiveFile.Close()

	zw := zip.NewWriter(archiveFile)
	entry, err := zw.Create(entryNameFor(path))
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToCreateArchive, err)
	}

	if _, err := entry.Write(staging.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToCreateArchive, err)
	}

	return zw.Close()
}

func entryNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".bxes"
}

// ReadArchive extracts the single entry of a zip archive at path into a
// fresh temp directory, then decodes it as a single-file layout log. The
// archive must contain exactly one file.
func ReadArchive(path string) (*model.EventLog, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFailedToExtractArchive, err)
	}
	defer zr.Close()

	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: archive has %d entries", errs.ErrTooManyFilesInArchive, len(zr.File))
	}

	tempDir, err := os.MkdirTemp("", "bxes-extract-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFailedToCreateTempDir, err)
	}
	defer os.RemoveAll(tempDir)

	entry := zr.File[0]
	extractedPath := filepath.Join(tempDir, filepath.Base(entry.Name))

	if err := extractEntry(entry, extractedPath); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFailedToExtractArchive, err)
	}
	if len(entries) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one extracted file, got %d", errs.ErrInvalidArchive, len(entries))
	}

	return ReadSingleFile(extractedPath)
}

func extractEntry(entry *zip.File, destPath string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToExtractArchive, err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToExtractArchive, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToExtractArchive, err)
	}

	return nil
}
