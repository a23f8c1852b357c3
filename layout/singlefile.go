package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/PM-IDE/bxes/errs"
	"github.com/PM-IDE/bxes/iobin"
	"github.com/PM-IDE/bxes/model"
	"github.com/PM-IDE/bxes/reader"
	"github.com/PM-IDE/bxes/writer"
)

// WriteSingleFile encodes log as one concatenated stream: a u32 version
// header followed by the four sections in order.
func WriteSingleFile(path string, log *model.EventLog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrFailedToOpenFileForWriting, err)
	}
	defer f.Close()

	return WriteSingleFileTo(f, log)
}

// WriteSingleFileTo writes the single-file layout to an already-open
// io.WriteSeeker, letting callers stage it (e.g. into an in-memory buffer
// for archiving) without touching the filesystem themselves.
func WriteSingleFileTo(dst io.WriteSeeker, log *model.EventLog) error {
	w := iobin.NewWriter(dst)
	if err := w.WriteUint32(log.Version); err != nil {
		return err
	}

	return writer.Encode(dst, log)
}

// ReadSingleFile decodes a single-file layout log from path.
func ReadSingleFile(path string) (*model.EventLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFailedToOpenFile, err)
	}
	defer f.Close()

	return ReadSingleFileFrom(f)
}

// ReadSingleFileFrom decodes a single-file layout log from an already-open
// reader.
func ReadSingleFileFrom(src io.Reader) (*model.EventLog, error) {
	r := iobin.NewReader(src)
	version, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	log, err := reader.Decode(src)
	if err != nil {
		return nil, err
	}
	log.Version = version

	return log, nil
}
