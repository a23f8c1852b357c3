package pool

import (
	"fmt"
	"io"
)

// SeekWriter adapts a pooled Buffer to io.WriteSeeker, so callers that need
// a seekable destination for a backpatch-style writer (see iobin.Writer) can
// stage bytes in memory instead of through a temporary file.
//
// It supports the access pattern bxes actually uses: sequential appends,
// interspersed with seeking backward to overwrite already-written bytes
// (the length-backpatch pattern) followed by seeking forward again. It does
// not support seeking past the current end of the buffer.
type SeekWriter struct {
	buf *Buffer
	pos int
}

// NewSeekWriter wraps buf for seekable writes starting at position 0.
func NewSeekWriter(buf *Buffer) *SeekWriter {
	return &SeekWriter{buf: buf}
}

// Write writes p at the current position, overwriting existing bytes in
// place when the position falls within the already-written region and
// appending (growing the buffer as needed) otherwise.
func (s *SeekWriter) Write(p []byte) (int, error) {
	if s.pos > s.buf.Len() {
		return 0, fmt.Errorf("pool: seek writer position %d past buffer end %d", s.pos, s.buf.Len())
	}

	end := s.pos + len(p)
	if end <= s.buf.Len() {
		copy(s.buf.B[s.pos:end], p)
		s.pos = end
		return len(p), nil
	}

	overlap := s.buf.Len() - s.pos
	copy(s.buf.B[s.pos:], p[:overlap])
	n, err := s.buf.Write(p[overlap:])
	s.pos += overlap + n

	return overlap + n, err
}

// Seek implements io.Seeker. SeekEnd offsets are relative to the buffer's
// current length. A target below 0 or past the current length is rejected.
func (s *SeekWriter) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = int64(s.pos) + offset
	case io.SeekEnd:
		target = int64(s.buf.Len()) + offset
	default:
		return 0, fmt.Errorf("pool: invalid seek whence %d", whence)
	}

	if target < 0 || target > int64(s.buf.Len()) {
		return 0, fmt.Errorf("pool: seek target %d out of range [0,%d]", target, s.buf.Len())
	}

	s.pos = int(target)
	return target, nil
}

// Bytes returns the buffer's accumulated contents.
func (s *SeekWriter) Bytes() []byte { return s.buf.Bytes() }
