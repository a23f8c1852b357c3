// Package pool provides a pooled growable byte buffer. bxes uses it to stage
// the archive layout's single-file encoding in memory before copying it into
// the zip entry.
package pool

import "sync"

// DefaultBufferSize is the initial capacity handed out by the default pool.
const DefaultBufferSize = 1024 * 16 // 16KiB, comfortably larger than a typical section header.

// Buffer is a reusable []byte with amortized growth, modeled on the
// bytes.Buffer growth strategy but exposing the raw slice for direct
// little-endian encoding without an extra copy through io.Writer.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given starting capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated contents. The slice is valid until the next
// Reset or Grow that reallocates.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.B) }

// Reset empties the buffer but keeps its backing array for reuse.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Grow ensures at least n more bytes can be appended without reallocating.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := DefaultBufferSize
	if cap(b.B) > 4*DefaultBufferSize {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	grown := make([]byte, len(b.B), len(b.B)+growBy)
	copy(grown, b.B)
	b.B = grown
}

// Write appends data, growing the buffer as needed. It always returns
// len(data), nil, satisfying io.Writer.
func (b *Buffer) Write(data []byte) (int, error) {
	b.Grow(len(data))
	b.B = append(b.B, data...)

	return len(data), nil
}

var defaultPool = sync.Pool{
	New: func() any { return NewBuffer(DefaultBufferSize) },
}

// Get retrieves a reset Buffer from the shared pool.
func Get() *Buffer {
	buf, _ := defaultPool.Get().(*Buffer)
	buf.Reset()

	return buf
}

// Put returns a Buffer to the shared pool for reuse.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	defaultPool.Put(buf)
}
