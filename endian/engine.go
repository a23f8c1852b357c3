// Package endian supplies the byte-order engine bxes's primitive I/O layer
// is built on. The wire format is little-endian throughout (§6 of the
// format), so EndianEngine exists mainly to keep that choice explicit and
// swappable in one place rather than scattered encoding/binary.LittleEndian
// references.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder so callers get both
// Put-into-slice and Append-to-slice operations from one value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine bxes always encodes and decodes
// with. The format has no big-endian mode; this function exists so the
// choice reads as a decision, not a hardcoded literal.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
