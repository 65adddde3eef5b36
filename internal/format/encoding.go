package format

import (
	"encoding/binary"

	"github.com/joshuapare/hiikit/internal/buf"
)

// Binary encoding utilities for little-endian integers.
//
// The HII database is a firmware structure defined for little-endian UEFI
// platforms, so every multi-byte field uses little-endian byte order. The
// 24-bit package length has no encoding/binary counterpart and is assembled
// by hand.

// PutU16 writes a uint16 value to the buffer at the specified offset in little-endian format.
func PutU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// PutU24 writes the low 24 bits of v to the buffer at the specified offset in
// little-endian format. Higher bits are discarded; callers check the range.
func PutU24(b []byte, off int, v uint32) {
	_ = b[off+2]
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
}

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU16 reads a uint16 value from the buffer at the specified offset in little-endian format.
func ReadU16(b []byte, off int) uint16 {
	_ = b[off+1]
	return buf.U16LE(b[off:])
}

// ReadU24 reads a 24-bit little-endian value from the buffer at the specified offset.
func ReadU24(b []byte, off int) uint32 {
	_ = b[off+2]
	return buf.U24LE(b[off:])
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	_ = b[off+3]
	return buf.U32LE(b[off:])
}
