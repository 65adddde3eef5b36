package format

import (
	"fmt"

	"github.com/joshuapare/hiikit/internal/buf"
)

// PackageHeader is the generic EFI_HII_PACKAGE_HEADER that prefixes every
// package in a package list. Length counts the header plus the whole body,
// including any type-specific header fields.
type PackageHeader struct {
	Length uint32 // 24-bit on the wire
	Type   PackageType
}

// BodyLen returns the number of bytes following the 4-byte header. It is 0
// for malformed headers whose Length is smaller than the header itself.
func (h PackageHeader) BodyLen() int {
	if h.Length < PackageHeaderSize {
		return 0
	}
	return int(h.Length) - PackageHeaderSize
}

// DecodePackageHeader decodes the 4-byte package header at the start of b.
func DecodePackageHeader(b []byte) (PackageHeader, error) {
	if !buf.Has(b, 0, PackageHeaderSize) {
		return PackageHeader{}, fmt.Errorf("package header: %w (have %d, need %d)",
			ErrTruncated, len(b), PackageHeaderSize)
	}
	return PackageHeader{
		Length: ReadU24(b, PackageLengthOffset),
		Type:   PackageType(b[PackageTypeOffset]),
	}, nil
}

// EncodePackageHeader encodes a package header. Lengths that do not fit the
// 24-bit field fail with ErrLengthOverflow.
func EncodePackageHeader(length uint32, t PackageType) ([PackageHeaderSize]byte, error) {
	var out [PackageHeaderSize]byte
	if length > MaxPackageLength {
		return out, fmt.Errorf("package header: length 0x%X exceeds 0x%X: %w",
			length, MaxPackageLength, ErrLengthOverflow)
	}
	PutU24(out[:], PackageLengthOffset, length)
	out[PackageTypeOffset] = byte(t)
	return out, nil
}

// PutTo writes h into the first 4 bytes of b. The caller must have validated
// the length and the destination size.
func (h PackageHeader) PutTo(b []byte) {
	PutU24(b, PackageLengthOffset, h.Length)
	b[PackageTypeOffset] = byte(h.Type)
}

// AppendPackageHeader appends the 4-byte header for a package of length bytes
// to dst.
func AppendPackageHeader(dst []byte, length uint32, t PackageType) ([]byte, error) {
	if length > MaxPackageLength {
		return dst, fmt.Errorf("package header: length 0x%X exceeds 0x%X: %w",
			length, MaxPackageLength, ErrLengthOverflow)
	}
	n := len(dst)
	dst = append(dst, 0, 0, 0, 0)
	PackageHeader{Length: length, Type: t}.PutTo(dst[n:])
	return dst, nil
}

// String formats the header as its four raw bytes, matching a hex dump.
func (h PackageHeader) String() string {
	return fmt.Sprintf("0x%02x 0x%02x 0x%02x 0x%02x",
		byte(h.Length), byte(h.Length>>8), byte(h.Length>>16), byte(h.Type))
}
