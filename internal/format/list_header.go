package format

import (
	"fmt"

	"github.com/joshuapare/hiikit/internal/buf"
)

// PackageListHeader is the EFI_HII_PACKAGE_LIST_HEADER that prefixes every
// package list. TotalSize counts the header plus every contained package, up
// to and including the terminating End package.
type PackageListHeader struct {
	GUID      GUID
	TotalSize uint32
}

// BodyLen returns the number of package bytes following the 20-byte header,
// or 0 when TotalSize is smaller than the header.
func (h PackageListHeader) BodyLen() int {
	if h.TotalSize < PackageListHeaderSize {
		return 0
	}
	return int(h.TotalSize) - PackageListHeaderSize
}

// DecodePackageListHeader decodes the 20-byte header at the start of b. It
// does not check TotalSize against len(b); cursors do that.
func DecodePackageListHeader(b []byte) (PackageListHeader, error) {
	if !buf.Has(b, 0, PackageListHeaderSize) {
		return PackageListHeader{}, fmt.Errorf("package list header: %w (have %d, need %d)",
			ErrTruncated, len(b), PackageListHeaderSize)
	}
	guid, err := DecodeGUID(b[PackageListGUIDOffset:])
	if err != nil {
		return PackageListHeader{}, err
	}
	return PackageListHeader{
		GUID:      guid,
		TotalSize: ReadU32(b, PackageListLengthOffset),
	}, nil
}

// EncodePackageListHeader encodes h into its 20-byte wire form.
func EncodePackageListHeader(h PackageListHeader) [PackageListHeaderSize]byte {
	var out [PackageListHeaderSize]byte
	copy(out[PackageListGUIDOffset:], h.GUID[:])
	PutU32(out[:], PackageListLengthOffset, h.TotalSize)
	return out
}
