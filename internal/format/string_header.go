package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/hiikit/internal/buf"
)

// StringHeader is the decoded fixed part of an EFI_HII_STRING_PACKAGE_HDR plus
// the variable-length language tag that ends at HdrSize.
type StringHeader struct {
	HdrSize          uint32
	StringInfoOffset uint32
	LanguageWindow   [StringLanguageWindowLen]uint16
	LanguageName     uint16
	// LanguageRaw is the language field up to (not including) the first nul,
	// aliasing the package buffer.
	LanguageRaw []byte
}

// DecodeStringHeader decodes the string package header from pkg, which must
// hold the whole package starting at its generic header. HdrSize is validated
// against both the fixed header size and len(pkg) before the language field
// is sliced.
func DecodeStringHeader(pkg []byte) (StringHeader, error) {
	if !buf.Has(pkg, 0, StringPackageFixedHeaderSize) {
		return StringHeader{}, fmt.Errorf("string header: %w (have %d, need %d)",
			ErrTruncated, len(pkg), StringPackageFixedHeaderSize)
	}
	var h StringHeader
	h.HdrSize = ReadU32(pkg, StringHdrSizeOffset)
	h.StringInfoOffset = ReadU32(pkg, StringInfoOffsetOffset)
	for i := range h.LanguageWindow {
		h.LanguageWindow[i] = ReadU16(pkg, StringLanguageWindowOffset+i*UCS2UnitSize)
	}
	h.LanguageName = ReadU16(pkg, StringLanguageNameOffset)

	if h.HdrSize < StringPackageFixedHeaderSize || uint64(h.HdrSize) > uint64(len(pkg)) {
		return StringHeader{}, fmt.Errorf("string header: hdr size %d outside [%d, %d]: %w",
			h.HdrSize, StringPackageFixedHeaderSize, len(pkg), ErrTruncated)
	}
	lang := pkg[StringLanguageOffset:h.HdrSize]
	if i := bytes.IndexByte(lang, 0); i >= 0 {
		lang = lang[:i]
	}
	h.LanguageRaw = lang
	return h, nil
}

// FontHeader holds the glyph counters of a font package.
type FontHeader struct {
	NarrowGlyphs uint16
	WideGlyphs   uint16
}

// DecodeFontHeader decodes the glyph counters from pkg, which must hold the
// whole package starting at its generic header.
func DecodeFontHeader(pkg []byte) (FontHeader, error) {
	if !buf.Has(pkg, 0, FontPackageFixedHeaderSize) {
		return FontHeader{}, fmt.Errorf("font header: %w (have %d, need %d)",
			ErrTruncated, len(pkg), FontPackageFixedHeaderSize)
	}
	return FontHeader{
		NarrowGlyphs: buf.U16LE(pkg[FontNarrowGlyphsOffset:]),
		WideGlyphs:   buf.U16LE(pkg[FontWideGlyphsOffset:]),
	}, nil
}
