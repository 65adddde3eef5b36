// Package builder emits HII packages and package lists in their wire layout.
// Builders always allocate fresh output; no input slice is retained or aliased.
package builder

import (
	"fmt"
	"strings"

	"github.com/joshuapare/hiikit/internal/format"
)

// Sentinel errors, re-exported for callers outside the module.
var (
	ErrLengthOverflow = format.ErrLengthOverflow
	ErrInvalidString  = format.ErrInvalidString
)

// EndPackage returns the 4-byte terminator package {04 00 00 DF}.
func EndPackage() []byte {
	h, _ := format.EncodePackageHeader(format.PackageHeaderSize, format.PackageTypeEnd)
	return h[:]
}

// FormPackage wraps raw IFR op-code bytes in a Forms package header. The bytes
// are copied verbatim; no op-code validation is performed.
func FormPackage(opcodes []byte) ([]byte, error) {
	return rawPackage(format.PackageTypeForms, opcodes)
}

// FontPackage emits a Fonts package carrying the two glyph counters followed
// by glyphs verbatim.
func FontPackage(narrow, wide uint16, glyphs []byte) ([]byte, error) {
	size := format.FontPackageFixedHeaderSize + len(glyphs)
	out, err := newPackage(format.PackageTypeFonts, size)
	if err != nil {
		return nil, err
	}
	format.PutU16(out, format.FontNarrowGlyphsOffset, narrow)
	format.PutU16(out, format.FontWideGlyphsOffset, wide)
	copy(out[format.FontPackageFixedHeaderSize:], glyphs)
	return out, nil
}

// StringPackage emits a Strings package for one language. The layout is the
// 46-byte fixed header, the ASCII language tag with its nul, one SIBT_STRING_UCS2
// block per string in order, and a closing SIBT_END byte. HdrSize and
// StringInfoOffset both point at the first block; the language window is
// zeroed and LanguageName refers to string id 1.
func StringPackage(language string, strs []string) ([]byte, error) {
	language = strings.TrimRight(language, "\x00")
	if strings.IndexByte(language, 0) >= 0 {
		return nil, fmt.Errorf("%w: nul inside language %q", ErrInvalidString, language)
	}
	for i := 0; i < len(language); i++ {
		if language[i] >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII language %q", ErrInvalidString, language)
		}
	}

	blocks := make([][]byte, len(strs))
	hdrSize := format.StringPackageFixedHeaderSize + len(language) + 1
	size := hdrSize
	for i, s := range strs {
		units, err := format.EncodeUCS2(s)
		if err != nil {
			return nil, fmt.Errorf("builder: string %d: %w", i, err)
		}
		blocks[i] = units
		size += format.StringBlockTagSize + len(units)
	}
	size += format.StringBlockTagSize // SIBT_END

	out, err := newPackage(format.PackageTypeStrings, size)
	if err != nil {
		return nil, err
	}
	format.PutU32(out, format.StringHdrSizeOffset, uint32(hdrSize))
	format.PutU32(out, format.StringInfoOffsetOffset, uint32(hdrSize))
	format.PutU16(out, format.StringLanguageNameOffset, format.DefaultLanguageName)
	copy(out[format.StringLanguageOffset:], language)

	off := hdrSize
	for _, units := range blocks {
		out[off] = format.SIBTStringUCS2
		off += format.StringBlockTagSize
		off += copy(out[off:], units)
	}
	out[off] = format.SIBTEnd
	return out, nil
}

// PackageList emits a package list: the 20-byte header followed by packages
// in order. No End package is appended; callers that want a conformant list
// pass EndPackage() last.
func PackageList(guid format.GUID, packages ...[]byte) ([]byte, error) {
	total := uint64(format.PackageListHeaderSize)
	for _, p := range packages {
		total += uint64(len(p))
	}
	if total > format.MaxPackageListLength {
		return nil, fmt.Errorf("builder: package list size %d: %w", total, ErrLengthOverflow)
	}

	out := make([]byte, format.PackageListHeaderSize, total)
	h := format.EncodePackageListHeader(format.PackageListHeader{GUID: guid, TotalSize: uint32(total)})
	copy(out, h[:])
	for _, p := range packages {
		out = append(out, p...)
	}
	return out, nil
}

// Database concatenates package lists into the layout ExportPackageLists
// returns.
func Database(lists ...[]byte) []byte {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]byte, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func rawPackage(t format.PackageType, body []byte) ([]byte, error) {
	out, err := newPackage(t, format.PackageHeaderSize+len(body))
	if err != nil {
		return nil, err
	}
	copy(out[format.PackageHeaderSize:], body)
	return out, nil
}

// newPackage allocates a zeroed package of size bytes with its header set.
func newPackage(t format.PackageType, size int) ([]byte, error) {
	if size > format.MaxPackageLength {
		return nil, fmt.Errorf("builder: %s package size %d: %w", t, size, ErrLengthOverflow)
	}
	out, err := format.AppendPackageHeader(make([]byte, 0, size), uint32(size), t)
	if err != nil {
		return nil, err
	}
	return out[:size], nil
}
