// Package format houses low-level codecs for the UEFI HII package database
// wire format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
//
// Every multi-byte integer on the wire is little-endian.
package format

// ============================================================================
// Package Header (EFI_HII_PACKAGE_HEADER)
// ============================================================================
// Layout:
//
//	Offset  Size  Field
//	0x00    3     Length (24-bit, includes this header)
//	0x03    1     Type
const (
	PackageLengthOffset = 0x00
	PackageLengthSize   = 3
	PackageTypeOffset   = 0x03

	// PackageHeaderSize is the size of the generic package header.
	PackageHeaderSize = 4

	// MaxPackageLength is the largest value the 24-bit length field can hold.
	MaxPackageLength = 0xFFFFFF
)

// ============================================================================
// Package List Header (EFI_HII_PACKAGE_LIST_HEADER)
// ============================================================================
// Layout:
//
//	Offset  Size  Field
//	0x00    16    PackageListGuid (EFI_GUID)
//	0x10    4     PackageLength (includes this header and every package)
const (
	PackageListGUIDOffset   = 0x00
	PackageListLengthOffset = 0x10

	// PackageListHeaderSize is the size of the package list header.
	PackageListHeaderSize = 0x14

	// MaxPackageListLength is the largest value of the 32-bit list length.
	MaxPackageListLength = 0xFFFFFFFF
)

// GUIDSize is the wire size of an EFI_GUID.
const GUIDSize = 16

// ============================================================================
// String Package Header (EFI_HII_STRING_PACKAGE_HDR)
// ============================================================================
// Offsets are relative to the start of the package (including its generic
// header). The packed structure has no padding:
//
//	Offset  Size  Field
//	0x00    4     EFI_HII_PACKAGE_HEADER
//	0x04    4     HdrSize (bytes from package start to first string block)
//	0x08    4     StringInfoOffset
//	0x0C    32    LanguageWindow (16 x CHAR16)
//	0x2C    2     LanguageName (string id)
//	0x2E    ...   Language (nul-terminated ASCII, ends at HdrSize)
const (
	StringHdrSizeOffset          = 0x04
	StringInfoOffsetOffset       = 0x08
	StringLanguageWindowOffset   = 0x0C
	StringLanguageWindowLen      = 16 // CHAR16 entries
	StringLanguageNameOffset     = 0x2C
	StringLanguageOffset         = 0x2E
	StringPackageFixedHeaderSize = StringLanguageOffset // 46 bytes

	// DefaultLanguageName is the string id stored in LanguageName by the
	// builder; string 1 conventionally holds the language's display name.
	DefaultLanguageName = 1
)

// ============================================================================
// Font Package Header
// ============================================================================
// Only the glyph counters that follow the generic header are decoded.
const (
	FontNarrowGlyphsOffset     = 0x04
	FontWideGlyphsOffset       = 0x06
	FontPackageFixedHeaderSize = 0x08
)

// ============================================================================
// String Blocks (EFI_HII_SIBT_*)
// ============================================================================
const (
	SIBTEnd             = 0x00
	SIBTStringSCSU      = 0x10
	SIBTStringSCSUFont  = 0x11
	SIBTStringsSCSU     = 0x12
	SIBTStringsSCSUFont = 0x13
	SIBTStringUCS2      = 0x14
	SIBTStringUCS2Font  = 0x15
	SIBTStringsUCS2     = 0x16
	SIBTStringsUCS2Font = 0x17
	SIBTDuplicate       = 0x20
	SIBTSkip2           = 0x21
	SIBTSkip1           = 0x22
	SIBTExt1            = 0x30
	SIBTExt2            = 0x31
	SIBTExt4            = 0x32
	SIBTFont            = 0x40

	// StringBlockTagSize is the size of the block type byte.
	StringBlockTagSize = 1

	// UCS2UnitSize is the number of bytes per UCS-2 code unit.
	UCS2UnitSize = 2
)

// ============================================================================
// IFR Opcode Header (EFI_IFR_OP_HEADER)
// ============================================================================
//
//	Offset  Size  Field
//	0x00    1     OpCode
//	0x01    1     Length (bits 0-6) | Scope (bit 7)
const (
	OpCodeOffset   = 0x00
	OpLengthOffset = 0x01
	OpHeaderSize   = 2
	OpLengthMask   = 0x7F
	OpScopeBit     = 0x80
)
