package format

import "fmt"

// PackageType is the one-byte type tag of an HII package (EFI_HII_PACKAGE_*).
type PackageType uint8

const (
	PackageTypeAll            PackageType = 0x00
	PackageTypeGUID           PackageType = 0x01
	PackageTypeForms          PackageType = 0x02
	PackageTypeStrings        PackageType = 0x04
	PackageTypeFonts          PackageType = 0x05
	PackageTypeImages         PackageType = 0x06
	PackageTypeSimpleFonts    PackageType = 0x07
	PackageTypeDevicePath     PackageType = 0x08
	PackageTypeKeyboardLayout PackageType = 0x09
	PackageTypeAnimations     PackageType = 0x0A
	PackageTypeEnd            PackageType = 0xDF
	PackageTypeSystemBegin    PackageType = 0xE0
	PackageTypeSystemEnd      PackageType = 0xFF
)

// Known reports whether t is one of the enumerated package type constants.
// Tags between PackageTypeSystemBegin and PackageTypeSystemEnd are valid on
// the wire but only the two boundary values are named.
func (t PackageType) Known() bool {
	switch t {
	case PackageTypeAll, PackageTypeGUID, PackageTypeForms, PackageTypeStrings,
		PackageTypeFonts, PackageTypeImages, PackageTypeSimpleFonts,
		PackageTypeDevicePath, PackageTypeKeyboardLayout, PackageTypeAnimations,
		PackageTypeEnd, PackageTypeSystemBegin, PackageTypeSystemEnd:
		return true
	}
	return false
}

// String returns the firmware name of the package type.
func (t PackageType) String() string {
	switch t {
	case PackageTypeAll:
		return "ALL"
	case PackageTypeGUID:
		return "GUID"
	case PackageTypeForms:
		return "FORMS"
	case PackageTypeStrings:
		return "STRINGS"
	case PackageTypeFonts:
		return "FONTS"
	case PackageTypeImages:
		return "IMAGES"
	case PackageTypeSimpleFonts:
		return "SIMPLE_FONTS"
	case PackageTypeDevicePath:
		return "DEVICE_PATH"
	case PackageTypeKeyboardLayout:
		return "KEYBOARD_LAYOUT"
	case PackageTypeAnimations:
		return "ANIMATIONS"
	case PackageTypeEnd:
		return "END"
	case PackageTypeSystemBegin:
		return "SYSTEM_BEGIN"
	case PackageTypeSystemEnd:
		return "SYSTEM_END"
	default:
		return "UNKNOWN"
	}
}

// ParsePackageType validates a raw tag. Unenumerated tags yield
// ErrUnrecognizedType together with the raw value so callers can still report it.
func ParsePackageType(b byte) (PackageType, error) {
	t := PackageType(b)
	if !t.Known() {
		return t, fmt.Errorf("package type 0x%02X: %w", b, ErrUnrecognizedType)
	}
	return t, nil
}
