package hii

import "github.com/joshuapare/hiikit/internal/format"

// GUID is an EFI_GUID in wire byte order.
type GUID = format.GUID

// PackageType is the one-byte package type tag.
type PackageType = format.PackageType

// Package type tags.
const (
	PackageTypeForms   = format.PackageTypeForms
	PackageTypeStrings = format.PackageTypeStrings
	PackageTypeFonts   = format.PackageTypeFonts
	PackageTypeEnd     = format.PackageTypeEnd
)

// ParseGUID parses the canonical text form of a GUID.
func ParseGUID(s string) (GUID, error) { return format.ParseGUID(s) }

// MustParseGUID is ParseGUID that panics on malformed input.
func MustParseGUID(s string) GUID { return format.MustParseGUID(s) }
