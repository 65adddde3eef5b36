package hii

import (
	"errors"
	"io"

	"github.com/joshuapare/hiikit/internal/format"
)

// TypedPackage is the result of dispatching a Package on its type tag. The
// concrete type is one of FormPackage, StringPackage, FontPackage, EndPackage
// or UnknownPackage; use a type switch.
type TypedPackage interface {
	// Raw returns the generic view the typed package wraps.
	Raw() Package
	typed()
}

// FormPackage is an EFI_HII_PACKAGE_FORMS package. Its body is a sequence of
// IFR opcode records with no additional header.
type FormPackage struct{ Package }

// FontPackage is an EFI_HII_PACKAGE_FONTS package.
type FontPackage struct {
	Package
	hdr format.FontHeader
}

// EndPackage terminates a package list. It has no body.
type EndPackage struct{ Package }

// UnknownPackage wraps any package this codec does not interpret, including
// reserved and system-defined tags. Err is set when a recognized tag had to be
// demoted because its type-specific header could not be decoded.
type UnknownPackage struct {
	Package
	Err error
}

func (FormPackage) typed()    {}
func (StringPackage) typed()  {}
func (FontPackage) typed()    {}
func (EndPackage) typed()     {}
func (UnknownPackage) typed() {}

// Typed dispatches p on its type tag. It never fails: unrecognized tags and
// packages too short for their declared type come back as UnknownPackage.
func Typed(p Package) TypedPackage {
	switch p.Header.Type {
	case format.PackageTypeForms:
		return FormPackage{p}
	case format.PackageTypeStrings:
		sp, err := NewStringPackage(p)
		if err != nil {
			return UnknownPackage{Package: p, Err: err}
		}
		return sp
	case format.PackageTypeFonts:
		hdr, err := format.DecodeFontHeader(p.Bytes())
		if err != nil {
			return UnknownPackage{Package: p, Err: err}
		}
		return FontPackage{Package: p, hdr: hdr}
	case format.PackageTypeEnd:
		return EndPackage{p}
	default:
		return UnknownPackage{Package: p}
	}
}

// NarrowGlyphs returns the number of narrow glyphs.
func (f FontPackage) NarrowGlyphs() uint16 { return f.hdr.NarrowGlyphs }

// WideGlyphs returns the number of wide glyphs.
func (f FontPackage) WideGlyphs() uint16 { return f.hdr.WideGlyphs }

// Collect returns every package of type T in l, in list order. When T has a
// fixed tag, packages with other tags are skipped before Typed decodes them.
//
//	strs, err := hii.Collect[hii.StringPackage](list)
func Collect[T TypedPackage](l PackageList) ([]T, error) {
	var out []T
	it := l.Packages()
	for {
		p, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if want, ok := typeTag[T](); ok && p.Header.Type != want {
			continue
		}
		if v, ok := Typed(p).(T); ok {
			out = append(out, v)
		}
	}
}

// typeTag returns the package tag T is decoded from. UnknownPackage and the
// TypedPackage interface itself have none.
func typeTag[T TypedPackage]() (format.PackageType, bool) {
	var zero T
	switch any(zero).(type) {
	case FormPackage:
		return format.PackageTypeForms, true
	case StringPackage:
		return format.PackageTypeStrings, true
	case FontPackage:
		return format.PackageTypeFonts, true
	case EndPackage:
		return format.PackageTypeEnd, true
	}
	return 0, false
}

// StringPackages returns the String packages of l.
func StringPackages(l PackageList) ([]StringPackage, error) { return Collect[StringPackage](l) }

// FormPackages returns the Form packages of l.
func FormPackages(l PackageList) ([]FormPackage, error) { return Collect[FormPackage](l) }

// FontPackages returns the Font packages of l.
func FontPackages(l PackageList) ([]FontPackage, error) { return Collect[FontPackage](l) }
