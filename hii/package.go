package hii

import (
	"fmt"

	"github.com/joshuapare/hiikit/internal/buf"
	"github.com/joshuapare/hiikit/internal/format"
)

// Package is a zero-cost view over a single HII package inside a package
// list. It does NOT own memory; buf aliases exactly Header.Length bytes of the
// caller's buffer and is only valid while that buffer is.
//
// On the wire:
//
//	u24  length   // header + body
//	u8   type
//	...  body
type Package struct {
	Header format.PackageHeader
	buf    []byte
}

// ParsePackage decodes the package at the start of b. The declared length must
// cover at least the header and must fit within b.
func ParsePackage(b []byte) (Package, error) {
	h, err := format.DecodePackageHeader(b)
	if err != nil {
		return Package{}, err
	}
	if h.Length < format.PackageHeaderSize {
		return Package{}, fmt.Errorf("hii: package length %d smaller than header: %w",
			h.Length, ErrTruncated)
	}
	data, ok := buf.Slice(b, 0, int(h.Length))
	if !ok {
		return Package{}, fmt.Errorf("hii: package length %d exceeds remaining %d bytes: %w",
			h.Length, len(b), ErrTruncated)
	}
	return Package{Header: h, buf: data}, nil
}

// Raw returns p itself; it lets typed variants hand back the generic view.
func (p Package) Raw() Package { return p }

// Bytes returns the whole package, header included.
func (p Package) Bytes() []byte { return p.buf }

// Body returns the bytes after the 4-byte generic header.
func (p Package) Body() []byte { return p.buf[format.PackageHeaderSize:] }

// Len returns the declared package length.
func (p Package) Len() int { return len(p.buf) }

// Type validates the package tag. Unenumerated tags return ErrUnrecognizedType;
// callers should skip such packages rather than abort.
func (p Package) Type() (format.PackageType, error) {
	return format.ParsePackageType(byte(p.Header.Type))
}

// TypeName returns the firmware name of the package type ("UNKNOWN" for
// unenumerated tags).
func (p Package) TypeName() string {
	return p.Header.Type.String()
}
