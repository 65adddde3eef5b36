package hii

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/hiikit/internal/format"
)

// PackageList is a zero-cost view over one GUID-identified package list. Like
// Package it only records a location inside the caller's buffer.
type PackageList struct {
	Header format.PackageListHeader
	buf    []byte
}

// ParsePackageList decodes the package list at the start of b and checks that
// the declared total size fits.
func ParsePackageList(b []byte) (PackageList, error) {
	h, err := format.DecodePackageListHeader(b)
	if err != nil {
		return PackageList{}, err
	}
	if h.TotalSize < format.PackageListHeaderSize {
		return PackageList{}, fmt.Errorf("hii: package list size %d smaller than header: %w",
			h.TotalSize, ErrTruncated)
	}
	if uint64(h.TotalSize) > uint64(len(b)) {
		return PackageList{}, fmt.Errorf("hii: package list size %d exceeds remaining %d bytes: %w",
			h.TotalSize, len(b), ErrTruncated)
	}
	return PackageList{Header: h, buf: b[:h.TotalSize]}, nil
}

// GUID returns the package list GUID.
func (l PackageList) GUID() format.GUID { return l.Header.GUID }

// Bytes returns the whole package list, header included.
func (l PackageList) Bytes() []byte { return l.buf }

// Body returns the packages region after the 20-byte header.
func (l PackageList) Body() []byte { return l.buf[format.PackageListHeaderSize:] }

// Len returns the declared total size.
func (l PackageList) Len() int { return len(l.buf) }

// Packages returns a cursor over the packages in this list.
func (l PackageList) Packages() *PackageIterator {
	return newPackageIterator(l.Body())
}

// AllPackages walks the whole list and returns every package in order.
func (l PackageList) AllPackages() ([]Package, error) {
	var out []Package
	it := l.Packages()
	for {
		p, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
}

// Validate checks the structural contract a conformant list must satisfy: the
// packages tile the body exactly and the last one is an End package.
func (l PackageList) Validate() error {
	pkgs, err := l.AllPackages()
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return errors.New("hii: package list has no packages")
	}
	if last := pkgs[len(pkgs)-1]; last.Header.Type != format.PackageTypeEnd {
		return fmt.Errorf("hii: package list ends with %s package, want END", last.TypeName())
	}
	return nil
}

// GetString returns the index-th (0-based) string of the first String package
// whose language tag equals language byte for byte. A language mismatch or an
// index past the last block is reported as ok == false, never as an error;
// missing localized strings are an expected condition.
func (l PackageList) GetString(index int, language string) (string, bool) {
	want := trimNul([]byte(language))
	it := l.Packages()
	for {
		p, err := it.Next()
		if err != nil {
			return "", false
		}
		if p.Header.Type != format.PackageTypeStrings {
			continue
		}
		sp, ok := Typed(p).(StringPackage)
		if !ok || !bytes.Equal(sp.LanguageBytes(), want) {
			continue
		}
		return sp.StringAt(index)
	}
}

// Languages returns the language tags of every String package, in order.
func (l PackageList) Languages() ([]string, error) {
	sps, err := StringPackages(l)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(sps))
	for _, sp := range sps {
		out = append(out, sp.Language())
	}
	return out, nil
}

func trimNul(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
