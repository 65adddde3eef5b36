package hii

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/hiikit/internal/format"
)

// PackageListIterator walks the package lists of an exported database. It is
// forward-only and cannot be restarted; create a new one to walk again.
type PackageListIterator struct {
	buf  []byte
	off  int
	done bool
}

// NewPackageListIterator returns a cursor positioned at the first package list
// in db. db is typically the buffer filled by ExportPackageLists.
func NewPackageListIterator(db []byte) *PackageListIterator {
	return &PackageListIterator{buf: db}
}

// Next returns the next package list or io.EOF once the buffer is consumed.
// A declared size larger than the remaining bytes is reported as ErrTruncated
// (firmware exports can overstate the final list) and ends the iteration.
func (it *PackageListIterator) Next() (PackageList, error) {
	if it.done {
		return PackageList{}, io.EOF
	}
	if it.off >= len(it.buf) {
		it.done = true
		return PackageList{}, io.EOF
	}

	l, err := ParsePackageList(it.buf[it.off:])
	if err != nil {
		it.done = true
		return PackageList{}, fmt.Errorf("hii: package list at 0x%X: %w", it.off, err)
	}
	it.off += l.Len()
	return l, nil
}

// Offset returns the byte offset of the next package list to be read.
func (it *PackageListIterator) Offset() int { return it.off }

// PackageIterator walks the packages of one package list body. remaining is
// the counted number of body bytes not yet consumed; termination is decided
// from it only after a full record has been read and counted, so a body whose
// last (or only) record is a 4-byte End package still yields that record.
type PackageIterator struct {
	body      []byte
	off       int
	remaining int
	done      bool
}

func newPackageIterator(body []byte) *PackageIterator {
	return &PackageIterator{body: body, remaining: len(body)}
}

// Next returns the next package or io.EOF once the body is consumed.
func (it *PackageIterator) Next() (Package, error) {
	if it.done {
		return Package{}, io.EOF
	}
	if it.remaining == 0 {
		it.done = true
		return Package{}, io.EOF
	}

	p, err := ParsePackage(it.body[it.off : it.off+it.remaining])
	if err != nil {
		it.done = true
		return Package{}, fmt.Errorf("hii: package at body offset 0x%X: %w", it.off, err)
	}
	it.off += p.Len()
	it.remaining -= p.Len()
	return p, nil
}

// Remaining returns the number of body bytes not yet consumed.
func (it *PackageIterator) Remaining() int { return it.remaining }

// ParseDatabase walks an exported database and returns every package list.
func ParseDatabase(db []byte) ([]PackageList, error) {
	var out []PackageList
	it := NewPackageListIterator(db)
	for {
		l, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, l)
	}
}

// FindPackageList returns the first package list in db with the given GUID.
func FindPackageList(db []byte, guid format.GUID) (PackageList, error) {
	it := NewPackageListIterator(db)
	for {
		l, err := it.Next()
		if errors.Is(err, io.EOF) {
			return PackageList{}, fmt.Errorf("hii: package list %s: %w", guid, ErrNotFound)
		}
		if err != nil {
			return PackageList{}, err
		}
		if l.GUID() == guid {
			return l, nil
		}
	}
}
