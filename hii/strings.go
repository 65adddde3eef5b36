package hii

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/hiikit/internal/format"
)

// StringPackage is an EFI_HII_PACKAGE_STRINGS package: a fixed header, a
// language tag, then a run of string blocks starting at HdrSize.
type StringPackage struct {
	Package
	hdr format.StringHeader
}

// NewStringPackage decodes the string package header of p. The header is
// validated against the package length before any field is exposed.
func NewStringPackage(p Package) (StringPackage, error) {
	if p.Header.Type != format.PackageTypeStrings {
		return StringPackage{}, fmt.Errorf("hii: %s package is not a string package", p.TypeName())
	}
	hdr, err := format.DecodeStringHeader(p.Bytes())
	if err != nil {
		return StringPackage{}, err
	}
	return StringPackage{Package: p, hdr: hdr}, nil
}

// HdrSize returns the offset of the first string block from the package start.
func (s StringPackage) HdrSize() uint32 { return s.hdr.HdrSize }

// StringInfoOffset returns the stored StringInfoOffset field.
func (s StringPackage) StringInfoOffset() uint32 { return s.hdr.StringInfoOffset }

// LanguageWindow returns the 16-entry language window.
func (s StringPackage) LanguageWindow() [format.StringLanguageWindowLen]uint16 {
	return s.hdr.LanguageWindow
}

// LanguageName returns the string id holding the language's display name.
func (s StringPackage) LanguageName() uint16 { return s.hdr.LanguageName }

// LanguageBytes returns the raw language tag without its nul terminator.
func (s StringPackage) LanguageBytes() []byte { return s.hdr.LanguageRaw }

// Language returns the language tag as a string, e.g. "en-US".
func (s StringPackage) Language() string { return format.DecodeLanguage(s.hdr.LanguageRaw) }

// MatchesLanguage reports whether the stored tag equals language byte for
// byte. A trailing nul in language is ignored.
func (s StringPackage) MatchesLanguage(language string) bool {
	return bytes.Equal(s.hdr.LanguageRaw, trimNul([]byte(language)))
}

// Records returns the string block bytes from HdrSize to the package end.
func (s StringPackage) Records() []byte { return s.Bytes()[s.hdr.HdrSize:] }

// Blocks returns a cursor over the string blocks.
func (s StringPackage) Blocks() *StringBlockIterator {
	return &StringBlockIterator{data: s.Records(), base: int(s.hdr.HdrSize)}
}

// StringAt returns the decoded text of the index-th (0-based) block. ok is false
// when the index is past the last decodable block.
func (s StringPackage) StringAt(index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	it := s.Blocks()
	for i := 0; ; i++ {
		b, err := it.Next()
		if err != nil {
			return "", false
		}
		if i == index {
			text, err := b.Text()
			if err != nil {
				return "", false
			}
			return text, true
		}
	}
}

// Lookup is StringAt gated on an exact language match.
func (s StringPackage) Lookup(index int, language string) (string, bool) {
	if !s.MatchesLanguage(language) {
		return "", false
	}
	return s.StringAt(index)
}

// StringByID resolves an HII string id. Ids are 1-based; id 0 means "no
// string" and is never found.
func (s StringPackage) StringByID(id uint16) (string, bool) {
	if id == 0 {
		return "", false
	}
	return s.StringAt(int(id) - 1)
}

// CountStrings returns the number of blocks the cursor yields before it stops
// or hits a malformed block.
func (s StringPackage) CountStrings() int {
	n := 0
	it := s.Blocks()
	for {
		if _, err := it.Next(); err != nil {
			return n
		}
		n++
	}
}

// Strings decodes every block in order.
func (s StringPackage) Strings() ([]string, error) {
	var out []string
	it := s.Blocks()
	for {
		b, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		text, err := b.Text()
		if err != nil {
			return out, err
		}
		out = append(out, text)
	}
}

// StringBlock is a view over one decoded string block.
type StringBlock struct {
	Type   byte
	Offset int    // offset of the block tag from the package start
	units  []byte // UCS-2LE code units including the nul terminator
}

// Bytes returns the UCS-2LE code units (terminator included) without the tag.
func (b StringBlock) Bytes() []byte { return b.units }

// Len returns the encoded record length: tag byte plus code units.
func (b StringBlock) Len() int { return format.StringBlockTagSize + len(b.units) }

// Units returns the code units, terminator included.
func (b StringBlock) Units() []uint16 {
	out := make([]uint16, len(b.units)/format.UCS2UnitSize)
	for i := range out {
		out[i] = format.ReadU16(b.units, i*format.UCS2UnitSize)
	}
	return out
}

// Text decodes the block into UTF-8, dropping the terminator.
func (b StringBlock) Text() (string, error) {
	return format.DecodeUCS2(b.units)
}

// StringBlockIterator walks the string blocks of one String package. Only
// SIBT_STRING_UCS2 blocks are decoded; the first block of any other type,
// SIBT_END included, ends the iteration.
type StringBlockIterator struct {
	data []byte
	off  int
	base int
	done bool
}

// Next returns the next UCS-2 block or io.EOF.
func (it *StringBlockIterator) Next() (StringBlock, error) {
	if it.done {
		return StringBlock{}, io.EOF
	}
	if it.off >= len(it.data) || it.data[it.off] != format.SIBTStringUCS2 {
		it.done = true
		return StringBlock{}, io.EOF
	}

	start := it.off + format.StringBlockTagSize
	end := -1
	for i := start; i+format.UCS2UnitSize <= len(it.data); i += format.UCS2UnitSize {
		if it.data[i] == 0 && it.data[i+1] == 0 {
			end = i + format.UCS2UnitSize
			break
		}
	}
	if end < 0 {
		it.done = true
		return StringBlock{}, fmt.Errorf("hii: string block at 0x%X has no terminator: %w",
			it.base+it.off, ErrTruncated)
	}

	b := StringBlock{
		Type:   it.data[it.off],
		Offset: it.base + it.off,
		units:  it.data[start:end],
	}
	it.off = end
	return b, nil
}
