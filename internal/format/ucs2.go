package format

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ucs2 is UTF-16LE without BOM handling. HII strings are UCS-2, which is the
// BMP subset of UTF-16; the encoder below refuses anything outside it.
var ucs2 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// maxUCS2Rune is the last code point representable in a single UCS-2 unit.
const maxUCS2Rune = 0xFFFF

// DecodeUCS2 converts UCS-2LE bytes into UTF-8. A trailing nul unit is
// trimmed; unpaired surrogates decode to U+FFFD.
func DecodeUCS2(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data)%UCS2UnitSize != 0 {
		return "", errors.New("ucs2 string has odd length")
	}
	if data[len(data)-2] == 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-2]
	}
	decoded, err := ucs2.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UCS-2 string: %w", err)
	}
	return string(decoded), nil
}

// EncodeUCS2 converts s into UCS-2LE code units followed by a nul terminator.
// Embedded nuls, invalid UTF-8 and characters outside the BMP are rejected
// with ErrInvalidString.
func EncodeUCS2(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidString)
	}
	for i, r := range s {
		switch {
		case r == 0:
			return nil, fmt.Errorf("%w: nul at byte %d", ErrInvalidString, i)
		case r > maxUCS2Rune:
			return nil, fmt.Errorf("%w: U+%04X at byte %d is outside the BMP", ErrInvalidString, r, i)
		}
	}
	encoded, err := ucs2.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidString, err)
	}
	return append(encoded, 0, 0), nil
}

// DecodeLanguage converts a raw language tag into a Go string. Tags are
// RFC 4646 ASCII; stray high bytes are read as Windows-1252 rather than
// producing invalid UTF-8.
func DecodeLanguage(raw []byte) string {
	if isASCII(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
