package hii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePackage(t *testing.T) {
	b := []byte{0x06, 0x00, 0x00, 0x02, 0x29, 0x02, 0xFF}
	p, err := ParsePackage(b)
	require.NoError(t, err)
	require.Equal(t, 6, p.Len())
	require.Equal(t, []byte{0x29, 0x02}, p.Body())
	require.Equal(t, b[:6], p.Bytes())

	typ, err := p.Type()
	require.NoError(t, err)
	require.Equal(t, PackageTypeForms, typ)
	require.Equal(t, "FORMS", p.TypeName())
}

func TestParsePackageTruncated(t *testing.T) {
	// Declared length runs past the buffer.
	_, err := ParsePackage([]byte{0x08, 0x00, 0x00, 0x02, 0x29, 0x02})
	require.ErrorIs(t, err, ErrTruncated)

	// Length smaller than the header itself.
	_, err = ParsePackage([]byte{0x03, 0x00, 0x00, 0x02})
	require.ErrorIs(t, err, ErrTruncated)

	_, err = ParsePackage([]byte{0x04, 0x00})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestPackageUnrecognizedTypeIsSoft(t *testing.T) {
	p, err := ParsePackage([]byte{0x05, 0x00, 0x00, 0x42, 0xAA})
	require.NoError(t, err)

	_, err = p.Type()
	require.ErrorIs(t, err, ErrUnrecognizedType)

	u, ok := Typed(p).(UnknownPackage)
	require.True(t, ok)
	require.NoError(t, u.Err)
	require.Equal(t, []byte{0xAA}, u.Raw().Body())
}
