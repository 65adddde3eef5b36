package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodePackageHeader(t *testing.T) {
	got, err := EncodePackageHeader(0x000123, PackageTypeStrings)
	require.NoError(t, err)
	require.Equal(t, [4]byte{0x23, 0x01, 0x00, 0x04}, got)

	h, err := DecodePackageHeader(got[:])
	require.NoError(t, err)
	require.Equal(t, uint32(0x000123), h.Length)
	require.Equal(t, PackageTypeStrings, h.Type)
	require.Equal(t, 0x123-4, h.BodyLen())
}

func TestEncodePackageHeaderMaxLength(t *testing.T) {
	got, err := EncodePackageHeader(MaxPackageLength, PackageTypeForms)
	require.NoError(t, err)
	require.Equal(t, [4]byte{0xFF, 0xFF, 0xFF, 0x02}, got)

	_, err = EncodePackageHeader(MaxPackageLength+1, PackageTypeForms)
	require.ErrorIs(t, err, ErrLengthOverflow)
}

func TestDecodePackageHeaderTruncated(t *testing.T) {
	_, err := DecodePackageHeader([]byte{0x04, 0x00, 0x00})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodePackageHeaderUnknownTypeIsNotAnError(t *testing.T) {
	h, err := DecodePackageHeader([]byte{0x08, 0x00, 0x00, 0x33, 0xAA})
	require.NoError(t, err)
	require.Equal(t, PackageType(0x33), h.Type)
	require.False(t, h.Type.Known())
}

func TestPackageHeaderPutToAndString(t *testing.T) {
	b := make([]byte, 4)
	PackageHeader{Length: 4, Type: PackageTypeEnd}.PutTo(b)
	require.Equal(t, []byte{0x04, 0x00, 0x00, 0xDF}, b)

	h, err := DecodePackageHeader(b)
	require.NoError(t, err)
	require.Equal(t, "0x04 0x00 0x00 0xdf", h.String())
	require.Equal(t, 0, PackageHeader{Length: 2}.BodyLen())
}

func TestAppendPackageHeader(t *testing.T) {
	out, err := AppendPackageHeader([]byte{0xAA}, 0x000123, PackageTypeStrings)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0x23, 0x01, 0x00, 0x04}, out)

	_, err = AppendPackageHeader(nil, MaxPackageLength+1, PackageTypeForms)
	require.ErrorIs(t, err, ErrLengthOverflow)
}
