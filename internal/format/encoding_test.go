package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutReadRoundTrip(t *testing.T) {
	b := make([]byte, 12)
	PutU16(b, 0, 0xBEEF)
	PutU24(b, 2, 0x123456)
	PutU32(b, 5, 0xCAFEBABE)

	require.Equal(t, []byte{0xEF, 0xBE, 0x56, 0x34, 0x12, 0xBE, 0xBA, 0xFE, 0xCA}, b[:9])
	require.Equal(t, uint16(0xBEEF), ReadU16(b, 0))
	require.Equal(t, uint32(0x123456), ReadU24(b, 2))
	require.Equal(t, uint32(0xCAFEBABE), ReadU32(b, 5))
}

func TestPutU24DiscardsHighByte(t *testing.T) {
	b := make([]byte, 4)
	PutU24(b, 0, 0xAA123456)
	require.Equal(t, []byte{0x56, 0x34, 0x12, 0x00}, b)
}
