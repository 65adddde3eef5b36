package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// HII database protocol GUID; its wire bytes are well known.
const hiiDatabaseProtocol = "ef9fc172-a1b2-4693-b327-6d32fc416042"

func TestParseGUIDWireLayout(t *testing.T) {
	g, err := ParseGUID(hiiDatabaseProtocol)
	require.NoError(t, err)
	require.Equal(t, GUID{
		0x72, 0xc1, 0x9f, 0xef, // Data1 LE
		0xb2, 0xa1, // Data2 LE
		0x93, 0x46, // Data3 LE
		0xb3, 0x27, 0x6d, 0x32, 0xfc, 0x41, 0x60, 0x42,
	}, g)
	require.Equal(t, hiiDatabaseProtocol, g.String())
}

func TestParseGUIDBraces(t *testing.T) {
	g, err := ParseGUID("{" + hiiDatabaseProtocol + "}")
	require.NoError(t, err)
	require.Equal(t, MustParseGUID(hiiDatabaseProtocol), g)
}

func TestParseGUIDInvalid(t *testing.T) {
	_, err := ParseGUID("not-a-guid")
	require.ErrorIs(t, err, ErrInvalidGUID)
	require.Panics(t, func() { MustParseGUID("zz") })
}

func TestGUIDTextRoundTrip(t *testing.T) {
	g := MustParseGUID(hiiDatabaseProtocol)
	require.False(t, g.IsZero())

	text, err := g.MarshalText()
	require.NoError(t, err)

	var back GUID
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, g, back)
	require.Equal(t, g.UUID(), back.UUID())
}

func TestDecodeGUID(t *testing.T) {
	want := MustParseGUID(hiiDatabaseProtocol)
	got, err := DecodeGUID(append(want[:], 0xAA))
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = DecodeGUID(want[:15])
	require.ErrorIs(t, err, ErrTruncated)
}
