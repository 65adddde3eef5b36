package format

import (
	"fmt"

	"github.com/google/uuid"
)

// GUID is an EFI_GUID in its wire layout: Data1 (u32), Data2 (u16) and Data3
// (u16) little-endian, followed by the 8 Data4 bytes as-is. The text form is
// the canonical 8-4-4-4-12 string, so the first three groups are byte-swapped
// relative to the raw bytes.
type GUID [GUIDSize]byte

// GUIDFromUUID converts an RFC 4122 UUID (big-endian fields) to an EFI_GUID.
func GUIDFromUUID(u uuid.UUID) GUID {
	var g GUID
	g[0], g[1], g[2], g[3] = u[3], u[2], u[1], u[0]
	g[4], g[5] = u[5], u[4]
	g[6], g[7] = u[7], u[6]
	copy(g[8:], u[8:])
	return g
}

// UUID converts g to an RFC 4122 UUID with the same text form.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = g[3], g[2], g[1], g[0]
	u[4], u[5] = g[5], g[4]
	u[6], u[7] = g[7], g[6]
	copy(u[8:], g[8:])
	return u
}

// ParseGUID parses the text form of a GUID (with or without braces or a
// urn:uuid: prefix).
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("%w %q: %v", ErrInvalidGUID, s, err)
	}
	return GUIDFromUUID(u), nil
}

// MustParseGUID is ParseGUID for package-level constants; it panics on error.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// DecodeGUID reads a GUID from the first 16 bytes of b.
func DecodeGUID(b []byte) (GUID, error) {
	var g GUID
	if len(b) < GUIDSize {
		return g, fmt.Errorf("guid: %w", ErrTruncated)
	}
	copy(g[:], b[:GUIDSize])
	return g, nil
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

func (g GUID) String() string {
	return g.UUID().String()
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := ParseGUID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
