package hii

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hiikit/hii/builder"
)

func mustFormPackage(t *testing.T, opcodes ...byte) FormPackage {
	t.Helper()
	p, err := ParsePackage(mustForm(t, opcodes...))
	require.NoError(t, err)
	fp, ok := Typed(p).(FormPackage)
	require.True(t, ok)
	return fp
}

func TestOpCodeIteratorSingleEnd(t *testing.T) {
	fp := mustFormPackage(t, 0x29, 0x02)
	it := fp.OpCodes()

	op, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, IFREndOp, op.Code)
	require.Equal(t, uint8(2), op.Length)
	require.False(t, op.Scope)
	require.NotNil(t, op.Payload())
	require.Empty(t, op.Payload())
	require.Equal(t, 4, op.Offset)

	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestOpCodeIteratorScopeAndPayload(t *testing.T) {
	fp := mustFormPackage(t,
		0x01, 0x86, 0x01, 0x00, 0x02, 0x00, // FORM, scope, payload 4 bytes
		0x02, 0x82, // SUBTITLE, scope
		0x29, 0x02,
		0x29, 0x02,
	)
	var got []OpCode
	it := fp.OpCodes()
	for {
		op, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, op)
	}
	require.Len(t, got, 4)
	require.Equal(t, IFRFormOp, got[0].Code)
	require.True(t, got[0].Scope)
	require.Equal(t, []byte{0x01, 0x00, 0x02, 0x00}, got[0].Payload())
	require.Equal(t, IFRSubtitleOp, got[1].Code)
	require.Equal(t, 4+6, got[1].Offset)
	require.Equal(t, []byte{0x29, 0x02}, got[3].Bytes())

	n, err := fp.CountOpCodes()
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, fp.Body(), fp.Data())
}

func TestOpCodeIteratorWalksUnknownOpCodes(t *testing.T) {
	fp := mustFormPackage(t, 0xF0, 0x03, 0xAA, 0x29, 0x02)
	it := fp.OpCodes()

	op, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, IFROpCode(0xF0), op.Code)
	require.False(t, op.Code.IsKnown())
	require.Equal(t, []byte{0xAA}, op.Payload())

	op, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, IFREndOp, op.Code)
}

func TestOpCodeIteratorTruncated(t *testing.T) {
	tests := []struct {
		name string
		ops  []byte
	}{
		{"lone op byte", []byte{0x29}},
		{"length below header", []byte{0x29, 0x01}},
		{"zero length", []byte{0x29, 0x80}},
		{"length past body", []byte{0x01, 0x06, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := mustFormPackage(t, tt.ops...)
			it := fp.OpCodes()
			_, err := it.Next()
			require.ErrorIs(t, err, ErrTruncated)
			_, err = it.Next()
			require.ErrorIs(t, err, io.EOF)

			_, err = fp.CountOpCodes()
			require.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestCountOpCodeClasses(t *testing.T) {
	fp := mustFormPackage(t,
		0x0E, 0x82, // FORM_SET, scope
		0x0A, 0x82, // SUPPRESS_IF, scope
		0x12, 0x02, // EQ_ID_VAL
		0x46, 0x02, // TRUE
		0x29, 0x02,
		0x7F, 0x02, // unknown
		0x29, 0x02,
	)
	st, err := fp.CountOpCodeClasses()
	require.NoError(t, err)
	require.Equal(t, OpCodeStats{Statements: 4, Expressions: 2, Unknown: 1, Scopes: 2}, st)
	require.Equal(t, 7, st.Total())
}

func TestEmptyFormPackage(t *testing.T) {
	raw, err := builder.FormPackage(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x00, 0x00, 0x02}, raw)

	p, err := ParsePackage(raw)
	require.NoError(t, err)
	fp := Typed(p).(FormPackage)
	_, err = fp.OpCodes().Next()
	require.ErrorIs(t, err, io.EOF)
}
