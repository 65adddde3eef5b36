package hii

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hiikit/hii/builder"
)

func TestPackageIteratorSumsToBody(t *testing.T) {
	l := mustList(t, testGUID,
		mustStrings(t, "en-US", "English", "Setup"),
		mustForm(t, 0x29, 0x02),
		builder.EndPackage(),
	)

	sum := 0
	it := l.Packages()
	for {
		p, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		sum += int(p.Header.Length)
	}
	require.Equal(t, int(l.Header.TotalSize)-20, sum)
	require.Zero(t, it.Remaining())
	require.NoError(t, l.Validate())
}

func TestPackageListRoundTrip(t *testing.T) {
	pkgs := [][]byte{
		mustForm(t, 0x0E, 0x82, 0x29, 0x02),
		mustStrings(t, "en-US", "a"),
		{0x06, 0x00, 0x00, 0x42, 0x01, 0x02}, // unrecognized tag
		builder.EndPackage(),
	}
	l := mustList(t, testGUID, pkgs...)
	require.Equal(t, testGUID, l.GUID())

	got, err := l.AllPackages()
	require.NoError(t, err)
	require.Len(t, got, len(pkgs))
	for i, p := range got {
		require.Equal(t, pkgs[i][3], byte(p.Header.Type), "package %d", i)
		require.Equal(t, pkgs[i][4:], p.Body(), "package %d", i)
	}
}

func TestPackageIteratorLoneEndPackage(t *testing.T) {
	l := mustList(t, testGUID, builder.EndPackage())
	require.Equal(t, 4, len(l.Body()))

	it := l.Packages()
	p, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, PackageTypeEnd, p.Header.Type)
	require.Empty(t, p.Body())
	_, ok := Typed(p).(EndPackage)
	require.True(t, ok)

	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestPackageIteratorEmptyBody(t *testing.T) {
	l := mustList(t, testGUID)
	_, err := l.Packages().Next()
	require.ErrorIs(t, err, io.EOF)
	require.Error(t, l.Validate())
}

func TestPackageIteratorTruncatedPackage(t *testing.T) {
	// A package claiming 8 bytes where only 6 remain in the list body.
	l := mustList(t, testGUID, []byte{0x08, 0x00, 0x00, 0x02, 0x29, 0x02})
	it := l.Packages()
	_, err := it.Next()
	require.ErrorIs(t, err, ErrTruncated)
	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestValidateRequiresEnd(t *testing.T) {
	l := mustList(t, testGUID, mustForm(t, 0x29, 0x02))
	require.Error(t, l.Validate())
}

func TestPackageListIterator(t *testing.T) {
	other := MustParseGUID("00000000-0000-0000-0000-000000000001")
	a, err := builder.PackageList(testGUID, builder.EndPackage())
	require.NoError(t, err)
	b, err := builder.PackageList(other, mustForm(t, 0x29, 0x02), builder.EndPackage())
	require.NoError(t, err)
	db := builder.Database(a, b)

	lists, err := ParseDatabase(db)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, testGUID, lists[0].GUID())
	require.Equal(t, other, lists[1].GUID())
	require.Equal(t, b, lists[1].Bytes())

	found, err := FindPackageList(db, other)
	require.NoError(t, err)
	require.Equal(t, len(b), found.Len())

	_, err = FindPackageList(db, MustParseGUID("00000000-0000-0000-0000-000000000002"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPackageListIteratorTruncatedTail(t *testing.T) {
	a, err := builder.PackageList(testGUID, builder.EndPackage())
	require.NoError(t, err)
	// Second list overstates its size by one byte.
	b, err := builder.PackageList(testGUID, builder.EndPackage())
	require.NoError(t, err)
	b[16]++
	db := builder.Database(a, b)

	it := NewPackageListIterator(db)
	_, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, len(a), it.Offset())

	_, err = it.Next()
	require.ErrorIs(t, err, ErrTruncated)
	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)

	_, err = ParseDatabase(db)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestPackageListHeaderTooSmall(t *testing.T) {
	raw, err := builder.PackageList(testGUID)
	require.NoError(t, err)
	raw[16] = 0x10
	_, err = ParsePackageList(raw)
	require.ErrorIs(t, err, ErrTruncated)

	_, err = ParsePackageList(raw[:19])
	require.ErrorIs(t, err, ErrTruncated)
}

func TestNewPackageListIteratorEmpty(t *testing.T) {
	lists, err := ParseDatabase(nil)
	require.NoError(t, err)
	require.Empty(t, lists)
}
