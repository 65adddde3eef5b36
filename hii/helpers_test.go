package hii

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hiikit/hii/builder"
)

var testGUID = MustParseGUID("8e1f5a0c-2f1d-4c8e-9d44-2b3c1a0f9e77")

func mustList(t *testing.T, guid GUID, pkgs ...[]byte) PackageList {
	t.Helper()
	raw, err := builder.PackageList(guid, pkgs...)
	require.NoError(t, err)
	l, err := ParsePackageList(raw)
	require.NoError(t, err)
	return l
}

func mustStrings(t *testing.T, lang string, strs ...string) []byte {
	t.Helper()
	p, err := builder.StringPackage(lang, strs)
	require.NoError(t, err)
	return p
}

func mustForm(t *testing.T, opcodes ...byte) []byte {
	t.Helper()
	p, err := builder.FormPackage(opcodes)
	require.NoError(t, err)
	return p
}
