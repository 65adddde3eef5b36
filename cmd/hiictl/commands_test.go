package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/capture"
)

func TestListsCommand(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		json        bool
		wantContain []string
	}{
		{
			name:        "raw capture",
			file:        "hii.bin",
			wantContain: []string{setupGUID, fontGUID, "Total: 2 package lists", "4 packages"},
		},
		{
			name:        "zstd capture",
			file:        "hii.bin.zst",
			wantContain: []string{setupGUID, fontGUID},
		},
		{
			name:        "json",
			file:        "hii.bin.xz",
			json:        true,
			wantContain: []string{`"guid": "` + setupGUID + `"`, `"count": 2`, `"digest"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			path := writeCapture(t, tt.file)

			output, err := captureOutput(t, func() error {
				return runLists(newListsCmd(), []string{path})
			})
			require.NoError(t, err)
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestListsCommandCBOR(t *testing.T) {
	resetFlags()
	cborOut = true
	path := writeCapture(t, "hii.bin.lz4")

	output, err := captureOutput(t, func() error {
		return runLists(newListsCmd(), []string{path})
	})
	require.NoError(t, err)

	var got struct {
		Count int `cbor:"count"`
		Lists []struct {
			GUID string `cbor:"guid"`
			Size int    `cbor:"size"`
		} `cbor:"lists"`
	}
	require.NoError(t, cbor.Unmarshal([]byte(output), &got))
	require.Equal(t, 2, got.Count)
	require.Equal(t, setupGUID, got.Lists[0].GUID)
}

func TestPackagesCommand(t *testing.T) {
	resetFlags()
	path := writeCapture(t, "hii.bin")

	output, err := captureOutput(t, func() error {
		return runPackages(newPackagesCmd(), []string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"STRINGS", "en-US, 3 strings", "fr-FR, 2 strings",
		"FORMS", "6 op-codes", "FONTS", "END",
	})
}

func TestStringsCommand(t *testing.T) {
	tests := []struct {
		name           string
		lang           string
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "all languages",
			wantContain: []string{"Language: en-US", `ID 2 = "Boot Manager"`, "Language: fr-FR", `ID 1 = "Français"`},
		},
		{
			name:           "one language",
			lang:           "fr-FR",
			wantContain:    []string{`ID 2 = "Gestionnaire"`},
			wantNotContain: []string{"en-US", "Boot Manager"},
		},
		{
			name:        "json",
			lang:        "en-US",
			json:        true,
			wantContain: []string{`"Secure Boot"`},
		},
		{
			name:    "missing language",
			lang:    "de-DE",
			wantErr: true,
		},
	}
	path := writeCapture(t, "hii.bin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			stringsGUID = setupGUID
			stringsLang = tt.lang
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runStrings(newStringsCmd(), []string{path})
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestStringsCommandUnknownGUID(t *testing.T) {
	resetFlags()
	stringsGUID = "00000000-0000-0000-0000-000000000009"
	path := writeCapture(t, "hii.bin")

	_, err := captureOutput(t, func() error {
		return runStrings(newStringsCmd(), []string{path})
	})
	require.ErrorIs(t, err, hii.ErrNotFound)

	stringsGUID = "not-a-guid"
	_, err = captureOutput(t, func() error {
		return runStrings(newStringsCmd(), []string{path})
	})
	require.ErrorIs(t, err, hii.ErrInvalidGUID)
}

func TestFormsCommand(t *testing.T) {
	resetFlags()
	formsGUID = setupGUID
	formsDump = true
	path := writeCapture(t, "hii.bin")

	output, err := captureOutput(t, func() error {
		return runForms(newFormsCmd(), []string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"header 14000002",
		"EFI_IFR_FORM_SET_OP len=2 scope",
		"EFI_IFR_SUBTITLE_OP",
		"6 op-codes: 6 statements, 0 expressions, 0 unknown",
		"00000000  14 00 00 02",
	})

	resetFlags()
	formsGUID = fontGUID
	output, err = captureOutput(t, func() error {
		return runForms(newFormsCmd(), []string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"No form packages"})
}

func TestFormsCommandJSONDump(t *testing.T) {
	resetFlags()
	jsonOut = true
	formsGUID = setupGUID
	formsDump = true
	path := writeCapture(t, "hii.bin")

	output, err := captureOutput(t, func() error {
		return runForms(newFormsCmd(), []string{path})
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"dump"`, "00000000  14 00 00 02"})

	resetFlags()
	jsonOut = true
	formsGUID = setupGUID
	output, err = captureOutput(t, func() error {
		return runForms(newFormsCmd(), []string{path})
	})
	require.NoError(t, err)
	assertNotContains(t, output, []string{`"dump"`})
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "setup.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
guid: `+setupGUID+`
packages:
  - type: strings
    language: en-US
    strings: [English, Exit]
  - type: form
    opcodes: "0e 82 29 02"
`), 0o644))

	resetFlags()
	buildOutput = filepath.Join(dir, "out.hii.zst")
	output, err := captureOutput(t, func() error {
		return runBuild(newBuildCmd(), []string{manifest})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Wrote", setupGUID})

	c, err := capture.Load(buildOutput)
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, capture.Zstd, c.Codec)

	l, err := hii.FindPackageList(c.Data, hii.MustParseGUID(setupGUID))
	require.NoError(t, err)
	require.NoError(t, l.Validate())
	s, ok := l.GetString(1, "en-US")
	require.True(t, ok)
	require.Equal(t, "Exit", s)
}

func TestBuildCommandBadManifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("guid: nope\n"), 0o644))

	resetFlags()
	buildOutput = filepath.Join(t.TempDir(), "out.hii")
	_, err := captureOutput(t, func() error {
		return runBuild(newBuildCmd(), []string{manifest})
	})
	require.ErrorIs(t, err, hii.ErrInvalidGUID)
}

func TestRootRejectsJSONAndCBOR(t *testing.T) {
	resetFlags()
	jsonOut, cborOut = true, true
	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	require.Error(t, err)
	resetFlags()
}

func TestVerboseLogging(t *testing.T) {
	resetFlags()
	logDir = t.TempDir()
	verbose = true
	require.NoError(t, initLogging())
	require.NoError(t, logCloser.Close())

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	resetFlags()
	require.NoError(t, initLogging())
}
