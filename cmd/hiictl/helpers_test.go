package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/builder"
	"github.com/joshuapare/hiikit/hii/capture"
)

const (
	setupGUID = "8e1f5a0c-2f1d-4c8e-9d44-2b3c1a0f9e77"
	fontGUID  = "d1f7a9e2-40b5-4a3a-8f4e-6a1b2c3d4e5f"
)

// writeCapture builds a two-list database and saves it under name in a temp
// directory. The extension picks the codec.
func writeCapture(t *testing.T, name string) string {
	t.Helper()

	en, err := builder.StringPackage("en-US", []string{"English", "Boot Manager", "Secure Boot"})
	require.NoError(t, err)
	fr, err := builder.StringPackage("fr-FR", []string{"Français", "Gestionnaire"})
	require.NoError(t, err)
	form, err := builder.FormPackage([]byte{
		0x0E, 0x82, // FORM_SET, scope
		0x01, 0x86, 0x01, 0x00, 0x02, 0x00, // FORM, scope
		0x02, 0x82, // SUBTITLE, scope
		0x29, 0x02,
		0x29, 0x02,
		0x29, 0x02,
	})
	require.NoError(t, err)
	setup, err := builder.PackageList(hii.MustParseGUID(setupGUID), en, fr, form, builder.EndPackage())
	require.NoError(t, err)

	font, err := builder.FontPackage(2, 0, nil)
	require.NoError(t, err)
	fonts, err := builder.PackageList(hii.MustParseGUID(fontGUID), font, builder.EndPackage())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, capture.Save(path, builder.Database(setup, fonts)))
	return path
}

// resetFlags restores every package-level flag variable to its default.
func resetFlags() {
	verbose, quiet, jsonOut, cborOut = false, false, false, false
	logDir = ""
	stringsGUID, stringsLang = "", ""
	formsGUID, formsDump = "", false
	buildOutput = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
