package builder

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/hiikit/internal/format"
)

// Manifest describes one package list in YAML:
//
//	guid: 8e1f5a0c-2f1d-4c8e-9d44-2b3c1a0f9e77
//	packages:
//	  - type: strings
//	    language: en-US
//	    strings: [English, Boot Options]
//	  - type: form
//	    opcodes: "0e a6 ... 29 02"
//	  - type: font
//	    narrow: 2
//	    wide: 0
//	  - type: end
//
// A missing trailing end package is appended by Build.
type Manifest struct {
	GUID     string            `yaml:"guid"`
	Packages []ManifestPackage `yaml:"packages"`
}

// ManifestPackage is one entry of Manifest.Packages. Which fields apply
// depends on Type.
type ManifestPackage struct {
	Type string `yaml:"type"` // strings, form, font, end or raw

	// strings
	Language string   `yaml:"language,omitempty"`
	Strings  []string `yaml:"strings,omitempty"`

	// form
	OpCodes HexBytes `yaml:"opcodes,omitempty"`

	// font
	Narrow uint16   `yaml:"narrow,omitempty"`
	Wide   uint16   `yaml:"wide,omitempty"`
	Glyphs HexBytes `yaml:"glyphs,omitempty"`

	// raw
	Tag  uint8    `yaml:"tag,omitempty"`
	Body HexBytes `yaml:"body,omitempty"`
}

// HexBytes is a byte string written as hex in YAML. Whitespace between
// digits is ignored, so dumps can be pasted as-is.
type HexBytes []byte

// UnmarshalYAML accepts a hex scalar such as "29 02" or "2902".
func (h *HexBytes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: hex bytes must be a string", value.Line)
	}
	b, err := hex.DecodeString(strings.Join(strings.Fields(value.Value), ""))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*h = b
	return nil
}

// MarshalYAML writes the bytes as space-separated hex pairs.
func (h HexBytes) MarshalYAML() (interface{}, error) {
	pairs := make([]string, len(h))
	for i, b := range h {
		pairs[i] = hex.EncodeToString([]byte{b})
	}
	return strings.Join(pairs, " "), nil
}

// LoadManifest parses a manifest from r. Unknown keys are rejected.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// LoadManifestFile is LoadManifest over the named file.
func LoadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return LoadManifest(f)
}

// Build emits the package list the manifest describes.
func (m *Manifest) Build() ([]byte, error) {
	guid, err := format.ParseGUID(m.GUID)
	if err != nil {
		return nil, err
	}

	pkgs := make([][]byte, 0, len(m.Packages)+1)
	for i, mp := range m.Packages {
		p, err := mp.build()
		if err != nil {
			return nil, fmt.Errorf("manifest package %d (%s): %w", i, mp.Type, err)
		}
		pkgs = append(pkgs, p)
	}
	if n := len(m.Packages); n == 0 || m.Packages[n-1].Type != "end" {
		pkgs = append(pkgs, EndPackage())
	}
	return PackageList(guid, pkgs...)
}

func (mp ManifestPackage) build() ([]byte, error) {
	switch mp.Type {
	case "strings":
		if mp.Language == "" {
			return nil, errors.New("language is required")
		}
		return StringPackage(mp.Language, mp.Strings)
	case "form":
		return FormPackage(mp.OpCodes)
	case "font":
		return FontPackage(mp.Narrow, mp.Wide, mp.Glyphs)
	case "end":
		return EndPackage(), nil
	case "raw":
		return rawPackage(format.PackageType(mp.Tag), mp.Body)
	default:
		return nil, fmt.Errorf("unknown package type %q", mp.Type)
	}
}
