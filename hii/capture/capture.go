// Package capture loads and saves HII database exports ("captures") on disk.
// Raw captures are memory-mapped; zstd, lz4 and xz captures are recognized by
// their frame magic and decompressed on load.
package capture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/hiikit/internal/logger"
	"github.com/joshuapare/hiikit/internal/mmfile"
)

// Capture is a loaded database export. Data stays valid until Close.
type Capture struct {
	Path  string
	Codec Codec
	Data  []byte

	release func() error
}

// Load opens path, mapping it read-only. Compressed captures are inflated
// into a heap buffer and the mapping is released immediately.
func Load(path string) (*Capture, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("capture: load %s: %w", path, err)
	}

	out, codec, err := Decode(data)
	if err != nil {
		release()
		logger.Warn("capture decode failed", "path", path, "err", err)
		return nil, fmt.Errorf("capture: load %s: %w", path, err)
	}
	if codec != Raw {
		if err := release(); err != nil {
			return nil, fmt.Errorf("capture: load %s: %w", path, err)
		}
		release = nil
	}

	logger.Debug("loaded capture", "path", path, "codec", codec.String(),
		"stored", len(data), "size", len(out))
	return &Capture{Path: path, Codec: codec, Data: out, release: release}, nil
}

// Close releases the mapping, if any. It is safe to call more than once.
func (c *Capture) Close() error {
	if c.release == nil {
		return nil
	}
	err := c.release()
	c.release = nil
	c.Data = nil
	return err
}

// Save writes data to path, compressed according to the path's extension.
// The file is written to a temporary sibling first and renamed into place.
func Save(path string, data []byte) error {
	codec := CodecForPath(path)
	enc, err := Encode(data, codec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hiikit-*")
	if err != nil {
		return fmt.Errorf("capture: save %s: %w", path, err)
	}
	if _, err := tmp.Write(enc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("capture: save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("capture: save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("capture: save %s: %w", path, err)
	}

	logger.Info("saved capture", "path", path, "codec", codec.String(),
		"size", len(data), "stored", len(enc))
	return nil
}
