package capture

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Codec is the container a capture file is stored in.
type Codec int

const (
	Raw Codec = iota
	Zstd
	LZ4
	XZ
)

func (c Codec) String() string {
	switch c {
	case Raw:
		return "raw"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case XZ:
		return "xz"
	default:
		return fmt.Sprintf("codec(%d)", int(c))
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// Sniff identifies the codec from the leading magic bytes. Anything that is
// not a known compressed frame is Raw; a package database has no magic.
func Sniff(b []byte) Codec {
	switch {
	case bytes.HasPrefix(b, zstdMagic):
		return Zstd
	case bytes.HasPrefix(b, lz4Magic):
		return LZ4
	case bytes.HasPrefix(b, xzMagic):
		return XZ
	default:
		return Raw
	}
}

// CodecForPath picks the codec Save uses for path from its extension.
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	case ".xz":
		return XZ
	default:
		return Raw
	}
}

// zstd encoders and decoders are safe for concurrent use and costly to set
// up, so one of each is shared.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("capture: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("capture: zstd decoder initialization failed: " + err.Error())
	}
}

// Encode compresses data with c. Raw returns data unchanged.
func Encode(data []byte, c Codec) ([]byte, error) {
	switch c {
	case Raw:
		return data, nil
	case Zstd:
		return zstdEncoder.EncodeAll(data, nil), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	case XZ:
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("xz compress: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("xz compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("xz compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("capture: unsupported codec %s", c)
	}
}

// Decode sniffs b and decompresses it. Raw input is returned as-is.
func Decode(b []byte) ([]byte, Codec, error) {
	c := Sniff(b)
	switch c {
	case Raw:
		return b, c, nil
	case Zstd:
		out, err := zstdDecoder.DecodeAll(b, nil)
		if err != nil {
			return nil, c, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, c, nil
	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(b)))
		if err != nil {
			return nil, c, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out, c, nil
	default: // XZ
		r, err := xz.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, c, fmt.Errorf("xz decompress: %w", err)
		}
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, c, fmt.Errorf("xz decompress: %w", err)
		}
		return out, c, nil
	}
}
