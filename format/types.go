package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/axe/errs"
)

type (
	CodecType       uint8
	CompressionType uint8
)

const (
	CodecSimple        CodecType = 0x1 // CodecSimple represents space-separated decimal text.
	CodecPositional    CodecType = 0x2 // CodecPositional represents fixed-width reverse radix digits.
	CodecBitRechunking CodecType = 0x3 // CodecBitRechunking represents bit-packed power-of-two digits.
	CodecDelta         CodecType = 0x4 // CodecDelta represents sorted gaps written with a delta kit.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// CodecTypes lists every codec type in display order.
var CodecTypes = []CodecType{CodecSimple, CodecPositional, CodecBitRechunking, CodecDelta}

// CompressionTypes lists every compression type.
var CompressionTypes = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

func (c CodecType) String() string {
	switch c {
	case CodecSimple:
		return "Simple"
	case CodecPositional:
		return "Positional"
	case CodecBitRechunking:
		return "BitRechunking"
	case CodecDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// OrderPreserving reports whether decoding restores the input order.
// Only the delta codec sorts its input.
func (c CodecType) OrderPreserving() bool {
	return c != CodecDelta
}

// ParseCodecType resolves a case-insensitive codec name such as "delta" or
// "bit-rechunking".
func ParseCodecType(name string) (CodecType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple":
		return CodecSimple, nil
	case "positional", "radix":
		return CodecPositional, nil
	case "bitrechunking", "bit-rechunking", "rechunk", "bits":
		return CodecBitRechunking, nil
	case "delta":
		return CodecDelta, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCodec, name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType resolves a case-insensitive compression name.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrUnsupportedCodec, name)
	}
}
