package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
)

// Compressor compresses a byte payload, typically the text form of an integer
// sequence.
//
// Memory management:
//   - Returned slice is owned by the caller (NoOp returns the input itself)
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	original, err := decompressor.Decompress(compressed)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Implementations in this package are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one measured compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size.
//
// Values below 1.0 mean the algorithm saved space. Short printable strings
// often come out above 1.0 because of per-frame headers.
// Returns 0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// It is negative when compression grew the payload.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the codec registered for algorithm, decompresses
// the result and verifies it matches data.
//
// Returns errs.ErrUnsupportedCodec for an unknown algorithm and
// errs.ErrRoundTripMismatch if decompression does not restore data.
func Measure(algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(algorithm)
	if err != nil {
		return CompressionStats{}, err
	}

	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", algorithm, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s decompression failed: %w", algorithm, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%w: %s restored %d of %d bytes", errs.ErrRoundTripMismatch, algorithm, len(restored), len(data))
	}

	return stats, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: errs.ErrUnsupportedCodec for an invalid compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCodec, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrUnsupportedCodec, compressionType)
}
