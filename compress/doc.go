// Package compress provides general-purpose byte compressors used as a point of
// comparison for axe's printable codecs.
//
// The printable codecs shrink an integer sequence while keeping it printable.
// A byte compressor applied to the plain decimal text is the obvious
// alternative, so the report package measures both side by side.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - format.CompressionNone: NoOpCompressor, returns its input unchanged
//   - format.CompressionZstd: ZstdCompressor, klauspost/compress/zstd with pooled encoders and decoders
//   - format.CompressionS2: S2Compressor, klauspost/compress/s2
//   - format.CompressionLZ4: LZ4Compressor, pierrec/lz4/v4 block format
//
// Compressed output is binary, so none of these keep the payload printable.
// Frame overhead also means they lose to the printable codecs on short inputs.
//
// # Measuring
//
//	stats, err := compress.Measure(format.CompressionZstd, []byte("1 25 17 299"))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d -> %d bytes (%.1f%% saved)\n",
//	    stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())
//
// Measure always decompresses and compares the result, so a reported size is
// a verified one.
//
// # Thread Safety
//
// All compressors are stateless values backed by sync.Pool resources and are
// safe for concurrent use. GetCodec returns shared instances.
package compress
