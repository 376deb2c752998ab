// Package axe encodes sequences of bounded integers into short printable
// strings and decodes them losslessly.
//
// Axe is aimed at small numeric payloads that have to travel through
// text-only channels (URLs, query strings, chat messages, CSV cells) where a
// binary compressor is not an option. Every codec works over a closed domain
// [minValue, maxValue] and an alphabet of printable characters.
//
// # Codecs
//
//   - Bit-rechunking: packs each number into ceil(log2(span+1)) bits and cuts
//     the bitstream into floor(log2(alphabet size))-bit characters. Preserves order.
//   - Delta: sorts the input and writes the gaps with a two-tier digit kit.
//     Shortest output for dense data, but only the multiset survives.
//   - Positional: fixed-width base-N digits per number. Preserves order.
//   - Simple: space-separated decimals, used as the baseline.
//
// # Basic Usage
//
//	import "github.com/arloliu/axe"
//
//	c, _ := axe.NewDefaultBitRechunkingCodec()
//	s, _ := c.Serialize([]int{1, 25, 17, 299})   // " (9\",K"
//	numbers, _ := c.Deserialize(s)               // [1 25 17 299]
//
// With a custom domain and alphabet:
//
//	c, err := axe.NewDeltaCodec(
//	    codec.WithAlphabetString("0123456789abcdefghijklmnopqrstuvwxyz"),
//	    codec.WithMaxValue(10_000),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package. The alphabet, deltakit and report packages expose the building
// blocks; errs holds the sentinel errors every failure wraps.
package axe

import (
	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/codec"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/internal/hash"
)

// NewBitRechunkingCodec creates a bit-rechunking codec.
//
// Without options it uses the 95 printable ASCII characters and the domain
// [0, 300].
func NewBitRechunkingCodec(opts ...codec.Option) (*codec.BitRechunkingCodec, error) {
	return codec.NewBitRechunking(opts...)
}

// NewDefaultBitRechunkingCodec creates a bit-rechunking codec with default
// settings. Each call returns a new codec.
func NewDefaultBitRechunkingCodec() (*codec.BitRechunkingCodec, error) {
	return codec.NewBitRechunking()
}

// NewDeltaCodec creates a delta codec. The domain must start at 0.
func NewDeltaCodec(opts ...codec.Option) (*codec.DeltaCodec, error) {
	return codec.NewDelta(opts...)
}

// NewDefaultDeltaCodec creates a delta codec over printable ASCII and [0, 300].
func NewDefaultDeltaCodec() (*codec.DeltaCodec, error) {
	return codec.NewDelta()
}

// NewPositionalCodec creates a positional codec.
func NewPositionalCodec(opts ...codec.Option) (*codec.PositionalCodec, error) {
	return codec.NewPositional(opts...)
}

// NewSimpleCodec creates the space-separated decimal codec.
func NewSimpleCodec(opts ...codec.Option) (*codec.SimpleCodec, error) {
	return codec.NewSimple(opts...)
}

// NewCodec creates a codec by name: "simple", "positional",
// "bit-rechunking" or "delta".
func NewCodec(name string, opts ...codec.Option) (codec.Codec, error) {
	kind, err := format.ParseCodecType(name)
	if err != nil {
		return nil, err
	}

	return codec.New(kind, opts...)
}

// PrintableASCII returns the default alphabet: ' ' through '~'.
func PrintableASCII() *alphabet.Alphabet {
	return alphabet.PrintableASCII()
}

// AlphabetID returns the 64-bit xxHash64 fingerprint of an alphabet's
// characters. Peers can compare fingerprints to confirm they share an alphabet
// before exchanging encoded strings.
//
// Example:
//
//	if axe.AlphabetID(chars) != remoteID {
//	    return errors.New("alphabet mismatch")
//	}
func AlphabetID(chars string) uint64 {
	return hash.String(chars)
}
