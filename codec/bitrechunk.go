package codec

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/internal/encoding"
	"github.com/arloliu/axe/internal/pool"
)

// BitRechunkingCodec packs each number into a fixed number of bits and cuts
// the resulting bitstream into digits of floor(log2(alphabet size)) bits.
//
// Numbers are centered against minValue first, so only the width of the
// domain matters, not its position. With the default alphabet (95 characters,
// 6 bits per digit) and domain [0, 300] (9 bits per number), every two numbers
// take three characters:
//
//	[1, 25, 17, 299]  ->  " (9\",K"
//
// Alphabet characters at or past index 2^bitsPerDigit are never produced.
type BitRechunkingCodec struct {
	alphabet      *alphabet.Alphabet
	minValue      int
	maxValue      int
	span          uint64
	bitsPerNumber int
	bitsPerDigit  int
	digitLimit    int // 1 << bitsPerDigit
	strict        bool
	encoder       encoding.Rechunker
	decoder       encoding.Rechunker
}

// NewBitRechunking creates a bit-rechunking codec.
//
// Returns errs.ErrInvalidDomain if the domain needs more than
// 63 - bitsPerDigit bits per number.
func NewBitRechunking(opts ...Option) (*BitRechunkingCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	span := cfg.span()
	bitsPerDigit := bits.Len(uint(cfg.alphabet.Size())) - 1

	// Never narrower than a digit, or decoding reads padding as extra zeros.
	bitsPerNumber := max(bits.Len64(span), 1, bitsPerDigit)

	if bitsPerNumber+bitsPerDigit > encoding.MaxCombinedWidth {
		return nil, fmt.Errorf("%w: domain [%d, %d] needs %d bits per number, at most %d fit with %d-bit digits",
			errs.ErrInvalidDomain, cfg.minValue, cfg.maxValue, bitsPerNumber, encoding.MaxCombinedWidth-bitsPerDigit, bitsPerDigit)
	}

	enc, err := encoding.NewRechunker(bitsPerNumber, bitsPerDigit, encoding.TailKeep)
	if err != nil {
		return nil, err
	}

	dec, err := encoding.NewRechunker(bitsPerDigit, bitsPerNumber, encoding.TailDiscard)
	if err != nil {
		return nil, err
	}

	return &BitRechunkingCodec{
		alphabet:      cfg.alphabet,
		minValue:      cfg.minValue,
		maxValue:      cfg.maxValue,
		span:          span,
		bitsPerNumber: bitsPerNumber,
		bitsPerDigit:  bitsPerDigit,
		digitLimit:    1 << bitsPerDigit,
		strict:        cfg.strictPadding,
		encoder:       enc,
		decoder:       dec,
	}, nil
}

// Kind returns format.CodecBitRechunking.
func (c *BitRechunkingCodec) Kind() format.CodecType { return format.CodecBitRechunking }

// Alphabet returns the codec's alphabet.
func (c *BitRechunkingCodec) Alphabet() *alphabet.Alphabet { return c.alphabet }

// Domain returns the inclusive range of encodable values.
func (c *BitRechunkingCodec) Domain() (minValue, maxValue int) { return c.minValue, c.maxValue }

// BitsPerNumber returns the width each number is packed into.
func (c *BitRechunkingCodec) BitsPerNumber() int { return c.bitsPerNumber }

// BitsPerDigit returns the number of bits each character carries.
func (c *BitRechunkingCodec) BitsPerDigit() int { return c.bitsPerDigit }

// EncodedLen returns the number of characters Serialize produces for n numbers.
func (c *BitRechunkingCodec) EncodedLen(n int) int {
	return c.encoder.OutputLen(n)
}

// Serialize encodes numbers. An empty sequence encodes to "".
func (c *BitRechunkingCodec) Serialize(numbers []int) (string, error) {
	if err := checkDomain(numbers, c.minValue, c.maxValue); err != nil {
		return "", err
	}

	if len(numbers) == 0 {
		return "", nil
	}

	values, releaseValues := pool.GetUint64Slice(len(numbers))
	defer releaseValues()

	base := uint64(c.minValue) //nolint:gosec
	for i, n := range numbers {
		values[i] = uint64(n) - base //nolint:gosec
	}

	digits, releaseDigits := pool.GetUint64Slice(c.encoder.OutputLen(len(numbers)))
	defer releaseDigits()

	digits, _, err := c.encoder.Append(digits[:0], values)
	if err != nil {
		return "", err
	}

	buf := pool.GetStringBuffer()
	defer pool.PutStringBuffer(buf)

	buf.Grow(len(digits) * c.alphabet.MaxRuneLen())
	for _, d := range digits {
		buf.AppendRune(c.alphabet.Rune(int(d))) //nolint:gosec
	}

	return buf.String(), nil
}

// Deserialize decodes a string produced by Serialize.
//
// Errors:
//   - errs.ErrInvalidCharacter: a character outside the alphabet, or past the
//     2^bitsPerDigit characters the codec uses, or invalid UTF-8
//   - errs.ErrMalformedInput: a decoded value beyond the domain, or with
//     WithStrictPadding, padding the encoder would not have written
func (c *BitRechunkingCodec) Deserialize(source string) ([]int, error) {
	if source == "" {
		return []int{}, nil
	}

	digits, releaseDigits := pool.GetUint64Slice(len(source))
	defer releaseDigits()
	digits = digits[:0]

	err := forEachRune(source, errs.ErrInvalidCharacter, func(pos int, r rune) error {
		idx, ok := c.alphabet.Index(r)
		if !ok || idx >= c.digitLimit {
			return fmt.Errorf("%w: %q at byte %d", errs.ErrInvalidCharacter, r, pos)
		}
		digits = append(digits, uint64(idx)) //nolint:gosec

		return nil
	})
	if err != nil {
		return nil, err
	}

	values, releaseValues := pool.GetUint64Slice(c.decoder.OutputLen(len(digits)))
	defer releaseValues()

	values, rem, err := c.decoder.Append(values[:0], digits)
	if err != nil {
		return nil, err
	}

	if c.strict && (rem.Bits >= c.bitsPerDigit || rem.Value != 0) {
		return nil, fmt.Errorf("%w: %d trailing padding bits with value %d", errs.ErrMalformedInput, rem.Bits, rem.Value)
	}

	out := make([]int, len(values))
	base := uint64(c.minValue) //nolint:gosec
	for i, v := range values {
		if v > c.span {
			return nil, fmt.Errorf("%w: value #%d decodes to offset %d beyond domain span %d", errs.ErrMalformedInput, i, v, c.span)
		}
		out[i] = int(base + v) //nolint:gosec
	}

	return out, nil
}
