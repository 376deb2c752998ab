package codec

import (
	"fmt"

	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/internal/encoding"
	"github.com/arloliu/axe/internal/pool"
)

// PositionalCodec writes every number as a fixed count of base-N digits, least
// significant first, where N is the full alphabet size.
//
// The digit count is the smallest that fits the domain span, so numbers need
// no separators. With the default alphabet and domain [0, 300] each number
// takes two characters:
//
//	[1, 25, 17, 299]  ->  "! 9 1 .#"
type PositionalCodec struct {
	alphabet        *alphabet.Alphabet
	minValue        int
	maxValue        int
	span            uint64
	radix           encoding.ReverseRadix
	digitsPerNumber int
}

// NewPositional creates a positional codec.
func NewPositional(opts ...Option) (*PositionalCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	radix, err := encoding.NewReverseRadix(cfg.alphabet.Size())
	if err != nil {
		return nil, err
	}

	span := cfg.span()

	return &PositionalCodec{
		alphabet:        cfg.alphabet,
		minValue:        cfg.minValue,
		maxValue:        cfg.maxValue,
		span:            span,
		radix:           radix,
		digitsPerNumber: radix.DigitsFor(span),
	}, nil
}

// Kind returns format.CodecPositional.
func (c *PositionalCodec) Kind() format.CodecType { return format.CodecPositional }

// Alphabet returns the codec's alphabet.
func (c *PositionalCodec) Alphabet() *alphabet.Alphabet { return c.alphabet }

// Domain returns the inclusive range of encodable values.
func (c *PositionalCodec) Domain() (minValue, maxValue int) { return c.minValue, c.maxValue }

// DigitsPerNumber returns how many characters each number takes.
func (c *PositionalCodec) DigitsPerNumber() int { return c.digitsPerNumber }

// Serialize encodes numbers. An empty sequence encodes to "".
func (c *PositionalCodec) Serialize(numbers []int) (string, error) {
	if err := checkDomain(numbers, c.minValue, c.maxValue); err != nil {
		return "", err
	}

	buf := pool.GetStringBuffer()
	defer pool.PutStringBuffer(buf)
	buf.Grow(len(numbers) * c.digitsPerNumber * c.alphabet.MaxRuneLen())

	digits, release := pool.GetIntSlice(c.digitsPerNumber)
	defer release()

	base := uint64(c.minValue) //nolint:gosec
	for _, n := range numbers {
		digits = c.radix.AppendDigits(digits[:0], uint64(n)-base, c.digitsPerNumber) //nolint:gosec
		for _, d := range digits {
			buf.AppendRune(c.alphabet.Rune(d))
		}
	}

	return buf.String(), nil
}

// Deserialize decodes a string produced by Serialize.
//
// Errors:
//   - errs.ErrInvalidCharacter: a character outside the alphabet, or invalid UTF-8
//   - errs.ErrMalformedInput: a length that is not a whole number of numbers,
//     or a decoded value beyond the domain
func (c *PositionalCodec) Deserialize(source string) ([]int, error) {
	digits, release := pool.GetIntSlice(len(source))
	defer release()
	digits = digits[:0]

	err := forEachRune(source, errs.ErrInvalidCharacter, func(pos int, r rune) error {
		idx, ok := c.alphabet.Index(r)
		if !ok {
			return fmt.Errorf("%w: %q at byte %d", errs.ErrInvalidCharacter, r, pos)
		}
		digits = append(digits, idx)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(digits)%c.digitsPerNumber != 0 {
		return nil, fmt.Errorf("%w: %d characters is not a multiple of %d", errs.ErrMalformedInput, len(digits), c.digitsPerNumber)
	}

	out := make([]int, 0, len(digits)/c.digitsPerNumber)
	base := uint64(c.minValue) //nolint:gosec
	for i := 0; i < len(digits); i += c.digitsPerNumber {
		v, ok := c.radix.Decode(digits[i : i+c.digitsPerNumber])
		if !ok || v > c.span {
			return nil, fmt.Errorf("%w: number #%d is beyond domain span %d", errs.ErrMalformedInput, len(out), c.span)
		}
		out = append(out, int(base+v)) //nolint:gosec
	}

	return out, nil
}
