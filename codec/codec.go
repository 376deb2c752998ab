package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
)

// Codec converts integer sequences to printable strings and back.
//
// Implementations are immutable after construction and safe for concurrent
// use. Errors wrap a sentinel from the errs package; no partial result is
// returned together with an error.
type Codec interface {
	// Serialize encodes numbers. Every number must lie in the codec's domain,
	// otherwise errs.ErrDomainRange is returned.
	Serialize(numbers []int) (string, error)

	// Deserialize decodes a string produced by Serialize.
	Deserialize(source string) ([]int, error)

	// Kind identifies the codec.
	Kind() format.CodecType
}

var (
	_ Codec = (*SimpleCodec)(nil)
	_ Codec = (*PositionalCodec)(nil)
	_ Codec = (*BitRechunkingCodec)(nil)
	_ Codec = (*DeltaCodec)(nil)
)

// New creates a codec of the given kind.
//
// Example:
//
//	kind, err := format.ParseCodecType("delta")
//	if err != nil {
//	    return err
//	}
//	c, err := codec.New(kind, codec.WithMaxValue(1000))
func New(kind format.CodecType, opts ...Option) (Codec, error) {
	var (
		c   Codec
		err error
	)

	// A failed constructor must surface as a nil interface, not a typed nil.
	switch kind {
	case format.CodecSimple:
		var s *SimpleCodec
		if s, err = NewSimple(opts...); err == nil {
			c = s
		}
	case format.CodecPositional:
		var p *PositionalCodec
		if p, err = NewPositional(opts...); err == nil {
			c = p
		}
	case format.CodecBitRechunking:
		var b *BitRechunkingCodec
		if b, err = NewBitRechunking(opts...); err == nil {
			c = b
		}
	case format.CodecDelta:
		var d *DeltaCodec
		if d, err = NewDelta(opts...); err == nil {
			c = d
		}
	default:
		err = fmt.Errorf("%w: codec type %d", errs.ErrUnsupportedCodec, kind)
	}

	if err != nil {
		return nil, err
	}

	return c, nil
}

// checkDomain returns errs.ErrDomainRange for the first number outside
// [minValue, maxValue].
func checkDomain(numbers []int, minValue, maxValue int) error {
	for i, n := range numbers {
		if n < minValue || n > maxValue {
			return fmt.Errorf("%w: numbers[%d] = %d not in [%d, %d]", errs.ErrDomainRange, i, n, minValue, maxValue)
		}
	}

	return nil
}

// forEachRune calls fn with the byte offset and value of each rune in s.
// Invalid UTF-8 is reported as invalid, wrapped with its offset.
func forEachRune(s string, invalid error, fn func(pos int, r rune) error) error {
	for pos := 0; pos < len(s); {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: invalid UTF-8 at byte %d", invalid, pos)
		}

		if err := fn(pos, r); err != nil {
			return err
		}
		pos += size
	}

	return nil
}
