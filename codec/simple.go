package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/internal/pool"
)

// SimpleCodec writes numbers as space-separated decimals. It is the baseline
// the compact codecs are measured against. The alphabet option is ignored.
type SimpleCodec struct {
	minValue int
	maxValue int
}

// NewSimple creates a simple codec.
func NewSimple(opts ...Option) (*SimpleCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &SimpleCodec{minValue: cfg.minValue, maxValue: cfg.maxValue}, nil
}

// Kind returns format.CodecSimple.
func (c *SimpleCodec) Kind() format.CodecType { return format.CodecSimple }

// Domain returns the inclusive range of encodable values.
func (c *SimpleCodec) Domain() (minValue, maxValue int) { return c.minValue, c.maxValue }

// Serialize encodes numbers. An empty sequence encodes to "".
func (c *SimpleCodec) Serialize(numbers []int) (string, error) {
	if err := checkDomain(numbers, c.minValue, c.maxValue); err != nil {
		return "", err
	}

	buf := pool.GetStringBuffer()
	defer pool.PutStringBuffer(buf)

	for i, n := range numbers {
		if i > 0 {
			buf.AppendByte(' ')
		}
		buf.B = strconv.AppendInt(buf.B, int64(n), 10)
	}

	return buf.String(), nil
}

// Deserialize parses single-space-separated decimals.
//
// Errors:
//   - errs.ErrInvalidCharacter: a token that is not a decimal integer
//   - errs.ErrMalformedInput: an empty token (leading, trailing or doubled
//     space), or a number outside the domain
func (c *SimpleCodec) Deserialize(source string) ([]int, error) {
	if source == "" {
		return []int{}, nil
	}

	tokens := strings.Split(source, " ")
	out := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token #%d", errs.ErrMalformedInput, i)
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token #%d %q is not a decimal integer", errs.ErrInvalidCharacter, i, tok)
		}

		if n < c.minValue || n > c.maxValue {
			return nil, fmt.Errorf("%w: token #%d %d not in [%d, %d]", errs.ErrMalformedInput, i, n, c.minValue, c.maxValue)
		}
		out = append(out, n)
	}

	return out, nil
}
