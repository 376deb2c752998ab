package codec

import (
	"fmt"
	"slices"

	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/deltakit"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/internal/pool"
)

// DeltaCodec sorts its input and writes the gaps between consecutive numbers
// with a delta kit: small gaps take one terminal character, larger ones a few
// accumulative characters followed by a terminal one.
//
// Decoding restores the numbers in ascending order, so only the multiset
// survives a round trip:
//
//	[1, 25, 17, 299]  ->  "!0(}x"  ->  [1, 17, 25, 299]
//
// The domain must start at 0.
type DeltaCodec struct {
	kit      *deltakit.Kit
	maxValue int
}

// NewDelta creates a delta codec. The kit is shared with every other delta
// codec built for the same alphabet and maximum.
//
// Returns errs.ErrInvalidDomain if minValue is not 0, and
// errs.ErrInfeasibleConfiguration if no kit over the alphabet reaches maxValue.
func NewDelta(opts ...Option) (*DeltaCodec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.minValue != 0 {
		return nil, fmt.Errorf("%w: delta codec needs minValue 0, got %d", errs.ErrInvalidDomain, cfg.minValue)
	}

	kit, err := deltakit.Cached(cfg.alphabet, cfg.maxValue)
	if err != nil {
		return nil, err
	}

	return &DeltaCodec{kit: kit, maxValue: cfg.maxValue}, nil
}

// Kind returns format.CodecDelta.
func (c *DeltaCodec) Kind() format.CodecType { return format.CodecDelta }

// Alphabet returns the codec's alphabet.
func (c *DeltaCodec) Alphabet() *alphabet.Alphabet { return c.kit.Alphabet() }

// Domain returns the inclusive range of encodable values.
func (c *DeltaCodec) Domain() (minValue, maxValue int) { return 0, c.maxValue }

// Kit returns the delta kit.
func (c *DeltaCodec) Kit() *deltakit.Kit { return c.kit }

// Serialize sorts a copy of numbers and encodes the gaps. The input slice is
// not modified.
func (c *DeltaCodec) Serialize(numbers []int) (string, error) {
	if err := checkDomain(numbers, 0, c.maxValue); err != nil {
		return "", err
	}

	if len(numbers) == 0 {
		return "", nil
	}

	sorted, release := pool.GetIntSlice(len(numbers))
	defer release()
	copy(sorted, numbers)
	slices.Sort(sorted)

	buf := pool.GetStringBuffer()
	defer pool.PutStringBuffer(buf)

	prev := 0
	for _, n := range sorted {
		buf.B = c.kit.AppendGap(buf.B, n-prev)
		prev = n
	}

	return buf.String(), nil
}

// Deserialize decodes a string produced by Serialize. The result is ascending.
//
// Errors:
//   - errs.ErrInvalidDigit: a character that is in neither digit set, or invalid UTF-8
//   - errs.ErrMalformedInput: a running value past maxValue, or accumulative
//     digits at the end with no terminal digit to close them
func (c *DeltaCodec) Deserialize(source string) ([]int, error) {
	out := make([]int, 0, len(source))
	limit := uint64(c.maxValue) //nolint:gosec

	// Both operands stay at or below math.MaxInt, so the sum cannot wrap.
	var running uint64
	pending := false

	err := forEachRune(source, errs.ErrInvalidDigit, func(pos int, r rune) error {
		d, terminal, ok := c.kit.Lookup(r)
		if !ok {
			return fmt.Errorf("%w: %q at byte %d", errs.ErrInvalidDigit, r, pos)
		}

		running += uint64(d.Delta) //nolint:gosec
		if running > limit {
			return fmt.Errorf("%w: running value %d exceeds maxValue %d at byte %d", errs.ErrMalformedInput, running, c.maxValue, pos)
		}

		if terminal {
			out = append(out, int(running)) //nolint:gosec
			pending = false
		} else {
			pending = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if pending {
		return nil, fmt.Errorf("%w: input ends with accumulative digits", errs.ErrMalformedInput)
	}

	return out, nil
}
