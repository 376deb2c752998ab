package encoding

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/axe/errs"
)

// ReverseRadix converts between non-negative integers and little-endian digit
// sequences in a fixed base: the least significant digit comes first.
//
// Fixed-width output (see DigitsFor) lets a decoder split a string into
// numbers without separators.
type ReverseRadix struct {
	base uint64
}

// NewReverseRadix returns a converter for the given base (at least 2).
func NewReverseRadix(base int) (ReverseRadix, error) {
	if base < 2 {
		return ReverseRadix{}, fmt.Errorf("%w: radix base must be at least 2, got %d", errs.ErrInternalInvariant, base)
	}

	return ReverseRadix{base: uint64(base)}, nil
}

// Base returns the radix.
func (r ReverseRadix) Base() int {
	return int(r.base) //nolint:gosec
}

// DigitsFor returns how many digits are needed to write every value in
// [0, span]. It is at least 1.
func (r ReverseRadix) DigitsFor(span uint64) int {
	n := 1
	for span >= r.base {
		span /= r.base
		n++
	}

	return n
}

// Encode returns the digits of value, least significant first, with no padding.
// Zero encodes as a single zero digit.
func (r ReverseRadix) Encode(value uint64) []int {
	return r.AppendDigits(nil, value, 1)
}

// AppendDigits appends the little-endian digits of value to dst, padding with
// zero digits up to width.
func (r ReverseRadix) AppendDigits(dst []int, value uint64, width int) []int {
	n := 0
	for value > 0 || n == 0 {
		dst = append(dst, int(value%r.base)) //nolint:gosec
		value /= r.base
		n++
	}

	for ; n < width; n++ {
		dst = append(dst, 0)
	}

	return dst
}

// Decode interprets digits as a little-endian number.
//
// It returns false if a digit is outside [0, base) or the value does not fit
// in 64 bits.
func (r ReverseRadix) Decode(digits []int) (uint64, bool) {
	var value uint64
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d < 0 || uint64(d) >= r.base {
			return 0, false
		}

		hi, lo := bits.Mul64(value, r.base)
		if hi != 0 {
			return 0, false
		}

		sum, carry := bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, false
		}
		value = sum
	}

	return value, true
}
