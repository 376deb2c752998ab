// Package deltakit derives the two-tier digit sets used by the delta codec.
//
// A Kit splits an alphabet into two parts:
//
//   - Terminal digits: the first nTerminal characters, where the character at
//     index i stands for a gap of exactly i. A terminal digit finishes a gap and
//     emits a number.
//   - Accumulative digits: the remaining nAccumulative characters, standing for
//     geometric deltas nTerminal, 2*nTerminal, 4*nTerminal, ... They add to the
//     running value without emitting anything.
//
// The deltas are assigned in descending order, so the first accumulative
// character carries the largest delta. For the printable ASCII alphabet and a
// maximum of 300 the kit is:
//
//	terminal:     ' ' .. '|'  (deltas 0..92)
//	accumulative: '}' = 186, '~' = 93
//
// Generate picks the smallest number of accumulative digits whose combined
// reach covers the maximum value, which leaves as many single-character gaps as
// possible.
package deltakit

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/internal/kitcache"
)

// Digit is one character of a kit together with the delta it represents.
type Digit struct {
	Rune  rune
	Delta int
}

// Kit is an immutable delta kit for one alphabet. It is safe for concurrent use.
type Kit struct {
	alphabet     *alphabet.Alphabet
	terminal     []Digit // ascending, terminal[i].Delta == i
	accumulative []Digit // descending deltas
	accSum       uint64  // saturated at math.MaxUint64
}

// Generate returns the kit with the fewest accumulative digits that can reach
// maxValue from zero.
//
// It tries nAccumulative = 1, 2, ... up to alphabet size - 1 and returns the
// first candidate that covers maxValue. Returns errs.ErrInvalidDomain for a
// negative maxValue and errs.ErrInfeasibleConfiguration when no candidate
// covers it.
func Generate(a *alphabet.Alphabet, maxValue int) (*Kit, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil alphabet", errs.ErrInvalidAlphabet)
	}

	if maxValue < 0 {
		return nil, fmt.Errorf("%w: maxValue %d is negative", errs.ErrInvalidDomain, maxValue)
	}

	for nAcc := 1; nAcc < a.Size(); nAcc++ {
		k, err := Candidate(a, nAcc)
		if err != nil {
			return nil, err
		}

		if k.Covers(maxValue) {
			return k, nil
		}
	}

	return nil, fmt.Errorf("%w: no kit over %d characters reaches %d", errs.ErrInfeasibleConfiguration, a.Size(), maxValue)
}

// Candidate builds the kit with exactly nAcc accumulative digits, whether or
// not it covers any particular maximum. nAcc must be in [1, size-1].
//
// Deltas that would exceed math.MaxInt are clamped to it.
func Candidate(a *alphabet.Alphabet, nAcc int) (*Kit, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil alphabet", errs.ErrInvalidAlphabet)
	}

	size := a.Size()
	if nAcc < 1 || nAcc >= size {
		return nil, fmt.Errorf("%w: %d accumulative digits out of range [1, %d]", errs.ErrInfeasibleConfiguration, nAcc, size-1)
	}

	nTerm := size - nAcc
	k := &Kit{
		alphabet:     a,
		terminal:     make([]Digit, nTerm),
		accumulative: make([]Digit, nAcc),
	}

	for i := range nTerm {
		k.terminal[i] = Digit{Rune: a.Rune(i), Delta: i}
	}

	// Smallest delta goes to the last character, doubling towards the first.
	delta := uint64(nTerm)
	for j := nAcc - 1; j >= 0; j-- {
		k.accumulative[j] = Digit{Rune: a.Rune(nTerm + j), Delta: clampInt(delta)}
		k.accSum = addSat(k.accSum, delta)
		delta = mulSat(delta, 2)
	}

	return k, nil
}

var cache = kitcache.New[*Kit]()

// Cached is like Generate but memoizes kits per (alphabet, maxValue) for the
// life of the process. Errors are not cached.
func Cached(a *alphabet.Alphabet, maxValue int) (*Kit, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil alphabet", errs.ErrInvalidAlphabet)
	}

	key := kitcache.Key{Alphabet: a.String(), Bound: maxValue}

	return cache.GetOrCompute(key, func() (*Kit, error) {
		return Generate(a, maxValue)
	})
}

// Alphabet returns the alphabet the kit partitions.
func (k *Kit) Alphabet() *alphabet.Alphabet {
	return k.alphabet
}

// Terminal returns a copy of the terminal digits in ascending delta order.
func (k *Kit) Terminal() []Digit {
	out := make([]Digit, len(k.terminal))
	copy(out, k.terminal)

	return out
}

// Accumulative returns a copy of the accumulative digits in descending delta order.
func (k *Kit) Accumulative() []Digit {
	out := make([]Digit, len(k.accumulative))
	copy(out, k.accumulative)

	return out
}

// NumTerminal returns the number of terminal digits.
func (k *Kit) NumTerminal() int {
	return len(k.terminal)
}

// NumAccumulative returns the number of accumulative digits.
func (k *Kit) NumAccumulative() int {
	return len(k.accumulative)
}

// MaxTerminalDelta returns the largest gap a single terminal digit encodes.
func (k *Kit) MaxTerminalDelta() int {
	return len(k.terminal) - 1
}

// Span returns sum(accumulative deltas) + MaxTerminalDelta, saturated at
// math.MaxUint64.
func (k *Kit) Span() uint64 {
	return addSat(k.accSum, uint64(k.MaxTerminalDelta())) //nolint:gosec
}

// Covers reports whether the kit reaches maxValue, i.e. Span() >= maxValue.
func (k *Kit) Covers(maxValue int) bool {
	if maxValue < 0 {
		return true
	}

	return k.Span() >= uint64(maxValue)
}

// Lookup classifies r. It returns the digit for r, whether it is terminal, and
// whether r belongs to the kit at all.
func (k *Kit) Lookup(r rune) (d Digit, terminal bool, ok bool) {
	idx, ok := k.alphabet.Index(r)
	if !ok {
		return Digit{}, false, false
	}

	if idx < len(k.terminal) {
		return k.terminal[idx], true, true
	}

	return k.accumulative[idx-len(k.terminal)], false, true
}

// AppendGap appends the greedy encoding of gap to dst: accumulative digits
// while the gap exceeds MaxTerminalDelta, each time the largest one that does
// not overshoot, then one terminal digit. gap must be non-negative.
func (k *Kit) AppendGap(dst []byte, gap int) []byte {
	maxTerm := k.MaxTerminalDelta()
	j := 0
	for gap > maxTerm {
		// Deltas are descending and gap only shrinks, so j never moves back.
		for k.accumulative[j].Delta > gap {
			j++
		}
		dst = utf8.AppendRune(dst, k.accumulative[j].Rune)
		gap -= k.accumulative[j].Delta
	}

	return utf8.AppendRune(dst, k.terminal[gap].Rune)
}

// String describes the kit, e.g. "kit{terminal: ' '..'|' (93), accumulative: '}'=186 '~'=93}".
func (k *Kit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "kit{terminal: %q..%q (%d), accumulative:",
		k.terminal[0].Rune, k.terminal[len(k.terminal)-1].Rune, len(k.terminal))
	for _, d := range k.accumulative {
		fmt.Fprintf(&sb, " %q=%d", d.Rune, d.Delta)
	}
	sb.WriteString("}")

	return sb.String()
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}

func mulSat(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}

	return a * b
}

func clampInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}

	return int(v)
}
