// Package alphabet defines the ordered character sets that axe codecs use as
// digit symbols.
//
// An Alphabet is both a radix (its size) and a bijection between digit values
// and characters: the character at position i represents digit i. Alphabets are
// immutable once built and safe to share between codecs and goroutines.
//
// Creating an alphabet:
//
//	a, err := alphabet.New("0123456789abcdef")
//	if err != nil {
//	    return err
//	}
//	a.Size()       // 16
//	a.Rune(10)     // 'a'
//	a.Index('f')   // 15, true
//
// The default alphabet used by every codec is PrintableASCII: the 95 printable
// 7-bit ASCII characters from ' ' (digit 0) through '~' (digit 94).
package alphabet

import (
	"fmt"
	"log"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/internal/hash"
)

// MinSize is the smallest usable alphabet: a radix needs at least two digits.
const MinSize = 2

const asciiLimit = 128

// Alphabet is an immutable ordered set of distinct printable characters.
type Alphabet struct {
	runes  []rune
	text   string
	ascii  [asciiLimit]int32 // digit value + 1 for ASCII runes, 0 when absent
	others map[rune]int      // nil when every rune is ASCII
	id     uint64
	width  int // longest UTF-8 encoding among runes
}

// New builds an alphabet from the characters of s, in order.
//
// Returns errs.ErrInvalidAlphabet if s is not valid UTF-8, has fewer than
// MinSize characters, repeats a character, or contains a character that is not
// printable (control characters, unassigned code points, ...).
func New(s string) (*Alphabet, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: not valid UTF-8", errs.ErrInvalidAlphabet)
	}

	return FromRunes([]rune(s))
}

// FromRunes builds an alphabet from runes, in order. The slice is copied.
//
// It applies the same validation as New.
func FromRunes(runes []rune) (*Alphabet, error) {
	if len(runes) < MinSize {
		return nil, fmt.Errorf("%w: need at least %d characters, got %d", errs.ErrInvalidAlphabet, MinSize, len(runes))
	}

	a := &Alphabet{
		runes: make([]rune, len(runes)),
	}
	copy(a.runes, runes)

	for i, r := range a.runes {
		if !unicode.IsPrint(r) {
			return nil, fmt.Errorf("%w: character %U at position %d is not printable", errs.ErrInvalidAlphabet, r, i)
		}

		if j, dup := a.Index(r); dup {
			return nil, fmt.Errorf("%w: character %q appears at positions %d and %d", errs.ErrInvalidAlphabet, r, j, i)
		}

		if r < asciiLimit {
			a.ascii[r] = int32(i + 1) //nolint:gosec
			continue
		}

		if a.others == nil {
			a.others = make(map[rune]int)
		}
		a.others[r] = i
	}

	a.text = string(a.runes)
	a.id = hash.String(a.text)
	for _, r := range a.runes {
		a.width = max(a.width, utf8.RuneLen(r))
	}

	return a, nil
}

// MustNew is like New but panics on an invalid alphabet.
// It is intended for package-level alphabet literals.
func MustNew(s string) *Alphabet {
	a, err := New(s)
	if err != nil {
		log.Panicf("alphabet.MustNew(%q): %v", s, err)
	}

	return a
}

// Size returns the number of characters, i.e. the radix.
func (a *Alphabet) Size() int {
	return len(a.runes)
}

// MaxRuneLen returns the longest UTF-8 encoding of any character, in bytes.
func (a *Alphabet) MaxRuneLen() int {
	return a.width
}

// Rune returns the character for digit value i.
// It panics if i is out of [0, Size()).
func (a *Alphabet) Rune(i int) rune {
	return a.runes[i]
}

// Index returns the digit value of r and whether r belongs to the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	if r >= 0 && r < asciiLimit {
		v := a.ascii[r]
		return int(v) - 1, v != 0
	}

	i, ok := a.others[r]

	return i, ok
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

// Runes returns a copy of the characters in digit order.
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)

	return out
}

// String returns the characters in digit order as a string.
func (a *Alphabet) String() string {
	return a.text
}

// ID returns the xxHash64 fingerprint of the alphabet's characters.
// Equal alphabets always share an ID.
func (a *Alphabet) ID() uint64 {
	return a.id
}

// Equal reports whether a and b contain the same characters in the same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.id == b.id && a.text == b.text
}

// printableASCII holds ' ' through '~'. It is never mutated.
var printableASCII = buildPrintableASCII()

func buildPrintableASCII() *Alphabet {
	runes := make([]rune, 0, 95)
	for c := rune(0); c < 127; c++ {
		if !unicode.IsControl(c) {
			runes = append(runes, c)
		}
	}

	a, err := FromRunes(runes)
	if err != nil {
		log.Panicf("printable ASCII alphabet: %v", err)
	}

	return a
}

// PrintableASCII returns the alphabet of all 95 printable 7-bit ASCII
// characters, ' ' (digit 0) through '~' (digit 94).
//
// The returned value is shared; alphabets are immutable, so this is safe.
func PrintableASCII() *Alphabet {
	return printableASCII
}
