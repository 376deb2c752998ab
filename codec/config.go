package codec

import (
	"fmt"

	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/internal/options"
)

const (
	// DefaultMinValue is the lower domain bound used when no domain option is given.
	DefaultMinValue = 0
	// DefaultMaxValue is the upper domain bound used when no domain option is given.
	DefaultMaxValue = 300
)

// Config holds the settings shared by all codecs. It is only used while a
// codec is being built; codecs copy what they need.
type Config struct {
	alphabet      *alphabet.Alphabet
	minValue      int
	maxValue      int
	strictPadding bool
}

// Option configures a codec.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		alphabet: alphabet.PrintableASCII(),
		minValue: DefaultMinValue,
		maxValue: DefaultMaxValue,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.minValue > cfg.maxValue {
		return nil, fmt.Errorf("%w: minValue %d > maxValue %d", errs.ErrInvalidDomain, cfg.minValue, cfg.maxValue)
	}

	return cfg, nil
}

// span returns maxValue - minValue without overflow.
func (c *Config) span() uint64 {
	return uint64(c.maxValue) - uint64(c.minValue) //nolint:gosec
}

// WithAlphabet sets the digit alphabet. The default is alphabet.PrintableASCII().
func WithAlphabet(a *alphabet.Alphabet) Option {
	return options.New(func(c *Config) error {
		if a == nil {
			return fmt.Errorf("%w: nil alphabet", errs.ErrInvalidAlphabet)
		}
		c.alphabet = a

		return nil
	})
}

// WithAlphabetString builds the digit alphabet from the characters of s.
func WithAlphabetString(s string) Option {
	return options.New(func(c *Config) error {
		a, err := alphabet.New(s)
		if err != nil {
			return err
		}
		c.alphabet = a

		return nil
	})
}

// WithDomain sets the inclusive range [minValue, maxValue] of encodable values.
// The default is [0, 300].
func WithDomain(minValue, maxValue int) Option {
	return options.New(func(c *Config) error {
		if minValue > maxValue {
			return fmt.Errorf("%w: minValue %d > maxValue %d", errs.ErrInvalidDomain, minValue, maxValue)
		}
		c.minValue = minValue
		c.maxValue = maxValue

		return nil
	})
}

// WithMaxValue sets the upper domain bound and keeps the lower one.
func WithMaxValue(maxValue int) Option {
	return options.NoError(func(c *Config) {
		c.maxValue = maxValue
	})
}

// WithStrictPadding makes decoders reject input whose trailing padding could
// not have been written by the encoder: padding bits that are not zero, or a
// whole extra digit of padding.
//
// By default decoders ignore trailing padding bits. The option only affects
// the bit-rechunking codec; the other codecs have no padding.
func WithStrictPadding(strict bool) Option {
	return options.NoError(func(c *Config) {
		c.strictPadding = strict
	})
}
