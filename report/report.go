// Package report measures how much shorter each codec's output is than a
// baseline codec over a set of datasets.
//
// Every encoded string is decoded again and compared with its input before it
// is counted, so a report never shows a size for a broken encoding.
//
// Example:
//
//	baseline, _ := codec.NewSimple()
//	bits, _ := codec.NewBitRechunking()
//	delta, _ := codec.NewDelta()
//
//	r, err := report.Generate(baseline, []codec.Codec{bits, delta}, report.DefaultSpecs(),
//	    report.WithCompressors(format.CompressionZstd, format.CompressionLZ4))
//	if err != nil {
//	    return err
//	}
//	r.WriteTo(os.Stdout)
package report

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/arloliu/axe/codec"
	"github.com/arloliu/axe/compress"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
	"github.com/arloliu/axe/internal/options"
)

// DefaultPreviewLimit is the number of characters of each encoded string shown
// by WriteTo.
const DefaultPreviewLimit = 60

// Config holds report settings.
type Config struct {
	compressors  []format.CompressionType
	previewLimit int
}

// Option configures Generate.
type Option = options.Option[*Config]

// WithCompressors adds a column per byte compressor, measuring the compressed
// size of the baseline string.
func WithCompressors(types ...format.CompressionType) Option {
	return options.New(func(c *Config) error {
		for _, t := range types {
			if _, err := compress.GetCodec(t); err != nil {
				return err
			}
		}
		c.compressors = append(c.compressors, types...)

		return nil
	})
}

// WithPreviewLimit sets how many characters of each encoded string WriteTo
// prints. Zero or less prints strings in full.
func WithPreviewLimit(n int) Option {
	return options.NoError(func(c *Config) {
		c.previewLimit = n
	})
}

// Entry is one codec's result for one dataset.
type Entry struct {
	Kind     format.CodecType
	Encoded  string
	Length   int     // characters, not bytes
	Fraction float64 // Length / baseline Length, 0 when the baseline is empty
}

// Row holds the results for one dataset.
type Row struct {
	Spec        string
	Count       int
	Baseline    Entry
	Entries     []Entry
	Compressors []compress.CompressionStats
}

// CompressorFraction returns the compressed baseline size relative to the
// baseline length, for the i-th compressor.
func (r Row) CompressorFraction(i int) float64 {
	if r.Baseline.Length == 0 {
		return 0
	}

	return float64(r.Compressors[i].CompressedSize) / float64(r.Baseline.Length)
}

// Report is the result of Generate.
type Report struct {
	Baseline     format.CodecType
	Codecs       []format.CodecType
	Compressors  []format.CompressionType
	Rows         []Row
	previewLimit int
}

// Generate encodes every spec with the baseline and with each codec, verifies
// that each encoding decodes back to its input, and records sizes.
//
// Codecs whose Kind is not order-preserving are verified as multisets. Returns
// errs.ErrRoundTripMismatch if any decode differs, and the codec's own error if
// a spec lies outside a codec's domain.
func Generate(baseline codec.Codec, codecs []codec.Codec, specs []Spec, opts ...Option) (*Report, error) {
	cfg := &Config{previewLimit: DefaultPreviewLimit}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := &Report{
		Baseline:     baseline.Kind(),
		Codecs:       make([]format.CodecType, len(codecs)),
		Compressors:  slices.Clone(cfg.compressors),
		Rows:         make([]Row, 0, len(specs)),
		previewLimit: cfg.previewLimit,
	}
	for i, c := range codecs {
		r.Codecs[i] = c.Kind()
	}

	for _, spec := range specs {
		row, err := measureSpec(baseline, codecs, spec, cfg.compressors)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", spec.Name, err)
		}
		r.Rows = append(r.Rows, row)
	}

	return r, nil
}

func measureSpec(baseline codec.Codec, codecs []codec.Codec, spec Spec, compressors []format.CompressionType) (Row, error) {
	row := Row{
		Spec:    spec.Name,
		Count:   len(spec.Numbers),
		Entries: make([]Entry, 0, len(codecs)),
	}

	base, err := encodeVerified(baseline, spec.Numbers)
	if err != nil {
		return Row{}, err
	}
	if base.Length > 0 {
		base.Fraction = 1
	}
	row.Baseline = base

	for _, c := range codecs {
		e, err := encodeVerified(c, spec.Numbers)
		if err != nil {
			return Row{}, err
		}
		if base.Length > 0 {
			e.Fraction = float64(e.Length) / float64(base.Length)
		}
		row.Entries = append(row.Entries, e)
	}

	for _, ct := range compressors {
		stats, err := compress.Measure(ct, []byte(base.Encoded))
		if err != nil {
			return Row{}, err
		}
		row.Compressors = append(row.Compressors, stats)
	}

	return row, nil
}

func encodeVerified(c codec.Codec, numbers []int) (Entry, error) {
	encoded, err := c.Serialize(numbers)
	if err != nil {
		return Entry{}, fmt.Errorf("%s serialize: %w", c.Kind(), err)
	}

	decoded, err := c.Deserialize(encoded)
	if err != nil {
		return Entry{}, fmt.Errorf("%s deserialize: %w", c.Kind(), err)
	}

	want := numbers
	if !c.Kind().OrderPreserving() {
		want = slices.Clone(numbers)
		slices.Sort(want)
		decoded = slices.Clone(decoded)
		slices.Sort(decoded)
	}

	if !slices.Equal(want, decoded) {
		return Entry{}, fmt.Errorf("%w: %s decoded %d numbers, want %d", errs.ErrRoundTripMismatch, c.Kind(), len(decoded), len(want))
	}

	return Entry{
		Kind:    c.Kind(),
		Encoded: encoded,
		Length:  utf8.RuneCountInString(encoded),
	}, nil
}
