package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arloliu/axe/codec"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
	"github.com/stretchr/testify/require"
)

// lossyCodec drops the last number on decode.
type lossyCodec struct {
	codec.Codec
}

func (c lossyCodec) Deserialize(source string) ([]int, error) {
	numbers, err := c.Codec.Deserialize(source)
	if err != nil || len(numbers) == 0 {
		return numbers, err
	}

	return numbers[:len(numbers)-1], nil
}

func allCodecs(t *testing.T) (codec.Codec, []codec.Codec) {
	t.Helper()

	baseline, err := codec.NewSimple()
	require.NoError(t, err)

	var others []codec.Codec
	for _, kind := range []format.CodecType{format.CodecPositional, format.CodecBitRechunking, format.CodecDelta} {
		c, err := codec.New(kind)
		require.NoError(t, err)
		others = append(others, c)
	}

	return baseline, others
}

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs()
	require.Len(t, specs, 9)

	require.Equal(t, []int{3, 22, 111}, specs[0].Numbers)
	require.Len(t, specs[1].Numbers, 50)
	require.Len(t, specs[2].Numbers, 100)
	require.Len(t, specs[3].Numbers, 500)
	require.Len(t, specs[4].Numbers, 1000)
	require.Equal(t, InclusiveRange(0, 9), specs[5].Numbers)
	require.Len(t, specs[6].Numbers, 90)
	require.Len(t, specs[7].Numbers, 200)
	require.Len(t, specs[8].Numbers, 900)

	for _, s := range specs {
		for _, n := range s.Numbers {
			require.GreaterOrEqual(t, n, 0)
			require.LessOrEqual(t, n, 300)
		}
	}

	// Deterministic across calls.
	require.Equal(t, specs[3].Numbers, DefaultSpecs()[3].Numbers)
}

func TestRandomSequence(t *testing.T) {
	a := RandomSequence(7, -5, 5, 200)
	b := RandomSequence(7, -5, 5, 200)
	c := RandomSequence(8, -5, 5, 200)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	for _, n := range a {
		require.GreaterOrEqual(t, n, -5)
		require.LessOrEqual(t, n, 5)
	}
}

func TestInclusiveRange(t *testing.T) {
	require.Equal(t, []int{3, 4, 5}, InclusiveRange(3, 5))
	require.Equal(t, []int{7}, InclusiveRange(7, 7))
	require.Empty(t, InclusiveRange(5, 3))
}

func TestGenerate(t *testing.T) {
	baseline, others := allCodecs(t)

	r, err := Generate(baseline, others, DefaultSpecs(),
		WithCompressors(format.CompressionZstd, format.CompressionS2, format.CompressionLZ4))
	require.NoError(t, err)

	require.Equal(t, format.CodecSimple, r.Baseline)
	require.Equal(t, []format.CodecType{format.CodecPositional, format.CodecBitRechunking, format.CodecDelta}, r.Codecs)
	require.Len(t, r.Rows, 9)

	first := r.Rows[0]
	require.Equal(t, 3, first.Count)
	require.Equal(t, "3 22 111", first.Baseline.Encoded)
	require.Equal(t, 8, first.Baseline.Length)
	require.InDelta(t, 1.0, first.Baseline.Fraction, 1e-9)
	require.Len(t, first.Compressors, 3)

	// Positional: two characters per number.
	require.Equal(t, 6, first.Entries[0].Length)
	require.InDelta(t, 6.0/8.0, first.Entries[0].Fraction, 1e-9)

	// Positional can lose to decimal on single-digit runs; the bit-packed
	// codecs never do past the literal dataset.
	for _, row := range r.Rows[1:] {
		for _, e := range row.Entries[1:] {
			require.Less(t, e.Fraction, 1.0, "%s %s", row.Spec, e.Kind)
		}
	}

	// The longest dataset: 900 numbers, 9 bits each.
	last := r.Rows[8]
	require.Equal(t, 1350, last.Entries[1].Length)
}

func TestGenerate_RoundTripMismatch(t *testing.T) {
	baseline, others := allCodecs(t)

	_, err := Generate(baseline, []codec.Codec{lossyCodec{others[0]}}, DefaultSpecs())
	require.ErrorIs(t, err, errs.ErrRoundTripMismatch)
	require.Contains(t, err.Error(), "literal")
}

func TestGenerate_DomainError(t *testing.T) {
	baseline, others := allCodecs(t)

	_, err := Generate(baseline, others, []Spec{{Name: "too big", Numbers: []int{1, 400}}})
	require.ErrorIs(t, err, errs.ErrDomainRange)
}

func TestGenerate_InvalidCompressor(t *testing.T) {
	baseline, others := allCodecs(t)

	_, err := Generate(baseline, others, DefaultSpecs(), WithCompressors(format.CompressionType(99)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCodec)
}

func TestGenerate_EmptySpec(t *testing.T) {
	baseline, others := allCodecs(t)

	r, err := Generate(baseline, others, []Spec{{Name: "empty", Numbers: nil}})
	require.NoError(t, err)
	require.Equal(t, 0, r.Rows[0].Baseline.Length)
	for _, e := range r.Rows[0].Entries {
		require.Equal(t, 0.0, e.Fraction)
	}
}

func TestReport_WriteTo(t *testing.T) {
	baseline, others := allCodecs(t)

	r, err := Generate(baseline, others, DefaultSpecs(), WithCompressors(format.CompressionZstd))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	require.Contains(t, out, "Dataset 0: literal [3 22 111] (3 numbers)")
	require.Contains(t, out, "BitRechunking:")
	require.Contains(t, out, "=== Size relative to Simple ===")
	require.Contains(t, out, "Simple+Zstd")
	require.Contains(t, out, "range 0..299 x3")

	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "  ") {
			continue
		}
		_, encoded, _ := strings.Cut(strings.TrimSpace(line), ": ")
		require.LessOrEqual(t, len([]rune(strings.TrimSpace(encoded))), DefaultPreviewLimit+3, line)
	}
	require.Contains(t, out, "...")
}

func TestReport_PreviewLimit(t *testing.T) {
	baseline, others := allCodecs(t)
	spec := Spec{Name: "long", Numbers: InclusiveRange(0, 299)}

	r, err := Generate(baseline, others, []Spec{spec}, WithPreviewLimit(0))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = r.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), r.Rows[0].Baseline.Encoded)

	r, err = Generate(baseline, others, []Spec{spec}, WithPreviewLimit(5))
	require.NoError(t, err)
	require.Equal(t, "0 1 2...", r.preview(r.Rows[0].Baseline.Encoded))
	require.Equal(t, "0 1", r.preview("0 1"))
}
