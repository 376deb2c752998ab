package axe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/axe/alphabet"
	"github.com/arloliu/axe/codec"
	"github.com/arloliu/axe/errs"
	"github.com/arloliu/axe/format"
)

// TestDefaultCodecs verifies the default codecs reproduce the reference encodings
func TestDefaultCodecs(t *testing.T) {
	numbers := []int{1, 25, 17, 299}

	bits, err := NewDefaultBitRechunkingCodec()
	require.NoError(t, err)
	s, err := bits.Serialize(numbers)
	require.NoError(t, err)
	require.Equal(t, " (9\",K", s)

	delta, err := NewDefaultDeltaCodec()
	require.NoError(t, err)
	s, err = delta.Serialize(numbers)
	require.NoError(t, err)
	require.Equal(t, "!0(}x", s)

	decoded, err := delta.Deserialize(s)
	require.NoError(t, err)
	require.Equal(t, []int{1, 17, 25, 299}, decoded)
}

// TestDefaultCodecs_Fresh verifies default constructors never share instances
func TestDefaultCodecs_Fresh(t *testing.T) {
	a, err := NewDefaultBitRechunkingCodec()
	require.NoError(t, err)
	b, err := NewDefaultBitRechunkingCodec()
	require.NoError(t, err)
	require.NotSame(t, a, b)
}

func TestNewCodec(t *testing.T) {
	for _, name := range []string{"simple", "positional", "bit-rechunking", "delta"} {
		c, err := NewCodec(name, codec.WithMaxValue(1000))
		require.NoError(t, err, name)

		s, err := c.Serialize([]int{0, 999, 1000})
		require.NoError(t, err)
		_, err = c.Deserialize(s)
		require.NoError(t, err)
	}

	_, err := NewCodec("gzip")
	require.ErrorIs(t, err, errs.ErrUnsupportedCodec)
}

func TestCustomOptions(t *testing.T) {
	c, err := NewPositionalCodec(codec.WithAlphabetString("0123456789"), codec.WithDomain(100, 199))
	require.NoError(t, err)
	require.Equal(t, format.CodecPositional, c.Kind())

	s, err := c.Serialize([]int{100, 142, 199})
	require.NoError(t, err)
	require.Equal(t, "002499", s)

	simple, err := NewSimpleCodec(codec.WithDomain(-1, 1))
	require.NoError(t, err)
	_, err = simple.Serialize([]int{2})
	require.ErrorIs(t, err, errs.ErrDomainRange)

	bits, err := NewBitRechunkingCodec(codec.WithAlphabet(alphabet.MustNew("ab")))
	require.NoError(t, err)
	require.Equal(t, 1, bits.BitsPerDigit())

	_, err = NewDeltaCodec(codec.WithDomain(5, 10))
	require.ErrorIs(t, err, errs.ErrInvalidDomain)
}

func TestAlphabetID(t *testing.T) {
	require.Equal(t, PrintableASCII().ID(), AlphabetID(PrintableASCII().String()))
	require.NotEqual(t, AlphabetID("01"), AlphabetID("10"))
}
