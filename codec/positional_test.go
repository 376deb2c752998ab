package codec

import (
	"testing"

	"github.com/arloliu/axe/errs"
	"github.com/stretchr/testify/require"
)

func TestPositionalCodec_KnownEncoding(t *testing.T) {
	c, err := NewPositional()
	require.NoError(t, err)
	require.Equal(t, 2, c.DigitsPerNumber())

	s, err := c.Serialize([]int{1, 25, 17, 299})
	require.NoError(t, err)
	require.Equal(t, "! 9 1 .#", s)

	numbers, err := c.Deserialize(s)
	require.NoError(t, err)
	require.Equal(t, []int{1, 25, 17, 299}, numbers)
}

func TestPositionalCodec_WideDomain(t *testing.T) {
	c, err := NewPositional(WithMaxValue(65536))
	require.NoError(t, err)
	require.Equal(t, 3, c.DigitsPerNumber())

	tests := []struct {
		value int
		want  string
	}{
		{0, "   "},
		{95, " ! "},
		{4321, "NM "},
		{65536, "q8'"},
	}
	for _, tt := range tests {
		s, err := c.Serialize([]int{tt.value})
		require.NoError(t, err)
		require.Equal(t, tt.want, s, "value %d", tt.value)
	}
}

func TestPositionalCodec_ShiftedDomain(t *testing.T) {
	c, err := NewPositional(WithDomain(-47, 47))
	require.NoError(t, err)
	require.Equal(t, 1, c.DigitsPerNumber())

	s := requireRoundTrip(t, c, []int{-47, 0, 47})
	require.Equal(t, " O~", s)
}

func TestPositionalCodec_Deserialize_Errors(t *testing.T) {
	c, err := NewPositional()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"odd length", "! 9", errs.ErrMalformedInput},
		{"beyond domain", "~~", errs.ErrMalformedInput},
		{"control character", "!\n", errs.ErrInvalidCharacter},
		{"invalid UTF-8", "\xff ", errs.ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numbers, err := c.Deserialize(tt.input)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, numbers)
		})
	}
}

func TestPositionalCodec_Decimal(t *testing.T) {
	c, err := NewPositional(WithAlphabetString("0123456789"), WithMaxValue(999))
	require.NoError(t, err)

	s := requireRoundTrip(t, c, []int{7, 42, 999})
	require.Equal(t, "700240999", s)
}
