package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, String(tt.data))
		})
	}
}

func TestWithInt(t *testing.T) {
	seed := String(" !\"#")

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, WithInt(seed, 300), WithInt(seed, 300))
	})

	t.Run("parameter changes fingerprint", func(t *testing.T) {
		require.NotEqual(t, WithInt(seed, 300), WithInt(seed, 301))
	})

	t.Run("seed changes fingerprint", func(t *testing.T) {
		require.NotEqual(t, WithInt(seed, 300), WithInt(String("abcd"), 300))
	})

	t.Run("negative parameters are distinct", func(t *testing.T) {
		require.NotEqual(t, WithInt(seed, -1), WithInt(seed, 1))
	})
}

func BenchmarkString(b *testing.B) {
	s := " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
	for b.Loop() {
		String(s)
	}
}
