package encoding

import (
	"math/rand/v2"
	"testing"

	"github.com/arloliu/axe/errs"
	"github.com/stretchr/testify/require"
)

func TestNewQueue_InvalidWidths(t *testing.T) {
	tests := []struct {
		name     string
		src, dst int
	}{
		{"zero source", 0, 6},
		{"zero destination", 9, 0},
		{"negative", -1, 6},
		{"too wide", 32, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQueue(tt.src, tt.dst)
			require.ErrorIs(t, err, errs.ErrInternalInvariant)
			require.Nil(t, q)
		})
	}

	t.Run("widest allowed", func(t *testing.T) {
		_, err := NewQueue(32, 31)
		require.NoError(t, err)
	})
}

func TestQueue_NineToSix(t *testing.T) {
	q, err := NewQueue(9, 6)
	require.NoError(t, err)

	var out []uint64
	for _, v := range []uint64{1, 25, 17, 299} {
		require.NoError(t, q.Push(v))
		for d, ok := q.Next(); ok; d, ok = q.Next() {
			out = append(out, d)
		}
	}

	// 36 bits split evenly into six digits, nothing left over.
	require.Equal(t, []uint64{0, 8, 25, 2, 12, 43}, out)
	require.Equal(t, 0, q.Len())

	_, ok := q.Tail(TailKeep)
	require.False(t, ok)
}

func TestQueue_Tail(t *testing.T) {
	t.Run("keep left-aligns the remainder", func(t *testing.T) {
		q, err := NewQueue(3, 2)
		require.NoError(t, err)
		require.NoError(t, q.Push(0b101))

		d, ok := q.Next()
		require.True(t, ok)
		require.Equal(t, uint64(0b10), d)

		value, length := q.Remainder()
		require.Equal(t, uint64(1), value)
		require.Equal(t, 1, length)

		d, ok = q.Tail(TailKeep)
		require.True(t, ok)
		require.Equal(t, uint64(0b10), d)
		require.Equal(t, 0, q.Len())
	})

	t.Run("discard drops the remainder", func(t *testing.T) {
		q, err := NewQueue(3, 2)
		require.NoError(t, err)
		require.NoError(t, q.Push(0b111))
		_, _ = q.Next()

		_, ok := q.Tail(TailDiscard)
		require.False(t, ok)
		require.Equal(t, 0, q.Len())
	})
}

func TestQueue_Push_Errors(t *testing.T) {
	t.Run("value wider than source width", func(t *testing.T) {
		q, err := NewQueue(9, 6)
		require.NoError(t, err)
		require.ErrorIs(t, q.Push(512), errs.ErrInternalInvariant)
		require.Equal(t, 0, q.Len())
	})

	t.Run("undrained queue overflows", func(t *testing.T) {
		q, err := NewQueue(20, 40)
		require.NoError(t, err)
		require.NoError(t, q.Push(1))
		require.NoError(t, q.Push(1))
		require.NoError(t, q.Push(1))
		require.ErrorIs(t, q.Push(1), errs.ErrInternalInvariant)
	})
}

func TestQueue_Reset(t *testing.T) {
	q, err := NewQueue(5, 3)
	require.NoError(t, err)
	require.NoError(t, q.Push(31))
	q.Reset()

	require.Equal(t, 0, q.Len())
	_, ok := q.Next()
	require.False(t, ok)
}

func TestRechunker_Append(t *testing.T) {
	enc, err := NewRechunker(9, 6, TailKeep)
	require.NoError(t, err)
	dec, err := NewRechunker(6, 9, TailDiscard)
	require.NoError(t, err)

	t.Run("round trip with padding", func(t *testing.T) {
		src := []uint64{1, 25, 17}
		digits, rem, err := enc.Append(nil, src)
		require.NoError(t, err)
		require.Len(t, digits, enc.OutputLen(len(src)))
		require.Equal(t, 3, rem.Bits)

		back, rem, err := dec.Append(nil, digits)
		require.NoError(t, err)
		require.Equal(t, src, back)
		require.Equal(t, 3, rem.Bits)
		require.Equal(t, uint64(0), rem.Value)
	})

	t.Run("appends after existing elements", func(t *testing.T) {
		out, _, err := enc.Append([]uint64{7}, []uint64{1, 25, 17, 299})
		require.NoError(t, err)
		require.Equal(t, []uint64{7, 0, 8, 25, 2, 12, 43}, out)
	})

	t.Run("empty input", func(t *testing.T) {
		out, rem, err := enc.Append(nil, nil)
		require.NoError(t, err)
		require.Empty(t, out)
		require.Equal(t, Remainder{}, rem)
	})

	t.Run("invalid value leaves dst untouched", func(t *testing.T) {
		dst := []uint64{42}
		out, _, err := enc.Append(dst, []uint64{1, 1 << 9})
		require.ErrorIs(t, err, errs.ErrInternalInvariant)
		require.Equal(t, []uint64{42}, out)
	})
}

func TestRechunker_OutputLen(t *testing.T) {
	keep, err := NewRechunker(9, 6, TailKeep)
	require.NoError(t, err)
	discard, err := NewRechunker(6, 9, TailDiscard)
	require.NoError(t, err)

	require.Equal(t, 0, keep.OutputLen(0))
	require.Equal(t, 2, keep.OutputLen(1))
	require.Equal(t, 6, keep.OutputLen(4))
	require.Equal(t, 4, discard.OutputLen(6))
	require.Equal(t, 3, discard.OutputLen(5))
}

func TestRechunker_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec

	for _, widths := range [][2]int{{1, 1}, {1, 6}, {9, 6}, {6, 9}, {13, 5}, {31, 32}, {17, 17}} {
		src, dst := widths[0], widths[1]
		enc, err := NewRechunker(src, dst, TailKeep)
		require.NoError(t, err)
		dec, err := NewRechunker(dst, src, TailDiscard)
		require.NoError(t, err)

		values := make([]uint64, 200)
		for i := range values {
			values[i] = rng.Uint64N(uint64(1) << src)
		}

		chunks, _, err := enc.Append(nil, values)
		require.NoError(t, err)
		back, _, err := dec.Append(nil, chunks)
		require.NoError(t, err)

		// Padding can only form a spurious trailing value when it spans a full
		// source width, which needs dst > src.
		if dst > src {
			require.GreaterOrEqual(t, len(back), len(values))
			back = back[:len(values)]
		}
		require.Equal(t, values, back, "widths %d->%d", src, dst)
	}
}

func BenchmarkRechunker_Append(b *testing.B) {
	enc, _ := NewRechunker(9, 6, TailKeep)
	values := make([]uint64, 1000)
	for i := range values {
		values[i] = uint64(i % 301) //nolint:gosec
	}
	dst := make([]uint64, 0, enc.OutputLen(len(values)))

	for b.Loop() {
		dst, _, _ = enc.Append(dst[:0], values)
	}
}
