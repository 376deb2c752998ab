package format

import (
	"testing"

	"github.com/arloliu/axe/errs"
	"github.com/stretchr/testify/require"
)

func TestCodecType_String(t *testing.T) {
	require.Equal(t, "Simple", CodecSimple.String())
	require.Equal(t, "Positional", CodecPositional.String())
	require.Equal(t, "BitRechunking", CodecBitRechunking.String())
	require.Equal(t, "Delta", CodecDelta.String())
	require.Equal(t, "Unknown", CodecType(0).String())
}

func TestCodecType_OrderPreserving(t *testing.T) {
	for _, c := range CodecTypes {
		require.Equal(t, c != CodecDelta, c.OrderPreserving(), c.String())
	}
}

func TestParseCodecType(t *testing.T) {
	for _, c := range CodecTypes {
		got, err := ParseCodecType(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	got, err := ParseCodecType("  Bit-Rechunking ")
	require.NoError(t, err)
	require.Equal(t, CodecBitRechunking, got)

	_, err = ParseCodecType("base64")
	require.ErrorIs(t, err, errs.ErrUnsupportedCodec)
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range CompressionTypes {
		got, err := ParseCompressionType(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrUnsupportedCodec)
}
