package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, codec Codec, data []byte) {
	t.Helper()
	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func sideFileBytes() []byte {
	// Mimics a packed float64 component buffer: mostly smooth, compressible.
	buf := make([]byte, 8*256)
	for i := range buf {
		buf[i] = byte(i % 7)
	}
	return buf
}

func TestNoOpCompressorRoundTrip(t *testing.T) {
	roundTrip(t, NewNoOpCompressor(), sideFileBytes())
}

func TestNoOpCompressorIsIdentity(t *testing.T) {
	data := sideFileBytes()
	c := NewNoOpCompressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)
}

func TestLZ4CompressorRoundTrip(t *testing.T) {
	roundTrip(t, NewLZ4Compressor(), sideFileBytes())
}

func TestLZ4CompressorEmptyInput(t *testing.T) {
	c := NewLZ4Compressor()
	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)
	decompressed, err := c.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestZstdCompressorRoundTrip(t *testing.T) {
	roundTrip(t, NewZstdCompressor(), sideFileBytes())
}

func TestZstdCompressorReducesSize(t *testing.T) {
	data := sideFileBytes()
	compressed, err := NewZstdCompressor().Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))
}

func TestGetCodecKnownTypes(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodecUnknownType(t *testing.T) {
	_, err := GetCodec(CompressionType(0xFF))
	require.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}
