package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	LittleEndian.PutUint32(buf, 0xAABBCCDD)
	require.Equal(t, uint32(0xAABBCCDD), LittleEndian.Uint32(buf))
	require.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA}, buf)
}

func TestBigEndianDiffersFromLittleEndian(t *testing.T) {
	buf := make([]byte, 4)
	BigEndian.PutUint32(buf, 0xAABBCCDD)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, buf)
}

func TestHostIsLittleEndianMatchesRuntimeGOARCH(t *testing.T) {
	require.True(t, HostIsLittleEndian(), "CSDM's supported build targets (amd64/arm64) are little-endian")
}
