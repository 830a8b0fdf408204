package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwap16(t *testing.T) {
	require.Equal(t, uint16(0xBBAA), Swap16(0xAABB))
}

func TestSwap32(t *testing.T) {
	require.Equal(t, uint32(0xDDCCBBAA), Swap32(0xAABBCCDD))
}

func TestSwap64(t *testing.T) {
	require.Equal(t, uint64(0x0807060504030201), Swap64(0x0102030405060708))
}

func TestSwap24ZeroesHighByte(t *testing.T) {
	require.Equal(t, uint32(0x00CCBBAA), Swap24(0xFFAABBCC))
}

func TestBigEndianRoundTripIsIdentity(t *testing.T) {
	require.Equal(t, uint32(0x12345678), FromBigEndian32(ToBigEndian32(0x12345678)))
	require.Equal(t, uint16(0x1234), FromBigEndian16(ToBigEndian16(0x1234)))
	require.Equal(t, uint64(0x1122334455667788), FromBigEndian64(ToBigEndian64(0x1122334455667788)))
}
