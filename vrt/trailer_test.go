package vrt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailerPackUnpackRoundTrip(t *testing.T) {
	tr := Trailer{
		CalibratedTimeEnable: true,
		CalibratedTime:       true,
		ValidDataEnable:      true,
		ValidData:            true,
		SampleFrame:          SSIFirst,
	}
	tr.AssociatedContextPacketCount = Some(uint8(5))

	b := make([]byte, trailerSize)
	require.NoError(t, tr.PackInto(b))

	got, err := UnpackTrailerFrom(b)
	require.NoError(t, err)
	require.True(t, got.CalibratedTime)
	require.True(t, got.ValidData)
	require.Equal(t, SSIFirst, got.SampleFrame)
	require.True(t, got.AssociatedContextPacketCount.HasValue())
	require.Equal(t, uint8(5), got.AssociatedContextPacketCount.Value())
}

func TestTrailerAssociatedContextPacketCountAbsentWhenUnset(t *testing.T) {
	var tr Trailer
	b := make([]byte, trailerSize)
	require.NoError(t, tr.PackInto(b))

	got, err := UnpackTrailerFrom(b)
	require.NoError(t, err)
	require.False(t, got.AssociatedContextPacketCount.HasValue())
}

func TestTrailerAssociatedContextPacketCountIsSevenBits(t *testing.T) {
	var tr Trailer
	tr.AssociatedContextPacketCount = Some(uint8(127))
	b := make([]byte, trailerSize)
	require.NoError(t, tr.PackInto(b))

	got, err := UnpackTrailerFrom(b)
	require.NoError(t, err)
	require.Equal(t, uint8(127), got.AssociatedContextPacketCount.Value())
}

func TestTrailerUnpackRejectsShortBuffer(t *testing.T) {
	_, err := UnpackTrailerFrom([]byte{0, 1, 2})
	require.Error(t, err)
}

func TestTrailerPackIntoRejectsShortBuffer(t *testing.T) {
	var tr Trailer
	require.Error(t, tr.PackInto(make([]byte, trailerSize-1)))
}

func TestSampleFrameWireBitPositions(t *testing.T) {
	tr := Trailer{SampleFrame: SSIMiddle}
	b := make([]byte, trailerSize)
	require.NoError(t, tr.PackInto(b))
	w := binary.BigEndian.Uint32(b)

	require.True(t, GetBool(w, 23), "sample-frame enable bit 23 must be set")
	require.True(t, GetBool(w, 22), "sample-frame enable bit 22 must be set")
	require.Equal(t, uint64(SSIMiddle), GetUint(w, 11, 2), "SSI value must sit at bits 11-10")
}

func TestSampleFrameValues(t *testing.T) {
	require.Equal(t, SSI(0), SSISingle)
	require.Equal(t, SSI(1), SSIFirst)
	require.Equal(t, SSI(2), SSIMiddle)
	require.Equal(t, SSI(3), SSIFinal)
}
