package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalDataPacketPackUnpackRoundTrip(t *testing.T) {
	p := SignalDataPacket{
		StreamID: Some(StreamID(0xABCD)),
		TSI:      TSIUTC,
		TSF:      TSFSampleCount,
		Payload:  []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}

	b := make([]byte, p.Size())
	n, err := p.PackInto(b)
	require.NoError(t, err)
	require.Equal(t, p.Size(), n)

	got, err := UnpackSignalDataPacketFrom(b)
	require.NoError(t, err)
	require.Equal(t, p.StreamID, got.StreamID)
	require.Equal(t, p.Payload, got.Payload)
}

func TestSignalDataPacketWithoutStreamID(t *testing.T) {
	p := SignalDataPacket{Payload: []byte{0xDE, 0xAD}}
	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	h, err := UnpackHeaderFrom(b)
	require.NoError(t, err)
	require.Equal(t, PacketTypeSignalData, h.PacketType())

	got, err := UnpackSignalDataPacketFrom(b)
	require.NoError(t, err)
	require.False(t, got.StreamID.HasValue())
	require.Equal(t, []byte{0xDE, 0xAD, 0x00, 0x00}, got.Payload)
}

func TestSignalDataPacketWithTrailer(t *testing.T) {
	p := SignalDataPacket{
		StreamID:        Some(StreamID(1)),
		Payload:         []byte{1, 2, 3, 4},
		TrailerIncluded: true,
	}
	p.Trailer.SampleFrame = SSIFinal
	p.Trailer.ValidDataEnable = true
	p.Trailer.ValidData = true

	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	got, err := UnpackSignalDataPacketFrom(b)
	require.NoError(t, err)
	require.True(t, got.TrailerIncluded)
	require.Equal(t, SSIFinal, got.Trailer.SampleFrame)
	require.True(t, got.Trailer.ValidData)
	require.Equal(t, p.Payload, got.Payload)
}

func TestSignalDataPacketEmptyPayload(t *testing.T) {
	p := SignalDataPacket{StreamID: Some(StreamID(1))}
	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	got, err := UnpackSignalDataPacketFrom(b)
	require.NoError(t, err)
	require.Empty(t, got.Payload)
}

func TestSignalDataPacketMatches(t *testing.T) {
	p := SignalDataPacket{StreamID: Some(StreamID(1))}
	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	matched, err := p.Matches(b)
	require.NoError(t, err)
	require.True(t, matched)
}

func TestUnpackSignalDataPacketRejectsWrongType(t *testing.T) {
	c := ContextPacket{StreamID: StreamID(1)}
	b := make([]byte, c.Size())
	_, err := c.PackInto(b)
	require.NoError(t, err)

	_, err = UnpackSignalDataPacketFrom(b)
	require.Error(t, err)
}
