package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestContextPacketScenarioBasic round-trips a context packet carrying
// Bandwidth/RFReferenceFrequency/SampleRate.
func TestContextPacketScenarioBasic(t *testing.T) {
	p := ContextPacket{
		StreamID: StreamID(0x1234),
		TSI:      TSIUTC,
		TSF:      TSFRealTime,
	}
	p.CIF0.Bandwidth = Some(10e6)
	p.CIF0.RFReferenceFrequency = Some(2.4e9)
	p.CIF0.SampleRate = Some(20e6)

	b := make([]byte, p.Size())
	n, err := p.PackInto(b)
	require.NoError(t, err)
	require.Equal(t, p.Size(), n)
	require.Equal(t, 0, n%4)

	got, err := UnpackContextPacketFrom(b)
	require.NoError(t, err)
	require.Equal(t, p.StreamID, got.StreamID)
	require.Equal(t, p.TSI, got.TSI)
	require.Equal(t, p.TSF, got.TSF)
	require.InDelta(t, 10e6, got.CIF0.Bandwidth.Value(), 1.0/(1<<20))
}

func TestContextPacketPacketSizeField(t *testing.T) {
	p := ContextPacket{StreamID: StreamID(1)}
	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	h, err := UnpackHeaderFrom(b)
	require.NoError(t, err)
	require.Equal(t, uint16(p.Size()/4), h.PacketSize())
}

func TestContextPacketWithClassID(t *testing.T) {
	p := ContextPacket{StreamID: StreamID(1)}
	var cid ClassIdentifier
	cid.SetOUI(OUI(0x001122))
	p.ClassID = Some(cid)

	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	got, err := UnpackContextPacketFrom(b)
	require.NoError(t, err)
	require.True(t, got.ClassID.HasValue())
	require.Equal(t, OUI(0x001122), got.ClassID.Value().OUI())
}

func TestContextPacketMatchesRejectsSignalData(t *testing.T) {
	p := ContextPacket{}
	m := SignalDataPacket{}
	b := make([]byte, m.Size())
	_, err := m.PackInto(b)
	require.NoError(t, err)

	matched, err := p.Matches(b)
	require.NoError(t, err)
	require.False(t, matched)
}

func TestContextPacketMatches(t *testing.T) {
	p := ContextPacket{StreamID: StreamID(1)}
	b := make([]byte, p.Size())
	_, err := p.PackInto(b)
	require.NoError(t, err)

	matched, err := p.Matches(b)
	require.NoError(t, err)
	require.True(t, matched)
}

func TestUnpackContextPacketRejectsWrongType(t *testing.T) {
	s := SignalDataPacket{}
	b := make([]byte, s.Size())
	_, err := s.PackInto(b)
	require.NoError(t, err)

	_, err = UnpackContextPacketFrom(b)
	require.Error(t, err)
}
