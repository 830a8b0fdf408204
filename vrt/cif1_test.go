package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolarizationAnglesPackUnpackRoundTrip(t *testing.T) {
	p := PolarizationAngles{TiltAngle: 0.75, EllipticityAngle: -0.25}
	b := make([]byte, 4)
	packPolarizationAngles(p, b)
	got := unpackPolarizationAngles(b)
	require.InDelta(t, p.TiltAngle, got.TiltAngle, 1.0/8192.0)
	require.InDelta(t, p.EllipticityAngle, got.EllipticityAngle, 1.0/8192.0)
}

func TestPointingVectorPackUnpackRoundTrip(t *testing.T) {
	p := PointingVector{Elevation: -45.0, Azimuth: 180.0}
	b := make([]byte, 4)
	packPointingVector(p, b)
	got := unpackPointingVector(b)
	require.InDelta(t, p.Elevation, got.Elevation, 1.0/128.0)
	require.InDelta(t, p.Azimuth, got.Azimuth, 1.0/128.0)
}

func TestBeamWidthsPackUnpackRoundTrip(t *testing.T) {
	bw := BeamWidths{Horizontal: 3.5, Vertical: 2.0}
	b := make([]byte, 4)
	packBeamWidths(bw, b)
	got := unpackBeamWidths(b)
	require.InDelta(t, bw.Horizontal, got.Horizontal, 1.0/128.0)
	require.InDelta(t, bw.Vertical, got.Vertical, 1.0/128.0)
}

func TestSNRNoiseFigurePackUnpackRoundTrip(t *testing.T) {
	s := SNRNoiseFigure{SNR: 20.0, NoiseFigure: 3.5}
	b := make([]byte, 4)
	packSNRNoiseFigure(s, b)
	got := unpackSNRNoiseFigure(b)
	require.InDelta(t, s.SNR, got.SNR, 1.0/128.0)
	require.InDelta(t, s.NoiseFigure, got.NoiseFigure, 1.0/128.0)
}

func TestVersionInformationPackUnpackRoundTrip(t *testing.T) {
	v := VersionInformation{Year: 25, Day: 200, Revision: 3, UserDefined: 0x2AA}
	b := make([]byte, 4)
	packVersionInformation(v, b)
	require.Equal(t, v, unpackVersionInformation(b))
}

func TestBufferSizePackUnpackRoundTrip(t *testing.T) {
	s := BufferSize{ReadSize: 4096, WriteSize: 8192}
	b := make([]byte, 4)
	packBufferSize(s, b)
	require.Equal(t, s, unpackBufferSize(b))
}

func TestCIF1PackUnpackRoundTrip(t *testing.T) {
	c := CIF1{
		PhaseOffset:  Some(12.5),
		Polarization: Some(PolarizationAngles{TiltAngle: 0.5, EllipticityAngle: 0.25}),
		Range:        Some(1500.0),
		AuxGain:      Some(Gain{Stage1: 6.0}),
		VersionInfo:  Some(VersionInformation{Year: 24, Day: 100}),
		BufferSize:   Some(BufferSize{ReadSize: 1024, WriteSize: 2048}),
	}
	b := make([]byte, c.fieldsSize())
	n, err := c.packFieldsInto(b)
	require.NoError(t, err)
	require.Equal(t, c.fieldsSize(), n)

	got, consumed, err := unpackCIF1Fields(c.indicatorWord(), b)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.InDelta(t, 12.5, got.PhaseOffset.Value(), 1.0/128.0)
	require.InDelta(t, 0.5, got.Polarization.Value().TiltAngle, 1.0/8192.0)
	require.InDelta(t, 1500.0, got.Range.Value(), 1.0/(1<<20))
	require.Equal(t, BufferSize{ReadSize: 1024, WriteSize: 2048}, got.BufferSize.Value())
	require.False(t, got.AuxBandwidth.HasValue())
}

func TestCIF1UnpackRejectsTruncatedPayload(t *testing.T) {
	c := CIF1{Range: Some(500.0)}
	b := make([]byte, c.fieldsSize())
	_, _ = c.packFieldsInto(b)
	_, _, err := unpackCIF1Fields(c.indicatorWord(), b[:len(b)-4])
	require.Error(t, err)
}
