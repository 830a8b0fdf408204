package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQToIntRoundsTiesAwayFromZero(t *testing.T) {
	q := NewQ[int16](7) // Q9.7
	require.Equal(t, int16(128), q.ToInt(1.0))
	require.Equal(t, int16(-128), q.ToInt(-1.0))
	require.Equal(t, int16(1), q.ToInt(1.0/128.0))
}

func TestQToIntClampsSigned(t *testing.T) {
	q := NewQ[int16](7)
	require.Equal(t, int16(32767), q.ToInt(1e9))
	require.Equal(t, int16(-32768), q.ToInt(-1e9))
}

func TestQToIntClampsUnsignedNegativeToZero(t *testing.T) {
	q := NewQ[uint64](20)
	require.Equal(t, uint64(0), q.ToInt(-5.0))
}

func TestQRoundTrip(t *testing.T) {
	q := NewQ[int32](16) // Q16.16
	n := q.ToInt(123.5)
	require.InDelta(t, 123.5, q.ToFloat(n), 1.0/65536.0)
}

func TestGainQ9_7RoundTrip(t *testing.T) {
	n := GainToInt16(10.5)
	require.InDelta(t, 10.5, GainFromInt16(n), 1.0/128.0)
}

func TestPolarizationQ9_13RoundTrip(t *testing.T) {
	n := PolarizationToInt16(1.25)
	require.InDelta(t, 1.25, PolarizationFromInt16(n), 1.0/8192.0)
}

func TestSampleRateQ27_5RoundTrip(t *testing.T) {
	n := SampleRateToInt32(1e6)
	require.InDelta(t, 1e6, SampleRateFromInt32(n), 1.0/32.0)
}

func TestFrequencyQ44_20RoundTrip(t *testing.T) {
	n := FrequencyToInt64(2.4e9)
	require.InDelta(t, 2.4e9, FrequencyFromInt64(n), 1.0/(1<<20))
}

func TestBandwidthToUint64RejectsNegative(t *testing.T) {
	_, err := BandwidthToUint64(-1.0)
	require.Error(t, err)
}

func TestBandwidthToUint64RoundTrip(t *testing.T) {
	n, err := BandwidthToUint64(100e6)
	require.NoError(t, err)
	require.InDelta(t, 100e6, BandwidthFromUint64(n), 1.0/(1<<20))
}

func TestSampleRateToUint64RejectsNegative(t *testing.T) {
	_, err := SampleRateToUint64(-1.0)
	require.Error(t, err)
}

func TestTemperatureQ9_6RoundTrip(t *testing.T) {
	n := TemperatureToInt16(37.5)
	require.InDelta(t, 37.5, TemperatureFromInt16(n), 1.0/64.0)
}

func TestGeoAngleQ9_22RoundTrip(t *testing.T) {
	n := GeoAngleToInt32(-122.419)
	require.InDelta(t, -122.419, GeoAngleFromInt32(n), 1.0/(1<<22))
}

func TestAltitudeQ16_16RoundTrip(t *testing.T) {
	n := AltitudeToInt32(10000.25)
	require.InDelta(t, 10000.25, AltitudeFromInt32(n), 1.0/65536.0)
}
