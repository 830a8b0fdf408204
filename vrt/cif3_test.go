package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThresholdFieldPackUnpackRoundTrip(t *testing.T) {
	th := ThresholdField{Upper: 10.0, Lower: -50.0}
	b := make([]byte, 4)
	packThreshold(th, b)
	got := unpackThreshold(b)
	require.InDelta(t, th.Upper, got.Upper, 1.0/128.0)
	require.InDelta(t, th.Lower, got.Lower, 1.0/128.0)
}

func TestCIF3PackUnpackRoundTrip(t *testing.T) {
	c := CIF3{
		TimestampDetails: Some(uint32(0xABCDEF)),
		Jitter:           Some(1234.5),
		Threshold:        Some(ThresholdField{Upper: 5.0, Lower: -5.0}),
	}
	b := make([]byte, c.fieldsSize())
	n := c.packFieldsInto(b)
	require.Equal(t, c.fieldsSize(), n)

	got, consumed, err := unpackCIF3Fields(c.indicatorWord(), b)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, c.TimestampDetails, got.TimestampDetails)
	require.InDelta(t, 1234.5, got.Jitter.Value(), 1.0/(1<<20))
	require.False(t, got.TimestampSkew.HasValue())
	require.False(t, got.BitErrorRate.HasValue())
}

func TestCIF3UnpackRejectsTruncatedPayload(t *testing.T) {
	c := CIF3{BitErrorRate: Some(0.5)}
	b := make([]byte, c.fieldsSize())
	c.packFieldsInto(b)
	_, _, err := unpackCIF3Fields(c.indicatorWord(), b[:len(b)-4])
	require.Error(t, err)
}
