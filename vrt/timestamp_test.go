package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerTimestampPackUnpackRoundTrip(t *testing.T) {
	ts := IntegerTimestamp(0x01020304)
	b := make([]byte, 4)
	require.NoError(t, ts.PackInto(b))
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
	require.Equal(t, ts, UnpackIntegerTimestampFrom(b))
}

func TestFractionalTimestampPackUnpackRoundTrip(t *testing.T) {
	ts := FractionalTimestamp(0x0102030405060708)
	b := make([]byte, 8)
	require.NoError(t, ts.PackInto(b))
	require.Equal(t, ts, UnpackFractionalTimestampFrom(b))
}

func TestMaxPicosecondsBound(t *testing.T) {
	require.Less(t, uint64(MaxPicoseconds), uint64(1_000_000_000_000))
}

func TestIntegerTimestampPackIntoRejectsShortBuffer(t *testing.T) {
	var ts IntegerTimestamp
	require.Error(t, ts.PackInto(make([]byte, 3)))
}

func TestFractionalTimestampPackIntoRejectsShortBuffer(t *testing.T) {
	var ts FractionalTimestamp
	require.Error(t, ts.PackInto(make([]byte, 7)))
}
