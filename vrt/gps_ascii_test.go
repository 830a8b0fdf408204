package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGPSASCIIPackUnpackRoundTrip(t *testing.T) {
	g := GPSASCII{OUI: OUI(0x001122), Sentence: "$GPGGA,123519,*47"}
	b := make([]byte, g.size())
	n := g.packInto(b)
	require.Equal(t, g.size(), n)

	got, consumed, err := unpackGPSASCII(b)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, g.OUI, got.OUI)
	require.Equal(t, g.Sentence, got.Sentence)
}

func TestGPSASCIIPadsToWordBoundary(t *testing.T) {
	g := GPSASCII{Sentence: "ab"}
	require.Equal(t, gpsASCIIHeaderSize+4, g.size())
}

func TestGPSASCIIEmptySentence(t *testing.T) {
	g := GPSASCII{OUI: OUI(0x0), Sentence: ""}
	b := make([]byte, g.size())
	g.packInto(b)

	got, _, err := unpackGPSASCII(b)
	require.NoError(t, err)
	require.Equal(t, "", got.Sentence)
}

func TestGPSASCIIUnpackRejectsShortBuffer(t *testing.T) {
	_, _, err := unpackGPSASCII([]byte{0, 1, 2})
	require.Error(t, err)
}

func TestGPSASCIIUnpackRejectsOversizeWordCount(t *testing.T) {
	b := make([]byte, gpsASCIIHeaderSize)
	b[4] = 0xFF
	b[5] = 0xFF
	b[6] = 0xFF
	b[7] = 0xFF
	_, _, err := unpackGPSASCII(b)
	require.Error(t, err)
}
