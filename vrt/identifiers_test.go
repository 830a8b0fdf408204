package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOUIStringAndPackRoundTrip(t *testing.T) {
	o := OUI(0x00AABBCC)
	require.Equal(t, "AA-BB-CC", o.String())

	b := make([]byte, 4)
	require.NoError(t, o.PackInto(b))
	require.Equal(t, []byte{0x00, 0xAA, 0xBB, 0xCC}, b)
	require.Equal(t, o, UnpackOUI(b))
}

func TestOUIPackMasksHighByte(t *testing.T) {
	o := OUI(0xFFAABBCC)
	b := make([]byte, 4)
	require.NoError(t, o.PackInto(b))
	require.Equal(t, byte(0), b[0])
}

func TestOUIPackIntoRejectsShortBuffer(t *testing.T) {
	o := OUI(0x00AABBCC)
	require.Error(t, o.PackInto(make([]byte, 3)))
}

func TestUUIDStringCanonicalForm(t *testing.T) {
	u, err := ParseUUID("12345678-1234-5678-1234-567812345678")
	require.NoError(t, err)
	require.Equal(t, "12345678-1234-5678-1234-567812345678", u.String())
}

func TestParseUUIDAcceptsBareHex(t *testing.T) {
	u, err := ParseUUID("12345678123456781234567812345678")
	require.NoError(t, err)
	require.Equal(t, "12345678-1234-5678-1234-567812345678", u.String())
}

func TestParseUUIDRejectsBadLength(t *testing.T) {
	_, err := ParseUUID("deadbeef")
	require.Error(t, err)
}

func TestUUIDPackUnpackRoundTrip(t *testing.T) {
	u, err := ParseUUID("deadbeef-dead-beef-dead-beefdeadbeef")
	require.NoError(t, err)

	b := make([]byte, 16)
	require.NoError(t, u.PackInto(b))
	require.Equal(t, u, UnpackUUID(b))
}

func TestUUIDPackIntoRejectsShortBuffer(t *testing.T) {
	u, err := ParseUUID("deadbeef-dead-beef-dead-beefdeadbeef")
	require.NoError(t, err)
	require.Error(t, u.PackInto(make([]byte, 15)))
}
