package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCIF2PackUnpackRoundTrip(t *testing.T) {
	c := CIF2{
		CitedSID:   Some(StreamID(1)),
		SiblingSID: Some(StreamID(2)),
		ParentSID:  Some(StreamID(3)),
		OperatorID: Some(GenericID32(0xAB)),
	}
	b := make([]byte, c.fieldsSize())
	n, err := c.packFieldsInto(b)
	require.NoError(t, err)
	require.Equal(t, c.fieldsSize(), n)

	got, consumed, err := unpackCIF2Fields(c.indicatorWord(), b)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, c.CitedSID, got.CitedSID)
	require.Equal(t, c.SiblingSID, got.SiblingSID)
	require.Equal(t, c.ParentSID, got.ParentSID)
	require.Equal(t, c.OperatorID, got.OperatorID)
	require.False(t, got.ChildSID.HasValue())
}

func TestCIF2ControlleeUUIDDistinctFromControlIdentity(t *testing.T) {
	u, err := ParseUUID("33333333-3333-3333-3333-333333333333")
	require.NoError(t, err)

	c := CIF2{ControlleeUUID: Some(u)}
	b := make([]byte, c.fieldsSize())
	_, err = c.packFieldsInto(b)
	require.NoError(t, err)

	got, _, err := unpackCIF2Fields(c.indicatorWord(), b)
	require.NoError(t, err)
	require.Equal(t, u, got.ControlleeUUID.Value())
}

func TestCIF2IndicatorWordMatchesPresence(t *testing.T) {
	c := CIF2{CitedSID: Some(StreamID(1))}
	w := c.indicatorWord()
	require.True(t, GetBool(w, cif2BitCitedSID))
	require.False(t, GetBool(w, cif2BitSiblingSID))
}

func TestCIF2UnpackRejectsTruncatedPayload(t *testing.T) {
	c := CIF2{CitedSID: Some(StreamID(1)), ControlleeUUID: Some(UUID{})}
	b := make([]byte, c.fieldsSize())
	_, _ = c.packFieldsInto(b)
	_, _, err := unpackCIF2Fields(c.indicatorWord(), b[:len(b)-4])
	require.Error(t, err)
}
