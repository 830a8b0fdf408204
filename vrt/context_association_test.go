package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextAssociationListsPackUnpackRoundTrip(t *testing.T) {
	l := ContextAssociationLists{
		SourceList:              []StreamID{1, 2},
		SystemList:              []StreamID{3},
		VectorComponentList:     []StreamID{4, 5, 6},
		AsynchronousChannelList: []StreamID{7, 8},
	}
	b := make([]byte, l.size())
	n := l.packInto(b)
	require.Equal(t, l.size(), n)

	got, consumed, err := unpackContextAssociationLists(b)
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.Equal(t, l.SourceList, got.SourceList)
	require.Equal(t, l.SystemList, got.SystemList)
	require.Equal(t, l.VectorComponentList, got.VectorComponentList)
	require.Equal(t, l.AsynchronousChannelList, got.AsynchronousChannelList)
	require.Nil(t, got.AsynchronousChannelTags)
}

func TestContextAssociationListsWithTags(t *testing.T) {
	l := ContextAssociationLists{
		AsynchronousChannelList: []StreamID{1, 2},
		AsynchronousChannelTags: []GenericID32{0xAA, 0xBB},
	}
	b := make([]byte, l.size())
	l.packInto(b)

	got, _, err := unpackContextAssociationLists(b)
	require.NoError(t, err)
	require.Equal(t, l.AsynchronousChannelTags, got.AsynchronousChannelTags)
}

func TestContextAssociationListsEmpty(t *testing.T) {
	var l ContextAssociationLists
	require.Equal(t, contextAssociationHeaderSize, l.size())
	b := make([]byte, l.size())
	l.packInto(b)

	got, _, err := unpackContextAssociationLists(b)
	require.NoError(t, err)
	require.Empty(t, got.SourceList)
	require.Empty(t, got.SystemList)
}

func TestContextAssociationListsUnpackRejectsShortBuffer(t *testing.T) {
	_, _, err := unpackContextAssociationLists([]byte{0, 1, 2})
	require.Error(t, err)
}

func TestContextAssociationListsUnpackRejectsTruncatedListPayload(t *testing.T) {
	l := ContextAssociationLists{SourceList: []StreamID{1, 2, 3}}
	b := make([]byte, l.size())
	l.packInto(b)
	_, _, err := unpackContextAssociationLists(b[:len(b)-4])
	require.Error(t, err)
}
