package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// ContextAssociationLists is the CIF0 Context Association Lists field
// (VITA 49.2 9.13.2): four variable-length stream-ID lists describing how
// this context packet's stream relates to others, plus an optional
// per-channel tag list that parallels the asynchronous-channel list.
type ContextAssociationLists struct {
	SourceList              []StreamID
	SystemList              []StreamID
	VectorComponentList     []StreamID
	AsynchronousChannelList []StreamID
	AsynchronousChannelTags []GenericID32 // len must equal len(AsynchronousChannelList) if non-nil
}

const contextAssociationHeaderSize = 12 // three 32-bit count words

func (l ContextAssociationLists) hasTags() bool {
	return len(l.AsynchronousChannelTags) > 0
}

func (l ContextAssociationLists) size() int {
	n := contextAssociationHeaderSize
	n += 4 * len(l.SourceList)
	n += 4 * len(l.SystemList)
	n += 4 * len(l.VectorComponentList)
	n += 4 * len(l.AsynchronousChannelList)
	if l.hasTags() {
		n += 4 * len(l.AsynchronousChannelTags)
	}
	return n
}

func (l ContextAssociationLists) packInto(b []byte) int {
	var word0 uint32
	word0 = SetUint(word0, 24, 9, uint64(len(l.SourceList)))
	word0 = SetUint(word0, 8, 9, uint64(len(l.SystemList)))
	binary.BigEndian.PutUint32(b, word0)

	var word1 uint32
	word1 = SetBool(word1, 31, 1, l.hasTags())
	word1 = SetUint(word1, 15, 16, uint64(len(l.VectorComponentList)))
	binary.BigEndian.PutUint32(b[4:], word1)

	binary.BigEndian.PutUint32(b[8:], uint32(len(l.AsynchronousChannelList)))

	off := contextAssociationHeaderSize
	writeList := func(ids []StreamID) {
		for _, id := range ids {
			binary.BigEndian.PutUint32(b[off:], uint32(id))
			off += 4
		}
	}
	writeList(l.SourceList)
	writeList(l.SystemList)
	writeList(l.VectorComponentList)
	writeList(l.AsynchronousChannelList)
	if l.hasTags() {
		for _, tag := range l.AsynchronousChannelTags {
			binary.BigEndian.PutUint32(b[off:], uint32(tag))
			off += 4
		}
	}
	return off
}

func unpackContextAssociationLists(b []byte) (ContextAssociationLists, int, error) {
	if len(b) < contextAssociationHeaderSize {
		return ContextAssociationLists{}, 0, vrterr.New(vrterr.KindBufferTooShort, "unpackContextAssociationLists", nil)
	}
	word0 := binary.BigEndian.Uint32(b)
	word1 := binary.BigEndian.Uint32(b[4:])
	sourceN := int(GetUint(word0, 24, 9))
	systemN := int(GetUint(word0, 8, 9))
	hasTags := GetBool(word1, 31)
	vectorN := int(GetUint(word1, 15, 16))
	asyncN := int(binary.BigEndian.Uint32(b[8:]))

	total := contextAssociationHeaderSize + 4*(sourceN+systemN+vectorN+asyncN)
	if hasTags {
		total += 4 * asyncN
	}
	if len(b) < total {
		return ContextAssociationLists{}, 0, vrterr.New(vrterr.KindBufferTooShort, "unpackContextAssociationLists", nil)
	}

	off := contextAssociationHeaderSize
	readList := func(n int) []StreamID {
		ids := make([]StreamID, n)
		for i := 0; i < n; i++ {
			ids[i] = StreamID(binary.BigEndian.Uint32(b[off:]))
			off += 4
		}
		return ids
	}
	l := ContextAssociationLists{
		SourceList:              readList(sourceN),
		SystemList:              readList(systemN),
		VectorComponentList:     readList(vectorN),
		AsynchronousChannelList: readList(asyncN),
	}
	if hasTags {
		tags := make([]GenericID32, asyncN)
		for i := 0; i < asyncN; i++ {
			tags[i] = GenericID32(binary.BigEndian.Uint32(b[off:]))
			off += 4
		}
		l.AsynchronousChannelTags = tags
	}
	return l, off, nil
}
