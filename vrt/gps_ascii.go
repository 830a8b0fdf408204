package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// GPSASCII is the CIF0 Formatted GPS ASCII field (VITA 49.2 9.4.8): a
// manufacturer OUI followed by a NUL-padded ASCII sentence whose length in
// 32-bit words is carried explicitly on the wire.
type GPSASCII struct {
	OUI      OUI
	Sentence string
}

const gpsASCIIHeaderSize = 8 // OUI word + word-count word

// maxASCIIWords bounds the word-count subfield on unpack: unpackGPSASCII
// rejects a larger count with vrterr.KindASCIIDecode, per spec.md 7.
// packInto does not check it.
const maxASCIIWords = 1 << 24

func (g GPSASCII) words() int {
	return (len(g.Sentence) + 3) / 4
}

func (g GPSASCII) size() int {
	return gpsASCIIHeaderSize + g.words()*4
}

func (g GPSASCII) packInto(b []byte) int {
	var w uint32
	w = SetUint(w, 23, 24, uint64(g.OUI))
	binary.BigEndian.PutUint32(b, w)
	binary.BigEndian.PutUint32(b[4:], uint32(g.words()))
	n := copy(b[gpsASCIIHeaderSize:], g.Sentence)
	for i := n; i < g.words()*4; i++ {
		b[gpsASCIIHeaderSize+i] = 0
	}
	return g.size()
}

func unpackGPSASCII(b []byte) (GPSASCII, int, error) {
	if len(b) < gpsASCIIHeaderSize {
		return GPSASCII{}, 0, vrterr.New(vrterr.KindBufferTooShort, "unpackGPSASCII", nil)
	}
	ouiWord := binary.BigEndian.Uint32(b)
	words := binary.BigEndian.Uint32(b[4:])
	if words > maxASCIIWords {
		return GPSASCII{}, 0, vrterr.New(vrterr.KindASCIIDecode, "unpackGPSASCII", nil)
	}
	total := gpsASCIIHeaderSize + int(words)*4
	if len(b) < total {
		return GPSASCII{}, 0, vrterr.New(vrterr.KindBufferTooShort, "unpackGPSASCII", nil)
	}
	raw := b[gpsASCIIHeaderSize:total]
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	return GPSASCII{
		OUI:      OUI(GetUint(ouiWord, 23, 24)),
		Sentence: string(raw[:end]),
	}, total, nil
}
