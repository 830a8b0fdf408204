package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// ContextPacket is the context / extension-context packet shape, per
// spec.md 3: a Stream ID is mandatory (context packets always describe a
// stream), followed by the optional prologue fields and a CIF0 carrying
// whatever context fields are present.
type ContextPacket struct {
	StreamID            StreamID
	ClassID             Optional[ClassIdentifier]
	TSI                 TSI
	IntegerTimestamp    IntegerTimestamp
	TSF                 TSF
	FractionalTimestamp FractionalTimestamp
	TSM                 bool
	NotV49_0            bool
	PacketCount         uint8
	Extension           bool
	CIF0                CIF0
}

func (p ContextPacket) prologueSize() int {
	n := headerSize + 4 // header + mandatory stream id
	if p.ClassID.HasValue() {
		n += classIdentifierSize
	}
	if p.TSI != TSINone {
		n += 4
	}
	if p.TSF != TSFNone {
		n += 8
	}
	return n
}

// Size returns the packet's total wire size in bytes.
func (p ContextPacket) Size() int {
	return p.prologueSize() + p.CIF0.Size()
}

func (p ContextPacket) header() Header {
	var h Header
	if p.Extension {
		h.SetPacketType(PacketTypeExtensionContext)
	} else {
		h.SetPacketType(PacketTypeContext)
	}
	h.SetClassIDEnable(p.ClassID.HasValue())
	h.SetTSM(p.TSM)
	h.SetNotV49_0(p.NotV49_0)
	h.SetTSI(p.TSI)
	h.SetTSF(p.TSF)
	h.SetPacketCount(p.PacketCount)
	h.SetPacketSize(uint16(p.Size() / 4))
	return h
}

// PackInto writes the packet into b per spec.md 4.10.
func (p ContextPacket) PackInto(b []byte) (int, error) {
	if len(b) < p.Size() {
		return 0, vrterr.New(vrterr.KindBufferTooShort, "ContextPacket.PackInto", nil)
	}
	h := p.header()
	if err := h.PackInto(b); err != nil {
		return 0, err
	}
	off := headerSize
	binary.BigEndian.PutUint32(b[off:], uint32(p.StreamID))
	off += 4
	if p.ClassID.HasValue() {
		if err := p.ClassID.Value().PackInto(b[off:]); err != nil {
			return 0, err
		}
		off += classIdentifierSize
	}
	if p.TSI != TSINone {
		if err := p.IntegerTimestamp.PackInto(b[off:]); err != nil {
			return 0, err
		}
		off += 4
	}
	if p.TSF != TSFNone {
		if err := p.FractionalTimestamp.PackInto(b[off:]); err != nil {
			return 0, err
		}
		off += 8
	}
	n, err := p.CIF0.PackInto(b[off:])
	if err != nil {
		return 0, err
	}
	off += n
	return off, nil
}

// UnpackContextPacketFrom reads a ContextPacket from buf.
func UnpackContextPacketFrom(buf []byte) (ContextPacket, error) {
	h, err := UnpackHeaderFrom(buf)
	if err != nil {
		return ContextPacket{}, err
	}
	if !h.PacketType().IsContext() {
		return ContextPacket{}, vrterr.New(vrterr.KindPacketTypeMismatch, "UnpackContextPacketFrom", nil)
	}
	total := int(h.PacketSize()) * 4
	if len(buf) < total {
		return ContextPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackContextPacketFrom", nil)
	}
	buf = buf[:total]

	p := ContextPacket{
		TSM:         h.TSM(),
		NotV49_0:    h.NotV49_0(),
		PacketCount: h.PacketCount(),
		Extension:   h.PacketType() == PacketTypeExtensionContext,
		TSI:         h.TSIField(),
		TSF:         h.TSFField(),
	}
	off := headerSize
	if len(buf) < off+4 {
		return ContextPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackContextPacketFrom", nil)
	}
	p.StreamID = StreamID(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	if h.ClassIDEnable() {
		if len(buf) < off+classIdentifierSize {
			return ContextPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackContextPacketFrom", nil)
		}
		p.ClassID = Some(UnpackClassIdentifierFrom(buf[off:]))
		off += classIdentifierSize
	}
	if p.TSI != TSINone {
		if len(buf) < off+4 {
			return ContextPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackContextPacketFrom", nil)
		}
		p.IntegerTimestamp = UnpackIntegerTimestampFrom(buf[off:])
		off += 4
	}
	if p.TSF != TSFNone {
		if len(buf) < off+8 {
			return ContextPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackContextPacketFrom", nil)
		}
		p.FractionalTimestamp = UnpackFractionalTimestampFrom(buf[off:])
		off += 8
	}
	cif0, _, err := UnpackCIF0From(buf[off:])
	if err != nil {
		return ContextPacket{}, err
	}
	p.CIF0 = cif0
	return p, nil
}

// Matches reports whether buf's leading bytes are consistent with the
// context shape, per spec.md 4.10.
func (p ContextPacket) Matches(buf []byte) (bool, error) {
	h, err := UnpackHeaderFrom(buf)
	if err != nil {
		return false, err
	}
	return h.PacketType().IsContext(), nil
}
