package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// SignalDataPacket is the signal-data packet shape, with or without a
// Stream Identifier word depending on whether StreamID is present, per
// spec.md 3. Its payload is opaque to the codec (spec.md 5's allocation
// note: the codec never allocates for the payload itself, only copies
// to/from the caller's buffer). PackInto zero-pads the payload to a 4-byte
// boundary, and unpacking returns the padded bytes.
type SignalDataPacket struct {
	StreamID            Optional[StreamID]
	ClassID             Optional[ClassIdentifier]
	TSI                 TSI
	IntegerTimestamp    IntegerTimestamp
	TSF                 TSF
	FractionalTimestamp FractionalTimestamp
	TrailerIncluded     bool
	Trailer             Trailer
	NotV49_0            bool
	SpectrumOrTime      bool
	PacketCount         uint8
	Payload             []byte
}

func (p SignalDataPacket) prologueSize() int {
	n := headerSize
	if p.StreamID.HasValue() {
		n += 4
	}
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

// Size returns the packet's total wire size in bytes, counting the payload
// padded to a 4-byte boundary.
func (p SignalDataPacket) Size() int {
	n := p.prologueSize() + (len(p.Payload)+3)&^3
	if p.TrailerIncluded {
		n += trailerSize
	}
	return n
}

func (p SignalDataPacket) header() Header {
	var h Header
	if p.StreamID.HasValue() {
		h.SetPacketType(PacketTypeSignalDataStreamID)
	} else {
		h.SetPacketType(PacketTypeSignalData)
	}
	h.SetClassIDEnable(p.ClassID.HasValue())
	h.SetTrailerIncluded(p.TrailerIncluded)
	h.SetNotV49_0(p.NotV49_0)
	h.SetSpectrumOrTime(p.SpectrumOrTime)
	h.SetTSI(p.TSI)
	h.SetTSF(p.TSF)
	h.SetPacketCount(p.PacketCount)
	h.SetPacketSize(uint16(p.Size() / 4))
	return h
}

// PackInto writes the packet into b per spec.md 4.10.
func (p SignalDataPacket) PackInto(b []byte) (int, error) {
	if len(b) < p.Size() {
		return 0, vrterr.New(vrterr.KindBufferTooShort, "SignalDataPacket.PackInto", nil)
	}
	h := p.header()
	if err := h.PackInto(b); err != nil {
		return 0, err
	}
	off := headerSize
	if p.StreamID.HasValue() {
		binary.BigEndian.PutUint32(b[off:], uint32(p.StreamID.Value()))
		off += 4
	}
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
	off += copy(b[off:], p.Payload)
	for ; off%4 != 0; off++ {
		b[off] = 0
	}
	if p.TrailerIncluded {
		if err := p.Trailer.PackInto(b[off:]); err != nil {
			return 0, err
		}
		off += trailerSize
	}
	return off, nil
}

// UnpackSignalDataPacketFrom reads a SignalDataPacket from buf, which must
// hold at least the packet's own PacketSize words.
func UnpackSignalDataPacketFrom(buf []byte) (SignalDataPacket, error) {
	h, err := UnpackHeaderFrom(buf)
	if err != nil {
		return SignalDataPacket{}, err
	}
	if !h.PacketType().IsSignalData() {
		return SignalDataPacket{}, vrterr.New(vrterr.KindPacketTypeMismatch, "UnpackSignalDataPacketFrom", nil)
	}
	total := int(h.PacketSize()) * 4
	if len(buf) < total {
		return SignalDataPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackSignalDataPacketFrom", nil)
	}
	buf = buf[:total]

	p := SignalDataPacket{
		TrailerIncluded: h.TrailerIncluded(),
		NotV49_0:        h.NotV49_0(),
		SpectrumOrTime:  h.SpectrumOrTime(),
		PacketCount:     h.PacketCount(),
		TSI:             h.TSIField(),
		TSF:             h.TSFField(),
	}
	off := headerSize
	if h.PacketType() == PacketTypeSignalDataStreamID {
		if len(buf) < off+4 {
			return SignalDataPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackSignalDataPacketFrom", nil)
		}
		p.StreamID = Some(StreamID(binary.BigEndian.Uint32(buf[off:])))
		off += 4
	}
	if h.ClassIDEnable() {
		if len(buf) < off+classIdentifierSize {
			return SignalDataPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackSignalDataPacketFrom", nil)
		}
		p.ClassID = Some(UnpackClassIdentifierFrom(buf[off:]))
		off += classIdentifierSize
	}
	if p.TSI != TSINone {
		if len(buf) < off+4 {
			return SignalDataPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackSignalDataPacketFrom", nil)
		}
		p.IntegerTimestamp = UnpackIntegerTimestampFrom(buf[off:])
		off += 4
	}
	if p.TSF != TSFNone {
		if len(buf) < off+8 {
			return SignalDataPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackSignalDataPacketFrom", nil)
		}
		p.FractionalTimestamp = UnpackFractionalTimestampFrom(buf[off:])
		off += 8
	}
	payloadEnd := len(buf)
	if p.TrailerIncluded {
		payloadEnd -= trailerSize
	}
	if payloadEnd < off {
		return SignalDataPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackSignalDataPacketFrom", nil)
	}
	p.Payload = append([]byte(nil), buf[off:payloadEnd]...)
	if p.TrailerIncluded {
		t, err := UnpackTrailerFrom(buf[payloadEnd:])
		if err != nil {
			return SignalDataPacket{}, err
		}
		p.Trailer = t
	}
	return p, nil
}

// Matches reports whether buf's leading bytes are consistent with the
// signal-data shape, per spec.md 4.10.
func (p SignalDataPacket) Matches(buf []byte) (bool, error) {
	h, err := UnpackHeaderFrom(buf)
	if err != nil {
		return false, err
	}
	return h.PacketType().IsSignalData(), nil
}
