package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// PacketType is the 4-bit packet-type code in the header's first nibble,
// per spec.md 4.6.
type PacketType uint8

// Packet-type codes, Table in spec.md 4.6.
const (
	PacketTypeSignalData         PacketType = 0b0000
	PacketTypeSignalDataStreamID PacketType = 0b0001
	PacketTypeContext            PacketType = 0b0100
	PacketTypeExtensionContext   PacketType = 0b0101
	PacketTypeCommand            PacketType = 0b0110
	PacketTypeExtensionCommand   PacketType = 0b0111
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeSignalData:
		return "SIGNAL_DATA"
	case PacketTypeSignalDataStreamID:
		return "SIGNAL_DATA_STREAM_ID"
	case PacketTypeContext:
		return "CONTEXT"
	case PacketTypeExtensionContext:
		return "EXTENSION_CONTEXT"
	case PacketTypeCommand:
		return "COMMAND"
	case PacketTypeExtensionCommand:
		return "EXTENSION_COMMAND"
	default:
		return "RESERVED"
	}
}

// HasStreamID reports whether this packet type carries a Stream Identifier
// word. Signal-data-without-stream-id is the only flavor without one; it
// is optional there (spec.md 3).
func (t PacketType) HasStreamID() bool {
	return t != PacketTypeSignalData
}

// IsContext reports whether t is Context or Extension Context.
func (t PacketType) IsContext() bool {
	return t == PacketTypeContext || t == PacketTypeExtensionContext
}

// IsCommand reports whether t is Command or Extension Command.
func (t PacketType) IsCommand() bool {
	return t == PacketTypeCommand || t == PacketTypeExtensionCommand
}

// IsSignalData reports whether t is one of the two signal-data flavors.
func (t PacketType) IsSignalData() bool {
	return t == PacketTypeSignalData || t == PacketTypeSignalDataStreamID
}

// TSI is the Integer Timestamp indicator.
type TSI uint8

// TSI values, spec.md 3.
const (
	TSINone  TSI = 0
	TSIUTC   TSI = 1
	TSIGPS   TSI = 2
	TSIOther TSI = 3
)

// TSF is the Fractional Timestamp indicator.
type TSF uint8

// TSF values, spec.md 3.
const (
	TSFNone        TSF = 0
	TSFSampleCount TSF = 1
	TSFRealTime    TSF = 2 // picoseconds
	TSFFreeRunning TSF = 3
)

const headerSize = 4 // bytes, one word

// Header is the first 32-bit word of every VRT packet, per spec.md 3 and
// 4.6. The three type-specific indicator bits (26, 25, 24) are exposed
// through per-packet-type accessor methods on Header (TrailerIncluded,
// NotV49_0, SpectrumOrTime, TSM, AcknowledgePacket, Cancellation) so
// callers don't have to remember
// which bit means what for which packet type.
type Header struct {
	raw uint32
}

// PackInto writes the header's 4 bytes in big-endian order.
func (h Header) PackInto(b []byte) error {
	if len(b) < headerSize {
		return vrterr.New(vrterr.KindBufferTooShort, "Header.PackInto", nil)
	}
	binary.BigEndian.PutUint32(b, h.raw)
	return nil
}

// UnpackHeaderFrom reads a Header from the first 4 bytes of b.
func UnpackHeaderFrom(b []byte) (Header, error) {
	if len(b) < headerSize {
		return Header{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackHeaderFrom", nil)
	}
	return Header{raw: binary.BigEndian.Uint32(b)}, nil
}

// PacketType returns the packet-type field.
func (h Header) PacketType() PacketType {
	return PacketType(GetUint(h.raw, 31, 4))
}

// SetPacketType sets the packet-type field.
func (h *Header) SetPacketType(t PacketType) {
	h.raw = SetUint(h.raw, 31, 4, uint64(t))
}

// ClassIDEnable reports whether a Class Identifier word follows the
// prologue fields that precede it.
func (h Header) ClassIDEnable() bool { return GetBool(h.raw, 27) }

// SetClassIDEnable sets the class-ID-enable bit.
func (h *Header) SetClassIDEnable(v bool) { h.raw = SetBool(h.raw, 27, 1, v) }

// indicatorBit reads one of the three type-specific bits at position 26,
// 25 or 24 (spec.md 4.6 table).
func (h Header) indicatorBit(pos int) bool { return GetBool(h.raw, pos) }

func (h *Header) setIndicatorBit(pos int, v bool) { h.raw = SetBool(h.raw, pos, 1, v) }

// TrailerIncluded is bit 26, valid for signal-data packet types.
func (h Header) TrailerIncluded() bool        { return h.indicatorBit(26) }
func (h *Header) SetTrailerIncluded(v bool)    { h.setIndicatorBit(26, v) }

// NotV49_0 is bit 25 for every packet type. It is only meaningful for data
// and context types: command types (spec.md 4.6 table) leave bit 25
// reserved and use bit 26 for acknowledge-packet.
func (h Header) NotV49_0() bool     { return h.indicatorBit(25) }
func (h *Header) SetNotV49_0(v bool) { h.setIndicatorBit(25, v) }

// SpectrumOrTime is bit 24 for signal-data packets.
func (h Header) SpectrumOrTime() bool     { return h.indicatorBit(24) }
func (h *Header) SetSpectrumOrTime(v bool) { h.setIndicatorBit(24, v) }

// TSM (TimeStamp Mode, fine/coarse) is bit 24 for context packet types.
func (h Header) TSM() bool     { return h.indicatorBit(24) }
func (h *Header) SetTSM(v bool) { h.setIndicatorBit(24, v) }

// AcknowledgePacket is bit 26 for command packet types: unset means this is
// a CONTROL packet, set means an ACK-VX/ACK-S acknowledgement.
func (h Header) AcknowledgePacket() bool     { return h.indicatorBit(26) }
func (h *Header) SetAcknowledgePacket(v bool) { h.setIndicatorBit(26, v) }

// Cancellation is bit 24 for command packet types.
func (h Header) Cancellation() bool     { return h.indicatorBit(24) }
func (h *Header) SetCancellation(v bool) { h.setIndicatorBit(24, v) }

// TSIField returns the Integer Timestamp indicator.
func (h Header) TSIField() TSI { return TSI(GetUint(h.raw, 23, 2)) }

// SetTSI sets the Integer Timestamp indicator.
func (h *Header) SetTSI(t TSI) { h.raw = SetUint(h.raw, 23, 2, uint64(t)) }

// TSFField returns the Fractional Timestamp indicator.
func (h Header) TSFField() TSF { return TSF(GetUint(h.raw, 21, 2)) }

// SetTSF sets the Fractional Timestamp indicator.
func (h *Header) SetTSF(t TSF) { h.raw = SetUint(h.raw, 21, 2, uint64(t)) }

// PacketCount is the 4-bit rolling counter a caller increments modulo 16
// per stream; the codec never mutates it (spec.md 4.6 invariant).
func (h Header) PacketCount() uint8 { return uint8(GetUint(h.raw, 19, 4)) }

// SetPacketCount sets the packet-count field, truncating to 4 bits (the
// caller is responsible for the modulo-16 wraparound discipline).
func (h *Header) SetPacketCount(v uint8) { h.raw = SetUint(h.raw, 19, 4, uint64(v)) }

// PacketSize is the packet size in 32-bit words. The encoder computes this
// field; it is never taken from user input (spec.md 3 invariant).
func (h Header) PacketSize() uint16 { return uint16(GetUint(h.raw, 15, 16)) }

// SetPacketSize sets the packet-size field. Packet envelopes set it from
// Size() when building their header during PackInto; callers should not
// call this directly.
func (h *Header) SetPacketSize(words uint16) { h.raw = SetUint(h.raw, 15, 16, uint64(words)) }
