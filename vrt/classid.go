package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// ClassIdentifier is the optional 64-bit Class Identifier prologue field,
// per spec.md 3 and VITA 49.2 5.1.3: pad-bit-count (5), OUI (24),
// information-class-code (16), packet-class-code (16).
type ClassIdentifier struct {
	raw uint64
}

const classIdentifierSize = 8 // bytes

// PadBitCount returns the number of pad bits appended to a non-byte-aligned
// sample format (word 1, bit position 31 of the class ID's own numbering,
// i.e. bit 63 of the 64-bit word).
func (c ClassIdentifier) PadBitCount() uint8 { return uint8(GetUint(c.raw, 63, 5)) }

// SetPadBitCount sets the pad-bit-count subfield.
func (c *ClassIdentifier) SetPadBitCount(v uint8) { c.raw = SetUint(c.raw, 63, 5, uint64(v)) }

// OUI returns the manufacturer OUI.
func (c ClassIdentifier) OUI() OUI { return OUI(GetUint(c.raw, 55, 24)) }

// SetOUI sets the manufacturer OUI.
func (c *ClassIdentifier) SetOUI(v OUI) { c.raw = SetUint(c.raw, 55, 24, uint64(v)) }

// InformationClassCode returns the information class code.
func (c ClassIdentifier) InformationClassCode() uint16 { return uint16(GetUint(c.raw, 31, 16)) }

// SetInformationClassCode sets the information class code.
func (c *ClassIdentifier) SetInformationClassCode(v uint16) {
	c.raw = SetUint(c.raw, 31, 16, uint64(v))
}

// PacketClassCode returns the packet class code.
func (c ClassIdentifier) PacketClassCode() uint16 { return uint16(GetUint(c.raw, 15, 16)) }

// SetPacketClassCode sets the packet class code.
func (c *ClassIdentifier) SetPacketClassCode(v uint16) {
	c.raw = SetUint(c.raw, 15, 16, uint64(v))
}

// PackInto writes the 8-byte Class Identifier in big-endian order.
func (c ClassIdentifier) PackInto(b []byte) error {
	if len(b) < classIdentifierSize {
		return vrterr.New(vrterr.KindBufferTooShort, "ClassIdentifier.PackInto", nil)
	}
	binary.BigEndian.PutUint64(b, c.raw)
	return nil
}

// UnpackClassIdentifierFrom reads 8 bytes into a ClassIdentifier.
func UnpackClassIdentifierFrom(b []byte) ClassIdentifier {
	return ClassIdentifier{raw: binary.BigEndian.Uint64(b)}
}
