package vrt

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

const (
	ouiSize  = 4  // bytes
	uuidSize = 16 // bytes
)

// OUI is a 24-bit IEEE-assigned Organizationally Unique Identifier, stored
// in the low 24 bits of a 32-bit big-endian word (high byte always zero),
// per spec.md 4.5. Modeled as a named integer type with wire-format
// methods, matching the teacher's ClockIdentity uint64 idiom rather than a
// wrapping struct.
type OUI uint32

// String formats the OUI as uppercase hex dash-separated octets, e.g.
// "AA-BB-CC".
func (o OUI) String() string {
	return fmt.Sprintf("%02X-%02X-%02X", byte(o>>16), byte(o>>8), byte(o))
}

// PackInto writes the OUI as a 32-bit big-endian word (high byte zero).
func (o OUI) PackInto(b []byte) error {
	if len(b) < ouiSize {
		return vrterr.New(vrterr.KindBufferTooShort, "OUI.PackInto", nil)
	}
	binary.BigEndian.PutUint32(b, uint32(o)&0x00ffffff)
	return nil
}

// UnpackOUI reads a 32-bit big-endian word and returns its low 24 bits.
func UnpackOUI(b []byte) OUI {
	return OUI(binary.BigEndian.Uint32(b) & 0x00ffffff)
}

// UUID is a 128-bit identifier, 16 bytes on the wire in RFC-4122 network
// order, per spec.md 4.5.
type UUID [16]byte

// String formats the UUID in canonical 8-4-4-4-12 lowercase hex form.
func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// ParseUUID parses either the canonical dashed form or a bare 32-hex-digit
// string into a UUID.
func ParseUUID(s string) (UUID, error) {
	clean := strings.ReplaceAll(s, "-", "")
	if len(clean) != 32 {
		return UUID{}, fmt.Errorf("invalid UUID %q: want 32 hex digits, got %d", s, len(clean))
	}
	var u UUID
	for i := 0; i < 16; i++ {
		v, err := strconv.ParseUint(clean[i*2:i*2+2], 16, 8)
		if err != nil {
			return UUID{}, fmt.Errorf("invalid UUID %q: %w", s, err)
		}
		u[i] = byte(v)
	}
	return u, nil
}

// PackInto writes the 16 raw bytes of the UUID in network order.
func (u UUID) PackInto(b []byte) error {
	if len(b) < uuidSize {
		return vrterr.New(vrterr.KindBufferTooShort, "UUID.PackInto", nil)
	}
	copy(b, u[:])
	return nil
}

// UnpackUUID reads 16 bytes into a UUID.
func UnpackUUID(b []byte) UUID {
	var u UUID
	copy(u[:], b[:16])
	return u
}

// StreamID is the 32-bit tag associating packets with a common logical
// data stream (spec.md 3, Stream Identifier).
type StreamID uint32

// MessageID is a 32-bit generic message identifier (e.g. a command
// packet's Message ID, CIF2's cited message ID).
type MessageID uint32

// GenericID32 is a plain 32-bit big-endian identifier used where the VITA
// 49.2 spec defines an opaque 32-bit ID (e.g. controller/controllee ID,
// including the CAM controllee identity in WORD format).
type GenericID32 uint32

// GenericID16 is a plain 16-bit big-endian identifier.
type GenericID16 uint16
