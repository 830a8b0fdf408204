package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// ControlIdentity is a CAM controllee/controller identity field, which is
// either a 4-byte WORD or a 16-byte UUID depending on the owning CAM
// word's format bit, per spec.md 4.9.
type ControlIdentity struct {
	Format IdentityFormat
	Word   GenericID32
	UUID   UUID
}

func (c ControlIdentity) size() int {
	if c.Format == IdentityFormatUUID {
		return 16
	}
	return 4
}

func (c ControlIdentity) packInto(b []byte) (int, error) {
	if c.Format == IdentityFormatUUID {
		if err := c.UUID.PackInto(b); err != nil {
			return 0, err
		}
		return 16, nil
	}
	binary.BigEndian.PutUint32(b, uint32(c.Word))
	return 4, nil
}

func unpackControlIdentity(format IdentityFormat, b []byte) (ControlIdentity, int, error) {
	id := ControlIdentity{Format: format}
	n := id.size()
	if len(b) < n {
		return ControlIdentity{}, 0, vrterr.New(vrterr.KindBufferTooShort, "unpackControlIdentity", nil)
	}
	if format == IdentityFormatUUID {
		id.UUID = UnpackUUID(b)
	} else {
		id.Word = GenericID32(binary.BigEndian.Uint32(b))
	}
	return id, n, nil
}

// CommandPacket is the command / extension-command packet shape, per
// spec.md 3 and 4.9: a mandatory Stream ID, the optional prologue fields, a
// Message ID, the CAM word selecting the packet's control/acknowledge role,
// the CAM-gated Controllee/Controller identity fields, and a CIF0 carrying
// whatever control/query fields the command sets.
type CommandPacket struct {
	StreamID            StreamID
	ClassID             Optional[ClassIdentifier]
	TSI                 TSI
	IntegerTimestamp    IntegerTimestamp
	TSF                 TSF
	FractionalTimestamp FractionalTimestamp
	NotV49_0            bool
	PacketCount         uint8
	Extension           bool
	AcknowledgePacket   bool
	Cancellation        bool
	MessageID           MessageID
	CAM                 CAM
	ControlleeID        Optional[ControlIdentity]
	ControllerID        Optional[ControlIdentity]
	CIF0                CIF0
}

func (p CommandPacket) prologueSize() int {
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
	n += camSize + 4 // CAM word + Message ID
	if p.ControlleeID.HasValue() {
		n += p.ControlleeID.Value().size()
	}
	if p.ControllerID.HasValue() {
		n += p.ControllerID.Value().size()
	}
	return n
}

// Size returns the packet's total wire size in bytes.
func (p CommandPacket) Size() int {
	return p.prologueSize() + p.CIF0.Size()
}

func (p CommandPacket) header() Header {
	var h Header
	if p.Extension {
		h.SetPacketType(PacketTypeExtensionCommand)
	} else {
		h.SetPacketType(PacketTypeCommand)
	}
	h.SetClassIDEnable(p.ClassID.HasValue())
	h.SetAcknowledgePacket(p.AcknowledgePacket)
	h.SetCancellation(p.Cancellation)
	h.SetNotV49_0(p.NotV49_0)
	h.SetTSI(p.TSI)
	h.SetTSF(p.TSF)
	h.SetPacketCount(p.PacketCount)
	h.SetPacketSize(uint16(p.Size() / 4))
	return h
}

// cam returns p.CAM with the controllee/controller enable+format bits
// overlaid from p.ControlleeID/p.ControllerID, so those two sources of
// truth can never desync on the wire (the same enable-bit/Optional
// invariant CIF0 enforces for its own gated fields).
func (p CommandPacket) cam() CAM {
	c := p.CAM
	c.SetControlleeEnable(p.ControlleeID.HasValue())
	if p.ControlleeID.HasValue() {
		c.SetControlleeFormat(p.ControlleeID.Value().Format)
	}
	c.SetControllerEnable(p.ControllerID.HasValue())
	if p.ControllerID.HasValue() {
		c.SetControllerFormat(p.ControllerID.Value().Format)
	}
	return c
}

// PackInto writes the packet into b per spec.md 4.10.
func (p CommandPacket) PackInto(b []byte) (int, error) {
	if len(b) < p.Size() {
		return 0, vrterr.New(vrterr.KindBufferTooShort, "CommandPacket.PackInto", nil)
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
	if err := p.cam().PackInto(b[off:]); err != nil {
		return 0, err
	}
	off += camSize
	binary.BigEndian.PutUint32(b[off:], uint32(p.MessageID))
	off += 4
	if p.ControlleeID.HasValue() {
		n, err := p.ControlleeID.Value().packInto(b[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}
	if p.ControllerID.HasValue() {
		n, err := p.ControllerID.Value().packInto(b[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}
	n, err := p.CIF0.PackInto(b[off:])
	if err != nil {
		return 0, err
	}
	off += n
	return off, nil
}

// UnpackCommandPacketFrom reads a CommandPacket from buf.
func UnpackCommandPacketFrom(buf []byte) (CommandPacket, error) {
	h, err := UnpackHeaderFrom(buf)
	if err != nil {
		return CommandPacket{}, err
	}
	if !h.PacketType().IsCommand() {
		return CommandPacket{}, vrterr.New(vrterr.KindPacketTypeMismatch, "UnpackCommandPacketFrom", nil)
	}
	total := int(h.PacketSize()) * 4
	if len(buf) < total {
		return CommandPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCommandPacketFrom", nil)
	}
	buf = buf[:total]

	p := CommandPacket{
		NotV49_0:          h.NotV49_0(),
		PacketCount:       h.PacketCount(),
		Extension:         h.PacketType() == PacketTypeExtensionCommand,
		TSI:               h.TSIField(),
		TSF:               h.TSFField(),
		AcknowledgePacket: h.AcknowledgePacket(),
		Cancellation:      h.Cancellation(),
	}
	off := headerSize
	if len(buf) < off+4 {
		return CommandPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCommandPacketFrom", nil)
	}
	p.StreamID = StreamID(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	if h.ClassIDEnable() {
		if len(buf) < off+classIdentifierSize {
			return CommandPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCommandPacketFrom", nil)
		}
		p.ClassID = Some(UnpackClassIdentifierFrom(buf[off:]))
		off += classIdentifierSize
	}
	if p.TSI != TSINone {
		if len(buf) < off+4 {
			return CommandPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCommandPacketFrom", nil)
		}
		p.IntegerTimestamp = UnpackIntegerTimestampFrom(buf[off:])
		off += 4
	}
	if p.TSF != TSFNone {
		if len(buf) < off+8 {
			return CommandPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCommandPacketFrom", nil)
		}
		p.FractionalTimestamp = UnpackFractionalTimestampFrom(buf[off:])
		off += 8
	}
	if len(buf) < off+camSize+4 {
		return CommandPacket{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCommandPacketFrom", nil)
	}
	cam, err := UnpackCAMFrom(buf[off:])
	if err != nil {
		return CommandPacket{}, err
	}
	p.CAM = cam
	off += camSize
	p.MessageID = MessageID(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	if cam.ControlleeEnable() {
		id, n, err := unpackControlIdentity(cam.ControlleeFormat(), buf[off:])
		if err != nil {
			return CommandPacket{}, err
		}
		p.ControlleeID = Some(id)
		off += n
	}
	if cam.ControllerEnable() {
		id, n, err := unpackControlIdentity(cam.ControllerFormat(), buf[off:])
		if err != nil {
			return CommandPacket{}, err
		}
		p.ControllerID = Some(id)
		off += n
	}
	cif0, _, err := UnpackCIF0From(buf[off:])
	if err != nil {
		return CommandPacket{}, err
	}
	p.CIF0 = cif0
	return p, nil
}

// Matches reports whether buf's leading bytes are consistent with the
// command shape, per spec.md 4.10.
func (p CommandPacket) Matches(buf []byte) (bool, error) {
	h, err := UnpackHeaderFrom(buf)
	if err != nil {
		return false, err
	}
	return h.PacketType().IsCommand(), nil
}
