package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// CAMRole is the Control/Acknowledge Mode role a command packet's header
// and CAM word jointly encode, per spec.md 4.9. Modeled the same way the
// teacher models PTP management's Action field: a named integer type with
// role-testing methods rather than a class hierarchy per packet role.
type CAMRole uint8

// CAM roles.
const (
	CAMRoleControl CAMRole = iota
	CAMRoleAckVX
	CAMRoleAckS
	CAMRoleCancellation
)

func (r CAMRole) String() string {
	switch r {
	case CAMRoleControl:
		return "CONTROL"
	case CAMRoleAckVX:
		return "ACK_VX"
	case CAMRoleAckS:
		return "ACK_S"
	case CAMRoleCancellation:
		return "CANCELLATION"
	default:
		return "UNKNOWN"
	}
}

// IdentityFormat selects whether a CAM controllee/controller identity word
// is a plain 32-bit WORD or a 128-bit UUID, per spec.md 4.9/4.5.
type IdentityFormat uint8

// Identity formats.
const (
	IdentityFormatWord IdentityFormat = 0
	IdentityFormatUUID IdentityFormat = 1
)

// ActionMode is the CAM tri-state action-mode field, per spec.md 4.9.
type ActionMode uint8

// Action modes; code 0b11 is reserved and must never be emitted.
const (
	ActionModeNoAction ActionMode = 0b00
	ActionModeExecute  ActionMode = 0b01
	ActionModeDryRun   ActionMode = 0b10
)

// TimingControl is the CAM 3-bit timing-control enum, per spec.md 4.9.
type TimingControl uint8

// Timing control codes.
const (
	TimingControlIgnore    TimingControl = 0b000
	TimingControlDevice    TimingControl = 0b001
	TimingControlLate      TimingControl = 0b010
	TimingControlEarly     TimingControl = 0b011
	TimingControlEarlyLate TimingControl = 0b100
)

const camSize = 4 // bytes

// CAM is the Control/Acknowledge Mode word carried by every command packet,
// per spec.md 4.9's running field table: controllee/controller identity
// enable+format, permit-*, action-mode, nack-only, the dual-purpose
// request-*/ack-* quintet, and timing-control. The codec only guarantees
// the word can be written and read faithfully; it does not itself drive
// the CONTROL -> ACK-VX/ACK-S / CANCELLATION protocol.
//
// Which of CONTROL, ACK-VX, ACK-S, CANCELLATION a command packet plays is
// carried on the packet's Header (acknowledge-packet/cancellation bits,
// spec.md 4.6), not on the CAM word itself -- Role takes the header's
// acknowledge-packet/cancellation state as input since CAM alone cannot
// distinguish a request-* word from an ack-* word.
type CAM struct {
	raw uint32
}

func (c CAM) bit(pos int) bool          { return GetBool(c.raw, pos) }
func (c *CAM) setBit(pos int, v bool)   { c.raw = SetBool(c.raw, pos, 1, v) }

// ControlleeEnable reports whether a Controllee ID/UUID field follows the
// command packet's Message ID.
func (c CAM) ControlleeEnable() bool { return c.bit(31) }

// SetControlleeEnable sets the controllee-enable bit.
func (c *CAM) SetControlleeEnable(v bool) { c.setBit(31, v) }

// ControlleeFormat reports whether the Controllee field is a WORD or UUID.
func (c CAM) ControlleeFormat() IdentityFormat {
	if c.bit(30) {
		return IdentityFormatUUID
	}
	return IdentityFormatWord
}

// SetControlleeFormat sets the controllee-format bit.
func (c *CAM) SetControlleeFormat(f IdentityFormat) { c.setBit(30, f == IdentityFormatUUID) }

// ControllerEnable reports whether a Controller ID/UUID field follows the
// Controllee field (or the Message ID, if ControlleeEnable is false).
func (c CAM) ControllerEnable() bool { return c.bit(29) }

// SetControllerEnable sets the controller-enable bit.
func (c *CAM) SetControllerEnable(v bool) { c.setBit(29, v) }

// ControllerFormat reports whether the Controller field is a WORD or UUID.
func (c CAM) ControllerFormat() IdentityFormat {
	if c.bit(28) {
		return IdentityFormatUUID
	}
	return IdentityFormatWord
}

// SetControllerFormat sets the controller-format bit.
func (c *CAM) SetControllerFormat(f IdentityFormat) { c.setBit(28, f == IdentityFormatUUID) }

// PermitPartial reports whether the controllee may execute the command
// partially and still acknowledge success.
func (c CAM) PermitPartial() bool { return c.bit(27) }

// SetPermitPartial sets the permit-partial bit.
func (c *CAM) SetPermitPartial(v bool) { c.setBit(27, v) }

// PermitWarnings reports whether the controllee may return warnings.
func (c CAM) PermitWarnings() bool { return c.bit(26) }

// SetPermitWarnings sets the permit-warnings bit.
func (c *CAM) SetPermitWarnings(v bool) { c.setBit(26, v) }

// PermitErrors reports whether the controllee may return errors.
func (c CAM) PermitErrors() bool { return c.bit(25) }

// SetPermitErrors sets the permit-errors bit.
func (c *CAM) SetPermitErrors(v bool) { c.setBit(25, v) }

// ActionModeField returns the tri-state action-mode field.
func (c CAM) ActionModeField() ActionMode { return ActionMode(GetUint(c.raw, 24, 2)) }

// SetActionMode sets the action-mode field.
func (c *CAM) SetActionMode(m ActionMode) { c.raw = SetUint(c.raw, 24, 2, uint64(m)) }

// NACKOnly reports the nack-only bit (controllee refused the command).
func (c CAM) NACKOnly() bool { return c.bit(22) }

// SetNACKOnly sets the nack-only bit.
func (c *CAM) SetNACKOnly(v bool) { c.setBit(22, v) }

// ReqV reports request-validation on a CONTROL word, or ack-validation on
// an ACK-VX word -- spec.md 4.9's "acknowledge packets reuse the same word
// with ack-* bits replacing request-*" rule means this one bit carries
// both meanings depending on the owning packet's header role.
func (c CAM) ReqV() bool { return c.bit(21) }

// SetReqV sets the request-validation/ack-validation bit.
func (c *CAM) SetReqV(v bool) { c.setBit(21, v) }

// ReqX reports request-execution / ack-execution.
func (c CAM) ReqX() bool { return c.bit(20) }

// SetReqX sets the request-execution/ack-execution bit.
func (c *CAM) SetReqX(v bool) { c.setBit(20, v) }

// AckS reports request-query-state / ack-query-state.
func (c CAM) AckS() bool { return c.bit(19) }

// SetAckS sets the request-query-state/ack-query-state bit.
func (c *CAM) SetAckS(v bool) { c.setBit(19, v) }

// ReqW reports request-warnings / ack-warnings.
func (c CAM) ReqW() bool { return c.bit(18) }

// SetReqW sets the request-warnings/ack-warnings bit.
func (c *CAM) SetReqW(v bool) { c.setBit(18, v) }

// ReqEr reports request-errors / ack-errors.
func (c CAM) ReqEr() bool { return c.bit(17) }

// SetReqEr sets the request-errors/ack-errors bit.
func (c *CAM) SetReqEr(v bool) { c.setBit(17, v) }

// TimingControlField returns the 3-bit timing-control enum.
func (c CAM) TimingControlField() (TimingControl, error) {
	v := TimingControl(GetUint(c.raw, 16, 3))
	switch v {
	case TimingControlIgnore, TimingControlDevice, TimingControlLate, TimingControlEarly, TimingControlEarlyLate:
		return v, nil
	default:
		return 0, vrterr.New(vrterr.KindInvalidEnum, "CAM.TimingControlField", nil)
	}
}

// SetTimingControl sets the timing-control field.
func (c *CAM) SetTimingControl(t TimingControl) { c.raw = SetUint(c.raw, 16, 3, uint64(t)) }

// Partial reports the partial-action bit, meaningful on ACK-VX/ACK-S words
// only (spec.md 4.9: "partial execution sets partial-action"). Placed in
// the word's otherwise-reserved low range since spec.md names the bit
// without pinning its exact position; see DESIGN.md.
func (c CAM) Partial() bool { return c.bit(13) }

// SetPartial sets the partial-action bit.
func (c *CAM) SetPartial(v bool) { c.setBit(13, v) }

// ScheduledOrExecuted reports whether a timed command was scheduled (if
// still pending) or executed (if its time has passed), meaningful on
// ACK-VX/ACK-S words only.
func (c CAM) ScheduledOrExecuted() bool { return c.bit(12) }

// SetScheduledOrExecuted sets the scheduled-or-executed bit.
func (c *CAM) SetScheduledOrExecuted(v bool) { c.setBit(12, v) }

// Role reports which of the four CAM roles a command packet plays, given
// its header's acknowledge-packet and cancellation bits alongside this
// CAM word's ack-query-state bit, per spec.md 4.9's role table.
func (c CAM) Role(headerAcknowledgePacket, headerCancellation bool) CAMRole {
	switch {
	case headerCancellation:
		return CAMRoleCancellation
	case headerAcknowledgePacket && c.AckS():
		return CAMRoleAckS
	case headerAcknowledgePacket:
		return CAMRoleAckVX
	default:
		return CAMRoleControl
	}
}

// PackInto writes the 4-byte CAM word in big-endian order.
func (c CAM) PackInto(b []byte) error {
	if len(b) < camSize {
		return vrterr.New(vrterr.KindBufferTooShort, "CAM.PackInto", nil)
	}
	binary.BigEndian.PutUint32(b, c.raw)
	return nil
}

// UnpackCAMFrom reads a 4-byte CAM word.
func UnpackCAMFrom(b []byte) (CAM, error) {
	if len(b) < camSize {
		return CAM{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackCAMFrom", nil)
	}
	return CAM{raw: binary.BigEndian.Uint32(b)}, nil
}
