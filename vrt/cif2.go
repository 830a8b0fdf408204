package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// CIF2 is the third Context Indicator Field word and the association/
// identity fields it gates (VITA 49.2 ch. 9.12-9.13). 12 catalog entries
// have an assigned payload slot here (see SPEC_FULL.md 4.7 for
// the exact list of what's deferred).
type CIF2 struct {
	CitedSID       Optional[StreamID]
	SiblingSID     Optional[StreamID]
	ParentSID      Optional[StreamID]
	ChildSID       Optional[StreamID]
	CitedMessageID Optional[MessageID]
	ControlleeID   Optional[GenericID32]
	ControlleeUUID Optional[UUID]
	ControllerID   Optional[GenericID32]
	ControllerUUID Optional[UUID]
	OperatorID     Optional[GenericID32]
	PlatformID     Optional[GenericID32]
	StationID      Optional[GenericID32]
}

const (
	cif2BitCitedSID       = 30
	cif2BitSiblingSID     = 29
	cif2BitParentSID      = 28
	cif2BitChildSID       = 27
	cif2BitCitedMessageID = 26
	cif2BitControlleeID   = 25
	cif2BitControlleeUUID = 24
	cif2BitControllerID   = 23
	cif2BitControllerUUID = 22
	cif2BitOperatorID     = 18
	cif2BitPlatformID     = 17
	cif2BitStationID      = 15
)

func (c CIF2) indicatorWord() uint32 {
	var w uint32
	w = SetBool(w, cif2BitCitedSID, 1, c.CitedSID.HasValue())
	w = SetBool(w, cif2BitSiblingSID, 1, c.SiblingSID.HasValue())
	w = SetBool(w, cif2BitParentSID, 1, c.ParentSID.HasValue())
	w = SetBool(w, cif2BitChildSID, 1, c.ChildSID.HasValue())
	w = SetBool(w, cif2BitCitedMessageID, 1, c.CitedMessageID.HasValue())
	w = SetBool(w, cif2BitControlleeID, 1, c.ControlleeID.HasValue())
	w = SetBool(w, cif2BitControlleeUUID, 1, c.ControlleeUUID.HasValue())
	w = SetBool(w, cif2BitControllerID, 1, c.ControllerID.HasValue())
	w = SetBool(w, cif2BitControllerUUID, 1, c.ControllerUUID.HasValue())
	w = SetBool(w, cif2BitOperatorID, 1, c.OperatorID.HasValue())
	w = SetBool(w, cif2BitPlatformID, 1, c.PlatformID.HasValue())
	w = SetBool(w, cif2BitStationID, 1, c.StationID.HasValue())
	return w
}

func (c CIF2) fieldsSize() int {
	n := 0
	for _, present := range []bool{
		c.CitedSID.HasValue(), c.SiblingSID.HasValue(), c.ParentSID.HasValue(),
		c.ChildSID.HasValue(), c.CitedMessageID.HasValue(), c.ControlleeID.HasValue(),
		c.ControllerID.HasValue(), c.OperatorID.HasValue(), c.PlatformID.HasValue(),
		c.StationID.HasValue(),
	} {
		if present {
			n += 4
		}
	}
	if c.ControlleeUUID.HasValue() {
		n += 16
	}
	if c.ControllerUUID.HasValue() {
		n += 16
	}
	return n
}

func (c CIF2) packFieldsInto(b []byte) (int, error) {
	off := 0
	putID := func(present bool, v uint32) {
		if present {
			binary.BigEndian.PutUint32(b[off:], v)
			off += 4
		}
	}
	putID(c.CitedSID.HasValue(), uint32(c.CitedSID.Value()))
	putID(c.SiblingSID.HasValue(), uint32(c.SiblingSID.Value()))
	putID(c.ParentSID.HasValue(), uint32(c.ParentSID.Value()))
	putID(c.ChildSID.HasValue(), uint32(c.ChildSID.Value()))
	putID(c.CitedMessageID.HasValue(), uint32(c.CitedMessageID.Value()))
	putID(c.ControlleeID.HasValue(), uint32(c.ControlleeID.Value()))
	if c.ControlleeUUID.HasValue() {
		if err := c.ControlleeUUID.Value().PackInto(b[off:]); err != nil {
			return 0, err
		}
		off += 16
	}
	putID(c.ControllerID.HasValue(), uint32(c.ControllerID.Value()))
	if c.ControllerUUID.HasValue() {
		if err := c.ControllerUUID.Value().PackInto(b[off:]); err != nil {
			return 0, err
		}
		off += 16
	}
	putID(c.OperatorID.HasValue(), uint32(c.OperatorID.Value()))
	putID(c.PlatformID.HasValue(), uint32(c.PlatformID.Value()))
	putID(c.StationID.HasValue(), uint32(c.StationID.Value()))
	return off, nil
}

func unpackCIF2Fields(word uint32, b []byte) (CIF2, int, error) {
	var c CIF2
	off := 0
	need := func(n int) error {
		if len(b) < off+n {
			return vrterr.New(vrterr.KindBufferTooShort, "unpackCIF2Fields", nil)
		}
		return nil
	}
	readID := func(bit int, set func(uint32)) error {
		if !GetBool(word, bit) {
			return nil
		}
		if err := need(4); err != nil {
			return err
		}
		set(binary.BigEndian.Uint32(b[off:]))
		off += 4
		return nil
	}
	if err := readID(cif2BitCitedSID, func(v uint32) { c.CitedSID = Some(StreamID(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitSiblingSID, func(v uint32) { c.SiblingSID = Some(StreamID(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitParentSID, func(v uint32) { c.ParentSID = Some(StreamID(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitChildSID, func(v uint32) { c.ChildSID = Some(StreamID(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitCitedMessageID, func(v uint32) { c.CitedMessageID = Some(MessageID(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitControlleeID, func(v uint32) { c.ControlleeID = Some(GenericID32(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if GetBool(word, cif2BitControlleeUUID) {
		if err := need(16); err != nil {
			return CIF2{}, 0, err
		}
		c.ControlleeUUID = Some(UnpackUUID(b[off:]))
		off += 16
	}
	if err := readID(cif2BitControllerID, func(v uint32) { c.ControllerID = Some(GenericID32(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if GetBool(word, cif2BitControllerUUID) {
		if err := need(16); err != nil {
			return CIF2{}, 0, err
		}
		c.ControllerUUID = Some(UnpackUUID(b[off:]))
		off += 16
	}
	if err := readID(cif2BitOperatorID, func(v uint32) { c.OperatorID = Some(GenericID32(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitPlatformID, func(v uint32) { c.PlatformID = Some(GenericID32(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	if err := readID(cif2BitStationID, func(v uint32) { c.StationID = Some(GenericID32(v)) }); err != nil {
		return CIF2{}, 0, err
	}
	return c, off, nil
}
