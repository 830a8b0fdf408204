package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// SSI is the Start/Stop-of-Sample-Interval enum carried by the trailer's
// sample-frame bits, per spec.md 4.8.
type SSI uint8

// SSI values.
const (
	SSISingle SSI = 0
	SSIFirst  SSI = 1
	SSIMiddle SSI = 2
	SSIFinal  SSI = 3
)

const trailerSize = 4 // bytes

// Trailer is the optional 32-bit word appended to signal-data packets when
// Header.TrailerIncluded() is set, per spec.md 4.8: twelve enable/indicator
// bit pairs in the high/low halves, a 2-bit sample-frame (SSI) indicator,
// and a trailing associated-context-packets count.
//
// CalibratedTime through SampleLoss mirror the same state/event concepts as
// StateEventIndicators (VITA 49.2 reuses the enable/indicator pairing
// between the two); AssociatedContextPacketCount is Optional rather than a
// plain uint8 because VITA 49.2 leaves the count meaningless unless its own
// enable bit is set (Open Question resolution, see DESIGN.md).
type Trailer struct {
	CalibratedTimeEnable    bool
	CalibratedTime          bool
	ValidDataEnable         bool
	ValidData               bool
	ReferenceLockEnable     bool
	ReferenceLock           bool
	AGCMGCEnable            bool
	AGCMGC                  bool
	DetectedSignalEnable    bool
	DetectedSignal          bool
	SpectralInversionEnable bool
	SpectralInversion       bool
	OverRangeEnable         bool
	OverRange               bool
	SampleLossEnable        bool
	SampleLoss              bool
	SampleFrame             SSI

	AssociatedContextPacketCount Optional[uint8] // 7 bits
}

// PackInto writes the 4-byte trailer in big-endian order.
func (t Trailer) PackInto(b []byte) error {
	if len(b) < trailerSize {
		return vrterr.New(vrterr.KindBufferTooShort, "Trailer.PackInto", nil)
	}
	var w uint32
	w = SetBool(w, 31, 1, t.CalibratedTimeEnable)
	w = SetBool(w, 30, 1, t.ValidDataEnable)
	w = SetBool(w, 29, 1, t.ReferenceLockEnable)
	w = SetBool(w, 28, 1, t.AGCMGCEnable)
	w = SetBool(w, 27, 1, t.DetectedSignalEnable)
	w = SetBool(w, 26, 1, t.SpectralInversionEnable)
	w = SetBool(w, 25, 1, t.OverRangeEnable)
	w = SetBool(w, 24, 1, t.SampleLossEnable)
	w = SetBool(w, 23, 1, true) // sample-frame-enable: SampleFrame is always meaningful on this struct
	w = SetBool(w, 22, 1, true)
	w = SetBool(w, 19, 1, t.CalibratedTime)
	w = SetBool(w, 18, 1, t.ValidData)
	w = SetBool(w, 17, 1, t.ReferenceLock)
	w = SetBool(w, 16, 1, t.AGCMGC)
	w = SetBool(w, 15, 1, t.DetectedSignal)
	w = SetBool(w, 14, 1, t.SpectralInversion)
	w = SetBool(w, 13, 1, t.OverRange)
	w = SetBool(w, 12, 1, t.SampleLoss)
	w = SetUint(w, 11, 2, uint64(t.SampleFrame))
	w = SetBool(w, 7, 1, t.AssociatedContextPacketCount.HasValue())
	w = SetUint(w, 6, 7, uint64(t.AssociatedContextPacketCount.Value()))
	binary.BigEndian.PutUint32(b, w)
	return nil
}

// UnpackTrailerFrom reads a 4-byte Trailer.
func UnpackTrailerFrom(b []byte) (Trailer, error) {
	if len(b) < trailerSize {
		return Trailer{}, vrterr.New(vrterr.KindBufferTooShort, "UnpackTrailerFrom", nil)
	}
	w := binary.BigEndian.Uint32(b)
	t := Trailer{
		CalibratedTimeEnable:    GetBool(w, 31),
		ValidDataEnable:         GetBool(w, 30),
		ReferenceLockEnable:     GetBool(w, 29),
		AGCMGCEnable:            GetBool(w, 28),
		DetectedSignalEnable:    GetBool(w, 27),
		SpectralInversionEnable: GetBool(w, 26),
		OverRangeEnable:         GetBool(w, 25),
		SampleLossEnable:        GetBool(w, 24),
		CalibratedTime:          GetBool(w, 19),
		ValidData:               GetBool(w, 18),
		ReferenceLock:           GetBool(w, 17),
		AGCMGC:                  GetBool(w, 16),
		DetectedSignal:          GetBool(w, 15),
		SpectralInversion:       GetBool(w, 14),
		OverRange:               GetBool(w, 13),
		SampleLoss:              GetBool(w, 12),
		SampleFrame:             SSI(GetUint(w, 11, 2)),
	}
	if GetBool(w, 7) {
		t.AssociatedContextPacketCount = Some(uint8(GetUint(w, 6, 7)))
	}
	return t, nil
}
