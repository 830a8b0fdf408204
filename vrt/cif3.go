package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// ThresholdField is the CIF3 Threshold field (VITA 49.2 9.5.9): an upper
// and lower bound, each Q9.7 s16, packed into one 32-bit word the same way
// Gain packs its two stages.
type ThresholdField struct {
	Upper float64 // dBm
	Lower float64 // dBm
}

func packThreshold(t ThresholdField, b []byte) {
	var w uint32
	w = SetInt(w, 31, 16, int64(GainToInt16(t.Upper)))
	w = SetInt(w, 15, 16, int64(GainToInt16(t.Lower)))
	binary.BigEndian.PutUint32(b, w)
}

func unpackThreshold(b []byte) ThresholdField {
	w := binary.BigEndian.Uint32(b)
	return ThresholdField{
		Upper: GainFromInt16(int16(GetInt(w, 31, 16))),
		Lower: GainFromInt16(int16(GetInt(w, 15, 16))),
	}
}

// CIF3 is the fourth Context Indicator Field word and the timing/quality
// fields it gates (VITA 49.2 ch. 9.7), with all five catalog entries
// implemented (see SPEC_FULL.md 4.7). CIF3's Threshold reuses ThresholdField
// rather than duplicating a second upper/lower-bound composite, per
// spec.md 9's DRY note.
type CIF3 struct {
	TimestampDetails Optional[uint32]
	TimestampSkew    Optional[FractionalTimestamp]
	Jitter           Optional[float64] // Hz, Q44.20 s64
	BitErrorRate     Optional[float64] // Q44.20 s64
	Threshold        Optional[ThresholdField]
}

const (
	cif3BitTimestampDetails = 31
	cif3BitTimestampSkew    = 30
	cif3BitJitter           = 22
	cif3BitBitErrorRate     = 4
	cif3BitThreshold        = 0
)

func (c CIF3) indicatorWord() uint32 {
	var w uint32
	w = SetBool(w, cif3BitTimestampDetails, 1, c.TimestampDetails.HasValue())
	w = SetBool(w, cif3BitTimestampSkew, 1, c.TimestampSkew.HasValue())
	w = SetBool(w, cif3BitJitter, 1, c.Jitter.HasValue())
	w = SetBool(w, cif3BitBitErrorRate, 1, c.BitErrorRate.HasValue())
	w = SetBool(w, cif3BitThreshold, 1, c.Threshold.HasValue())
	return w
}

func (c CIF3) fieldsSize() int {
	n := 0
	if c.TimestampDetails.HasValue() {
		n += 4
	}
	if c.TimestampSkew.HasValue() {
		n += 8
	}
	if c.Jitter.HasValue() {
		n += 8
	}
	if c.BitErrorRate.HasValue() {
		n += 8
	}
	if c.Threshold.HasValue() {
		n += 4
	}
	return n
}

func (c CIF3) packFieldsInto(b []byte) int {
	off := 0
	if v, ok := c.TimestampDetails.Value(), c.TimestampDetails.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], v)
		off += 4
	}
	if v, ok := c.TimestampSkew.Value(), c.TimestampSkew.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(v))
		off += 8
	}
	if v, ok := c.Jitter.Value(), c.Jitter.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.BitErrorRate.Value(), c.BitErrorRate.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.Threshold.Value(), c.Threshold.HasValue(); ok {
		packThreshold(v, b[off:])
		off += 4
	}
	return off
}

func unpackCIF3Fields(word uint32, b []byte) (CIF3, int, error) {
	var c CIF3
	off := 0
	need := func(n int) error {
		if len(b) < off+n {
			return vrterr.New(vrterr.KindBufferTooShort, "unpackCIF3Fields", nil)
		}
		return nil
	}
	if GetBool(word, cif3BitTimestampDetails) {
		if err := need(4); err != nil {
			return CIF3{}, 0, err
		}
		c.TimestampDetails = Some(binary.BigEndian.Uint32(b[off:]))
		off += 4
	}
	if GetBool(word, cif3BitTimestampSkew) {
		if err := need(8); err != nil {
			return CIF3{}, 0, err
		}
		c.TimestampSkew = Some(FractionalTimestamp(binary.BigEndian.Uint64(b[off:])))
		off += 8
	}
	if GetBool(word, cif3BitJitter) {
		if err := need(8); err != nil {
			return CIF3{}, 0, err
		}
		c.Jitter = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif3BitBitErrorRate) {
		if err := need(8); err != nil {
			return CIF3{}, 0, err
		}
		c.BitErrorRate = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif3BitThreshold) {
		if err := need(4); err != nil {
			return CIF3{}, 0, err
		}
		c.Threshold = Some(unpackThreshold(b[off:]))
		off += 4
	}
	return c, off, nil
}
