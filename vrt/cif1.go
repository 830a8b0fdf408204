package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// PolarizationAngles is the CIF1 Polarization field (VITA 49.2 9.4.9): tilt
// angle and ellipticity angle, each Q9.13 s16, packed into one 32-bit word.
// Values outside the Q9.13 s16 range [-4, 4) saturate on pack.
type PolarizationAngles struct {
	TiltAngle        float64 // radians, [-π/2, π/2]
	EllipticityAngle float64 // radians, [-π/4, π/4]
}

// PointingVector is the CIF1 3-D Pointing Vector field (VITA 49.2 9.4.1.1):
// elevation (Q9.7 s16) and azimuth (Q9.7 u16), packed into one 32-bit word.
type PointingVector struct {
	Elevation float64 // degrees, [-90, 90]
	Azimuth   float64 // degrees, [0, 359.9921875]
}

// BeamWidths is the CIF1 Beam Widths field (VITA 49.2 9.4.2): horizontal
// and vertical beamwidth, each Q9.7 s16, packed into one 32-bit word.
type BeamWidths struct {
	Horizontal float64 // degrees
	Vertical   float64 // degrees
}

// SNRNoiseFigure is the CIF1 SNR/Noise Figure field (VITA 49.2 9.5.7): two
// Q9.7 s16 subfields packed into one 32-bit word.
type SNRNoiseFigure struct {
	SNR          float64 // dB
	NoiseFigure  float64 // dB
}

// VersionInformation is the CIF1 Version Information field (VITA 49.2
// 9.10.4): a year/day build timestamp plus revision and user-defined code.
type VersionInformation struct {
	Year        uint8  // years since 2000, 7 bits
	Day         uint16 // day of year, 9 bits
	Revision    uint8  // 6 bits
	UserDefined uint16 // 10 bits
}

// BufferSize is the CIF1 Buffer Size field (VITA 49.2 9.10.8): read and
// write buffer sizes in bytes, each 16 bits, packed into one 32-bit word.
type BufferSize struct {
	ReadSize  uint16
	WriteSize uint16
}

// CIF1 is the second Context Indicator Field word and the fields it gates.
// 14 of VITA 49.2 ch. 9's ~25 CIF1 catalog entries have an assigned payload
// slot here; the rest are variable-length structures (spectrum records,
// scan descriptors) deferred for now (see SPEC_FULL.md 4.7 for the exact
// list).
type CIF1 struct {
	PhaseOffset    Optional[float64] // degrees, Q9.7 s16 right-justified in u32
	Polarization   Optional[PolarizationAngles]
	PointingVector Optional[PointingVector]
	BeamWidths     Optional[BeamWidths]
	Range          Optional[float64] // meters, Q44.20 s64
	SNRNoiseFigure Optional[SNRNoiseFigure]
	AuxFrequency   Optional[float64] // Hz, Q44.20 s64
	AuxGain        Optional[Gain]
	AuxBandwidth   Optional[float64] // Hz, Q44.20 u64
	DiscreteIO32   Optional[uint32]
	DiscreteIO64   Optional[uint64]
	HealthStatus   Optional[uint16]
	VersionInfo    Optional[VersionInformation]
	BufferSize     Optional[BufferSize]
}

const (
	cif1BitPhaseOffset    = 31
	cif1BitPolarization   = 30
	cif1BitPointingVector = 29
	cif1BitBeamWidths     = 25
	cif1BitRange          = 24
	cif1BitSNRNoiseFigure = 18
	cif1BitAuxFrequency   = 17
	cif1BitAuxGain        = 16
	cif1BitAuxBandwidth   = 15
	cif1BitDiscreteIO32   = 8
	cif1BitDiscreteIO64   = 7
	cif1BitHealthStatus   = 6
	cif1BitVersionInfo    = 4
	cif1BitBufferSize     = 0
)

func packPolarizationAngles(p PolarizationAngles, b []byte) {
	var w uint32
	w = SetInt(w, 31, 16, int64(PolarizationToInt16(p.TiltAngle)))
	w = SetInt(w, 15, 16, int64(PolarizationToInt16(p.EllipticityAngle)))
	binary.BigEndian.PutUint32(b, w)
}

func unpackPolarizationAngles(b []byte) PolarizationAngles {
	w := binary.BigEndian.Uint32(b)
	return PolarizationAngles{
		TiltAngle:        PolarizationFromInt16(int16(GetInt(w, 31, 16))),
		EllipticityAngle: PolarizationFromInt16(int16(GetInt(w, 15, 16))),
	}
}

func packPointingVector(p PointingVector, b []byte) {
	var w uint32
	w = SetInt(w, 31, 16, int64(GainToInt16(p.Elevation)))
	w = SetUint(w, 15, 16, uint64(NewQ[uint16](RadixElevationQ9_7).ToInt(p.Azimuth)))
	binary.BigEndian.PutUint32(b, w)
}

func unpackPointingVector(b []byte) PointingVector {
	w := binary.BigEndian.Uint32(b)
	return PointingVector{
		Elevation: GainFromInt16(int16(GetInt(w, 31, 16))),
		Azimuth:   NewQ[uint16](RadixElevationQ9_7).ToFloat(uint16(GetUint(w, 15, 16))),
	}
}

func packBeamWidths(bw BeamWidths, b []byte) {
	var w uint32
	w = SetInt(w, 31, 16, int64(GainToInt16(bw.Horizontal)))
	w = SetInt(w, 15, 16, int64(GainToInt16(bw.Vertical)))
	binary.BigEndian.PutUint32(b, w)
}

func unpackBeamWidths(b []byte) BeamWidths {
	w := binary.BigEndian.Uint32(b)
	return BeamWidths{
		Horizontal: GainFromInt16(int16(GetInt(w, 31, 16))),
		Vertical:   GainFromInt16(int16(GetInt(w, 15, 16))),
	}
}

func packSNRNoiseFigure(s SNRNoiseFigure, b []byte) {
	var w uint32
	w = SetInt(w, 31, 16, int64(GainToInt16(s.SNR)))
	w = SetInt(w, 15, 16, int64(GainToInt16(s.NoiseFigure)))
	binary.BigEndian.PutUint32(b, w)
}

func unpackSNRNoiseFigure(b []byte) SNRNoiseFigure {
	w := binary.BigEndian.Uint32(b)
	return SNRNoiseFigure{
		SNR:         GainFromInt16(int16(GetInt(w, 31, 16))),
		NoiseFigure: GainFromInt16(int16(GetInt(w, 15, 16))),
	}
}

func packVersionInformation(v VersionInformation, b []byte) {
	var w uint32
	w = SetUint(w, 31, 7, uint64(v.Year))
	w = SetUint(w, 24, 9, uint64(v.Day))
	w = SetUint(w, 15, 6, uint64(v.Revision))
	w = SetUint(w, 9, 10, uint64(v.UserDefined))
	binary.BigEndian.PutUint32(b, w)
}

func unpackVersionInformation(b []byte) VersionInformation {
	w := binary.BigEndian.Uint32(b)
	return VersionInformation{
		Year:        uint8(GetUint(w, 31, 7)),
		Day:         uint16(GetUint(w, 24, 9)),
		Revision:    uint8(GetUint(w, 15, 6)),
		UserDefined: uint16(GetUint(w, 9, 10)),
	}
}

func packBufferSize(s BufferSize, b []byte) {
	var w uint32
	w = SetUint(w, 31, 16, uint64(s.ReadSize))
	w = SetUint(w, 15, 16, uint64(s.WriteSize))
	binary.BigEndian.PutUint32(b, w)
}

func unpackBufferSize(b []byte) BufferSize {
	w := binary.BigEndian.Uint32(b)
	return BufferSize{
		ReadSize:  uint16(GetUint(w, 31, 16)),
		WriteSize: uint16(GetUint(w, 15, 16)),
	}
}

func (c CIF1) indicatorWord() uint32 {
	var w uint32
	w = SetBool(w, cif1BitPhaseOffset, 1, c.PhaseOffset.HasValue())
	w = SetBool(w, cif1BitPolarization, 1, c.Polarization.HasValue())
	w = SetBool(w, cif1BitPointingVector, 1, c.PointingVector.HasValue())
	w = SetBool(w, cif1BitBeamWidths, 1, c.BeamWidths.HasValue())
	w = SetBool(w, cif1BitRange, 1, c.Range.HasValue())
	w = SetBool(w, cif1BitSNRNoiseFigure, 1, c.SNRNoiseFigure.HasValue())
	w = SetBool(w, cif1BitAuxFrequency, 1, c.AuxFrequency.HasValue())
	w = SetBool(w, cif1BitAuxGain, 1, c.AuxGain.HasValue())
	w = SetBool(w, cif1BitAuxBandwidth, 1, c.AuxBandwidth.HasValue())
	w = SetBool(w, cif1BitDiscreteIO32, 1, c.DiscreteIO32.HasValue())
	w = SetBool(w, cif1BitDiscreteIO64, 1, c.DiscreteIO64.HasValue())
	w = SetBool(w, cif1BitHealthStatus, 1, c.HealthStatus.HasValue())
	w = SetBool(w, cif1BitVersionInfo, 1, c.VersionInfo.HasValue())
	w = SetBool(w, cif1BitBufferSize, 1, c.BufferSize.HasValue())
	return w
}

func (c CIF1) fieldsSize() int {
	n := 0
	if c.PhaseOffset.HasValue() {
		n += 4
	}
	if c.Polarization.HasValue() {
		n += 4
	}
	if c.PointingVector.HasValue() {
		n += 4
	}
	if c.BeamWidths.HasValue() {
		n += 4
	}
	if c.Range.HasValue() {
		n += 8
	}
	if c.SNRNoiseFigure.HasValue() {
		n += 4
	}
	if c.AuxFrequency.HasValue() {
		n += 8
	}
	if c.AuxGain.HasValue() {
		n += 4
	}
	if c.AuxBandwidth.HasValue() {
		n += 8
	}
	if c.DiscreteIO32.HasValue() {
		n += 4
	}
	if c.DiscreteIO64.HasValue() {
		n += 8
	}
	if c.HealthStatus.HasValue() {
		n += 4
	}
	if c.VersionInfo.HasValue() {
		n += 4
	}
	if c.BufferSize.HasValue() {
		n += 4
	}
	return n
}

func (c CIF1) packFieldsInto(b []byte) (int, error) {
	off := 0
	if v, ok := c.PhaseOffset.Value(), c.PhaseOffset.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], packS16InU32(GainToInt16(v)))
		off += 4
	}
	if v, ok := c.Polarization.Value(), c.Polarization.HasValue(); ok {
		packPolarizationAngles(v, b[off:])
		off += 4
	}
	if v, ok := c.PointingVector.Value(), c.PointingVector.HasValue(); ok {
		packPointingVector(v, b[off:])
		off += 4
	}
	if v, ok := c.BeamWidths.Value(), c.BeamWidths.HasValue(); ok {
		packBeamWidths(v, b[off:])
		off += 4
	}
	if v, ok := c.Range.Value(), c.Range.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.SNRNoiseFigure.Value(), c.SNRNoiseFigure.HasValue(); ok {
		packSNRNoiseFigure(v, b[off:])
		off += 4
	}
	if v, ok := c.AuxFrequency.Value(), c.AuxFrequency.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.AuxGain.Value(), c.AuxGain.HasValue(); ok {
		packGain(v, b[off:])
		off += 4
	}
	if v, ok := c.AuxBandwidth.Value(), c.AuxBandwidth.HasValue(); ok {
		n, err := BandwidthToUint64(v)
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(b[off:], n)
		off += 8
	}
	if v, ok := c.DiscreteIO32.Value(), c.DiscreteIO32.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], v)
		off += 4
	}
	if v, ok := c.DiscreteIO64.Value(), c.DiscreteIO64.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], v)
		off += 8
	}
	if v, ok := c.HealthStatus.Value(), c.HealthStatus.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], uint32(v))
		off += 4
	}
	if v, ok := c.VersionInfo.Value(), c.VersionInfo.HasValue(); ok {
		packVersionInformation(v, b[off:])
		off += 4
	}
	if v, ok := c.BufferSize.Value(), c.BufferSize.HasValue(); ok {
		packBufferSize(v, b[off:])
		off += 4
	}
	return off, nil
}

func unpackCIF1Fields(word uint32, b []byte) (CIF1, int, error) {
	var c CIF1
	off := 0
	need := func(n int) error {
		if len(b) < off+n {
			return vrterr.New(vrterr.KindBufferTooShort, "unpackCIF1Fields", nil)
		}
		return nil
	}
	if GetBool(word, cif1BitPhaseOffset) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.PhaseOffset = Some(GainFromInt16(unpackS16FromU32(binary.BigEndian.Uint32(b[off:]))))
		off += 4
	}
	if GetBool(word, cif1BitPolarization) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.Polarization = Some(unpackPolarizationAngles(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitPointingVector) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.PointingVector = Some(unpackPointingVector(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitBeamWidths) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.BeamWidths = Some(unpackBeamWidths(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitRange) {
		if err := need(8); err != nil {
			return CIF1{}, 0, err
		}
		c.Range = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif1BitSNRNoiseFigure) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.SNRNoiseFigure = Some(unpackSNRNoiseFigure(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitAuxFrequency) {
		if err := need(8); err != nil {
			return CIF1{}, 0, err
		}
		c.AuxFrequency = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif1BitAuxGain) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.AuxGain = Some(unpackGain(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitAuxBandwidth) {
		if err := need(8); err != nil {
			return CIF1{}, 0, err
		}
		c.AuxBandwidth = Some(BandwidthFromUint64(binary.BigEndian.Uint64(b[off:])))
		off += 8
	}
	if GetBool(word, cif1BitDiscreteIO32) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.DiscreteIO32 = Some(binary.BigEndian.Uint32(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitDiscreteIO64) {
		if err := need(8); err != nil {
			return CIF1{}, 0, err
		}
		c.DiscreteIO64 = Some(binary.BigEndian.Uint64(b[off:]))
		off += 8
	}
	if GetBool(word, cif1BitHealthStatus) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.HealthStatus = Some(uint16(binary.BigEndian.Uint32(b[off:])))
		off += 4
	}
	if GetBool(word, cif1BitVersionInfo) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.VersionInfo = Some(unpackVersionInformation(b[off:]))
		off += 4
	}
	if GetBool(word, cif1BitBufferSize) {
		if err := need(4); err != nil {
			return CIF1{}, 0, err
		}
		c.BufferSize = Some(unpackBufferSize(b[off:]))
		off += 4
	}
	return c, off, nil
}
