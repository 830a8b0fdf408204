package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// CIF0 is the first Context Indicator Field word, present on every context
// and command packet, plus the payload fields it gates. Bit 31 (Change
// Indicator) is not a presence bit and is carried directly on the struct;
// every other field is an Optional whose presence exactly mirrors its CIF0
// enable bit, per spec.md 4.7's enable-bit/presence invariant: setting an
// Optional and packing it always asserts the matching bit, and an unset
// enable bit on unpack always yields an unset Optional.
type CIF0 struct {
	ChangeIndicator bool

	ReferencePointID          Optional[GenericID32]
	Bandwidth                 Optional[float64] // Hz, Q44.20 u64
	IFReferenceFrequency      Optional[float64] // Hz, Q44.20 s64
	RFReferenceFrequency      Optional[float64] // Hz, Q44.20 s64
	RFReferenceFrequencyOffset Optional[float64] // Hz, Q44.20 s64
	IFBandOffset              Optional[float64] // Hz, Q44.20 s64
	ReferenceLevel            Optional[float64] // dBm, Q9.7 s16 right-justified in u32
	Gain                      Optional[Gain]
	OverRangeCount            Optional[uint32]
	SampleRate                Optional[float64] // Hz, Q27.5 u64
	TimestampAdjustment       Optional[uint64]  // picoseconds
	TimestampCalibrationTime  Optional[uint32]  // seconds
	Temperature               Optional[float64] // degrees C, Q9.6 s16 right-justified in u32
	DeviceID                  Optional[DeviceIdentifier]
	StateEventIndicators      Optional[StateEventIndicators]
	PayloadFormat             Optional[PayloadFormat]
	FormattedGPS              Optional[Geolocation]
	FormattedINS              Optional[Geolocation]
	ECEFEphemeris             Optional[Ephemeris]
	RelativeEphemeris         Optional[Ephemeris]
	EphemerisRefID            Optional[GenericID32]
	GPSASCII                  Optional[GPSASCII]
	ContextAssociationLists   Optional[ContextAssociationLists]

	CIF1 *CIF1
	CIF2 *CIF2
	CIF3 *CIF3
	CIF7 *CIF7
}

// CIF0 enable-bit positions, VITA 49.2 ch. 9 (bit 31 down to bit 0).
const (
	cif0BitChangeIndicator           = 31
	cif0BitReferencePointID          = 30
	cif0BitBandwidth                 = 29
	cif0BitIFReferenceFrequency      = 28
	cif0BitRFReferenceFrequency      = 27
	cif0BitRFReferenceFrequencyOffset = 26
	cif0BitIFBandOffset              = 25
	cif0BitReferenceLevel            = 24
	cif0BitGain                      = 23
	cif0BitOverRangeCount            = 22
	cif0BitSampleRate                = 21
	cif0BitTimestampAdjustment       = 20
	cif0BitTimestampCalibrationTime  = 19
	cif0BitTemperature               = 18
	cif0BitDeviceID                  = 17
	cif0BitStateEventIndicators      = 16
	cif0BitPayloadFormat             = 15
	cif0BitFormattedGPS              = 14
	cif0BitFormattedINS              = 13
	cif0BitECEFEphemeris             = 12
	cif0BitRelativeEphemeris         = 11
	cif0BitEphemerisRefID            = 10
	cif0BitGPSASCII                  = 9
	cif0BitContextAssociationLists   = 8
	cif0BitCIF7Enable                = 3
	cif0BitCIF3Enable                = 2
	cif0BitCIF2Enable                = 1
	cif0BitCIF1Enable                = 0
)

const cif0WordSize = 4 // bytes

func packS16InU32(v int16) uint32 {
	var w uint32
	w = SetInt(w, 15, 16, int64(v))
	return w
}

func unpackS16FromU32(w uint32) int16 {
	return int16(GetInt(w, 15, 16))
}

// indicatorWord computes the CIF0 enable word from which Optional fields in
// c are present, OR'd with c.ChangeIndicator at bit 31.
func (c CIF0) indicatorWord() uint32 {
	var w uint32
	w = SetBool(w, cif0BitChangeIndicator, 1, c.ChangeIndicator)
	w = SetBool(w, cif0BitReferencePointID, 1, c.ReferencePointID.HasValue())
	w = SetBool(w, cif0BitBandwidth, 1, c.Bandwidth.HasValue())
	w = SetBool(w, cif0BitIFReferenceFrequency, 1, c.IFReferenceFrequency.HasValue())
	w = SetBool(w, cif0BitRFReferenceFrequency, 1, c.RFReferenceFrequency.HasValue())
	w = SetBool(w, cif0BitRFReferenceFrequencyOffset, 1, c.RFReferenceFrequencyOffset.HasValue())
	w = SetBool(w, cif0BitIFBandOffset, 1, c.IFBandOffset.HasValue())
	w = SetBool(w, cif0BitReferenceLevel, 1, c.ReferenceLevel.HasValue())
	w = SetBool(w, cif0BitGain, 1, c.Gain.HasValue())
	w = SetBool(w, cif0BitOverRangeCount, 1, c.OverRangeCount.HasValue())
	w = SetBool(w, cif0BitSampleRate, 1, c.SampleRate.HasValue())
	w = SetBool(w, cif0BitTimestampAdjustment, 1, c.TimestampAdjustment.HasValue())
	w = SetBool(w, cif0BitTimestampCalibrationTime, 1, c.TimestampCalibrationTime.HasValue())
	w = SetBool(w, cif0BitTemperature, 1, c.Temperature.HasValue())
	w = SetBool(w, cif0BitDeviceID, 1, c.DeviceID.HasValue())
	w = SetBool(w, cif0BitStateEventIndicators, 1, c.StateEventIndicators.HasValue())
	w = SetBool(w, cif0BitPayloadFormat, 1, c.PayloadFormat.HasValue())
	w = SetBool(w, cif0BitFormattedGPS, 1, c.FormattedGPS.HasValue())
	w = SetBool(w, cif0BitFormattedINS, 1, c.FormattedINS.HasValue())
	w = SetBool(w, cif0BitECEFEphemeris, 1, c.ECEFEphemeris.HasValue())
	w = SetBool(w, cif0BitRelativeEphemeris, 1, c.RelativeEphemeris.HasValue())
	w = SetBool(w, cif0BitEphemerisRefID, 1, c.EphemerisRefID.HasValue())
	w = SetBool(w, cif0BitGPSASCII, 1, c.GPSASCII.HasValue())
	w = SetBool(w, cif0BitContextAssociationLists, 1, c.ContextAssociationLists.HasValue())
	w = SetBool(w, cif0BitCIF1Enable, 1, c.CIF1 != nil)
	w = SetBool(w, cif0BitCIF2Enable, 1, c.CIF2 != nil)
	w = SetBool(w, cif0BitCIF3Enable, 1, c.CIF3 != nil)
	w = SetBool(w, cif0BitCIF7Enable, 1, c.CIF7 != nil)
	return w
}

// Size returns the number of bytes CIF0 (its own indicator word, any
// enabled CIF1/2/3/7 indicator words, and every enabled field payload)
// occupies on the wire.
func (c CIF0) Size() int {
	n := cif0WordSize
	if c.ReferencePointID.HasValue() {
		n += 4
	}
	if c.Bandwidth.HasValue() {
		n += 8
	}
	if c.IFReferenceFrequency.HasValue() {
		n += 8
	}
	if c.RFReferenceFrequency.HasValue() {
		n += 8
	}
	if c.RFReferenceFrequencyOffset.HasValue() {
		n += 8
	}
	if c.IFBandOffset.HasValue() {
		n += 8
	}
	if c.ReferenceLevel.HasValue() {
		n += 4
	}
	if c.Gain.HasValue() {
		n += 4
	}
	if c.OverRangeCount.HasValue() {
		n += 4
	}
	if c.SampleRate.HasValue() {
		n += 8
	}
	if c.TimestampAdjustment.HasValue() {
		n += 8
	}
	if c.TimestampCalibrationTime.HasValue() {
		n += 4
	}
	if c.Temperature.HasValue() {
		n += 4
	}
	if c.DeviceID.HasValue() {
		n += 8
	}
	if c.StateEventIndicators.HasValue() {
		n += 4
	}
	if c.PayloadFormat.HasValue() {
		n += payloadFormatSize
	}
	if c.FormattedGPS.HasValue() {
		n += geolocationSize
	}
	if c.FormattedINS.HasValue() {
		n += geolocationSize
	}
	if c.ECEFEphemeris.HasValue() {
		n += ephemerisSize
	}
	if c.RelativeEphemeris.HasValue() {
		n += ephemerisSize
	}
	if c.EphemerisRefID.HasValue() {
		n += 4
	}
	if c.GPSASCII.HasValue() {
		n += c.GPSASCII.Value().size()
	}
	if c.ContextAssociationLists.HasValue() {
		n += c.ContextAssociationLists.Value().size()
	}
	if c.CIF1 != nil {
		n += cif0WordSize + c.CIF1.fieldsSize()
	}
	if c.CIF2 != nil {
		n += cif0WordSize + c.CIF2.fieldsSize()
	}
	if c.CIF3 != nil {
		n += cif0WordSize + c.CIF3.fieldsSize()
	}
	if c.CIF7 != nil {
		n += cif0WordSize
	}
	return n
}

// PackInto writes CIF0's indicator word, any enabled CIF1/2/3/7 indicator
// words, and every enabled field payload into b in strictly descending
// bit-position order, per spec.md 4.7's emission-order tie-break.
func (c CIF0) PackInto(b []byte) (int, error) {
	if len(b) < c.Size() {
		return 0, vrterr.New(vrterr.KindBufferTooShort, "CIF0.PackInto", nil)
	}
	binary.BigEndian.PutUint32(b, c.indicatorWord())
	off := cif0WordSize
	if c.CIF1 != nil {
		binary.BigEndian.PutUint32(b[off:], c.CIF1.indicatorWord())
		off += cif0WordSize
	}
	if c.CIF2 != nil {
		binary.BigEndian.PutUint32(b[off:], c.CIF2.indicatorWord())
		off += cif0WordSize
	}
	if c.CIF3 != nil {
		binary.BigEndian.PutUint32(b[off:], c.CIF3.indicatorWord())
		off += cif0WordSize
	}
	if c.CIF7 != nil {
		binary.BigEndian.PutUint32(b[off:], c.CIF7.indicatorWord())
		off += cif0WordSize
	}

	if v, ok := c.ReferencePointID.Value(), c.ReferencePointID.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], uint32(v))
		off += 4
	}
	if v, ok := c.Bandwidth.Value(), c.Bandwidth.HasValue(); ok {
		n, err := BandwidthToUint64(v)
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(b[off:], n)
		off += 8
	}
	if v, ok := c.IFReferenceFrequency.Value(), c.IFReferenceFrequency.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.RFReferenceFrequency.Value(), c.RFReferenceFrequency.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.RFReferenceFrequencyOffset.Value(), c.RFReferenceFrequencyOffset.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.IFBandOffset.Value(), c.IFBandOffset.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], uint64(FrequencyToInt64(v)))
		off += 8
	}
	if v, ok := c.ReferenceLevel.Value(), c.ReferenceLevel.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], packS16InU32(GainToInt16(v)))
		off += 4
	}
	if v, ok := c.Gain.Value(), c.Gain.HasValue(); ok {
		packGain(v, b[off:])
		off += 4
	}
	if v, ok := c.OverRangeCount.Value(), c.OverRangeCount.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], v)
		off += 4
	}
	if v, ok := c.SampleRate.Value(), c.SampleRate.HasValue(); ok {
		n, err := SampleRateToUint64(v)
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(b[off:], n)
		off += 8
	}
	if v, ok := c.TimestampAdjustment.Value(), c.TimestampAdjustment.HasValue(); ok {
		binary.BigEndian.PutUint64(b[off:], v)
		off += 8
	}
	if v, ok := c.TimestampCalibrationTime.Value(), c.TimestampCalibrationTime.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], v)
		off += 4
	}
	if v, ok := c.Temperature.Value(), c.Temperature.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], packS16InU32(TemperatureToInt16(v)))
		off += 4
	}
	if v, ok := c.DeviceID.Value(), c.DeviceID.HasValue(); ok {
		packDeviceIdentifier(v, b[off:])
		off += 8
	}
	if v, ok := c.StateEventIndicators.Value(), c.StateEventIndicators.HasValue(); ok {
		packStateEventIndicators(v, b[off:])
		off += 4
	}
	if v, ok := c.PayloadFormat.Value(), c.PayloadFormat.HasValue(); ok {
		packPayloadFormat(v, b[off:])
		off += payloadFormatSize
	}
	if v, ok := c.FormattedGPS.Value(), c.FormattedGPS.HasValue(); ok {
		packGeolocation(v, b[off:])
		off += geolocationSize
	}
	if v, ok := c.FormattedINS.Value(), c.FormattedINS.HasValue(); ok {
		packGeolocation(v, b[off:])
		off += geolocationSize
	}
	if v, ok := c.ECEFEphemeris.Value(), c.ECEFEphemeris.HasValue(); ok {
		packEphemeris(v, b[off:])
		off += ephemerisSize
	}
	if v, ok := c.RelativeEphemeris.Value(), c.RelativeEphemeris.HasValue(); ok {
		packEphemeris(v, b[off:])
		off += ephemerisSize
	}
	if v, ok := c.EphemerisRefID.Value(), c.EphemerisRefID.HasValue(); ok {
		binary.BigEndian.PutUint32(b[off:], uint32(v))
		off += 4
	}
	if v, ok := c.GPSASCII.Value(), c.GPSASCII.HasValue(); ok {
		off += v.packInto(b[off:])
	}
	if v, ok := c.ContextAssociationLists.Value(), c.ContextAssociationLists.HasValue(); ok {
		off += v.packInto(b[off:])
	}
	if c.CIF1 != nil {
		n, err := c.CIF1.packFieldsInto(b[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}
	if c.CIF2 != nil {
		n, err := c.CIF2.packFieldsInto(b[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}
	if c.CIF3 != nil {
		off += c.CIF3.packFieldsInto(b[off:])
	}
	return off, nil
}

// UnpackCIF0From reads a CIF0 and its enabled fields from b, returning the
// number of bytes consumed.
func UnpackCIF0From(b []byte) (CIF0, int, error) {
	if len(b) < cif0WordSize {
		return CIF0{}, 0, vrterr.New(vrterr.KindBufferTooShort, "UnpackCIF0From", nil)
	}
	word := binary.BigEndian.Uint32(b)
	var c CIF0
	c.ChangeIndicator = GetBool(word, cif0BitChangeIndicator)
	off := cif0WordSize

	needCIF1 := GetBool(word, cif0BitCIF1Enable)
	needCIF2 := GetBool(word, cif0BitCIF2Enable)
	needCIF3 := GetBool(word, cif0BitCIF3Enable)
	needCIF7 := GetBool(word, cif0BitCIF7Enable)

	var cif1Word, cif2Word, cif3Word, cif7Word uint32
	if needCIF1 {
		if len(b) < off+4 {
			return CIF0{}, 0, vrterr.New(vrterr.KindBufferTooShort, "UnpackCIF0From", nil)
		}
		cif1Word = binary.BigEndian.Uint32(b[off:])
		off += 4
	}
	if needCIF2 {
		if len(b) < off+4 {
			return CIF0{}, 0, vrterr.New(vrterr.KindBufferTooShort, "UnpackCIF0From", nil)
		}
		cif2Word = binary.BigEndian.Uint32(b[off:])
		off += 4
	}
	if needCIF3 {
		if len(b) < off+4 {
			return CIF0{}, 0, vrterr.New(vrterr.KindBufferTooShort, "UnpackCIF0From", nil)
		}
		cif3Word = binary.BigEndian.Uint32(b[off:])
		off += 4
	}
	if needCIF7 {
		if len(b) < off+4 {
			return CIF0{}, 0, vrterr.New(vrterr.KindBufferTooShort, "UnpackCIF0From", nil)
		}
		cif7Word = binary.BigEndian.Uint32(b[off:])
		off += 4
	}

	need := func(n int) error {
		if len(b) < off+n {
			return vrterr.New(vrterr.KindBufferTooShort, "UnpackCIF0From", nil)
		}
		return nil
	}

	if GetBool(word, cif0BitReferencePointID) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.ReferencePointID = Some(GenericID32(binary.BigEndian.Uint32(b[off:])))
		off += 4
	}
	if GetBool(word, cif0BitBandwidth) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.Bandwidth = Some(BandwidthFromUint64(binary.BigEndian.Uint64(b[off:])))
		off += 8
	}
	if GetBool(word, cif0BitIFReferenceFrequency) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.IFReferenceFrequency = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif0BitRFReferenceFrequency) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.RFReferenceFrequency = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif0BitRFReferenceFrequencyOffset) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.RFReferenceFrequencyOffset = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif0BitIFBandOffset) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.IFBandOffset = Some(FrequencyFromInt64(int64(binary.BigEndian.Uint64(b[off:]))))
		off += 8
	}
	if GetBool(word, cif0BitReferenceLevel) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.ReferenceLevel = Some(GainFromInt16(unpackS16FromU32(binary.BigEndian.Uint32(b[off:]))))
		off += 4
	}
	if GetBool(word, cif0BitGain) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.Gain = Some(unpackGain(b[off:]))
		off += 4
	}
	if GetBool(word, cif0BitOverRangeCount) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.OverRangeCount = Some(binary.BigEndian.Uint32(b[off:]))
		off += 4
	}
	if GetBool(word, cif0BitSampleRate) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.SampleRate = Some(SampleRateFromUint64(binary.BigEndian.Uint64(b[off:])))
		off += 8
	}
	if GetBool(word, cif0BitTimestampAdjustment) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.TimestampAdjustment = Some(binary.BigEndian.Uint64(b[off:]))
		off += 8
	}
	if GetBool(word, cif0BitTimestampCalibrationTime) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.TimestampCalibrationTime = Some(binary.BigEndian.Uint32(b[off:]))
		off += 4
	}
	if GetBool(word, cif0BitTemperature) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.Temperature = Some(TemperatureFromInt16(unpackS16FromU32(binary.BigEndian.Uint32(b[off:]))))
		off += 4
	}
	if GetBool(word, cif0BitDeviceID) {
		if err := need(8); err != nil {
			return CIF0{}, 0, err
		}
		c.DeviceID = Some(unpackDeviceIdentifier(b[off:]))
		off += 8
	}
	if GetBool(word, cif0BitStateEventIndicators) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.StateEventIndicators = Some(unpackStateEventIndicators(b[off:]))
		off += 4
	}
	if GetBool(word, cif0BitPayloadFormat) {
		if err := need(payloadFormatSize); err != nil {
			return CIF0{}, 0, err
		}
		c.PayloadFormat = Some(unpackPayloadFormat(b[off:]))
		off += payloadFormatSize
	}
	if GetBool(word, cif0BitFormattedGPS) {
		if err := need(geolocationSize); err != nil {
			return CIF0{}, 0, err
		}
		c.FormattedGPS = Some(unpackGeolocation(b[off:]))
		off += geolocationSize
	}
	if GetBool(word, cif0BitFormattedINS) {
		if err := need(geolocationSize); err != nil {
			return CIF0{}, 0, err
		}
		c.FormattedINS = Some(unpackGeolocation(b[off:]))
		off += geolocationSize
	}
	if GetBool(word, cif0BitECEFEphemeris) {
		if err := need(ephemerisSize); err != nil {
			return CIF0{}, 0, err
		}
		c.ECEFEphemeris = Some(unpackEphemeris(b[off:]))
		off += ephemerisSize
	}
	if GetBool(word, cif0BitRelativeEphemeris) {
		if err := need(ephemerisSize); err != nil {
			return CIF0{}, 0, err
		}
		c.RelativeEphemeris = Some(unpackEphemeris(b[off:]))
		off += ephemerisSize
	}
	if GetBool(word, cif0BitEphemerisRefID) {
		if err := need(4); err != nil {
			return CIF0{}, 0, err
		}
		c.EphemerisRefID = Some(GenericID32(binary.BigEndian.Uint32(b[off:])))
		off += 4
	}
	if GetBool(word, cif0BitGPSASCII) {
		g, n, err := unpackGPSASCII(b[off:])
		if err != nil {
			return CIF0{}, 0, err
		}
		c.GPSASCII = Some(g)
		off += n
	}
	if GetBool(word, cif0BitContextAssociationLists) {
		l, n, err := unpackContextAssociationLists(b[off:])
		if err != nil {
			return CIF0{}, 0, err
		}
		c.ContextAssociationLists = Some(l)
		off += n
	}
	if needCIF1 {
		cif1, n, err := unpackCIF1Fields(cif1Word, b[off:])
		if err != nil {
			return CIF0{}, 0, err
		}
		c.CIF1 = &cif1
		off += n
	}
	if needCIF2 {
		cif2, n, err := unpackCIF2Fields(cif2Word, b[off:])
		if err != nil {
			return CIF0{}, 0, err
		}
		c.CIF2 = &cif2
		off += n
	}
	if needCIF3 {
		cif3, n, err := unpackCIF3Fields(cif3Word, b[off:])
		if err != nil {
			return CIF0{}, 0, err
		}
		c.CIF3 = &cif3
		off += n
	}
	if needCIF7 {
		c.CIF7 = &CIF7{raw: cif7Word}
	}
	return c, off, nil
}
