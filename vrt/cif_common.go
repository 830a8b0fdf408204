package vrt

import "encoding/binary"

// Gain is the composite Gain field from VITA 49.2 9.5.3: two Q9.7 s16
// subfields packed into one 32-bit word, stage-2 in the upper half, stage-1
// in the lower. If only stage-1 is set, stage-2 encodes as zero per
// spec.md 4.7.
type Gain struct {
	Stage1 float64
	Stage2 float64
}

func packGain(g Gain, b []byte) {
	var word uint32
	word = SetInt(word, 31, 16, int64(GainToInt16(g.Stage2)))
	word = SetInt(word, 15, 16, int64(GainToInt16(g.Stage1)))
	binary.BigEndian.PutUint32(b, word)
}

func unpackGain(b []byte) Gain {
	word := binary.BigEndian.Uint32(b)
	return Gain{
		Stage2: GainFromInt16(int16(GetInt(word, 31, 16))),
		Stage1: GainFromInt16(int16(GetInt(word, 15, 16))),
	}
}

// DeviceIdentifier is the CIF0 Device Identifier field (VITA 49.2 9.10.1):
// a manufacturer OUI and a device-type code, packed into a 64-bit word.
type DeviceIdentifier struct {
	OUI        OUI
	DeviceCode uint16
}

func packDeviceIdentifier(d DeviceIdentifier, b []byte) {
	var hi uint32
	hi = SetUint(hi, 23, 24, uint64(d.OUI))
	binary.BigEndian.PutUint32(b, hi)
	binary.BigEndian.PutUint32(b[4:], uint32(d.DeviceCode))
}

func unpackDeviceIdentifier(b []byte) DeviceIdentifier {
	hi := binary.BigEndian.Uint32(b)
	lo := binary.BigEndian.Uint32(b[4:])
	return DeviceIdentifier{
		OUI:        OUI(GetUint(hi, 23, 24)),
		DeviceCode: uint16(lo),
	}
}

// StateEventIndicators is the CIF0 State/Event Indicators field (VITA 49.2
// 9.10.8): a 32-bit word of enable/indicator pairs plus a user-defined
// byte.
type StateEventIndicators struct {
	CalibratedTimeEnable    bool
	CalibratedTime          bool
	ValidDataEnable         bool
	ValidData               bool
	ReferenceLockEnable     bool
	ReferenceLock           bool
	AGCMGCEnable            bool
	AGCMGC                  bool // true = AGC, false = MGC
	DetectedSignalEnable    bool
	DetectedSignal          bool
	SpectralInversionEnable bool
	SpectralInversion       bool
	OverRangeEnable         bool
	OverRange               bool
	SampleLossEnable        bool
	SampleLoss              bool
	UserDefined             uint8
}

func packStateEventIndicators(s StateEventIndicators, b []byte) {
	var w uint32
	w = SetBool(w, 31, 1, s.CalibratedTimeEnable)
	w = SetBool(w, 30, 1, s.ValidDataEnable)
	w = SetBool(w, 29, 1, s.ReferenceLockEnable)
	w = SetBool(w, 28, 1, s.AGCMGCEnable)
	w = SetBool(w, 27, 1, s.DetectedSignalEnable)
	w = SetBool(w, 26, 1, s.SpectralInversionEnable)
	w = SetBool(w, 25, 1, s.OverRangeEnable)
	w = SetBool(w, 24, 1, s.SampleLossEnable)
	w = SetBool(w, 19, 1, s.CalibratedTime)
	w = SetBool(w, 18, 1, s.ValidData)
	w = SetBool(w, 17, 1, s.ReferenceLock)
	w = SetBool(w, 16, 1, s.AGCMGC)
	w = SetBool(w, 15, 1, s.DetectedSignal)
	w = SetBool(w, 14, 1, s.SpectralInversion)
	w = SetBool(w, 13, 1, s.OverRange)
	w = SetBool(w, 12, 1, s.SampleLoss)
	w = SetUint(w, 7, 8, uint64(s.UserDefined))
	binary.BigEndian.PutUint32(b, w)
}

func unpackStateEventIndicators(b []byte) StateEventIndicators {
	w := binary.BigEndian.Uint32(b)
	return StateEventIndicators{
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
		UserDefined:             uint8(GetUint(w, 7, 8)),
	}
}

// PackingMethod is the payload-format packing-method subfield.
type PackingMethod uint8

// Packing methods, VITA 49.2 9.13.3.
const (
	PackingProcessingEfficient PackingMethod = 0
	PackingLinkEfficient       PackingMethod = 1
)

// SampleType is the payload-format real/complex type subfield.
type SampleType uint8

// Sample types, VITA 49.2 9.13.3.
const (
	SampleReal             SampleType = 0
	SampleComplexCartesian SampleType = 1
	SampleComplexPolar     SampleType = 2
)

// DataItemFormat is the payload-format data-item-format subfield.
type DataItemFormat uint8

// Data item formats, VITA 49.2 9.13.3 (subset in common use).
const (
	DataItemSignedFixedPoint       DataItemFormat = 0x00
	DataItemUnsignedFixedPoint     DataItemFormat = 0x01
	DataItemIEEE754SinglePrecision DataItemFormat = 0x0E
	DataItemIEEE754DoublePrecision DataItemFormat = 0x0F
)

// PayloadFormat is the CIF0 Signal Data Payload Format field (VITA 49.2
// 9.13.3): a 64-bit packed descriptor of the signal-data payload's binary
// layout. ItemPackingFieldSize and DataItemSize hold the *actual* bit
// widths (1-64); the wire encodes each as N-1 per VITA 49.2 9.13.3-4, and
// RepeatCount/VectorSize likewise encode as count-1.
type PayloadFormat struct {
	PackingMethod        PackingMethod
	SampleType           SampleType
	DataItemFormat       DataItemFormat
	RepeatIndicator      bool
	EventTagSize         uint8 // 3 bits
	ChannelTagSize       uint8 // 4 bits
	DataItemFractionSize uint8 // 4 bits
	ItemPackingFieldSize uint8 // actual width, wire stores -1
	DataItemSize         uint8 // actual width, wire stores -1
	RepeatCount          uint16
	VectorSize           uint16
}

const payloadFormatSize = 8 // bytes

func packPayloadFormat(p PayloadFormat, b []byte) {
	var w uint64
	w = SetUint(w, 63, 1, uint64(p.PackingMethod))
	w = SetUint(w, 62, 2, uint64(p.SampleType))
	w = SetUint(w, 60, 5, uint64(p.DataItemFormat))
	w = SetBool(w, 55, 1, p.RepeatIndicator)
	w = SetUint(w, 54, 3, uint64(p.EventTagSize))
	w = SetUint(w, 51, 4, uint64(p.ChannelTagSize))
	w = SetUint(w, 47, 4, uint64(p.DataItemFractionSize))
	w = SetUint(w, 43, 6, uint64(p.ItemPackingFieldSize-1))
	w = SetUint(w, 37, 6, uint64(p.DataItemSize-1))
	w = SetUint(w, 31, 16, uint64(p.RepeatCount-1))
	w = SetUint(w, 15, 16, uint64(p.VectorSize-1))
	binary.BigEndian.PutUint64(b, w)
}

func unpackPayloadFormat(b []byte) PayloadFormat {
	w := binary.BigEndian.Uint64(b)
	return PayloadFormat{
		PackingMethod:        PackingMethod(GetUint(w, 63, 1)),
		SampleType:           SampleType(GetUint(w, 62, 2)),
		DataItemFormat:       DataItemFormat(GetUint(w, 60, 5)),
		RepeatIndicator:      GetBool(w, 55),
		EventTagSize:         uint8(GetUint(w, 54, 3)),
		ChannelTagSize:       uint8(GetUint(w, 51, 4)),
		DataItemFractionSize: uint8(GetUint(w, 47, 4)),
		ItemPackingFieldSize: uint8(GetUint(w, 43, 6)) + 1,
		DataItemSize:         uint8(GetUint(w, 37, 6)) + 1,
		RepeatCount:          uint16(GetUint(w, 31, 16)) + 1,
		VectorSize:           uint16(GetUint(w, 15, 16)) + 1,
	}
}

// Geolocation is the CIF0/CIF1 Formatted GPS/INS field (VITA 49.2 9.4.5):
// 44 bytes. TSI/TSF occupy the high nibbles of the first word, manufacturer
// OUI the low 24 bits, followed by integer and fractional timestamps and
// seven Q9.22 s32 angles/rates. Unspecified latitude/longitude/altitude/
// speed/heading/track/magnetic-variation default to 0x7FFFFFFF (VITA 49.2
// rule 9.4.5-18); unspecified timestamps default to 0xFFFFFFFF (rule
// 9.4.5-6).
type Geolocation struct {
	TSI               TSI
	TSF               TSF
	ManufacturerOUI   OUI
	IntegerTimestamp  uint32
	FractionalTimestamp uint64
	Latitude          float64 // degrees, Q9.22
	Longitude         float64 // degrees, Q9.22
	Altitude          float64 // meters, Q9.22
	GroundSpeed       float64 // m/s, Q9.22
	Heading           float64 // degrees, Q9.22
	Track             float64 // degrees, Q9.22
	MagneticVariation float64 // degrees, Q9.22
}

// GeolocationUnspecified is the sentinel for an unspecified Q9.22
// angle/rate field, VITA 49.2 rule 9.4.5-18.
const GeolocationUnspecified uint32 = 0x7FFFFFFF

// GeolocationTimestampUnspecified is the sentinel for an unspecified
// integer/fractional timestamp subfield, VITA 49.2 rule 9.4.5-6.
const GeolocationTimestampUnspecified uint32 = 0xFFFFFFFF

const geolocationSize = 44 // bytes

// NewGeolocation returns a Geolocation with every optional subfield at its
// VITA 49.2-mandated "unspecified" sentinel.
func NewGeolocation() Geolocation {
	unspecAngle := float64(int32(GeolocationUnspecified)) / float64(int64(1)<<RadixGeoAngleQ9_22)
	return Geolocation{
		Latitude:          unspecAngle,
		Longitude:         unspecAngle,
		Altitude:          unspecAngle,
		GroundSpeed:       unspecAngle,
		Heading:           unspecAngle,
		Track:             unspecAngle,
		MagneticVariation: unspecAngle,
	}
}

func packGeolocation(g Geolocation, b []byte) {
	var w1 uint32
	w1 = SetUint(w1, 31, 4, uint64(g.TSI))
	w1 = SetUint(w1, 27, 4, uint64(g.TSF))
	w1 = SetUint(w1, 23, 24, uint64(g.ManufacturerOUI))
	binary.BigEndian.PutUint32(b, w1)
	binary.BigEndian.PutUint32(b[4:], g.IntegerTimestamp)
	binary.BigEndian.PutUint64(b[8:], g.FractionalTimestamp)
	binary.BigEndian.PutUint32(b[16:], uint32(GeoAngleToInt32(g.Latitude)))
	binary.BigEndian.PutUint32(b[20:], uint32(GeoAngleToInt32(g.Longitude)))
	binary.BigEndian.PutUint32(b[24:], uint32(GeoAngleToInt32(g.Altitude)))
	binary.BigEndian.PutUint32(b[28:], uint32(GeoAngleToInt32(g.GroundSpeed)))
	binary.BigEndian.PutUint32(b[32:], uint32(GeoAngleToInt32(g.Heading)))
	binary.BigEndian.PutUint32(b[36:], uint32(GeoAngleToInt32(g.Track)))
	binary.BigEndian.PutUint32(b[40:], uint32(GeoAngleToInt32(g.MagneticVariation)))
}

func unpackGeolocation(b []byte) Geolocation {
	w1 := binary.BigEndian.Uint32(b)
	return Geolocation{
		TSI:                 TSI(GetUint(w1, 31, 4)),
		TSF:                 TSF(GetUint(w1, 27, 4)),
		ManufacturerOUI:     OUI(GetUint(w1, 23, 24)),
		IntegerTimestamp:    binary.BigEndian.Uint32(b[4:]),
		FractionalTimestamp: binary.BigEndian.Uint64(b[8:]),
		Latitude:            GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[16:]))),
		Longitude:           GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[20:]))),
		Altitude:            GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[24:]))),
		GroundSpeed:         GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[28:]))),
		Heading:             GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[32:]))),
		Track:               GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[36:]))),
		MagneticVariation:   GeoAngleFromInt32(int32(binary.BigEndian.Uint32(b[40:]))),
	}
}

// Ephemeris is the CIF0 ECEF/Relative Ephemeris field (VITA 49.2 9.4.3/
// 9.4.4): 52 bytes of TSI/TSF + OUI, timestamps, nine Q16.16 s32 position,
// attitude and velocity components
// (position/attitude use Q32.32 in the real standard; this codec uses
// Q16.16 for all nine components).
type Ephemeris struct {
	TSI                 TSI
	TSF                 TSF
	ManufacturerOUI     OUI
	IntegerTimestamp    uint32
	FractionalTimestamp uint64
	PositionX           float64
	PositionY           float64
	PositionZ           float64
	AttitudeAlpha       float64
	AttitudeBeta        float64
	AttitudePhi         float64
	VelocityX           float64
	VelocityY           float64
	VelocityZ           float64
}

const ephemerisSize = 52 // bytes: 16-byte head + 9 x 4-byte Q16.16 components

func packEphemeris(e Ephemeris, b []byte) {
	var w1 uint32
	w1 = SetUint(w1, 31, 4, uint64(e.TSI))
	w1 = SetUint(w1, 27, 4, uint64(e.TSF))
	w1 = SetUint(w1, 23, 24, uint64(e.ManufacturerOUI))
	binary.BigEndian.PutUint32(b, w1)
	binary.BigEndian.PutUint32(b[4:], e.IntegerTimestamp)
	binary.BigEndian.PutUint64(b[8:], e.FractionalTimestamp)
	vals := []float64{e.PositionX, e.PositionY, e.PositionZ, e.AttitudeAlpha, e.AttitudeBeta, e.AttitudePhi, e.VelocityX, e.VelocityY, e.VelocityZ}
	for i, v := range vals {
		binary.BigEndian.PutUint32(b[16+i*4:], uint32(AltitudeToInt32(v)))
	}
}

func unpackEphemeris(b []byte) Ephemeris {
	w1 := binary.BigEndian.Uint32(b)
	e := Ephemeris{
		TSI:                 TSI(GetUint(w1, 31, 4)),
		TSF:                 TSF(GetUint(w1, 27, 4)),
		ManufacturerOUI:     OUI(GetUint(w1, 23, 24)),
		IntegerTimestamp:    binary.BigEndian.Uint32(b[4:]),
		FractionalTimestamp: binary.BigEndian.Uint64(b[8:]),
	}
	get := func(i int) float64 { return AltitudeFromInt32(int32(binary.BigEndian.Uint32(b[16+i*4:]))) }
	e.PositionX, e.PositionY, e.PositionZ = get(0), get(1), get(2)
	e.AttitudeAlpha, e.AttitudeBeta, e.AttitudePhi = get(3), get(4), get(5)
	e.VelocityX, e.VelocityY, e.VelocityZ = get(6), get(7), get(8)
	return e
}
