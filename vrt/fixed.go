package vrt

import (
	"math"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

// FixedInt is the set of two's-complement backing widths a fixed-point VRT
// field can be stored in.
type FixedInt interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

// Q is a fixed-point value of backing type I with radix R fractional bits,
// following spec.md 4.2: to_int(f) = round(f * 2^R) clamped to I's range,
// to_fp(n) = n / 2^R. R is a runtime parameter rather than a type parameter
// because Go generics cannot carry a non-type constant (the widths 16/32/64
// do come from the type parameter I); this mirrors the teacher's own
// named-scaled-integer idiom (IntFloat/TimeInterval/Correction in
// protocol/types.go) rather than the C++ source's template radix parameter.
type Q[I FixedInt] struct {
	radix uint
}

// NewQ returns a Q helper for backing type I at the given radix.
func NewQ[I FixedInt](radix uint) Q[I] {
	return Q[I]{radix: radix}
}

func (q Q[I]) scale() float64 {
	return math.Ldexp(1, int(q.radix))
}

// ToInt converts f to the two's-complement integer representation, rounding
// ties away from zero and clamping to the range of I.
func (q Q[I]) ToInt(f float64) I {
	scaled := math.Round(f * q.scale())
	var zero I
	switch any(zero).(type) {
	case int16:
		return I(clamp(scaled, math.MinInt16, math.MaxInt16))
	case int32:
		return I(clamp(scaled, math.MinInt32, math.MaxInt32))
	case int64:
		if scaled >= math.MaxInt64 {
			maxI64 := int64(math.MaxInt64)
			return I(maxI64)
		}
		return I(clamp(scaled, math.MinInt64, math.MaxInt64))
	case uint16:
		return I(clamp(scaled, 0, math.MaxUint16))
	case uint32:
		return I(clamp(scaled, 0, math.MaxUint32))
	case uint64:
		if scaled < 0 {
			scaled = 0
		}
		if scaled >= math.MaxUint64 {
			maxU64 := uint64(math.MaxUint64)
			return I(maxU64)
		}
		return I(uint64(scaled))
	default:
		return I(scaled)
	}
}

// ToFloat converts the stored integer n back to a floating point value.
func (q Q[I]) ToFloat(n I) float64 {
	return float64(n) / q.scale()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Known radices named in spec.md 4.2.
const (
	RadixGainQ9_7      = 7  // Q9.7, 16-bit gain/reference-level subfields
	RadixSampleRateQ27  = 5  // Q27.5, 32-bit sample rate
	RadixAltitudeQ16_16 = 16 // Q16.16, 32-bit altitude/ground-speed
	RadixFrequencyQ44_20 = 20 // Q44.20, 64-bit frequency/bandwidth/span
	RadixGeoAngleQ9_22  = 22 // Q9.22, 32-bit geolocation angles
	RadixPolarizationQ9_13 = 13 // Q9.13, 16-bit polarization angles
	RadixElevationQ9_7  = 7  // Q9.7, 16-bit elevation/azimuth
	RadixTemperatureQ9_6 = 6  // Q9.6, 16-bit temperature
)

var (
	// q16s7 is the Q9.7-at-16-bit fixed point helper (gain, reference level,
	// elevation and the other Q9.7 s16 fields); each helper below binds its
	// own backing width and radix.
	q16s7  = NewQ[int16](RadixGainQ9_7)
	q16s13 = NewQ[int16](RadixPolarizationQ9_13)
	q32s5  = NewQ[int32](RadixSampleRateQ27)
	q32s16 = NewQ[int32](RadixAltitudeQ16_16)
	q32s22 = NewQ[int32](RadixGeoAngleQ9_22)
	q64s20 = NewQ[int64](RadixFrequencyQ44_20)
	q64u20 = NewQ[uint64](RadixFrequencyQ44_20)
	q16s6  = NewQ[int16](RadixTemperatureQ9_6)
	q64u5  = NewQ[uint64](RadixSampleRateQ27)
)

// GainToInt16 encodes a gain/reference-level value as Q9.7 s16.
func GainToInt16(f float64) int16 { return q16s7.ToInt(f) }

// GainFromInt16 decodes a Q9.7 s16 gain/reference-level value.
func GainFromInt16(n int16) float64 { return q16s7.ToFloat(n) }

// PolarizationToInt16 encodes a polarization angle as Q9.13 s16.
func PolarizationToInt16(f float64) int16 { return q16s13.ToInt(f) }

// PolarizationFromInt16 decodes a Q9.13 s16 polarization angle.
func PolarizationFromInt16(n int16) float64 { return q16s13.ToFloat(n) }

// SampleRateToInt32 encodes a sample rate as Q27.5 s32.
func SampleRateToInt32(f float64) int32 { return q32s5.ToInt(f) }

// SampleRateFromInt32 decodes a Q27.5 s32 sample rate.
func SampleRateFromInt32(n int32) float64 { return q32s5.ToFloat(n) }

// AltitudeToInt32 encodes altitude/ground-speed as Q16.16 s32.
func AltitudeToInt32(f float64) int32 { return q32s16.ToInt(f) }

// AltitudeFromInt32 decodes a Q16.16 s32 altitude/ground-speed value.
func AltitudeFromInt32(n int32) float64 { return q32s16.ToFloat(n) }

// GeoAngleToInt32 encodes a geolocation angle as Q9.22 s32.
func GeoAngleToInt32(f float64) int32 { return q32s22.ToInt(f) }

// GeoAngleFromInt32 decodes a Q9.22 s32 geolocation angle.
func GeoAngleFromInt32(n int32) float64 { return q32s22.ToFloat(n) }

// FrequencyToInt64 encodes frequency/resolution/span as Q44.20 s64.
func FrequencyToInt64(f float64) int64 { return q64s20.ToInt(f) }

// FrequencyFromInt64 decodes a Q44.20 s64 frequency/resolution/span value.
func FrequencyFromInt64(n int64) float64 { return q64s20.ToFloat(n) }

// BandwidthToUint64 encodes a bandwidth value as Q44.20 u64 (sign invalid
// per spec.md 4.7); negative input is rejected rather than silently clamped.
func BandwidthToUint64(f float64) (uint64, error) {
	if f < 0 {
		return 0, vrterr.New(vrterr.KindValueOutOfRange, "BandwidthToUint64", nil)
	}
	return uint64(q64u20.ToInt(f)), nil
}

// BandwidthFromUint64 decodes a Q44.20 u64 bandwidth value.
func BandwidthFromUint64(n uint64) float64 { return q64u20.ToFloat(uint64(n)) }

// TemperatureToInt16 encodes a temperature value as Q9.6 s16.
func TemperatureToInt16(f float64) int16 { return q16s6.ToInt(f) }

// TemperatureFromInt16 decodes a Q9.6 s16 temperature value.
func TemperatureFromInt16(n int16) float64 { return q16s6.ToFloat(n) }

// SampleRateToUint64 encodes a sample rate as Q27.5 u64 (sign invalid per
// spec.md 4.7; negative input is rejected).
func SampleRateToUint64(f float64) (uint64, error) {
	if f < 0 {
		return 0, vrterr.New(vrterr.KindValueOutOfRange, "SampleRateToUint64", nil)
	}
	return q64u5.ToInt(f), nil
}

// SampleRateFromUint64 decodes a Q27.5 u64 sample rate value.
func SampleRateFromUint64(n uint64) float64 { return q64u5.ToFloat(n) }
