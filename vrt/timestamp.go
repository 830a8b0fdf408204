package vrt

import (
	"encoding/binary"

	"github.com/geontech/vrtgo/vrt/vrterr"
)

const (
	integerTimestampSize    = 4 // bytes
	fractionalTimestampSize = 8 // bytes
)

// IntegerTimestamp is the 32-bit integer timestamp present when
// Header.TSIField() != TSINone, per spec.md 3. Its unit (UTC seconds, GPS
// seconds, or other) is carried by the owning header's TSI field, not by
// this type, matching VITA 49.2's own layering.
type IntegerTimestamp uint32

// FractionalTimestamp is the 64-bit fractional timestamp present when
// Header.TSFField() != TSFNone. Its unit (sample count, picoseconds for
// TSFRealTime, or free-running count) is carried by the owning header's
// TSF field.
type FractionalTimestamp uint64

// PackInto writes the 4-byte integer timestamp in big-endian order.
func (t IntegerTimestamp) PackInto(b []byte) error {
	if len(b) < integerTimestampSize {
		return vrterr.New(vrterr.KindBufferTooShort, "IntegerTimestamp.PackInto", nil)
	}
	binary.BigEndian.PutUint32(b, uint32(t))
	return nil
}

// UnpackIntegerTimestampFrom reads a 4-byte big-endian integer timestamp.
func UnpackIntegerTimestampFrom(b []byte) IntegerTimestamp {
	return IntegerTimestamp(binary.BigEndian.Uint32(b))
}

// PackInto writes the 8-byte fractional timestamp in big-endian order.
func (t FractionalTimestamp) PackInto(b []byte) error {
	if len(b) < fractionalTimestampSize {
		return vrterr.New(vrterr.KindBufferTooShort, "FractionalTimestamp.PackInto", nil)
	}
	binary.BigEndian.PutUint64(b, uint64(t))
	return nil
}

// UnpackFractionalTimestampFrom reads an 8-byte big-endian fractional
// timestamp.
func UnpackFractionalTimestampFrom(b []byte) FractionalTimestamp {
	return FractionalTimestamp(binary.BigEndian.Uint64(b))
}

// MaxPicoseconds is the largest representable TSFRealTime value before it
// would roll into the next second (10^12 ps per second, minus 1), used by
// callers validating fractional timestamps against TSFRealTime.
const MaxPicoseconds FractionalTimestamp = 999_999_999_999
