/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vrt

import "github.com/geontech/vrtgo/hostendian"

// every VRT wire field is big-endian; the host order (hostendian.IsBigEndian)
// is probed once at init time by hostendian and never probed again on the
// hot path.

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(v uint32) uint32 {
	return v<<24 | (v&0xff00)<<8 | (v&0xff0000)>>8 | v>>24
}

// Swap64 reverses the byte order of a 64-bit value.
func Swap64(v uint64) uint64 {
	return v<<56 | (v&0xff00)<<40 | (v&0xff0000)<<24 | (v&0xff000000)<<8 |
		(v&0xff00000000)>>8 | (v&0xff0000000000)>>24 | (v&0xff000000000000)>>40 | v>>56
}

// Swap24 reverses the byte order of the low 24 bits of a 32-bit value. The
// high byte is always zero on return, matching the wire representation of
// 24-bit fields such as OUI.
func Swap24(v uint32) uint32 {
	v &= 0x00ffffff
	return (v&0xff)<<16 | v&0xff00 | (v&0xff0000)>>16
}

// ToBigEndian16 converts a host-order value to big-endian.
func ToBigEndian16(v uint16) uint16 {
	if hostendian.IsBigEndian {
		return v
	}
	return Swap16(v)
}

// FromBigEndian16 converts a big-endian value to host order.
func FromBigEndian16(v uint16) uint16 { return ToBigEndian16(v) }

// ToBigEndian32 converts a host-order value to big-endian.
func ToBigEndian32(v uint32) uint32 {
	if hostendian.IsBigEndian {
		return v
	}
	return Swap32(v)
}

// FromBigEndian32 converts a big-endian value to host order.
func FromBigEndian32(v uint32) uint32 { return ToBigEndian32(v) }

// ToBigEndian64 converts a host-order value to big-endian.
func ToBigEndian64(v uint64) uint64 {
	if hostendian.IsBigEndian {
		return v
	}
	return Swap64(v)
}

// FromBigEndian64 converts a big-endian value to host order.
func FromBigEndian64(v uint64) uint64 { return ToBigEndian64(v) }

// ToBigEndian24 converts a host-order value (low 24 bits significant) to
// big-endian, high byte zeroed.
func ToBigEndian24(v uint32) uint32 {
	if hostendian.IsBigEndian {
		return v & 0x00ffffff
	}
	return Swap24(v)
}

// FromBigEndian24 converts a big-endian 24-bit value back to host order.
func FromBigEndian24(v uint32) uint32 { return ToBigEndian24(v) }
