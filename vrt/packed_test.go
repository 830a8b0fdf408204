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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetUintRoundTrip(t *testing.T) {
	var w uint32
	w = SetUint(w, 31, 4, 0xF)
	require.Equal(t, uint64(0xF), GetUint(w, 31, 4))
	require.Equal(t, uint32(0xF0000000), w)

	w = SetUint(w, 15, 16, 0xBEEF)
	require.Equal(t, uint64(0xBEEF), GetUint(w, 15, 16))
	require.Equal(t, uint32(0xF000BEEF), w)
}

func TestSetUintTruncatesOverWideValue(t *testing.T) {
	var w uint8
	w = SetUint(w, 3, 4, 0xFF)
	require.Equal(t, uint64(0xF), GetUint(w, 3, 4))
}

func TestSetUintPreservesOtherBits(t *testing.T) {
	var w uint16
	w = SetUint(w, 15, 8, 0xAB)
	w = SetUint(w, 7, 8, 0xCD)
	require.Equal(t, uint16(0xABCD), w)
	w = SetUint(w, 7, 8, 0x00)
	require.Equal(t, uint16(0xAB00), w)
}

func TestGetSetIntSignExtension(t *testing.T) {
	var w uint16
	w = SetInt(w, 15, 16, -1)
	require.Equal(t, int64(-1), GetInt(w, 15, 16))

	w = SetInt(w, 15, 16, -32768)
	require.Equal(t, int64(-32768), GetInt(w, 15, 16))

	w = SetInt(w, 15, 16, 32767)
	require.Equal(t, int64(32767), GetInt(w, 15, 16))
}

func TestGetSetBoolSingleBit(t *testing.T) {
	var w uint32
	w = SetBool(w, 31, 1, true)
	require.True(t, GetBool(w, 31))
	require.False(t, GetBool(w, 30))
	w = SetBool(w, 31, 1, false)
	require.False(t, GetBool(w, 31))
}

func TestSetBoolBroadcastsAcrossMultiBitField(t *testing.T) {
	var w uint32
	w = SetBool(w, 23, 2, true)
	require.Equal(t, uint64(0b11), GetUint(w, 23, 2))
	w = SetBool(w, 23, 2, false)
	require.Equal(t, uint64(0), GetUint(w, 23, 2))
}

func TestBitsOf(t *testing.T) {
	require.Equal(t, 8, BitsOf[uint8]())
	require.Equal(t, 16, BitsOf[uint16]())
	require.Equal(t, 32, BitsOf[uint32]())
	require.Equal(t, 64, BitsOf[uint64]())
}
