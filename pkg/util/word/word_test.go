// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package word

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-bitword/pkg/util/assert"
	"github.com/consensys/go-bitword/pkg/util/contract"
)

func Test_Word_Width_00(t *testing.T) {
	assert.Equal(t, "u8", WidthOf[uint8]().String())
	assert.Equal(t, "i8", WidthOf[int8]().String())
	assert.Equal(t, "u16", WidthOf[uint16]().String())
	assert.Equal(t, "i16", WidthOf[int16]().String())
	assert.Equal(t, "u32", WidthOf[uint32]().String())
	assert.Equal(t, "i32", WidthOf[int32]().String())
	assert.Equal(t, "u64", WidthOf[uint64]().String())
	assert.Equal(t, "i64", WidthOf[int64]().String())
}

func Test_Word_Width_01(t *testing.T) {
	assert.Equal(t, 0xFF, WidthOf[int8]().Mask())
	assert.Equal(t, 0xFFFF, WidthOf[uint16]().Mask())
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), WidthOf[int64]().Mask())
	assert.Equal(t, 4, WidthOf[int32]().Bytes())
}

func Test_Word_ByteAt_00(t *testing.T) {
	var e = New[uint32](contract.Strict)
	//
	assert.Equal(t, 0x12, e.ByteAt(0x12345678, 0))
	assert.Equal(t, 0x34, e.ByteAt(0x12345678, 1))
	assert.Equal(t, 0x56, e.ByteAt(0x12345678, 2))
	assert.Equal(t, 0x78, e.ByteAt(0x12345678, 3))
}

func Test_Word_SetByteAt_00(t *testing.T) {
	var e = New[uint32](contract.Strict)
	//
	assert.Equal(t, uint32(0xFF345678), e.SetByteAt(0x12345678, 0xFF, 0))
	assert.Equal(t, uint32(0x123456FF), e.SetByteAt(0x12345678, 0xFF, 3))
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, e.Bytes(0x12345678))
}

func Test_Word_SetByteAt_01(t *testing.T) {
	var e = New[int16](contract.Strict)
	// 0x80FF
	assert.Equal(t, int16(-32513), e.SetByteAt(0x7FFF, 0x80, 0))
	assert.Equal(t, 0x80, e.ByteAt(-32513, 0))
	assert.Equal(t, 0xFF, e.ByteAt(-32513, 1))
}

func Test_Word_HexString_00(t *testing.T) {
	assert.Equal(t, "0", New[uint8](nil).HexString(0))
	assert.Equal(t, "FF", New[int8](nil).HexString(-1))
	assert.Equal(t, "80", New[int8](nil).HexString(-128))
	assert.Equal(t, "FFFF", New[int16](nil).HexString(-1))
	assert.Equal(t, "12345678", New[uint32](nil).HexString(0x12345678))
	assert.Equal(t, "FFFFF445E3A1862B", New[int64](nil).HexString(-12893967776213))
	assert.Equal(t, "17A68", New[int64](nil).HexString(96872))
}

func Test_Word_PaddedHexString_00(t *testing.T) {
	assert.Equal(t, "00", New[uint8](nil).PaddedHexString(0))
	assert.Equal(t, "000000FF", New[int32](nil).PaddedHexString(255))
	assert.Equal(t, "0000000000017A68", New[int64](nil).PaddedHexString(96872))
}

func Test_Word_ParseHex_00(t *testing.T) {
	var e = New[int8](nil)
	//
	w, err := e.ParseHex("0xff")
	assert.True(t, err == nil)
	assert.Equal(t, int8(-1), w)
	//
	_, err = e.ParseHex("1FF")
	assert.True(t, err != nil)
	//
	_, err = e.ParseHex("xyz")
	assert.True(t, err != nil)
}

func Test_Word_BitString_00(t *testing.T) {
	assert.Equal(t, "00000000", New[uint8](nil).BitString(0))
	assert.Equal(t, "11111111", New[int8](nil).BitString(-1))
	assert.Equal(t, "10000000", New[int8](nil).BitString(-128))
	assert.Equal(t, "0000000000000101", New[uint16](nil).BitString(5))
}

func Test_Word_FromBitString_00(t *testing.T) {
	var e = New[uint8](contract.Strict)
	//
	assert.Equal(t, uint8(5), e.FromBitString("00000101", 0))
	assert.Equal(t, uint8(5), e.FromBitString("xx00000101", 2))
	// Anything other than '1' clears
	assert.Equal(t, uint8(0x81), e.FromBitString("1xxxxxx1", 0))
}

func Test_Word_FromBitString_01(t *testing.T) {
	var e = New[uint8](contract.Strict)
	//
	assert.Violates(t, contract.StringUnderflow, func() { e.FromBitString("0000000", 0) })
	assert.Violates(t, contract.StringUnderflow, func() { e.FromBitString("00000000", 1) })
	assert.Violates(t, contract.StringUnderflow, func() { e.FromBitString("00000000", 9) })
}

func Test_Word_FromBitString_02(t *testing.T) {
	var e = New[uint8](contract.Permissive)
	// Missing low bits are zero
	assert.Equal(t, uint8(0xE0), e.FromBitString("111", 0))
	assert.Equal(t, uint8(0), e.FromBitString("111", 5))
}

func Test_Word_SetBit_00(t *testing.T) {
	var e = New[int32](contract.Strict)
	//
	assert.Violates(t, contract.InvalidBit, func() { e.SetBit(0, 0, 2) })
	assert.Violates(t, contract.OutOfRange, func() { e.SetBit(0, 32, 1) })
}

func Test_Word_Permissive_00(t *testing.T) {
	var e = New[uint8](contract.Permissive)
	// shift amounts are masked to the width
	assert.Equal(t, e.BitAt(0x02, 1), e.BitAt(0x02, 9))
	assert.Equal(t, uint8(0x02), e.SetBitAt(0, 9))
	assert.Equal(t, uint8(0xFD), e.UnsetBitAt(0xFF, 9))
	assert.Equal(t, uint8(0x02), e.ToggleBitAt(0, 9))
	// byte lanes masked too
	assert.Equal(t, 0xAB, e.ByteAt(0xAB, 5))
	// bit values reduced to their least significant bit
	assert.Equal(t, uint8(0x00), e.SetBit(0x01, 0, 2))
	assert.Equal(t, uint8(0x01), e.SetBit(0x00, 0, 3))
}

func Test_Word_Logging_00(t *testing.T) {
	var (
		count int
		e     = New[uint16](contract.PolicyFunc(func(*contract.Violation) { count++ }))
	)
	//
	e.BitAt(0, 16)
	e.ByteAt(0, 2)
	e.SetBit(0, 0, 7)
	e.FromBitString("", 0)
	e.FromBytes([]byte{1})
	e.FromBits(make([]uint8, 17))
	//
	assert.Equal(t, 6, count)
}

func Test_Word_Default_00(t *testing.T) {
	prev := contract.SetDefault(contract.Strict)
	defer contract.SetDefault(prev)
	//
	e := Default[uint64]()
	//
	assert.Violates(t, contract.OutOfRange, func() { e.BitAt(0, 64) })
}

func Test_Word_Zeros_00(t *testing.T) {
	var e = New[int16](nil)
	//
	assert.Equal(t, 16, e.LeadingZeros(0))
	assert.Equal(t, 16, e.TrailingZeros(0))
	assert.Equal(t, 0, e.LeadingZeros(-1))
	assert.Equal(t, 15, e.LeadingZeros(1))
	assert.Equal(t, 3, e.TrailingZeros(8))
}

func Test_Word_IsPowerOfTwo_00(t *testing.T) {
	var e = New[int8](nil)
	//
	assert.False(t, e.IsPowerOfTwo(0))
	assert.False(t, e.IsPowerOfTwo(-1))
	assert.False(t, e.IsPowerOfTwo(-2))
	assert.True(t, e.IsPowerOfTwo(-128))
	assert.True(t, e.IsPowerOfTwo(64))
	assert.False(t, e.IsPowerOfTwo(65))
}

// ===================================================================
// Test Helpers
// ===================================================================

// Generate the boundary values of a given width (i.e. zero, all ones and every
// single bit value), along with n random values.
func sampleValues[W Integer](n uint) []W {
	var (
		e      = New[W](nil)
		values = []W{0, ^W(0)}
	)
	//
	for i := range e.Width().Bits() {
		values = append(values, W(1)<<i)
		values = append(values, ^(W(1) << i))
	}
	//
	for range n {
		values = append(values, e.FromPattern(rand.Uint64()))
	}
	//
	return values
}

// Generate every value of a given width.  This is only sensible for the
// narrower widths.
func allValues[W Integer]() []W {
	var (
		e      = New[W](nil)
		n      = uint64(1) << e.Width().Bits()
		values = make([]W, n)
	)
	//
	for i := range n {
		values[i] = e.FromPattern(i)
	}
	//
	return values
}

func naivePopCount[W Integer](e Engine[W], w W) int {
	var count int
	//
	for i := range e.Width().Bits() {
		count += int(e.BitAt(w, i))
	}
	//
	return count
}

func checkProperties[W Integer](t *testing.T, values []W) {
	var e = New[W](contract.Strict)
	//
	for _, w := range values {
		checkBitOps(t, e, w)
		checkCounts(t, e, w)
		checkRoundTrips(t, e, w)
	}
}

func checkBitOps[W Integer](t *testing.T, e Engine[W], w W) {
	for p := range e.Width().Bits() {
		set := e.SetBitAt(w, p)
		unset := e.UnsetBitAt(w, p)
		//
		if e.BitAt(set, p) != 1 {
			t.Errorf("bit %d not set in %s", p, e.BitString(set))
		} else if e.BitAt(unset, p) != 0 {
			t.Errorf("bit %d not unset in %s", p, e.BitString(unset))
		} else if e.SetBitAt(set, p) != set {
			t.Errorf("set bit %d not idempotent for %s", p, e.BitString(w))
		} else if e.ToggleBitAt(e.ToggleBitAt(w, p), p) != w {
			t.Errorf("double toggle of bit %d not identity for %s", p, e.BitString(w))
		} else if e.BitInvAt(w, p) != 1-e.BitAt(w, p) {
			t.Errorf("inverted bit %d incorrect for %s", p, e.BitString(w))
		} else if e.SetBit(w, p, 1) != set || e.SetBit(w, p, 0) != unset {
			t.Errorf("set bit %d inconsistent for %s", p, e.BitString(w))
		} else if e.BitAt(w, p) != uint8((e.Pattern(w)>>p)&1) {
			t.Errorf("bit %d incorrect for %s", p, e.BitString(w))
		}
		// Check only bit p was affected
		if x := e.Pattern(set) ^ e.Pattern(w); x != 0 && x != uint64(1)<<p {
			t.Errorf("set bit %d disturbed other bits of %s", p, e.BitString(w))
		}
	}
	//
	for b := range e.Width().Bytes() {
		lane := e.ByteAt(w, b)
		//
		if e.SetByteAt(w, lane, b) != w {
			t.Errorf("rewriting byte %d changed %s", b, e.BitString(w))
		} else if e.ByteAt(e.SetByteAt(w, ^lane, b), b) != ^lane {
			t.Errorf("byte %d not written into %s", b, e.BitString(w))
		}
	}
}

func checkCounts[W Integer](t *testing.T, e Engine[W], w W) {
	var (
		count = e.PopCount(w)
		naive = naivePopCount(e, w)
	)
	//
	if count != naive || count != bits.OnesCount64(e.Pattern(w)) {
		t.Errorf("popcount of %s is %d (expected %d)", e.BitString(w), count, naive)
	}
	//
	if e.IsPowerOfTwo(w) != (naive == 1) {
		t.Errorf("power of two incorrect for %s", e.BitString(w))
	}
	//
	if e.LeadingZeros(w)+e.PopCount(w) > int(e.Width().Bits()) {
		t.Errorf("leading zeros incorrect for %s", e.BitString(w))
	}
}

func checkRoundTrips[W Integer](t *testing.T, e Engine[W], w W) {
	var s = e.BitString(w)
	//
	if uint(len(s)) != e.Width().Bits() {
		t.Errorf("bit string \"%s\" has wrong length", s)
	} else if v := e.FromBitString(s, 0); v != w {
		t.Errorf("bit string \"%s\" decoded as %v (expected %v)", s, v, w)
	} else if v := e.FromBits(e.Bits(w)); v != w {
		t.Errorf("bits of %s decoded as %v (expected %v)", s, v, w)
	} else if v := e.FromBytes(e.Bytes(w)); v != w {
		t.Errorf("bytes of %s decoded as %v (expected %v)", s, v, w)
	} else if v, err := e.ParseHex(e.HexString(w)); err != nil || v != w {
		t.Errorf("hex string of %s decoded as %v (expected %v)", s, v, w)
	}
}

func checkContract[W Integer](t *testing.T) {
	var (
		e     = New[W](contract.Strict)
		width = e.Width()
	)
	//
	assert.Violates(t, contract.OutOfRange, func() { e.BitAt(0, width.Bits()) })
	assert.Violates(t, contract.OutOfRange, func() { e.BitInvAt(0, width.Bits()) })
	assert.Violates(t, contract.OutOfRange, func() { e.SetBitAt(0, width.Bits()) })
	assert.Violates(t, contract.OutOfRange, func() { e.UnsetBitAt(0, width.Bits()) })
	assert.Violates(t, contract.OutOfRange, func() { e.ToggleBitAt(0, width.Bits()) })
	assert.Violates(t, contract.OutOfRange, func() { e.SetBit(0, width.Bits(), 1) })
	assert.Violates(t, contract.InvalidBit, func() { e.SetBit(0, 0, 2) })
	assert.Violates(t, contract.OutOfRange, func() { e.ByteAt(0, width.Bytes()) })
	assert.Violates(t, contract.OutOfRange, func() { e.SetByteAt(0, 1, width.Bytes()) })
	assert.Violates(t, contract.StringUnderflow, func() { e.FromBitString("", 0) })
	// Upper bounds are fine
	e.BitAt(0, width.Bits()-1)
	e.ByteAt(0, width.Bytes()-1)
}
