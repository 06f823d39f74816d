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

import "math/bits"

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

// PopCount returns the number of bits set in a word.  This uses the parallel
// reduction, where adjacent groups of bits are summed pairwise (first 2bit
// groups, then 4bit, then 8bit), and the byte sums are finally added by a
// multiply and shift.
func (p Engine[W]) PopCount(w W) int {
	var x = p.Pattern(w)
	//
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	//
	return int((x * h01) >> 56)
}

// IsPowerOfTwo determines whether exactly one bit is set in the bit pattern of
// a word.  Thus, zero is not a power of two, and neither is any negative
// value except the minimum value of a signed width (e.g. -128 for int8).
func (p Engine[W]) IsPowerOfTwo(w W) bool {
	var x = p.Pattern(w)
	//
	return x != 0 && x&(x-1) == 0
}

// LeadingZeros returns the number of leading zero bits in the bit pattern of a
// word.  The result is the width of the word when it is zero.
func (p Engine[W]) LeadingZeros(w W) int {
	return bits.LeadingZeros64(p.Pattern(w)) - int(64-p.width.bits)
}

// TrailingZeros returns the number of trailing zero bits in a word.  The
// result is the width of the word when it is zero.
func (p Engine[W]) TrailingZeros(w W) int {
	var x = p.Pattern(w)
	//
	if x == 0 {
		return int(p.width.bits)
	}
	//
	return bits.TrailingZeros64(x)
}
