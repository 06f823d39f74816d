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

import "github.com/consensys/go-bitword/pkg/util/contract"

// BitAt returns the bit (0 or 1) at a given position in a word.
func (p Engine[W]) BitAt(w W, pos uint) uint8 {
	pos = p.bitPos("BitAt", pos)
	//
	return uint8((w >> pos) & 1)
}

// BitInvAt returns the inverse of the bit at a given position in a word.
func (p Engine[W]) BitInvAt(w W, pos uint) uint8 {
	pos = p.bitPos("BitInvAt", pos)
	//
	return 1 - uint8((w>>pos)&1)
}

// SetBitAt returns the word with the bit at a given position set.
func (p Engine[W]) SetBitAt(w W, pos uint) W {
	pos = p.bitPos("SetBitAt", pos)
	//
	return w | (W(1) << pos)
}

// UnsetBitAt returns the word with the bit at a given position cleared.
func (p Engine[W]) UnsetBitAt(w W, pos uint) W {
	pos = p.bitPos("UnsetBitAt", pos)
	//
	return w &^ (W(1) << pos)
}

// ToggleBitAt returns the word with the bit at a given position flipped.
func (p Engine[W]) ToggleBitAt(w W, pos uint) W {
	pos = p.bitPos("ToggleBitAt", pos)
	//
	return w ^ (W(1) << pos)
}

// SetBit returns the word with the bit at a given position assigned the given
// value, which must be either 0 or 1.
func (p Engine[W]) SetBit(w W, pos uint, bit uint8) W {
	var (
		mask W
		b    W
	)
	//
	pos = p.bitPos("SetBit", pos)
	mask = W(1) << pos
	b = W(p.bitValue("SetBit", bit))
	// -b is either all zeros or all ones
	return (w &^ mask) | (-b & mask)
}

// Bits explodes a word into its individual bits, such that the bit at position
// i is stored at index i of the resulting slice.
func (p Engine[W]) Bits(w W) []uint8 {
	var (
		n       = p.width.bits
		bits    = make([]uint8, n)
		pattern = p.Pattern(w)
	)
	//
	for i := range n {
		bits[i] = uint8((pattern >> i) & 1)
	}
	//
	return bits
}

// FromBits reverses Bits, constructing a word from a slice of bits where index
// i holds the bit at position i.  Every element must be either 0 or 1, and
// there must be no more elements than the width of the word.  Missing elements
// are treated as 0.
func (p Engine[W]) FromBits(bits []uint8) W {
	var pattern uint64
	//
	if uint(len(bits)) > p.width.bits {
		contract.Failf(p.policy, contract.OutOfRange, "FromBits", "%d bits exceeds word width %d", len(bits),
			p.width.bits)
		//
		bits = bits[:p.width.bits]
	}
	//
	for i, b := range bits {
		pattern |= uint64(p.bitValue("FromBits", b)) << i
	}
	//
	return p.FromPattern(pattern)
}
