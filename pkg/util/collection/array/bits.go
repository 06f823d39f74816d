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
package array

import (
	"iter"
	"math/bits"
)

// BitAt returns the bit (0 or 1) at a given flat index.  An out of bounds
// index reads as 0.
func (p Engine[W]) BitAt(arr []W, index uint) uint8 {
	if i, pos, ok := p.locate("BitAt", arr, index); ok {
		return p.words.BitAt(arr[i], pos)
	}
	//
	return 0
}

// BitInvAt returns the inverse of the bit at a given flat index.  An out of
// bounds index reads as 0.
func (p Engine[W]) BitInvAt(arr []W, index uint) uint8 {
	if i, pos, ok := p.locate("BitInvAt", arr, index); ok {
		return p.words.BitInvAt(arr[i], pos)
	}
	//
	return 0
}

// SetBitAt sets the bit at a given flat index.  An out of bounds index leaves
// the array unchanged.
func (p Engine[W]) SetBitAt(arr []W, index uint) {
	if i, pos, ok := p.locate("SetBitAt", arr, index); ok {
		arr[i] = p.words.SetBitAt(arr[i], pos)
	}
}

// UnsetBitAt clears the bit at a given flat index.  An out of bounds index
// leaves the array unchanged.
func (p Engine[W]) UnsetBitAt(arr []W, index uint) {
	if i, pos, ok := p.locate("UnsetBitAt", arr, index); ok {
		arr[i] = p.words.UnsetBitAt(arr[i], pos)
	}
}

// ToggleBitAt flips the bit at a given flat index.  An out of bounds index
// leaves the array unchanged.
func (p Engine[W]) ToggleBitAt(arr []W, index uint) {
	if i, pos, ok := p.locate("ToggleBitAt", arr, index); ok {
		arr[i] = p.words.ToggleBitAt(arr[i], pos)
	}
}

// SetBit assigns the bit at a given flat index, where bit must be either 0 or
// 1.  An out of bounds index leaves the array unchanged.
func (p Engine[W]) SetBit(arr []W, index uint, bit uint8) {
	if i, pos, ok := p.locate("SetBit", arr, index); ok {
		arr[i] = p.words.SetBit(arr[i], pos, bit)
	}
}

// ByteAt returns the byte at a given flat byte index.  An out of bounds index
// reads as 0.
func (p Engine[W]) ByteAt(arr []W, index uint) uint8 {
	if i, lane, ok := p.locateByte("ByteAt", arr, index); ok {
		return p.words.ByteAt(arr[i], lane)
	}
	//
	return 0
}

// SetByteAt replaces the byte at a given flat byte index.  An out of bounds
// index leaves the array unchanged.
func (p Engine[W]) SetByteAt(arr []W, b uint8, index uint) {
	if i, lane, ok := p.locateByte("SetByteAt", arr, index); ok {
		arr[i] = p.words.SetByteAt(arr[i], b, lane)
	}
}

// PopCount returns the total number of bits set across every word of an
// array.
func (p Engine[W]) PopCount(arr []W) int {
	var count int
	//
	for _, w := range arr {
		count += p.words.PopCount(w)
	}
	//
	return count
}

// Clear every bit of an array.
func (p Engine[W]) Clear(arr []W) {
	clear(arr)
}

// Fill sets every bit of an array.
func (p Engine[W]) Fill(arr []W) {
	for i := range arr {
		arr[i] = ^W(0)
	}
}

// Ones returns an iterator over the flat indices of every set bit in an array,
// in increasing order.
func (p Engine[W]) Ones(arr []W) iter.Seq[uint] {
	var width = p.words.Width().Bits()
	//
	return func(yield func(uint) bool) {
		for i, w := range arr {
			// clear lowest set bit on each iteration
			for pattern := p.words.Pattern(w); pattern != 0; pattern &= pattern - 1 {
				pos := uint(bits.TrailingZeros64(pattern))
				//
				if !yield(uint(i)*width + pos) {
					return
				}
			}
		}
	}
}
