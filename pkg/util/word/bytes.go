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

// Determine the bit offset of a given byte lane.  Lane 0 is the most
// significant byte of the word, thus lanes are numbered in big endian order
// within the word.
func (p Engine[W]) laneShift(lane uint) uint {
	return p.width.bits - 8 - (8 * lane)
}

// ByteAt returns the byte in a given lane of a word, where lane 0 is the most
// significant byte.  For example, lane 0 of the 32bit word 0x12345678 is 0x12.
func (p Engine[W]) ByteAt(w W, pos uint) uint8 {
	pos = p.bytePos("ByteAt", pos)
	//
	return uint8(p.Pattern(w) >> p.laneShift(pos))
}

// SetByteAt returns the word with the byte in a given lane replaced, leaving
// all other bits unchanged.
func (p Engine[W]) SetByteAt(w W, b uint8, pos uint) W {
	var (
		shift   = p.laneShift(p.bytePos("SetByteAt", pos))
		pattern = p.Pattern(w)
	)
	//
	pattern = (pattern &^ (uint64(0xFF) << shift)) | (uint64(b) << shift)
	//
	return p.FromPattern(pattern)
}

// Bytes returns the byte lanes of a word in lane order, which corresponds to
// the big endian encoding of the word.
func (p Engine[W]) Bytes(w W) []byte {
	var (
		n     = p.width.Bytes()
		bytes = make([]byte, n)
	)
	//
	for i := range n {
		bytes[i] = p.ByteAt(w, i)
	}
	//
	return bytes
}

// FromBytes constructs a word from its byte lanes, as returned by Bytes.  There
// must be exactly as many bytes as lanes in the word.  Missing lanes are
// treated as 0, whilst excess bytes are ignored.
func (p Engine[W]) FromBytes(bytes []byte) W {
	var (
		w W
		n = p.width.Bytes()
	)
	//
	if uint(len(bytes)) != n {
		contract.Failf(p.policy, contract.OutOfRange, "FromBytes", "expected %d bytes, got %d", n, len(bytes))
	}
	//
	for i := range min(n, uint(len(bytes))) {
		w = p.SetByteAt(w, bytes[i], i)
	}
	//
	return w
}
