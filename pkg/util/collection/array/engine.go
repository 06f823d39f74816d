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
	"github.com/consensys/go-bitword/pkg/util/contract"
	"github.com/consensys/go-bitword/pkg/util/word"
)

// Engine provides bit and byte level operations over an array of words, where
// the array is regarded as a single sequence of bits.  Flat bit index i refers
// to bit i%W of word i/W, where W is the width of a word.  Likewise, flat byte
// index i refers to byte lane i%(W/8) of word i/(W/8).
//
// Arrays are owned by the caller, and are never resized.  Mutating operations
// modify the given array in place.
type Engine[W word.Integer] struct {
	words word.Engine[W]
}

// New constructs an array engine for the given Integer type which reports
// precondition failures to the given policy.
func New[W word.Integer](policy contract.Policy) Engine[W] {
	return Engine[W]{word.New[W](policy)}
}

// Default constructs an array engine which uses the current default contract
// policy.
func Default[W word.Integer]() Engine[W] {
	return Engine[W]{word.Default[W]()}
}

// Over constructs an array engine from an existing word engine.
func Over[W word.Integer](words word.Engine[W]) Engine[W] {
	return Engine[W]{words}
}

// Words returns the underlying word engine.
func (p Engine[W]) Words() word.Engine[W] {
	return p.words
}

// BitLen returns the number of bits in a given array.
func (p Engine[W]) BitLen(arr []W) uint {
	return uint(len(arr)) * p.words.Width().Bits()
}

// ByteLen returns the number of bytes in a given array.
func (p Engine[W]) ByteLen(arr []W) uint {
	return uint(len(arr)) * p.words.Width().Bytes()
}

// Locate translates a flat bit index into the index of the enclosing word, and
// the position of the bit within that word.  The final result is false if the
// index is out of bounds (in which case the policy has been notified).
func (p Engine[W]) Locate(arr []W, index uint) (uint, uint, bool) {
	return p.locate("Locate", arr, index)
}

// LocateByte translates a flat byte index into the index of the enclosing word,
// and the byte lane within that word.  The final result is false if the index
// is out of bounds (in which case the policy has been notified).
func (p Engine[W]) LocateByte(arr []W, index uint) (uint, uint, bool) {
	return p.locateByte("LocateByte", arr, index)
}

func (p Engine[W]) locate(op string, arr []W, index uint) (uint, uint, bool) {
	var (
		bits = p.words.Width().Bits()
		n    = p.BitLen(arr)
	)
	//
	if index >= n {
		contract.Failf(p.words.Policy(), contract.OutOfRange, op, "bit index %d out of range [0,%d)", index, n)
		return 0, 0, false
	}
	//
	return index / bits, index % bits, true
}

func (p Engine[W]) locateByte(op string, arr []W, index uint) (uint, uint, bool) {
	var (
		lanes = p.words.Width().Bytes()
		n     = p.ByteLen(arr)
	)
	//
	if index >= n {
		contract.Failf(p.words.Policy(), contract.OutOfRange, op, "byte index %d out of range [0,%d)", index, n)
		return 0, 0, false
	}
	//
	return index / lanes, index % lanes, true
}
