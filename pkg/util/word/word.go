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
	"fmt"

	"github.com/consensys/go-bitword/pkg/util/contract"
)

// Integer captures the fixed-width machine words which can be treated as a
// sequence of bits.  Bit position p always refers to the bit whose place value
// is 2^p, irrespective of signedness.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width describes the shape of a given Integer type: its number of bits, and
// whether it is signed or not.  Signed words are manipulated through their
// two's complement bit pattern.
type Width struct {
	bits   uint
	signed bool
}

// WidthOf determines the width of a given Integer type.
func WidthOf[W Integer]() Width {
	var (
		zero W
		bits uint
	)
	// Shift a single bit out of the word, counting as we go.
	for w := W(1); w != 0; w <<= 1 {
		bits++
	}
	//
	return Width{bits, ^zero < zero}
}

// Bits returns the number of bits in a word of this width.
func (p Width) Bits() uint {
	return p.bits
}

// Bytes returns the number of byte lanes in a word of this width.
func (p Width) Bytes() uint {
	return p.bits / 8
}

// Signed indicates whether words of this width are signed or not.
func (p Width) Signed() bool {
	return p.signed
}

// Mask returns a mask covering every bit of a word of this width.
func (p Width) Mask() uint64 {
	if p.bits >= 64 {
		return ^uint64(0)
	}
	//
	return (uint64(1) << p.bits) - 1
}

func (p Width) String() string {
	if p.signed {
		return fmt.Sprintf("i%d", p.bits)
	}
	//
	return fmt.Sprintf("u%d", p.bits)
}

// Engine provides the bit and byte level operations for words of a given
// Integer type.  All operations are pure: mutators return a new word rather
// than modifying their argument.  Precondition failures are reported to the
// engine's contract policy; should the policy return, the operation continues
// with a masked (and hence bounded) argument.
type Engine[W Integer] struct {
	width  Width
	policy contract.Policy
}

// New constructs an engine for the given Integer type which reports
// precondition failures to the given policy.
func New[W Integer](policy contract.Policy) Engine[W] {
	if policy == nil {
		policy = contract.Permissive
	}
	//
	return Engine[W]{WidthOf[W](), policy}
}

// Default constructs an engine which uses the current default contract policy.
func Default[W Integer]() Engine[W] {
	return New[W](contract.Default())
}

// Width returns the width of words manipulated by this engine.
func (p Engine[W]) Width() Width {
	return p.width
}

// Policy returns the contract policy of this engine.
func (p Engine[W]) Policy() contract.Policy {
	return p.policy
}

// Pattern returns the (zero-extended) unsigned bit pattern of a word.  For
// example, the pattern of int8(-1) is 0xFF.
func (p Engine[W]) Pattern(w W) uint64 {
	return uint64(w) & p.width.Mask()
}

// FromPattern constructs a word from the least significant bits of a given
// pattern, discarding everything above the word's width.
func (p Engine[W]) FromPattern(pattern uint64) W {
	return W(pattern)
}

// Check a bit position is within bounds, returning the position masked to the
// width of the word.
func (p Engine[W]) bitPos(op string, pos uint) uint {
	if pos >= p.width.bits {
		contract.Failf(p.policy, contract.OutOfRange, op, "bit position %d out of range [0,%d)", pos, p.width.bits)
	}
	//
	return pos & (p.width.bits - 1)
}

// Check a byte lane is within bounds, returning the lane masked to the number
// of lanes in the word.
func (p Engine[W]) bytePos(op string, pos uint) uint {
	var lanes = p.width.Bytes()
	//
	if pos >= lanes {
		contract.Failf(p.policy, contract.OutOfRange, op, "byte position %d out of range [0,%d)", pos, lanes)
	}
	//
	return pos & (lanes - 1)
}

// Check a bit value is either 0 or 1, returning its least significant bit.
func (p Engine[W]) bitValue(op string, bit uint8) uint8 {
	if bit > 1 {
		contract.Failf(p.policy, contract.InvalidBit, op, "bit value %d is not 0 or 1", bit)
	}
	//
	return bit & 1
}
