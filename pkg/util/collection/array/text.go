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
	"strings"

	"github.com/consensys/go-bitword/pkg/util/contract"
	"github.com/consensys/go-bitword/pkg/util/word"
)

// BitString returns the binary encoding of an array, which is the
// concatenation of the binary encoding of each word in array order.  Thus,
// the first W characters encode the word at index 0 (most significant bit
// first), and so on.
func (p Engine[W]) BitString(arr []W) string {
	var builder strings.Builder
	//
	builder.Grow(int(p.BitLen(arr)))
	//
	for _, w := range arr {
		p.words.AppendBitString(&builder, w)
	}
	//
	return builder.String()
}

// DecodeBitString decodes a binary string into a given array, starting at a
// given read index.  Exactly len(arr)*W characters are read.  If fewer
// characters remain, the missing bits are taken as zero.
func (p Engine[W]) DecodeBitString(arr []W, s string, readIndex uint) {
	var (
		bits = p.words.Width().Bits()
		n    = p.BitLen(arr)
		// underflow is reported once for the whole array.
		lenient = word.New[W](contract.Permissive)
	)
	//
	if readIndex > uint(len(s)) || uint(len(s))-readIndex < n {
		contract.Failf(p.words.Policy(), contract.StringUnderflow, "DecodeBitString",
			"need %d characters from index %d, string has length %d", n, readIndex, len(s))
	}
	//
	for i := range arr {
		arr[i] = lenient.FromBitString(s, readIndex+(uint(i)*bits))
	}
}

// FromBitString allocates an array holding the words encoded in a given binary
// string, as produced by BitString.  The length of the string must be a
// multiple of the word width; otherwise, the final word is padded with zeros.
func (p Engine[W]) FromBitString(s string) []W {
	var (
		bits = p.words.Width().Bits()
		n    = uint(len(s)) / bits
	)
	//
	if uint(len(s))%bits != 0 {
		contract.Failf(p.words.Policy(), contract.StringUnderflow, "FromBitString",
			"string length %d is not a multiple of word width %d", len(s), bits)
		//
		n++
	}
	//
	arr := make([]W, n)
	p.DecodeBitString(arr, s, 0)
	//
	return arr
}

// HexString returns the hexadecimal encoding of an array, which is the
// concatenation of the zero-padded hexadecimal encoding of each word in array
// order.
func (p Engine[W]) HexString(arr []W) string {
	var builder strings.Builder
	//
	for _, w := range arr {
		builder.WriteString(p.words.PaddedHexString(w))
	}
	//
	return builder.String()
}
