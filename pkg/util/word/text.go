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
	"strconv"
	"strings"

	"github.com/consensys/go-bitword/pkg/util/contract"
)

// BitString returns the binary encoding of a word, which has exactly one
// character ('0' or '1') for each bit, starting with the most significant.
func (p Engine[W]) BitString(w W) string {
	var builder strings.Builder
	//
	builder.Grow(int(p.width.bits))
	p.AppendBitString(&builder, w)
	//
	return builder.String()
}

// AppendBitString writes the binary encoding of a word into a given builder.
func (p Engine[W]) AppendBitString(builder *strings.Builder, w W) {
	var pattern = p.Pattern(w)
	//
	for i := p.width.bits; i > 0; i-- {
		builder.WriteByte('0' + byte((pattern>>(i-1))&1))
	}
}

// FromBitString decodes a word from exactly W characters of a binary string,
// starting at a given read index.  Characters are read most significant bit
// first, such that a '1' sets the corresponding bit whilst anything else clears
// it.  If fewer than W characters remain, the missing (least significant) bits
// are taken as zero.
func (p Engine[W]) FromBitString(s string, readIndex uint) W {
	var (
		n       = p.width.bits
		pattern uint64
	)
	//
	if readIndex > uint(len(s)) || uint(len(s))-readIndex < n {
		contract.Failf(p.policy, contract.StringUnderflow, "FromBitString",
			"need %d characters from index %d, string has length %d", n, readIndex, len(s))
	}
	//
	for i := range n {
		pattern <<= 1
		//
		if j := readIndex + i; j < uint(len(s)) && s[j] == '1' {
			pattern |= 1
		}
	}
	//
	return p.FromPattern(pattern)
}

// HexString returns the uppercase hexadecimal encoding of a word's bit pattern,
// without prefix or leading zeros.  For example, int8(-1) is encoded as "FF".
func (p Engine[W]) HexString(w W) string {
	return strings.ToUpper(strconv.FormatUint(p.Pattern(w), 16))
}

// PaddedHexString returns the uppercase hexadecimal encoding of a word's bit
// pattern, padded with leading zeros to exactly two digits per byte.
func (p Engine[W]) PaddedHexString(w W) string {
	return fmt.Sprintf("%0*X", int(2*p.width.Bytes()), p.Pattern(w))
}

// ParseHex decodes a word from a hexadecimal bit pattern, as returned by
// HexString.  An optional "0x" prefix is permitted, and digits may be in
// either case.
func (p Engine[W]) ParseHex(s string) (W, error) {
	var digits = s
	//
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	//
	pattern, err := strconv.ParseUint(digits, 16, int(p.width.bits))
	if err != nil {
		return 0, fmt.Errorf("invalid %s hex string \"%s\": %w", p.width, s, err)
	}
	//
	return p.FromPattern(pattern), nil
}
