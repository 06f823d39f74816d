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
	"github.com/bits-and-blooms/bitset"
)

// ToBitSet constructs a bitset holding exactly the flat indices of the bits set
// in an array.
func (p Engine[W]) ToBitSet(arr []W) *bitset.BitSet {
	var set = bitset.New(p.BitLen(arr))
	//
	for i := range p.Ones(arr) {
		set.Set(i)
	}
	//
	return set
}

// FromBitSet overwrites an array such that the bit at each flat index is set
// iff that index is in the given bitset.  Indices of the bitset beyond the end
// of the array are ignored.
func (p Engine[W]) FromBitSet(set *bitset.BitSet, arr []W) {
	var n = p.BitLen(arr)
	//
	p.Clear(arr)
	//
	for i, ok := set.NextSet(0); ok && i < n; i, ok = set.NextSet(i + 1) {
		p.SetBitAt(arr, i)
	}
}
