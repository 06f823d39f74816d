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
package cmd

import (
	"fmt"

	"github.com/consensys/go-bitword/pkg/util/word"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] word(s)",
	Short: "Inspect the bits of one or more words.",
	Long: `Print the binary and hexadecimal encodings of one or more words, along with
their population count and whether or not they are a power of two.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, inspectCmds)
	},
}

// Available instances
var inspectCmds = []WidthAgnosticCmd{
	{"u8", runInspectCmd[uint8]},
	{"i8", runInspectCmd[int8]},
	{"u16", runInspectCmd[uint16]},
	{"i16", runInspectCmd[int16]},
	{"u32", runInspectCmd[uint32]},
	{"i32", runInspectCmd[int32]},
	{"u64", runInspectCmd[uint64]},
	{"i64", runInspectCmd[int64]},
}

func runInspectCmd[W word.Integer](cmd *cobra.Command, args []string) error {
	var (
		e   = newEngine[W](cmd).Words()
		out = cmd.OutOrStdout()
	)
	//
	words, err := parseWords(e, args)
	if err != nil {
		return err
	}
	//
	_, grouped := terminalWidth(out)
	//
	for _, w := range words {
		bits := e.BitString(w)
		//
		if grouped {
			bits = groupBits(bits, 8)
		}
		//
		fmt.Fprintf(out, "%d\t%s\t0x%s\tpopcount=%d\tpow2=%t\n", w, bits, e.HexString(w), e.PopCount(w),
			e.IsPowerOfTwo(w))
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
