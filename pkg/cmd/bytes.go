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

var byteCmd = &cobra.Command{
	Use:   "byte [flags] index word(s)",
	Short: "Read or write the byte at a flat byte index.",
	Long: `Read (or, with --value, write) the byte at a given flat byte index across an
array of words.  Flat byte index i refers to byte lane i%(W/8) of word i/(W/8),
where lane 0 is the most significant byte of a word.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, byteCmds)
	},
}

// Available instances
var byteCmds = []WidthAgnosticCmd{
	{"u8", runByteCmd[uint8]},
	{"i8", runByteCmd[int8]},
	{"u16", runByteCmd[uint16]},
	{"i16", runByteCmd[int16]},
	{"u32", runByteCmd[uint32]},
	{"i32", runByteCmd[int32]},
	{"u64", runByteCmd[uint64]},
	{"i64", runByteCmd[int64]},
}

func runByteCmd[W word.Integer](cmd *cobra.Command, args []string) error {
	var (
		e     = newEngine[W](cmd)
		value = GetInt(cmd, "value")
	)
	//
	index, words, err := parseIndexedWords(e, args)
	if err != nil {
		return err
	}
	// Negative values indicate a read
	switch {
	case value < 0:
		fmt.Fprintf(cmd.OutOrStdout(), "0x%02X\n", e.ByteAt(words, index))
	case value > 0xFF:
		return fmt.Errorf("byte value %d out of range", value)
	default:
		e.SetByteAt(words, uint8(value), index)
		printWords(cmd.OutOrStdout(), e.Words(), words)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(byteCmd)
	byteCmd.Flags().Int("value", -1, "byte value to write (rather than read)")
}
