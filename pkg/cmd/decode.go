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
	"github.com/consensys/go-bitword/pkg/util/word"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] bitstring",
	Short: "Decode a binary string into words.",
	Long: `Decode a binary string (most significant bit first) into an array of words,
such that the first W characters give the word at index 0, and so on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, decodeCmds)
	},
}

// Available instances
var decodeCmds = []WidthAgnosticCmd{
	{"u8", runDecodeCmd[uint8]},
	{"i8", runDecodeCmd[int8]},
	{"u16", runDecodeCmd[uint16]},
	{"i16", runDecodeCmd[int16]},
	{"u32", runDecodeCmd[uint32]},
	{"i32", runDecodeCmd[int32]},
	{"u64", runDecodeCmd[uint64]},
	{"i64", runDecodeCmd[int64]},
}

func runDecodeCmd[W word.Integer](cmd *cobra.Command, args []string) error {
	var (
		e     = newEngine[W](cmd)
		words = e.FromBitString(args[0])
	)
	//
	printWords(cmd.OutOrStdout(), e.Words(), words)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
