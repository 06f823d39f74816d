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

	"github.com/consensys/go-bitword/pkg/util/collection/array"
	"github.com/consensys/go-bitword/pkg/util/word"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [flags] index word(s)",
	Short: "Read the bit at a flat index.",
	Long: `Read the bit at a given flat index across an array of words.  Flat index i
refers to bit i%W of word i/W, where W is the word width.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, getCmds)
	},
}

var setCmd = &cobra.Command{
	Use:   "set [flags] index word(s)",
	Short: "Set the bit at a flat index.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, setCmds)
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset [flags] index word(s)",
	Short: "Clear the bit at a flat index.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, unsetCmds)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [flags] index word(s)",
	Short: "Flip the bit at a flat index.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidthAgnosticCmd(cmd, args, toggleCmds)
	},
}

// Available instances
var getCmds = []WidthAgnosticCmd{
	{"u8", runGetCmd[uint8]},
	{"i8", runGetCmd[int8]},
	{"u16", runGetCmd[uint16]},
	{"i16", runGetCmd[int16]},
	{"u32", runGetCmd[uint32]},
	{"i32", runGetCmd[int32]},
	{"u64", runGetCmd[uint64]},
	{"i64", runGetCmd[int64]},
}

var setCmds = []WidthAgnosticCmd{
	{"u8", runMutateCmd[uint8](array.Engine[uint8].SetBitAt)},
	{"i8", runMutateCmd[int8](array.Engine[int8].SetBitAt)},
	{"u16", runMutateCmd[uint16](array.Engine[uint16].SetBitAt)},
	{"i16", runMutateCmd[int16](array.Engine[int16].SetBitAt)},
	{"u32", runMutateCmd[uint32](array.Engine[uint32].SetBitAt)},
	{"i32", runMutateCmd[int32](array.Engine[int32].SetBitAt)},
	{"u64", runMutateCmd[uint64](array.Engine[uint64].SetBitAt)},
	{"i64", runMutateCmd[int64](array.Engine[int64].SetBitAt)},
}

var unsetCmds = []WidthAgnosticCmd{
	{"u8", runMutateCmd[uint8](array.Engine[uint8].UnsetBitAt)},
	{"i8", runMutateCmd[int8](array.Engine[int8].UnsetBitAt)},
	{"u16", runMutateCmd[uint16](array.Engine[uint16].UnsetBitAt)},
	{"i16", runMutateCmd[int16](array.Engine[int16].UnsetBitAt)},
	{"u32", runMutateCmd[uint32](array.Engine[uint32].UnsetBitAt)},
	{"i32", runMutateCmd[int32](array.Engine[int32].UnsetBitAt)},
	{"u64", runMutateCmd[uint64](array.Engine[uint64].UnsetBitAt)},
	{"i64", runMutateCmd[int64](array.Engine[int64].UnsetBitAt)},
}

var toggleCmds = []WidthAgnosticCmd{
	{"u8", runMutateCmd[uint8](array.Engine[uint8].ToggleBitAt)},
	{"i8", runMutateCmd[int8](array.Engine[int8].ToggleBitAt)},
	{"u16", runMutateCmd[uint16](array.Engine[uint16].ToggleBitAt)},
	{"i16", runMutateCmd[int16](array.Engine[int16].ToggleBitAt)},
	{"u32", runMutateCmd[uint32](array.Engine[uint32].ToggleBitAt)},
	{"i32", runMutateCmd[int32](array.Engine[int32].ToggleBitAt)},
	{"u64", runMutateCmd[uint64](array.Engine[uint64].ToggleBitAt)},
	{"i64", runMutateCmd[int64](array.Engine[int64].ToggleBitAt)},
}

// Parse the flat index and array of words common to all bit commands.
func parseIndexedWords[W word.Integer](e array.Engine[W], args []string) (uint, []W, error) {
	index, err := parseIndex(args[0])
	if err != nil {
		return 0, nil, err
	}
	//
	words, err := parseWords(e.Words(), args[1:])
	//
	return index, words, err
}

func runGetCmd[W word.Integer](cmd *cobra.Command, args []string) error {
	var e = newEngine[W](cmd)
	//
	index, words, err := parseIndexedWords(e, args)
	if err != nil {
		return err
	}
	//
	fmt.Fprintln(cmd.OutOrStdout(), e.BitAt(words, index))
	//
	return nil
}

// Construct a command which applies a given mutation at a flat index, and
// then prints the resulting array.
func runMutateCmd[W word.Integer](mutate func(array.Engine[W], []W, uint)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var e = newEngine[W](cmd)
		//
		index, words, err := parseIndexedWords(e, args)
		if err != nil {
			return err
		}
		//
		mutate(e, words, index)
		printWords(cmd.OutOrStdout(), e.Words(), words)
		//
		return nil
	}
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(toggleCmd)
}
