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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-bitword/pkg/util/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected int, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a word given in decimal, or with a base prefix (e.g. "0x" or "0b").
// Signed words may also be given as an unsigned bit pattern, such that (for
// example) 0xFF is accepted as the i8 value -1.
func parseWord[W word.Integer](e word.Engine[W], arg string) (W, error) {
	var bits = int(e.Width().Bits())
	//
	if e.Width().Signed() {
		if v, err := strconv.ParseInt(arg, 0, bits); err == nil {
			return W(v), nil
		}
	}
	//
	v, err := strconv.ParseUint(arg, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %s word \"%s\"", e.Width(), arg)
	}
	//
	return e.FromPattern(v), nil
}

// Parse zero or more words.
func parseWords[W word.Integer](e word.Engine[W], args []string) ([]W, error) {
	var words = make([]W, len(args))
	//
	for i, arg := range args {
		w, err := parseWord(e, arg)
		if err != nil {
			return nil, err
		}
		//
		words[i] = w
	}
	//
	return words, nil
}

// Parse a flat bit or byte index.
func parseIndex(arg string) (uint, error) {
	index, err := strconv.ParseUint(arg, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid index \"%s\": %w", arg, err)
	}
	//
	return uint(index), nil
}

// Determine the width (in columns) of the terminal attached to a given
// output, if there is one.
func terminalWidth(out io.Writer) (int, bool) {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			return width, true
		}
	}
	//
	return 0, false
}

// Split a binary string into groups of n characters separated by a space.
func groupBits(s string, n int) string {
	var builder strings.Builder
	//
	for i := 0; i < len(s); i += n {
		if i != 0 {
			builder.WriteByte(' ')
		}
		//
		builder.WriteString(s[i:min(i+n, len(s))])
	}
	//
	return builder.String()
}

// Print an array of words, one per line, along with its binary encoding.  On a
// terminal, the binary encoding is split into bytes and wrapped one word per
// line when it does not fit.
func printWords[W word.Integer](out io.Writer, e word.Engine[W], words []W) {
	var (
		bits  = int(e.Width().Bits())
		lines []string
	)
	//
	for _, w := range words {
		lines = append(lines, e.BitString(w))
	}
	//
	if width, ok := terminalWidth(out); ok {
		for i := range lines {
			lines[i] = groupBits(lines[i], 8)
		}
		//
		if total := len(lines) * (bits + bits/8); total <= width {
			lines = []string{strings.Join(lines, " | ")}
		}
	} else {
		lines = []string{strings.Join(lines, "")}
	}
	//
	for i, w := range words {
		fmt.Fprintf(out, "[%d] %d (0x%s)\n", i, w, e.HexString(w))
	}
	//
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
