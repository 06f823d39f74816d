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
	"os"
	"runtime/debug"

	"github.com/consensys/go-bitword/pkg/util/collection/array"
	"github.com/consensys/go-bitword/pkg/util/contract"
	"github.com/consensys/go-bitword/pkg/util/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitword",
	Short: "A toolbox for addressing the bits of machine words.",
	Long: `A toolbox for reading and manipulating the bits and bytes of fixed-width
machine words, and arrays thereof, using flat bit and byte indices.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("bitword ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			_ = cmd.Help()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// WidthAgnosticCmd represents a command to be executed for a given word width.
type WidthAgnosticCmd struct {
	Width    string
	Function func(*cobra.Command, []string) error
}

// Run a width agnostic top-level command.
func runWidthAgnosticCmd(cmd *cobra.Command, args []string, cmds []WidthAgnosticCmd) error {
	var width = GetString(cmd, "width")
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Find command to dispatch
	for _, c := range cmds {
		if c.Width == width {
			var err error
			//
			log.Debugf("dispatching %s for width %s", cmd.Name(), width)
			// Violations raised by a strict engine become errors
			if verr := contract.Catch(func() { err = c.Function(cmd, args) }); verr != nil {
				return verr
			}
			//
			return err
		}
	}
	//
	return fmt.Errorf("unknown width \"%s\" for command '%s'", width, cmd.Name())
}

// Construct an array engine for a command, using the policy selected by the
// "strict" flag.
func newEngine[W word.Integer](cmd *cobra.Command) array.Engine[W] {
	if GetFlag(cmd, "strict") {
		return array.New[W](contract.Strict)
	}
	//
	return array.New[W](contract.Logging)
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("width", "w", "i64", "word width (u8, i8, u16, i16, u32, i32, u64 or i64)")
	rootCmd.PersistentFlags().Bool("strict", true, "fail on out-of-range indices, rather than warn")
}
