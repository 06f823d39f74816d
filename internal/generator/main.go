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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// widthSpec describes one Integer type for which per-width tests are
// generated.
type widthSpec struct {
	// Test name prefix (e.g. "Uint8")
	Name string
	// Go type (e.g. "uint8")
	Type string
	// Whether every value of the type should be checked.
	Exhaustive bool
}

type wordConfig struct {
	Widths []widthSpec
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-bitword")
	//
	cfg := wordConfig{
		Widths: []widthSpec{
			{Name: "Uint8", Type: "uint8", Exhaustive: true},
			{Name: "Int8", Type: "int8", Exhaustive: true},
			{Name: "Uint16", Type: "uint16", Exhaustive: true},
			{Name: "Int16", Type: "int16", Exhaustive: true},
			{Name: "Uint32", Type: "uint32"},
			{Name: "Int32", Type: "int32"},
			{Name: "Uint64", Type: "uint64"},
			{Name: "Int64", Type: "int64"},
		},
	}
	//
	assertNoError(bgen.Generate(cfg, "word", "templates",
		bavard.Entry{
			File:      "../../pkg/util/word/width_test.go",
			Templates: []string{"width.test.go.tmpl"},
		},
	), "for package \"%s\"", "word")
	//
	assertNoError(bgen.Generate(cfg, "array", "templates",
		bavard.Entry{
			File:      "../../pkg/util/collection/array/width_test.go",
			Templates: []string{"array.test.go.tmpl"},
		},
	), "for package \"%s\"", "array")
	// run gofmt on generated files
	runCmd("gofmt", "-w", "../../pkg/util/word/width_test.go", "../../pkg/util/collection/array/width_test.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
