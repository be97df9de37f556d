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

	"github.com/exprlang/exprc/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] source_file",
	Short: "compile an expression into the selected target representation.",
	Long: `Compile a single expression, read from a source file or given inline via --expr,
	 into exactly one of the available target representations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		target := GetString(cmd, "target")
		output := GetString(cmd, "output")
		// Determine the expression source
		srcfile := readSource(cmd, args)
		// Run the pipeline
		text, err := compile(srcfile, target)
		// Failures are terminal for this compilation
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		writeOutput(output, text)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("expr", "e", "", "compile the given expression instead of a source file.")
	compileCmd.Flags().StringP("output", "o", "", "specify output file (defaults to stdout).")
}

// Determine the source of the expression being compiled: either an inline
// --expr argument, or exactly one source file.
func readSource(cmd *cobra.Command, args []string) *source.File {
	if input := GetString(cmd, "expr"); input != "" {
		if len(args) != 0 {
			fmt.Println("cannot give both --expr and a source file")
			os.Exit(2)
		}
		//
		return source.NewSourceFile("expr", []byte(input))
	}
	//
	if len(args) != 1 {
		fmt.Println("expected exactly one source file")
		os.Exit(2)
	}
	//
	srcfile, err := source.ReadFile(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return srcfile
}

// Write the generated text either to a given file, or to stdout when no file
// is given.
func writeOutput(filename string, text string) {
	if filename == "" {
		fmt.Print(text)
		// Single-line targets carry no trailing newline
		if n := len(text); n == 0 || text[n-1] != '\n' {
			fmt.Println()
		}
		//
		return
	}
	//
	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
