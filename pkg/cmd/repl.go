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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/exprlang/exprc/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "compile expressions interactively, one line at a time.",
	Long: `Read one expression per line, compile it with the selected target and print the
	 result or the error.  Every line is an independent compilation; a failed line
	 is reported and discarded.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		target := GetString(cmd, "target")
		// Use a proper read-line terminal when stdin is one
		if term.IsTerminal(0) {
			runTerminal(target)
		} else {
			runPiped(target)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// Interactive driver over a raw-mode terminal.
func runTerminal(target string) {
	state, err := term.MakeRaw(0)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	defer term.Restore(0, state)
	//
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	terminal := term.NewTerminal(screen, "> ")
	//
	for {
		line, err := terminal.ReadLine()
		// io.EOF signals ctrl-d
		if err != nil {
			return
		}
		//
		compileLine(terminal, line, target)
	}
}

// Non-interactive driver reading lines from a pipe or file.
func runPiped(target string) {
	scanner := bufio.NewScanner(os.Stdin)
	//
	for scanner.Scan() {
		compileLine(os.Stdout, scanner.Text(), target)
	}
}

// Compile a single line, reporting either the generated text or the error.
// Failures never terminate the driver, since the next line is a fresh
// compilation.
func compileLine(w io.Writer, line string, target string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	//
	text, err := compile(source.NewSourceFile("repl", []byte(line)), target)
	//
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	//
	fmt.Fprint(w, text)
	// Single-line targets carry no trailing newline
	if n := len(text); n == 0 || text[n-1] != '\n' {
		fmt.Fprintln(w)
	}
}
