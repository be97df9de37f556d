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

	"github.com/exprlang/exprc/pkg/expr"
	"github.com/exprlang/exprc/pkg/gen"
	"github.com/exprlang/exprc/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Compile runs the whole pipeline over a single expression source: scan,
// parse, check, then render with the generator selected by the target name.
// The pipeline is strictly linear; the first failure aborts the remaining
// stages.
func compile(srcfile *source.File, target string) (string, error) {
	generator, err := gen.For(target)
	//
	if err != nil {
		return "", err
	}
	//
	log.Debugf("compiling %s for target %s", srcfile.Filename(), target)
	// Scan and parse
	prog, err := expr.Parse(srcfile)
	//
	if err != nil {
		return "", err
	}
	//
	log.Debug("parsed expression")
	// Validate integer literals
	if err := expr.Check(prog); err != nil {
		return "", err
	}
	//
	log.Debug("semantic checks passed")
	// Render
	return generator.Generate(prog), nil
}

// GetFlag gets an expected flag, or terminates with an error.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or terminates with an error.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
