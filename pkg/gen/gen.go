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
package gen

import (
	"fmt"

	"github.com/exprlang/exprc/pkg/expr"
)

// Generator renders a program into one specific target representation.  Every
// generator is total over the AST variant set and assumes the program has
// already passed semantic checking.  Exactly one generator runs per
// compilation; rendering the same tree twice yields identical output.
type Generator interface {
	// Generate renders the given program.
	Generate(prog *expr.Prog) string
}

// For returns the generator registered under a given target name, or an error
// if no such target exists.
func For(target string) (Generator, error) {
	switch target {
	case "eval":
		return &Evaluator{}, nil
	case "lisp":
		return &LispTranslator{}, nil
	case "c":
		return &CTranslator{}, nil
	case "wat":
		return &WatTranslator{}, nil
	}
	//
	return nil, fmt.Errorf("unknown target %q", target)
}

// Targets returns the names of all available targets.
func Targets() []string {
	return []string{"c", "eval", "lisp", "wat"}
}
