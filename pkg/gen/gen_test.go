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
	"testing"

	"github.com/exprlang/exprc/pkg/expr"
)

func TestFor_01(t *testing.T) {
	for _, target := range Targets() {
		if _, err := For(target); err != nil {
			t.Errorf("unexpected error for target %q: %v", target, err)
		}
	}
}

func TestFor_02(t *testing.T) {
	if _, err := For("jvm"); err == nil {
		t.Errorf("expected error for unknown target")
	}
}

// Executing the translated stack machine program must agree with direct
// evaluation for every valid input.
func TestConsistency(t *testing.T) {
	inputs := []string{
		"0",
		"42",
		"2+3",
		"2+3*4",
		"2*3+4",
		"2^3^2",
		"(2+3)*4",
		"2^10",
		"1+2+3+4",
		"2*(3+4)^2",
	}
	//
	for _, input := range inputs {
		prog := mustCompile(t, input)
		//
		direct := Evaluate(prog)
		machine := int(Execute(Translate(prog)))
		//
		if direct != machine {
			t.Errorf("evaluation of %q diverges: %d direct, %d on stack machine", input, direct, machine)
		}
	}
}

// Re-rendering the same tree through the same generator must yield
// byte-identical output.
func TestIdempotence(t *testing.T) {
	prog := mustCompile(t, "2*(3+4)^2")
	//
	for _, target := range Targets() {
		generator, err := For(target)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		if first, second := generator.Generate(prog), generator.Generate(prog); first != second {
			t.Errorf("target %q not idempotent:\n%s\n%s", target, first, second)
		}
	}
}

func mustCompile(t *testing.T, input string) *expr.Prog {
	prog, err := expr.ParseString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", input, err)
	}
	//
	if err := expr.Check(prog); err != nil {
		t.Fatalf("unexpected semantic error for %q: %v", input, err)
	}
	//
	return prog
}
