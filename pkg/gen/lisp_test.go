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
)

func TestLisp(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"2+3", "(+ 2 3)"},
		{"2+3*4", "(+ 2 (* 3 4))"},
		{"1+2+3", "(+ (+ 1 2) 3)"},
		{"2^3^2", "(expt 2 (expt 3 2))"},
		{"(2+3)*4", "(* (+ 2 3) 4)"},
		{"2*3^4", "(* 2 (expt 3 4))"},
	}
	//
	var translator LispTranslator
	//
	for _, test := range tests {
		prog := mustCompile(t, test.input)
		//
		if got := translator.Generate(prog); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}
