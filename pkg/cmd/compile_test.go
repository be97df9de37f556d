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
	"strings"
	"testing"

	"github.com/exprlang/exprc/pkg/util/source"
)

func TestCompile_01(t *testing.T) {
	text, err := compile(srcfile("2+3*4"), "eval")
	//
	if err != nil {
		t.Fatal(err)
	} else if text != "14" {
		t.Errorf("got %q, expected %q", text, "14")
	}
}

func TestCompile_02(t *testing.T) {
	text, err := compile(srcfile("2+3*4"), "lisp")
	//
	if err != nil {
		t.Fatal(err)
	} else if text != "(+ 2 (* 3 4))" {
		t.Errorf("got %q, expected %q", text, "(+ 2 (* 3 4))")
	}
}

func TestCompile_03(t *testing.T) {
	text, err := compile(srcfile("2^8"), "wat")
	//
	if err != nil {
		t.Fatal(err)
	} else if !strings.Contains(text, "call $pow") {
		t.Errorf("generated module lacks pow call:\n%s", text)
	}
}

func TestCompile_04(t *testing.T) {
	text, err := compile(srcfile("1+1"), "c")
	//
	if err != nil {
		t.Fatal(err)
	} else if !strings.Contains(text, "int main(void)") {
		t.Errorf("generated program lacks main:\n%s", text)
	}
}

func TestCompileInvalid_01(t *testing.T) {
	// Syntax errors are uniform, with no positional detail.
	if _, err := compile(srcfile("2-3"), "eval"); err == nil || err.Error() != "bad syntax" {
		t.Errorf("got %v, expected %q", err, "bad syntax")
	}
}

func TestCompileInvalid_02(t *testing.T) {
	_, err := compile(srcfile("99999999999"), "eval")
	//
	if err == nil || !strings.Contains(err.Error(), "99999999999") {
		t.Errorf("error %v does not report the offending literal", err)
	}
}

func TestCompileInvalid_03(t *testing.T) {
	if _, err := compile(srcfile("1+1"), "jvm"); err == nil {
		t.Errorf("expected error for unknown target")
	}
}

func srcfile(input string) *source.File {
	return source.NewSourceFile("test", []byte(input))
}
