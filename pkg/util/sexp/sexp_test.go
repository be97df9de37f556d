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
package sexp

import "testing"

func TestSexp_01(t *testing.T) {
	checkString(t, NewSymbol("42"), "42")
}

func TestSexp_02(t *testing.T) {
	checkString(t, NewList(), "()")
}

func TestSexp_03(t *testing.T) {
	sexp := NewList(NewSymbol("+"), NewSymbol("1"), NewSymbol("2"))
	checkString(t, sexp, "(+ 1 2)")
}

func TestSexp_04(t *testing.T) {
	inner := NewList(NewSymbol("expt"), NewSymbol("2"), NewSymbol("3"))
	sexp := NewList(NewSymbol("*"), NewSymbol("4"), inner)
	checkString(t, sexp, "(* 4 (expt 2 3))")
}

func checkString(t *testing.T, sexp SExp, expected string) {
	if actual := sexp.String(); actual != expected {
		t.Errorf("got %q, expected %q", actual, expected)
	}
}
