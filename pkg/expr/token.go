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
package expr

import (
	"github.com/exprlang/exprc/pkg/util/source"
	"github.com/exprlang/exprc/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// NUMBER signals an integer number
const NUMBER uint = 2

// ADD signals integer addition "+"
const ADD uint = 3

// MUL signals integer multiplication "*"
const MUL uint = 4

// POW signals integer exponentiation "^"
const POW uint = 5

// LBRACE signals "("
const LBRACE uint = 6

// RBRACE signals ")"
const RBRACE uint = 7

// BAD signals a character which no other rule accepts.  This is not itself an
// error, since no grammar production accepts it, the parser eventually
// rejects it as a syntax error.
const BAD uint = 8

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\r'),
	lex.Unit('\n')))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// lexing rules, ordered by priority.  Observe the fallback rule which sweeps
// up unknown characters one at a time.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(number, NUMBER),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('^'), POW),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Any[rune](), BAD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex tokenises a given source file, eliding any whitespace.  The resulting
// sequence always ends with exactly one END_OF token, regardless of input.
func Lex(srcfile *source.File) []lex.Token {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	// Lex all tokens in one go
	tokens := lexer.Collect()
	// Remove any whitespace
	n := 0
	//
	for _, t := range tokens {
		if t.Kind != WHITESPACE {
			tokens[n] = t
			n++
		}
	}
	//
	return tokens[:n]
}
