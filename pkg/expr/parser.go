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
	"slices"

	"github.com/exprlang/exprc/pkg/util/source"
	"github.com/exprlang/exprc/pkg/util/source/lex"
)

// Parse parses a given source file into an abstract syntax tree, using
// single-token lookahead over the following grammar:
//
//	Prog   ::= Exp END_OF
//	Exp    ::= Term (ADD Term)*
//	Term   ::= Pow (MUL Pow)*
//	Pow    ::= Factor (POW Pow)?
//	Factor ::= NUMBER | LBRACE Exp RBRACE
//
// ADD and MUL are left-associative, realised by iteration folding successive
// matches into a left-deepening tree.  POW is right-associative, realised by
// right recursion.
func Parse(srcfile *source.File) (*Prog, error) {
	parser := &parser{srcfile, Lex(srcfile), 0}
	//
	return parser.parseProg()
}

// ParseString parses a given input string into an abstract syntax tree.  This
// is really a helper function for e.g. the testing environment.
func ParseString(input string) (*Prog, error) {
	return Parse(source.NewSourceFile("expr", []byte(input)))
}

// Parser for the expression language.  The token sequence is consumed in a
// single forward pass via the index; nothing ever re-reads or rewinds it.
type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *parser) parseProg() (*Prog, error) {
	body, err := p.parseExp()
	//
	if err != nil {
		return nil, err
	}
	//
	eof, err := p.expect(END_OF)
	//
	if err != nil {
		return nil, err
	}
	//
	return &Prog{body, eof}, nil
}

func (p *parser) parseExp() (Node, error) {
	lhs, err := p.parseTerm()
	// Fold successive additions into a left-deepening tree
	for err == nil && p.follows(ADD) {
		var rhs Node
		// Consume operator
		tok := p.advance()
		//
		if rhs, err = p.parseTerm(); err == nil {
			lhs = &Plus{lhs, rhs, tok}
		}
	}
	//
	return lhs, err
}

func (p *parser) parseTerm() (Node, error) {
	lhs, err := p.parsePow()
	// Fold successive multiplications into a left-deepening tree
	for err == nil && p.follows(MUL) {
		var rhs Node
		// Consume operator
		tok := p.advance()
		//
		if rhs, err = p.parsePow(); err == nil {
			lhs = &Times{lhs, rhs, tok}
		}
	}
	//
	return lhs, err
}

func (p *parser) parsePow() (Node, error) {
	base, err := p.parseFactor()
	//
	if err != nil || !p.follows(POW) {
		return base, err
	}
	// Consume operator
	tok := p.advance()
	// Recurse on the right-hand side, hence a run of exponentiations nests
	// right-deep.
	exp, err := p.parsePow()
	//
	if err != nil {
		return nil, err
	}
	//
	return &Pow{base, exp, tok}, nil
}

func (p *parser) parseFactor() (Node, error) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NUMBER:
		p.advance()
		//
		return &Int{p.srcfile.Text(token.Span), token}, nil
	case LBRACE:
		p.advance()
		//
		exp, err := p.parseExp()
		//
		if err != nil {
			return nil, err
		}
		//
		if _, err := p.expect(RBRACE); err != nil {
			return nil, err
		}
		// Parentheses are not represented in the tree
		return exp, nil
	}
	//
	return nil, p.syntaxError(token)
}

// Follows checks whether one of the given token kinds is next.
func (p *parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because END_OF is always
// appended at the end of the token stream.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Advance consumes the next token and returns it.
func (p *parser) advance() lex.Token {
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

// Expect consumes the next token provided it has a given kind, otherwise it
// fails with a syntax error.
func (p *parser) expect(kind uint) (lex.Token, error) {
	if p.lookahead().Kind != kind {
		return lex.Token{}, p.syntaxError(p.lookahead())
	}
	//
	return p.advance(), nil
}

func (p *parser) syntaxError(token lex.Token) error {
	return &SyntaxError{token.Span}
}
