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
	"fmt"

	"github.com/exprlang/exprc/pkg/util/source/lex"
)

// Node represents all of the different expression forms within the Abstract
// Syntax Tree (AST).  Operator grouping is encoded by shape rather than by an
// explicit flag: a run of left-associative operators nests left-deep, whilst
// a run of right-associative operators nests right-deep.  Parentheses in the
// source are not represented in the tree.
type Node interface {
	// Anchor returns the operator or literal token from which this node was
	// constructed, used for diagnostics.
	Anchor() lex.Token
}

// Prog is the root of every abstract syntax tree, holding exactly one child:
// the top-level expression.  Its anchor is the end-of-file token.
type Prog struct {
	Body Node
	Tok  lex.Token
}

// Plus is integer addition over its two children (left, right).
type Plus struct {
	Lhs Node
	Rhs Node
	Tok lex.Token
}

// Times is integer multiplication over its two children (left, right).
type Times struct {
	Lhs Node
	Rhs Node
	Tok lex.Token
}

// Pow is integer exponentiation over its two children (base, exponent).
type Pow struct {
	Base Node
	Exp  Node
	Tok  lex.Token
}

// Int is a decimal integer literal.  It has no children; its anchor token
// supplies the literal text, held verbatim in Literal.
type Int struct {
	Literal string
	Tok     lex.Token
}

// NOTE: This is used for compile time type checking if the given types
// satisfy the given interface.
var _ Node = (*Prog)(nil)
var _ Node = (*Plus)(nil)
var _ Node = (*Times)(nil)
var _ Node = (*Pow)(nil)
var _ Node = (*Int)(nil)

// Anchor returns the end-of-file token of this program.
func (p *Prog) Anchor() lex.Token { return p.Tok }

// Anchor returns the "+" token of this addition.
func (p *Plus) Anchor() lex.Token { return p.Tok }

// Anchor returns the "*" token of this multiplication.
func (p *Times) Anchor() lex.Token { return p.Tok }

// Anchor returns the "^" token of this exponentiation.
func (p *Pow) Anchor() lex.Token { return p.Tok }

// Anchor returns the literal token of this number.
func (p *Int) Anchor() lex.Token { return p.Tok }

// Visitor provides one operation per AST variant.  Every transform over the
// tree implements this interface, hence adding a new variant forces every
// transform to be updated before the package compiles again.
type Visitor[T any] interface {
	// VisitProg transforms the program root.
	VisitProg(*Prog) T
	// VisitPlus transforms an addition.
	VisitPlus(*Plus) T
	// VisitTimes transforms a multiplication.
	VisitTimes(*Times) T
	// VisitPow transforms an exponentiation.
	VisitPow(*Pow) T
	// VisitInt transforms an integer literal.
	VisitInt(*Int) T
}

// Visit dispatches a given node to the matching operation of a given visitor.
// This is the single dispatch point over the variant set.
func Visit[T any](visitor Visitor[T], node Node) T {
	switch n := node.(type) {
	case *Prog:
		return visitor.VisitProg(n)
	case *Plus:
		return visitor.VisitPlus(n)
	case *Times:
		return visitor.VisitTimes(n)
	case *Pow:
		return visitor.VisitPow(n)
	case *Int:
		return visitor.VisitInt(n)
	default:
		panic(fmt.Sprintf("unknown AST node %T", node))
	}
}
