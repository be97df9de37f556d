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
	"github.com/exprlang/exprc/pkg/expr"
	"github.com/exprlang/exprc/pkg/util/sexp"
)

// LispTranslator renders a program in prefix (Lisp) notation, with
// exponentiation spelt "expt" and literals carried over verbatim.
type LispTranslator struct{}

var _ expr.Visitor[sexp.SExp] = (*LispTranslator)(nil)
var _ Generator = (*LispTranslator)(nil)

// Generate renders the given program as an s-expression.
func (p *LispTranslator) Generate(prog *expr.Prog) string {
	return expr.Visit[sexp.SExp](p, prog).String()
}

// VisitProg translates the top-level expression.
func (p *LispTranslator) VisitProg(node *expr.Prog) sexp.SExp {
	return expr.Visit[sexp.SExp](p, node.Body)
}

// VisitPlus translates an addition.
func (p *LispTranslator) VisitPlus(node *expr.Plus) sexp.SExp {
	return p.binary("+", node.Lhs, node.Rhs)
}

// VisitTimes translates a multiplication.
func (p *LispTranslator) VisitTimes(node *expr.Times) sexp.SExp {
	return p.binary("*", node.Lhs, node.Rhs)
}

// VisitPow translates an exponentiation.
func (p *LispTranslator) VisitPow(node *expr.Pow) sexp.SExp {
	return p.binary("expt", node.Base, node.Exp)
}

// VisitInt translates an integer literal.
func (p *LispTranslator) VisitInt(node *expr.Int) sexp.SExp {
	return sexp.NewSymbol(node.Literal)
}

func (p *LispTranslator) binary(op string, lhs expr.Node, rhs expr.Node) sexp.SExp {
	return sexp.NewList(
		sexp.NewSymbol(op),
		expr.Visit[sexp.SExp](p, lhs),
		expr.Visit[sexp.SExp](p, rhs))
}
