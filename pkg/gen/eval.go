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
	"math"
	"strconv"

	"github.com/exprlang/exprc/pkg/expr"
)

// Evaluator computes the numeric value of a program directly, without
// producing a target program.
type Evaluator struct{}

var _ expr.Visitor[int] = (*Evaluator)(nil)
var _ Generator = (*Evaluator)(nil)

// Evaluate computes the value of a given program.
func Evaluate(prog *expr.Prog) int {
	return expr.Visit[int](&Evaluator{}, prog)
}

// Generate renders the value of the given program in decimal.
func (p *Evaluator) Generate(prog *expr.Prog) string {
	return strconv.Itoa(expr.Visit[int](p, prog))
}

// VisitProg evaluates the top-level expression.
func (p *Evaluator) VisitProg(node *expr.Prog) int {
	return expr.Visit[int](p, node.Body)
}

// VisitPlus evaluates an addition.
func (p *Evaluator) VisitPlus(node *expr.Plus) int {
	return expr.Visit[int](p, node.Lhs) + expr.Visit[int](p, node.Rhs)
}

// VisitTimes evaluates a multiplication.
func (p *Evaluator) VisitTimes(node *expr.Times) int {
	return expr.Visit[int](p, node.Lhs) * expr.Visit[int](p, node.Rhs)
}

// VisitPow evaluates an exponentiation using real arithmetic, truncating the
// result back to an integer.
func (p *Evaluator) VisitPow(node *expr.Pow) int {
	base := expr.Visit[int](p, node.Base)
	exp := expr.Visit[int](p, node.Exp)
	//
	return int(math.Pow(float64(base), float64(exp)))
}

// VisitInt evaluates an integer literal.  The literal is known valid because
// semantic checking runs before any generator.
func (p *Evaluator) VisitInt(node *expr.Int) int {
	value, _ := strconv.Atoi(node.Literal)
	//
	return value
}
