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
	"strconv"
	"strings"

	"github.com/exprlang/exprc/pkg/expr"
)

// WatTranslator renders a program as a WebAssembly text module.  The module
// imports a host pow function under "math" "pow" and exports a zero-argument
// function "start" which returns the value of the expression.  The function
// body is a stack-machine instruction sequence in postfix order: for every
// subtree both operands are pushed before the opcode which consumes them.
type WatTranslator struct{}

var _ expr.Visitor[[]Instruction] = (*WatTranslator)(nil)
var _ Generator = (*WatTranslator)(nil)

// Translate produces the stack-machine instruction sequence for a given
// program, without the surrounding module text.
func Translate(prog *expr.Prog) []Instruction {
	return expr.Visit[[]Instruction](&WatTranslator{}, prog)
}

// Generate renders the given program as a WebAssembly text module.
func (p *WatTranslator) Generate(prog *expr.Prog) string {
	var builder strings.Builder
	//
	builder.WriteString("(module\n")
	builder.WriteString("  (import \"math\" \"pow\" (func $pow (param i32 i32) (result i32)))\n")
	builder.WriteString("  (func\n")
	builder.WriteString("    (export \"start\")\n")
	builder.WriteString("    (result i32)\n")
	//
	for _, insn := range expr.Visit[[]Instruction](p, prog) {
		fmt.Fprintf(&builder, "    %s\n", insn.Wat())
	}
	//
	builder.WriteString("  )\n")
	builder.WriteString(")\n")
	//
	return builder.String()
}

// VisitProg translates the top-level expression.
func (p *WatTranslator) VisitProg(node *expr.Prog) []Instruction {
	return expr.Visit[[]Instruction](p, node.Body)
}

// VisitPlus translates an addition.
func (p *WatTranslator) VisitPlus(node *expr.Plus) []Instruction {
	return p.binary(&Add{}, node.Lhs, node.Rhs)
}

// VisitTimes translates a multiplication.
func (p *WatTranslator) VisitTimes(node *expr.Times) []Instruction {
	return p.binary(&Mul{}, node.Lhs, node.Rhs)
}

// VisitPow translates an exponentiation.
func (p *WatTranslator) VisitPow(node *expr.Pow) []Instruction {
	return p.binary(&CallPow{}, node.Base, node.Exp)
}

// VisitInt translates an integer literal into a constant push.  The literal
// is known to fit in 32 bits because semantic checking runs before any
// generator.
func (p *WatTranslator) VisitInt(node *expr.Int) []Instruction {
	value, _ := strconv.ParseInt(node.Literal, 10, 32)
	//
	return []Instruction{&Const{int32(value)}}
}

// Binary emits both operands (left first) followed by the opcode consuming
// them.
func (p *WatTranslator) binary(opcode Instruction, lhs expr.Node, rhs expr.Node) []Instruction {
	code := expr.Visit[[]Instruction](p, lhs)
	code = append(code, expr.Visit[[]Instruction](p, rhs)...)
	//
	return append(code, opcode)
}
