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
	"math"
)

// Instruction provides an abstract notion of one operation of the stack
// machine targeted by the WebAssembly translator.  Operands are pushed before
// the operator which consumes them, hence a well-formed sequence encodes a
// complete expression without any operand reordering.
type Instruction interface {
	// Wat renders this instruction in WebAssembly text format.
	Wat() string
	// Execute applies this instruction to a given operand stack, returning
	// the updated stack.
	Execute(stack []int32) []int32
}

// Execute runs a complete instruction sequence on an initially empty operand
// stack, returning the value left at the top.  The sequence must be balanced,
// that is leave exactly one operand behind.
func Execute(code []Instruction) int32 {
	var stack []int32
	//
	for _, insn := range code {
		stack = insn.Execute(stack)
	}
	//
	if len(stack) != 1 {
		panic(fmt.Sprintf("unbalanced instruction sequence (%d operands left)", len(stack)))
	}
	//
	return stack[0]
}

// Const pushes a constant onto the operand stack.
type Const struct {
	Value int32
}

// Add pops two operands off the stack and pushes their sum.
type Add struct{}

// Mul pops two operands off the stack and pushes their product.
type Mul struct{}

// CallPow pops the exponent and base off the stack and pushes the base raised
// to the exponent, truncated back to an integer.  In the rendered module this
// is a call to the imported host pow function.
type CallPow struct{}

// Wat renders this constant push in WebAssembly text format.
func (p *Const) Wat() string {
	return fmt.Sprintf("i32.const %d", p.Value)
}

// Execute pushes the constant.
func (p *Const) Execute(stack []int32) []int32 {
	return append(stack, p.Value)
}

// Wat renders this addition in WebAssembly text format.
func (p *Add) Wat() string {
	return "i32.add"
}

// Execute replaces the top two operands with their sum.
func (p *Add) Execute(stack []int32) []int32 {
	n := len(stack)
	stack[n-2] = stack[n-2] + stack[n-1]
	//
	return stack[:n-1]
}

// Wat renders this multiplication in WebAssembly text format.
func (p *Mul) Wat() string {
	return "i32.mul"
}

// Execute replaces the top two operands with their product.
func (p *Mul) Execute(stack []int32) []int32 {
	n := len(stack)
	stack[n-2] = stack[n-2] * stack[n-1]
	//
	return stack[:n-1]
}

// Wat renders this call in WebAssembly text format.
func (p *CallPow) Wat() string {
	return "call $pow"
}

// Execute replaces the top two operands with the result of exponentiation, as
// a compliant host pow function would.
func (p *CallPow) Execute(stack []int32) []int32 {
	n := len(stack)
	stack[n-2] = int32(math.Pow(float64(stack[n-2]), float64(stack[n-1])))
	//
	return stack[:n-1]
}
