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
	"strconv"
)

// Check walks a given abstract syntax tree depth-first and verifies that
// every integer literal fits within 32 bits.  This must run to completion
// before any code generator, since generators assume literal text is already
// known valid and perform no further range checking.
func Check(node Node) error {
	return Visit[error](&checker{}, node)
}

// Checker for the sole semantic rule of the language.  Non-literal nodes
// simply recurse into their children.
type checker struct{}

var _ Visitor[error] = (*checker)(nil)

func (p *checker) VisitProg(node *Prog) error {
	return Visit[error](p, node.Body)
}

func (p *checker) VisitPlus(node *Plus) error {
	return p.visitBinary(node.Lhs, node.Rhs)
}

func (p *checker) VisitTimes(node *Times) error {
	return p.visitBinary(node.Lhs, node.Rhs)
}

func (p *checker) VisitPow(node *Pow) error {
	return p.visitBinary(node.Base, node.Exp)
}

func (p *checker) VisitInt(node *Int) error {
	if _, err := strconv.ParseInt(node.Literal, 10, 32); err != nil {
		return &SemanticError{node.Literal}
	}
	//
	return nil
}

func (p *checker) visitBinary(lhs Node, rhs Node) error {
	if err := Visit[error](p, lhs); err != nil {
		return err
	}
	//
	return Visit[error](p, rhs)
}
