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
	"strings"

	"github.com/exprlang/exprc/pkg/expr"
)

// CTranslator renders a program as a standalone C program which prints the
// value of the expression and returns 0.  Exponentiation maps to the C
// library pow function, truncated back to int.  The output is meant to be
// compiled and executed by an external toolchain.
type CTranslator struct{}

var _ expr.Visitor[string] = (*CTranslator)(nil)
var _ Generator = (*CTranslator)(nil)

// Generate renders the given program in C.
func (p *CTranslator) Generate(prog *expr.Prog) string {
	return expr.Visit[string](p, prog)
}

// VisitProg wraps the top-level expression in a main function which prints
// its value in decimal.
func (p *CTranslator) VisitProg(node *expr.Prog) string {
	var builder strings.Builder
	//
	builder.WriteString("#include <stdio.h>\n")
	builder.WriteString("#include <math.h>\n")
	builder.WriteString("\n")
	builder.WriteString("int main(void) {\n")
	fmt.Fprintf(&builder, "    printf(\"%%d\\n\", %s);\n", expr.Visit[string](p, node.Body))
	builder.WriteString("    return 0;\n")
	builder.WriteString("}\n")
	//
	return builder.String()
}

// VisitPlus translates an addition.
func (p *CTranslator) VisitPlus(node *expr.Plus) string {
	return fmt.Sprintf("(%s+%s)", expr.Visit[string](p, node.Lhs), expr.Visit[string](p, node.Rhs))
}

// VisitTimes translates a multiplication.
func (p *CTranslator) VisitTimes(node *expr.Times) string {
	return fmt.Sprintf("(%s*%s)", expr.Visit[string](p, node.Lhs), expr.Visit[string](p, node.Rhs))
}

// VisitPow translates an exponentiation.
func (p *CTranslator) VisitPow(node *expr.Pow) string {
	return fmt.Sprintf("(int) pow(%s, %s)", expr.Visit[string](p, node.Base), expr.Visit[string](p, node.Exp))
}

// VisitInt translates an integer literal.
func (p *CTranslator) VisitInt(node *expr.Int) string {
	return node.Literal
}
