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

	"github.com/exprlang/exprc/pkg/util/source"
)

// SyntaxError indicates the parser could not match the current token against
// any expected production.  All syntax errors render identically; the span
// merely records the token on which parsing stopped.
type SyntaxError struct {
	span source.Span
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() source.Span {
	return p.span
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return "bad syntax"
}

// SemanticError indicates an integer literal which does not fit the supported
// integer width.
type SemanticError struct {
	literal string
}

// Literal returns the original text of the offending literal.
func (p *SemanticError) Literal() string {
	return p.literal
}

// Error implements the error interface.
func (p *SemanticError) Error() string {
	return fmt.Sprintf("integer literal too large: %s", p.literal)
}
