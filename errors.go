// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"fmt"
)

var (
	_ Diagnostic = (*SyntaxError)(nil)
	_ Diagnostic = (*TypeMismatch)(nil)
)

// Diagnostic is a fatal error in the checked program. Diagnostic returns the
// exact text printed for it.
type Diagnostic interface {
	error
	Diagnostic() string
}

// SyntaxError reports a token not allowed by the grammar. Lexical errors
// end up here too, as the parser rejects the ERROR token.
type SyntaxError struct {
	Line int
	Src  string // lexeme of the rejected token
	Kind string // its token kind
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d: syntax error: unexpected %s %q", e.Line, e.Kind, e.Src)
}

// Diagnostic returns a blank line followed by "Syntax Error".
func (e *SyntaxError) Diagnostic() string { return "\nSyntax Error" }

// Rule identifies the type rule a TypeMismatch violates.
type Rule int

const (
	RuleAssign    Rule = iota + 1 // C1: an int or real variable keeps its type
	RuleOperands                  // C2: binary operands agree
	RuleNot                       // C3: operand of ! is bool
	RuleCondition                 // C4: if and while conditions are bool
	RuleSwitch                    // C5: switch subject is int
)

func (r Rule) String() string { return fmt.Sprintf("C%d", int(r)) }

// TypeMismatch reports a violated type rule.
type TypeMismatch struct {
	Line int
	Rule Rule
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("%d: type mismatch %v", e.Line, e.Rule)
}

// Diagnostic returns "TYPE MISMATCH <line> C<k>".
func (e *TypeMismatch) Diagnostic() string {
	return fmt.Sprintf("TYPE MISMATCH %d %v", e.Line, e.Rule)
}
