// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"modernc.org/mathutil"
)

// parser checks types while it parses. Every nonterminal method consumes
// exactly its production, using the scanner's pushback for lookahead, and
// the expression methods return the type of what they parsed.
type parser struct {
	*scanner
	tab   *table
	trace tracer

	last     tok // most recently consumed token, diagnostics use its line
	depth    int // of nested bodies
	maxDepth int
}

func newParser(b []byte, name string) (*parser, error) {
	s, err := newScanner(b, name)
	if err != nil {
		return nil, err
	}

	return &parser{scanner: s, tab: newTable()}, nil
}

func (p *parser) next() tok {
	p.last = p.scanner.next()
	return p.last
}

// peek does not change p.last.
func (p *parser) peek() tok {
	t := p.scanner.next()
	p.unget(t)
	return t
}

func (p *parser) must(ch char) (tok, error) {
	t := p.next()
	if t.ch != ch {
		return t, p.syntaxError(t)
	}

	return t, nil
}

func (p *parser) enter(name string) func() {
	if p.trace.f == nil {
		return func() {}
	}

	return p.trace.enter(name, p.peek())
}

func (p *parser) syntaxError(t tok) error {
	return &SyntaxError{Line: t.line, Src: t.src, Kind: t.ch.String()}
}

func (p *parser) mismatch(r Rule) error {
	return &TypeMismatch{Line: p.last.line, Rule: r}
}

func (p *parser) unify(old, typ Type) {
	p.trace.unify(p.tab.resolve(old), p.tab.resolve(typ))
	p.tab.unify(old, typ)
}

// Program = { [ GlobalVars ] Body } EOF .
func (p *parser) program() error {
	defer p.enter("program")()

	for {
		switch t := p.peek(); t.ch {
		case EOF:
			p.next()
			return nil
		case IDENTIFIER:
			if err := p.globalVars(); err != nil {
				return err
			}
		case '{':
			// ok
		default:
			return p.syntaxError(p.next())
		}

		if err := p.body(); err != nil {
			return err
		}
	}
}

// GlobalVars = VarDecl { VarDecl } .
func (p *parser) globalVars() error {
	defer p.enter("globalVars")()

	for {
		if err := p.varDecl(); err != nil {
			return err
		}

		if p.peek().ch != IDENTIFIER {
			return nil
		}
	}
}

// VarDecl = VarList ":" TypeName ";" .
func (p *parser) varDecl() error {
	defer p.enter("varDecl")()

	if err := p.varList(); err != nil {
		return err
	}

	if _, err := p.must(':'); err != nil {
		return err
	}

	if err := p.typeName(); err != nil {
		return err
	}

	_, err := p.must(';')
	return err
}

// VarList = Identifier { "," Identifier } .
func (p *parser) varList() error {
	defer p.enter("varList")()

	for {
		id, err := p.must(IDENTIFIER)
		if err != nil {
			return err
		}

		p.tab.lookup(id.src, id.line)
		switch t := p.next(); t.ch {
		case ',':
			// ok
		case ':':
			p.unget(t)
			return nil
		default:
			return p.syntaxError(t)
		}
	}
}

// TypeName = "int" | "real" | "bool" .
//
// The type applies to every symbol first seen on the line of the type name.
func (p *parser) typeName() error {
	defer p.enter("typeName")()

	switch t := p.next(); t.ch {
	case INT, REAL, BOOL:
		p.tab.assignDeclared(t.line, typeOfKeyword(t.ch))
		return nil
	default:
		return p.syntaxError(t)
	}
}

// Body = "{" { Stmt } "}" .
//
// At the end of input a body is empty and the EOF is left for the caller.
func (p *parser) body() error {
	defer p.enter("body")()

	switch t := p.next(); t.ch {
	case '{':
		// ok
	case EOF:
		p.unget(t)
		return nil
	default:
		return p.syntaxError(t)
	}

	p.depth++
	p.maxDepth = mathutil.Max(p.maxDepth, p.depth)
	defer func() { p.depth-- }()

	for {
		switch t := p.peek(); t.ch {
		case '}':
			p.next()
			return nil
		case IDENTIFIER, IF, WHILE, SWITCH:
			if err := p.stmt(); err != nil {
				return err
			}
		default:
			return p.syntaxError(p.next())
		}
	}
}

// Stmt = Assignment | IfStmt | WhileStmt | SwitchStmt .
func (p *parser) stmt() error {
	switch t := p.peek(); t.ch {
	case IDENTIFIER:
		return p.assignment()
	case IF, WHILE:
		return p.conditional(t.ch)
	case SWITCH:
		return p.switchStmt()
	default:
		return p.syntaxError(p.next())
	}
}

// Assignment = Identifier "=" Expr ";" .
func (p *parser) assignment() error {
	defer p.enter("assignment")()

	id, err := p.must(IDENTIFIER)
	if err != nil {
		return err
	}

	lhs := p.tab.lookup(id.src, id.line)
	if _, err := p.must('='); err != nil {
		return err
	}

	rhs, err := p.expr()
	if err != nil {
		return err
	}

	lhs, rhs = p.tab.resolve(lhs), p.tab.resolve(rhs)
	switch {
	case lhs == rhs:
		// ok
	case lhs == Bool:
		// A bool variable takes a value of any type.
		if !rhs.Resolved() {
			p.unify(rhs, Bool)
		}
	case lhs.Resolved():
		return p.mismatch(RuleAssign)
	default:
		p.unify(lhs, rhs)
	}

	_, err = p.must(';')
	return err
}

// IfStmt = "if" "(" Expr ")" Body .
// WhileStmt = "while" "(" Expr ")" Body .
func (p *parser) conditional(kw char) error {
	if kw == IF {
		defer p.enter("ifStmt")()
	} else {
		defer p.enter("whileStmt")()
	}

	if _, err := p.must(kw); err != nil {
		return err
	}

	if err := p.subject(Bool, RuleCondition); err != nil {
		return err
	}

	return p.body()
}

// SwitchStmt = "switch" "(" Expr ")" "{" Case { Case } "}" .
func (p *parser) switchStmt() error {
	defer p.enter("switchStmt")()

	if _, err := p.must(SWITCH); err != nil {
		return err
	}

	if err := p.subject(Int, RuleSwitch); err != nil {
		return err
	}

	if _, err := p.must('{'); err != nil {
		return err
	}

	for {
		if err := p.caseClause(); err != nil {
			return err
		}

		switch t := p.next(); t.ch {
		case CASE:
			p.unget(t)
		case '}':
			return nil
		default:
			return p.syntaxError(t)
		}
	}
}

// "(" Expr ")", where Expr must be of type want.
func (p *parser) subject(want Type, r Rule) error {
	if _, err := p.must('('); err != nil {
		return err
	}

	typ, err := p.expr()
	if err != nil {
		return err
	}

	if err := p.require(typ, want, r); err != nil {
		return err
	}

	_, err = p.must(')')
	return err
}

// Case = "case" IntLiteral ":" Body .
func (p *parser) caseClause() error {
	defer p.enter("case")()

	if _, err := p.must(CASE); err != nil {
		return err
	}

	if _, err := p.must(INT_LITERAL); err != nil {
		return err
	}

	if _, err := p.must(':'); err != nil {
		return err
	}

	return p.body()
}

// Expr = Primary | "!" Expr | BinaryOperator Expr Expr .
func (p *parser) expr() (Type, error) {
	defer p.enter("expr")()

	switch t := p.peek(); t.ch {
	case IDENTIFIER, INT_LITERAL, REAL_LITERAL, TRUE, FALSE:
		return p.primary()
	case '!':
		p.next()
		typ, err := p.expr()
		if err != nil {
			return 0, err
		}

		return Bool, p.require(typ, Bool, RuleNot)
	case '+', '-', '*', '>', GE, '<', LE, '=', NE:
		return p.binary(p.next())
	default:
		return 0, p.syntaxError(p.next())
	}
}

// Primary = Identifier | IntLiteral | RealLiteral | "true" | "false" .
func (p *parser) primary() (Type, error) {
	switch t := p.next(); t.ch {
	case IDENTIFIER:
		return p.tab.lookup(t.src, t.line), nil
	case INT_LITERAL:
		return Int, nil
	case REAL_LITERAL:
		return Real, nil
	case TRUE, FALSE:
		return Bool, nil
	default:
		return 0, p.syntaxError(t)
	}
}

// binary parses the two operands of op, which the caller already consumed.
// The relational operators produce bool. Arithmetic operators and "<>"
// produce the type of their operands.
func (p *parser) binary(op tok) (Type, error) {
	l, err := p.expr()
	if err != nil {
		return 0, err
	}

	r, err := p.expr()
	if err != nil {
		return 0, err
	}

	typ, err := p.agree(l, r)
	if err != nil {
		return 0, err
	}

	switch op.ch {
	case '>', GE, '<', LE, '=':
		return Bool, nil
	default:
		return typ, nil
	}
}

// agree returns the common type of two operands, unifying placeholders
// where possible. Only int and real absorb a placeholder.
func (p *parser) agree(l, r Type) (Type, error) {
	l, r = p.tab.resolve(l), p.tab.resolve(r)
	switch {
	case l == r:
		return l, nil
	case l.numeric() && !r.Resolved():
		p.unify(r, l)
		return l, nil
	case !l.Resolved() && r.numeric():
		p.unify(l, r)
		return r, nil
	case !l.Resolved() && !r.Resolved():
		p.unify(r, l)
		return l, nil
	default:
		return 0, p.mismatch(RuleOperands)
	}
}

// require checks that typ is want. Only a switch subject may have a
// placeholder type, which it keeps.
func (p *parser) require(typ, want Type, r Rule) error {
	switch typ = p.tab.resolve(typ); {
	case typ == want:
		return nil
	case r == RuleSwitch && !typ.Resolved():
		return nil
	default:
		return p.mismatch(r)
	}
}
