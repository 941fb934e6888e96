// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package infer checks programs of a small imperative language and infers
// the types of their variables in a single pass.
//
// The language
//
// A program is a sequence of units, each an optional list of global variable
// declarations followed by a body.
//
//	a, b : int ;
//	c : real ;
//	{
//		a = + b 1 ;
//		while ( < a 10 ) { a = + a 1 ; }
//		switch ( a ) { case 1 : { c = 0.5 ; } }
//	}
//
// Expressions are written in prefix form: an operator is followed by its
// operands. The operators are ! + - * > >= < <= = and <>, where = doubles as
// the assignment operator. There is no division. Comments run from // to the
// end of the line.
//
// Type inference
//
// int, real and bool are the resolved types. A variable first used without a
// declaration gets a placeholder type, printed as ?. When the operands of a
// binary operator meet a placeholder, or a variable of placeholder type is
// assigned, every variable of the placeholder type takes the other type. A
// bool variable accepts a value of any type and turns a placeholder value
// into bool. Relational operators other than <> produce bool, everything
// else produces the type of its operands. The following are fatal, numbered
// as printed:
//
//	C1	int or real variable assigned a value of another type
//	C2	binary operands of different types
//	C3	! applied to something not bool
//	C4	if or while condition not bool
//	C5	switch subject of a resolved type other than int
//
// Output
//
// On success one line per group of variables sharing a type is written, in
// order of first appearance:
//
//	a, b: int #
//	c: real #
//
// Otherwise exactly one diagnostic is written, either a blank line followed
// by
//
//	Syntax Error
//
// or
//
//	TYPE MISMATCH <line> C<k>
package infer // import "modernc.org/infer"

import (
	"fmt"
	"io"
	"io/ioutil"
)

// Options adjust Process. The zero value is ready to use.
type Options struct {
	// Name is used in error positions. Defaults to "<input>".
	Name string
	// Trace, if not nil, receives a trace of the parse.
	Trace io.Writer
}

// Stats describe the work done by Process.
type Stats struct {
	Tokens       int // scanned, replays of ungot tokens excluded
	Identifiers  int
	Placeholders int // placeholder types allocated
	Unifications int
	MaxDepth     int // of nested bodies
}

// Result is produced by Process, even on a Diagnostic error.
type Result struct {
	Symbols []Symbol // in order of first appearance
	Stats   Stats
}

// Process checks the program read from r and writes the report, or the
// diagnostic for the first error, to w. A program error is returned as a
// Diagnostic, after the diagnostic is written. Other errors are I/O errors or
// invalid input like a zero byte.
func Process(r io.Reader, w io.Writer, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	name := opts.Name
	if name == "" {
		name = "<input>"
	}

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	p, err := newParser(b, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	p.trace = newTracer(opts.Trace)
	perr := p.program()
	res := &Result{
		Symbols: p.tab.symbols(),
		Stats: Stats{
			Tokens:       p.scanned,
			Identifiers:  len(p.tab.entries),
			Placeholders: p.tab.placeholders(),
			Unifications: p.tab.unifications,
			MaxDepth:     p.maxDepth,
		},
	}
	if perr != nil {
		d, ok := perr.(Diagnostic)
		if !ok {
			return res, perr
		}

		if err := writeDiagnostic(w, d); err != nil {
			return res, err
		}

		return res, d
	}

	return res, p.tab.report(w)
}
