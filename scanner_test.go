// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"testing"

	"github.com/go-test/deep"
)

func scanAll(t *testing.T, src string) (r []tok) {
	s, err := newScanner([]byte(src), "test")
	if err != nil {
		t.Fatal(err)
	}

	for {
		tok := s.next()
		r = append(r, tok)
		if tok.ch == EOF {
			return r
		}
	}
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
		want []tok
	}{
		{"empty", "", []tok{{EOF, 1, ""}}},
		{"blank", " \t\r\v\f ", []tok{{EOF, 1, ""}}},
		{"declaration", "x, y : int ;", []tok{
			{IDENTIFIER, 1, "x"},
			{',', 1, ","},
			{IDENTIFIER, 1, "y"},
			{':', 1, ":"},
			{INT, 1, "int"},
			{';', 1, ";"},
			{EOF, 1, ""},
		}},
		{"operators", "<= <> >= < > ! + - * = ( ) { }", []tok{
			{LE, 1, "<="},
			{NE, 1, "<>"},
			{GE, 1, ">="},
			{'<', 1, "<"},
			{'>', 1, ">"},
			{'!', 1, "!"},
			{'+', 1, "+"},
			{'-', 1, "-"},
			{'*', 1, "*"},
			{'=', 1, "="},
			{'(', 1, "("},
			{')', 1, ")"},
			{'{', 1, "{"},
			{'}', 1, "}"},
			{EOF, 1, ""},
		}},
		{"operator at end", "a<", []tok{
			{IDENTIFIER, 1, "a"},
			{'<', 1, "<"},
			{EOF, 1, ""},
		}},
		{"split operator", "<\n=", []tok{
			{'<', 1, "<"},
			{'=', 2, "="},
			{EOF, 2, ""},
		}},
		{"keywords", "int real bool true false if while switch case public private", []tok{
			{INT, 1, "int"},
			{REAL, 1, "real"},
			{BOOL, 1, "bool"},
			{TRUE, 1, "true"},
			{FALSE, 1, "false"},
			{IF, 1, "if"},
			{WHILE, 1, "while"},
			{SWITCH, 1, "switch"},
			{CASE, 1, "case"},
			{PUBLIC, 1, "public"},
			{PRIVATE, 1, "private"},
			{EOF, 1, ""},
		}},
		{"identifiers", "Int WHILE x1y2 iff", []tok{
			{IDENTIFIER, 1, "Int"},
			{IDENTIFIER, 1, "WHILE"},
			{IDENTIFIER, 1, "x1y2"},
			{IDENTIFIER, 1, "iff"},
			{EOF, 1, ""},
		}},
		{"numbers", "0 01 0.5 12.25 3. 7.x", []tok{
			{INT_LITERAL, 1, "0"},
			{INT_LITERAL, 1, "0"},
			{INT_LITERAL, 1, "1"},
			{REAL_LITERAL, 1, "0.5"},
			{REAL_LITERAL, 1, "12.25"},
			{INT_LITERAL, 1, "3"},
			{ERROR, 1, "."},
			{INT_LITERAL, 1, "7"},
			{ERROR, 1, "."},
			{IDENTIFIER, 1, "x"},
			{EOF, 1, ""},
		}},
		{"number then dot at end", "0.", []tok{
			{INT_LITERAL, 1, "0"},
			{ERROR, 1, "."},
			{EOF, 1, ""},
		}},
		{"comments", "// a\n// b\nx // c\ny", []tok{
			{IDENTIFIER, 3, "x"},
			{IDENTIFIER, 4, "y"},
			{EOF, 4, ""},
		}},
		{"comment at end", "x // tail", []tok{
			{IDENTIFIER, 1, "x"},
			{EOF, 1, ""},
		}},
		{"bad comment", "/ x", []tok{
			{ERROR, 1, "/"},
			{IDENTIFIER, 1, "x"},
			{EOF, 1, ""},
		}},
		{"slash at end", "a /", []tok{
			{IDENTIFIER, 1, "a"},
			{ERROR, 1, "/"},
			{EOF, 1, ""},
		}},
		{"slash on next line", "a\n/b", []tok{
			{IDENTIFIER, 1, "a"},
			{ERROR, 2, "/"},
			{IDENTIFIER, 2, "b"},
			{EOF, 2, ""},
		}},
		{"unknown", "@ _x", []tok{
			{ERROR, 1, "@"},
			{ERROR, 1, "_"},
			{IDENTIFIER, 1, "x"},
			{EOF, 1, ""},
		}},
		{"lines", "a\n\n  b\n12\n", []tok{
			{IDENTIFIER, 1, "a"},
			{IDENTIFIER, 3, "b"},
			{INT_LITERAL, 4, "12"},
			{EOF, 4, ""},
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			if diff := deep.Equal(scanAll(t, test.src), test.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestScannerZeroByte(t *testing.T) {
	if _, err := newScanner([]byte("a\x00b"), "test"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestScannerPushback(t *testing.T) {
	s, err := newScanner([]byte("a\nb c\nd"), "test")
	if err != nil {
		t.Fatal(err)
	}

	var got []tok
	for i := 0; i < 3; i++ {
		got = append(got, s.next())
	}
	for _, v := range got {
		s.unget(v)
	}

	var replayed []tok
	for i := 0; i < 3; i++ {
		replayed = append(replayed, s.next())
	}
	want := []tok{got[2], got[1], got[0]}
	if diff := deep.Equal(replayed, want); diff != nil {
		t.Fatal(diff)
	}

	if diff := deep.Equal(s.next(), tok{IDENTIFIER, 3, "d"}); diff != nil {
		t.Fatal(diff)
	}

	if g, e := s.scanned, 4; g != e {
		t.Fatalf("scanned %v, expected %v", g, e)
	}

	for i := 0; i < 2; i++ {
		if g := s.next(); g.ch != EOF {
			t.Fatalf("got %v, expected EOF", g)
		}
	}
}

func TestSource(t *testing.T) {
	s := newSource([]byte("abc"))
	for _, want := range "abc" {
		if c, eof := s.getChar(); eof || rune(c) != want {
			t.Fatalf("got %q %v, expected %q", c, eof, want)
		}
	}

	if _, eof := s.getChar(); !eof {
		t.Fatal("expected end of input")
	}

	s.ungetChar('c')
	s.ungetChar('b')
	for _, want := range "bc" {
		if c, eof := s.getChar(); eof || rune(c) != want {
			t.Fatalf("got %q %v, expected %q", c, eof, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()

	s.ungetChar('x')
}
