// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"fmt"
)

// char is a token kind. Single character punctuators and operators use the
// character itself, everything else a value from the private use area.
type char rune

const EOF char = -1

const (
	BOOL char = iota + 0xe000
	CASE
	FALSE
	IF
	INT
	PRIVATE
	PUBLIC
	REAL
	SWITCH
	TRUE
	WHILE

	GE // >=
	LE // <=
	NE // <>

	IDENTIFIER
	INT_LITERAL
	REAL_LITERAL
	ERROR
)

var keywords = map[string]char{
	"bool":    BOOL,
	"case":    CASE,
	"false":   FALSE,
	"if":      IF,
	"int":     INT,
	"private": PRIVATE,
	"public":  PUBLIC,
	"real":    REAL,
	"switch":  SWITCH,
	"true":    TRUE,
	"while":   WHILE,
}

var charNames = map[char]string{
	EOF:          "EOF",
	BOOL:         "BOOL",
	CASE:         "CASE",
	FALSE:        "FALSE",
	IF:           "IF",
	INT:          "INT",
	PRIVATE:      "PRIVATE",
	PUBLIC:       "PUBLIC",
	REAL:         "REAL",
	SWITCH:       "SWITCH",
	TRUE:         "TRUE",
	WHILE:        "WHILE",
	GE:           "GE",
	LE:           "LE",
	NE:           "NE",
	IDENTIFIER:   "IDENTIFIER",
	INT_LITERAL:  "INT_LITERAL",
	REAL_LITERAL: "REAL_LITERAL",
	ERROR:        "ERROR",
}

func (c char) String() string {
	if s, ok := charNames[c]; ok {
		return s
	}

	if c > ' ' && c < 0x7f {
		return string(rune(c))
	}

	return fmt.Sprintf("char(%d)", int(c))
}

func (c char) str() string {
	if c > ' ' && c < 0x7f {
		return fmt.Sprintf("%q", rune(c))
	}

	return c.String()
}

// tok is a scanned token. Tokens are values and are never modified once
// produced.
type tok struct {
	ch   char
	line int
	src  string
}

func (t tok) String() string { return fmt.Sprintf("{%s , %s , %d}", t.src, t.ch, t.line) }
