// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"bytes"
	"fmt"

	"modernc.org/token"
)

type scanner struct {
	*source
	file     *token.File
	pushback []tok // LIFO

	scanned int // tokens produced from the source, replays excluded
}

func newScanner(b []byte, name string) (*scanner, error) {
	if x := bytes.IndexByte(b, 0); x >= 0 {
		return nil, fmt.Errorf("input file contains a zero byte at offset %#x", x)
	}

	return &scanner{
		source: newSource(b),
		file:   token.NewFile(name, len(b)),
	}, nil
}

// getChar records line starts as a side effect. Re-reading an ungot newline
// registers the same offset again, which the file ignores.
func (s *scanner) getChar() (byte, bool) {
	c, eof := s.source.getChar()
	if !eof && c == '\n' {
		s.file.AddLine(s.off)
	}
	return c, eof
}

func (s *scanner) line(off int) int { return s.file.Position(s.file.Pos(off)).Line }

func (s *scanner) tok(ch char, off int) tok {
	return tok{ch: ch, line: s.line(off), src: string(s.b[off:s.off])}
}

// next returns the most recently ungot token, if any, before scanning more
// input.
func (s *scanner) next() tok {
	if n := len(s.pushback); n != 0 {
		t := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return t
	}

	s.scanned++
	return s.scan()
}

func (s *scanner) unget(t tok) { s.pushback = append(s.pushback, t) }

func (s *scanner) scan() tok {
	if !s.skip() {
		return s.tok(ERROR, s.off-1)
	}

	off := s.off
	c, eof := s.getChar()
	if eof {
		return tok{ch: EOF, line: s.line(off)}
	}

	switch c {
	case '!', '+', '-', '*', '(', ')', '=', ':', ',', ';', '{', '}':
		return s.tok(char(c), off)
	case '<':
		if c, eof := s.getChar(); !eof {
			switch c {
			case '=':
				return s.tok(LE, off)
			case '>':
				return s.tok(NE, off)
			}

			s.ungetChar(c)
		}
		return s.tok('<', off)
	case '>':
		if c, eof := s.getChar(); !eof {
			if c == '=' {
				return s.tok(GE, off)
			}

			s.ungetChar(c)
		}
		return s.tok('>', off)
	}

	switch {
	case isDigit(c):
		return s.number(c, off)
	case isLetter(c):
		for {
			c, eof := s.getChar()
			if eof {
				break
			}

			if !isLetter(c) && !isDigit(c) {
				s.ungetChar(c)
				break
			}
		}
		t := s.tok(IDENTIFIER, off)
		if x, ok := keywords[t.src]; ok {
			t.ch = x
		}
		return t
	}

	return s.tok(ERROR, off)
}

// skip consumes white space and line comments. It reports false after
// consuming a '/' that does not start a comment.
func (s *scanner) skip() bool {
	for {
		c, eof := s.getChar()
		switch {
		case eof:
			return true
		case isSpace(c):
			// ok
		case c == '/':
			c, eof := s.getChar()
			if eof {
				return false
			}

			if c != '/' {
				s.ungetChar(c)
				return false
			}

			for {
				if c, eof := s.getChar(); eof || c == '\n' {
					break
				}
			}
		default:
			s.ungetChar(c)
			return true
		}
	}
}

// A zero alone is a complete integer literal unless a fraction follows, so
// "01" is two tokens.
func (s *scanner) number(c byte, off int) tok {
	if c != '0' {
		s.digits()
	}

	dot, eof := s.getChar()
	if eof {
		return s.tok(INT_LITERAL, off)
	}

	if dot != '.' {
		s.ungetChar(dot)
		return s.tok(INT_LITERAL, off)
	}

	c, eof = s.getChar()
	if eof || !isDigit(c) {
		if !eof {
			s.ungetChar(c)
		}
		s.ungetChar(dot)
		return s.tok(INT_LITERAL, off)
	}

	s.digits()
	return s.tok(REAL_LITERAL, off)
}

func (s *scanner) digits() {
	for {
		c, eof := s.getChar()
		if eof {
			return
		}

		if !isDigit(c) {
			s.ungetChar(c)
			return
		}
	}
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
