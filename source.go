// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

// source hands out the input one byte at a time. Bytes given back by
// ungetChar are returned again, last in first out.
type source struct {
	b   []byte
	off int // index of the next byte
}

func newSource(b []byte) *source { return &source{b: b} }

func (s *source) getChar() (c byte, eof bool) {
	if s.off >= len(s.b) {
		return 0, true
	}

	c = s.b[s.off]
	s.off++
	return c, false
}

// ungetChar must be given exactly the bytes most recently read, in reverse
// order.
func (s *source) ungetChar(c byte) {
	if s.off == 0 || s.b[s.off-1] != c {
		panic(todo("%v: unget %#U does not match the input", origin(2), rune(c)))
	}

	s.off--
}
