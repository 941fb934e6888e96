// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

// Type is a type code. Int, Real and Bool are resolved types, every value
// from firstPlaceholder up stands for a type not known yet.
type Type int

const (
	Int Type = iota + 1
	Real
	Bool

	firstPlaceholder
)

// Resolved reports whether t is one of Int, Real or Bool.
func (t Type) Resolved() bool { return t >= Int && t <= Bool }

func (t Type) numeric() bool { return t == Int || t == Real }

// String returns the type keyword, or "?" for a placeholder.
func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Real:
		return "real"
	case Bool:
		return "bool"
	default:
		return "?"
	}
}

func typeOfKeyword(ch char) Type {
	switch ch {
	case INT:
		return Int
	case REAL:
		return Real
	case BOOL:
		return Bool
	}

	panic(todo("%v: not a type name: %v", origin(2), ch))
}
