// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

// Symbol is a variable as reported after a successful check.
type Symbol struct {
	Name string
	Line int  // line of the first occurrence
	Type Type // a placeholder if never constrained
}

type entry struct {
	name     string
	line     int
	typ      Type
	reported bool
}

// table is the single flat namespace of a program. Entries keep their
// insertion order. The scans done by assignDeclared and unify are O(n) in
// the number of entries.
type table struct {
	entries []entry
	index   map[string]int // name -> entries index
	forward map[Type]Type  // placeholders retired by unify
	next    Type           // next placeholder

	unifications int
}

func newTable() *table {
	return &table{
		index:   map[string]int{},
		forward: map[Type]Type{},
		next:    firstPlaceholder,
	}
}

// lookup returns the type of name, first entering it with a fresh
// placeholder if it is not yet known. The first occurrence fixes the line.
func (t *table) lookup(name string, line int) Type {
	if x, ok := t.index[name]; ok {
		return t.entries[x].typ
	}

	typ := t.next
	t.next++
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, entry{name: name, line: line, typ: typ})
	return typ
}

// assignDeclared sets typ on every entry first seen on line.
func (t *table) assignDeclared(line int, typ Type) {
	for i := range t.entries {
		if e := &t.entries[i]; e.line == line {
			e.typ = typ
		}
	}
}

// resolve returns the code currently standing for typ. It differs from typ
// only when typ is a placeholder retired by unify.
func (t *table) resolve(typ Type) Type {
	for !typ.Resolved() {
		n, ok := t.forward[typ]
		if !ok {
			break
		}

		typ = n
	}
	return typ
}

// unify rewrites every entry of type old to typ. A resolved type is never
// replaced by a placeholder: when old is resolved and typ is not the
// arguments swap.
func (t *table) unify(old, typ Type) {
	old, typ = t.resolve(old), t.resolve(typ)
	if old == typ {
		return
	}

	if old.Resolved() {
		if typ.Resolved() {
			panic(todo("%v: unify %v with %v", origin(2), old, typ))
		}

		old, typ = typ, old
	}

	t.unifications++
	for i := range t.entries {
		if e := &t.entries[i]; e.typ == old {
			e.typ = typ
		}
	}
	t.forward[old] = typ
}

func (t *table) placeholders() int { return int(t.next - firstPlaceholder) }

func (t *table) symbols() []Symbol {
	r := make([]Symbol, len(t.entries))
	for i, e := range t.entries {
		r[i] = Symbol{Name: e.name, Line: e.line, Type: e.typ}
	}
	return r
}
