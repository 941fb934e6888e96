// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"io"

	"modernc.org/strutil"
)

// tracer writes one indented line per nonterminal entered. The zero value
// writes nothing.
type tracer struct {
	f strutil.Formatter
}

func newTracer(w io.Writer) tracer {
	if w == nil {
		return tracer{}
	}

	return tracer{strutil.IndentFormatter(w, "  ")}
}

// enter returns the function to call on leaving the nonterminal.
func (t tracer) enter(name string, la tok) func() {
	if t.f == nil {
		return func() {}
	}

	t.f.Format("%s %v\n%i", name, la)
	return func() { t.f.Format("%u") }
}

func (t tracer) unify(old, typ Type) {
	if t.f != nil {
		t.f.Format("unify %d -> %d\n", int(old), int(typ))
	}
}
