// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"fmt"
	"io"
	"strings"
)

// report writes one line per type group, groups ordered by their first
// member. Every entry is reported once.
//
//	a, b: int #
//	c: ? #
func (t *table) report(w io.Writer) error {
	for i := range t.entries {
		e := &t.entries[i]
		if e.reported {
			continue
		}

		e.reported = true
		names := []string{e.name}
		for j := i + 1; j < len(t.entries); j++ {
			if f := &t.entries[j]; !f.reported && f.typ == e.typ {
				f.reported = true
				names = append(names, f.name)
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s #\n", strings.Join(names, ", "), e.typ); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnostic(w io.Writer, d Diagnostic) error {
	_, err := fmt.Fprintln(w, d.Diagnostic())
	return err
}
