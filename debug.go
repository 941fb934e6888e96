// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package infer // import "modernc.org/infer"

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// origin returns file:line:func of the function skip frames up, origin(1)
// being the caller of origin.
func origin(skip int) string {
	pc, fn, fl, _ := runtime.Caller(skip)
	name := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
		name = name[strings.LastIndex(name, ".")+1:]
	}
	return fmt.Sprintf("%s:%d:%s", filepath.Base(fn), fl, name)
}

// todo returns the message of a panic on an internal error. Reaching one is
// a bug.
func todo(s string, args ...interface{}) string {
	return fmt.Sprintf("%s: internal error: %s", origin(2), fmt.Sprintf(s, args...))
}
