// Copyright 2026 The infer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command infer checks a program and prints the inferred types of its
// variables.
//
// Invocation
//
//	$ infer [options] [input-file]
//
// Without an input file the program is read from stdin. The report, or the
// single diagnostic, goes to stdout. The exit status is 1 on any syntax
// error or type mismatch.
//
// Options
//
//	-t, --trace
//
// Trace the parse on stderr.
//
//	-v, --verbose
//
// Print statistics on stderr.
package main // import "modernc.org/infer/cmd/infer"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"modernc.org/infer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type task struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	trace   bool // -trace
	verbose bool // -verbose
}

// run returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	t := &task{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "infer [input-file]",
		Short:         "Check a program and print the inferred types of its variables",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return t.main(args)
		},
	}
	cmd.Flags().BoolVarP(&t.trace, "trace", "t", false, "trace the parse on stderr")
	cmd.Flags().BoolVarP(&t.verbose, "verbose", "v", false, "print statistics on stderr")
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	// A diagnostic is already on stdout.
	var d infer.Diagnostic
	if !errors.As(err, &d) {
		fmt.Fprintln(stderr, strings.TrimSpace(err.Error()))
	}
	return 1
}

func (t *task) main(args []string) error {
	opts := &infer.Options{}
	in := t.stdin
	if len(args) != 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}

		defer f.Close()

		in = f
		opts.Name = args[0]
	}
	if t.trace {
		opts.Trace = t.stderr
	}

	res, err := infer.Process(in, t.stdout, opts)
	if t.verbose && res != nil {
		s := res.Stats
		fmt.Fprintf(t.stderr, "%s tokens, %s identifiers, %s placeholders, %s unifications, max depth %d\n",
			humanize.Comma(int64(s.Tokens)),
			humanize.Comma(int64(s.Identifiers)),
			humanize.Comma(int64(s.Placeholders)),
			humanize.Comma(int64(s.Unifications)),
			s.MaxDepth,
		)
	}
	return err
}
