// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for cca.
// It is factored out of main so it can be used for tests.
// This layout also helps out cca/mobile.
package run // import "github.com/chainarrow/cca/run"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chainarrow/cca/chain"
	"github.com/chainarrow/cca/config"
	"github.com/chainarrow/cca/parse"
	"github.com/pkg/errors"
)

// cpuTime returns the user and system time used by the process.
// It is replaced where the system can report it.
var cpuTime = func() (user, sys time.Duration) {
	return 0, 0
}

// A LineReader supplies lines of input. A *readline.Instance is one.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Mode says how Run treats its input.
type Mode int

const (
	Batch       Mode = iota // Each line holds a chain of 2 to 4 terms.
	Interactive             // As Batch, but prompt, and ask whether to go on after each result.
	Script                  // As Batch, but with any number of terms.
)

// Run reduces the chain on each line read from in until EOF, printing
// the input chain and the reduced expression. Text from # to the end
// of the line is a comment and blank lines are skipped. Errors are
// reported to the configured error output stream and do not stop the
// loop. The return value says whether every line was processed
// without error.
func Run(conf *config.Config, in LineReader, mode Mode) (success bool) {
	success = true
	if mode == Interactive {
		in.SetPrompt(conf.Prompt())
	}
	for {
		line, err := in.Readline()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(conf.ErrOutput(), err)
				success = false
			}
			return success
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := Line(conf, line, mode == Script); err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			success = false
		}
		if mode == Interactive && !more(conf, in) {
			return success
		}
	}
}

// Line reduces the chain written on one line and prints the result.
// With script set, the number of terms is not checked.
func Line(conf *config.Config, line string, script bool) error {
	parseLine := parse.Line
	if script {
		parseLine = parse.Script
	}
	ch, err := parseLine(conf, line)
	if err != nil {
		return err
	}
	w := conf.Output()
	fmt.Fprintf(w, "input CCA: %s\n", ch)
	user, sys := cpuTime()
	if err := ch.Reduce(); err != nil {
		return errors.Wrapf(err, "reducing %s", line)
	}
	fmt.Fprintf(w, "reduced expression: %s\n", ch)
	printDiagnostics(conf, w, ch)
	if conf.Debug("cpu") {
		u, s := cpuTime()
		fmt.Fprintf(w, "(%s user, %s sys)\n", u-user, s-sys)
	}
	return nil
}

// printDiagnostics reports abandonment and, with the "stats" debug
// switch, the work done by the reduction.
func printDiagnostics(conf *config.Config, w io.Writer, ch *chain.Chain) {
	if ch.Abandoned() {
		fmt.Fprintf(w, "abandoned: %s\n", ch.Reason())
	}
	if conf.Debug("stats") {
		fmt.Fprintf(w, "stats: %s\n", ch.Stats())
	}
}

// more asks whether to continue. Anything but n, N or no, including
// an empty answer, means yes; EOF means no.
func more(conf *config.Config, in LineReader) bool {
	in.SetPrompt("Continue Y/N? ")
	defer in.SetPrompt(conf.Prompt())
	answer, err := in.Readline()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return false
	}
	return true
}

// NewReader returns a LineReader that reads lines from r and writes
// each prompt to w before reading. w may be nil.
func NewReader(r io.Reader, w io.Writer) LineReader {
	return &reader{scan: bufio.NewScanner(r), w: w}
}

type reader struct {
	scan   *bufio.Scanner
	w      io.Writer
	prompt string
}

func (r *reader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *reader) Readline() (string, error) {
	if r.w != nil && r.prompt != "" {
		fmt.Fprint(r.w, r.prompt)
	}
	if !r.scan.Scan() {
		if err := r.scan.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scan.Text(), nil
}

// Text runs the lines of input in the given mode with output sent to
// stdout and errors to stderr, and reports whether all succeeded.
// Prompts, if any, go to stdout.
func Text(conf *config.Config, input string, mode Mode, stdout, stderr io.Writer) bool {
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	return Run(conf, NewReader(bytes.NewBufferString(input), stdout), mode)
}
