// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the demo subcommand. The script for the demo
// is in demo.cca in this directory. Its content is embedded in this
// source file.
package demo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	_ "embed"

	"github.com/chainarrow/cca/config"
	"github.com/chainarrow/cca/run"
)

//go:embed demo.cca
var demoText string

// Text returns the input text for the standard demo.
func Text() string {
	return demoText
}

// Chains returns the chains in the demo script, in order.
func Chains() []string {
	var chains []string
	for _, line := range strings.Split(demoText, "\n") {
		if line != "" && !strings.HasPrefix(line, "#") {
			chains = append(chains, line)
		}
	}
	return chains
}

// Run runs the demo, writing to the configured output. Each blank line
// of userInput reduces the next chain in the script, after showing the
// comments that lead up to it. A line with text is reduced in its place
// and the script does not advance; "quit" ends the demo. A nil userInput
// runs the whole script without waiting.
func Run(conf *config.Config, userInput io.Reader) error {
	script := bufio.NewScanner(strings.NewReader(demoText))
	out := conf.Output()
	// step shows lines up to and including the next chain, and reduces it.
	step := func() bool {
		for script.Scan() {
			line := script.Text()
			fmt.Fprintln(out, line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			report(conf, run.Line(conf, line, true))
			return true
		}
		return false
	}
	// Show the first line, with instructions, before accepting user input.
	if script.Scan() {
		fmt.Fprintln(out, script.Text())
	}
	if userInput == nil {
		for step() {
		}
		return nil
	}
	user := bufio.NewScanner(userInput)
	for user.Scan() {
		line := strings.TrimSpace(user.Text())
		switch line {
		case "":
			if !step() {
				return nil
			}
		case "quit":
			return nil
		default:
			report(conf, run.Line(conf, line, false))
		}
	}
	return user.Err()
}

func report(conf *config.Config, err error) {
	if err != nil {
		fmt.Fprintln(conf.ErrOutput(), err)
	}
}
