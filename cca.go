// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chainarrow/cca/config"
	"github.com/chainarrow/cca/demo"
	"github.com/chainarrow/cca/run"
	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("cca: ")

	cmd := newCommand(&conf, os.Stdin, os.Stdout, os.Stderr)
	switch err := cmd.Execute(); err {
	case nil:
	case errFailed:
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}

// errFailed reports that some input could not be reduced. The details
// have already been printed.
var errFailed = errors.New("errors in input")

// newCommand returns the root command, reading and writing the given
// streams. Chains given as arguments are reduced in turn; with no
// arguments the chains are read from stdin, interactively if it is a
// terminal.
func newCommand(conf *config.Config, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cca [chain ...]",
		Short: "Reduce Conway chained arrow expressions",
		Long: `Cca reduces Conway chained arrow expressions such as 3>3>2
to a single number, printed as a tower of powers of ten when it is large.
Chains that grow beyond the configured limits are abandoned, and the
partly reduced chain is printed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf.SetOutput(stdout)
			conf.SetErrOutput(stderr)
			return applyFlags(cmd.Flags(), conf)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return oneShot(conf, args)
			}
			return interactive(conf, stdin)
		},
	}
	registerFlags(cmd.PersistentFlags())
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Step through a demonstration of chains",
		Long: `Demo shows a prepared list of chains. Press return to reduce the next
chain, type a chain to reduce it instead, or type quit to stop.
With --all the whole list is reduced without waiting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all, _ := cmd.Flags().GetBool("all"); all {
				return demo.Run(conf, nil)
			}
			return demo.Run(conf, stdin)
		},
	}
	demoCmd.Flags().Bool("all", false, "reduce every chain without waiting")
	cmd.AddCommand(demoCmd)
	return cmd
}

// oneShot reduces each argument.
func oneShot(conf *config.Config, args []string) error {
	ok := true
	for _, arg := range args {
		if err := run.Line(conf, arg, false); err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			ok = false
		}
	}
	if !ok {
		return errFailed
	}
	return nil
}

// interactive runs the read-reduce-print loop on stdin, with line
// editing and the continue question when stdin is a terminal.
func interactive(conf *config.Config, stdin io.Reader) error {
	var in run.LineReader
	mode := run.Batch
	if fd, ok := stdin.(*os.File); ok && readline.IsTerminal(int(fd.Fd())) {
		rl, err := readline.New(conf.Prompt())
		if err != nil {
			return err
		}
		defer rl.Close()
		in = terminal{rl}
		mode = run.Interactive
	} else {
		in = run.NewReader(stdin, nil)
	}
	if !run.Run(conf, in, mode) {
		return errFailed
	}
	return nil
}

// terminal adapts a readline instance so that an interrupt ends the
// session like EOF does.
type terminal struct {
	*readline.Instance
}

func (t terminal) Readline() (string, error) {
	line, err := t.Instance.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}
