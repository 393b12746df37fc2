// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/chainarrow/cca/config"
	"github.com/stretchr/testify/assert"
)

func runText(conf *config.Config, input string, mode Mode) (stdout, stderr string, ok bool) {
	var out, errs bytes.Buffer
	ok = Text(conf, input, mode, &out, &errs)
	return out.String(), errs.String(), ok
}

func TestBatch(t *testing.T) {
	var conf config.Config
	out, errs, ok := runText(&conf, "3>3>2\n\n# comment\n2 > 3 > 4\n", Batch)
	assert.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, `input CCA: ( 3 > 3 > 2 )
reduced expression: ( 7.62559748499e12 )
input CCA: ( 2 > 3 > 4 )
reduced expression: ( 2 > 65536 > 2 )
abandoned: too large
`, out)
}

func TestErrorsKeepGoing(t *testing.T) {
	var conf config.Config
	out, errs, ok := runText(&conf, "3\n1>2>3>4>5\n3>x\n3>0>2\n2>3\n", Batch)
	assert.False(t, ok)
	assert.Equal(t, `too few terms: please enter 2-4 terms
too many terms: please enter 2-4 terms
"x" is not a positive whole number
reducing 3>0>2: sub: 0 is less than 1
`, errs)
	assert.Equal(t, `input CCA: ( 3 > 0 > 2 )
input CCA: ( 2 > 3 )
reduced expression: ( 8 )
`, out)
}

func TestScript(t *testing.T) {
	var conf config.Config
	out, errs, ok := runText(&conf, "2>2>3>6>99\n", Script)
	assert.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, "input CCA: ( 2 > 2 > 3 > 6 > 99 )\nreduced expression: ( 4 )\n", out)
}

func TestInteractive(t *testing.T) {
	var conf config.Config
	conf.SetPrompt("> ")
	out, _, ok := runText(&conf, "2>3\ny\n3>3\nn\n4>4\n", Interactive)
	assert.True(t, ok)
	assert.Equal(t, `> input CCA: ( 2 > 3 )
reduced expression: ( 8 )
Continue Y/N? > input CCA: ( 3 > 3 )
reduced expression: ( 27 )
Continue Y/N? `, out)

	// EOF at the question stops the loop.
	out, _, ok = runText(&conf, "2>3\n", Interactive)
	assert.True(t, ok)
	assert.True(t, strings.HasSuffix(out, "Continue Y/N? "), "%q", out)
}

func TestStats(t *testing.T) {
	var conf config.Config
	conf.SetDebug("stats", true)
	out, _, _ := runText(&conf, "3>3>2\n", Batch)
	assert.Contains(t, out, "stats: rules [0 2 2 1 2] expansions 2 deepest 2\n")
}

func TestTrace(t *testing.T) {
	var conf config.Config
	conf.SetDebug("trace", true)
	_, errs, ok := runText(&conf, "3>3>2\n", Batch)
	assert.True(t, ok)
	assert.Contains(t, errs, "level=DEBUG")
	assert.Contains(t, errs, "rule=4")
}

type failingReader struct{}

func (failingReader) Readline() (string, error) { return "", errors.New("broken input") }
func (failingReader) SetPrompt(string)          {}

func TestReadError(t *testing.T) {
	var conf config.Config
	var errs bytes.Buffer
	conf.SetErrOutput(&errs)
	assert.False(t, Run(&conf, failingReader{}, Batch))
	assert.Equal(t, "broken input\n", errs.String())
}
