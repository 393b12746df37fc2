// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chainarrow/cca/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChains(t *testing.T) {
	chains := Chains()
	require.Len(t, chains, 15)
	assert.Equal(t, "2>2>3>6>99", chains[0])
	assert.Equal(t, "3>3>65>2", chains[len(chains)-1])
}

func newConf() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var conf config.Config
	var out, errs bytes.Buffer
	conf.SetOutput(&out)
	conf.SetErrOutput(&errs)
	return &conf, &out, &errs
}

func TestRunAll(t *testing.T) {
	conf, out, errs := newConf()
	require.NoError(t, Run(conf, nil))
	assert.Empty(t, errs.String())
	text := out.String()
	assert.Equal(t, 15, strings.Count(text, "input CCA: "))
	assert.Equal(t, 15, strings.Count(text, "reduced expression: "))
	assert.Contains(t, text, "2>2>3>6>99\ninput CCA: ( 2 > 2 > 3 > 6 > 99 )\nreduced expression: ( 4 )\n")
	assert.Contains(t, text, "3>3>2\ninput CCA: ( 3 > 3 > 2 )\nreduced expression: ( 7.62559748499e12 )\n")
	assert.Contains(t, text, "2>3>3\ninput CCA: ( 2 > 3 > 3 )\nreduced expression: ( 65536 )\n")
	assert.Contains(t, text, "reduced expression: ( 2 > 65536 > 2 )\nabandoned: too large\n")
}

func TestRunStepped(t *testing.T) {
	conf, out, errs := newConf()
	// Step twice, try a chain of our own, then stop.
	require.NoError(t, Run(conf, strings.NewReader("\n\n2>5\nquit\n\n")))
	assert.Empty(t, errs.String())
	want := `# Press return to step through the demo. Type a chain to try your own, or quit to stop.
# Rule 0: a chain that starts 2>2 is 4, however long it is.
2>2>3>6>99
input CCA: ( 2 > 2 > 3 > 6 > 99 )
reduced expression: ( 4 )
# Small chains reduce completely and exactly.
3>2>3
input CCA: ( 3 > 2 > 3 )
reduced expression: ( 7.62559748499e12 )
input CCA: ( 2 > 5 )
reduced expression: ( 32 )
`
	assert.Equal(t, want, out.String())
}

func TestRunUserError(t *testing.T) {
	conf, _, errs := newConf()
	require.NoError(t, Run(conf, strings.NewReader("2>2>2>2>2\n")))
	assert.Equal(t, "too many terms: please enter 2-4 terms\n", errs.String())
}
