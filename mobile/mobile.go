// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to cca,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The package holds one configuration, so only one execution
// stream (Eval or Demo) can be active at a time.
package mobile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chainarrow/cca/config"
	"github.com/chainarrow/cca/run"
)

var conf config.Config

func init() {
	Reset()
}

// Eval reduces the chain on each line of the input string and returns
// the output. If any line failed, the error messages are returned
// concatenated together in the error value.
func Eval(expr string) (result string, errors error) {
	return eval(expr, run.Batch)
}

func eval(expr string, mode run.Mode) (string, error) {
	if !strings.HasSuffix(expr, "\n") {
		expr += "\n"
	}
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Text(&conf, expr, mode, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
// Demo lines may hold any number of terms.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return eval(d.scanner.Text(), run.Script)
}

// Reset clears all state to the initial value.
func Reset() {
	conf = config.Config{}
}

// Help returns the help page formatted in HTML.
func Help() string {
	return help
}

const help = `<h3>Chained arrows</h3>
<p>Type a chain of 2 to 4 whole numbers separated by &gt;, such as
<code>3&gt;3&gt;2</code>. The chain is reduced by Conway's rules:</p>
<pre>
a&gt;b       = a to the power b
X&gt;1       = X
X&gt;1&gt;z     = X
X&gt;y&gt;z     = X&gt;(X&gt;(y-1)&gt;z)&gt;(z-1)
</pre>
<p>Large results are printed as towers: <code>10^10^3000</code> is ten
to the power ten to the power 3000. Very tall towers are written
<code>nPT^x</code>, for a tower of n tens above x.</p>
<p>Chains that grow too large to finish are abandoned; the partly
reduced chain is printed instead.</p>
`
