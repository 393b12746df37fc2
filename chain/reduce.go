// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"log/slog"

	"github.com/chainarrow/cca/config"
	"github.com/chainarrow/cca/value"
)

// Stats counts what a reduction did.
type Stats struct {
	Rules   [5]int // Firings of rules 0 through 4.
	Deepest int    // Deepest nesting reached.
}

func (s Stats) String() string {
	return fmt.Sprintf("rules %v expansions %d deepest %d", s.Rules, s.Rules[4], s.Deepest)
}

// driver holds what every chain in one tree shares while reducing.
type driver struct {
	conf  *config.Config
	log   *slog.Logger
	one   value.Magnitude
	two   value.Magnitude
	four  value.Magnitude
	limit value.Magnitude // Terms above this are not expanded.
	stats Stats
}

func newDriver(conf *config.Config) *driver {
	if conf == nil {
		value.Errorf("chain: nil config")
	}
	return &driver{
		conf:  conf,
		log:   conf.Logger(),
		one:   value.Int(conf, 1),
		two:   value.Int(conf, 2),
		four:  value.Int(conf, 4),
		limit: value.Int(conf, conf.MaxExpandable()),
	}
}

// Reduce rewrites the chain until it is resolved: either a single
// value remains or reduction was abandoned (see Abandoned).
// Arithmetic failures are returned as errors; the chain is left as it
// was when the failure occurred.
func (ch *Chain) Reduce() (err error) {
	defer func() {
		if e := recover(); e != nil {
			if e, ok := e.(value.Error); ok {
				err = e
				return
			}
			panic(e)
		}
	}()
	ch.reduce()
	return nil
}

func (ch *Chain) reduce() {
	if ch.depth > ch.d.stats.Deepest {
		ch.d.stats.Deepest = ch.depth
	}
	// Chains built with nested terms reduce those first.
	for _, t := range ch.terms {
		if sub, ok := t.(*Chain); ok && !sub.resolved {
			sub.descend()
		}
	}
	for !ch.resolved {
		if ch.abandoned {
			ch.resolved = true
		}
		ch.rule0()
		ch.rule1()
		ch.checkRunaway()
		if len(ch.terms) > 1 {
			ch.rule2()
		}
		if len(ch.terms) > 2 {
			ch.rule3()
		}
		if !ch.resolved && !ch.abandoned && len(ch.terms) > 2 {
			ch.rule4()
		}
	}
}

// rule0 applies the shortcuts 2→2→... = 4 and 1→... = 1.
func (ch *Chain) rule0() {
	if len(ch.terms) < 2 {
		return
	}
	if _, ok := ch.terms[1].(value.Magnitude); !ok {
		return
	}
	switch {
	case isInt(ch.terms[0], 2) && isInt(ch.terms[1], 2):
		ch.terms = []Term{ch.d.four}
	case isInt(ch.terms[0], 1):
		ch.terms = []Term{ch.d.one}
	default:
		return
	}
	ch.resolved = true
	ch.fired(0)
}

// rule1 finishes a chain of fewer than three terms, evaluating a→b as a**b.
func (ch *Chain) rule1() {
	if len(ch.terms) >= 3 {
		return
	}
	ch.resolved = true
	if len(ch.terms) == 2 {
		ch.terms = []Term{valueOf(ch.terms[0]).Pow(valueOf(ch.terms[1]))}
		ch.fired(1)
	}
}

// rule2 drops a trailing 1.
func (ch *Chain) rule2() {
	n := len(ch.terms)
	if isInt(ch.terms[n-1], 1) {
		ch.terms = ch.terms[:n-1]
		ch.fired(2)
	}
}

// rule3 drops a 1 in the next to last place together with the last term.
func (ch *Chain) rule3() {
	n := len(ch.terms)
	if isInt(ch.terms[n-2], 1) {
		ch.terms = ch.terms[:n-2]
		ch.fired(3)
	}
}

// rule4 expands X→a→b into X→(X→(a-1)→b)→(b-1) and reduces the
// inner chain at once.
func (ch *Chain) rule4() {
	n := len(ch.terms)
	a := valueOf(ch.terms[n-2])
	b := valueOf(ch.terms[n-1])
	prefix := ch.terms[:n-2:n-2]
	inner := &Chain{
		depth: ch.depth + 1,
		root:  ch.root,
		d:     ch.d,
	}
	inner.terms = append(inner.adopt(prefix), a.Sub(ch.d.one), b)
	ch.terms = append(prefix, inner, b.Sub(ch.d.one))
	ch.fired(4)
	inner.descend()
}

// descend reduces a nested chain unless it lies beyond the depth
// ceiling, in which case it is abandoned as it stands.
func (ch *Chain) descend() {
	if ch.depth > ch.d.conf.MaxDepth() {
		ch.abandon("depth ceiling")
		ch.resolved = true
		return
	}
	ch.reduce()
}

// checkRunaway replaces collapsed inner chains by their values and
// abandons the chain if an inner chain gave up or a term has grown
// too large to expand. Only chains of three or more terms expand, so
// a chain of one or two terms is never too large.
func (ch *Chain) checkRunaway() {
	for i, t := range ch.terms {
		if sub, ok := t.(*Chain); ok {
			switch {
			case len(sub.terms) == 1:
				ch.terms[i] = valueOf(sub)
			case sub.resolved:
				ch.abandon("nested abandoned")
			}
		}
		if m, ok := ch.terms[i].(value.Magnitude); ok && len(ch.terms) > 2 && m.Greater(ch.d.limit) {
			ch.abandon("too large")
		}
	}
}

func (ch *Chain) abandon(reason string) {
	if ch.abandoned {
		return
	}
	ch.abandoned = true
	ch.reason = reason
	ch.d.log.Debug("abandon", "reason", reason, "depth", ch.depth, "chain", ch)
}

func (ch *Chain) fired(rule int) {
	ch.d.stats.Rules[rule]++
	ch.d.log.Debug("rule", "rule", rule, "depth", ch.depth, "root", ch.root)
}
