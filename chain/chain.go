// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chain implements Conway chained arrow expressions and their
// reduction to a single layered magnitude.
//
// A chain a→b→...→y→z is reduced by repeated rewriting:
//
//	a→b          = a**b
//	X→1          = X
//	X→1→z        = X
//	X→y→z        = X→(X→(y-1)→z)→(z-1)
//
// The inner chain created by the last rule is reduced completely before
// the outer chain continues. Reduction gives up, rather than running
// forever, once a term exceeds the configured expandable limit or the
// nesting passes the configured depth.
package chain

import (
	"strings"

	"github.com/chainarrow/cca/config"
	"github.com/chainarrow/cca/value"
	"github.com/pkg/errors"
)

// A Term is one element of a chain: a value.Magnitude or a nested *Chain.
type Term interface {
	String() string
}

// A Chain is a chained arrow expression. It is reduced in place.
type Chain struct {
	terms     []Term
	resolved  bool   // No further rewriting.
	abandoned bool   // Gave up before a single value remained.
	reason    string // Why it was abandoned.
	depth     int    // Nesting level; the outermost chain is 0.
	root      *Chain // Outermost chain, for diagnostics only.
	d         *driver
}

// New returns a chain of the given terms. Nested chains are copied,
// so the new chain owns its whole tree.
func New(conf *config.Config, terms ...Term) *Chain {
	if len(terms) == 0 {
		value.Errorf("chain: no terms")
	}
	ch := &Chain{d: newDriver(conf)}
	ch.root = ch
	ch.terms = ch.adopt(terms)
	return ch
}

// Ints returns the chain n[0]→n[1]→...
func Ints(conf *config.Config, n ...int64) *Chain {
	terms := make([]Term, len(n))
	for i, x := range n {
		terms[i] = value.Int(conf, x)
	}
	return New(conf, terms...)
}

// Parse returns the chain whose terms are the decimal literals in tokens.
func Parse(conf *config.Config, tokens []string) (*Chain, error) {
	if len(tokens) == 0 {
		return nil, errors.New("chain: no terms")
	}
	terms := make([]Term, len(tokens))
	for i, tok := range tokens {
		m, err := value.Parse(conf, strings.TrimSpace(tok))
		if err != nil {
			return nil, errors.Wrapf(err, "term %d", i+1)
		}
		terms[i] = m
	}
	return New(conf, terms...), nil
}

// adopt copies terms into a slice owned by ch, cloning nested chains
// into ch's tree.
func (ch *Chain) adopt(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		if sub, ok := t.(*Chain); ok {
			t = sub.clone(ch.root, ch.d, ch.depth+1)
		}
		out[i] = t
	}
	return out
}

func (ch *Chain) clone(root *Chain, d *driver, depth int) *Chain {
	c := &Chain{
		resolved:  ch.resolved,
		abandoned: ch.abandoned,
		reason:    ch.reason,
		depth:     depth,
		root:      root,
		d:         d,
	}
	c.terms = c.adopt(ch.terms)
	return c
}

// Len returns the number of terms at the top level of the chain.
func (ch *Chain) Len() int {
	return len(ch.terms)
}

// Terms returns a copy of the top-level terms.
func (ch *Chain) Terms() []Term {
	return append([]Term(nil), ch.terms...)
}

// Resolved reports whether reduction has finished, either with a
// single value or by abandonment.
func (ch *Chain) Resolved() bool {
	return ch.resolved
}

// Abandoned reports whether reduction gave up. The partial structure
// is kept and can still be printed.
func (ch *Chain) Abandoned() bool {
	return ch.abandoned
}

// Reason returns why reduction was abandoned, or "".
func (ch *Chain) Reason() string {
	return ch.reason
}

// Value returns the chain's leading value: the result once the chain
// has reduced to a single term, a best-effort lower bound otherwise.
func (ch *Chain) Value() value.Magnitude {
	return valueOf(ch)
}

// Stats returns the statistics gathered by the reductions run on the
// chain's tree.
func (ch *Chain) Stats() Stats {
	return ch.d.stats
}

// String prints the chain with nested chains in parentheses,
// as in ( 3 > ( 3 > 2 > 2 ) > 1 ).
func (ch *Chain) String() string {
	var b strings.Builder
	sep := " " + ch.d.conf.Delimiter() + " "
	b.WriteString("( ")
	for i, t := range ch.terms {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(t.String())
	}
	b.WriteString(" )")
	return b.String()
}

// valueOf returns the magnitude a term stands for. A nested chain
// stands for its first term, which is its value once it has collapsed.
func valueOf(t Term) value.Magnitude {
	switch t := t.(type) {
	case value.Magnitude:
		return t
	case *Chain:
		return valueOf(t.terms[0])
	}
	value.Errorf("chain: unexpected term %T", t)
	panic("not reached")
}

// isInt reports whether t is a plain value equal to n.
func isInt(t Term, n int64) bool {
	m, ok := t.(value.Magnitude)
	return ok && m.IsInt(n)
}
