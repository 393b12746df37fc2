// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"github.com/cockroachdb/apd/v2"
)

// Values one tower up are added by working on their logarithms:
//
//	log10(10^x + 10^y) = x + log10(1 + 10^(y-x))  for x >= y
//
// The correction term is computed from the gap between the operands,
// so neither 10^x nor 10^y is ever formed.

// addlog returns log10(10^x + 10^y).
func (c calc) addlog(x, y *apd.Decimal) *apd.Decimal {
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	gap := c.sub(y, x)
	if c.negligible(gap) {
		return x
	}
	t := c.add(decOne, c.exp10(gap))
	return c.add(x, c.log10(t))
}

// sublog returns log10(10^x - 10^y), taking the larger of x and y
// as the minuend.
func (c calc) sublog(x, y *apd.Decimal) *apd.Decimal {
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	gap := c.sub(y, x)
	if gap.IsZero() {
		Errorf("%s: logarithm of zero difference", c.op)
	}
	if c.negligible(gap) {
		return x
	}
	t := c.sub(decOne, c.exp10(gap))
	return c.add(x, c.log10(t))
}

// negligible reports whether 10^gap, for gap <= 0, falls below the
// last digit carried by the context.
func (c calc) negligible(gap *apd.Decimal) bool {
	limit := apd.New(-int64(c.ctx.Precision)-2, 0)
	return gap.Cmp(limit) < 0
}
