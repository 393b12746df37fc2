// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"github.com/cockroachdb/apd/v2"
)

// Add returns x+y.
//
// At tower 0 the sum is exact up to the working precision. When the
// larger operand is at tower 1 the sum is formed from logarithms. When
// it is at tower 2 or above the smaller operand cannot change any
// digit that is kept, and the larger operand is returned.
func (x Magnitude) Add(y Magnitude) Magnitude {
	x, y = biggestFirst(x, y)
	c := newCalc(x.conf.Decimal(), "add")
	switch x.tower {
	case 0:
		return New(x.conf, c.add(x.Real(), y.Real()), decZero, 0)
	case 1:
		if y.IsZero() {
			return x
		}
		return New(x.conf, c.addlog(x.Real(), y.log()), decZero, 1)
	}
	return x
}

// Sub returns x-y. It requires x >= y.
// At tower 2 and above it returns x unchanged.
func (x Magnitude) Sub(y Magnitude) Magnitude {
	if x.Less(y) {
		Errorf("sub: %s is less than %s", x, y)
	}
	c := newCalc(x.conf.Decimal(), "sub")
	switch x.tower {
	case 0:
		return New(x.conf, c.sub(x.Real(), y.Real()), decZero, 0)
	case 1:
		if y.IsZero() {
			return x
		}
		return New(x.conf, c.sublog(x.Real(), y.log()), decZero, 1)
	}
	return x
}

// Mul returns x*y.
//
// Products involving a tower-1 operand add logarithms. Two tower-2
// operands combine their doubled logarithms with addlog. Any other
// pairing at tower 2 or above returns the larger operand.
func (x Magnitude) Mul(y Magnitude) Magnitude {
	x, y = biggestFirst(x, y)
	c := newCalc(x.conf.Decimal(), "mul")
	switch {
	case x.tower == 0:
		return New(x.conf, c.mul(x.Real(), y.Real()), decZero, 0)
	case y.IsZero():
		return y
	case x.tower == 1:
		return New(x.conf, c.add(x.Real(), y.log()), decZero, 1)
	case x.tower == 2 && y.tower == 2:
		return New(x.conf, c.addlog(x.Real(), y.Real()), decZero, 2)
	}
	return x
}

// log returns log10 of a tower-0 or tower-1 magnitude as a decimal.
func (x Magnitude) log() *apd.Decimal {
	c := newCalc(x.conf.Decimal(), "log10")
	switch x.tower {
	case 0:
		return c.add(c.log10(x.mant), x.exp)
	case 1:
		return x.Real()
	}
	Errorf("log10: %s is too large for a decimal", x)
	return nil
}

// Pow returns x**p.
//
// Small operands are raised directly. Otherwise the result is
// 10^(p * log10 x), which moves the work one tower down and back up
// and never forms the large intermediate value.
func (x Magnitude) Pow(p Magnitude) Magnitude {
	c := newCalc(x.conf.Decimal(), "pow")
	switch {
	case p.IsZero():
		return Int(x.conf, 1)
	case x.IsZero(), x.IsInt(1):
		return x
	}
	// Both at a stable level with no exponent: the mantissas are the values.
	if x.exp.IsZero() && p.exp.IsZero() {
		return New(x.conf, c.pow(x.mant, p.mant), decZero, x.tower)
	}
	if x.tower == 0 && p.tower == 0 {
		xr, pr := x.Real(), p.Real()
		digits := c.mul(c.log10(xr), pr)
		if digits.Cmp(apd.New(x.conf.MaxExp(), 0)) <= 0 {
			return New(x.conf, c.pow(xr, pr), decZero, 0)
		}
	}
	return x.Log10().Mul(p).Antilog10()
}

// Log10 returns log10(x). Above tower 0 this just removes one tower.
func (x Magnitude) Log10() Magnitude {
	if x.tower == 0 {
		if x.IsZero() {
			Errorf("log10: log of zero")
		}
		return New(x.conf, x.log(), decZero, 0)
	}
	return New(x.conf, x.mant, x.exp, x.tower-1)
}

// Antilog10 returns 10**x by adding one tower.
func (x Magnitude) Antilog10() Magnitude {
	return New(x.conf, x.mant, x.exp, x.tower+1)
}
