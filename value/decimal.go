// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"github.com/cockroachdb/apd/v2"
	"github.com/pkg/errors"
)

var (
	decZero = apd.New(0, 0)
	decOne  = apd.New(1, 0)
	decTen  = apd.New(10, 0)
)

// calc runs decimal operations in one context and raises an Error,
// labelled with op, on the first failing condition.
// Every result is freshly allocated; arguments are never modified.
type calc struct {
	ctx *apd.Context
	op  string
}

func newCalc(ctx *apd.Context, op string) calc {
	return calc{ctx: ctx, op: op}
}

func (c calc) check(_ apd.Condition, err error) {
	if err != nil {
		panic(Error{errors.Wrap(err, c.op)})
	}
}

func (c calc) add(x, y *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	c.check(c.ctx.Add(d, x, y))
	return d
}

func (c calc) sub(x, y *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	c.check(c.ctx.Sub(d, x, y))
	return d
}

func (c calc) mul(x, y *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	c.check(c.ctx.Mul(d, x, y))
	return d
}

// pow returns x**y. Whole-number exponents are done by repeated
// squaring, which is exact while the result fits in the precision;
// the general case goes through logarithms.
func (c calc) pow(x, y *apd.Decimal) *apd.Decimal {
	if n, err := y.Int64(); err == nil && n >= 0 && x.Sign() >= 0 {
		return c.integerPower(x, n)
	}
	d := new(apd.Decimal)
	c.check(c.ctx.Pow(d, x, y))
	return d
}

// integerPower returns x**n for n >= 0.
func (c calc) integerPower(x *apd.Decimal, n int64) *apd.Decimal {
	// A few guard digits keep the rounding of intermediate
	// products out of the final result.
	wide := newCalc(c.ctx.WithPrecision(c.ctx.Precision+4), c.op)
	z := apd.New(1, 0)
	y := new(apd.Decimal).Set(x)
	// For each loop, we compute xⁿ where n is a power of two.
	for n > 0 {
		if n&1 == 1 {
			// This bit contributes. Multiply it into the result.
			z = wide.mul(z, y)
		}
		n >>= 1
		if n > 0 {
			y = wide.mul(y, y)
		}
	}
	d := new(apd.Decimal)
	c.check(c.ctx.Round(d, z))
	return d
}

func (c calc) floor(x *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	c.check(c.ctx.Floor(d, x))
	return d
}

func (c calc) log10(x *apd.Decimal) *apd.Decimal {
	if x.Sign() <= 0 {
		Errorf("%s: log10 of non-positive value %s", c.op, x)
	}
	d := new(apd.Decimal)
	c.check(c.ctx.Log10(d, x))
	return d
}

// exp10 returns 10**x.
func (c calc) exp10(x *apd.Decimal) *apd.Decimal {
	if n, ok := integer(x); ok {
		return shift(decOne, n)
	}
	return c.pow(decTen, x)
}

// scale returns x * 10**e.
func (c calc) scale(x, e *apd.Decimal) *apd.Decimal {
	if n, ok := integer(e); ok {
		return shift(x, n)
	}
	return c.mul(x, c.exp10(e))
}

// integer returns x as an int32 if it is a whole number in range.
func integer(x *apd.Decimal) (int32, bool) {
	n, err := x.Int64()
	if err != nil || n < apd.MinExponent || n > apd.MaxExponent {
		return 0, false
	}
	return int32(n), true
}

// shift returns x * 10**n exactly, by moving the decimal exponent.
func shift(x *apd.Decimal, n int32) *apd.Decimal {
	d := new(apd.Decimal).Set(x)
	if !d.IsZero() {
		d.Exponent += n
	}
	return d
}

// magnitude10 returns floor(log10(x)) for x > 0, computed exactly
// from the digit count of the coefficient.
func magnitude10(x *apd.Decimal) int64 {
	return x.NumDigits() + int64(x.Exponent) - 1
}
