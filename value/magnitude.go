// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strconv"

	"github.com/chainarrow/cca/config"
	"github.com/cockroachdb/apd/v2"
	"github.com/pkg/errors"
)

// A Magnitude is a non-negative number
//
//	10^10^...^(mant * 10^exp)
//
// with tower repetitions of "10^". At tower 0 it is the plain value
// mant * 10^exp. Magnitudes are values: the decimals they point to are
// never modified after construction, so copies may share them.
//
// After normalization, mant is in [1, 10) unless the value is a genuine
// small number (tower 0, exp 0, mant below 1), exp is a whole number no
// larger than the configured ceiling, and exp is never 0 above tower 0.
type Magnitude struct {
	conf  *config.Config
	mant  *apd.Decimal
	exp   *apd.Decimal
	tower int
}

// New returns the normalized magnitude with the given mantissa,
// exponent and tower. Neither decimal is retained.
func New(conf *config.Config, mant, exp *apd.Decimal, tower int) Magnitude {
	if conf == nil {
		Errorf("magnitude: nil config")
	}
	if tower < 0 {
		Errorf("magnitude: negative tower %d", tower)
	}
	if mant.Sign() < 0 {
		Errorf("magnitude: negative mantissa %s", mant)
	}
	return normalize(conf, mant, exp, tower)
}

// Int returns the tower-0 magnitude with value n.
func Int(conf *config.Config, n int64) Magnitude {
	if n < 0 {
		Errorf("magnitude: negative value %d", n)
	}
	return New(conf, apd.New(n, 0), decZero, 0)
}

// Parse returns the tower-0 magnitude for the decimal literal s.
func Parse(conf *config.Config, s string) (Magnitude, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Magnitude{}, errors.Wrapf(err, "magnitude: bad number %q", s)
	}
	if d.Form != apd.Finite || d.Negative && !d.IsZero() {
		return Magnitude{}, errors.Errorf("magnitude: %q is not a non-negative number", s)
	}
	d.Negative = false
	return New(conf, d, decZero, 0), nil
}

// Config returns the configuration the magnitude was built with.
func (x Magnitude) Config() *config.Config {
	return x.conf
}

// Mantissa returns a copy of the mantissa.
func (x Magnitude) Mantissa() *apd.Decimal {
	return new(apd.Decimal).Set(x.mant)
}

// Exponent returns a copy of the exponent.
func (x Magnitude) Exponent() *apd.Decimal {
	return new(apd.Decimal).Set(x.exp)
}

// Tower returns the number of base-10 logarithms separating the stored
// mantissa and exponent from the linear value.
func (x Magnitude) Tower() int {
	return x.tower
}

// IsZero reports whether x is zero.
func (x Magnitude) IsZero() bool {
	return x.tower == 0 && x.mant.IsZero()
}

// Real returns mant * 10^exp as a decimal, ignoring the tower. It is the
// value itself only at tower 0; above that it is the value's tower-th
// iterated logarithm.
func (x Magnitude) Real() *apd.Decimal {
	return shift(x.mant, x.exponent())
}

// exponent returns the exponent as an integer. Normalized exponents are
// whole numbers no larger than MaxExp.
func (x Magnitude) exponent() int32 {
	n, ok := integer(x.exp)
	if !ok {
		Errorf("magnitude: exponent %s out of range", x.exp)
	}
	return n
}

// Normalize returns x renormalized. Normalization is a fixed point,
// so for any magnitude built by this package the result equals x.
func (x Magnitude) Normalize() Magnitude {
	return normalize(x.conf, x.mant, x.exp, x.tower)
}

// normalize enforces the representation invariant:
//   - a whole-number exponent,
//   - at a tower above 0, an exponent of 0 means the value belongs one
//     tower lower, so mant becomes 10^mant and the tower drops,
//   - mant is brought into [1, 10) by moving its order of magnitude
//     into exp, except for tower-0 values below 1,
//   - while exp exceeds the ceiling, the whole value is replaced by its
//     logarithm and the tower rises.
func normalize(conf *config.Config, mant, exp *apd.Decimal, tower int) Magnitude {
	c := newCalc(conf.Decimal(), "normalize")
	ceiling := apd.New(conf.MaxExp(), 0)
	if mant.IsZero() {
		exp = decZero
	}
	if _, ok := integer(exp); !ok {
		whole := c.floor(exp)
		mant = c.scale(mant, c.sub(exp, whole))
		exp = whole
	}
	for {
		// A mantissa above the ceiling would be promoted straight back
		// after collapsing, so it stays at this tower.
		if exp.IsZero() && tower > 0 && mant.Cmp(ceiling) <= 0 {
			mant = c.exp10(mant)
			tower--
		}
		mant, exp = c.sci(mant, exp)
		if !exp.IsZero() || tower == 0 {
			break
		}
	}
	for exp.Cmp(ceiling) > 0 {
		mant = c.add(exp, c.log10(mant))
		tower++
		mant, exp = c.sci(mant, decZero)
	}
	return Magnitude{conf: conf, mant: mant, exp: exp, tower: tower}
}

// sci moves the order of magnitude of mant into exp so that
// mant is in [1, 10). A value below 1 is folded into a bare mantissa
// with exponent 0 instead, since exponents are never negative.
func (c calc) sci(mant, exp *apd.Decimal) (*apd.Decimal, *apd.Decimal) {
	if mant.IsZero() {
		return decZero, decZero
	}
	k := magnitude10(mant)
	e := c.add(exp, apd.New(k, 0))
	if e.Sign() < 0 {
		return c.scale(mant, exp), decZero
	}
	return shift(mant, int32(-k)), e
}

// Cmp compares x and y and returns -1, 0 or +1. The order is
// lexicographic on tower, exponent and mantissa, which is numeric
// order for normalized magnitudes.
func (x Magnitude) Cmp(y Magnitude) int {
	switch {
	case x.tower > y.tower:
		return 1
	case x.tower < y.tower:
		return -1
	}
	if c := x.exp.Cmp(y.exp); c != 0 {
		return c
	}
	return x.mant.Cmp(y.mant)
}

// Equal reports whether x and y have identical normalized fields.
// Two representations of one quantity at different towers are not equal.
func (x Magnitude) Equal(y Magnitude) bool {
	return x.Cmp(y) == 0
}

// Less reports whether x < y.
func (x Magnitude) Less(y Magnitude) bool {
	return x.Cmp(y) < 0
}

// Greater reports whether x > y.
func (x Magnitude) Greater(y Magnitude) bool {
	return x.Cmp(y) > 0
}

// IsInt reports whether x is the tower-0 value n.
func (x Magnitude) IsInt(n int64) bool {
	if x.tower != 0 {
		return false
	}
	return x.Real().Cmp(apd.New(n, 0)) == 0
}

// GoString is used by %#v.
func (x Magnitude) GoString() string {
	return "value.Magnitude{mant: " + x.mant.String() + ", exp: " + x.exp.String() + ", tower: " + strconv.Itoa(x.tower) + "}"
}

// biggestFirst returns x and y ordered largest first.
func biggestFirst(x, y Magnitude) (Magnitude, Magnitude) {
	if x.Less(y) {
		return y, x
	}
	return x, y
}
