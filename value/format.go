// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v2"
)

// String prints x as a tower of "10^" prefixes, or "NPT^" once the
// tower reaches the configured limit, followed by the innermost value.
// The innermost value is written out in full when its exponent is
// below 10 and as mantissa "e" exponent otherwise, in both cases
// rounded to the configured number of digits.
func (x Magnitude) String() string {
	if x.conf == nil {
		return "<nil>"
	}
	var b strings.Builder
	if x.tower < x.conf.MaxTower() {
		for i := 0; i < x.tower; i++ {
			b.WriteString("10^")
		}
	} else {
		fmt.Fprintf(&b, "%dPT^", x.tower)
	}
	if x.exp.Cmp(decTen) < 0 {
		b.WriteString(x.text(x.Real()))
	} else {
		b.WriteString(x.text(x.mant))
		b.WriteByte('e')
		b.WriteString(x.text(x.exp))
	}
	return b.String()
}

// text formats d in plain notation, rounded to the configured digits,
// without trailing zeros.
func (x Magnitude) text(d *apd.Decimal) string {
	ctx := x.conf.Decimal().WithPrecision(uint32(x.conf.Digits()))
	r := new(apd.Decimal)
	if _, err := ctx.Round(r, d); err != nil {
		return d.String()
	}
	r.Reduce(r)
	return r.Text('f')
}
