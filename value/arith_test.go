// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	var tests = []struct {
		name string
		x, y Magnitude
		want string
	}{
		{"linear", Int(&testConf, 2), Int(&testConf, 3), "5"},
		{"linear carry", Int(&testConf, 999), Int(&testConf, 1), "1000"},
		{"tower 1 absorbs small", num(t, "1e3000"), Int(&testConf, 5), "10^3000"},
		{"tower 1 doubles", num(t, "1e3000"), num(t, "1e3000"), "10^3000.30103"},
		{"tower 1 plus zero", num(t, "1e3000"), Int(&testConf, 0), "10^3000"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.x.Add(test.y).String(), test.name)
		assert.Equal(t, test.want, test.y.Add(test.x).String(), "%s, reversed", test.name)
	}
}

// Sums at tower 2 and above are not computed; the larger operand wins.
func TestAddApproximationBoundary(t *testing.T) {
	big2 := tower("3", "3", 2)
	big2b := tower("3.5", "3", 2)
	assert.True(t, big2.Add(big2b).Equal(big2b))
	assert.True(t, big2.Add(big2).Equal(big2))
	assert.True(t, big2.Add(Int(&testConf, 7)).Equal(big2))
	assert.True(t, big2.Add(num(t, "1e3000")).Equal(big2))
}

func TestSub(t *testing.T) {
	var tests = []struct {
		name string
		x, y Magnitude
		want string
	}{
		{"linear", Int(&testConf, 5), Int(&testConf, 1), "4"},
		{"linear to zero", Int(&testConf, 1), Int(&testConf, 1), "0"},
		{"tower 1 minus one", num(t, "1e3000"), Int(&testConf, 1), "10^3000"},
		{"tower 1 minus tower 1", num(t, "1e3000"), num(t, "1e2999"), "10^2999.95424251"},
		{"tower 2 unchanged", tower("3", "3", 2), Int(&testConf, 1), "10^10^3000"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.x.Sub(test.y).String(), test.name)
	}
	assert.Error(t, catch(func() { Int(&testConf, 1).Sub(Int(&testConf, 2)) }))
	assert.Error(t, catch(func() { num(t, "1e3000").Sub(num(t, "1e3000")) }))
}

func TestMul(t *testing.T) {
	var tests = []struct {
		name string
		x, y Magnitude
		want string
	}{
		{"linear", Int(&testConf, 6), Int(&testConf, 7), "42"},
		{"linear zero", Int(&testConf, 6), Int(&testConf, 0), "0"},
		{"tower 1 by tower 0", num(t, "1e3000"), Int(&testConf, 1000), "10^3003"},
		{"tower 1 by tower 1", num(t, "1e3000"), num(t, "1e3000"), "10^6000"},
		{"tower 1 by zero", num(t, "1e3000"), Int(&testConf, 0), "0"},
		{"tower 2 by tower 2", tower("3", "3", 2), tower("3", "3", 2), "10^10^3000.30103"},
		{"tower 2 by tower 1", tower("3", "3", 2), num(t, "1e3000"), "10^10^3000"},
		{"tower 3 by tower 3", tower("3", "3", 3), tower("4", "3", 3), "10^10^10^4000"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.x.Mul(test.y).String(), test.name)
		assert.Equal(t, test.want, test.y.Mul(test.x).String(), "%s, reversed", test.name)
	}
}

func TestPowSmall(t *testing.T) {
	// a**b is exactly the tower-0 encoding of the integer a^b.
	for a := int64(0); a <= 12; a++ {
		for b := int64(0); b <= 12; b++ {
			want := new(big.Int).Exp(big.NewInt(a), big.NewInt(b), nil)
			got := Int(&testConf, a).Pow(Int(&testConf, b))
			assert.Equal(t, 0, got.Tower(), "%d**%d", a, b)
			assert.Equal(t, 0, got.Real().Cmp(dec(want.String())), "%d**%d = %s, got %s", a, b, want, got.Real())
		}
	}
	assert.True(t, Int(&testConf, 3).Pow(Int(&testConf, 27)).Equal(Int(&testConf, 7625597484987)))
}

func TestPowLarge(t *testing.T) {
	var tests = []struct {
		name string
		x, p Magnitude
		want string
	}{
		{"exact power of ten", Int(&testConf, 1000), Int(&testConf, 1000), "10^3000"},
		{"tower 1 result", Int(&testConf, 5), Int(&testConf, 3125), "10^2184.28126355"},
		{"tower 1 exponent", Int(&testConf, 1000), num(t, "1e3000"), "10^10^3000.47712125"},
		{"tower 2 exponent", Int(&testConf, 1000), tower("3", "3", 2), "10^10^10^3000"},
		{"tower 1 base", num(t, "1e3000"), Int(&testConf, 1000), "10^3000000"},
		{"one to anything", Int(&testConf, 1), tower("3", "3", 2), "1"},
		{"zero to anything", Int(&testConf, 0), num(t, "1e3000"), "0"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.x.Pow(test.p).String(), test.name)
	}
	assert.True(t, Int(&testConf, 1000).Pow(Int(&testConf, 1000)).Equal(num(t, "1e3000")))
}

func TestLog10(t *testing.T) {
	assert.True(t, Int(&testConf, 1000).Log10().Equal(Int(&testConf, 3)))
	assert.True(t, Int(&testConf, 1).Log10().Equal(Int(&testConf, 0)))
	assert.True(t, num(t, "1e3000").Log10().Equal(Int(&testConf, 3000)))
	assert.True(t, tower("3", "3", 2).Log10().Equal(num(t, "1e3000")))
	assert.Error(t, catch(func() { Int(&testConf, 0).Log10() }))
}

func TestAntilog10(t *testing.T) {
	assert.True(t, Int(&testConf, 3).Antilog10().Equal(Int(&testConf, 1000)))
	assert.True(t, Int(&testConf, 3000).Antilog10().Equal(num(t, "1e3000")))
	assert.True(t, num(t, "1e3000").Antilog10().Equal(tower("3", "3", 2)))
	for _, m := range sample(t)[2:] {
		assert.True(t, m.Antilog10().Log10().Equal(m), "%s", m)
	}
}
