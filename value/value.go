// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements layered magnitudes: non-negative numbers
// stored as a mantissa, a power-of-ten exponent and a tower count of
// base-10 logarithms, so that values like 10^10^10^27 stay representable
// with fixed-precision decimals underneath.
//
// Arithmetic on layered magnitudes is approximate by construction.
// Once both operands sit two or more logarithms above linear scale,
// addition and multiplication return the larger operand.
package value

import (
	"github.com/pkg/errors"
)

// Error is the type raised, by panicking, when arithmetic cannot proceed.
// The chain reducer recovers it and returns it as an ordinary error.
type Error struct {
	Err error
}

func (err Error) Error() string {
	return err.Err.Error()
}

func (err Error) Unwrap() error {
	return err.Err
}

// Errorf panics with an Error built from the format and arguments.
func Errorf(format string, args ...interface{}) {
	panic(Error{errors.Errorf(format, args...)})
}
