// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns a line of input such as "3 > 3 > 2" into a chain.
// Terms are separated by the configured delimiter and must be
// non-negative whole numbers written in decimal.
package parse // import "github.com/chainarrow/cca/parse"

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chainarrow/cca/chain"
	"github.com/chainarrow/cca/config"
	"github.com/pkg/errors"
)

// Limits on the number of terms in a line.
const (
	MinTerms = 2
	MaxTerms = 4
)

// Kinds of input error. Test for them with errors.Is.
var (
	ErrTooFewTerms    = errors.New("too few terms")
	ErrTooManyTerms   = errors.New("too many terms")
	ErrNotWholeNumber = errors.New("not a positive whole number")
)

// An Error describes a line that could not be turned into a chain.
type Error struct {
	Kind  error  // ErrTooFewTerms, ErrTooManyTerms or ErrNotWholeNumber.
	Token string // The offending term, for ErrNotWholeNumber.
}

func (e *Error) Error() string {
	if e.Kind == ErrNotWholeNumber {
		return fmt.Sprintf("%q is not a positive whole number", e.Token)
	}
	return fmt.Sprintf("%s: please enter %d-%d terms", e.Kind, MinTerms, MaxTerms)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var wholeNumber = regexp.MustCompile(`^[0-9]+$`)

// Tokens splits line on the delimiter and trims the terms.
// It checks the number of terms only when limit is set.
func Tokens(conf *config.Config, line string, limit bool) ([]string, error) {
	toks := strings.Split(strings.TrimSpace(line), conf.Delimiter())
	for i := range toks {
		toks[i] = strings.TrimSpace(toks[i])
	}
	if limit {
		switch {
		case len(toks) < MinTerms:
			return nil, errors.WithStack(&Error{Kind: ErrTooFewTerms})
		case len(toks) > MaxTerms:
			return nil, errors.WithStack(&Error{Kind: ErrTooManyTerms})
		}
	}
	for _, tok := range toks {
		if !wholeNumber.MatchString(tok) {
			return nil, errors.WithStack(&Error{Kind: ErrNotWholeNumber, Token: tok})
		}
	}
	return toks, nil
}

// Line returns the chain for a line typed by the user, who must give
// between MinTerms and MaxTerms terms.
func Line(conf *config.Config, line string) (*chain.Chain, error) {
	return parse(conf, line, true)
}

// Script is like Line but accepts any number of terms. It is used for
// prepared input such as the demo.
func Script(conf *config.Config, line string) (*chain.Chain, error) {
	return parse(conf, line, false)
}

func parse(conf *config.Config, line string, limit bool) (*chain.Chain, error) {
	toks, err := Tokens(conf, line, limit)
	if err != nil {
		return nil, err
	}
	return chain.Parse(conf, toks)
}
