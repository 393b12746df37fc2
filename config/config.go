// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the tunables and I/O settings shared by the
// magnitude arithmetic, the chain reducer and the command.
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/apd/v2"
)

const (
	defaultPrecision     = 34
	defaultMaxExp        = 2000
	minMaxExp            = 10
	defaultMaxTower      = 8
	defaultMaxExpandable = 1000
	defaultMaxDepth      = 2000
	defaultDigits        = 12
	defaultDelimiter     = ">"
	defaultPrompt        = "cca> "
)

// A Config is passed to every Magnitude and Chain at creation time.
// The zero value is ready to use; each getter supplies the default
// for a field that has not been set.
type Config struct {
	precision     uint32
	maxExp        int64
	maxTower      int
	maxExpandable int64
	maxDepth      int
	digits        int
	delimiter     string
	prompt        string
	debug         map[string]bool
	output        io.Writer
	errOutput     io.Writer
	logger        *slog.Logger // Installed by SetLogger.
	defaultLogger *slog.Logger // Built on demand; nil after the handler settings change.

	decimal *apd.Context // Cached; nil after the precision changes.
}

// Precision returns the number of significant decimal digits
// carried by every real-number computation.
func (c *Config) Precision() uint32 {
	if c.precision == 0 {
		return defaultPrecision
	}
	return c.precision
}

func (c *Config) SetPrecision(digits uint32) {
	c.precision = digits
	c.decimal = nil
}

// Decimal returns the decimal arithmetic context for the configured precision.
func (c *Config) Decimal() *apd.Context {
	if c.decimal == nil {
		c.decimal = apd.BaseContext.WithPrecision(c.Precision())
	}
	return c.decimal
}

// MaxExp returns the exponent ceiling above which a magnitude is
// promoted to the next tower.
func (c *Config) MaxExp() int64 {
	if c.maxExp == 0 {
		return defaultMaxExp
	}
	return c.maxExp
}

// SetMaxExp sets the exponent ceiling. Values below 10 are raised to 10:
// a smaller ceiling could promote a value whose logarithm collapses
// straight back.
func (c *Config) SetMaxExp(exp int64) {
	if exp != 0 && exp < minMaxExp {
		exp = minMaxExp
	}
	c.maxExp = exp
}

// MaxTower returns the tower height at which printing switches
// from repeated "10^" to the compact "NPT^" form.
func (c *Config) MaxTower() int {
	if c.maxTower == 0 {
		return defaultMaxTower
	}
	return c.maxTower
}

func (c *Config) SetMaxTower(tower int) {
	c.maxTower = tower
}

// MaxExpandable returns the largest term value the reducer will
// still expand with the core rule.
func (c *Config) MaxExpandable() int64 {
	if c.maxExpandable == 0 {
		return defaultMaxExpandable
	}
	return c.maxExpandable
}

func (c *Config) SetMaxExpandable(n int64) {
	c.maxExpandable = n
}

// MaxDepth returns the ceiling on nested chain depth.
func (c *Config) MaxDepth() int {
	if c.maxDepth == 0 {
		return defaultMaxDepth
	}
	return c.maxDepth
}

func (c *Config) SetMaxDepth(depth int) {
	c.maxDepth = depth
}

// Digits returns the number of significant digits shown when printing.
func (c *Config) Digits() int {
	if c.digits == 0 {
		return defaultDigits
	}
	return c.digits
}

func (c *Config) SetDigits(digits int) {
	c.digits = digits
}

func (c *Config) Delimiter() string {
	if c.delimiter == "" {
		return defaultDelimiter
	}
	return c.delimiter
}

func (c *Config) SetDelimiter(s string) {
	c.delimiter = s
}

func (c *Config) Prompt() string {
	if c.prompt == "" {
		return defaultPrompt
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	if s == "trace" {
		c.defaultLogger = nil
	}
}

// Output returns the writer for results.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for errors and diagnostics.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
	c.defaultLogger = nil
}

// Logger returns the structured logger for diagnostics. Unless one has
// been installed with SetLogger, it is a text handler on ErrOutput that
// shows debug records only when the "trace" switch is on.
func (c *Config) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	if c.defaultLogger == nil {
		level := slog.LevelInfo
		if c.Debug("trace") {
			level = slog.LevelDebug
		}
		c.defaultLogger = slog.New(slog.NewTextHandler(c.ErrOutput(), &slog.HandlerOptions{Level: level}))
	}
	return c.defaultLogger
}

func (c *Config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}
