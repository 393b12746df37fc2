// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// file is the YAML form of the tunables. Pointers distinguish
// "absent" from an explicit zero, which restores the default.
type file struct {
	Precision     *uint32  `yaml:"precision"`
	MaxExp        *int64   `yaml:"max_exp"`
	MaxTower      *int     `yaml:"max_tower"`
	MaxExpandable *int64   `yaml:"max_expandable"`
	MaxDepth      *int     `yaml:"max_depth"`
	Digits        *int     `yaml:"digits"`
	Delimiter     *string  `yaml:"delimiter"`
	Prompt        *string  `yaml:"prompt"`
	Debug         []string `yaml:"debug"`
}

// Load reads a YAML document from r and applies the settings it names.
// Settings not mentioned keep their current value.
func (c *Config) Load(r io.Reader) error {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(err, "config")
	}
	if f.Precision != nil {
		c.SetPrecision(*f.Precision)
	}
	if f.MaxExp != nil {
		if *f.MaxExp < 0 {
			return errors.Errorf("config: negative max_exp %d", *f.MaxExp)
		}
		c.SetMaxExp(*f.MaxExp)
	}
	if f.MaxTower != nil {
		c.SetMaxTower(*f.MaxTower)
	}
	if f.MaxExpandable != nil {
		c.SetMaxExpandable(*f.MaxExpandable)
	}
	if f.MaxDepth != nil {
		c.SetMaxDepth(*f.MaxDepth)
	}
	if f.Digits != nil {
		c.SetDigits(*f.Digits)
	}
	if f.Delimiter != nil {
		c.SetDelimiter(*f.Delimiter)
	}
	if f.Prompt != nil {
		c.SetPrompt(*f.Prompt)
	}
	for _, name := range f.Debug {
		c.SetDebug(name, true)
	}
	return nil
}

// LoadFile is Load on the named file.
func (c *Config) LoadFile(name string) error {
	fd, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	defer fd.Close()
	return errors.Wrap(c.Load(fd), name)
}
