// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/chainarrow/cca/config"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// registerFlags defines the flags that set tunables. Their defaults are
// zero, which leaves the configuration default in place.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML `file` of settings; flags given explicitly override it")
	fs.Uint32("precision", 0, "significant decimal `digits` in every computation (default 34)")
	fs.Int64("max-exp", 0, "exponent ceiling before a value moves up the tower (default 2000, minimum 10)")
	fs.Int("max-tower", 0, "tower height at which values print as nPT^x (default 8)")
	fs.Int64("max-expandable", 0, "largest term a chain still expands (default 1000)")
	fs.Int("max-depth", 0, "nesting depth at which reduction gives up (default 2000)")
	fs.Int("digits", 0, "significant `digits` printed (default 12)")
	fs.String("delimiter", "", "term separator (default \">\")")
	fs.String("prompt", "", "interactive prompt (default \"cca> \")")
	fs.StringSlice("debug", nil, "debug `switches`: trace, stats, cpu")
}

// applyFlags loads the config file named by --config, if any, then
// applies the flags that were set on the command line.
func applyFlags(fs *pflag.FlagSet, conf *config.Config) error {
	if name, _ := fs.GetString("config"); name != "" {
		if err := conf.LoadFile(name); err != nil {
			return err
		}
	}
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = errors.Wrapf(apply(), "flag --%s", name)
		}
	}
	set("precision", func() error {
		v, err := fs.GetUint32("precision")
		conf.SetPrecision(v)
		return err
	})
	set("max-exp", func() error {
		v, err := fs.GetInt64("max-exp")
		if v < 0 {
			return errors.Errorf("negative value %d", v)
		}
		conf.SetMaxExp(v)
		return err
	})
	set("max-tower", func() error {
		v, err := fs.GetInt("max-tower")
		conf.SetMaxTower(v)
		return err
	})
	set("max-expandable", func() error {
		v, err := fs.GetInt64("max-expandable")
		conf.SetMaxExpandable(v)
		return err
	})
	set("max-depth", func() error {
		v, err := fs.GetInt("max-depth")
		conf.SetMaxDepth(v)
		return err
	})
	set("digits", func() error {
		v, err := fs.GetInt("digits")
		conf.SetDigits(v)
		return err
	})
	set("delimiter", func() error {
		v, err := fs.GetString("delimiter")
		conf.SetDelimiter(v)
		return err
	})
	set("prompt", func() error {
		v, err := fs.GetString("prompt")
		conf.SetPrompt(v)
		return err
	})
	set("debug", func() error {
		names, err := fs.GetStringSlice("debug")
		for _, name := range names {
			conf.SetDebug(name, true)
		}
		return err
	})
	return err
}
