// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, uint32(34), c.Precision())
	assert.Equal(t, int64(2000), c.MaxExp())
	assert.Equal(t, 8, c.MaxTower())
	assert.Equal(t, int64(1000), c.MaxExpandable())
	assert.Equal(t, 2000, c.MaxDepth())
	assert.Equal(t, 12, c.Digits())
	assert.Equal(t, ">", c.Delimiter())
	assert.Equal(t, "cca> ", c.Prompt())
	assert.False(t, c.Debug("trace"))
	assert.Equal(t, uint32(34), c.Decimal().Precision)
}

func TestSetters(t *testing.T) {
	var c Config
	c.SetPrecision(50)
	assert.Equal(t, uint32(50), c.Decimal().Precision)
	c.SetPrecision(20)
	assert.Equal(t, uint32(20), c.Decimal().Precision, "decimal context not rebuilt")

	c.SetMaxExp(3)
	assert.Equal(t, int64(10), c.MaxExp())
	c.SetMaxExp(0)
	assert.Equal(t, int64(2000), c.MaxExp())

	c.SetDebug("trace", true)
	assert.True(t, c.Debug("trace"))
	assert.False(t, c.Debug("stats"))
}

func TestLoad(t *testing.T) {
	const doc = `
precision: 40
max_exp: 500
max_tower: 4
max_expandable: 99
max_depth: 64
digits: 6
delimiter: ","
prompt: "> "
debug: [trace, stats]
`
	var c Config
	require.NoError(t, c.Load(strings.NewReader(doc)))
	assert.Equal(t, uint32(40), c.Precision())
	assert.Equal(t, int64(500), c.MaxExp())
	assert.Equal(t, 4, c.MaxTower())
	assert.Equal(t, int64(99), c.MaxExpandable())
	assert.Equal(t, 64, c.MaxDepth())
	assert.Equal(t, 6, c.Digits())
	assert.Equal(t, ",", c.Delimiter())
	assert.Equal(t, "> ", c.Prompt())
	assert.True(t, c.Debug("trace"))
	assert.True(t, c.Debug("stats"))
}

func TestLoadErrors(t *testing.T) {
	var tests = []struct {
		doc   string
		error string
	}{
		{"bogus: 1\n", "field bogus not found"},
		{"max_exp: -4\n", "negative max_exp"},
		{"precision: lots\n", "cannot unmarshal"},
	}
	for _, test := range tests {
		var c Config
		err := c.Load(strings.NewReader(test.doc))
		require.Error(t, err, test.doc)
		assert.Contains(t, err.Error(), test.error)
	}
}

func TestLoadEmpty(t *testing.T) {
	var c Config
	require.NoError(t, c.Load(strings.NewReader("")))
	assert.Equal(t, uint32(34), c.Precision())
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cca.yaml")
	require.NoError(t, os.WriteFile(name, []byte("digits: 7\n"), 0666))
	var c Config
	require.NoError(t, c.LoadFile(name))
	assert.Equal(t, 7, c.Digits())

	err := c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var c Config
	var buf bytes.Buffer
	c.SetErrOutput(&buf)
	c.Logger().Debug("hidden")
	assert.Empty(t, buf.String())

	c.SetDebug("trace", true)
	c.Logger().Debug("shown", "rule", 4)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "rule=4")
}
