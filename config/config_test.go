// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/webgl/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, "triangle", c.Canvas)
	assert.Equal(t, "red", c.Color)
	assert.Equal(t, 400, c.Width)
	assert.Equal(t, 400, c.Height)
	assert.Equal(t, "./cmd/triangle", c.Build.Package)
	assert.Equal(t, "bin/web", c.Build.Output)
	assert.Equal(t, "go", c.Build.Go)
	assert.Empty(t, c.Build.Flags)
	assert.Equal(t, "localhost:8080", c.Serve.Addr)
	assert.True(t, c.Serve.Watch)
	assert.Equal(t, Duration(250*time.Millisecond), c.Serve.Debounce)

	clr, err := c.ParseColor()
	require.NoError(t, err)
	assert.Equal(t, gl.Red, clr)
	assert.Equal(t, map[string]string{"TRIANGLE_CANVAS": "triangle", "TRIANGLE_COLOR": "red"}, c.Env())
}

func TestSetFromDefaultsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaults(Config{}))
	var bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaults(&bad))
}

func TestBuildFlags(t *testing.T) {
	c := New()
	c.Build.Flags = `-tags "debug release" -ldflags='-s -w'`
	args, err := c.BuildFlags()
	require.NoError(t, err)
	assert.Equal(t, []string{"-tags", "debug release", "-ldflags=-s -w"}, args)

	c.Build.Flags = `-ldflags '-s -w' -trimpath`
	args, err = c.BuildFlags()
	require.NoError(t, err)
	assert.Equal(t, []string{"-ldflags", "-s -w", "-trimpath"}, args)

	c.Build.Flags = `-tags "unterminated`
	_, err = c.BuildFlags()
	assert.Error(t, err)
}

func TestOpenTOML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "glserve.toml")
	require.NoError(t, os.WriteFile(file, []byte(`canvas = "glcanvas"
color = "#00ff00"

[serve]
addr = ":9000"
debounce = "1s"
`), 0o644))

	c := New()
	require.NoError(t, Open(c, file))
	assert.Equal(t, "glcanvas", c.Canvas)
	assert.Equal(t, "#00ff00", c.Color)
	assert.Equal(t, ":9000", c.Serve.Addr)
	assert.Equal(t, Duration(time.Second), c.Serve.Debounce)
	assert.True(t, c.Serve.Watch, "unset fields keep their defaults")
	assert.Equal(t, "./cmd/triangle", c.Build.Package)
}

func TestOpenUnknownField(t *testing.T) {
	file := filepath.Join(t.TempDir(), "glserve.toml")
	require.NoError(t, os.WriteFile(file, []byte("colour = \"red\"\n"), 0o644))
	assert.Error(t, Open(New(), file))
}

func TestSaveOpen(t *testing.T) {
	for _, name := range []string{"glserve.toml", "glserve.yaml"} {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "sub", name)
			c := New()
			c.Color = "0, 0, 1"
			c.Build.Flags = "-trimpath"
			c.Serve.Watch = false
			require.NoError(t, Save(c, file))

			got := &Config{}
			require.NoError(t, Open(got, file))
			assert.Equal(t, c, got)
		})
	}
}

func TestLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	c, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, New(), c)

	_, err = Load(missing, true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	c := New()
	require.NoError(t, Merge(c, &Config{Color: "blue", Serve: Serve{Addr: ":1234"}}))
	assert.Equal(t, "blue", c.Color)
	assert.Equal(t, "triangle", c.Canvas)
	assert.Equal(t, ":1234", c.Serve.Addr)
	assert.True(t, c.Serve.Watch)
	assert.Equal(t, Duration(250*time.Millisecond), c.Serve.Debounce)
	assert.Equal(t, "./cmd/triangle", c.Build.Package)
}
