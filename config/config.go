// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the glserve tool
// and of the triangle page it serves.
package config

import (
	"time"

	"cogentcore.org/webgl/gl"
	"github.com/mattn/go-shellwords"
)

// Config is the main config struct.
type Config struct {

	// Canvas is the id of the canvas element the triangle is drawn on.
	Canvas string `default:"triangle" toml:"canvas" yaml:"canvas"`

	// Color is the initial triangle color, in any form accepted by
	// [gl.ParseColor].
	Color string `default:"red" toml:"color" yaml:"color"`

	// Width and Height are the size of the canvas in pixels.
	Width  int `default:"400" toml:"width" yaml:"width"`
	Height int `default:"400" toml:"height" yaml:"height"`

	// Build has the options for building the wasm app.
	Build Build `toml:"build" yaml:"build"`

	// Serve has the options for the development server.
	Serve Serve `toml:"serve" yaml:"serve"`
}

// Build is the configuration for building the wasm app.
type Build struct {

	// Package is the path of the main package to build.
	Package string `default:"./cmd/triangle" toml:"package" yaml:"package"`

	// Output is the directory the app files are written to.
	Output string `default:"bin/web" toml:"output" yaml:"output"`

	// Flags are extra go build flags, quoted as in a shell.
	Flags string `toml:"flags" yaml:"flags"`

	// Go is the go command to build with.
	Go string `default:"go" toml:"go" yaml:"go"`
}

// Serve is the configuration for the development server.
type Serve struct {

	// Addr is the address to listen on.
	Addr string `default:"localhost:8080" toml:"addr" yaml:"addr"`

	// Watch is whether to rebuild and reload the page when
	// a .go file changes.
	Watch bool `default:"true" toml:"watch" yaml:"watch"`

	// Debounce is how long to wait for more changes before rebuilding.
	Debounce Duration `default:"250ms" toml:"debounce" yaml:"debounce"`
}

// Duration is a [time.Duration] written as text, like "250ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// New returns a new [Config] with the default values set.
func New() *Config {
	c := &Config{}
	SetFromDefaults(c)
	return c
}

// BuildFlags returns [Build.Flags] split into arguments.
func (c *Config) BuildFlags() ([]string, error) {
	return shellwords.Parse(c.Build.Flags)
}

// ParseColor returns the parsed [Config.Color].
func (c *Config) ParseColor() (gl.Color, error) {
	return gl.ParseColor(c.Color)
}

// Environment variables set for the wasm app by its page.
const (
	CanvasEnv = "TRIANGLE_CANVAS"
	ColorEnv  = "TRIANGLE_COLOR"

	// ReloadEnv is the path of the live reload WebSocket, set when the
	// page is served with watching enabled. The server sends
	// ReloadMessage on it after each rebuild.
	ReloadEnv     = "GLSERVE_RELOAD"
	ReloadMessage = "reload"
)

// Env returns the page environment variables read by the wasm app.
func (c *Config) Env() map[string]string {
	return map[string]string{
		CanvasEnv: c.Canvas,
		ColorEnv:  c.Color,
	}
}
