// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/webgl/base/errors"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file used when none is given.
const DefaultFile = "glserve.toml"

// Open reads the config file into cfg, on top of any values already
// in it. The format is YAML for .yaml and .yml files and TOML otherwise.
// A leading ~ in the path is expanded to the home directory.
func Open(cfg *Config, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isYAML(path) {
		err = yaml.Unmarshal(b, cfg)
	} else {
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("config.Open %s: %w", file, err)
	}
	return nil
}

// Save writes the config to the given file, in the format given by
// its extension as in [Open].
func Save(cfg *Config, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := Marshal(cfg, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Marshal encodes the config in the format for the given file name.
func Marshal(cfg *Config, file string) ([]byte, error) {
	if isYAML(file) {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}

func isYAML(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	return ext == ".yaml" || ext == ".yml"
}

// Merge copies the non-zero fields of from into cfg, such as values
// given on the command line.
func Merge(cfg, from *Config) error {
	return copier.CopyWithOption(cfg, from, copier.Option{IgnoreEmpty: true, DeepCopy: true})
}

// Load returns the default config overlaid with the given file, if it
// exists. A missing file is only an error when required is true.
func Load(file string, required bool) (*Config, error) {
	cfg := New()
	if file == "" {
		return cfg, nil
	}
	err := Open(cfg, file)
	if err != nil && !required && errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}
