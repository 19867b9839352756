// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs external commands with a shared configuration
// of environment, directory and output writers.
package exec

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Config contains the configuration information that
// controls the behavior of command execution.
type Config struct {

	// Dir is the directory to run commands in; "" is the current directory.
	Dir string

	// Env has extra environment variables, added to those of this process.
	Env map[string]string

	// Stdout and Stderr receive the output of commands; nil discards it.
	Stdout io.Writer
	Stderr io.Writer

	// Echo, if non-nil, is written each command line before it runs.
	Echo io.Writer
}

// Major returns a [Config] for commands whose output is shown to the user.
func Major() *Config {
	return &Config{Stdout: os.Stdout, Stderr: os.Stderr, Echo: os.Stdout}
}

// Minor returns a [Config] for commands whose output only matters
// if they fail.
func Minor() *Config {
	return &Config{Stderr: os.Stderr}
}

// SetEnv sets an extra environment variable, returning the config.
func (c *Config) SetEnv(key, value string) *Config {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env[key] = value
	return c
}

// environ returns the environment of a command, sorted so that runs
// are reproducible.
func (c *Config) environ() []string {
	env := os.Environ()
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+c.Env[k])
	}
	return env
}

// Exec runs the command and waits for it to finish. It returns whether
// the command ran at all, and any error, which includes the exit status
// for a command that failed.
func (c *Config) Exec(cmd string, args ...string) (ran bool, err error) {
	if c.Echo != nil {
		fmt.Fprintln(c.Echo, c.commandLine(cmd, args...))
	}
	cm := exec.Command(cmd, args...)
	cm.Dir = c.Dir
	cm.Env = c.environ()
	cm.Stdout = c.Stdout
	cm.Stderr = c.Stderr
	slog.Debug("exec: running", "cmd", cm.String(), "dir", c.Dir)
	err = cm.Run()
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return true, fmt.Errorf("running %q failed: %w", c.commandLine(cmd, args...), err)
	}
	return false, fmt.Errorf("failed to run %q: %w", c.commandLine(cmd, args...), err)
}

// commandLine formats the command with its extra environment.
func (c *Config) commandLine(cmd string, args ...string) string {
	var b strings.Builder
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(k + "=" + c.Env[k] + " ")
	}
	b.WriteString(cmd)
	for _, a := range args {
		b.WriteByte(' ')
		if strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		b.WriteString(a)
	}
	return b.String()
}

// LookPath is [exec.LookPath].
var LookPath = exec.LookPath
