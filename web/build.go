// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web builds the triangle app for the browser and serves it
// during development.
package web

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/webgl/base/exec"
	"cogentcore.org/webgl/base/fsx"
	"cogentcore.org/webgl/config"
	"github.com/h2non/filetype"
)

// Names of the files in the build output directory.
const (
	AppWasm   = "app.wasm"
	WasmExec  = "wasm_exec.js"
	IndexHTML = "index.html"
)

// Build builds an app for web using the given configuration information.
// It writes app.wasm, wasm_exec.js from the Go root and index.html to
// [config.Build.Output].
func Build(c *config.Config) error {
	if err := BuildWasm(c); err != nil {
		return err
	}
	return writeStaticFiles(c)
}

// BuildWasm compiles [config.Build.Package] to app.wasm in the output
// directory and checks that the result is a WebAssembly module.
func BuildWasm(c *config.Config) error {
	flags, err := c.BuildFlags()
	if err != nil {
		return fmt.Errorf("web: parsing build flags: %w", err)
	}
	if err := os.MkdirAll(c.Build.Output, 0o755); err != nil {
		return err
	}
	out := filepath.Join(c.Build.Output, AppWasm)
	args := append([]string{"build", "-o", out}, flags...)
	args = append(args, c.Build.Package)
	err = exec.Major().SetEnv("GOOS", "js").SetEnv("GOARCH", "wasm").Run(c.Build.Go, args...)
	if err != nil {
		return err
	}
	if err := checkWasm(out); err != nil {
		return err
	}
	slog.Info("web: built", "package", c.Build.Package, "output", out)
	return nil
}

// checkWasm returns an error if the file does not start with the
// WebAssembly magic number and version.
func checkWasm(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	if !filetype.Is(head[:n], "wasm") {
		return fmt.Errorf("web: %s is not a WebAssembly module", file)
	}
	return nil
}

// writeStaticFiles writes wasm_exec.js and index.html next to app.wasm,
// so that the output directory can be served by any static file server.
func writeStaticFiles(c *config.Config) error {
	goroot, goversion, err := GoEnv(c.Build.Go)
	if err != nil {
		return err
	}
	src, err := WasmExecPath(goroot, goversion)
	if err != nil {
		return err
	}
	if err := fsx.CopyFile(filepath.Join(c.Build.Output, WasmExec), src, 0o644); err != nil {
		return fmt.Errorf("web: copying %s: %w", WasmExec, err)
	}
	b, err := MakeIndexHTML(c, false)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Build.Output, IndexHTML), b, 0o644)
}
