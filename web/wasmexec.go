// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/webgl/base/errors"
	"cogentcore.org/webgl/base/exec"
	"cogentcore.org/webgl/base/fsx"
	"github.com/Masterminds/semver/v3"
)

// libWasm is the Go versions that ship wasm_exec.js in lib/wasm
// instead of misc/wasm.
var libWasm = errors.Must1(semver.NewConstraint(">= 1.24"))

// WasmExecPath returns the path of wasm_exec.js in the given Go root for
// the given Go version, as reported by "go env GOVERSION". For versions
// that cannot be parsed, such as development builds, it returns
// whichever of the known locations exists.
func WasmExecPath(goroot, goversion string) (string, error) {
	lib := filepath.Join(goroot, "lib", "wasm", "wasm_exec.js")
	misc := filepath.Join(goroot, "misc", "wasm", "wasm_exec.js")
	if v, err := semver.NewVersion(versionNumber(goversion)); err == nil {
		if libWasm.Check(v) {
			return lib, nil
		}
		return misc, nil
	}
	for _, p := range []string{lib, misc} {
		if ok, _ := fsx.FileExists(p); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("web: no wasm_exec.js in %s for %s", goroot, goversion)
}

// versionNumber returns the leading version number of a Go version
// string, like "1.24.1" for "go1.24.1" and "1.25" for "go1.25rc1".
func versionNumber(goversion string) string {
	v := strings.TrimPrefix(goversion, "go")
	if i := strings.IndexFunc(v, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }); i >= 0 {
		v = v[:i]
	}
	return v
}

// GoEnv returns the GOROOT and GOVERSION of the given go command.
func GoEnv(gocmd string) (goroot, goversion string, err error) {
	out, err := exec.Minor().Output(gocmd, "env", "GOROOT", "GOVERSION")
	if err != nil {
		return "", "", err
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		return "", "", fmt.Errorf("web: unexpected output of %s env: %q", gocmd, out)
	}
	return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
}
