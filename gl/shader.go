// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "log/slog"

// Compile creates a shader of the given type from source and compiles it.
// A shader object that cannot be allocated is a [*CreationError], and
// source rejected by the driver is a [*CompileError] carrying the driver
// log. Compilation is deterministic, so there are no retries.
func Compile(ctx Context, typ ShaderTypes, src string) (Shader, error) {
	sh := ctx.CreateShader(typ)
	if !sh.IsValid() {
		return Shader{}, &CreationError{Object: typ.label(), Err: ctx.Err()}
	}
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if err := ctx.Err(); err != nil {
		return Shader{}, err
	}
	if !ctx.ShaderCompiled(sh) {
		log := ctx.ShaderInfoLog(sh)
		if log == "" {
			log = UnknownShaderError
		}
		return Shader{}, &CompileError{Type: typ, Log: log}
	}
	slog.Debug("gl: compiled shader", "type", typ)
	return sh, nil
}
