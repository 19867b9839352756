// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	_ "embed"
	"log/slog"

	"cogentcore.org/webgl/base/errors"
)

// VertexSource passes the vec3 attribute [CoordinatesAttrib] straight
// through to clip space with w = 1.
//
//go:embed shaders/triangle.vert
var VertexSource string

// FragmentSource fills every fragment with the vec4 uniform [ColorUniform].
//
//go:embed shaders/triangle.frag
var FragmentSource string

// Names used by [VertexSource] and [FragmentSource].
const (
	CoordinatesAttrib = "coordinates"
	ColorUniform      = "fragColor"
)

// Link compiles the vertex and fragment source, links them into a new
// program and makes it the active program of the context.
//
// A shader that fails to compile is returned as a [*CreationError]
// wrapping the [*CompileError]; a link failure is a [*LinkError] with the
// program log. Shader objects are left to the driver, which keeps them
// alive for as long as the program is.
func Link(ctx Context, vertexSrc, fragmentSrc string) (Program, error) {
	vs, err := compileStage(ctx, VertexShader, vertexSrc)
	if err != nil {
		return Program{}, err
	}
	fs, err := compileStage(ctx, FragmentShader, fragmentSrc)
	if err != nil {
		return Program{}, err
	}

	prog := ctx.CreateProgram()
	if !prog.IsValid() {
		return Program{}, &CreationError{Object: "program", Err: ctx.Err()}
	}
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	ctx.LinkProgram(prog)
	if err := ctx.Err(); err != nil {
		return Program{}, err
	}
	if !ctx.ProgramLinked(prog) {
		log := ctx.ProgramInfoLog(prog)
		if log == "" {
			log = UnknownLinkError
		}
		return Program{}, &LinkError{Log: log}
	}
	ctx.UseProgram(prog)
	if err := ctx.Err(); err != nil {
		return Program{}, err
	}
	slog.Debug("gl: linked program")
	return prog, nil
}

// LinkDefault links [VertexSource] and [FragmentSource].
func LinkDefault(ctx Context) (Program, error) {
	return Link(ctx, VertexSource, FragmentSource)
}

// compileStage is [Compile] with compile failures reported as the
// failure to create that stage of the program.
func compileStage(ctx Context, typ ShaderTypes, src string) (Shader, error) {
	sh, err := Compile(ctx, typ, src)
	if err == nil {
		return sh, nil
	}
	var ce *CreationError
	if errors.As(err, &ce) {
		return Shader{}, err
	}
	return Shader{}, &CreationError{Object: typ.label(), Err: err}
}
