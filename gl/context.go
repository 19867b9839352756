// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl builds a minimal WebGL style rendering pipeline: it compiles
// a vertex and fragment shader, links them into the active program,
// uploads vertex coordinates into a buffer, and draws a single triangle.
//
// The graphics driver is reached through the [Context] interface. The
// browser implementation lives in this package behind the js build tag
// ([WebGL] and [Document]), a desktop OpenGL ES implementation is in
// gl/glfwgl, and gl/gltest has a software driver for tests.
package gl

import "image"

// Context is a graphics session bound to a drawable surface, as
// provided by the host. All of the handles it returns are owned by the
// driver: the caller only borrows them.
//
// The active program and the buffer bound to each target are state of
// the Context, shared by everything drawing into it. Context
// implementations are not safe for concurrent use.
//
// Methods do not return errors, mirroring the driver API. Failed
// allocations return an invalid handle, and any host level failure (a
// lost context, a thrown exception) is recorded and reported by Err.
type Context interface {
	// CreateShader returns a new empty shader object of the given type,
	// or an invalid handle if none could be allocated.
	CreateShader(typ ShaderTypes) Shader

	// ShaderSource sets the source text of the shader.
	ShaderSource(sh Shader, src string)

	// CompileShader compiles the shader synchronously.
	CompileShader(sh Shader)

	// ShaderCompiled reports the compile status of the shader.
	ShaderCompiled(sh Shader) bool

	// ShaderInfoLog returns the compiler diagnostics for the shader,
	// or "" if the driver has none.
	ShaderInfoLog(sh Shader) string

	// CreateProgram returns a new empty program object,
	// or an invalid handle if none could be allocated.
	CreateProgram() Program

	// AttachShader attaches the shader to the program.
	AttachShader(prog Program, sh Shader)

	// LinkProgram links the attached shaders.
	LinkProgram(prog Program)

	// ProgramLinked reports the link status of the program.
	ProgramLinked(prog Program) bool

	// ProgramInfoLog returns the linker diagnostics for the program,
	// or "" if the driver has none.
	ProgramInfoLog(prog Program) string

	// UseProgram makes the program the active program of the context.
	UseProgram(prog Program)

	// CreateBuffer returns a new buffer object,
	// or an invalid handle if none could be allocated.
	CreateBuffer() Buffer

	// BindBuffer binds the buffer to the given target.
	BindBuffer(targ BufferTargets, buf Buffer)

	// BufferData uploads data into the buffer bound to the target.
	BufferData(targ BufferTargets, data []float32, usage BufferUsages)

	// AttribLocation returns the location of the named attribute in the
	// linked program, or -1 if it has no such active attribute.
	AttribLocation(prog Program, name string) Attrib

	// VertexAttribPointer describes how the attribute reads the buffer
	// bound to [ArrayBuffer]: size components of type typ per vertex,
	// stride bytes apart (0 is tightly packed), starting offset bytes in.
	VertexAttribPointer(loc Attrib, size int, typ Types, normalized bool, stride, offset int)

	// EnableVertexAttribArray turns on reading the attribute from its buffer.
	EnableVertexAttribArray(loc Attrib)

	// UniformLocation returns the location of the named uniform in the
	// linked program, or an invalid handle if it has no such active uniform.
	UniformLocation(prog Program, name string) Uniform

	// Uniform4fv sets a vec4 uniform of the active program.
	Uniform4fv(loc Uniform, v []float32)

	// DrawArrays draws count vertices starting at first using the active program.
	DrawArrays(mode DrawModes, first, count int)

	// Viewport sets the drawing area of the surface.
	Viewport(x, y, width, height int)

	// Err returns the first host error recorded by the context, if any.
	Err() error
}

// Host locates the [Context] for a named drawing surface.
type Host interface {
	// Context returns the rendering context of the surface with the given
	// id, along with the size of the surface in pixels.
	Context(id string) (Context, image.Point, error)
}

// Shader is a handle to a shader object.
type Shader struct{ Value any }

// IsValid returns whether the handle refers to a driver object.
func (sh Shader) IsValid() bool { return sh.Value != nil }

// Program is a handle to a program object.
type Program struct{ Value any }

// IsValid returns whether the handle refers to a driver object.
func (pr Program) IsValid() bool { return pr.Value != nil }

// Buffer is a handle to a buffer object.
type Buffer struct{ Value any }

// IsValid returns whether the handle refers to a driver object.
func (bf Buffer) IsValid() bool { return bf.Value != nil }

// Uniform is a handle to a uniform location.
type Uniform struct{ Value any }

// IsValid returns whether the handle refers to an active uniform.
func (un Uniform) IsValid() bool { return un.Value != nil }

// Attrib is an attribute location. Absent attributes are -1.
type Attrib int

// NoAttrib is the location returned for absent attributes.
const NoAttrib Attrib = -1

// IsValid returns whether the location refers to an active attribute.
func (at Attrib) IsValid() bool { return at >= 0 }
