// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android)

// Package glfwgl provides a [gl.Context] for OpenGL ES 2 contexts on
// desktop platforms, with windows made by glfw.
package glfwgl

import (
	"fmt"
	"unsafe"

	"cogentcore.org/webgl/gl"
	gles "github.com/go-gl/gl/v3.1/gles2"
)

// Context is a [gl.Context] for the OpenGL ES 2 context current on the
// calling thread. Shader, program and buffer handles are the uint32 GL
// names; uniform handles are int32 locations.
type Context struct {
	err error
}

// NewContext loads the GL entry points of the current context.
// It must be called after the context is made current.
func NewContext() (*Context, error) {
	if err := gles.Init(); err != nil {
		return nil, fmt.Errorf("glfwgl: loading GLES2 functions: %w", err)
	}
	return &Context{}, nil
}

// check records the first GL error flag raised by call.
func (c *Context) check(call string) {
	code := gles.GetError()
	if code != gles.NO_ERROR && c.err == nil {
		c.err = fmt.Errorf("glfwgl: %s: GL error %#x", call, code)
	}
}

func name(v any) uint32 {
	n, _ := v.(uint32)
	return n
}

// infoLog reads a shader or program log of the given length.
func infoLog(n int32, get func(size int32, length *int32, log *uint8)) string {
	if n <= 1 {
		return ""
	}
	buf := make([]uint8, n)
	var length int32
	get(n, &length, &buf[0])
	return string(buf[:length])
}

func (c *Context) CreateShader(typ gl.ShaderTypes) gl.Shader {
	sh := gles.CreateShader(uint32(typ))
	c.check("CreateShader")
	if sh == 0 {
		return gl.Shader{}
	}
	return gl.Shader{Value: sh}
}

func (c *Context) ShaderSource(sh gl.Shader, src string) {
	csrc, free := gles.Strs(src + "\x00")
	defer free()
	gles.ShaderSource(name(sh.Value), 1, csrc, nil)
	c.check("ShaderSource")
}

func (c *Context) CompileShader(sh gl.Shader) {
	gles.CompileShader(name(sh.Value))
	c.check("CompileShader")
}

func (c *Context) ShaderCompiled(sh gl.Shader) bool {
	var status int32
	gles.GetShaderiv(name(sh.Value), gles.COMPILE_STATUS, &status)
	c.check("GetShaderiv")
	return status == gles.TRUE
}

func (c *Context) ShaderInfoLog(sh gl.Shader) string {
	s := name(sh.Value)
	var n int32
	gles.GetShaderiv(s, gles.INFO_LOG_LENGTH, &n)
	return infoLog(n, func(size int32, length *int32, log *uint8) {
		gles.GetShaderInfoLog(s, size, length, log)
	})
}

func (c *Context) CreateProgram() gl.Program {
	p := gles.CreateProgram()
	c.check("CreateProgram")
	if p == 0 {
		return gl.Program{}
	}
	return gl.Program{Value: p}
}

func (c *Context) AttachShader(prog gl.Program, sh gl.Shader) {
	gles.AttachShader(name(prog.Value), name(sh.Value))
	c.check("AttachShader")
}

func (c *Context) LinkProgram(prog gl.Program) {
	gles.LinkProgram(name(prog.Value))
	c.check("LinkProgram")
}

func (c *Context) ProgramLinked(prog gl.Program) bool {
	var status int32
	gles.GetProgramiv(name(prog.Value), gles.LINK_STATUS, &status)
	c.check("GetProgramiv")
	return status == gles.TRUE
}

func (c *Context) ProgramInfoLog(prog gl.Program) string {
	p := name(prog.Value)
	var n int32
	gles.GetProgramiv(p, gles.INFO_LOG_LENGTH, &n)
	return infoLog(n, func(size int32, length *int32, log *uint8) {
		gles.GetProgramInfoLog(p, size, length, log)
	})
}

func (c *Context) UseProgram(prog gl.Program) {
	gles.UseProgram(name(prog.Value))
	c.check("UseProgram")
}

func (c *Context) CreateBuffer() gl.Buffer {
	var b uint32
	gles.GenBuffers(1, &b)
	c.check("GenBuffers")
	if b == 0 {
		return gl.Buffer{}
	}
	return gl.Buffer{Value: b}
}

func (c *Context) BindBuffer(targ gl.BufferTargets, buf gl.Buffer) {
	gles.BindBuffer(uint32(targ), name(buf.Value))
	c.check("BindBuffer")
}

func (c *Context) BufferData(targ gl.BufferTargets, data []float32, usage gl.BufferUsages) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gles.Ptr(data)
	}
	gles.BufferData(uint32(targ), len(data)*gl.Float.Bytes(), ptr, uint32(usage))
	c.check("BufferData")
}

func (c *Context) AttribLocation(prog gl.Program, attr string) gl.Attrib {
	loc := gles.GetAttribLocation(name(prog.Value), gles.Str(attr+"\x00"))
	c.check("GetAttribLocation")
	return gl.Attrib(loc)
}

func (c *Context) VertexAttribPointer(loc gl.Attrib, size int, typ gl.Types, normalized bool, stride, offset int) {
	gles.VertexAttribPointer(uint32(loc), int32(size), uint32(typ), normalized, int32(stride), gles.PtrOffset(offset))
	c.check("VertexAttribPointer")
}

func (c *Context) EnableVertexAttribArray(loc gl.Attrib) {
	gles.EnableVertexAttribArray(uint32(loc))
	c.check("EnableVertexAttribArray")
}

func (c *Context) UniformLocation(prog gl.Program, uniform string) gl.Uniform {
	loc := gles.GetUniformLocation(name(prog.Value), gles.Str(uniform+"\x00"))
	c.check("GetUniformLocation")
	if loc < 0 {
		return gl.Uniform{}
	}
	return gl.Uniform{Value: loc}
}

func (c *Context) Uniform4fv(loc gl.Uniform, v []float32) {
	l, _ := loc.Value.(int32)
	if len(v) < 4 {
		if c.err == nil {
			c.err = fmt.Errorf("glfwgl: Uniform4fv: got %d values for a vec4", len(v))
		}
		return
	}
	gles.Uniform4fv(l, int32(len(v)/4), &v[0])
	c.check("Uniform4fv")
}

func (c *Context) DrawArrays(mode gl.DrawModes, first, count int) {
	gles.DrawArrays(uint32(mode), int32(first), int32(count))
	c.check("DrawArrays")
}

func (c *Context) Viewport(x, y, width, height int) {
	gles.Viewport(int32(x), int32(y), int32(width), int32(height))
	c.check("Viewport")
}

// Err returns the first GL error flag seen by the context.
func (c *Context) Err() error { return c.err }
