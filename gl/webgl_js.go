// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package gl

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"syscall/js"

	"cogentcore.org/webgl/base/errors"
	"github.com/hack-pad/safejs"
	"golang.org/x/mobile/exp/f32"
)

// ErrContextLost is reported by [WebGL.Err] once the browser has lost
// the rendering context.
var ErrContextLost = errors.New("gl: webgl context lost")

// WebGL is the [Context] for a browser WebGLRenderingContext.
// Every call goes through safejs, so a JavaScript exception is recorded
// as the error returned by Err instead of crashing the program; after
// that, calls are skipped and return invalid handles.
type WebGL struct {
	gl  safejs.Value
	err error
}

// NewWebGL returns a [WebGL] for the given WebGLRenderingContext value.
func NewWebGL(ctx js.Value) *WebGL {
	return &WebGL{gl: safejs.Safe(ctx)}
}

// Value returns the underlying WebGLRenderingContext.
func (w *WebGL) Value() js.Value {
	return safejs.Unsafe(w.gl)
}

func (w *WebGL) call(method string, args ...any) js.Value {
	if w.err != nil {
		return js.Undefined()
	}
	v, err := w.gl.Call(method, args...)
	if err != nil {
		w.err = fmt.Errorf("gl: webgl %s: %w", method, err)
		slog.Error(w.err.Error())
		return js.Undefined()
	}
	return safejs.Unsafe(v)
}

// isNil reports whether v is JavaScript null or undefined.
func isNil(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

// handle returns nil for absent objects so that handles built from it
// are invalid.
func handle(v js.Value) any {
	if isNil(v) {
		return nil
	}
	return v
}

func (w *WebGL) CreateShader(typ ShaderTypes) Shader {
	return Shader{handle(w.call("createShader", int(typ)))}
}

func (w *WebGL) ShaderSource(sh Shader, src string) {
	w.call("shaderSource", sh.Value, src)
}

func (w *WebGL) CompileShader(sh Shader) {
	w.call("compileShader", sh.Value)
}

func (w *WebGL) ShaderCompiled(sh Shader) bool {
	v := w.call("getShaderParameter", sh.Value, CompileStatus)
	return v.Type() == js.TypeBoolean && v.Bool()
}

func (w *WebGL) ShaderInfoLog(sh Shader) string {
	v := w.call("getShaderInfoLog", sh.Value)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (w *WebGL) CreateProgram() Program {
	return Program{handle(w.call("createProgram"))}
}

func (w *WebGL) AttachShader(prog Program, sh Shader) {
	w.call("attachShader", prog.Value, sh.Value)
}

func (w *WebGL) LinkProgram(prog Program) {
	w.call("linkProgram", prog.Value)
}

func (w *WebGL) ProgramLinked(prog Program) bool {
	v := w.call("getProgramParameter", prog.Value, LinkStatus)
	return v.Type() == js.TypeBoolean && v.Bool()
}

func (w *WebGL) ProgramInfoLog(prog Program) string {
	v := w.call("getProgramInfoLog", prog.Value)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (w *WebGL) UseProgram(prog Program) {
	w.call("useProgram", prog.Value)
}

func (w *WebGL) CreateBuffer() Buffer {
	return Buffer{handle(w.call("createBuffer"))}
}

func (w *WebGL) BindBuffer(targ BufferTargets, buf Buffer) {
	w.call("bindBuffer", int(targ), buf.Value)
}

func (w *WebGL) BufferData(targ BufferTargets, data []float32, usage BufferUsages) {
	if w.err != nil {
		return
	}
	arr, err := float32Array(data)
	if err != nil {
		w.err = fmt.Errorf("gl: webgl bufferData: %w", err)
		return
	}
	w.call("bufferData", int(targ), arr, int(usage))
}

// float32Array copies data into a new JavaScript Float32Array.
// wasm memory is little endian, like the typed array views.
func float32Array(data []float32) (js.Value, error) {
	b := f32.Bytes(binary.LittleEndian, data...)
	u8, err := newTypedArray("Uint8Array", len(b))
	if err != nil {
		return js.Undefined(), err
	}
	if _, err := safejs.CopyBytesToJS(u8, b); err != nil {
		return js.Undefined(), err
	}
	buf, err := u8.Get("buffer")
	if err != nil {
		return js.Undefined(), err
	}
	ctor, err := safejs.Global().Get("Float32Array")
	if err != nil {
		return js.Undefined(), err
	}
	arr, err := ctor.New(buf, 0, len(data))
	if err != nil {
		return js.Undefined(), err
	}
	return safejs.Unsafe(arr), nil
}

func newTypedArray(name string, n int) (safejs.Value, error) {
	ctor, err := safejs.Global().Get(name)
	if err != nil {
		return safejs.Value{}, err
	}
	return ctor.New(n)
}

func (w *WebGL) AttribLocation(prog Program, name string) Attrib {
	v := w.call("getAttribLocation", prog.Value, name)
	if v.Type() != js.TypeNumber {
		return NoAttrib
	}
	return Attrib(v.Int())
}

func (w *WebGL) VertexAttribPointer(loc Attrib, size int, typ Types, normalized bool, stride, offset int) {
	w.call("vertexAttribPointer", int(loc), size, int(typ), normalized, stride, offset)
}

func (w *WebGL) EnableVertexAttribArray(loc Attrib) {
	w.call("enableVertexAttribArray", int(loc))
}

func (w *WebGL) UniformLocation(prog Program, name string) Uniform {
	return Uniform{handle(w.call("getUniformLocation", prog.Value, name))}
}

func (w *WebGL) Uniform4fv(loc Uniform, v []float32) {
	vals := make([]any, len(v))
	for i, f := range v {
		vals[i] = f
	}
	w.call("uniform4fv", loc.Value, vals)
}

func (w *WebGL) DrawArrays(mode DrawModes, first, count int) {
	w.call("drawArrays", int(mode), first, count)
}

func (w *WebGL) Viewport(x, y, width, height int) {
	w.call("viewport", x, y, width, height)
}

func (w *WebGL) Err() error {
	if w.err != nil {
		return w.err
	}
	if lost := w.call("isContextLost"); lost.Type() == js.TypeBoolean && lost.Bool() {
		w.err = ErrContextLost
	}
	return w.err
}
