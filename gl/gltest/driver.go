// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides a software [gl.Context] for tests. It checks
// and links GLSL ES shaders closely enough to report realistic compile
// and link logs, and records all of the state a draw call depends on
// (active program, buffer contents, attribute layout, uniform values)
// so that tests can inspect it.
package gltest

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"cogentcore.org/webgl/gl"
	"golang.org/x/mobile/exp/f32"
)

// ShaderObject is a shader created by a [Driver].
type ShaderObject struct {
	ID       int
	Type     gl.ShaderTypes
	Source   string
	Compiled bool
	InfoLog  string
	Unit     *Unit
}

// ProgramObject is a program created by a [Driver].
type ProgramObject struct {
	ID      int
	Shaders []*ShaderObject
	Linked  bool
	InfoLog string

	// Attribs are the active attribute names; the index is the location.
	Attribs []string

	// Uniforms are the active uniforms by name.
	Uniforms map[string]*UniformObject
}

// UniformObject is an active uniform of a linked program.
type UniformObject struct {
	Name  string
	Type  string
	Value []float32

	program *ProgramObject
}

// BufferObject is a buffer created by a [Driver].
type BufferObject struct {
	ID     int
	Target gl.BufferTargets
	Usage  gl.BufferUsages

	// Data is the uploaded content, as little endian bytes.
	Data []byte
}

// Floats returns the buffer content as float32 values.
func (bo *BufferObject) Floats() []float32 {
	fs := make([]float32, len(bo.Data)/4)
	for i := range fs {
		fs[i] = math.Float32frombits(binary.LittleEndian.Uint32(bo.Data[i*4:]))
	}
	return fs
}

// AttribArray is the state of one vertex attribute location.
type AttribArray struct {
	Enabled    bool
	Buffer     *BufferObject
	Size       int
	Type       gl.Types
	Normalized bool
	Stride     int
	Offset     int
}

// DrawCall is one recorded [gl.Context.DrawArrays] call, with the
// uniform values of the program at the time of the call.
type DrawCall struct {
	Mode     gl.DrawModes
	First    int
	Count    int
	Program  *ProgramObject
	Uniforms map[string][]float32
}

// Driver is a software [gl.Context]. The zero value is not usable; use
// [NewDriver].
type Driver struct {
	// NoShaders, NoPrograms and NoBuffers make the corresponding Create
	// method fail, as when the driver is out of resources.
	NoShaders, NoPrograms, NoBuffers bool

	// NoInfoLog makes the info log queries return "", as from drivers
	// that give no diagnostics.
	NoInfoLog bool

	// HostErr is reported by Err when set, as for a lost context.
	HostErr error

	// All objects created, in creation order.
	Shaders  []*ShaderObject
	Programs []*ProgramObject
	Buffers  []*BufferObject

	// Program is the active program.
	Program *ProgramObject

	// ArrayBuffer is the buffer bound to [gl.ArrayBuffer].
	ArrayBuffer *BufferObject

	// Attribs has the state of each attribute location that was set up.
	Attribs map[gl.Attrib]*AttribArray

	// ViewportRect is the area set by Viewport.
	ViewportRect image.Rectangle

	Draws []DrawCall

	// err is the first invalid call, like a GL error flag.
	err error
}

// NewDriver returns a new [Driver].
func NewDriver() *Driver {
	return &Driver{Attribs: map[gl.Attrib]*AttribArray{}}
}

func (d *Driver) fail(call, format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("gltest: %s: %s", call, fmt.Sprintf(format, args...))
	}
}

// Shader returns the object behind a shader handle, or nil.
func (d *Driver) Shader(sh gl.Shader) *ShaderObject {
	so, _ := sh.Value.(*ShaderObject)
	return so
}

// ProgramObject returns the object behind a program handle, or nil.
func (d *Driver) ProgramObject(prog gl.Program) *ProgramObject {
	po, _ := prog.Value.(*ProgramObject)
	return po
}

// BufferObject returns the object behind a buffer handle, or nil.
func (d *Driver) BufferObject(buf gl.Buffer) *BufferObject {
	bo, _ := buf.Value.(*BufferObject)
	return bo
}

// LastDraw returns the most recent draw call, or nil.
func (d *Driver) LastDraw() *DrawCall {
	if len(d.Draws) == 0 {
		return nil
	}
	return &d.Draws[len(d.Draws)-1]
}

func (d *Driver) CreateShader(typ gl.ShaderTypes) gl.Shader {
	if d.NoShaders {
		return gl.Shader{}
	}
	if typ != gl.VertexShader && typ != gl.FragmentShader {
		d.fail("createShader", "invalid shader type %v", typ)
		return gl.Shader{}
	}
	so := &ShaderObject{ID: len(d.Shaders) + 1, Type: typ}
	d.Shaders = append(d.Shaders, so)
	return gl.Shader{Value: so}
}

func (d *Driver) ShaderSource(sh gl.Shader, src string) {
	so := d.Shader(sh)
	if so == nil {
		d.fail("shaderSource", "invalid shader")
		return
	}
	so.Source = src
}

func (d *Driver) CompileShader(sh gl.Shader) {
	so := d.Shader(sh)
	if so == nil {
		d.fail("compileShader", "invalid shader")
		return
	}
	unit, err := Parse(so.Type, so.Source)
	so.Unit = unit
	so.Compiled = err == nil
	so.InfoLog = ""
	if err != nil {
		so.InfoLog = err.Error()
	}
}

func (d *Driver) ShaderCompiled(sh gl.Shader) bool {
	so := d.Shader(sh)
	return so != nil && so.Compiled
}

func (d *Driver) ShaderInfoLog(sh gl.Shader) string {
	so := d.Shader(sh)
	if so == nil || d.NoInfoLog {
		return ""
	}
	return so.InfoLog
}

func (d *Driver) CreateProgram() gl.Program {
	if d.NoPrograms {
		return gl.Program{}
	}
	po := &ProgramObject{ID: len(d.Programs) + 1}
	d.Programs = append(d.Programs, po)
	return gl.Program{Value: po}
}

func (d *Driver) AttachShader(prog gl.Program, sh gl.Shader) {
	po, so := d.ProgramObject(prog), d.Shader(sh)
	if po == nil || so == nil {
		d.fail("attachShader", "invalid program or shader")
		return
	}
	for _, s := range po.Shaders {
		if s == so || s.Type == so.Type {
			d.fail("attachShader", "a %v is already attached", so.Type)
			return
		}
	}
	po.Shaders = append(po.Shaders, so)
}

func (d *Driver) LinkProgram(prog gl.Program) {
	po := d.ProgramObject(prog)
	if po == nil {
		d.fail("linkProgram", "invalid program")
		return
	}
	po.Attribs = nil
	po.Uniforms = nil
	po.InfoLog = link(po)
	po.Linked = po.InfoLog == ""
}

// link checks the attached shaders against each other and sets up the
// active attributes and uniforms. It returns the link log, "" on success.
func link(po *ProgramObject) string {
	var vs, fs *ShaderObject
	for _, so := range po.Shaders {
		if !so.Compiled {
			return "ERROR: One or more attached shaders not successfully compiled"
		}
		switch so.Type {
		case gl.VertexShader:
			vs = so
		case gl.FragmentShader:
			fs = so
		}
	}
	switch {
	case vs == nil:
		return "ERROR: Missing vertex shader"
	case fs == nil:
		return "ERROR: Missing fragment shader"
	}

	for _, fd := range fs.Unit.Active("varying") {
		vd, ok := vs.Unit.Decl(fd.Name)
		if !ok || vd.Qualifier != "varying" {
			return fmt.Sprintf("ERROR: Fragment varying %s does not match any vertex varying", fd.Name)
		}
		if vd.Type != fd.Type {
			return fmt.Sprintf("ERROR: Types of varying %s differ between vertex and fragment shaders", fd.Name)
		}
	}

	po.Uniforms = map[string]*UniformObject{}
	for _, u := range append(vs.Unit.Active("uniform"), fs.Unit.Active("uniform")...) {
		if prev, ok := po.Uniforms[u.Name]; ok {
			if prev.Type != u.Type {
				return fmt.Sprintf("ERROR: Types of uniform %s differ between vertex and fragment shaders", u.Name)
			}
			continue
		}
		po.Uniforms[u.Name] = &UniformObject{Name: u.Name, Type: u.Type, program: po}
	}
	for _, a := range vs.Unit.Active("attribute") {
		po.Attribs = append(po.Attribs, a.Name)
	}
	return ""
}

func (d *Driver) ProgramLinked(prog gl.Program) bool {
	po := d.ProgramObject(prog)
	return po != nil && po.Linked
}

func (d *Driver) ProgramInfoLog(prog gl.Program) string {
	po := d.ProgramObject(prog)
	if po == nil || d.NoInfoLog {
		return ""
	}
	return po.InfoLog
}

func (d *Driver) UseProgram(prog gl.Program) {
	po := d.ProgramObject(prog)
	if po == nil || !po.Linked {
		d.fail("useProgram", "program is not linked")
		return
	}
	d.Program = po
}

func (d *Driver) CreateBuffer() gl.Buffer {
	if d.NoBuffers {
		return gl.Buffer{}
	}
	bo := &BufferObject{ID: len(d.Buffers) + 1}
	d.Buffers = append(d.Buffers, bo)
	return gl.Buffer{Value: bo}
}

func (d *Driver) BindBuffer(targ gl.BufferTargets, buf gl.Buffer) {
	bo := d.BufferObject(buf)
	if buf.IsValid() && bo == nil {
		d.fail("bindBuffer", "invalid buffer")
		return
	}
	if targ != gl.ArrayBuffer {
		d.fail("bindBuffer", "unsupported target %v", targ)
		return
	}
	if bo != nil {
		bo.Target = targ
	}
	d.ArrayBuffer = bo
}

func (d *Driver) BufferData(targ gl.BufferTargets, data []float32, usage gl.BufferUsages) {
	if targ != gl.ArrayBuffer || d.ArrayBuffer == nil {
		d.fail("bufferData", "no buffer bound to %v", targ)
		return
	}
	d.ArrayBuffer.Data = f32.Bytes(binary.LittleEndian, data...)
	d.ArrayBuffer.Usage = usage
}

func (d *Driver) AttribLocation(prog gl.Program, name string) gl.Attrib {
	po := d.ProgramObject(prog)
	if po == nil || !po.Linked {
		d.fail("getAttribLocation", "program is not linked")
		return gl.NoAttrib
	}
	for i, a := range po.Attribs {
		if a == name {
			return gl.Attrib(i)
		}
	}
	return gl.NoAttrib
}

func (d *Driver) attrib(call string, loc gl.Attrib) *AttribArray {
	if !loc.IsValid() {
		d.fail(call, "invalid location %d", loc)
		return nil
	}
	aa := d.Attribs[loc]
	if aa == nil {
		aa = &AttribArray{}
		d.Attribs[loc] = aa
	}
	return aa
}

func (d *Driver) VertexAttribPointer(loc gl.Attrib, size int, typ gl.Types, normalized bool, stride, offset int) {
	if d.ArrayBuffer == nil {
		d.fail("vertexAttribPointer", "no buffer bound to ArrayBuffer")
		return
	}
	if size < 1 || size > 4 {
		d.fail("vertexAttribPointer", "invalid size %d", size)
		return
	}
	aa := d.attrib("vertexAttribPointer", loc)
	if aa == nil {
		return
	}
	aa.Buffer = d.ArrayBuffer
	aa.Size, aa.Type, aa.Normalized, aa.Stride, aa.Offset = size, typ, normalized, stride, offset
}

func (d *Driver) EnableVertexAttribArray(loc gl.Attrib) {
	if aa := d.attrib("enableVertexAttribArray", loc); aa != nil {
		aa.Enabled = true
	}
}

func (d *Driver) UniformLocation(prog gl.Program, name string) gl.Uniform {
	po := d.ProgramObject(prog)
	if po == nil || !po.Linked {
		d.fail("getUniformLocation", "program is not linked")
		return gl.Uniform{}
	}
	if uo, ok := po.Uniforms[name]; ok {
		return gl.Uniform{Value: uo}
	}
	return gl.Uniform{}
}

func (d *Driver) Uniform4fv(loc gl.Uniform, v []float32) {
	uo, _ := loc.Value.(*UniformObject)
	switch {
	case uo == nil:
		d.fail("uniform4fv", "invalid location")
	case uo.program != d.Program:
		d.fail("uniform4fv", "location is not from the active program")
	case uo.Type != "vec4":
		d.fail("uniform4fv", "uniform %s is a %s", uo.Name, uo.Type)
	case len(v) != 4:
		d.fail("uniform4fv", "got %d values for a vec4", len(v))
	default:
		uo.Value = append([]float32(nil), v...)
	}
}

func (d *Driver) DrawArrays(mode gl.DrawModes, first, count int) {
	if d.Program == nil {
		d.fail("drawArrays", "no active program")
		return
	}
	if first < 0 || count < 0 {
		d.fail("drawArrays", "negative first or count")
		return
	}
	dc := DrawCall{Mode: mode, First: first, Count: count, Program: d.Program, Uniforms: map[string][]float32{}}
	for name, uo := range d.Program.Uniforms {
		dc.Uniforms[name] = append([]float32(nil), uo.Value...)
	}
	d.Draws = append(d.Draws, dc)
}

func (d *Driver) Viewport(x, y, width, height int) {
	d.ViewportRect = image.Rect(x, y, x+width, y+height)
}

func (d *Driver) Err() error {
	if d.HostErr != nil {
		return d.HostErr
	}
	return d.err
}

// Host is a [gl.Host] whose surfaces all draw with the same [Driver].
type Host struct {
	Driver *Driver

	// Canvases are the surface sizes by id.
	Canvases map[string]image.Point
}

// NewHost returns a [Host] with one surface of the given id and size.
func NewHost(id string, size image.Point) *Host {
	return &Host{Driver: NewDriver(), Canvases: map[string]image.Point{id: size}}
}

func (h *Host) Context(id string) (gl.Context, image.Point, error) {
	size, ok := h.Canvases[id]
	if !ok {
		return nil, image.Point{}, &gl.CanvasNotFoundError{ID: id}
	}
	return h.Driver, size, nil
}
