// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"image"
	"testing"

	"cogentcore.org/webgl/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compiled(t *testing.T, d *Driver, typ gl.ShaderTypes, src string) gl.Shader {
	t.Helper()
	sh := d.CreateShader(typ)
	d.ShaderSource(sh, src)
	d.CompileShader(sh)
	require.True(t, d.ShaderCompiled(sh), d.ShaderInfoLog(sh))
	return sh
}

func linked(t *testing.T, d *Driver) gl.Program {
	t.Helper()
	prog := d.CreateProgram()
	d.AttachShader(prog, compiled(t, d, gl.VertexShader, gl.VertexSource))
	d.AttachShader(prog, compiled(t, d, gl.FragmentShader, gl.FragmentSource))
	d.LinkProgram(prog)
	require.True(t, d.ProgramLinked(prog), d.ProgramInfoLog(prog))
	return prog
}

func TestDriverPipeline(t *testing.T) {
	d := NewDriver()
	prog := linked(t, d)
	d.UseProgram(prog)

	buf := d.CreateBuffer()
	d.BindBuffer(gl.ArrayBuffer, buf)
	d.BufferData(gl.ArrayBuffer, []float32{0, 1, 0, -1, -1, 0, 1, -1, 0}, gl.StaticDraw)
	loc := d.AttribLocation(prog, "coordinates")
	assert.Equal(t, gl.Attrib(0), loc)
	d.VertexAttribPointer(loc, 3, gl.Float, false, 0, 0)
	d.EnableVertexAttribArray(loc)

	u := d.UniformLocation(prog, "fragColor")
	require.True(t, u.IsValid())
	d.Uniform4fv(u, []float32{0, 0, 1, 1})
	d.DrawArrays(gl.Triangles, 0, 3)
	require.NoError(t, d.Err())

	bo := d.BufferObject(buf)
	assert.Len(t, bo.Data, 9*4)
	assert.Equal(t, []float32{0, 1, 0, -1, -1, 0, 1, -1, 0}, bo.Floats())
	dc := d.LastDraw()
	require.NotNil(t, dc)
	assert.Equal(t, []float32{0, 0, 1, 1}, dc.Uniforms["fragColor"])

	// later uniform changes do not alter recorded draws
	d.Uniform4fv(u, []float32{1, 1, 1, 1})
	assert.Equal(t, []float32{0, 0, 1, 1}, dc.Uniforms["fragColor"])
}

func TestDriverInvalidCalls(t *testing.T) {
	tests := []struct {
		name string
		call func(d *Driver)
		want string
	}{
		{"draw without program", func(d *Driver) {
			d.DrawArrays(gl.Triangles, 0, 3)
		}, "gltest: drawArrays: no active program"},
		{"use unlinked program", func(d *Driver) {
			d.UseProgram(d.CreateProgram())
		}, "gltest: useProgram: program is not linked"},
		{"buffer data without buffer", func(d *Driver) {
			d.BufferData(gl.ArrayBuffer, []float32{1}, gl.StaticDraw)
		}, "gltest: bufferData: no buffer bound to ArrayBuffer"},
		{"pointer without buffer", func(d *Driver) {
			d.VertexAttribPointer(0, 3, gl.Float, false, 0, 0)
		}, "gltest: vertexAttribPointer: no buffer bound to ArrayBuffer"},
		{"enable absent attrib", func(d *Driver) {
			d.EnableVertexAttribArray(gl.NoAttrib)
		}, "gltest: enableVertexAttribArray: invalid location -1"},
		{"element buffer", func(d *Driver) {
			d.BindBuffer(gl.ElementArrayBuffer, d.CreateBuffer())
		}, "gltest: bindBuffer: unsupported target ElementArrayBuffer"},
		{"uniform from another program", func(d *Driver) {
			p1 := linked(t, d)
			p2 := linked(t, d)
			d.UseProgram(p2)
			d.Uniform4fv(d.UniformLocation(p1, "fragColor"), []float32{1, 0, 0, 1})
		}, "gltest: uniform4fv: location is not from the active program"},
		{"short uniform", func(d *Driver) {
			p := linked(t, d)
			d.UseProgram(p)
			d.Uniform4fv(d.UniformLocation(p, "fragColor"), []float32{1, 0, 0})
		}, "gltest: uniform4fv: got 3 values for a vec4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver()
			tt.call(d)
			err := d.Err()
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestDriverFirstErrorSticks(t *testing.T) {
	d := NewDriver()
	d.DrawArrays(gl.Triangles, 0, 3)
	d.UseProgram(gl.Program{})
	assert.EqualError(t, d.Err(), "gltest: drawArrays: no active program")
}

func TestDriverLinkErrors(t *testing.T) {
	d := NewDriver()
	prog := d.CreateProgram()
	d.AttachShader(prog, compiled(t, d, gl.VertexShader, gl.VertexSource))
	d.LinkProgram(prog)
	assert.False(t, d.ProgramLinked(prog))
	assert.Equal(t, "ERROR: Missing fragment shader", d.ProgramInfoLog(prog))

	bad := d.CreateShader(gl.FragmentShader)
	d.ShaderSource(bad, "void main(void) {")
	d.CompileShader(bad)
	assert.False(t, d.ShaderCompiled(bad))
	d.AttachShader(prog, bad)
	d.LinkProgram(prog)
	assert.Equal(t, "ERROR: One or more attached shaders not successfully compiled", d.ProgramInfoLog(prog))

	d.NoInfoLog = true
	assert.Empty(t, d.ProgramInfoLog(prog))
	assert.Empty(t, d.ShaderInfoLog(bad))
	assert.NoError(t, d.Err())
}

func TestDriverUniformTypes(t *testing.T) {
	d := NewDriver()
	vert := `uniform vec3 tint;
attribute vec3 coordinates;
void main(void) {
    gl_Position = vec4(coordinates * tint, 1.0);
}
`
	frag := `precision mediump float;
uniform vec4 tint;
void main(void) {
    gl_FragColor = tint;
}
`
	prog := d.CreateProgram()
	d.AttachShader(prog, compiled(t, d, gl.VertexShader, vert))
	d.AttachShader(prog, compiled(t, d, gl.FragmentShader, frag))
	d.LinkProgram(prog)
	assert.False(t, d.ProgramLinked(prog))
	assert.Equal(t, "ERROR: Types of uniform tint differ between vertex and fragment shaders", d.ProgramInfoLog(prog))
}

func TestHost(t *testing.T) {
	h := NewHost("triangle", image.Pt(300, 150))
	ctx, size, err := h.Context("triangle")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(300, 150), size)
	assert.Equal(t, gl.Context(h.Driver), ctx)

	_, _, err = h.Context("other")
	var ce *gl.CanvasNotFoundError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "other", ce.ID)
}
