// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl_test

import (
	"testing"

	"cogentcore.org/webgl/gl"
	"cogentcore.org/webgl/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const varyingVertex = `attribute vec3 coordinates;
varying vec3 vColor;
void main(void) {
    vColor = coordinates * 0.5 + 0.5;
    gl_Position = vec4(coordinates, 1.0);
}
`

func TestLink(t *testing.T) {
	d := gltest.NewDriver()
	prog, err := gl.LinkDefault(d)
	require.NoError(t, err)

	po := d.ProgramObject(prog)
	require.NotNil(t, po)
	assert.True(t, po.Linked)
	assert.True(t, d.ProgramLinked(prog))
	assert.Same(t, po, d.Program)
	assert.Len(t, po.Shaders, 2)
	assert.Equal(t, []string{gl.CoordinatesAttrib}, po.Attribs)
	assert.Contains(t, po.Uniforms, gl.ColorUniform)
	assert.NoError(t, d.Err())
}

func TestLinkVaryings(t *testing.T) {
	d := gltest.NewDriver()
	frag := `precision mediump float;
varying vec3 vColor;
void main(void) {
    gl_FragColor = vec4(vColor, 1.0);
}
`
	_, err := gl.Link(d, varyingVertex, frag)
	assert.NoError(t, err)
}

func TestLinkMismatchedVaryings(t *testing.T) {
	tests := []struct {
		name string
		frag string
		log  string
	}{
		{"type", `precision mediump float;
varying vec4 vColor;
void main(void) {
    gl_FragColor = vColor;
}
`, "ERROR: Types of varying vColor differ between vertex and fragment shaders"},
		{"missing", `precision mediump float;
varying vec3 vShade;
void main(void) {
    gl_FragColor = vec4(vShade, 1.0);
}
`, "ERROR: Fragment varying vShade does not match any vertex varying"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := gltest.NewDriver()
			prog, err := gl.Link(d, varyingVertex, tt.frag)
			assert.False(t, prog.IsValid())
			var le *gl.LinkError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.log, le.Log)
			require.Len(t, d.Programs, 1)
			assert.Equal(t, d.Programs[0].InfoLog, err.Error())
			assert.Nil(t, d.Program, "failed program must not become active")
		})
	}
}

func TestLinkWithoutLog(t *testing.T) {
	d := gltest.NewDriver()
	d.NoInfoLog = true
	frag := `precision mediump float;
varying vec4 vColor;
void main(void) {
    gl_FragColor = vColor;
}
`
	_, err := gl.Link(d, varyingVertex, frag)
	require.Error(t, err)
	assert.Equal(t, gl.UnknownLinkError, err.Error())
}

func TestLinkCompileFailure(t *testing.T) {
	d := gltest.NewDriver()
	_, err := gl.Link(d, gl.VertexSource, "void main(void) { gl_FragColor = vec4(1.0); }")

	var cre *gl.CreationError
	require.ErrorAs(t, err, &cre)
	assert.Equal(t, "fragment shader", cre.Object)

	var ce *gl.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, gl.FragmentShader, ce.Type)
	assert.Contains(t, ce.Log, "No precision specified for (float)")
	assert.Empty(t, d.Programs)
}

func TestLinkNoShaderObject(t *testing.T) {
	d := gltest.NewDriver()
	d.NoShaders = true
	_, err := gl.LinkDefault(d)
	var cre *gl.CreationError
	require.ErrorAs(t, err, &cre)
	assert.Equal(t, "vertex shader", cre.Object)
	assert.Nil(t, cre.Err)
}

func TestLinkNoProgramObject(t *testing.T) {
	d := gltest.NewDriver()
	d.NoPrograms = true
	_, err := gl.LinkDefault(d)
	var cre *gl.CreationError
	require.ErrorAs(t, err, &cre)
	assert.Equal(t, "program", cre.Object)
}
