// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl_test

import (
	"testing"

	"cogentcore.org/webgl/base/errors"
	"cogentcore.org/webgl/gl"
	"cogentcore.org/webgl/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingSemicolon = `attribute vec3 coordinates;
void main(void) {
    gl_Position = vec4(coordinates, 1.0)
}
`

func TestCompile(t *testing.T) {
	d := gltest.NewDriver()
	vs, err := gl.Compile(d, gl.VertexShader, gl.VertexSource)
	require.NoError(t, err)
	assert.True(t, vs.IsValid())
	assert.True(t, d.ShaderCompiled(vs))
	assert.Equal(t, gl.VertexShader, d.Shader(vs).Type)

	fs, err := gl.Compile(d, gl.FragmentShader, gl.FragmentSource)
	require.NoError(t, err)
	assert.True(t, d.ShaderCompiled(fs))
	assert.NoError(t, d.Err())
}

func TestCompileSyntaxError(t *testing.T) {
	d := gltest.NewDriver()
	sh, err := gl.Compile(d, gl.VertexShader, missingSemicolon)
	assert.False(t, sh.IsValid())

	var ce *gl.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, gl.VertexShader, ce.Type)
	require.Len(t, d.Shaders, 1)
	assert.NotEmpty(t, d.Shaders[0].InfoLog)
	assert.Equal(t, d.Shaders[0].InfoLog, err.Error())
	assert.Equal(t, "ERROR: 0:4: '}' : syntax error\n", err.Error())
}

func TestCompileWithoutLog(t *testing.T) {
	d := gltest.NewDriver()
	d.NoInfoLog = true
	_, err := gl.Compile(d, gl.FragmentShader, "void main(void) { gl_FragColor = vec4(1.0) }")
	require.Error(t, err)
	assert.Equal(t, gl.UnknownShaderError, err.Error())
}

func TestCompileNoShaderObject(t *testing.T) {
	d := gltest.NewDriver()
	d.NoShaders = true
	_, err := gl.Compile(d, gl.FragmentShader, gl.FragmentSource)
	var ce *gl.CreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "fragment shader", ce.Object)
	assert.Equal(t, "gl: unable to create fragment shader", err.Error())
}

func TestCompileHostError(t *testing.T) {
	d := gltest.NewDriver()
	lost := errors.New("context lost")
	d.HostErr = lost
	_, err := gl.Compile(d, gl.VertexShader, gl.VertexSource)
	assert.ErrorIs(t, err, lost)
}
