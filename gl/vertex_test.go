// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl_test

import (
	"encoding/binary"
	"testing"

	"cogentcore.org/webgl/gl"
	"cogentcore.org/webgl/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/exp/f32"
)

func TestBindVertices(t *testing.T) {
	d := gltest.NewDriver()
	prog, err := gl.LinkDefault(d)
	require.NoError(t, err)

	verts := gl.TriangleVertices()
	require.NoError(t, gl.BindVertices(d, verts, prog))

	loc := d.AttribLocation(prog, gl.CoordinatesAttrib)
	require.True(t, loc.IsValid())
	aa := d.Attribs[loc]
	require.NotNil(t, aa)
	assert.True(t, aa.Enabled)
	assert.Equal(t, 3, aa.Size)
	assert.Equal(t, gl.Float, aa.Type)
	assert.False(t, aa.Normalized)
	assert.Zero(t, aa.Stride)
	assert.Zero(t, aa.Offset)

	require.Len(t, d.Buffers, 1)
	buf := d.Buffers[0]
	assert.Same(t, buf, aa.Buffer)
	assert.Same(t, buf, d.ArrayBuffer)
	assert.Equal(t, gl.ArrayBuffer, buf.Target)
	assert.Equal(t, gl.StaticDraw, buf.Usage)
	assert.Equal(t, f32.Bytes(binary.LittleEndian, verts...), buf.Data)
	assert.Equal(t, verts, buf.Floats())
}

func TestBindVerticesPartialVertex(t *testing.T) {
	d := gltest.NewDriver()
	prog, err := gl.LinkDefault(d)
	require.NoError(t, err)

	verts := []float32{0, 1, 0, -1}
	require.NoError(t, gl.BindVertices(d, verts, prog))
	assert.Equal(t, verts, d.ArrayBuffer.Floats())
}

func TestBindVerticesNoAttrib(t *testing.T) {
	d := gltest.NewDriver()
	vert := `attribute vec3 position;
void main(void) {
    gl_Position = vec4(position, 1.0);
}
`
	prog, err := gl.Link(d, vert, gl.FragmentSource)
	require.NoError(t, err)

	err = gl.BindVertices(d, gl.TriangleVertices(), prog)
	var ae *gl.AttribNotFoundError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, gl.CoordinatesAttrib, ae.Name)
	assert.Empty(t, d.Attribs)
}

func TestBindVerticesNoBuffer(t *testing.T) {
	d := gltest.NewDriver()
	prog, err := gl.LinkDefault(d)
	require.NoError(t, err)

	d.NoBuffers = true
	err = gl.BindVertices(d, gl.TriangleVertices(), prog)
	var cre *gl.CreationError
	require.ErrorAs(t, err, &cre)
	assert.Equal(t, "buffer", cre.Object)
}
