// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "log/slog"

// ComponentsPerVertex is the number of floats in each (x, y, z) vertex.
const ComponentsPerVertex = 3

// BindVertices uploads the vertex coordinates into a new [ArrayBuffer]
// and wires it to the [CoordinatesAttrib] attribute of the program:
// three tightly packed 32-bit floats per vertex, not normalized.
//
// verts is expected to hold whole (x, y, z) triples; other lengths are
// uploaded as is, with a warning.
func BindVertices(ctx Context, verts []float32, prog Program) error {
	if len(verts)%ComponentsPerVertex != 0 {
		slog.Warn("gl: vertex data is not a whole number of vertices", "floats", len(verts))
	}
	buf := ctx.CreateBuffer()
	if !buf.IsValid() {
		return &CreationError{Object: "buffer", Err: ctx.Err()}
	}
	ctx.BindBuffer(ArrayBuffer, buf)
	ctx.BufferData(ArrayBuffer, verts, StaticDraw)

	loc := ctx.AttribLocation(prog, CoordinatesAttrib)
	if !loc.IsValid() {
		if err := ctx.Err(); err != nil {
			return err
		}
		return &AttribNotFoundError{Name: CoordinatesAttrib}
	}
	ctx.VertexAttribPointer(loc, ComponentsPerVertex, Float, false, 0, 0)
	ctx.EnableVertexAttribArray(loc)
	return ctx.Err()
}
