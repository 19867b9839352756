// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// triangle is the fixed triangle: top, bottom left, bottom right.
var triangle = [9]float32{
	0, 1, 0,
	-1, -1, 0,
	1, -1, 0,
}

// TriangleVertices returns a copy of the coordinates drawn by [Draw].
func TriangleVertices() []float32 {
	verts := triangle
	return verts[:]
}

// Draw renders the fixed triangle into the context in the given color,
// or in [Red] if clr is nil. It links [VertexSource] and [FragmentSource]
// as the active program, uploads [TriangleVertices], sets [ColorUniform]
// and issues one [Triangles] draw of all the vertices.
func Draw(ctx Context, clr *Color) error {
	c := Red
	if clr != nil {
		c = *clr
	}
	prog, err := LinkDefault(ctx)
	if err != nil {
		return err
	}
	verts := TriangleVertices()
	if err := BindVertices(ctx, verts, prog); err != nil {
		return err
	}
	loc := ctx.UniformLocation(prog, ColorUniform)
	if !loc.IsValid() {
		if err := ctx.Err(); err != nil {
			return err
		}
		return &UniformNotFoundError{Name: ColorUniform}
	}
	ctx.Uniform4fv(loc, c.Slice())
	ctx.DrawArrays(Triangles, 0, len(verts)/ComponentsPerVertex)
	return ctx.Err()
}

// DrawTriangle gets the context for the canvas with the given id from the
// host, sets the viewport to the full canvas and calls [Draw]. It returns
// the live context for further drawing.
func DrawTriangle(host Host, canvasID string, clr *Color) (Context, error) {
	ctx, size, err := host.Context(canvasID)
	if err != nil {
		return nil, err
	}
	ctx.Viewport(0, 0, size.X, size.Y)
	if err := Draw(ctx, clr); err != nil {
		return nil, err
	}
	return ctx, nil
}
