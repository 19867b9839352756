// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package gl

import (
	"fmt"
	"image"
	"log/slog"
	"syscall/js"

	"github.com/hack-pad/safejs"
)

// contextTypes are tried in order by [Document.Context].
var contextTypes = []string{"webgl", "experimental-webgl"}

// Document is the [Host] for the browser page: surfaces are <canvas>
// elements looked up by id.
type Document struct {
	doc safejs.Value
}

// NewDocument returns the [Document] for the global document object.
func NewDocument() (*Document, error) {
	doc, err := safejs.Global().Get("document")
	if err != nil {
		return nil, err
	}
	if isNil(safejs.Unsafe(doc)) {
		return nil, fmt.Errorf("gl.NewDocument: no global document")
	}
	return &Document{doc: doc}, nil
}

// Context returns a [WebGL] context for the <canvas> element with the
// given id, and the canvas size in pixels.
func (d *Document) Context(id string) (Context, image.Point, error) {
	el, err := d.doc.Call("getElementById", id)
	if err != nil {
		return nil, image.Point{}, err
	}
	if isNil(safejs.Unsafe(el)) {
		return nil, image.Point{}, &CanvasNotFoundError{ID: id}
	}
	var ctx js.Value
	var cerr error
	for _, typ := range contextTypes {
		c, err := el.Call("getContext", typ)
		if err != nil {
			// not a <canvas>, or the browser refused
			cerr = err
			break
		}
		if !isNil(safejs.Unsafe(c)) {
			ctx = safejs.Unsafe(c)
			slog.Debug("gl: got context", "canvas", id, "type", typ)
			break
		}
	}
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil, image.Point{}, &CreationError{Object: "webgl context for canvas " + id, Err: cerr}
	}
	size, err := canvasSize(el)
	if err != nil {
		return nil, image.Point{}, err
	}
	return NewWebGL(ctx), size, nil
}

func canvasSize(el safejs.Value) (image.Point, error) {
	w, err := el.Get("width")
	if err != nil {
		return image.Point{}, err
	}
	h, err := el.Get("height")
	if err != nil {
		return image.Point{}, err
	}
	wi, err := w.Int()
	if err != nil {
		return image.Point{}, err
	}
	hi, err := h.Int()
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(wi, hi), nil
}
