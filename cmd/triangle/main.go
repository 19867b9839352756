// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command triangle draws a triangle on a page canvas with WebGL. It is
// built to app.wasm and served by glserve.
//
// It draws once at startup in the color given by the page environment,
// redraws when the #color-changer form is submitted, and exports
// drawTriangle(canvasID, color) to JavaScript, which returns null on
// success and the error message otherwise. The color may be a string
// accepted by gl.ParseColor or an array of 3 or 4 numbers.
package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"syscall/js"

	"cogentcore.org/webgl/base/errors"
	"cogentcore.org/webgl/base/logx"
	"cogentcore.org/webgl/base/websocket"
	"cogentcore.org/webgl/config"
	"cogentcore.org/webgl/gl"
)

func main() {
	logx.SetDefaultLogger()

	doc, err := gl.NewDocument()
	if err != nil {
		slog.Error("triangle: no document", "err", err)
		return
	}
	canvas := cmp.Or(os.Getenv(config.CanvasEnv), "triangle")
	clr := gl.Red
	if s := os.Getenv(config.ColorEnv); s != "" {
		if c, err := gl.ParseColor(s); errors.Log(err) == nil {
			clr = c
		}
	}

	js.Global().Set("drawTriangle", js.FuncOf(func(this js.Value, args []js.Value) any {
		return drawTriangle(doc, args)
	}))
	if _, err := gl.DrawTriangle(doc, canvas, &clr); err != nil {
		slog.Error("triangle: drawing", "canvas", canvas, "err", err)
	}
	onColorChange(doc, canvas)
	if path := os.Getenv(config.ReloadEnv); path != "" {
		liveReload(path)
	}
	select {}
}

// drawTriangle is the JavaScript drawTriangle function.
func drawTriangle(doc *gl.Document, args []js.Value) any {
	if len(args) == 0 || args[0].Type() != js.TypeString {
		return "drawTriangle: canvas id must be a string"
	}
	var clr *gl.Color
	if len(args) > 1 && !args[1].IsUndefined() && !args[1].IsNull() {
		c, err := jsColor(args[1])
		if err != nil {
			return err.Error()
		}
		clr = &c
	}
	if _, err := gl.DrawTriangle(doc, args[0].String(), clr); err != nil {
		return err.Error()
	}
	return nil
}

// jsColor converts a color string or array of numbers to a [gl.Color].
func jsColor(v js.Value) (gl.Color, error) {
	if v.Type() == js.TypeString {
		return gl.ParseColor(v.String())
	}
	if v.Type() != js.TypeObject || v.Get("length").Type() != js.TypeNumber {
		return gl.Color{}, errors.New("drawTriangle: color must be a string or an array of numbers")
	}
	n := v.Length()
	if n != 3 && n != 4 {
		return gl.Color{}, fmt.Errorf("drawTriangle: color has %d components, not 3 or 4", n)
	}
	c := [4]float32{3: 1}
	for i := range n {
		e := v.Index(i)
		if e.Type() != js.TypeNumber {
			return gl.Color{}, fmt.Errorf("drawTriangle: color component %d is not a number", i)
		}
		c[i] = float32(e.Float())
	}
	return gl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

// onColorChange redraws the triangle in the color of the red, green and
// blue inputs when the #color-changer form is submitted.
func onColorChange(doc *gl.Document, canvas string) {
	document := js.Global().Get("document")
	form := document.Call("getElementById", "color-changer")
	if form.IsNull() {
		slog.Debug("triangle: no color form")
		return
	}
	value := func(id string) string {
		el := document.Call("getElementById", id)
		if el.IsNull() {
			return ""
		}
		return el.Get("value").String()
	}
	form.Call("addEventListener", "submit", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		clr := gl.ColorFromRGB255(value("red"), value("green"), value("blue"))
		slog.Info("triangle: changing color", "color", clr)
		if _, err := gl.DrawTriangle(doc, canvas, &clr); err != nil {
			slog.Error("triangle: drawing", "canvas", canvas, "err", err)
		}
		return nil
	}))
}

// liveReload reloads the page when the server sends the reload message
// on the WebSocket at path.
func liveReload(path string) {
	loc := js.Global().Get("location")
	scheme := "ws://"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss://"
	}
	c, err := websocket.Connect(scheme + loc.Get("host").String() + path)
	if errors.Log(err) != nil {
		return
	}
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		if string(msg) == config.ReloadMessage {
			loc.Call("reload")
		}
	})
}
