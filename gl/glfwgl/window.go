// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android)

package glfwgl

import (
	"image"

	"cogentcore.org/webgl/base/errors"
	"cogentcore.org/webgl/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw. It must be called on the main thread, which
// must be locked with runtime.LockOSThread.
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw; call as the last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// Window is a glfw window with an OpenGL ES 2 context. It is a [gl.Host]
// with a single surface named by ID.
type Window struct {
	ID     string
	Window *glfw.Window

	ctx *Context
}

// NewWindow opens a window of the given size with an OpenGL ES 2.0
// context and makes that context current. [Init] must be called first.
func NewWindow(id string, size image.Point, title string) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	win, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, &gl.CreationError{Object: "window", Err: err}
	}
	win.MakeContextCurrent()
	ctx, err := NewContext()
	if err != nil {
		win.Destroy()
		return nil, &gl.CreationError{Object: "GLES2 context for window " + id, Err: err}
	}
	return &Window{ID: id, Window: win, ctx: ctx}, nil
}

// Context returns the window context and its framebuffer size.
func (w *Window) Context(id string) (gl.Context, image.Point, error) {
	if id != w.ID {
		return nil, image.Point{}, &gl.CanvasNotFoundError{ID: id}
	}
	width, height := w.Window.GetFramebufferSize()
	return w.ctx, image.Pt(width, height), nil
}

// Run calls redraw whenever the framebuffer size changes, starting
// now, and processes events until the window is closed.
func (w *Window) Run(redraw func() error) error {
	var rerr error
	draw := func() {
		if rerr = redraw(); rerr == nil {
			w.Window.SwapBuffers()
		}
	}
	w.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) { draw() })
	draw()
	for rerr == nil && !w.Window.ShouldClose() {
		glfw.WaitEvents()
	}
	return rerr
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.Window.Destroy()
}
