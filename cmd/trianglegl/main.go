// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android)

// Command trianglegl draws the triangle in a desktop window through
// OpenGL ES 2, with the same shaders and calls as the browser app.
package main

import (
	"image"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/webgl/base/logx"
	"cogentcore.org/webgl/gl"
	"cogentcore.org/webgl/gl/glfwgl"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for gl!
	runtime.LockOSThread()
}

func main() {
	color := pflag.StringP("color", "c", "red", "triangle color, such as red, #00ff00 or \"0, 0, 1\"")
	width := pflag.Int("width", 400, "window width")
	height := pflag.Int("height", 400, "window height")
	verbose := pflag.BoolP("verbose", "v", false, "show info messages")
	vv := pflag.Bool("vv", false, "show debug messages")
	pflag.Parse()
	logx.UserLevel = logx.LevelFromFlags(*vv, *verbose, false)
	logx.SetDefaultLogger()

	if err := run(*color, image.Pt(*width, *height)); err != nil {
		slog.Error("trianglegl", "err", err)
		os.Exit(1)
	}
}

func run(color string, size image.Point) error {
	clr, err := gl.ParseColor(color)
	if err != nil {
		return err
	}
	if err := glfwgl.Init(); err != nil {
		return err
	}
	defer glfwgl.Terminate()

	win, err := glfwgl.NewWindow("triangle", size, "Triangle")
	if err != nil {
		return err
	}
	defer win.Destroy()
	return win.Run(func() error {
		_, err := gl.DrawTriangle(win, win.ID, &clr)
		return err
	})
}
