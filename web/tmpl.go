// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"image/color"

	"cogentcore.org/webgl/config"
)

//go:embed templates/index.html
var indexHTML string

// IndexHTMLTmpl is the template used in [MakeIndexHTML] to build the index.html file
var IndexHTMLTmpl = template.Must(template.New("index.html").Parse(indexHTML))

// IndexHTMLData is the data passed to [IndexHTMLTmpl]
type IndexHTMLData struct {
	Title  string
	Canvas string
	Width  int
	Height int

	// Env is set as the environment of the Go program.
	Env map[string]string

	// Red, Green and Blue are the initial values of the color form.
	Red, Green, Blue uint8
}

// ReloadPath is where the server accepts live reload connections.
const ReloadPath = "/reload"

// MakeIndexHTML executes [IndexHTMLTmpl] based on the given configuration
// information. If live is true, the page connects back to the server
// for live reloading.
func MakeIndexHTML(c *config.Config, live bool) ([]byte, error) {
	clr, err := c.ParseColor()
	if err != nil {
		return nil, err
	}
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	env := c.Env()
	if live {
		env[config.ReloadEnv] = ReloadPath
	}
	d := IndexHTMLData{
		Title:  "WebGL Triangle",
		Canvas: c.Canvas,
		Width:  c.Width,
		Height: c.Height,
		Env:    env,
		Red:    n.R,
		Green:  n.G,
		Blue:   n.B,
	}
	b := &bytes.Buffer{}
	err = IndexHTMLTmpl.Execute(b, d)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
