// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl_test

import (
	"image/color"
	"testing"

	"cogentcore.org/webgl/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gl.Color
	}{
		{"red", gl.Red},
		{"  Lime ", gl.Color{0, 1, 0, 1}},
		{"#00f", gl.Color{0, 0, 1, 1}},
		{"#ffffff", gl.Color{1, 1, 1, 1}},
		{"#000000ff", gl.Color{0, 0, 0, 1}},
		{"0, 1, 0", gl.Color{0, 1, 0, 1}},
		{"0.25,0.5,1,0.5", gl.Color{0.25, 0.5, 1, 0.5}},
	}
	for _, tt := range tests {
		c, err := gl.ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, s := range []string{"", "reddish", "#12", "#gggggg", "1, 0", "1, x, 0"} {
		_, err := gl.ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestColorFromRGB255(t *testing.T) {
	assert.Equal(t, gl.Color{1, 0, 0, 1}, gl.ColorFromRGB255("255", "0", "0"))
	assert.Equal(t, gl.Color{0.5, 0.25, 0, 1}, gl.ColorFromRGB255("128", "64", ""))
	assert.Equal(t, gl.Color{0, 0.2, 0, 1}, gl.ColorFromRGB255("abc", " 51 ", "NaN"))
	// out of range values pass through
	assert.Equal(t, gl.Color{1.18, 0, -0.2, 1}, gl.ColorFromRGB255("300", "0", "-51"))
	assert.Equal(t, gl.Color{0.05, 0.5, 0, 1}, gl.ColorFromRGB255("12abc", "127.5e0px", "x12"))
	assert.Equal(t, gl.Color{0, 0.2, 0, 1}, gl.ColorFromRGB255("Infinity", "+51.", ".e1"))
}

func TestColorConversions(t *testing.T) {
	c := gl.NewColor(color.NRGBA{0, 255, 0, 255})
	assert.Equal(t, gl.Color{0, 1, 0, 1}, c)
	assert.Equal(t, []float32{0, 1, 0, 1}, c.Slice())

	n := color.NRGBAModel.Convert(gl.Color{2, 0.5, -1, 1}).(color.NRGBA)
	assert.Equal(t, color.NRGBA{255, 128, 0, 255}, n)
	assert.Equal(t, "Color(1, 0, 0, 1)", gl.Red.String())
}
