// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Color is a non premultiplied RGBA color with components nominally in
// 0..1, as uploaded to a vec4 uniform. Components are not checked.
type Color struct {
	R, G, B, A float32
}

// Red is the default triangle color.
var Red = Color{1, 0, 0, 1}

// NewColor converts any [color.Color] to a [Color].
func NewColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

// ParseColor parses a CSS color name ("red", "cornflowerblue"), a hex
// color ("#f00", "#ff0000", "#ff0000ff"), or a comma separated list of
// three or four float components ("1, 0, 0" or "1, 0, 0, 0.5").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("gl.ParseColor: empty color")
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.Contains(s, ","):
		return parseList(s)
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("gl.ParseColor: unknown color name %q", s)
	}
	return NewColor(c), nil
}

func parseHex(s string) (Color, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("gl.ParseColor: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("gl.ParseColor: invalid hex color %q: %w", s, err)
	}
	return NewColor(color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}), nil
}

func parseList(s string) (Color, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, fmt.Errorf("gl.ParseColor: %q must have 3 or 4 components", s)
	}
	c := [4]float32{3: 1}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return Color{}, fmt.Errorf("gl.ParseColor: component %d of %q: %w", i, s, err)
		}
		c[i] = float32(v)
	}
	return Color{c[0], c[1], c[2], c[3]}, nil
}

// ColorFromRGB255 returns the opaque color for red, green and blue values
// given as text on a 0..255 scale, such as the values of form inputs.
// Each becomes value/255 rounded to two decimals. Only the leading
// number of the text is read, so "12px" is 12, and text that does not
// start with a number counts as 0. Values outside 0..255 are kept as
// they are.
func ColorFromRGB255(r, g, b string) Color {
	return Color{rgb255(r), rgb255(g), rgb255(b), 1}
}

// leadingNumber matches a decimal number at the start of text.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func rgb255(s string) float32 {
	v, err := strconv.ParseFloat(leadingNumber.FindString(strings.TrimSpace(s)), 32)
	if err != nil {
		return 0
	}
	f := float32(v) / 255
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0
	}
	return math32.Floor(f*100+0.5) / 100
}

// Slice returns the components in R, G, B, A order.
func (c Color) Slice() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// RGBA implements [color.Color], clamping components to 0..1.
func (c Color) RGBA() (r, g, b, a uint32) {
	n := color.NRGBA{clamp8(c.R), clamp8(c.G), clamp8(c.B), clamp8(c.A)}
	return n.RGBA()
}

func clamp8(v float32) uint8 {
	return uint8(math32.Floor(math32.Max(0, math32.Min(1, v))*255 + 0.5))
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
