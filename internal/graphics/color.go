// Package graphics holds backend-independent drawing data: colours, rectangles,
// font descriptions and sprite animation.
package graphics

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Named colours.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	Orange      = Color{1, 0.647, 0, 1}
	Purple      = Color{0.5, 0, 0.5, 1}
	Brown       = Color{0.647, 0.165, 0.165, 1}
	Pink        = Color{1, 0.753, 0.796, 1}
	Sky         = Color{0.529, 0.808, 0.922, 1}
	Night       = Color{0.047, 0.063, 0.125, 1}
	Transparent = Color{}
)

// FromRGBA builds a colour from 8-bit channels.
func FromRGBA(r, g, b, a int) Color {
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
		A: clampChannel(a),
	}
}

// FromRGB builds an opaque colour from 8-bit channels.
func FromRGB(r, g, b int) Color {
	return FromRGBA(r, g, b, 255)
}

// FromHex parses "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
func FromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return FromRGBA(int(v>>24&0xff), int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)), nil
}

// MustHex is like FromHex but panics on malformed input. Intended for literals.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Mul multiplies two colours channel by channel.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Hex formats the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to the standard library's non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (c Color) bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

func toByte(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clampChannel(v int) float64 {
	return clamp01(float64(v) / 255)
}
