package core

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) RGBA colour.
// The zero value means "terminal default" for screen cells.
type Color = color.NRGBA

// Common colours used by the game and its surfaces.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128, A: 255}
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced by a (0..1).
func WithAlpha(c Color, a float64) Color {
	c.A = uint8(ClampF(a, 0, 1)*255 + 0.5)
	return c
}

// Blend composites src over an opaque dst using src's alpha.
// The result is always opaque.
func Blend(dst, src Color) Color {
	if src.A == 255 {
		return src
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// Hex formats the colour as #rrggbb, ignoring alpha.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
