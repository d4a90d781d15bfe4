// Package canvas defines the drawing surface the game renders onto and the
// back-ends that implement it: half-block terminal cells, an offscreen
// raster image and a call recorder.
package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Surface is a rectangular drawing area in logical coordinates.
// Implementations scale logical units to their own resolution.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// ClearRect resets an area to the background colour.
	ClearRect(b core.Box)

	// FillRect fills an axis-aligned rectangle.
	FillRect(b core.Box, c core.Color)

	// FillCircle fills a disc centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c core.Color)

	// DashedLine strokes a line alternating dash and gap lengths.
	DashedLine(x0, y0, x1, y1, width, dash, gap float64, c core.Color)
}

// Glower is implemented by surfaces that can render a soft halo around a
// disc. Callers fall back to FillCircle when a surface does not support it.
type Glower interface {
	FillCircleGlow(cx, cy, radius, blur float64, c core.Color)
}

// FillCircleGlow draws a glowing disc when dst supports it and a plain disc otherwise.
func FillCircleGlow(dst Surface, cx, cy, radius, blur float64, c core.Color) {
	if g, ok := dst.(Glower); ok && blur > 0 {
		g.FillCircleGlow(cx, cy, radius, blur, c)
		return
	}
	dst.FillCircle(cx, cy, radius, c)
}

// HSL converts hue (degrees), saturation and lightness (0..1) to an opaque colour.
func HSL(h, s, l float64) core.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return core.RGB(r, g, b)
}

// Halo draws a disc over translucent rings that fake a blur of the given size.
// Surfaces without a native blur implement Glower with it.
func Halo(dst Surface, cx, cy, radius, blur float64, c core.Color) {
	for _, ring := range haloRings {
		dst.FillCircle(cx, cy, radius+blur*ring.extent, core.WithAlpha(c, ring.alpha))
	}
	dst.FillCircle(cx, cy, radius, c)
}

// haloRings describes the concentric translucent discs used to fake a blur:
// each ring extends the radius by a fraction of the blur at the given opacity.
var haloRings = []struct {
	extent float64
	alpha  float64
}{
	{1.0, 0.06},
	{0.66, 0.10},
	{0.33, 0.16},
}

// Dashes splits a line into dash segments and calls fn for each of them.
func Dashes(x0, y0, x1, y1, dash, gap float64, fn func(ax, ay, bx, by float64)) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	if dash <= 0 {
		fn(x0, y0, x1, y1)
		return
	}
	ux, uy := dx/length, dy/length
	for pos := 0.0; pos < length; pos += dash + max(gap, 0) {
		end := math.Min(pos+dash, length)
		fn(x0+ux*pos, y0+uy*pos, x0+ux*end, y0+uy*end)
	}
}
