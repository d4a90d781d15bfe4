package canvas

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// bezierCircle is the control point distance for approximating a quarter
// circle with one cubic Bézier segment.
const bezierCircle = 0.5522847498

// Raster renders the logical surface into an offscreen RGBA image.
type Raster struct {
	img   *image.RGBA
	w, h  float64
	scale float64
	z     *vector.Rasterizer
	bg    core.Color
}

// NewRaster creates a raster surface of w x h logical units, each mapped
// to scale pixels.
func NewRaster(w, h, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Ceil(w * scale))
	ph := int(math.Ceil(h * scale))
	r := &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		w:     w,
		h:     h,
		scale: scale,
		z:     vector.NewRasterizer(pw, ph),
		bg:    core.ColorBlack,
	}
	r.ClearRect(core.NewBox(0, 0, w, h))
	return r
}

// Size implements Surface.
func (r *Raster) Size() (float64, float64) { return r.w, r.h }

// Image returns the underlying image.
func (r *Raster) Image() *image.RGBA { return r.img }

// rect converts a logical box to a pixel rectangle.
func (r *Raster) rect(b core.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X*r.scale)),
		int(math.Round(b.Y*r.scale)),
		int(math.Round(b.Right()*r.scale)),
		int(math.Round(b.Bottom()*r.scale)),
	).Intersect(r.img.Bounds())
}

// ClearRect implements Surface.
func (r *Raster) ClearRect(b core.Box) {
	draw.Draw(r.img, r.rect(b), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

// FillRect implements Surface.
func (r *Raster) FillRect(b core.Box, c core.Color) {
	draw.Draw(r.img, r.rect(b), image.NewUniform(c), image.Point{}, draw.Over)
}

// FillCircle implements Surface.
func (r *Raster) FillCircle(cx, cy, radius float64, c core.Color) {
	if radius <= 0 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	x, y, k := float32(cx*r.scale), float32(cy*r.scale), float32(radius*r.scale)
	m := k * bezierCircle
	r.z.MoveTo(x+k, y)
	r.z.CubeTo(x+k, y+m, x+m, y+k, x, y+k)
	r.z.CubeTo(x-m, y+k, x-k, y+m, x-k, y)
	r.z.CubeTo(x-k, y-m, x-m, y-k, x, y-k)
	r.z.CubeTo(x+m, y-k, x+k, y-m, x+k, y)
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// FillCircleGlow implements Glower by layering translucent rings under the disc.
func (r *Raster) FillCircleGlow(cx, cy, radius, blur float64, c core.Color) {
	Halo(r, cx, cy, radius, blur, c)
}

// DashedLine implements Surface.
func (r *Raster) DashedLine(x0, y0, x1, y1, width, dash, gap float64, c core.Color) {
	if width <= 0 {
		width = 1
	}
	b := r.img.Bounds()
	src := image.NewUniform(c)
	Dashes(x0, y0, x1, y1, dash, gap, func(ax, ay, bx, by float64) {
		length := math.Hypot(bx-ax, by-ay)
		if length == 0 {
			return
		}
		// Offset perpendicular to the segment by half the width.
		nx := -(by - ay) / length * width / 2
		ny := (bx - ax) / length * width / 2
		r.z.Reset(b.Dx(), b.Dy())
		r.z.MoveTo(float32((ax+nx)*r.scale), float32((ay+ny)*r.scale))
		r.z.LineTo(float32((bx+nx)*r.scale), float32((by+ny)*r.scale))
		r.z.LineTo(float32((bx-nx)*r.scale), float32((by-ny)*r.scale))
		r.z.LineTo(float32((ax-nx)*r.scale), float32((ay-ny)*r.scale))
		r.z.ClosePath()
		r.z.Draw(r.img, b, src, image.Point{})
	})
}

// SetScores implements the game's score sink by printing both scores near
// the top of the image, left and right of the centre line.
func (r *Raster) SetScores(player, computer int) {
	face := basicfont.Face7x13
	b := r.img.Bounds()
	y := face.Metrics().Ascent.Ceil() + 8
	left := strconv.Itoa(player)
	right := strconv.Itoa(computer)

	d := &font.Drawer{Dst: r.img, Src: image.NewUniform(core.ColorWhite), Face: face}
	leftW := d.MeasureString(left).Ceil()
	d.Dot = fixed.P(b.Dx()/2-24-leftW, y)
	d.DrawString(left)
	d.Dot = fixed.P(b.Dx()/2+24, y)
	d.DrawString(right)
}

// EncodePNG writes the current image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("canvas: cannot encode png: %w", err)
	}
	return nil
}

// WritePNGFile writes the current image to a PNG file.
func (r *Raster) WritePNGFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: cannot create %s: %w", path, err)
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("canvas: cannot close %s: %w", path, err)
	}
	return nil
}
