package canvas

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// HalfBlock is the rune used to show two vertical pixels in one cell:
// the foreground paints the upper pixel and the background the lower one.
const HalfBlock = '▀'

// Cells rasterises the logical surface onto a grid of terminal cells.
// Every cell holds two square-ish pixels stacked vertically, which roughly
// compensates for terminal cells being twice as tall as they are wide.
type Cells struct {
	w, h       float64 // logical size
	cols, rows int     // cells
	pix        []core.Color
	bg         core.Color
}

// NewCells creates a cell surface mapping a w x h logical area onto cols x rows cells.
func NewCells(w, h float64, cols, rows int) *Cells {
	c := &Cells{w: w, h: h, bg: core.ColorBlack}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid, clearing its content.
func (c *Cells) Resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.pix = make([]core.Color, c.cols*c.rows*2)
	for i := range c.pix {
		c.pix[i] = c.bg
	}
}

// Size implements Surface.
func (c *Cells) Size() (float64, float64) { return c.w, c.h }

// Cols returns the grid width in cells.
func (c *Cells) Cols() int { return c.cols }

// Rows returns the grid height in cells.
func (c *Cells) Rows() int { return c.rows }

// pixelSize returns the logical size of one pixel.
func (c *Cells) pixelSize() (float64, float64) {
	return c.w / float64(c.cols), c.h / float64(c.rows*2)
}

// Pixel returns the colour of the pixel at (px, py), where py counts half cells.
func (c *Cells) Pixel(px, py int) core.Color {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return c.bg
	}
	return c.pix[py*c.cols+px]
}

// plot blends a colour into one pixel.
func (c *Cells) plot(px, py int, col core.Color) {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return
	}
	i := py*c.cols + px
	c.pix[i] = core.Blend(c.pix[i], col)
}

// span returns the pixel indices whose centers fall in [lo, hi).
// Spans thinner than a pixel still cover the pixel under their midpoint.
func span(lo, hi, size float64, n int) (int, int) {
	start := int(math.Ceil(lo/size - 0.5))
	end := int(math.Ceil(hi/size - 0.5))
	if start >= end {
		start = int(math.Floor((lo + hi) / 2 / size))
		end = start + 1
	}
	return core.Clamp(start, 0, n), core.Clamp(end, 0, n)
}

// ClearRect implements Surface.
func (c *Cells) ClearRect(b core.Box) {
	pw, ph := c.pixelSize()
	x0, x1 := span(b.X, b.Right(), pw, c.cols)
	y0, y1 := span(b.Y, b.Bottom(), ph, c.rows*2)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.pix[py*c.cols+px] = c.bg
		}
	}
}

// FillRect implements Surface.
func (c *Cells) FillRect(b core.Box, col core.Color) {
	pw, ph := c.pixelSize()
	x0, x1 := span(b.X, b.Right(), pw, c.cols)
	y0, y1 := span(b.Y, b.Bottom(), ph, c.rows*2)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.plot(px, py, col)
		}
	}
}

// FillCircle implements Surface.
func (c *Cells) FillCircle(cx, cy, radius float64, col core.Color) {
	pw, ph := c.pixelSize()
	x0, x1 := span(cx-radius, cx+radius, pw, c.cols)
	y0, y1 := span(cy-radius, cy+radius, ph, c.rows*2)
	hit := false
	for py := y0; py < y1; py++ {
		dy := (float64(py)+0.5)*ph - cy
		for px := x0; px < x1; px++ {
			dx := (float64(px)+0.5)*pw - cx
			if dx*dx+dy*dy <= radius*radius {
				c.plot(px, py, col)
				hit = true
			}
		}
	}
	// A disc smaller than a pixel still shows up as the pixel under its center.
	if !hit {
		c.plot(int(math.Floor(cx/pw)), int(math.Floor(cy/ph)), col)
	}
}

// FillCircleGlow implements Glower by layering translucent rings under the disc.
func (c *Cells) FillCircleGlow(cx, cy, radius, blur float64, col core.Color) {
	Halo(c, cx, cy, radius, blur, col)
}

// DashedLine implements Surface. Lines are one pixel wide at cell resolution.
func (c *Cells) DashedLine(x0, y0, x1, y1, _, dash, gap float64, col core.Color) {
	pw, ph := c.pixelSize()
	step := math.Min(pw, ph) / 2
	seen := make(map[int]bool)
	Dashes(x0, y0, x1, y1, dash, gap, func(ax, ay, bx, by float64) {
		// Sample segment midpoints so a dash ending on a pixel boundary
		// does not bleed into the next pixel.
		n := max(int(math.Ceil(math.Hypot(bx-ax, by-ay)/step)), 1)
		for i := 0; i < n; i++ {
			t := (float64(i) + 0.5) / float64(n)
			px := int(math.Floor((ax + (bx-ax)*t) / pw))
			py := int(math.Floor((ay + (by-ay)*t) / ph))
			if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
				continue
			}
			idx := py*c.cols + px
			if seen[idx] {
				continue
			}
			seen[idx] = true
			c.plot(px, py, col)
		}
	})
}

// Flush copies the pixels into a screen as half-block cells, with the
// grid's top-left corner at (ox, oy). Cells outside the screen are clipped.
func (c *Cells) Flush(dst *core.Screen, ox, oy int) {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			dst.SetCell(ox+x, oy+y, core.Cell{
				Rune: HalfBlock,
				Fg:   c.pix[(2*y)*c.cols+x],
				Bg:   c.pix[(2*y+1)*c.cols+x],
			})
		}
	}
}
