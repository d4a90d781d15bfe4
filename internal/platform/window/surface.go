package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-pong/internal/canvas"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// Surface draws onto an Ebiten image whose pixels match logical units.
// Target must be set before each frame is drawn.
type Surface struct {
	dst  *ebiten.Image
	w, h float64
}

// NewSurface creates a surface for a w x h logical screen.
func NewSurface(w, h float64) *Surface {
	return &Surface{w: w, h: h}
}

// Target sets the image subsequent calls draw onto.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Size implements canvas.Surface.
func (s *Surface) Size() (float64, float64) { return s.w, s.h }

// ClearRect implements canvas.Surface.
func (s *Surface) ClearRect(b core.Box) {
	if b.X <= 0 && b.Y <= 0 && b.Right() >= s.w && b.Bottom() >= s.h {
		s.dst.Fill(core.ColorBlack)
		return
	}
	vector.FillRect(s.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), core.ColorBlack, false)
}

// FillRect implements canvas.Surface.
func (s *Surface) FillRect(b core.Box, c core.Color) {
	vector.FillRect(s.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// FillCircle implements canvas.Surface.
func (s *Surface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(radius), c, true)
}

// FillCircleGlow implements canvas.Glower.
func (s *Surface) FillCircleGlow(cx, cy, radius, blur float64, c core.Color) {
	canvas.Halo(s, cx, cy, radius, blur, c)
}

// DashedLine implements canvas.Surface.
func (s *Surface) DashedLine(x0, y0, x1, y1, width, dash, gap float64, c core.Color) {
	canvas.Dashes(x0, y0, x1, y1, dash, gap, func(ax, ay, bx, by float64) {
		vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), c, false)
	})
}
