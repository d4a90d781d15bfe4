package pong

import (
	"github.com/vovakirdan/neon-pong/internal/canvas"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// NetWidth is the stroke width of the center net.
const NetWidth = 2

// Render draws the current game state onto dst without modifying it.
// Draw order: clear, net, paddles, trail (oldest first), ball.
func (g *Game) Render(dst canvas.Surface) {
	s := &g.state
	fx := g.cfg.Effects
	w, h := g.cfg.Surface.Width, g.cfg.Surface.Height
	r := g.cfg.Ball.Radius

	dst.ClearRect(core.NewBox(0, 0, w, h))
	dst.DashedLine(w/2, 0, w/2, h, NetWidth, fx.NetDash, fx.NetGap, core.ColorWhite)

	dst.FillRect(g.PlayerPaddle(), core.ColorWhite)
	dst.FillRect(g.ComputerPaddle(), core.ColorWhite)

	// Older samples are fainter and smaller.
	n := s.Trail.Len()
	for i := 0; i < n; i++ {
		sample := s.Trail.At(i)
		alpha := float64(i+1) / float64(2*n)
		dst.FillCircle(sample.X, sample.Y, r+float64(i)*fx.TrailGrowth, core.WithAlpha(g.ballColor(sample.Hue), alpha))
	}

	canvas.FillCircleGlow(dst, s.BallX, s.BallY, r, fx.GlowBlur, g.ballColor(s.Hue))
}

// ballColor returns the neon colour for a hue.
func (g *Game) ballColor(hue float64) core.Color {
	return canvas.HSL(hue, g.cfg.Effects.Saturation, g.cfg.Effects.Lightness)
}
