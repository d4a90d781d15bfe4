package pong

import "github.com/vovakirdan/neon-pong/internal/core"

// KeyDown marks a directional key as held. Other keys are ignored.
func (g *Game) KeyDown(k core.Key) {
	switch k {
	case core.KeyUp:
		g.state.UpPressed = true
	case core.KeyDown:
		g.state.DownPressed = true
	}
}

// KeyUp releases a directional key. Other keys are ignored.
func (g *Game) KeyUp(k core.Key) {
	switch k {
	case core.KeyUp:
		g.state.UpPressed = false
	case core.KeyDown:
		g.state.DownPressed = false
	}
}

// PointerMove centers the player paddle on a surface-relative y coordinate.
// It takes effect immediately, outside the simulation step.
func (g *Game) PointerMove(y float64) {
	g.state.PlayerY = g.clampPaddle(y - g.cfg.Paddles.Height/2)
}
