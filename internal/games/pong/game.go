// Package pong implements the neon Pong simulation: one player paddle, one
// computer paddle with a tracking heuristic, a ball with a fading colour
// trail, and the render pass that draws it onto a canvas.Surface.
package pong

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

// ScoreSink receives the current scores once per simulation step.
type ScoreSink interface {
	SetScores(player, computer int)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(player, computer int)

// SetScores implements ScoreSink.
func (f ScoreSinkFunc) SetScores(player, computer int) { f(player, computer) }

// Game implements the Pong game logic.
type Game struct {
	cfg    config.PongConfig
	state  State
	stats  Stats
	rng    *rand.Rand
	sink   ScoreSink
	logger *log.Logger
}

// New creates a game with the given configuration.
// Call Reset before the first Step to seed the random source.
func New(cfg config.PongConfig) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	g.Reset(core.RuntimeConfig{Seed: 1})
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Pong"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// SetScoreSink sets the display that receives scores every step.
func (g *Game) SetScoreSink(sink ScoreSink) {
	g.sink = sink
}

// SetLogger sets the logger used for point and serve events.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// Reset initializes or restarts the game.
// The random source is reseeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	w, h := g.cfg.Surface.Width, g.cfg.Surface.Height
	paddleY := (h - g.cfg.Paddles.Height) / 2

	g.state = State{
		PlayerY:   paddleY,
		ComputerY: paddleY,
		BallX:     w / 2,
		BallY:     h / 2,
		BallVX:    g.cfg.Ball.ServeSpeedX * g.randomSign(),
		BallVY:    g.cfg.Ball.ServeSpeedY * g.randomSign(),
		Trail:     NewTrail(g.cfg.Effects.TrailLength),
	}
	g.stats = Stats{}
}

// State returns a copy of the current game state.
func (g *Game) State() State {
	s := g.state
	s.Trail = g.state.Trail.Clone(g.cfg.Effects.TrailLength)
	return s
}

// SetState replaces the game state. The trail is copied and resized to the
// configured length, so callers may pass a zero Trail.
func (g *Game) SetState(s State) {
	s.Trail = s.Trail.Clone(g.cfg.Effects.TrailLength)
	g.state = s
}

// Stats returns the rally statistics of the current session.
func (g *Game) Stats() Stats {
	return g.stats
}

// Validate checks the current state's invariants.
func (g *Game) Validate() error {
	return g.state.Validate(g.cfg)
}

// PlayerPaddle returns the player paddle's rectangle.
func (g *Game) PlayerPaddle() core.Box {
	return core.NewBox(g.cfg.Paddles.Offset, g.state.PlayerY, g.cfg.Paddles.Width, g.cfg.Paddles.Height)
}

// ComputerPaddle returns the computer paddle's rectangle.
func (g *Game) ComputerPaddle() core.Box {
	x := g.cfg.Surface.Width - g.cfg.Paddles.Width - g.cfg.Paddles.Offset
	return core.NewBox(x, g.state.ComputerY, g.cfg.Paddles.Width, g.cfg.Paddles.Height)
}

// Step advances the game by one frame. Order matters: each stage sees the
// effects of the previous ones within the same frame.
func (g *Game) Step() {
	s := &g.state
	g.stats.Frames++

	g.movePlayer()
	g.moveComputer()

	s.BallX += s.BallVX
	s.BallY += s.BallVY
	g.bounceWalls()

	if g.ballHits(g.PlayerPaddle()) {
		s.BallVX = math.Abs(s.BallVX)
		g.deflect(g.PlayerPaddle())
	}
	if g.ballHits(g.ComputerPaddle()) {
		s.BallVX = -math.Abs(s.BallVX)
		g.deflect(g.ComputerPaddle())
	}

	g.checkScore()
	if g.sink != nil {
		g.sink.SetScores(s.PlayerScore, s.ComputerScore)
	}

	s.Trail.Push(TrailSample{X: s.BallX, Y: s.BallY, Hue: s.Hue})
	s.Hue = wrapHue(s.Hue + g.cfg.Effects.HueStep)
}

// movePlayer applies keyboard movement to the player paddle.
func (g *Game) movePlayer() {
	s := &g.state
	if s.UpPressed {
		s.PlayerY -= g.cfg.Paddles.Speed
	}
	if s.DownPressed {
		s.PlayerY += g.cfg.Paddles.Speed
	}
	s.PlayerY = g.clampPaddle(s.PlayerY)
}

// moveComputer tracks the ball with a fixed speed outside the dead zone.
func (g *Game) moveComputer() {
	s := &g.state
	center := s.ComputerY + g.cfg.Paddles.Height/2
	switch {
	case center < s.BallY-g.cfg.Computer.DeadZone:
		s.ComputerY += g.cfg.Computer.Speed
	case center > s.BallY+g.cfg.Computer.DeadZone:
		s.ComputerY -= g.cfg.Computer.Speed
	}
	s.ComputerY = g.clampPaddle(s.ComputerY)
}

// bounceWalls reflects the ball off the top and bottom edges. The extra
// nudge keeps the ball from lodging past the boundary.
func (g *Game) bounceWalls() {
	s := &g.state
	r := g.cfg.Ball.Radius
	if s.BallY-r < 0 || s.BallY+r > g.cfg.Surface.Height {
		s.BallVY = -s.BallVY
		s.BallY += s.BallVY
	}
}

// ballHits reports whether the ball's bounding box overlaps a paddle.
func (g *Game) ballHits(paddle core.Box) bool {
	return core.BoxAround(g.state.BallX, g.state.BallY, g.cfg.Ball.Radius).Intersects(paddle)
}

// deflect applies spin from the contact offset and shifts the ball colour.
func (g *Game) deflect(paddle core.Box) {
	s := &g.state
	impact := (s.BallY - paddle.CenterY()) / (paddle.H / 2)
	s.BallVY = g.cfg.Ball.Spin * impact
	s.Hue = wrapHue(s.Hue + g.cfg.Effects.HitHueStep)
	g.stats.hit()
}

// checkScore awards a point when the ball leaves through a side edge.
func (g *Game) checkScore() {
	s := &g.state
	r := g.cfg.Ball.Radius
	if s.BallX-r < 0 {
		s.ComputerScore++
		g.logger.Debug("point", "scorer", "computer", "player", s.PlayerScore, "computer", s.ComputerScore, "rally", g.stats.Rally)
		g.resetBall()
	}
	if s.BallX+r > g.cfg.Surface.Width {
		s.PlayerScore++
		g.logger.Debug("point", "scorer", "player", "player", s.PlayerScore, "computer", s.ComputerScore, "rally", g.stats.Rally)
		g.resetBall()
	}
}

// resetBall serves a new ball from the center in a random direction with a
// random colour and no trail.
func (g *Game) resetBall() {
	s := &g.state
	g.stats.point()
	s.BallX = g.cfg.Surface.Width / 2
	s.BallY = g.cfg.Surface.Height / 2
	s.BallVX = g.cfg.Ball.ServeSpeedX * g.randomSign()
	s.BallVY = g.cfg.Ball.ServeSpeedY * g.randomSign()
	s.Hue = math.Floor(g.rng.Float64() * 360)
	s.Trail.Clear()
	g.logger.Debug("serve", "vx", s.BallVX, "vy", s.BallVY, "hue", s.Hue)
}

// clampPaddle keeps a paddle top inside the surface.
func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, 0, g.cfg.Surface.Height-g.cfg.Paddles.Height)
}

// randomSign returns +1 or -1 with equal probability.
func (g *Game) randomSign() float64 {
	if g.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// wrapHue maps a hue onto [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
