package pong

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-pong/internal/config"
)

// State is the complete mutable state of one game.
// It is owned by Game; front-ends only read copies of it.
type State struct {
	PlayerY   float64 // Top of the player (left) paddle
	ComputerY float64 // Top of the computer (right) paddle

	BallX  float64 // Ball center
	BallY  float64
	BallVX float64 // Per-frame displacement
	BallVY float64

	PlayerScore   int
	ComputerScore int

	Hue   float64 // Ball colour hue in [0, 360)
	Trail Trail

	UpPressed   bool
	DownPressed bool
}

// Validate checks the state invariants against a configuration.
func (s State) Validate(cfg config.PongConfig) error {
	var errs []error
	maxY := cfg.Surface.Height - cfg.Paddles.Height
	if s.PlayerY < 0 || s.PlayerY > maxY {
		errs = append(errs, fmt.Errorf("player paddle y %g outside [0, %g]", s.PlayerY, maxY))
	}
	if s.ComputerY < 0 || s.ComputerY > maxY {
		errs = append(errs, fmt.Errorf("computer paddle y %g outside [0, %g]", s.ComputerY, maxY))
	}
	if s.PlayerScore < 0 || s.ComputerScore < 0 {
		errs = append(errs, fmt.Errorf("negative score %d-%d", s.PlayerScore, s.ComputerScore))
	}
	if s.Hue < 0 || s.Hue >= 360 {
		errs = append(errs, fmt.Errorf("hue %g outside [0, 360)", s.Hue))
	}
	if s.Trail.Len() > cfg.Effects.TrailLength {
		errs = append(errs, fmt.Errorf("trail holds %d samples, limit %d", s.Trail.Len(), cfg.Effects.TrailLength))
	}
	if len(errs) > 0 {
		return fmt.Errorf("pong: invalid state: %w", errors.Join(errs...))
	}
	return nil
}
