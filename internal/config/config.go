// Package config provides YAML-based game configuration loading and
// difficulty presets for neon-pong.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all tunable parameters of the game.
type PongConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Ball     BallConfig     `yaml:"ball"`
	Computer ComputerConfig `yaml:"computer"`
	Effects  EffectsConfig  `yaml:"effects"`
	Input    InputConfig    `yaml:"input"`
}

// SurfaceConfig defines the logical drawing surface the simulation runs on.
// Front-ends scale it to their actual output.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and the player's keyboard speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance from the side edge
	Speed  float64 `yaml:"speed"`  // Player paddle units per frame
}

// BallConfig defines the ball and its serve velocity.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	ServeSpeedX float64 `yaml:"serve_speed_x"`
	ServeSpeedY float64 `yaml:"serve_speed_y"`
	Spin        float64 `yaml:"spin"` // Vertical speed at the paddle's edge
}

// ComputerConfig defines the computer paddle's tracking heuristic.
type ComputerConfig struct {
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"`
}

// EffectsConfig defines the cosmetic trail and colour cycling.
type EffectsConfig struct {
	TrailLength int     `yaml:"trail_length"`
	TrailGrowth float64 `yaml:"trail_growth"` // Radius added per trail sample
	HueStep     float64 `yaml:"hue_step"`     // Ambient hue change per frame
	HitHueStep  float64 `yaml:"hit_hue_step"` // Hue change on a paddle hit
	Saturation  float64 `yaml:"saturation"`
	Lightness   float64 `yaml:"lightness"`
	GlowBlur    float64 `yaml:"glow_blur"`
	NetDash     float64 `yaml:"net_dash"`
	NetGap      float64 `yaml:"net_gap"`
}

// InputConfig defines front-end input handling.
type InputConfig struct {
	// KeyHoldFrames is how long a terminal key press counts as held.
	// Terminals report presses and repeats but never releases.
	KeyHoldFrames int `yaml:"key_hold_frames"`
}

// Validate checks that the configuration describes a playable game.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface must be positive, got %gx%g", c.Surface.Width, c.Surface.Height))
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddles.Width, c.Paddles.Height))
	}
	if c.Paddles.Height > c.Surface.Height {
		errs = append(errs, fmt.Errorf("paddle height %g exceeds surface height %g", c.Paddles.Height, c.Surface.Height))
	}
	if c.Paddles.Offset < 0 || 2*(c.Paddles.Offset+c.Paddles.Width) > c.Surface.Width {
		errs = append(errs, fmt.Errorf("paddle offset %g does not fit surface width %g", c.Paddles.Offset, c.Surface.Width))
	}
	if c.Ball.Radius <= 0 || 2*c.Ball.Radius > c.Surface.Height {
		errs = append(errs, fmt.Errorf("ball radius %g does not fit surface", c.Ball.Radius))
	}
	if c.Paddles.Speed < 0 || c.Computer.Speed < 0 || c.Computer.DeadZone < 0 {
		errs = append(errs, errors.New("speeds and dead zone must not be negative"))
	}
	if c.Effects.TrailLength < 0 {
		errs = append(errs, fmt.Errorf("trail length must not be negative, got %d", c.Effects.TrailLength))
	}
	if c.Input.KeyHoldFrames < 1 {
		errs = append(errs, fmt.Errorf("key hold frames must be at least 1, got %d", c.Input.KeyHoldFrames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid pong config: %w", errors.Join(errs...))
	}
	return nil
}
