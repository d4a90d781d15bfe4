package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Paddles: PaddleConfig{
			Width:  15,
			Height: 100,
			Offset: 20,
			Speed:  6,
		},
		Ball: BallConfig{
			Radius:      10,
			ServeSpeedX: 6,
			ServeSpeedY: 4,
			Spin:        5,
		},
		Computer: ComputerConfig{
			Speed:    4,
			DeadZone: 15,
		},
		Effects: EffectsConfig{
			TrailLength: 15,
			TrailGrowth: 0.5,
			HueStep:     1,
			HitHueStep:  40,
			Saturation:  0.85,
			Lightness:   0.60,
			GlowBlur:    25,
			NetDash:     10,
			NetGap:      10,
		},
		Input: InputConfig{
			KeyHoldFrames: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
