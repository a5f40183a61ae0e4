package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Ball: BallConfig{
			Speed:           160,
			Radius:          3,
			LaunchHalfAngle: 90,
		},
		Paddle: PaddleConfig{
			Height:         50,
			Speed:          100,
			MaxBounceAngle: 36,
		},
		Display: DisplayConfig{
			PaddleWidth: 3,
			FontSize:    20,
			ScoreInsetX: 30,
			ScoreInsetY: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
