// Package config provides YAML-based configuration for the Pong simulation.
package config

import (
	"errors"
	"fmt"
	"math"
)

// PongConfig contains the tunable kinematic and display parameters.
type PongConfig struct {
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Display DisplayConfig `yaml:"display"`
}

// BallConfig defines ball parameters. Angles are in degrees.
type BallConfig struct {
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	LaunchHalfAngle float64 `yaml:"launch_half_angle"`
}

// PaddleConfig defines parameters shared by both paddles. Angles are in degrees.
type PaddleConfig struct {
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"`
}

// DisplayConfig defines presentation-only parameters.
type DisplayConfig struct {
	PaddleWidth float64 `yaml:"paddle_width"`
	FontSize    int     `yaml:"font_size"`
	ScoreInsetX float64 `yaml:"score_inset_x"`
	ScoreInsetY float64 `yaml:"score_inset_y"`
}

// LaunchHalfAngleRad returns the serve cone half-width in radians.
func (b BallConfig) LaunchHalfAngleRad() float64 {
	return b.LaunchHalfAngle * math.Pi / 180
}

// MaxBounceAngleRad returns the max bounce angle in radians.
func (p PaddleConfig) MaxBounceAngleRad() float64 {
	return p.MaxBounceAngle * math.Pi / 180
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports the first out-of-range parameter.
func (c PongConfig) Validate() error {
	switch {
	case c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball.speed must be positive, got %v", ErrInvalid, c.Ball.Speed)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball.radius must be positive, got %v", ErrInvalid, c.Ball.Radius)
	case c.Ball.LaunchHalfAngle < 0 || c.Ball.LaunchHalfAngle > 90:
		return fmt.Errorf("%w: ball.launch_half_angle must be within [0, 90], got %v", ErrInvalid, c.Ball.LaunchHalfAngle)
	case c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle.height must be positive, got %v", ErrInvalid, c.Paddle.Height)
	case c.Paddle.Height > GameHeight:
		return fmt.Errorf("%w: paddle.height must not exceed %v, got %v", ErrInvalid, GameHeight, c.Paddle.Height)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle.speed must be positive, got %v", ErrInvalid, c.Paddle.Speed)
	case c.Paddle.MaxBounceAngle <= 0 || c.Paddle.MaxBounceAngle >= 90:
		return fmt.Errorf("%w: paddle.max_bounce_angle must be within (0, 90), got %v", ErrInvalid, c.Paddle.MaxBounceAngle)
	case c.Display.PaddleWidth <= 0:
		return fmt.Errorf("%w: display.paddle_width must be positive, got %v", ErrInvalid, c.Display.PaddleWidth)
	case c.Display.FontSize <= 0:
		return fmt.Errorf("%w: display.font_size must be positive, got %v", ErrInvalid, c.Display.FontSize)
	}
	return nil
}

// Game-space is a fixed logical rectangle, independent of any display.
const (
	GameWidth  = 384.0
	GameHeight = 256.0
)
