// Package pong implements a two-player Pong simulation: two paddles, a ball
// and a pair of scores in a fixed 384x256 game-space. It has no platform
// dependencies; frontends feed it input frames and elapsed time and draw it
// through a Canvas.
package pong

import (
	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// Game-space dimensions.
const (
	GameWidth  = config.GameWidth
	GameHeight = config.GameHeight
)

// Rand is the random source used to serve new balls.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Side identifies a paddle.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Ball is the moving ball. Velocity is a direction; it is renormalised and
// scaled by Speed at the start of every frame.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	Speed    float64 // units per second
	Radius   float64 // display only
}

// Paddle is one side's paddle. Position.Y is the vertical centre.
type Paddle struct {
	Position       core.Vec2
	Height         float64
	Speed          float64 // units per second
	MaxBounceAngle float64 // radians
}

// Top returns the y of the paddle's upper collision edge.
func (p Paddle) Top() float64 {
	return p.Position.Y - p.Height/2
}

// Bottom returns the y of the paddle's lower collision edge.
func (p Paddle) Bottom() float64 {
	return p.Position.Y + p.Height/2
}

// Covers reports whether y lies within the paddle's vertical extent, edges included.
func (p Paddle) Covers(y float64) bool {
	return p.Top() <= y && y <= p.Bottom()
}

// NewBall serves a ball from the centre of game-space. The direction is
// drawn uniformly within LaunchHalfAngle of +X, then mirrored to -X on a
// coin flip.
func NewBall(rng Rand, cfg config.BallConfig) Ball {
	half := cfg.LaunchHalfAngleRad()
	angle := rng.Float64()*2*half - half
	dir := core.FromAngle(angle)
	if rng.Float64() < 0.5 {
		dir.X = -dir.X
	}

	return Ball{
		Position: core.V(GameWidth/2, GameHeight/2),
		Velocity: dir,
		Speed:    cfg.Speed,
		Radius:   cfg.Radius,
	}
}

// NewLeftPaddle returns the left paddle at its starting position.
func NewLeftPaddle(cfg config.PaddleConfig) Paddle {
	return newPaddle(0, cfg)
}

// NewRightPaddle returns the right paddle at its starting position.
func NewRightPaddle(cfg config.PaddleConfig) Paddle {
	return newPaddle(GameWidth, cfg)
}

func newPaddle(x float64, cfg config.PaddleConfig) Paddle {
	return Paddle{
		Position:       core.V(x, GameHeight/2),
		Height:         cfg.Height,
		Speed:          cfg.Speed,
		MaxBounceAngle: cfg.MaxBounceAngleRad(),
	}
}
