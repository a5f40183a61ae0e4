package pong

import "github.com/vovakirdan/pong/internal/core"

// Intents holds each side's movement intent for one frame, each in {-1, 0, +1}.
// Positive moves down the screen.
type Intents struct {
	Left  int
	Right int
}

// Intent combines a pair of opposing keys. Holding both, or neither, is 0.
func Intent(up, down bool) int {
	intent := 0
	if down {
		intent++
	}
	if up {
		intent--
	}
	return intent
}

// IntentsFrom maps the held actions of a frame to per-side intents.
func IntentsFrom(in core.InputFrame) Intents {
	return Intents{
		Left:  Intent(in.Has(core.ActionLeftUp), in.Has(core.ActionLeftDown)),
		Right: Intent(in.Has(core.ActionRightUp), in.Has(core.ActionRightDown)),
	}
}

// Displacement converts an intent into a signed vertical move for dt seconds.
func Displacement(intent int, p Paddle, dt float64) float64 {
	return float64(intent) * p.Speed * dt
}
