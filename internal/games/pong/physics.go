package pong

import (
	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// Score holds both sides' points. There is no upper bound.
type Score struct {
	Left  int
	Right int
}

// State is the complete simulation state. It is owned by one frame driver
// and mutated only by Engine.Step.
type State struct {
	Left  Paddle
	Right Paddle
	Ball  Ball
	Score Score
}

// Phase is the round state machine. A round is always in play; scoring is
// the only transition and it leads straight back to a fresh round.
type Phase int

const (
	PhaseInPlay Phase = iota
	PhasePointScored
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhasePointScored {
		return "point-scored"
	}
	return "in-play"
}

// Outcome reports what a single Step did.
type Outcome struct {
	Phase  Phase
	Winner Side // SideNone unless Phase is PhasePointScored
}

// Scored reports whether a point was scored this frame.
func (o Outcome) Scored() bool {
	return o.Phase == PhasePointScored
}

// Engine advances a State by elapsed time and applies the rules.
type Engine struct {
	cfg config.PongConfig
	rng Rand
}

// NewEngine creates an engine that serves balls from rng.
func NewEngine(cfg config.PongConfig, rng Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// NewState returns a fresh state with zero scores.
func (e *Engine) NewState() State {
	var s State
	e.resetRound(&s)
	return s
}

// Step advances s by dt seconds. The order is fixed: paddles, ball, walls,
// left boundary, right boundary. At most one side scores per call.
func (e *Engine) Step(s *State, in Intents, dt float64) Outcome {
	s.Left = movePaddle(s.Left, in.Left, dt)
	s.Right = movePaddle(s.Right, in.Right, dt)

	s.Ball = advanceBall(s.Ball, dt)
	s.Ball = reflectWalls(s.Ball)

	ball := &s.Ball
	if ball.Position.X <= s.Left.Position.X && ball.Velocity.X <= 0 {
		if !s.Left.Covers(ball.Position.Y) {
			return e.award(s, SideRight)
		}
		// The bounce range points rightward already, so no x flip here.
		ball.Velocity = core.FromAngle(BounceAngle(s.Left, ball.Position.Y))
	}

	if ball.Position.X >= s.Right.Position.X && ball.Velocity.X >= 0 {
		if !s.Right.Covers(ball.Position.Y) {
			return e.award(s, SideLeft)
		}
		ball.Velocity = core.FromAngle(BounceAngle(s.Right, ball.Position.Y))
		ball.Velocity.X = -ball.Velocity.X
	}

	return Outcome{Phase: PhaseInPlay}
}

// award scores a point for winner and starts a new round.
func (e *Engine) award(s *State, winner Side) Outcome {
	switch winner {
	case SideLeft:
		s.Score.Left++
	case SideRight:
		s.Score.Right++
	}
	e.resetRound(s)
	return Outcome{Phase: PhasePointScored, Winner: winner}
}

// resetRound recreates both paddles and the ball. Scores are kept.
func (e *Engine) resetRound(s *State) {
	s.Left = NewLeftPaddle(e.cfg.Paddle)
	s.Right = NewRightPaddle(e.cfg.Paddle)
	s.Ball = NewBall(e.rng, e.cfg.Ball)
}

// movePaddle applies an intent and clamps the centre to [h/2, GameHeight-h/2].
func movePaddle(p Paddle, intent int, dt float64) Paddle {
	half := p.Height / 2
	p.Position.Y = core.ClampF(p.Position.Y+Displacement(intent, p, dt), half, GameHeight-half)
	return p
}

// advanceBall renormalises the velocity to Speed and integrates one step.
func advanceBall(b Ball, dt float64) Ball {
	b.Velocity = b.Velocity.Normalized().Scale(b.Speed)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	return b
}

// reflectWalls flips vertical velocity at the top and bottom edges, only
// while the ball is still heading into the wall.
func reflectWalls(b Ball) Ball {
	if b.Position.Y >= GameHeight && b.Velocity.Y >= 0 {
		b.Velocity.Y = -b.Velocity.Y
	}
	if b.Position.Y <= 0 && b.Velocity.Y <= 0 {
		b.Velocity.Y = -b.Velocity.Y
	}
	return b
}

// Lerp maps ballY onto the paddle's extent: 0 at the top edge, 0.5 at the
// centre, 1 at the bottom edge.
func Lerp(p Paddle, ballY float64) float64 {
	return ((ballY-p.Position.Y)/(p.Height/2) + 1) / 2
}

// BounceAngle interpolates the outgoing angle between -MaxBounceAngle and
// +MaxBounceAngle by where the ball struck the paddle.
func BounceAngle(p Paddle, ballY float64) float64 {
	lo, hi := -p.MaxBounceAngle, p.MaxBounceAngle
	return lo + (hi-lo)*Lerp(p, ballY)
}
