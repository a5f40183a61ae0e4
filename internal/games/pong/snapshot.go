package pong

import "fmt"

// Snapshot is a flat, printable summary of a game at one frame.
// Replays compare snapshots to confirm a re-simulation matches.
type Snapshot struct {
	Frame      uint64
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	LeftY      float64
	RightY     float64
	LeftScore  int
	RightScore int
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Frame:      g.frames,
		BallX:      s.Ball.Position.X,
		BallY:      s.Ball.Position.Y,
		BallVX:     s.Ball.Velocity.X,
		BallVY:     s.Ball.Velocity.Y,
		LeftY:      s.Left.Position.Y,
		RightY:     s.Right.Position.Y,
		LeftScore:  s.Score.Left,
		RightScore: s.Score.Right,
	}
}

// String formats the snapshot on one line.
func (s Snapshot) String() string {
	return fmt.Sprintf("frame=%d score=%d-%d ball=(%.2f,%.2f) vel=(%.3f,%.3f) paddles=(%.2f,%.2f)",
		s.Frame, s.LeftScore, s.RightScore, s.BallX, s.BallY, s.BallVX, s.BallVY, s.LeftY, s.RightY)
}
