package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/storage"
)

// Source supplies one frame of input per Update. ok is false once the
// source is exhausted, which ends the run.
type Source interface {
	Next() (in pong.Intents, dt float64, ok bool)
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Stopwatch measures the time between successive Lap calls. The first
// lap is zero. Long gaps are not clamped.
type Stopwatch struct {
	clock Clock
	last  time.Time
}

// NewStopwatch creates a stopwatch reading from clock.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Lap returns the seconds elapsed since the previous Lap.
func (s *Stopwatch) Lap() float64 {
	now := s.clock.Now()
	var dt float64
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	s.last = now
	return dt
}

// Keyboard reads W/S and the arrow keys each frame.
type Keyboard struct {
	watch *Stopwatch
}

// NewKeyboard creates the live input source, timed by clock.
func NewKeyboard(clock Clock) *Keyboard {
	return &Keyboard{watch: NewStopwatch(clock)}
}

// Next implements Source. It never runs out.
func (k *Keyboard) Next() (pong.Intents, float64, bool) {
	in := pong.Intents{
		Left:  pong.Intent(ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyS)),
		Right: pong.Intent(ebiten.IsKeyPressed(ebiten.KeyArrowUp), ebiten.IsKeyPressed(ebiten.KeyArrowDown)),
	}
	return in, k.watch.Lap(), true
}

// Playback feeds recorded frames back with their original timing.
type Playback struct {
	frames []storage.Frame
	pos    int
}

// NewPlayback creates a source over frames.
func NewPlayback(frames []storage.Frame) *Playback {
	return &Playback{frames: frames}
}

// Next implements Source.
func (p *Playback) Next() (pong.Intents, float64, bool) {
	if p.pos >= len(p.frames) {
		return pong.Intents{}, 0, false
	}
	f := p.frames[p.pos]
	p.pos++
	return pong.Intents{Left: f.Left, Right: f.Right}, f.DT, true
}
