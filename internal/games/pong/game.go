package pong

import (
	"math/rand"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// Recorder receives every frame's elapsed time and intents, in order.
type Recorder interface {
	RecordFrame(dt float64, in Intents)
}

// Game is one running session: state, engine and frame counter. A frame
// driver owns it exclusively.
type Game struct {
	cfg      config.PongConfig
	engine   *Engine
	state    State
	frames   uint64
	recorder Recorder
}

// New creates a game whose serves are drawn from a generator seeded with seed.
func New(cfg config.PongConfig, seed int64) *Game {
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a game with an explicit random source.
func NewWithRand(cfg config.PongConfig, rng Rand) *Game {
	engine := NewEngine(cfg, rng)
	return &Game{
		cfg:    cfg,
		engine: engine,
		state:  engine.NewState(),
	}
}

// Title returns the display name, also used as the window title.
func (g *Game) Title() string {
	return "Pong"
}

// SetRecorder attaches r to receive every subsequent frame. nil detaches.
func (g *Game) SetRecorder(r Recorder) {
	g.recorder = r
}

// Frame runs the input mapper and the physics engine for one frame.
func (g *Game) Frame(in core.InputFrame, dt float64) Outcome {
	return g.Advance(IntentsFrom(in), dt)
}

// Advance runs the physics engine with already-mapped intents.
func (g *Game) Advance(in Intents, dt float64) Outcome {
	if g.recorder != nil {
		g.recorder.RecordFrame(dt, in)
	}
	g.frames++
	return g.engine.Step(&g.state, in, dt)
}

// Render draws the current state onto c.
func (g *Game) Render(c Canvas) {
	Render(&g.state, g.cfg.Display, c)
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state
}

// Frames returns the number of frames simulated so far.
func (g *Game) Frames() uint64 {
	return g.frames
}
