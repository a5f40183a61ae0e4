package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

const eps = 1e-9

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestEngine(seed int64) (*Engine, State) {
	e := NewEngine(config.DefaultPongConfig(), rand.New(rand.NewSource(seed)))
	return e, e.NewState()
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewBallCentered(t *testing.T) {
	cfg := config.DefaultPongConfig()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		b := NewBall(rng, cfg.Ball)
		if b.Position != core.V(GameWidth/2, GameHeight/2) {
			t.Fatalf("NewBall().Position = %v, expected (192, 128)", b.Position)
		}
		if !approx(b.Velocity.Len(), 1) {
			t.Fatalf("NewBall().Velocity should be unit length, got %f", b.Velocity.Len())
		}
		if b.Speed != 160 || b.Radius != 3 {
			t.Fatalf("NewBall() speed/radius = %v/%v, expected 160/3", b.Speed, b.Radius)
		}
	}
}

func TestNewBallLaunchDirection(t *testing.T) {
	cfg := config.DefaultPongConfig()

	tests := []struct {
		name  string
		draws []float64
		want  core.Vec2
	}{
		{"horizontal, served left", []float64{0.5, 0.1}, core.V(-1, 0)},
		{"horizontal, served right", []float64{0.5, 0.9}, core.V(1, 0)},
		{"straight up edge of cone", []float64{0, 0.9}, core.V(0, -1)},
		{"halfway down, served left", []float64{0.75, 0.2}, core.V(-math.Cos(math.Pi/4), math.Sin(math.Pi/4))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(&seqRand{vals: tc.draws}, cfg.Ball)
			if !approx(b.Velocity.X, tc.want.X) || !approx(b.Velocity.Y, tc.want.Y) {
				t.Errorf("Velocity = %v, expected %v", b.Velocity, tc.want)
			}
		})
	}
}

func TestNewBallServeDistribution(t *testing.T) {
	cfg := config.DefaultPongConfig()
	rng := rand.New(rand.NewSource(99))
	half := cfg.Ball.LaunchHalfAngleRad()

	const n = 10000
	leftward := 0
	for i := 0; i < n; i++ {
		b := NewBall(rng, cfg.Ball)
		if b.Velocity.X < 0 {
			leftward++
		}
		angle := math.Atan2(b.Velocity.Y, math.Abs(b.Velocity.X))
		if math.Abs(angle) > half+eps {
			t.Fatalf("serve angle %f outside cone of %f", angle, half)
		}
	}

	frac := float64(leftward) / n
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("leftward serve fraction = %f, expected about 0.5", frac)
	}
}

func TestNewPaddles(t *testing.T) {
	cfg := config.DefaultPongConfig()
	l := NewLeftPaddle(cfg.Paddle)
	r := NewRightPaddle(cfg.Paddle)

	if l.Position != core.V(0, 128) {
		t.Errorf("left paddle at %v, expected (0, 128)", l.Position)
	}
	if r.Position != core.V(384, 128) {
		t.Errorf("right paddle at %v, expected (384, 128)", r.Position)
	}
	if l.Height != r.Height || l.Speed != r.Speed || l.MaxBounceAngle != r.MaxBounceAngle {
		t.Errorf("paddle defaults differ: %+v vs %+v", l, r)
	}
	if !approx(l.MaxBounceAngle, 2*math.Pi/10) {
		t.Errorf("MaxBounceAngle = %f, expected TAU/10", l.MaxBounceAngle)
	}
}

func TestIntent(t *testing.T) {
	tests := []struct {
		up, down bool
		expected int
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}

	for _, tc := range tests {
		if got := Intent(tc.up, tc.down); got != tc.expected {
			t.Errorf("Intent(%v, %v) = %d, expected %d", tc.up, tc.down, got, tc.expected)
		}
	}
}

func TestIntentsFrom(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLeftDown)
	in.Set(core.ActionRightUp)
	in.Set(core.ActionRightDown)

	got := IntentsFrom(in)
	if got != (Intents{Left: 1, Right: 0}) {
		t.Errorf("IntentsFrom() = %+v, expected {Left:1 Right:0}", got)
	}
}

func TestDisplacement(t *testing.T) {
	p := NewLeftPaddle(config.DefaultPongConfig().Paddle)
	if got := Displacement(-1, p, 0.5); got != -50 {
		t.Errorf("Displacement(-1, speed 100, 0.5) = %f, expected -50", got)
	}
	if got := Displacement(0, p, 10); got != 0 {
		t.Errorf("Displacement(0, ...) = %f, expected 0", got)
	}
}

func TestPaddlesStayInBounds(t *testing.T) {
	e, s := newTestEngine(3)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 5000; i++ {
		in := Intents{Left: rng.Intn(3) - 1, Right: rng.Intn(3) - 1}
		dt := rng.Float64() * 0.5 // includes very long frames
		e.Step(&s, in, dt)

		for _, p := range []Paddle{s.Left, s.Right} {
			half := p.Height / 2
			if p.Position.Y < half || p.Position.Y > GameHeight-half {
				t.Fatalf("frame %d: paddle y %f outside [%f, %f]", i, p.Position.Y, half, GameHeight-half)
			}
		}
	}
}

func TestPaddleClampsAtEdges(t *testing.T) {
	e, s := newTestEngine(1)
	s.Ball.Position = core.V(GameWidth/2, GameHeight/2)
	s.Ball.Velocity = core.V(0, 1)

	e.Step(&s, Intents{Left: -1, Right: 1}, 10)
	if s.Left.Position.Y != 25 {
		t.Errorf("left paddle y = %f, expected clamp to 25", s.Left.Position.Y)
	}
	if s.Right.Position.Y != GameHeight-25 {
		t.Errorf("right paddle y = %f, expected clamp to %f", s.Right.Position.Y, GameHeight-25)
	}
}

func TestAdvanceBallRenormalizes(t *testing.T) {
	tests := []core.Vec2{
		core.V(3, 4),
		core.V(1e6, -1e6),
		core.V(-1e-4, 2e-4),
		core.V(0, 1),
	}

	for _, v := range tests {
		b := Ball{Position: core.V(100, 100), Velocity: v, Speed: 160}
		got := advanceBall(b, 0.016)
		if !approx(got.Velocity.Len(), 160) {
			t.Errorf("velocity %v: magnitude after advance = %f, expected 160", v, got.Velocity.Len())
		}
		moved := got.Position.Sub(b.Position).Len()
		if !approx(moved, 160*0.016) {
			t.Errorf("velocity %v: moved %f, expected %f", v, moved, 160*0.016)
		}
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		vel   core.Vec2
	}{
		{"bottom wall", core.V(GameWidth/2, GameHeight-1), core.V(0, 1)},
		{"top wall", core.V(GameWidth/2, 1), core.V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, s := newTestEngine(1)
			s.Ball.Position = tc.start
			s.Ball.Velocity = tc.vel

			e.Step(&s, Intents{}, 0.01)
			if math.Signbit(s.Ball.Velocity.Y) == math.Signbit(tc.vel.Y) {
				t.Fatalf("velocity.y should flip at the wall, got %v", s.Ball.Velocity)
			}
			flipped := s.Ball.Velocity.Y
			beforeY := s.Ball.Position.Y

			// Next step moves away from the wall and must not flip again
			e.Step(&s, Intents{}, 0.01)
			if math.Signbit(s.Ball.Velocity.Y) != math.Signbit(flipped) {
				t.Errorf("velocity.y flipped twice in succession: %v", s.Ball.Velocity)
			}
			if math.Abs(s.Ball.Position.Y-GameHeight/2) >= math.Abs(beforeY-GameHeight/2) {
				t.Errorf("ball should move away from the wall: %f -> %f", beforeY, s.Ball.Position.Y)
			}
		})
	}
}

func TestBounceAngle(t *testing.T) {
	p := NewLeftPaddle(config.DefaultPongConfig().Paddle)
	max := p.MaxBounceAngle

	tests := []struct {
		name      string
		ballY     float64
		wantLerp  float64
		wantAngle float64
	}{
		{"dead centre", 128, 0.5, 0},
		{"top edge", 128 - 25, 0, -max},
		{"bottom edge", 128 + 25, 1, max},
		{"quarter down", 128 + 12.5, 0.75, max / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(p, tc.ballY); !approx(got, tc.wantLerp) {
				t.Errorf("Lerp() = %f, expected %f", got, tc.wantLerp)
			}
			if got := BounceAngle(p, tc.ballY); !approx(got, tc.wantAngle) {
				t.Errorf("BounceAngle() = %f, expected %f", got, tc.wantAngle)
			}
		})
	}
}

func TestLeftPaddleReturn(t *testing.T) {
	e, s := newTestEngine(1)
	s.Ball.Position = core.V(1, 128)
	s.Ball.Velocity = core.V(-1, 0)

	out := e.Step(&s, Intents{}, 0.01)

	if out.Scored() {
		t.Fatalf("centre hit should not score, got %+v", out)
	}
	if s.Ball.Velocity != core.V(1, 0) {
		t.Errorf("velocity after centre hit = %v, expected (1, 0)", s.Ball.Velocity)
	}
	if s.Score != (Score{}) {
		t.Errorf("score changed on a return: %+v", s.Score)
	}
}

func TestLeftPaddleReturnIsNotMirrored(t *testing.T) {
	e, s := newTestEngine(1)
	s.Ball.Position = core.V(1, s.Left.Top())
	s.Ball.Velocity = core.V(-1, 0)

	e.Step(&s, Intents{}, 0.01)

	max := s.Left.MaxBounceAngle
	want := core.V(math.Cos(-max), math.Sin(-max))
	if !approx(s.Ball.Velocity.X, want.X) || !approx(s.Ball.Velocity.Y, want.Y) {
		t.Errorf("velocity after top-edge hit = %v, expected %v", s.Ball.Velocity, want)
	}
}

func TestRightPaddleReturnIsMirrored(t *testing.T) {
	e, s := newTestEngine(1)
	s.Ball.Position = core.V(GameWidth-1, 128+12.5)
	s.Ball.Velocity = core.V(1, 0)

	out := e.Step(&s, Intents{}, 0.01)
	if out.Scored() {
		t.Fatalf("hit should not score, got %+v", out)
	}

	angle := s.Right.MaxBounceAngle / 2
	want := core.V(-math.Cos(angle), math.Sin(angle))
	if !approx(s.Ball.Velocity.X, want.X) || !approx(s.Ball.Velocity.Y, want.Y) {
		t.Errorf("velocity after right hit = %v, expected %v", s.Ball.Velocity, want)
	}
}

func TestLeftMissScoresForRight(t *testing.T) {
	e, s := newTestEngine(1)
	// Move paddles away from the start so a full reset is observable
	e.Step(&s, Intents{Left: 1, Right: -1}, 0.2)

	s.Ball.Position = core.V(1, 400)
	s.Ball.Velocity = core.V(-1, 0)

	out := e.Step(&s, Intents{}, 0.01)

	if out != (Outcome{Phase: PhasePointScored, Winner: SideRight}) {
		t.Fatalf("Step() = %+v, expected right to score", out)
	}
	if s.Score != (Score{Left: 0, Right: 1}) {
		t.Errorf("score = %+v, expected 0-1", s.Score)
	}
	assertFreshRound(t, s)
}

func TestRightMissScoresForLeft(t *testing.T) {
	e, s := newTestEngine(1)
	s.Ball.Position = core.V(GameWidth-1, 10)
	s.Ball.Velocity = core.V(1, 0)

	out := e.Step(&s, Intents{}, 0.01)

	if out != (Outcome{Phase: PhasePointScored, Winner: SideLeft}) {
		t.Fatalf("Step() = %+v, expected left to score", out)
	}
	if s.Score != (Score{Left: 1, Right: 0}) {
		t.Errorf("score = %+v, expected 1-0", s.Score)
	}
	assertFreshRound(t, s)
}

func assertFreshRound(t *testing.T, s State) {
	t.Helper()
	if s.Ball.Position != core.V(GameWidth/2, GameHeight/2) {
		t.Errorf("ball after reset at %v, expected centre", s.Ball.Position)
	}
	if s.Left.Position != core.V(0, GameHeight/2) {
		t.Errorf("left paddle after reset at %v, expected (0, 128)", s.Left.Position)
	}
	if s.Right.Position != core.V(GameWidth, GameHeight/2) {
		t.Errorf("right paddle after reset at %v, expected (384, 128)", s.Right.Position)
	}
}

func TestAtMostOnePointPerFrame(t *testing.T) {
	e, s := newTestEngine(11)
	rng := rand.New(rand.NewSource(12))

	points := 0
	for i := 0; i < 20000; i++ {
		before := s.Score
		in := Intents{Left: rng.Intn(3) - 1, Right: rng.Intn(3) - 1}
		out := e.Step(&s, in, rng.Float64()*0.1)

		gained := (s.Score.Left - before.Left) + (s.Score.Right - before.Right)
		if gained > 1 {
			t.Fatalf("frame %d: %d points in one frame", i, gained)
		}
		if out.Scored() != (gained == 1) {
			t.Fatalf("frame %d: outcome %+v disagrees with score change %d", i, out, gained)
		}
		points += gained
	}

	if points == 0 {
		t.Error("expected some points over 20000 random frames")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultPongConfig()
	g1 := New(cfg, 12345)
	g2 := New(cfg, 12345)

	inputs := rand.New(rand.NewSource(1))
	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		switch inputs.Intn(4) {
		case 0:
			in.Set(core.ActionLeftUp)
		case 1:
			in.Set(core.ActionLeftDown)
		case 2:
			in.Set(core.ActionRightUp)
		case 3:
			in.Set(core.ActionRightDown)
		}
		dt := 1.0 / 60
		g1.Frame(in, dt)
		g2.Frame(in, dt)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Determinism failed:\n%v\n%v", g1.Snapshot(), g2.Snapshot())
	}
	if g1.Frames() != 3000 {
		t.Errorf("Frames() = %d, expected 3000", g1.Frames())
	}
}

type frameLog struct {
	dts     []float64
	intents []Intents
}

func (f *frameLog) RecordFrame(dt float64, in Intents) {
	f.dts = append(f.dts, dt)
	f.intents = append(f.intents, in)
}

func TestRecorderSeesEveryFrame(t *testing.T) {
	g := New(config.DefaultPongConfig(), 5)
	log := &frameLog{}
	g.SetRecorder(log)

	in := core.NewInputFrame()
	in.Set(core.ActionLeftUp)
	g.Frame(in, 0.02)
	g.Frame(core.NewInputFrame(), 0.03)

	g.SetRecorder(nil)
	g.Frame(in, 0.04)

	if len(log.dts) != 2 {
		t.Fatalf("recorded %d frames, expected 2", len(log.dts))
	}
	if log.dts[0] != 0.02 || log.dts[1] != 0.03 {
		t.Errorf("recorded dts = %v", log.dts)
	}
	if log.intents[0] != (Intents{Left: -1}) || log.intents[1] != (Intents{}) {
		t.Errorf("recorded intents = %+v", log.intents)
	}
}
