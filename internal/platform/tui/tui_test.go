package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/storage"
)

func runeAt(s *core.Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func rowText(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(runeAt(s, x, y))
	}
	return sb.String()
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionLeftUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("S")}, core.ActionLeftDown},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRightUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionRightDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestScreenCanvasCorners(t *testing.T) {
	s := core.NewScreen(96, 32)
	c := NewScreenCanvas(s)

	if col, row := c.Cell(0, 0); col != 0 || row != 0 {
		t.Errorf("Cell(0, 0) = (%d, %d), expected (0, 0)", col, row)
	}
	if col, row := c.Cell(pong.GameWidth-0.001, pong.GameHeight-0.001); col != 95 || row != 31 {
		t.Errorf("Cell(max) = (%d, %d), expected (95, 31)", col, row)
	}
	if col, row := c.Cell(pong.GameWidth/2, pong.GameHeight/2); col != 48 || row != 16 {
		t.Errorf("Cell(centre) = (%d, %d), expected (48, 16)", col, row)
	}
}

func TestScreenCanvasDrawsGame(t *testing.T) {
	s := core.NewScreen(96, 32)
	c := NewScreenCanvas(s)
	g := pong.New(config.DefaultPongConfig(), 1)

	g.Render(c)

	// Both paddles are visible at the grid edges around mid-height
	if runeAt(s, 0, 16) != PaddleChar {
		t.Errorf("left paddle missing, row 16 = %q", rowText(s, 16))
	}
	if runeAt(s, 95, 16) != PaddleChar {
		t.Errorf("right paddle missing, row 16 = %q", rowText(s, 16))
	}
	if runeAt(s, 48, 16) != BallChar {
		t.Errorf("ball missing at centre, row 16 = %q", rowText(s, 16))
	}

	// Scores: left anchored at the inset, right ending at the inset
	scoreRow := rowText(s, 4) // 30 * 32/256 = 3.75 -> 4
	if !strings.Contains(scoreRow, "0") {
		t.Fatalf("score row %q has no scores", scoreRow)
	}
	leftCol := strings.IndexRune(scoreRow, '0')
	rightCol := strings.LastIndex(scoreRow, "0")
	if leftCol != 8 { // 30 * 96/384 = 7.5 -> 8
		t.Errorf("left score at col %d, expected 8", leftCol)
	}
	// 384 - 4 - 30 = 350 game units -> 87.5 -> 88
	if rightCol != 88 {
		t.Errorf("right score at col %d, expected 88", rightCol)
	}
}

func TestScreenCanvasThinPaddleGetsAColumn(t *testing.T) {
	s := core.NewScreen(20, 10)
	c := NewScreenCanvas(s)

	c.FillRect(100, 0, 0.1, pong.GameHeight)
	col, _ := c.Cell(100, 0)
	for row := 0; row < 10; row++ {
		if runeAt(s, col, row) != PaddleChar {
			t.Fatalf("row %d: expected paddle at col %d, got %q", row, col, rowText(s, row))
		}
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	g := pong.New(config.DefaultPongConfig(), 7)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, cfg, log.New(io.Discard))

	start := time.Now()
	next, _ := m.Update(TickMsg(start))
	m = next.(Model)
	if g.Frames() != 1 {
		t.Fatalf("Frames() = %d after first tick, expected 1", g.Frames())
	}
	ballBefore := g.State().Ball.Position

	next, _ = m.Update(TickMsg(start.Add(100 * time.Millisecond)))
	m = next.(Model)
	moved := g.State().Ball.Position.Sub(ballBefore).Len()
	if moved < 15.9 || moved > 16.1 {
		t.Errorf("ball moved %f in 100ms, expected 16", moved)
	}
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	g := pong.New(config.DefaultPongConfig(), 7)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, cfg, log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m = next.(Model)

	now := time.Now()
	next, _ = m.Update(TickMsg(now))
	m = next.(Model)
	next, _ = m.Update(TickMsg(now.Add(50 * time.Millisecond)))
	m = next.(Model)

	if y := g.State().Left.Position.Y; y >= pong.GameHeight/2 {
		t.Errorf("left paddle y = %f, expected it to move up from %f", y, pong.GameHeight/2)
	}

	// Once the hold window has passed the paddle stops
	yHeld := g.State().Left.Position.Y
	next, _ = m.Update(TickMsg(now.Add(time.Second)))
	m = next.(Model)
	next, _ = m.Update(TickMsg(now.Add(time.Second + 50*time.Millisecond)))
	_ = next
	if y := g.State().Left.Position.Y; y != yHeld {
		t.Errorf("left paddle kept moving after release: %f -> %f", yHeld, y)
	}
}

func TestModelQuit(t *testing.T) {
	g := pong.New(config.DefaultPongConfig(), 7)
	m := NewModel(g, core.DefaultConfig(), log.New(io.Discard))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelHelpBar(t *testing.T) {
	g := pong.New(config.DefaultPongConfig(), 7)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, cfg, log.New(io.Discard))

	// The short help takes the bottom row
	if h := m.screen.Height(); h != 23 {
		t.Errorf("field height = %d, expected 23", h)
	}
	view := m.View()
	if !strings.Contains(view, "left up") || !strings.Contains(view, "quit") {
		t.Errorf("View should end with the key help, got:\n%s", view)
	}

	// ? expands to the grouped full help, one row per binding in a column
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = next.(Model)
	if !m.help.ShowAll {
		t.Fatal("? should toggle the full help")
	}
	if h := m.screen.Height(); h != 22 {
		t.Errorf("field height with full help = %d, expected 22", h)
	}
	if g.Frames() != 0 {
		t.Error("toggling help should not advance the game")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 38 {
		t.Errorf("after resize field = %dx%d, expected 100x38", m.screen.Width(), m.screen.Height())
	}
}

func TestReplayTable(t *testing.T) {
	out := ReplayTable([]storage.ReplayInfo{
		{ID: 3, Seed: 99, FrameCount: 1200, Duration: 20 * time.Second},
	})

	for _, want := range []string{"ID", "Frames", "1200", "99", "20s"} {
		if !strings.Contains(out, want) {
			t.Errorf("ReplayTable output missing %q:\n%s", want, out)
		}
	}
}
