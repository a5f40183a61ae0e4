package pong

import (
	"strconv"

	"github.com/vovakirdan/pong/internal/config"
)

// Canvas is a drawing surface in game-space units. Implementations decide
// how units map to pixels or cells and which single foreground colour to use.
type Canvas interface {
	// Clear fills the surface with the background colour.
	Clear()
	// FillRect fills the rectangle with top-left corner (x, y).
	FillRect(x, y, w, h float64)
	// FillCircle fills a circle centred on (cx, cy).
	FillCircle(cx, cy, r float64)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, size int)
	// MeasureText returns the width s would occupy when drawn at size.
	MeasureText(s string, size int) float64
}

// Render draws paddles, ball and scores. It never mutates s.
func Render(s *State, d config.DisplayConfig, c Canvas) {
	c.Clear()

	drawPaddle(c, s.Left, d.PaddleWidth)
	drawPaddle(c, s.Right, d.PaddleWidth)

	c.FillCircle(s.Ball.Position.X, s.Ball.Position.Y, s.Ball.Radius)

	left := strconv.Itoa(s.Score.Left)
	c.DrawText(left, d.ScoreInsetX, d.ScoreInsetY, d.FontSize)

	// Right-aligned so the right edge stays put as digits are added.
	right := strconv.Itoa(s.Score.Right)
	x := GameWidth - c.MeasureText(right, d.FontSize) - d.ScoreInsetX
	c.DrawText(right, x, d.ScoreInsetY, d.FontSize)
}

// drawPaddle draws a thin rectangle centred on the paddle; the drawn width
// is independent of the collision box.
func drawPaddle(c Canvas, p Paddle, width float64) {
	c.FillRect(p.Position.X-width/2, p.Top(), width, p.Height)
}
