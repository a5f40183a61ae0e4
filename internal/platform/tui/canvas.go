package tui

import (
	"math"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// Glyphs used for the terminal rendition.
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// ScreenCanvas draws game-space onto a character Screen, stretching the
// 384x256 field over the whole grid. Text is one cell per rune regardless
// of the requested size.
type ScreenCanvas struct {
	screen *core.Screen
	color  core.Color
}

// NewScreenCanvas wraps s. Everything is drawn in one flat colour.
func NewScreenCanvas(s *core.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s, color: core.ColorBrightWhite}
}

func (c *ScreenCanvas) scaleX() float64 {
	return float64(c.screen.Width()) / pong.GameWidth
}

func (c *ScreenCanvas) scaleY() float64 {
	return float64(c.screen.Height()) / pong.GameHeight
}

// Cell returns the grid cell containing the game-space point (x, y).
func (c *ScreenCanvas) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX())), int(math.Floor(y * c.scaleY()))
}

// Clear implements pong.Canvas.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// FillRect implements pong.Canvas. Any cell the rectangle touches is
// filled, so thin paddles still get a column.
func (c *ScreenCanvas) FillRect(x, y, w, h float64) {
	sx, sy := c.scaleX(), c.scaleY()
	x0 := int(math.Floor(x * sx))
	y0 := int(math.Floor(y * sy))
	x1 := int(math.Ceil((x + w) * sx))
	y1 := int(math.Ceil((y + h) * sy))

	r := core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
	c.screen.DrawRect(r, PaddleChar, c.color)
}

// FillCircle implements pong.Canvas. Cells whose centres fall inside the
// circle are filled; the cell under the centre always is.
func (c *ScreenCanvas) FillCircle(cx, cy, r float64) {
	sx, sy := c.scaleX(), c.scaleY()
	cell := core.Cell{Rune: BallChar, Color: c.color}

	col0 := int(math.Floor((cx - r) * sx))
	col1 := int(math.Floor((cx + r) * sx))
	row0 := int(math.Floor((cy - r) * sy))
	row1 := int(math.Floor((cy + r) * sy))
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			centre := core.V((float64(col)+0.5)/sx, (float64(row)+0.5)/sy)
			if centre.Sub(core.V(cx, cy)).Len() <= r {
				c.screen.SetCell(col, row, cell)
			}
		}
	}

	col, row := c.Cell(cx, cy)
	c.screen.SetCell(col, row, cell)
}

// DrawText implements pong.Canvas.
func (c *ScreenCanvas) DrawText(s string, x, y float64, _ int) {
	col := int(math.Round(x * c.scaleX()))
	row := int(math.Round(y * c.scaleY()))
	c.screen.DrawText(col, row, s, c.color)
}

// MeasureText implements pong.Canvas: one cell per rune, in game units.
func (c *ScreenCanvas) MeasureText(s string, _ int) float64 {
	return float64(len([]rune(s))) / c.scaleX()
}

// Ensure ScreenCanvas implements pong.Canvas
var _ pong.Canvas = (*ScreenCanvas)(nil)
