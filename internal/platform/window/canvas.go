package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pong/internal/games/pong"
)

// Debug font metrics of ebitenutil.DebugPrint, in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	background = color.Black
	foreground = color.White
)

// Canvas draws onto an ebiten image whose logical size is game-space,
// so one unit is one pixel.
type Canvas struct {
	dst   *ebiten.Image
	texts map[string]*ebiten.Image // rendered strings at 1x
}

// NewCanvas creates a canvas. Target sets the image drawn to.
func NewCanvas() *Canvas {
	return &Canvas{texts: make(map[string]*ebiten.Image)}
}

// Target points the canvas at dst for the current frame.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Clear implements pong.Canvas.
func (c *Canvas) Clear() {
	c.dst.Fill(background)
}

// FillRect implements pong.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), foreground, false)
}

// FillCircle implements pong.Canvas.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), foreground, true)
}

// DrawText implements pong.Canvas. The debug font is drawn once at its
// native size and scaled up to size.
func (c *Canvas) DrawText(s string, x, y float64, size int) {
	img := c.text(s)
	scale := textScale(size)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(img, op)
}

// MeasureText implements pong.Canvas.
func (c *Canvas) MeasureText(s string, size int) float64 {
	return MeasureText(s, size)
}

func (c *Canvas) text(s string) *ebiten.Image {
	if img, ok := c.texts[s]; ok {
		return img
	}
	n := len([]rune(s))
	img := ebiten.NewImage(max(1, n*glyphWidth), glyphHeight)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	c.texts[s] = img
	return img
}

// MeasureText is the width of s in the scaled debug font.
func MeasureText(s string, size int) float64 {
	return float64(len([]rune(s))*glyphWidth) * textScale(size)
}

func textScale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / glyphHeight
}

// Ensure Canvas implements pong.Canvas
var _ pong.Canvas = (*Canvas)(nil)
