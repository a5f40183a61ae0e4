// Package window is the desktop frontend: an ebiten game loop that polls
// the keyboard, steps the simulation and draws it in a 384x256 window.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/games/pong"
)

// Driver adapts a pong.Game to ebiten.Game.
type Driver struct {
	game   *pong.Game
	source Source
	canvas *Canvas
	logger *log.Logger
}

// NewDriver creates a frame driver reading input from source.
func NewDriver(game *pong.Game, source Source, logger *log.Logger) *Driver {
	return &Driver{
		game:   game,
		source: source,
		canvas: NewCanvas(),
		logger: logger,
	}
}

// Update runs one frame of input and physics.
func (d *Driver) Update() error {
	in, dt, ok := d.source.Next()
	if !ok {
		return ebiten.Termination
	}

	out := d.game.Advance(in, dt)
	if out.Scored() {
		st := d.game.State()
		d.logger.Debug("point scored", "winner", out.Winner, "left", st.Score.Left, "right", st.Score.Right)
	}
	return nil
}

// Draw renders the current state.
func (d *Driver) Draw(screen *ebiten.Image) {
	d.canvas.Target(screen)
	d.game.Render(d.canvas)
}

// Layout fixes the logical screen to game-space.
func (d *Driver) Layout(int, int) (int, int) {
	return int(pong.GameWidth), int(pong.GameHeight)
}

// Run opens the window and blocks until it is closed or source runs out.
func Run(game *pong.Game, source Source, logger *log.Logger) error {
	ebiten.SetWindowSize(int(pong.GameWidth), int(pong.GameHeight))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	syncToDisplay()

	logger.Info("opening window", "width", pong.GameWidth, "height", pong.GameHeight)
	if err := ebiten.RunGame(NewDriver(game, source, logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	logger.Info("window closed", "frames", game.Frames())
	return nil
}

// syncToDisplay makes every Update pair with one Draw at the refresh rate,
// so each iteration is input, physics and render once.
func syncToDisplay() {
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
}

// Ensure Driver implements ebiten.Game
var _ ebiten.Game = (*Driver)(nil)
