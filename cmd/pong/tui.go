package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/platform/tui"
)

var (
	flagFPS     int
	flagLogFile string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The field is stretched over the whole window.

Terminals report key presses but not releases, so a paddle keeps moving
briefly after its key is let go.

Controls:
  W / S       - Left paddle up / down
  Up / Down   - Right paddle up / down
  Q / Ctrl+C  - Quit

Examples:
  pong tui
  pong tui --fps 30
  pong tui --debug --log-file pong.log`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is taken by the game)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out)

	s, err := newSession(logger)
	if err != nil {
		return err
	}
	defer s.close(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	return tui.Run(s.game, cfg, logger)
}
