package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a 384x256 window titled "Pong" and play until it is closed.

Examples:
  pong play
  pong play --seed 42 --record
  pong play --config ./fast-ball.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	s, err := newSession(logger)
	if err != nil {
		logger.Error("cannot start", "error", err)
		return err
	}

	runErr := window.Run(s.game, window.NewKeyboard(window.SystemClock()), logger)
	s.close(logger)

	if runErr != nil {
		// No window means no game
		logger.Fatal("cannot run window", "error", runErr)
	}
	return nil
}
