package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/platform/tui"
	"github.com/vovakirdan/pong/internal/platform/window"
	"github.com/vovakirdan/pong/internal/storage"
)

var (
	flagLimit  int
	flagWindow bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Show the most recent recordings, newest first.

Sessions are recorded with --record. A recording keeps the seed, the
config and every frame's input, never the score.

Examples:
  pong replays
  pong replays --limit 5
  pong replays rm 3`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replaysRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysRm,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recording",
	Long: `Re-run a recording from its seed and inputs and print the final state.
With --window the recording is played back in a window at its original pace.

Examples:
  pong replay 3
  pong replay 3 --window`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of recordings to show")
	replayCmd.Flags().BoolVar(&flagWindow, "window", false, "Play the recording back in a window")

	replaysCmd.AddCommand(replaysRmCmd)
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.ListReplays(flagLimit)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Run 'pong --record' to record a session.")
		return nil
	}

	fmt.Println(tui.ReplayTable(infos))
	fmt.Println()
	fmt.Println("Run 'pong replay <id>' to re-simulate a recording.")
	return nil
}

func runReplaysRm(_ *cobra.Command, args []string) error {
	id, err := parseReplayID(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReplay(id); err != nil {
		return err
	}
	fmt.Printf("Deleted recording %d\n", id)
	return nil
}

func runReplay(_ *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	id, err := parseReplayID(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	rep, err := store.Replay(id)
	store.Close()
	if errors.Is(err, storage.ErrReplayNotFound) {
		return fmt.Errorf("no recording with id %d; run 'pong replays' to list them", id)
	}
	if err != nil {
		return err
	}

	cfg, err := config.Parse(rep.Config)
	if err != nil {
		return fmt.Errorf("recording %d: %w", id, err)
	}
	game := pong.New(cfg, rep.Seed)
	logger.Debug("replaying", "replay", id, "seed", rep.Seed, "frames", len(rep.Frames))

	if flagWindow {
		if err := window.Run(game, window.NewPlayback(rep.Frames), logger); err != nil {
			logger.Fatal("cannot run window", "error", err)
		}
	} else {
		for _, f := range rep.Frames {
			game.Advance(pong.Intents{Left: f.Left, Right: f.Right}, f.DT)
		}
	}

	st := game.State()
	fmt.Printf("Recording %d (%s, seed %d)\n", id, rep.Duration, rep.Seed)
	fmt.Printf("Score: %d - %d\n", st.Score.Left, st.Score.Right)
	fmt.Println(game.Snapshot())
	return nil
}

func parseReplayID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid replay id %q", s)
	}
	return id, nil
}
