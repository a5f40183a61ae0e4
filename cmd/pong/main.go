// pong is a two-player Pong played on one keyboard.
//
// Usage:
//
//	pong                  - Play in a window (same as "pong play")
//	pong tui              - Play in the terminal
//	pong replays          - List recorded sessions
//	pong replays rm <id>  - Delete a recording
//	pong replay <id>      - Re-simulate a recording and print the result
//
// Global flags:
//
//	--config <path> - Custom config YAML
//	--seed <value>  - RNG seed for serves (0 = random based on time)
//	--db <path>     - Replay database path (default: ~/.pong/replays.db)
//	--record        - Record the session to the replay database
//	--debug         - Verbose logging
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
	flagRecord bool
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball, one keyboard",
	Long: `Pong for two players sharing a keyboard.

Controls:
  W / S       - Left paddle up / down
  Up / Down   - Right paddle up / down

Available commands:
  play     - Play in a window (default)
  tui      - Play in the terminal
  replays  - List recorded sessions
  replay   - Re-simulate or watch a recording

Examples:
  pong
  pong --record --seed 42
  pong tui
  pong replays
  pong replay 3 --window`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Record the session for replay")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger returns the command-line logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
