package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/storage"
)

// session is a configured game plus its optional recording.
type session struct {
	game     *pong.Game
	store    *storage.Store
	recorder *storage.Recorder
}

// newSession loads the config, seeds the game and, with --record, attaches
// a recorder. A recording failure is logged and play continues without it.
func newSession(logger *log.Logger) (*session, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &session{game: pong.New(cfg, seed)}
	logger.Debug("session created", "seed", seed, "config", flagConfig)

	if !flagRecord {
		return s, nil
	}

	cfgYAML, err := config.Encode(cfg)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database, not recording", "error", err)
		return s, nil
	}
	rec, err := storage.NewRecorder(store, seed, cfgYAML)
	if err != nil {
		store.Close()
		logger.Warn("could not start recording", "error", err)
		return s, nil
	}

	s.store = store
	s.recorder = rec
	s.game.SetRecorder(rec)
	logger.Info("recording", "replay", rec.ID(), "seed", seed)
	return s, nil
}

// close flushes the recording, if any.
func (s *session) close(logger *log.Logger) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Close(); err != nil {
		logger.Error("recording incomplete", "replay", s.recorder.ID(), "error", err)
	} else {
		logger.Info("recording saved", "replay", s.recorder.ID(), "frames", s.game.Frames())
	}
	s.store.Close()
}
