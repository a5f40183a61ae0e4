package storage

import (
	"github.com/vovakirdan/pong/internal/games/pong"
)

// flushEvery is how many frames are buffered before a write, about ten
// seconds at 60 Hz.
const flushEvery = 600

// Recorder buffers a game's frames and writes them to a replay in batches.
// It implements pong.Recorder. The first write error is kept and returned
// by Flush and Close; later frames are dropped.
type Recorder struct {
	store    *Store
	replayID int64
	buf      []Frame
	err      error
}

// NewRecorder creates a replay for seed and cfgYAML and returns a recorder for it.
func NewRecorder(store *Store, seed int64, cfgYAML []byte) (*Recorder, error) {
	id, err := store.CreateReplay(seed, cfgYAML)
	if err != nil {
		return nil, err
	}
	return &Recorder{
		store:    store,
		replayID: id,
		buf:      make([]Frame, 0, flushEvery),
	}, nil
}

// ID returns the replay being written.
func (r *Recorder) ID() int64 {
	return r.replayID
}

// RecordFrame implements pong.Recorder.
func (r *Recorder) RecordFrame(dt float64, in pong.Intents) {
	if r.err != nil {
		return
	}
	r.buf = append(r.buf, Frame{DT: dt, Left: in.Left, Right: in.Right})
	if len(r.buf) >= flushEvery {
		//nolint:errcheck // Kept in r.err and surfaced by Close
		r.Flush()
	}
}

// Flush writes buffered frames.
func (r *Recorder) Flush() error {
	if r.err != nil {
		return r.err
	}
	if err := r.store.AppendFrames(r.replayID, r.buf); err != nil {
		r.err = err
		return err
	}
	r.buf = r.buf[:0]
	return nil
}

// Close flushes the remaining frames.
func (r *Recorder) Close() error {
	return r.Flush()
}

// Ensure Recorder implements pong.Recorder
var _ pong.Recorder = (*Recorder)(nil)
