// Package storage provides SQLite-based persistence for replay recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A recording holds a session's inputs only: the RNG seed, the config it
// ran with and every frame's elapsed time and intents. Scores are never
// stored; they fall out of re-simulating the recording.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrReplayNotFound is returned when a replay ID does not exist.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replays.
type Store struct {
	db *sql.DB
}

// Frame is one recorded frame of input.
type Frame struct {
	DT    float64 // elapsed seconds
	Left  int     // left intent, -1..1
	Right int     // right intent, -1..1
}

// ReplayInfo describes a recording without its frames.
type ReplayInfo struct {
	ID         int64
	Seed       int64
	FrameCount int
	Duration   time.Duration // sum of recorded frame times
	CreatedAt  time.Time
}

// Replay is a complete recording.
type Replay struct {
	ReplayInfo
	Config []byte // YAML the session ran with
	Frames []Frame
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			config TEXT NOT NULL,
			frame_count INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id INTEGER NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			dt REAL NOT NULL,
			left_intent INTEGER NOT NULL,
			right_intent INTEGER NOT NULL,
			PRIMARY KEY (replay_id, idx)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateReplay starts a new, empty recording.
// Returns the ID of the inserted record.
func (s *Store) CreateReplay(seed int64, cfgYAML []byte) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO replays (seed, config) VALUES (?, ?)",
		seed, string(cfgYAML),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// AppendFrames adds frames to the end of a recording in one transaction.
func (s *Store) AppendFrames(replayID int64, frames []Frame) (err error) {
	if len(frames) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			//nolint:errcheck // Rollback after a failed statement
			tx.Rollback()
		}
	}()

	var start int
	if err = tx.QueryRow("SELECT frame_count FROM replays WHERE id = ?", replayID).Scan(&start); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReplayNotFound
		}
		return fmt.Errorf("storage: cannot read frame count: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_frames (replay_id, idx, dt, left_intent, right_intent) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	var total float64
	for i, f := range frames {
		if _, err = stmt.Exec(replayID, start+i, f.DT, f.Left, f.Right); err != nil {
			return fmt.Errorf("storage: cannot save frame %d: %w", start+i, err)
		}
		total += f.DT
	}

	if _, err = tx.Exec(
		"UPDATE replays SET frame_count = frame_count + ?, duration_secs = duration_secs + ? WHERE id = ?",
		len(frames), total, replayID,
	); err != nil {
		return fmt.Errorf("storage: cannot update replay: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit frames: %w", err)
	}
	return nil
}

// Replay loads a recording and all of its frames in order.
func (s *Store) Replay(id int64) (*Replay, error) {
	var r Replay
	var cfg string
	var secs float64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, config, frame_count, duration_secs, created_at
		 FROM replays WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &cfg, &r.FrameCount, &secs, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReplayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.Config = []byte(cfg)
	r.Duration = secondsToDuration(secs)
	r.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT dt, left_intent, right_intent
		 FROM replay_frames
		 WHERE replay_id = ?
		 ORDER BY idx`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	r.Frames = make([]Frame, 0, r.FrameCount)
	for rows.Next() {
		var f Frame
		if err := rows.Scan(&f.DT, &f.Left, &f.Right); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		r.Frames = append(r.Frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// ListReplays returns the most recent recordings, newest first.
func (s *Store) ListReplays(limit int) ([]ReplayInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, frame_count, duration_secs, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var infos []ReplayInfo
	for rows.Next() {
		var info ReplayInfo
		var secs float64
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Seed, &info.FrameCount, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.Duration = secondsToDuration(secs)
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteReplay removes a recording and its frames. Either both go or
// neither does.
func (s *Store) DeleteReplay(id int64) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			//nolint:errcheck // Rollback after a failed statement
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM replay_frames WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}

	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, nerr := res.RowsAffected(); nerr == nil && n == 0 {
		err = ErrReplayNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
