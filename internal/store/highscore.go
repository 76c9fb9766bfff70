// Package store persists what outlives a session: the high score and an archive of
// finished sessions.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"chosenoffset.com/serpent/internal/engine"
)

// HighScoreRecord is the on-disk high score.
type HighScoreRecord struct {
	HighScore int       `json:"high_score"`
	Session   int       `json:"session,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// HighScores is a JSON-file backed high score.
type HighScores struct {
	mu     sync.Mutex
	path   string
	record HighScoreRecord
}

// OpenHighScores loads the high score file. A missing file starts at zero.
func OpenHighScores(path string) (*HighScores, error) {
	h := &HighScores{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("failed to read high score file: %w", err)
	}

	if err := json.Unmarshal(data, &h.record); err != nil {
		return nil, fmt.Errorf("failed to parse high score file: %w", err)
	}

	return h, nil
}

// Best returns the stored high score.
func (h *HighScores) Best() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.record.HighScore
}

// Submit stores score if it beats the current high score. It reports whether the
// file was updated.
func (h *HighScores) Submit(score, session int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if score <= h.record.HighScore {
		return false, nil
	}

	record := HighScoreRecord{HighScore: score, Session: session, UpdatedAt: time.Now().UTC()}
	if err := h.write(record); err != nil {
		return false, err
	}
	h.record = record
	return true, nil
}

// write replaces the file through a temp file so a crash never leaves half a record.
func (h *HighScores) write(record HighScoreRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize high score: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("rename high score file: %w", err)
	}
	return nil
}

// Listen is an engine.Listener that saves new high scores.
func (h *HighScores) Listen(ev engine.Event) {
	if ev.Kind != engine.EventGameOver || !ev.NewHighScore {
		return
	}
	saved, err := h.Submit(ev.Score, ev.Session)
	if err != nil {
		log.Printf("Warning: failed to save high score %d: %v", ev.Score, err)
		return
	}
	if saved {
		log.Printf("New high score %d in session %d", ev.Score, ev.Session)
	}
}

// Locations inside the data directory.
const (
	HighScoreFile = "highscore.json"
	ArchiveDir    = "sessions"
)

// OpenDataDir opens the high score file and a fresh session archive under dir.
func OpenDataDir(dir string) (*HighScores, *Archive, error) {
	scores, err := OpenHighScores(filepath.Join(dir, HighScoreFile))
	if err != nil {
		return nil, nil, err
	}
	archive, err := NewArchive(filepath.Join(dir, ArchiveDir))
	if err != nil {
		return nil, nil, err
	}
	return scores, archive, nil
}
