package store

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"chosenoffset.com/serpent/internal/engine"
)

// SessionRow is one finished session.
type SessionRow struct {
	RunID      string `parquet:"run_id,dict"`
	SessionID  string `parquet:"session_id"`
	Session    int32  `parquet:"session"`
	Score      int32  `parquet:"score"`
	FoodEaten  int32  `parquet:"food_eaten"`
	Cause      string `parquet:"cause,dict"`
	DurationMs int64  `parquet:"duration_ms"`
	EndedAtMs  int64  `parquet:"ended_at_ms"`
}

// Archive buffers finished sessions for one run of the game and writes them to a
// single Parquet file on Close.
type Archive struct {
	mu    sync.Mutex
	dir   string
	runID string
	now   func() time.Time

	started time.Time
	rows    []SessionRow
}

// NewArchive creates an archive that writes into dir.
func NewArchive(dir string) (*Archive, error) {
	if dir == "" {
		return nil, fmt.Errorf("archive dir is required")
	}
	if err := os.MkdirAll(filepath.Join(dir, "tmp"), 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &Archive{
		dir:   dir,
		runID: uuid.NewString(),
		now:   time.Now,
	}, nil
}

// RunID identifies this process's sessions.
func (a *Archive) RunID() string { return a.runID }

// Listen is an engine.Listener that records a row for every finished session.
func (a *Archive) Listen(ev engine.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev.Kind {
	case engine.EventStarted:
		a.started = a.now()
	case engine.EventGameOver:
		ended := a.now()
		var duration time.Duration
		if !a.started.IsZero() {
			duration = ended.Sub(a.started)
		}
		a.rows = append(a.rows, SessionRow{
			RunID:      a.runID,
			SessionID:  uuid.NewString(),
			Session:    int32(ev.Session),
			Score:      int32(ev.Score),
			FoodEaten:  int32(ev.FoodEaten),
			Cause:      string(ev.Cause),
			DurationMs: duration.Milliseconds(),
			EndedAtMs:  ended.UnixMilli(),
		})
	}
}

// Rows returns a copy of the buffered rows.
func (a *Archive) Rows() []SessionRow {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]SessionRow, len(a.rows))
	copy(out, a.rows)
	return out
}

// Close writes the buffered rows to dir/sessions_<unixnano>_<run>.parquet, going through
// dir/tmp so readers never see a partial file. With no rows it writes nothing and
// returns an empty path.
func (a *Archive) Close() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.rows) == 0 {
		return "", nil
	}

	name := fmt.Sprintf("sessions_%d_%s.parquet", a.now().UnixNano(), a.runID[:8])
	tmpPath := filepath.Join(a.dir, "tmp", name)
	outPath := filepath.Join(a.dir, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[SessionRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", "session_row_v1")

	if _, err := w.Write(a.rows); err != nil {
		f.Close()
		return "", fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("close parquet writer: %w", err)
	}
	_ = f.Sync()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close parquet file: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return "", fmt.Errorf("rename parquet: %w", err)
	}

	log.Printf("Archived %d sessions to %s", len(a.rows), outPath)
	a.rows = nil
	return outPath, nil
}

// ReadArchive loads every row of an archive file.
func ReadArchive(path string) ([]SessionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[SessionRow](pf)
	defer reader.Close()

	rows := make([]SessionRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows[:n], nil
}
