package store

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Summary aggregates archived sessions.
type Summary struct {
	Sessions   int
	Runs       int
	BestScore  int32
	TotalScore int64
	TotalFood  int64
	ByCause    map[string]int
}

// MeanScore returns the average score, or 0 with no sessions.
func (s Summary) MeanScore() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Sessions)
}

// Causes returns the recorded causes, most frequent first.
func (s Summary) Causes() []string {
	causes := make([]string, 0, len(s.ByCause))
	for c := range s.ByCause {
		causes = append(causes, c)
	}
	sort.Slice(causes, func(i, j int) bool {
		if s.ByCause[causes[i]] != s.ByCause[causes[j]] {
			return s.ByCause[causes[i]] > s.ByCause[causes[j]]
		}
		return causes[i] < causes[j]
	})
	return causes
}

// Summarize folds rows into a Summary.
func Summarize(rows []SessionRow) Summary {
	s := Summary{ByCause: make(map[string]int)}
	runs := make(map[string]struct{})
	for _, r := range rows {
		s.Sessions++
		s.TotalScore += int64(r.Score)
		s.TotalFood += int64(r.FoodEaten)
		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		s.ByCause[r.Cause]++
		runs[r.RunID] = struct{}{}
	}
	s.Runs = len(runs)
	return s
}

// ListArchives returns the archive files in dir, oldest first.
func ListArchives(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "sessions_*.parquet"))
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadAll reads every archive in dir.
func ReadAll(dir string) ([]SessionRow, error) {
	paths, err := ListArchives(dir)
	if err != nil {
		return nil, err
	}
	var rows []SessionRow
	for _, p := range paths {
		batch, err := ReadArchive(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
	}
	return rows, nil
}
