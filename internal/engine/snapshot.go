package engine

import "time"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	State   State
	Session int
	Cause   Cause

	Snake     []Position
	Food      Position
	Obstacles []Obstacle
	Direction Direction

	GridWidth  int
	GridHeight int
	CellSize   int
	WidthPx    int
	HeightPx   int

	Score             int
	HighScore         int
	Interval          time.Duration
	FoodEaten         int
	ObstaclesPerSpawn int
}

// Snapshot copies the current state. The returned slices are not shared with the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:             e.state,
		Session:           e.session,
		Cause:             e.cause,
		Snake:             cloneSlice(e.snake),
		Food:              e.food,
		Obstacles:         cloneSlice(e.obstacles),
		Direction:         e.direction,
		GridWidth:         e.gridW,
		GridHeight:        e.gridH,
		CellSize:          e.cfg.Board.CellSize,
		WidthPx:           e.cfg.Board.WidthPx,
		HeightPx:          e.cfg.Board.HeightPx,
		Score:             e.score,
		HighScore:         e.highScore,
		Interval:          e.interval,
		FoodEaten:         e.foodEaten,
		ObstaclesPerSpawn: e.obstaclesPerSpawn,
	}
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[0]
}

// cloneSlice copies in. The result is never nil.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
