// Package simulation provides configuration for the game simulation rules.
// Values are loaded from a JSON file so a board can be tuned without a rebuild.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds all simulation rules for a game
type Config struct {
	// Board geometry
	Board BoardConfig `json:"board"`

	// Snake speed and how it ramps up
	Pacing PacingConfig `json:"pacing"`

	// Points per food
	Scoring ScoringConfig `json:"scoring"`

	// Moving obstacle rules
	Obstacles ObstacleConfig `json:"obstacles"`

	// Session bookkeeping
	Session SessionConfig `json:"session"`
}

// BoardConfig defines the playfield in pixels and the cell size that divides it
type BoardConfig struct {
	WidthPx  int `json:"width_px"`  // Playfield width in pixels (e.g., 400)
	HeightPx int `json:"height_px"` // Playfield height in pixels (e.g., 400)
	CellSize int `json:"cell_size"` // Pixels per grid cell (e.g., 20)
	StartX   int `json:"start_x"`   // Snake spawn cell
	StartY   int `json:"start_y"`
}

// PacingConfig defines how often the snake moves
type PacingConfig struct {
	InitialIntervalMs float64 `json:"initial_interval_ms"` // Time between moves at session start
	SpeedIncreaseRate float64 `json:"speed_increase_rate"` // Interval shrinks by this fraction per food
}

// ScoringConfig defines rewards
type ScoringConfig struct {
	FoodReward      int `json:"food_reward"`       // Points per food eaten
	MaxFoodAttempts int `json:"max_food_attempts"` // Random draws before scanning for a free cell
}

// ObstacleConfig defines moving obstacle spawning
type ObstacleConfig struct {
	Speed           float64 `json:"speed"`             // Pixels per frame
	InitialPerSpawn int     `json:"initial_per_spawn"` // Obstacles spawned per food at session start
	SpawnStepEvery  int     `json:"spawn_step_every"`  // Every Nth food adds one obstacle per spawn
}

// SessionConfig defines the session history
type SessionConfig struct {
	HistorySize int `json:"history_size"` // Past sessions kept, most recent first
}

// DefaultConfig returns the classic 20x20 board
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			WidthPx:  400,
			HeightPx: 400,
			CellSize: 20,
			StartX:   5,
			StartY:   5,
		},
		Pacing: PacingConfig{
			InitialIntervalMs: 150,
			SpeedIncreaseRate: 0.00025,
		},
		Scoring: ScoringConfig{
			FoodReward:      10,
			MaxFoodAttempts: 1000,
		},
		Obstacles: ObstacleConfig{
			Speed:           2,
			InitialPerSpawn: 1,
			SpawnStepEvery:  3,
		},
		Session: SessionConfig{
			HistorySize: 10,
		},
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate reports the first rule that makes the config unplayable.
func (c *Config) Validate() error {
	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", b.CellSize)
	}
	if c.GridWidth() < 2 || c.GridHeight() < 2 {
		return fmt.Errorf("board must be at least 2x2 cells, got %dx%d", c.GridWidth(), c.GridHeight())
	}
	if b.StartX < 0 || b.StartX >= c.GridWidth() || b.StartY < 0 || b.StartY >= c.GridHeight() {
		return fmt.Errorf("start cell (%d,%d) is outside the %dx%d grid", b.StartX, b.StartY, c.GridWidth(), c.GridHeight())
	}
	if c.Pacing.InitialIntervalMs <= 0 {
		return fmt.Errorf("initial_interval_ms must be positive, got %v", c.Pacing.InitialIntervalMs)
	}
	if c.Pacing.SpeedIncreaseRate < 0 || c.Pacing.SpeedIncreaseRate >= 1 {
		return fmt.Errorf("speed_increase_rate must be in [0, 1), got %v", c.Pacing.SpeedIncreaseRate)
	}
	if c.Scoring.MaxFoodAttempts <= 0 {
		return fmt.Errorf("max_food_attempts must be positive, got %d", c.Scoring.MaxFoodAttempts)
	}
	if c.Obstacles.Speed <= 0 {
		return fmt.Errorf("obstacle speed must be positive, got %v", c.Obstacles.Speed)
	}
	if c.Obstacles.InitialPerSpawn < 0 {
		return fmt.Errorf("initial_per_spawn must not be negative, got %d", c.Obstacles.InitialPerSpawn)
	}
	if c.Obstacles.SpawnStepEvery <= 0 {
		return fmt.Errorf("spawn_step_every must be positive, got %d", c.Obstacles.SpawnStepEvery)
	}
	if c.Session.HistorySize <= 0 {
		return fmt.Errorf("history_size must be positive, got %d", c.Session.HistorySize)
	}
	return nil
}

// GridWidth is the number of cell columns.
func (c *Config) GridWidth() int {
	return c.Board.WidthPx / c.Board.CellSize
}

// GridHeight is the number of cell rows.
func (c *Config) GridHeight() int {
	return c.Board.HeightPx / c.Board.CellSize
}

// InitialInterval converts the configured move interval to a duration.
func (c *Config) InitialInterval() time.Duration {
	return time.Duration(c.Pacing.InitialIntervalMs * float64(time.Millisecond))
}
