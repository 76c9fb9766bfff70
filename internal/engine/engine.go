// Package engine runs the snake simulation one animation frame at a time.
//
// The engine is passive: an external frame loop calls Advance with a monotonically
// increasing timestamp, input is fed through SetDirection, and renderers read a
// Snapshot. Side effects (sound, storage, UI) hang off the event stream.
// An Engine is not safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"chosenoffset.com/serpent/internal/simulation"
)

// ErrNoFreeCell is returned when food cannot be placed because the snake fills the grid.
var ErrNoFreeCell = errors.New("no free cell for food")

// Engine owns all per-session simulation state.
type Engine struct {
	cfg *simulation.Config
	rng *rand.Rand

	gridW, gridH      int
	widthPx, heightPx float64
	cellSize          float64

	state   State
	session int
	cause   Cause

	snake         []Position
	food          Position
	obstacles     []Obstacle
	direction     Direction
	nextDirection Direction

	score     int
	highScore int

	interval          time.Duration
	lastMove          time.Duration
	foodEaten         int
	obstaclesPerSpawn int

	history   *History
	listeners []Listener
}

// New creates an idle engine. A nil config uses simulation.DefaultConfig and a nil
// rng is seeded from the clock.
func New(cfg *simulation.Config, rng *rand.Rand) (*Engine, error) {
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		cfg:               cfg,
		rng:               rng,
		gridW:             cfg.GridWidth(),
		gridH:             cfg.GridHeight(),
		widthPx:           float64(cfg.Board.WidthPx),
		heightPx:          float64(cfg.Board.HeightPx),
		cellSize:          float64(cfg.Board.CellSize),
		state:             Idle,
		snake:             []Position{{X: cfg.Board.StartX, Y: cfg.Board.StartY}},
		direction:         Right,
		nextDirection:     Right,
		interval:          cfg.InitialInterval(),
		obstaclesPerSpawn: cfg.Obstacles.InitialPerSpawn,
		history:           NewHistory(cfg.Session.HistorySize),
	}

	food, err := e.placeFood()
	if err != nil {
		return nil, err
	}
	e.food = food

	return e, nil
}

// Subscribe registers a listener. Listeners are called in registration order.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Start resets every per-session field and begins a new session. Calling Start while
// a session is running abandons it without recording a result.
func (e *Engine) Start() error {
	e.session++
	e.snake = []Position{{X: e.cfg.Board.StartX, Y: e.cfg.Board.StartY}}
	e.direction = Right
	e.nextDirection = Right
	e.score = 0
	e.interval = e.cfg.InitialInterval()
	e.lastMove = 0
	e.obstacles = nil
	e.foodEaten = 0
	e.obstaclesPerSpawn = e.cfg.Obstacles.InitialPerSpawn
	e.cause = CauseNone

	food, err := e.placeFood()
	if err != nil {
		e.state = Over
		return fmt.Errorf("start session %d: %w", e.session, err)
	}
	e.food = food
	e.state = Running

	e.emit(Event{Kind: EventStarted, Session: e.session})
	return nil
}

// SetDirection queues a turn for the next movement tick. Reversals relative to the
// committed direction are ignored, so several key presses between two ticks cannot
// fold the snake back onto itself.
func (e *Engine) SetDirection(d Direction) {
	if e.state != Running || d < Up || d > Right {
		return
	}
	if d == e.direction.Opposite() {
		return
	}
	if d != e.direction {
		e.emit(Event{Kind: EventTurned, Session: e.session, Score: e.score, Direction: d})
	}
	e.nextDirection = d
}

// Advance runs one animation frame. Obstacles move every frame; the snake moves only
// once the current interval has elapsed since its last move.
func (e *Engine) Advance(now time.Duration) error {
	if e.state != Running {
		return nil
	}

	e.moveObstacles()
	if e.obstacleHit() {
		e.gameOver(CauseObstacle)
		return nil
	}

	if now-e.lastMove < e.interval {
		return nil
	}

	e.direction = e.nextDirection
	head := e.snake[0].Add(e.direction)

	if !e.inGrid(head) {
		e.gameOver(CauseWall)
		return nil
	}
	if e.occupied(head) {
		e.gameOver(CauseSelf)
		return nil
	}

	e.snake = slices.Insert(e.snake, 0, head)

	if head == e.food {
		e.score += e.cfg.Scoring.FoodReward
		food, err := e.placeFood()
		if err != nil {
			// The snake covers every cell. Settle the session before reporting.
			e.foodEaten++
			e.lastMove = now
			e.emit(Event{Kind: EventFoodEaten, Session: e.session, Score: e.score})
			e.gameOver(CauseBoardFull)
			return fmt.Errorf("session %d: %w", e.session, err)
		}
		e.food = food
		e.emit(Event{Kind: EventFoodEaten, Session: e.session, Score: e.score})

		// No floor: the game keeps getting faster.
		e.interval = time.Duration(float64(e.interval) * (1 - e.cfg.Pacing.SpeedIncreaseRate))

		e.foodEaten++
		if e.foodEaten%e.cfg.Obstacles.SpawnStepEvery == 0 {
			e.obstaclesPerSpawn++
		}
		for i := 0; i < e.obstaclesPerSpawn; i++ {
			e.obstacles = append(e.obstacles, e.newObstacle())
		}
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.lastMove = now
	return nil
}

func (e *Engine) gameOver(cause Cause) {
	e.state = Over
	e.cause = cause

	newHigh := e.score > e.highScore
	if newHigh {
		e.highScore = e.score
	}
	e.history.Push(Result{Session: e.session, Score: e.score})

	e.emit(Event{
		Kind:         EventGameOver,
		Session:      e.session,
		Score:        e.score,
		Cause:        cause,
		HighScore:    e.highScore,
		NewHighScore: newHigh,
		FoodEaten:    e.foodEaten,
	})
}

func (e *Engine) inGrid(p Position) bool {
	return p.X >= 0 && p.X < e.gridW && p.Y >= 0 && p.Y < e.gridH
}

func (e *Engine) occupied(p Position) bool {
	return slices.Contains(e.snake, p)
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// HighScore returns the best score seen by this engine, including a seeded value.
func (e *Engine) HighScore() int {
	return e.highScore
}

// SetHighScore seeds the high score, typically from persistent storage.
func (e *Engine) SetHighScore(score int) {
	e.highScore = score
}

// History returns past results, newest first.
func (e *Engine) History() []Result {
	return e.history.Results()
}
