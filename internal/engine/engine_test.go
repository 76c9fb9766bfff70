package engine

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"chosenoffset.com/serpent/internal/simulation"
)

const tick = 150 * time.Millisecond

// dumpState is a test helper to visualize the board.
func dumpState(e *Engine) string {
	grid := make([][]byte, e.gridH)
	for y := 0; y < e.gridH; y++ {
		grid[y] = []byte(strings.Repeat(".", e.gridW))
	}
	if e.inGrid(e.food) {
		grid[e.food.Y][e.food.X] = '*'
	}
	for i, p := range e.snake {
		if !e.inGrid(p) {
			continue
		}
		if i == 0 {
			grid[p.Y][p.X] = 'H'
		} else {
			grid[p.Y][p.X] = 's'
		}
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(simulation.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func startedEngine(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Keep food out of the default path unless a test places it.
	e.food = Position{X: 0, Y: 0}
	return e
}

type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestNew_IsIdle(t *testing.T) {
	e := newTestEngine(t)
	if e.State() != Idle {
		t.Fatalf("state=%v want=idle", e.State())
	}
	if err := e.Advance(10 * time.Second); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if len(e.snake) != 1 || e.snake[0] != (Position{X: 5, Y: 5}) {
		t.Fatalf("idle engine moved: %v", e.snake)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Board.CellSize = 0
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestStart_ResetsSession(t *testing.T) {
	e := newTestEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Dirty every per-session field, then restart.
	e.snake = []Position{{X: 3, Y: 3}, {X: 3, Y: 4}}
	e.direction = Up
	e.nextDirection = Left
	e.score = 70
	e.interval = time.Millisecond
	e.lastMove = time.Hour
	e.obstacles = []Obstacle{{X: 1, Y: 1}}
	e.foodEaten = 7
	e.obstaclesPerSpawn = 3

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if e.State() != Running {
		t.Fatalf("state=%v want=running", e.State())
	}
	if e.session != 2 {
		t.Errorf("session=%d want=2", e.session)
	}
	if len(e.snake) != 1 || e.snake[0] != (Position{X: 5, Y: 5}) {
		t.Errorf("snake=%v want=[{5 5}]", e.snake)
	}
	if e.direction != Right || e.nextDirection != Right {
		t.Errorf("direction=%v next=%v want=right", e.direction, e.nextDirection)
	}
	if e.score != 0 || e.foodEaten != 0 || e.obstaclesPerSpawn != 1 {
		t.Errorf("score=%d foodEaten=%d perSpawn=%d", e.score, e.foodEaten, e.obstaclesPerSpawn)
	}
	if e.interval != tick || e.lastMove != 0 {
		t.Errorf("interval=%v lastMove=%v", e.interval, e.lastMove)
	}
	if len(e.obstacles) != 0 {
		t.Errorf("obstacles=%d want=0", len(e.obstacles))
	}
	if e.occupied(e.food) {
		t.Errorf("food %v on snake", e.food)
	}
	if rec.count(EventStarted) != 2 {
		t.Errorf("started events=%d want=2", rec.count(EventStarted))
	}
	// Abandoned sessions are not recorded.
	if e.history.Len() != 0 {
		t.Errorf("history len=%d want=0", e.history.Len())
	}
}

func TestSetDirection_RejectsReversal(t *testing.T) {
	e := startedEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	e.SetDirection(Left)

	if e.nextDirection != Right || e.direction != Right {
		t.Fatalf("direction=%v next=%v want=right", e.direction, e.nextDirection)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events=%v want none", rec.events)
	}
}

func TestSetDirection_ComparesAgainstCommittedDirection(t *testing.T) {
	e := startedEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	e.SetDirection(Up)
	if e.nextDirection != Up {
		t.Fatalf("next=%v want=up", e.nextDirection)
	}

	// Committed direction is still right, so left stays rejected even though up is pending.
	e.SetDirection(Left)
	if e.nextDirection != Up {
		t.Fatalf("next=%v want=up", e.nextDirection)
	}

	e.SetDirection(Down)
	if e.nextDirection != Down {
		t.Fatalf("next=%v want=down", e.nextDirection)
	}

	if rec.count(EventTurned) != 2 {
		t.Fatalf("turned events=%d want=2", rec.count(EventTurned))
	}
	if rec.events[1].Direction != Down {
		t.Errorf("turned direction=%v want=down", rec.events[1].Direction)
	}

	if err := e.Advance(tick); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.direction != Down || e.snake[0] != (Position{X: 5, Y: 6}) {
		t.Fatalf("direction=%v head=%v want down to (5,6)", e.direction, e.snake[0])
	}
}

func TestSetDirection_SameDirectionIsSilent(t *testing.T) {
	e := startedEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	e.SetDirection(Right)
	e.SetDirection(Direction(42))

	if len(rec.events) != 0 {
		t.Fatalf("events=%v want none", rec.events)
	}
	if e.nextDirection != Right {
		t.Fatalf("next=%v want=right", e.nextDirection)
	}
}

func TestSetDirection_IgnoredWhenNotRunning(t *testing.T) {
	e := newTestEngine(t)
	e.SetDirection(Up)
	if e.nextDirection != Right {
		t.Fatalf("idle engine accepted direction: %v", e.nextDirection)
	}
}

func TestAdvance_WaitsForInterval(t *testing.T) {
	e := startedEngine(t)

	if err := e.Advance(tick - time.Millisecond); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.snake[0] != (Position{X: 5, Y: 5}) {
		t.Fatalf("moved early: head=%v", e.snake[0])
	}

	if err := e.Advance(tick); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.snake[0] != (Position{X: 6, Y: 5}) {
		t.Fatalf("head=%v want=(6,5)", e.snake[0])
	}
	if e.lastMove != tick {
		t.Fatalf("lastMove=%v want=%v", e.lastMove, tick)
	}

	// Same frame timestamp again does not move.
	if err := e.Advance(tick + tick/2); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.snake[0] != (Position{X: 6, Y: 5}) {
		t.Fatalf("head=%v want=(6,5)", e.snake[0])
	}
}

func TestAdvance_EatFood(t *testing.T) {
	e := startedEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)
	e.food = Position{X: 6, Y: 5}
	before := dumpState(e)

	if err := e.Advance(tick); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	t.Logf("eat food\n  BEFORE:\n%s  AFTER:\n%s", before, dumpState(e))

	if e.score != 10 {
		t.Errorf("score=%d want=10", e.score)
	}
	want := []Position{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if len(e.snake) != len(want) {
		t.Fatalf("snake=%v want=%v", e.snake, want)
	}
	for i := range want {
		if e.snake[i] != want[i] {
			t.Fatalf("snake[%d]=%v want=%v", i, e.snake[i], want[i])
		}
	}
	if e.food == (Position{X: 6, Y: 5}) || e.occupied(e.food) {
		t.Errorf("food %v not relocated off the snake", e.food)
	}
	if e.interval >= tick {
		t.Errorf("interval=%v want < %v", e.interval, tick)
	}
	if e.foodEaten != 1 || len(e.obstacles) != 1 {
		t.Errorf("foodEaten=%d obstacles=%d want 1/1", e.foodEaten, len(e.obstacles))
	}
	if rec.count(EventFoodEaten) != 1 || rec.events[0].Score != 10 {
		t.Errorf("events=%v", rec.events)
	}
}

func TestAdvance_NoFoodKeepsLength(t *testing.T) {
	e := startedEngine(t)
	e.snake = []Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	if err := e.Advance(tick); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	want := []Position{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	for i := range want {
		if e.snake[i] != want[i] {
			t.Fatalf("snake=%v want=%v", e.snake, want)
		}
	}
	if len(e.snake) != 3 {
		t.Fatalf("len=%d want=3", len(e.snake))
	}
	if e.interval != tick {
		t.Errorf("interval changed without food: %v", e.interval)
	}
}

func TestAdvance_RunsIntoRightWall(t *testing.T) {
	e := startedEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	now := time.Duration(0)
	for e.snake[0].X < 19 {
		now += tick
		if err := e.Advance(now); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if e.State() != Running {
			t.Fatalf("game ended early at head=%v\n%s", e.snake[0], dumpState(e))
		}
	}
	if e.snake[0] != (Position{X: 19, Y: 5}) {
		t.Fatalf("head=%v want=(19,5)", e.snake[0])
	}

	now += tick
	if err := e.Advance(now); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if e.State() != Over {
		t.Fatalf("state=%v want=over", e.State())
	}
	if rec.count(EventGameOver) != 1 {
		t.Fatalf("game over events=%d want=1", rec.count(EventGameOver))
	}
	ev := rec.events[len(rec.events)-1]
	if ev.Score != 0 || ev.Cause != CauseWall || ev.Session != 1 {
		t.Fatalf("event=%+v", ev)
	}

	// Frozen: more frames change nothing.
	snap := e.Snapshot()
	if err := e.Advance(now + time.Second); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.snake[0] != snap.Head() {
		t.Fatalf("engine moved after game over")
	}
}

func TestAdvance_SelfCollision(t *testing.T) {
	e := startedEngine(t)
	e.snake = []Position{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}

	if err := e.Advance(tick); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	t.Logf("self collision\n%s", dumpState(e))

	if e.State() != Over || e.cause != CauseSelf {
		t.Fatalf("state=%v cause=%q want over/self", e.State(), e.cause)
	}
	if len(e.snake) != 4 {
		t.Fatalf("snake mutated on collision: %v", e.snake)
	}
}

func TestAdvance_ObstacleHitsBetweenMoves(t *testing.T) {
	e := startedEngine(t)
	// Center of cell (5,5), not moving.
	e.obstacles = []Obstacle{{X: 110, Y: 110}}

	if err := e.Advance(time.Millisecond); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.State() != Over || e.cause != CauseObstacle {
		t.Fatalf("state=%v cause=%q want over/obstacle", e.State(), e.cause)
	}
}

func TestAdvance_ObstacleOnCellEdgeCounts(t *testing.T) {
	e := startedEngine(t)
	e.obstacles = []Obstacle{{X: 118, Y: 100, DX: 2, DY: 0}}

	if err := e.Advance(time.Millisecond); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.State() != Over {
		t.Fatalf("obstacle at x=120 should touch cell (5,5)")
	}
}

func TestAdvance_ObstaclesLeaveBounds(t *testing.T) {
	e := startedEngine(t)
	e.obstacles = []Obstacle{
		{X: 399, Y: 300, DX: 2, DY: 0},
		{X: 300, Y: 1, DX: 0, DY: -2},
		{X: 300, Y: 300, DX: 1, DY: 1},
		{X: 398, Y: 300, DX: 2, DY: 0},
	}

	if err := e.Advance(time.Millisecond); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if len(e.obstacles) != 2 {
		t.Fatalf("obstacles=%v want 2 left", e.obstacles)
	}
	if e.obstacles[0] != (Obstacle{X: 301, Y: 301, DX: 1, DY: 1}) {
		t.Errorf("obstacles[0]=%v", e.obstacles[0])
	}
	// Exactly on the far edge is still inside.
	if e.obstacles[1].X != 400 {
		t.Errorf("obstacles[1]=%v", e.obstacles[1])
	}
}

// feed places food directly ahead, clears obstacles so they cannot end the run, and
// advances one movement tick.
func feed(t *testing.T, e *Engine, now time.Duration) {
	t.Helper()
	e.food = e.snake[0].Add(e.nextDirection)
	e.obstacles = nil
	if err := e.Advance(now); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if e.State() != Running {
		t.Fatalf("game ended while feeding: cause=%q\n%s", e.cause, dumpState(e))
	}
}

func TestAdvance_IntervalShrinksOnlyOnFood(t *testing.T) {
	e := startedEngine(t)
	now := time.Duration(0)
	prev := e.interval

	for i := 0; i < 5; i++ {
		now += tick
		feed(t, e, now)
		if e.interval >= prev {
			t.Fatalf("food %d: interval=%v not below %v", i+1, e.interval, prev)
		}
		want := time.Duration(float64(prev) * (1 - 0.00025))
		if e.interval != want {
			t.Fatalf("food %d: interval=%v want=%v", i+1, e.interval, want)
		}
		prev = e.interval

		// A plain move leaves the interval alone.
		e.food = Position{X: 0, Y: 19}
		e.obstacles = nil
		now += tick
		if err := e.Advance(now); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if e.interval != prev {
			t.Fatalf("interval changed without food: %v -> %v", prev, e.interval)
		}
	}
}

func TestAdvance_ObstaclesPerSpawnSteps(t *testing.T) {
	e := startedEngine(t)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	want := []int{1, 1, 2, 2, 2, 3, 3, 3, 4}
	now := time.Duration(0)
	for i, w := range want {
		now += tick
		feed(t, e, now)
		if e.obstaclesPerSpawn != w {
			t.Fatalf("after %d food: perSpawn=%d want=%d", i+1, e.obstaclesPerSpawn, w)
		}
		if len(e.obstacles) != w {
			t.Fatalf("after %d food: spawned=%d want=%d", i+1, len(e.obstacles), w)
		}
		if e.score != 10*(i+1) {
			t.Fatalf("score=%d want=%d", e.score, 10*(i+1))
		}
	}
	if rec.count(EventFoodEaten) != len(want) {
		t.Fatalf("food events=%d want=%d", rec.count(EventFoodEaten), len(want))
	}
}

func TestNewObstacle_EdgeAndSpeed(t *testing.T) {
	e := newTestEngine(t)
	const eps = 1e-9

	for i := 0; i < 2000; i++ {
		o := e.newObstacle()
		if got := math.Hypot(o.DX, o.DY); math.Abs(got-2) > eps {
			t.Fatalf("speed=%v want=2 (%+v)", got, o)
		}
		switch {
		case o.Y == 0:
			if o.DY <= 0 {
				t.Fatalf("top obstacle not heading down: %+v", o)
			}
		case o.X == 400:
			if o.DX >= 0 {
				t.Fatalf("right obstacle not heading left: %+v", o)
			}
		case o.Y == 400:
			if o.DY >= 0 {
				t.Fatalf("bottom obstacle not heading up: %+v", o)
			}
		case o.X == 0:
			if o.DX <= 0 {
				t.Fatalf("left obstacle not heading right: %+v", o)
			}
		default:
			t.Fatalf("obstacle not on an edge: %+v", o)
		}
		if o.X < 0 || o.X > 400 || o.Y < 0 || o.Y > 400 {
			t.Fatalf("obstacle outside playfield: %+v", o)
		}
	}
}

func TestPlaceFood_FallsBackToFreeCell(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Board = simulation.BoardConfig{WidthPx: 60, HeightPx: 60, CellSize: 20}
	cfg.Scoring.MaxFoodAttempts = 1
	e, err := New(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e.snake = nil
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			e.snake = append(e.snake, Position{X: x, Y: y})
		}
	}

	for i := 0; i < 20; i++ {
		p, err := e.placeFood()
		if err != nil {
			t.Fatalf("placeFood: %v", err)
		}
		if p != (Position{X: 2, Y: 1}) {
			t.Fatalf("food=%v want=(2,1)", p)
		}
	}

	e.snake = append(e.snake, Position{X: 2, Y: 1})
	if _, err := e.placeFood(); !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("err=%v want ErrNoFreeCell", err)
	}
}

func TestAdvance_FillingTheBoardEndsSession(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Board = simulation.BoardConfig{WidthPx: 40, HeightPx: 40, CellSize: 20}
	e, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := &recorder{}
	e.Subscribe(rec.listen)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	e.snake = []Position{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	e.direction = Up
	e.nextDirection = Up
	e.food = Position{X: 0, Y: 0}
	t.Logf("before:\n%s", dumpState(e))

	err = e.Advance(tick)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("err=%v want ErrNoFreeCell", err)
	}
	t.Logf("after:\n%s", dumpState(e))

	if e.State() != Over {
		t.Fatalf("state=%v want over", e.State())
	}
	snap := e.Snapshot()
	if snap.Cause != CauseBoardFull || snap.Score != 10 || len(snap.Snake) != 4 || snap.FoodEaten != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if e.lastMove != tick {
		t.Errorf("lastMove=%v want %v", e.lastMove, tick)
	}
	if rec.count(EventFoodEaten) != 1 || rec.count(EventGameOver) != 1 {
		t.Fatalf("events=%+v", rec.events)
	}
	over := rec.events[len(rec.events)-1]
	if over.Kind != EventGameOver || over.Cause != CauseBoardFull || over.Score != 10 || !over.NewHighScore {
		t.Fatalf("game over event=%+v", over)
	}
	if h := e.History(); len(h) != 1 || h[0] != (Result{Session: 1, Score: 10}) {
		t.Fatalf("history=%+v", h)
	}

	// A settled session ignores further frames.
	if err := e.Advance(2 * tick); err != nil {
		t.Fatalf("Advance after over: %v", err)
	}
}

func TestGameOver_UpdatesHighScore(t *testing.T) {
	e := startedEngine(t)
	e.SetHighScore(30)
	rec := &recorder{}
	e.Subscribe(rec.listen)

	e.score = 20
	e.gameOver(CauseWall)
	if e.HighScore() != 30 || rec.events[0].NewHighScore {
		t.Fatalf("high=%d event=%+v", e.HighScore(), rec.events[0])
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.score = 40
	e.gameOver(CauseObstacle)
	ev := rec.events[len(rec.events)-1]
	if e.HighScore() != 40 || !ev.NewHighScore || ev.HighScore != 40 {
		t.Fatalf("high=%d event=%+v", e.HighScore(), ev)
	}
}

func TestHistory_KeepsTenMostRecent(t *testing.T) {
	e := newTestEngine(t)

	for i := 1; i <= 11; i++ {
		if err := e.Start(); err != nil {
			t.Fatalf("Start: %v", err)
		}
		e.score = i * 10
		e.gameOver(CauseWall)
	}

	got := e.History()
	if len(got) != 10 {
		t.Fatalf("history len=%d want=10", len(got))
	}
	for i, r := range got {
		wantSession := 11 - i
		if r.Session != wantSession || r.Score != wantSession*10 {
			t.Fatalf("history[%d]=%+v want session %d score %d", i, r, wantSession, wantSession*10)
		}
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	e := startedEngine(t)
	e.obstacles = []Obstacle{{X: 300, Y: 300}}

	snap := e.Snapshot()
	snap.Snake[0] = Position{X: 9, Y: 9}
	snap.Obstacles[0].X = 1

	if e.snake[0] != (Position{X: 5, Y: 5}) || e.obstacles[0].X != 300 {
		t.Fatal("snapshot shares memory with the engine")
	}
	if snap.GridWidth != 20 || snap.GridHeight != 20 || snap.CellSize != 20 {
		t.Fatalf("grid=%dx%d cell=%d", snap.GridWidth, snap.GridHeight, snap.CellSize)
	}
	if snap.State != Running || snap.Session != 1 {
		t.Fatalf("state=%v session=%d", snap.State, snap.Session)
	}
}

// TestRandomPlay_Invariants drives many sessions with random input and checks the
// board invariants after every frame.
func TestRandomPlay_Invariants(t *testing.T) {
	e := newTestEngine(t)
	input := rand.New(rand.NewSource(7))
	now := time.Duration(0)
	frame := 16 * time.Millisecond

	for session := 0; session < 20; session++ {
		if err := e.Start(); err != nil {
			t.Fatalf("Start: %v", err)
		}
		for f := 0; f < 5000 && e.State() == Running; f++ {
			if input.Intn(8) == 0 {
				e.SetDirection(Direction(input.Intn(4)))
			}
			// Steer toward food now and then so the snake grows.
			if input.Intn(4) == 0 {
				head := e.snake[0]
				switch {
				case e.food.X > head.X:
					e.SetDirection(Right)
				case e.food.X < head.X:
					e.SetDirection(Left)
				case e.food.Y > head.Y:
					e.SetDirection(Down)
				default:
					e.SetDirection(Up)
				}
			}
			now += frame
			if err := e.Advance(now); err != nil {
				t.Fatalf("Advance: %v", err)
			}
			if e.State() != Running {
				break
			}
			checkInvariants(t, e)
		}
	}
}

func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()
	if len(e.snake) < 1 {
		t.Fatal("empty snake")
	}
	seen := make(map[Position]bool, len(e.snake))
	for _, p := range e.snake {
		if !e.inGrid(p) {
			t.Fatalf("segment %v out of bounds\n%s", p, dumpState(e))
		}
		if seen[p] {
			t.Fatalf("duplicate segment %v\n%s", p, dumpState(e))
		}
		seen[p] = true
	}
	if seen[e.food] {
		t.Fatalf("food %v on snake\n%s", e.food, dumpState(e))
	}
}
