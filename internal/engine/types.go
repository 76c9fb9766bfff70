package engine

// Position is a grid cell. (0,0) is the top-left cell.
type Position struct {
	X, Y int
}

// Add returns p shifted by the given direction.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the direction that would reverse into the snake's neck.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the cell offset for one step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Obstacle is a moving point in pixel space.
type Obstacle struct {
	X, Y   float64
	DX, DY float64
}

// State is the session lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Over
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Cause records what ended a session.
type Cause string

const (
	// CauseNone is reported while no session has ended yet
	CauseNone Cause = ""
	// CauseWall is when the head leaves the grid
	CauseWall Cause = "wall-collision"
	// CauseSelf is when the head moves onto the snake's own body
	CauseSelf Cause = "self-collision"
	// CauseObstacle is when a moving obstacle touches any segment
	CauseObstacle Cause = "obstacle-collision"
	// CauseBoardFull is when the snake fills the grid and no food can be placed
	CauseBoardFull Cause = "board-full"
)
