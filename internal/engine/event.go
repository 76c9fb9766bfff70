package engine

// EventKind identifies a discrete engine event.
type EventKind int

const (
	// EventStarted fires after a session has been reset and is running
	EventStarted EventKind = iota
	// EventTurned fires when an accepted direction differs from the committed one
	EventTurned
	// EventFoodEaten fires after the score and food have been updated
	EventFoodEaten
	// EventGameOver fires once the session has frozen
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventTurned:
		return "turned"
	case EventFoodEaten:
		return "food-eaten"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to every listener. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind    EventKind
	Session int
	Score   int

	// EventTurned
	Direction Direction

	// EventGameOver
	Cause        Cause
	HighScore    int
	NewHighScore bool
	FoodEaten    int
}

// Listener receives engine events. It must not call back into the engine.
type Listener func(Event)
