// Package input maps raw keys from either frontend to snake directions.
package input

import (
	"strings"

	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/render"
)

// DirectionKeys lists the keys the desktop frontend polls, in priority order.
var DirectionKeys = []render.Key{
	render.KeyUp, render.KeyDown, render.KeyLeft, render.KeyRight,
	render.KeyW, render.KeyS, render.KeyA, render.KeyD,
}

// FromKey maps arrow keys and WASD to a direction. ok is false for any other key.
func FromKey(key render.Key) (dir engine.Direction, ok bool) {
	switch key {
	case render.KeyUp, render.KeyW:
		return engine.Up, true
	case render.KeyDown, render.KeyS:
		return engine.Down, true
	case render.KeyLeft, render.KeyA:
		return engine.Left, true
	case render.KeyRight, render.KeyD:
		return engine.Right, true
	default:
		return 0, false
	}
}

var namedKeys = map[string]engine.Direction{
	"up":    engine.Up,
	"down":  engine.Down,
	"left":  engine.Left,
	"right": engine.Right,
	"w":     engine.Up,
	"s":     engine.Down,
	"a":     engine.Left,
	"d":     engine.Right,
}

// FromName maps a key name such as "up" or "W" (case-insensitive) to a direction.
func FromName(name string) (dir engine.Direction, ok bool) {
	dir, ok = namedKeys[strings.ToLower(name)]
	return dir, ok
}
