package engine

import "math"

// placeFood draws random cells until one is off the snake. After MaxFoodAttempts
// misses it picks uniformly from the remaining free cells instead.
func (e *Engine) placeFood() (Position, error) {
	for i := 0; i < e.cfg.Scoring.MaxFoodAttempts; i++ {
		p := Position{X: e.rng.Intn(e.gridW), Y: e.rng.Intn(e.gridH)}
		if !e.occupied(p) {
			return p, nil
		}
	}

	free := make([]Position, 0, e.gridW*e.gridH-len(e.snake))
	for y := 0; y < e.gridH; y++ {
		for x := 0; x < e.gridW; x++ {
			p := Position{X: x, Y: y}
			if !e.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, ErrNoFreeCell
	}
	return free[e.rng.Intn(len(free))], nil
}

// Spawn sides, clockwise from the top edge.
const (
	sideTop = iota
	sideRight
	sideBottom
	sideLeft
)

// newObstacle places an obstacle on a random edge heading into the playfield. The
// tangential velocity component is in [-1, 1) and the inward one in [0.5, 1) before
// the vector is rescaled to the configured speed.
func (e *Engine) newObstacle() Obstacle {
	w, h := e.widthPx, e.heightPx
	var o Obstacle

	switch e.rng.Intn(4) {
	case sideTop:
		o.X = e.rng.Float64() * w
		o.Y = 0
		o.DX = e.rng.Float64()*2 - 1
		o.DY = e.rng.Float64()*0.5 + 0.5
	case sideRight:
		o.X = w
		o.Y = e.rng.Float64() * h
		o.DX = -(e.rng.Float64()*0.5 + 0.5)
		o.DY = e.rng.Float64()*2 - 1
	case sideBottom:
		o.X = e.rng.Float64() * w
		o.Y = h
		o.DX = e.rng.Float64()*2 - 1
		o.DY = -(e.rng.Float64()*0.5 + 0.5)
	case sideLeft:
		o.X = 0
		o.Y = e.rng.Float64() * h
		o.DX = e.rng.Float64()*0.5 + 0.5
		o.DY = e.rng.Float64()*2 - 1
	}

	length := math.Hypot(o.DX, o.DY)
	speed := e.cfg.Obstacles.Speed
	o.DX = o.DX / length * speed
	o.DY = o.DY / length * speed
	return o
}

// moveObstacles steps every obstacle and drops the ones that left the playfield.
func (e *Engine) moveObstacles() {
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.X += o.DX
		o.Y += o.DY
		if o.X < 0 || o.X > e.widthPx || o.Y < 0 || o.Y > e.heightPx {
			continue
		}
		kept = append(kept, o)
	}
	e.obstacles = kept
}

// obstacleHit reports whether any obstacle lies inside (or on the edge of) the pixel
// box of any snake segment.
func (e *Engine) obstacleHit() bool {
	cell := e.cellSize
	for _, o := range e.obstacles {
		for _, s := range e.snake {
			left := float64(s.X) * cell
			right := float64(s.X+1) * cell
			top := float64(s.Y) * cell
			bottom := float64(s.Y+1) * cell
			if o.X >= left && o.X <= right && o.Y >= top && o.Y <= bottom {
				return true
			}
		}
	}
	return false
}
