package game

import (
	"image/color"

	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/render"
)

// ObstacleRadius is the drawn radius of an obstacle in pixels. Collision uses the
// obstacle's centre point only.
const ObstacleRadius = 4

var (
	backgroundColor = color.RGBA{10, 10, 16, 255}
	fieldColor      = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{24, 24, 32, 255}
	headColor       = color.RGBA{120, 255, 120, 255}
	bodyColor       = color.RGBA{0, 200, 0, 255}
	foodColor       = color.RGBA{230, 40, 40, 255}
	obstacleColor   = color.RGBA{80, 160, 255, 255}
)

func (m *Manager) drawPlayfield(screen render.Image, snap engine.Snapshot) {
	m.Renderer.FillRect(screen, 0, 0, float32(snap.WidthPx), float32(snap.HeightPx), fieldColor)
	m.drawGrid(screen, snap)

	cell := float32(snap.CellSize)

	m.Renderer.FillRect(screen, float32(snap.Food.X)*cell, float32(snap.Food.Y)*cell, cell, cell, foodColor)

	// Tail first so the head stays on top.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		clr := bodyColor
		if i == 0 {
			clr = headColor
		}
		m.Renderer.FillRect(screen, float32(p.X)*cell+1, float32(p.Y)*cell+1, cell-2, cell-2, clr)
	}

	for _, o := range snap.Obstacles {
		m.Renderer.FillCircle(screen, float32(o.X), float32(o.Y), ObstacleRadius, obstacleColor)
	}
}

func (m *Manager) drawGrid(screen render.Image, snap engine.Snapshot) {
	cell := float32(snap.CellSize)
	for x := 1; x < snap.GridWidth; x++ {
		m.Renderer.FillRect(screen, float32(x)*cell, 0, 1, float32(snap.HeightPx), gridColor)
	}
	for y := 1; y < snap.GridHeight; y++ {
		m.Renderer.FillRect(screen, 0, float32(y)*cell, float32(snap.WidthPx), 1, gridColor)
	}
}
