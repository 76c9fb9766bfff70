// Package hud draws the side panel (score, high score, session history and the start
// button) and the game-over banner over the playfield.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/render"
)

// HUDConfig defines what to display in the panel
type HUDConfig struct {
	PanelWidth  int     `json:"panel_width"`
	ShowHistory bool    `json:"show_history"`
	ShowPace    bool    `json:"show_pace"` // Interval and obstacles per spawn
	Opacity     float64 `json:"opacity"`   // Banner background opacity (0-1)
}

// DefaultConfig returns the default panel layout
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		PanelWidth:  220,
		ShowHistory: true,
		ShowPace:    true,
		Opacity:     0.7,
	}
}

var (
	panelColor   = color.RGBA{20, 20, 30, 255}
	borderColor  = color.RGBA{60, 60, 80, 255}
	titleColor   = color.RGBA{255, 255, 200, 255}
	textColor    = color.RGBA{220, 220, 220, 255}
	dimColor     = color.RGBA{150, 150, 150, 255}
	highColor    = color.RGBA{255, 215, 0, 255}
	buttonColor  = color.RGBA{40, 120, 60, 255}
	bannerText   = color.RGBA{255, 90, 90, 255}
	lineHeight   = 16
	panelPadding = 10
)

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

// HUD manages the side panel. Its origin is the right edge of the playfield.
type HUD struct {
	config   *HUDConfig
	renderer render.Renderer

	panelX      int
	panelHeight int

	button rect
}

// New creates a HUD whose panel starts at panelX and spans height pixels.
func New(config *HUDConfig, r render.Renderer, panelX, height int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	h := &HUD{config: config, renderer: r}
	h.SetBounds(panelX, height)
	return h
}

// SetBounds moves the panel and relays out the start button.
func (h *HUD) SetBounds(panelX, height int) {
	h.panelX = panelX
	h.panelHeight = height
	h.button = rect{
		x: panelX + panelPadding,
		y: height - 50,
		w: h.config.PanelWidth - 2*panelPadding,
		h: 30,
	}
}

// PanelWidth returns the configured panel width.
func (h *HUD) PanelWidth() int {
	return h.config.PanelWidth
}

// StartButtonHit reports whether a click at (x, y) lands on the start button.
func (h *HUD) StartButtonHit(x, y int) bool {
	return pointInRect(x, y, h.button)
}

// Draw renders the panel and, when the session is over, the banner.
func (h *HUD) Draw(screen render.Image, snap engine.Snapshot, history []engine.Result) {
	h.renderer.FillRect(screen, float32(h.panelX), 0, float32(h.config.PanelWidth), float32(h.panelHeight), panelColor)
	h.renderer.StrokeRect(screen, float32(h.panelX), 0, float32(h.config.PanelWidth), float32(h.panelHeight), 1, borderColor)

	x := h.panelX + panelPadding
	y := panelPadding

	h.renderer.DrawText(screen, "SERPENT", x, y, titleColor, 1)
	y += lineHeight + 8

	h.renderer.DrawText(screen, fmt.Sprintf("Score: %d", snap.Score), x, y, textColor, 1)
	y += lineHeight
	h.renderer.DrawText(screen, fmt.Sprintf("High:  %d", snap.HighScore), x, y, highColor, 1)
	y += lineHeight

	if h.config.ShowPace {
		h.renderer.DrawText(screen, fmt.Sprintf("Pace:  %dms x%d", snap.Interval.Milliseconds(), snap.ObstaclesPerSpawn), x, y, dimColor, 1)
		y += lineHeight
	}

	if h.config.ShowHistory {
		y += 8
		h.drawDivider(screen, x, y, h.config.PanelWidth-2*panelPadding)
		y += 8
		y = h.drawHistory(screen, x, y, history)
	}

	h.drawButton(screen, snap.State)

	switch snap.State {
	case engine.Idle:
		h.drawCentered(screen, snap, "Press Space to start", textColor)
	case engine.Over:
		h.drawBanner(screen, snap)
	}
}

// drawHistory lists recent sessions, newest first, and returns the next free y.
func (h *HUD) drawHistory(screen render.Image, x, y int, history []engine.Result) int {
	h.renderer.DrawText(screen, "Session  Score", x, y, dimColor, 1)
	y += lineHeight

	if len(history) == 0 {
		h.renderer.DrawText(screen, "no games yet", x, y, dimColor, 1)
		return y + lineHeight
	}

	for _, r := range history {
		h.renderer.DrawText(screen, fmt.Sprintf("%7d  %5d", r.Session, r.Score), x, y, textColor, 1)
		y += lineHeight
	}
	return y
}

func (h *HUD) drawButton(screen render.Image, state engine.State) {
	b := h.button
	h.renderer.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), buttonColor)
	h.renderer.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, borderColor)

	label := ButtonLabel(state)
	tw, th := h.renderer.MeasureText(label, 1)
	h.renderer.DrawText(screen, label, b.x+(b.w-tw)/2, b.y+(b.h-th)/2, textColor, 1)
}

// ButtonLabel is the start button caption for a lifecycle state.
func ButtonLabel(state engine.State) string {
	switch state {
	case engine.Running:
		return "Restart"
	case engine.Over:
		return "Play again"
	default:
		return "Start"
	}
}

// drawBanner darkens a strip across the playfield and prints the final score and cause.
func (h *HUD) drawBanner(screen render.Image, snap engine.Snapshot) {
	alpha := uint8(h.config.Opacity * 255)
	bannerY := snap.HeightPx/2 - 3*lineHeight/2
	h.renderer.FillRect(screen, 0, float32(bannerY), float32(snap.WidthPx), float32(3*lineHeight+8), color.RGBA{0, 0, 0, alpha})

	lines := []string{"GAME OVER", fmt.Sprintf("Score %d", snap.Score), CauseText(snap.Cause)}
	for i, line := range lines {
		tw, _ := h.renderer.MeasureText(line, 1)
		clr := textColor
		if i == 0 {
			clr = bannerText
		}
		h.renderer.DrawText(screen, line, (snap.WidthPx-tw)/2, bannerY+4+i*lineHeight, clr, 1)
	}
}

func (h *HUD) drawCentered(screen render.Image, snap engine.Snapshot, text string, clr color.Color) {
	tw, th := h.renderer.MeasureText(text, 1)
	h.renderer.DrawText(screen, text, (snap.WidthPx-tw)/2, (snap.HeightPx-th)/2, clr, 1)
}

// drawDivider draws a horizontal line
func (h *HUD) drawDivider(screen render.Image, x, y, width int) {
	h.renderer.FillRect(screen, float32(x), float32(y), float32(width), 1, borderColor)
}

// CauseText describes why a session ended.
func CauseText(c engine.Cause) string {
	switch c {
	case engine.CauseWall:
		return "hit the wall"
	case engine.CauseSelf:
		return "bit itself"
	case engine.CauseObstacle:
		return "struck by an obstacle"
	case engine.CauseBoardFull:
		return "filled the board"
	default:
		return ""
	}
}
