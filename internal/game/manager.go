// Package game is the desktop frontend: it polls input, owns the frame clock, drives
// the engine and draws its snapshot.
package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/input"
	"chosenoffset.com/serpent/internal/render"
	"chosenoffset.com/serpent/internal/ui/hud"
)

// Manager implements render.Game for one engine.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Engine       *engine.Engine
	Renderer     render.Renderer
	InputMgr     render.InputManager
	HUD          *hud.HUD

	// Now returns the frame timestamp passed to Engine.Advance.
	Now func() time.Duration
}

// NewManager creates a manager sized to the engine's playfield plus the HUD panel.
// The frame clock starts at zero when the manager is created.
func NewManager(eng *engine.Engine, r render.Renderer, in render.InputManager, hudConfig *hud.HUDConfig) *Manager {
	snap := eng.Snapshot()
	epoch := time.Now()

	panel := hud.New(hudConfig, r, snap.WidthPx, snap.HeightPx)
	return &Manager{
		ScreenWidth:  snap.WidthPx + panel.PanelWidth(),
		ScreenHeight: snap.HeightPx,
		Engine:       eng,
		Renderer:     r,
		InputMgr:     in,
		HUD:          panel,
		Now:          func() time.Duration { return time.Since(epoch) },
	}
}

// Attach subscribes collaborators (audio, storage) to the engine's events.
func (m *Manager) Attach(listeners ...engine.Listener) {
	for _, l := range listeners {
		m.Engine.Subscribe(l)
	}
}

// Update handles one frame of input and advances the engine.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if m.startRequested() {
		if err := m.Engine.Start(); err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		log.Printf("Session %d started", m.Engine.Snapshot().Session)
	}

	for _, key := range input.DirectionKeys {
		if !m.InputMgr.IsKeyJustPressed(key) {
			continue
		}
		if dir, ok := input.FromKey(key); ok {
			m.Engine.SetDirection(dir)
		}
	}

	if err := m.Engine.Advance(m.Now()); err != nil {
		return fmt.Errorf("advance: %w", err)
	}
	return nil
}

// startRequested reports a click on the start button (any state) or Space/Enter while
// no session is running.
func (m *Manager) startRequested() bool {
	if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := m.InputMgr.GetCursorPosition()
		if m.HUD.StartButtonHit(x, y) {
			return true
		}
	}
	if m.Engine.State() == engine.Running {
		return false
	}
	return m.InputMgr.IsKeyJustPressed(render.KeySpace) || m.InputMgr.IsKeyJustPressed(render.KeyEnter)
}

// Draw draws the playfield and the HUD.
func (m *Manager) Draw(screen render.Image) {
	snap := m.Engine.Snapshot()
	screen.Fill(backgroundColor)
	m.drawPlayfield(screen, snap)
	m.HUD.Draw(screen, snap, m.Engine.History())
}

// Layout keeps a fixed logical screen; ebiten scales it to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
