// Package term is the terminal frontend: a bubbletea model that ticks the engine and
// renders its snapshot as text.
package term

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/input"
	"chosenoffset.com/serpent/internal/ui/hud"
)

// FrameInterval is the tick period, roughly one display frame.
const FrameInterval = 16 * time.Millisecond

// Board glyphs, two runes per cell so cells come out roughly square.
const (
	glyphEmpty    = ". "
	glyphHead     = "@@"
	glyphBody     = "##"
	glyphFood     = "<>"
	glyphObstacle = "()"
)

var (
	headStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	panelStyle    = lipgloss.NewStyle().PaddingLeft(2)
	overStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// FrameMsg carries one frame tick.
type FrameMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Model drives one engine from bubbletea's update loop.
type Model struct {
	engine *engine.Engine

	// now returns the frame timestamp passed to Engine.Advance.
	now func() time.Duration
	err error
}

// New creates a model whose frame clock starts now.
func New(eng *engine.Engine) Model {
	epoch := time.Now()
	return Model{
		engine: eng,
		now:    func() time.Duration { return time.Since(epoch) },
	}
}

// Err returns the engine error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			if m.engine.State() == engine.Running {
				return m, nil
			}
			if err := m.engine.Start(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			log.Printf("Session %d started", m.engine.Snapshot().Session)
			return m, nil
		}
		if dir, ok := input.FromName(key); ok {
			m.engine.SetDirection(dir)
		}
	case FrameMsg:
		if err := m.engine.Advance(m.now()); err != nil {
			m.err = fmt.Errorf("advance: %w", err)
			return m, tea.Quit
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	snap := m.engine.Snapshot()

	var rows []string
	for _, line := range Board(snap) {
		rows = append(rows, styleLine(line))
	}
	board := boardStyle.Render(strings.Join(rows, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, board, panelStyle.Render(m.panel(snap))) + "\n"
}

func (m Model) panel(snap engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d\n", snap.Score)
	fmt.Fprintf(&b, "High:  %d\n", snap.HighScore)
	fmt.Fprintf(&b, "Pace:  %dms x%d\n\n", snap.Interval.Milliseconds(), snap.ObstaclesPerSpawn)

	switch snap.State {
	case engine.Idle:
		b.WriteString("Press space to start\n")
	case engine.Over:
		b.WriteString(overStyle.Render("GAME OVER") + "\n")
		fmt.Fprintf(&b, "%s\n", hud.CauseText(snap.Cause))
		b.WriteString("Press space to play again\n")
	}

	b.WriteString("\nSession  Score\n")
	for _, r := range m.engine.History() {
		fmt.Fprintf(&b, "%7d  %5d\n", r.Session, r.Score)
	}

	b.WriteString("\nArrows/WASD to steer, q to quit.\n")
	return b.String()
}

// Board renders the snapshot as unstyled text, one string per grid row.
func Board(snap engine.Snapshot) []string {
	cells := make([][]string, snap.GridHeight)
	for y := range cells {
		cells[y] = make([]string, snap.GridWidth)
		for x := range cells[y] {
			cells[y][x] = glyphEmpty
		}
	}
	set := func(x, y int, glyph string) {
		if y >= 0 && y < len(cells) && x >= 0 && x < len(cells[y]) {
			cells[y][x] = glyph
		}
	}

	set(snap.Food.X, snap.Food.Y, glyphFood)
	if snap.CellSize > 0 {
		for _, o := range snap.Obstacles {
			set(int(o.X)/snap.CellSize, int(o.Y)/snap.CellSize, glyphObstacle)
		}
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		glyph := glyphBody
		if i == 0 {
			glyph = glyphHead
		}
		set(snap.Snake[i].X, snap.Snake[i].Y, glyph)
	}

	lines := make([]string, len(cells))
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return lines
}

func styleLine(line string) string {
	var b strings.Builder
	for i := 0; i+1 < len(line); i += 2 {
		glyph := line[i : i+2]
		switch glyph {
		case glyphHead:
			b.WriteString(headStyle.Render(glyph))
		case glyphBody:
			b.WriteString(bodyStyle.Render(glyph))
		case glyphFood:
			b.WriteString(foodStyle.Render(glyph))
		case glyphObstacle:
			b.WriteString(obstacleStyle.Render(glyph))
		default:
			b.WriteString(emptyStyle.Render(glyph))
		}
	}
	return b.String()
}
