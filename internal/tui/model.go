package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

// chromeRows is the number of terminal rows below the grid: status and help.
const chromeRows = 2

// Model is the Bubble Tea model for one interactive sandbox.
type Model struct {
	world *sand.World
	clock *core.FixedStep
	keys  KeyMap
	help  help.Model

	paused   bool
	quitting bool
}

// NewModel wraps world in a model stepping at tps ticks per second.
func NewModel(world *sand.World, tps int) Model {
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		world: world,
		clock: core.NewFixedStep(tps),
		keys:  DefaultKeyMap(),
		help:  h,
	}
}

// GridSize returns the grid that fits a terminal of cols × rows.
func GridSize(cols, rows int) (int, int) {
	return max(cols/cellWidth, 1), max(rows-chromeRows, 1)
}

// CellAt maps a terminal position to grid coordinates. The result may lie
// outside the grid; placement ignores such cells.
func CellAt(col, row int) (int, int) {
	return col / cellWidth, row
}

// World returns the simulated world.
func (m Model) World() *sand.World { return m.world }

// Paused reports whether automatic stepping is suspended.
func (m Model) Paused() bool { return m.paused }

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(frameRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		w, h := GridSize(msg.Width, msg.Height)
		if size := m.world.Size(); size.W != w || size.H != h {
			m.world = resize(m.world, w, h)
		}
		return m, nil
	case TickMsg:
		if m.paused {
			return m, tickCmd(frameRate)
		}
		for range m.clock.Due() {
			m.world.Tick()
		}
		return m, tickCmd(frameRate)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Sand):
		m.world.SetSelected(sand.Sand)
	case key.Matches(msg, m.keys.Water):
		m.world.SetSelected(sand.Water)
	case key.Matches(msg, m.keys.Erase):
		m.world.SetSelected(sand.Air)
	case key.Matches(msg, m.keys.BrushUp):
		m.world.SetBrushRadius(m.world.BrushRadius() + 1)
	case key.Matches(msg, m.keys.BrushDown):
		m.world.SetBrushRadius(m.world.BrushRadius() - 1)
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.world.Tick()
		}
	case key.Matches(msg, m.keys.Mode):
		if m.world.Mode() == sand.Sequential {
			m.world.SetMode(sand.Synchronous)
		} else {
			m.world.SetMode(sand.Sequential)
		}
	case key.Matches(msg, m.keys.Clear):
		m.world.Clear()
	case key.Matches(msg, m.keys.Reset):
		m.world.Reset(0)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse paints with the left button and erases with the right one,
// on press and while dragging.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	x, y := CellAt(msg.X, msg.Y)
	if y >= m.world.Size().H {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.world.Paint(x, y)
	case tea.MouseButtonRight:
		m.world.Brush(x, y, m.world.BrushRadius(), sand.Air)
	}
}

// View renders the grid, the status bar and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderGrid(m.world.Grid()) + "\n" +
		renderStatus(m.world, m.clock.TPS(), m.paused) + "\n" +
		m.help.View(m.keys)
}

// resize returns a world of the new size carrying over the overlapping cells
// and the authoring settings of w.
func resize(w *sand.World, width, height int) *sand.World {
	cfg := w.Config()
	cfg.Width, cfg.Height = width, height
	next := sand.NewWithConfig(cfg)
	g := w.Grid()
	for y := 0; y < min(height, g.Height()); y++ {
		for x := 0; x < min(width, g.Width()); x++ {
			if m := g.At(x, y); m != sand.Air {
				next.Place(x, y, m)
			}
		}
	}
	return next
}

// Run starts an interactive sandbox on the local terminal.
func Run(world *sand.World, tps int) error {
	p := tea.NewProgram(NewModel(world, tps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
