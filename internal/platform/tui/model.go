package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// Simulation is the part of the game the terminal loop drives.
type Simulation interface {
	Step(in core.InputFrame, dt float64) core.StepResult
	Render(dst *core.Screen)
	Resize(bounds core.Rect)
	Done() bool
}

// Options configures a Model.
type Options struct {
	TickRate int

	// CellW and CellH are the pixel size of one terminal cell.
	CellW, CellH int

	// OnDone runs once when the game reports it is done.
	OnDone func()
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	sim        Simulation
	screen     *core.Screen
	opts       Options
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a model for a terminal of width x height cells. The
// bottom row is reserved for the help bar.
func NewModel(sim Simulation, width, height int, opts Options) Model {
	if opts.CellW <= 0 {
		opts.CellW = 8
	}
	if opts.CellH <= 0 {
		opts.CellH = 16
	}
	m := Model{
		sim:        sim,
		screen:     core.NewScreen(width, playRows(height)),
		opts:       opts,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = width
	sim.Resize(m.bounds())
	return m
}

func playRows(height int) int {
	return max(1, height-1)
}

// bounds is the play area in pixels covered by the screen buffer.
func (m Model) bounds() core.Rect {
	return core.NewRect(0, 0, m.screen.Width()*m.opts.CellW, m.screen.Height()*m.opts.CellH)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev := m.keys.mapKey(msg); ev != nil {
			m.inputFrame.Push(ev)
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := mapMouse(msg, m.opts.CellW, m.opts.CellH); ok {
			m.inputFrame.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The game keeps its state; bubbles outside the new area leave on
		// their next advance.
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		m.sim.Resize(m.bounds())
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick steps the simulation with the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.sim.Step(m.inputFrame, dt)
	m.inputFrame = core.NewInputFrame()

	if m.sim.Done() {
		m.quitting = true
		if m.opts.OnDone != nil {
			m.opts.OnDone()
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the local terminal.
func Run(sim Simulation, width, height int, opts Options) error {
	model := NewModel(sim, width, height, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
