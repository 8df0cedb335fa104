package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/core"
	"github.com/vovakirdan/tankjump/internal/game"
	"github.com/vovakirdan/tankjump/internal/loop"
)

// helpRows is the number of rows below the screen buffer.
const helpRows = 1

// Model is the Bubble Tea model for running Tank Jump.
type Model struct {
	game     *game.Game
	snap     game.Snapshot
	world    core.Rect
	screen   *core.Screen
	pacer    *loop.Pacer
	controls *heldControls
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model for the game.
// world is the level area scaled to fit the terminal.
func NewModel(g *game.Game, world core.Rect, controls config.ControlsConfig, pacer *loop.Pacer, width, height int) Model {
	h := help.New()
	h.Width = width

	return Model{
		game:     g,
		snap:     g.Snapshot(),
		world:    world,
		screen:   core.NewScreen(width, core.Max(height-helpRows, 1)),
		pacer:    pacer,
		controls: newHeldControls(controls.ReleaseAfterTicks),
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pacer.Budget())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Controls take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.controls.Press(action)
	}
	return m, nil
}

// handleResize processes window resize events. The world is rescaled,
// the simulation is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick and schedules the next one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.game.Step(m.controls.Frame())
	m.snap = m.game.Snapshot()

	wait := m.pacer.Wait(time.Since(time.Time(msg)))
	return m, tickCmd(wait)
}

// Snapshot returns the last completed snapshot.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.snap, m.world, m.pacer.Missed())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game.
func Run(g *game.Game, world core.Rect, controls config.ControlsConfig, pacer *loop.Pacer, width, height int) error {
	model := NewModel(g, world, controls, pacer, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
