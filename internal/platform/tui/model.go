package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Game is the frame-driven game the platform runs.
// *snake.Game implements it.
type Game interface {
	Tick(f *core.Frame)
	Mode() snake.Mode
	Score() int
}

// snapshotter is implemented by games that can describe their state for
// debug logging.
type snapshotter interface {
	Snapshot() snake.Snapshot
}

// Summary describes a finished session.
type Summary struct {
	Rounds    int // Rounds that ended in death
	BestScore int
	LastScore int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	title    string
	tickRate int

	pending  core.Action // Latest key since the previous tick
	lastTick time.Time
	lastMode snake.Mode
	termW    int
	termH    int
	summary  Summary
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg config.Config, logger *log.Logger) Model {
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.Display.Width, cfg.Display.Height),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		title:    cfg.Display.Title,
		tickRate: cfg.Display.TickRate,
		lastMode: game.Mode(),
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		tickCmd(m.tickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey keeps the latest recognised key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsInterrupt(msg) {
		m.logger.Debug("interrupted", "mode", m.game.Mode())
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.Frame{
		Surface:     m.screen,
		FrameTimeMs: elapsedMs(m.lastTick, now),
		Key:         m.pending,
	}
	m.lastTick = now
	m.pending = core.ActionNone

	m.game.Tick(&frame)
	m.trackMode()

	if frame.Quitting {
		m.logger.Debug("quit requested", "mode", m.game.Mode())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// trackMode logs transitions and records finished rounds.
func (m *Model) trackMode() {
	mode := m.game.Mode()
	if mode == m.lastMode {
		return
	}

	score := m.game.Score()
	m.logger.Debug("mode changed", "from", m.lastMode, "to", mode, "score", score)
	if s, ok := m.game.(snapshotter); ok {
		m.logger.Debug("state", "snapshot", s.Snapshot())
	}

	if m.lastMode == snake.ModePlaying && mode == snake.ModeEnd {
		m.summary.Rounds++
		m.summary.LastScore = score
		m.summary.BestScore = max(m.summary.BestScore, score)
	}
	m.lastMode = mode
}

// tooSmall reports whether the terminal cannot show the whole grid.
// An unknown size (no resize message yet) counts as big enough.
func (m Model) tooSmall() bool {
	if m.termW == 0 || m.termH == 0 {
		return false
	}
	return m.termW < m.screen.Width() || m.termH < m.screen.Height()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize to continue, ctrl+c to exit.",
			m.screen.Width(), m.screen.Height(), m.termW, m.termH)
	}

	view := RenderScreen(m.screen)
	if m.termH > m.screen.Height() {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Summary returns the session statistics collected so far.
func (m Model) Summary() Summary {
	return m.summary
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, cfg config.Config, logger *log.Logger) (Summary, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Summary{}, fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.Summary(), nil
	}
	return Summary{}, nil
}
