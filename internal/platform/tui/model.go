package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Terminals only report presses, so a held key shows up as one press, a pause
// of up to the keyboard's repeat delay, then a stream of repeats.
const (
	// initialHoldDelay covers the gap between the first press and the first repeat.
	initialHoldDelay = 500 * time.Millisecond
	// repeatHoldDelay covers the gap between two repeats.
	repeatHoldDelay = 120 * time.Millisecond
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model
	logger *log.Logger

	pressed     core.InputFrame     // One-shot actions for the next tick
	held        map[core.Action]int // Latched movement actions, in ticks remaining
	initialHold int
	repeatHold  int

	gameState core.GameState
	ticks     int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:      cfg,
		keys:        NewKeyMapper(),
		help:        h,
		logger:      logger,
		pressed:     core.NewInputFrame(),
		held:        make(map[core.Action]int),
		initialHold: holdTicks(initialHoldDelay, cfg.TickRate),
		repeatHold:  holdTicks(repeatHoldDelay, cfg.TickRate),
	}
}

// holdTicks converts a hold duration to whole ticks, at least one.
func holdTicks(d time.Duration, rate int) int {
	return max(int(d/tickInterval(rate)), 1)
}

func playfieldHeight(termH int) int {
	return max(termH-helpHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "fps", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "ticks", m.ticks)
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		// A new direction cancels the opposite latch so reversals are immediate
		delete(m.held, opposite(action))
		if remaining, ok := m.held[action]; ok {
			m.held[action] = max(remaining, m.repeatHold)
		} else {
			m.held[action] = m.initialHold
		}
	case core.ActionNone:
	default:
		m.pressed.Set(action)
	}

	return m, nil
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// handleResize processes window resize events.
// The world has a fixed size, so the game keeps running and only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.currentFrame()

	result := m.game.Step(frame)
	m.logTransition(m.gameState, result.State)
	m.gameState = result.State
	m.ticks++

	m.pressed.Clear()

	return m, tickCmd(m.config.TickRate)
}

// currentFrame merges one-shot presses with latched movement keys and ages the latches.
func (m Model) currentFrame() core.InputFrame {
	frame := m.pressed.Clone()
	for action, remaining := range m.held {
		frame.Set(action)
		if remaining <= 1 {
			delete(m.held, action)
		} else {
			m.held[action] = remaining - 1
		}
	}
	return frame
}

// logTransition records lifecycle changes between two consecutive ticks.
func (m Model) logTransition(prev, next core.GameState) {
	id := m.game.ID()

	switch {
	case prev.GameOver && !next.GameOver:
		m.logger.Debug("round restarted", "game", id)
	case !prev.Started && next.Started:
		m.logger.Info("round started", "game", id)
	case !prev.GameOver && next.GameOver:
		if next.Won {
			m.logger.Info("round won", "game", id, "ticks", m.ticks)
		} else {
			m.logger.Info("round lost", "game", id, "ticks", m.ticks)
		}
	}

	if prev.Paused != next.Paused {
		m.logger.Debug("pause toggled", "game", id, "paused", next.Paused)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.GameKeys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
