package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinrush/internal/core"
	"github.com/vovakirdan/coinrush/internal/registry"
)

// Default key-hold windows, used when Options leaves them unset.
const (
	DefaultHoldInitial = 320 * time.Millisecond
	DefaultHoldRepeat  = 90 * time.Millisecond
)

// helpHeight is the number of rows reserved for the help footer.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tunes the platform layer.
type Options struct {
	Logger      *log.Logger // nil discards
	HoldInitial time.Duration
	HoldRepeat  time.Duration
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	clock      *core.FixedStep
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	log        *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenH = max(0, cfg.ScreenH-helpHeight)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	initial, repeat := opts.HoldInitial, opts.HoldRepeat
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		clock:      core.NewFixedStep(cfg.TickRate),
		holds:      NewHoldTracker(initial, repeat),
		inputFrame: core.NewInputFrame(),
		log:        logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"tick_rate", m.config.TickRate,
		"screen", [2]int{m.config.ScreenW, m.config.ScreenH})

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.log.Info("quit by user", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if action.IsDirection() {
		m.holds.Press(action, now)
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Games that can follow the size keep their state; others restart
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
		// A fresh game starts with nothing held and no backlog
		m.holds.Clear()
		m.clock.Reset()
		m.inputFrame.Clear()
	}
	m.log.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)
	return m, nil
}

// handleTick runs however many fixed steps are due at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Expired(now) {
		m.inputFrame.Release(a)
	}

	steps := m.clock.Advance(now)
	for range steps {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		// Clear input for next frame
		m.inputFrame.Clear()
		if m.gameState.Exit {
			break
		}
	}

	if m.gameState.Exit {
		m.log.Info("game exited", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
