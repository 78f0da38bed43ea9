// Package coinrush implements Coin Rush: collect coins, dodge bouncing
// enemies, grab SLOW and SHIELD power-ups and climb stages before the clock
// runs out.
package coinrush

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
	"github.com/vovakirdan/coinrush/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "coinrush"

// simEpoch anchors simulation time. Tick n runs at simEpoch + n*interval,
// so a run depends only on the seed and the input sequence.
var simEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Minimum terminal size for a readable field.
const (
	minScreenW = 60
	minScreenH = 16
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	logger           *log.Logger
)

// SetConfigPath sets the YAML file loaded on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty the title screen starts on.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Session to the platform's fixed-tick game interface.
type Game struct {
	session *Session
	tuning  *config.CoinRushConfig // nil loads from configPath on Reset
	log     *log.Logger

	interval time.Duration
	tick     uint64
	now      time.Time

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game that loads its tuning on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.CoinRushConfig) *Game {
	return &Game{tuning: &cfg}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Coin Rush"
}

// Reset builds a fresh session on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	if g.tuning == nil {
		tuning, err := config.LoadCoinRush(configPath)
		if err != nil {
			g.log.Warn("using default tuning", "error", err)
			tuning = config.DefaultCoinRushConfig()
		}
		g.tuning = &tuning
	}

	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		g.log.Warn("unknown difficulty, using normal", "error", err)
		preset = config.DifficultyNormal
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.interval = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.now = simEpoch

	g.session = NewSession(SessionConfig{
		Tuning: *g.tuning,
		Preset: preset,
		Seed:   cfg.Seed,
		Logger: g.log,
	})
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("game reset", "seed", cfg.Seed, "tick_rate", tickRate, "difficulty", preset)
}

// Resize adapts to a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies the frame's key edges, then advances the session one tick.
// Releases go first, so a key released and pressed again within one frame
// ends up held.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Released {
		g.session.Release(a)
	}

	// Simulation time stands still while the window is too small. Only
	// quit gets through; every other press is dropped since the field
	// cannot be seen.
	if g.tooSmall {
		for _, a := range in.Pressed {
			if a == core.ActionQuit {
				g.session.Press(a, g.now)
			}
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.now = core.TickTime(simEpoch, g.tick, g.interval)

	for _, a := range in.Pressed {
		g.session.Press(a, g.now)
	}
	g.session.Tick(g.now)

	return core.StepResult{State: g.State()}
}

// State returns the platform-facing status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.tooSmall,
		Exit:     g.session.Terminated(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Now returns the simulation time of the last tick.
func (g *Game) Now() time.Time {
	return g.now
}
