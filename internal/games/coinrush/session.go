package coinrush

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

// State is the session phase.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

// String returns a lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reasons a run ended.
const (
	ReasonLives = "lives"
	ReasonTime  = "time"
)

// SessionConfig configures a new session.
type SessionConfig struct {
	Tuning config.CoinRushConfig
	Preset config.DifficultyPreset
	Seed   int64
	Logger *log.Logger // nil discards
}

// Session owns the whole game state: entities, timers and the title /
// playing / game-over machine.
//
// A session is not safe for concurrent use. Ticks, input and View must be
// called from one goroutine; the platform serializes them on its update loop.
type Session struct {
	cfg      config.CoinRushConfig
	profiles config.ProfileTable
	scaling  config.StageScaling
	rng      *RNG
	spawner  *Spawner
	log      *log.Logger

	preset  config.DifficultyPreset
	profile config.Profile
	state   State

	score     int
	lives     int
	stage     int
	nextStage int // Score needed for the next stage-up

	startedAt   time.Time
	lastHit     time.Time // Zero until the first hit of a run
	slowUntil   time.Time
	shieldUntil time.Time
	nextItemAt  time.Time

	up, down, left, right bool

	player  Player
	coins   []Coin
	enemies []Enemy
	items   []Item

	runID      string
	overReason string
	terminated bool
}

// NewSession creates a session on the title screen.
func NewSession(sc SessionConfig) *Session {
	logger := sc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := NewRNG(sc.Seed)
	s := &Session{
		cfg:      sc.Tuning,
		profiles: config.NewProfileTable(sc.Tuning),
		scaling:  config.NewStageScaling(sc.Tuning.Stage),
		rng:      rng,
		spawner:  NewSpawner(rng, sc.Tuning),
		log:      logger,
	}
	s.preset, s.profile = s.profiles.Lookup(sc.Preset)
	s.initToTitle()
	return s
}

// initToTitle rebuilds a fresh title screen under the current profile.
func (s *Session) initToTitle() {
	s.state = StateTitle
	s.score = 0
	s.lives = s.cfg.Player.Lives
	s.stage = 1
	s.nextStage = s.scaling.FirstThreshold()

	s.up, s.down, s.left, s.right = false, false, false, false

	s.slowUntil = time.Time{}
	s.shieldUntil = time.Time{}
	s.nextItemAt = time.Time{}
	s.overReason = ""

	s.centerPlayer()
	s.items = s.items[:0]
	s.buildCoins()
	s.buildEnemies(s.profile.StartEnemies)
}

// startRun resets scorekeeping and the field, then enters PLAYING.
// Held directions survive a restart.
func (s *Session) startRun(now time.Time) {
	s.score = 0
	s.lives = s.cfg.Player.Lives
	s.stage = 1
	s.nextStage = s.scaling.FirstThreshold()

	s.buildCoins()
	s.buildEnemies(s.profile.StartEnemies)
	s.centerPlayer()

	s.state = StatePlaying
	s.startedAt = now
	s.lastHit = time.Time{}
	s.slowUntil = time.Time{}
	s.shieldUntil = time.Time{}
	s.overReason = ""

	s.items = s.items[:0]
	s.scheduleItem(now)

	s.runID = uuid.NewString()
	s.log.Info("run started",
		"run", s.runID,
		"difficulty", s.profile.Label,
		"enemies", len(s.enemies),
		"time_limit", s.profile.TimeLimit())
}

func (s *Session) centerPlayer() {
	size := s.cfg.Player.Size
	s.player = Player{Rect: core.NewRect(
		s.cfg.Field.Width/2-size/2,
		s.cfg.Field.Height/2-size/2,
		size, size,
	)}
}

func (s *Session) buildCoins() {
	s.coins = s.coins[:0]
	for range s.cfg.Coins.Count {
		s.coins = append(s.coins, s.spawner.Coin())
	}
}

func (s *Session) buildEnemies(count int) {
	s.enemies = s.enemies[:0]
	for range count {
		s.enemies = append(s.enemies, s.spawner.Enemy(s.profile))
	}
}

func (s *Session) scheduleItem(now time.Time) {
	s.nextItemAt = now.Add(s.spawner.ItemDelay(s.profile))
}

// SelectDifficulty switches the profile and rebuilds the title screen.
// It only has an effect on the title screen.
func (s *Session) SelectDifficulty(preset config.DifficultyPreset) bool {
	if s.state != StateTitle {
		return false
	}
	p, ok := s.profiles.Get(preset)
	if !ok {
		return false
	}
	s.preset, s.profile = preset, p
	s.initToTitle()
	s.log.Info("difficulty selected", "difficulty", p.Label)
	return true
}

// ResetToTitle re-randomizes the title field without changing difficulty.
func (s *Session) ResetToTitle() bool {
	if s.state != StateTitle {
		return false
	}
	s.initToTitle()
	return true
}

// Start begins a run from the title screen.
func (s *Session) Start(now time.Time) bool {
	if s.state != StateTitle {
		return false
	}
	s.startRun(now)
	return true
}

// Restart begins a new run with the same difficulty while playing or after
// game over.
func (s *Session) Restart(now time.Time) bool {
	if s.state == StateTitle {
		return false
	}
	if s.state == StatePlaying {
		s.log.Info("run abandoned", "run", s.runID, "score", s.score, "stage", s.stage)
	}
	s.startRun(now)
	return true
}

// Terminate asks the program to end. Only honored after game over.
func (s *Session) Terminate() bool {
	if s.state != StateGameOver {
		return false
	}
	s.terminated = true
	s.log.Info("terminate requested", "run", s.runID)
	return true
}

// Terminated reports whether the player asked to leave.
func (s *Session) Terminated() bool {
	return s.terminated
}

// Press handles a key press edge, gated by state.
func (s *Session) Press(a core.Action, now time.Time) {
	switch s.state {
	case StateTitle:
		switch a {
		case core.ActionEasy:
			s.SelectDifficulty(config.DifficultyEasy)
		case core.ActionNormal:
			s.SelectDifficulty(config.DifficultyNormal)
		case core.ActionHard:
			s.SelectDifficulty(config.DifficultyHard)
		case core.ActionConfirm:
			s.Start(now)
		case core.ActionRestart:
			s.ResetToTitle()
		}
	case StatePlaying:
		if a.IsDirection() {
			s.setIntent(a, true)
			return
		}
		if a == core.ActionRestart {
			s.Restart(now)
		}
	case StateGameOver:
		switch a {
		case core.ActionRestart:
			s.Restart(now)
		case core.ActionQuit:
			s.Terminate()
		}
	}
}

// Release handles a key release edge. Releases are honored in every state
// so a key let go on another screen never stays stuck.
func (s *Session) Release(a core.Action) {
	if a.IsDirection() {
		s.setIntent(a, false)
	}
}

func (s *Session) setIntent(a core.Action, held bool) {
	switch a {
	case core.ActionUp:
		s.up = held
	case core.ActionDown:
		s.down = held
	case core.ActionLeft:
		s.left = held
	case core.ActionRight:
		s.right = held
	}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Difficulty returns the active preset.
func (s *Session) Difficulty() config.DifficultyPreset {
	return s.preset
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// RunID returns the ID of the current or last run, empty before the first.
func (s *Session) RunID() string {
	return s.runID
}

// endRun moves to GAME_OVER once per run.
func (s *Session) endRun(reason string, now time.Time) {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.overReason = reason
	s.log.Info("game over",
		"run", s.runID,
		"reason", reason,
		"score", s.score,
		"stage", s.stage,
		"duration", now.Sub(s.startedAt))
}
