package coinrush

import (
	"time"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

// View is a read-only copy of everything the presentation layer draws.
// Slices are copies, so holding a View never aliases session state.
type View struct {
	State      State
	Difficulty config.DifficultyPreset
	Profile    config.Profile
	Field      config.FieldConfig
	ScoreStep  int // Points between stage-ups, for the title text
	OverReason string

	Score        int
	Lives        int
	Stage        int
	NextStageIn  int // Points left to the next stage
	RemainingSec int

	SlowLeftSec   int
	ShieldLeftSec int
	Slowed        bool
	Shielded      bool
	Invincible    bool
	PlayerVisible bool // False on the dark half of the post-hit blink

	Player  core.Rect
	Coins   []core.Rect
	Enemies []core.Rect
	Items   []Item
}

// View captures the session at time now.
func (s *Session) View(now time.Time) View {
	v := View{
		State:      s.state,
		Difficulty: s.preset,
		Profile:    s.profile,
		Field:      s.cfg.Field,
		ScoreStep:  s.cfg.Stage.ScoreStep,
		OverReason: s.overReason,

		Score:       s.score,
		Lives:       s.lives,
		Stage:       s.stage,
		NextStageIn: max(0, s.nextStage-s.score),

		Player:  s.player.Rect,
		Coins:   make([]core.Rect, len(s.coins)),
		Enemies: make([]core.Rect, len(s.enemies)),
		Items:   append([]Item(nil), s.items...),
	}
	for i, c := range s.coins {
		v.Coins[i] = c.Rect
	}
	for i, e := range s.enemies {
		v.Enemies[i] = e.Rect
	}

	// Outside a run the HUD shows the full limit
	if s.state != StatePlaying {
		v.RemainingSec = s.profile.TimeLimitSec
	} else {
		v.RemainingSec = s.remainingSec(now)
	}

	v.Slowed = s.slowActive(now)
	v.Shielded = s.shieldActive(now)
	v.Invincible = s.invincible(now)
	if v.Slowed {
		v.SlowLeftSec = int(s.slowUntil.Sub(now) / time.Second)
	}
	if v.Shielded {
		v.ShieldLeftSec = int(s.shieldUntil.Sub(now) / time.Second)
	}

	blinkPhase := now.UnixMilli() / 100
	v.PlayerVisible = !v.Invincible || blinkPhase%2 == 0
	return v
}
