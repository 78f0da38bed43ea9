package coinrush

import (
	"testing"
	"time"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

const tickInterval = time.Second / 60

// newPlayingSession starts a run at simEpoch with no enemies and every coin
// parked in the bottom right corner, away from the centered player.
func newPlayingSession(t *testing.T, preset config.DifficultyPreset) *Session {
	t.Helper()
	s := NewSession(SessionConfig{
		Tuning: config.DefaultCoinRushConfig(),
		Preset: preset,
		Seed:   7,
	})
	if !s.Start(simEpoch) {
		t.Fatal("Start() refused on the title screen")
	}
	s.enemies = s.enemies[:0]
	for i := range s.coins {
		s.coins[i] = Coin{Rect: core.NewRect(760, 560, 16, 16)}
	}
	return s
}

// at returns the simulation time d after the run started.
func at(d time.Duration) time.Time {
	return simEpoch.Add(d)
}

// overlapping returns an enemy placed exactly on the player, moving slowly.
func overlapping(s *Session) Enemy {
	r := s.player.Rect
	return Enemy{Rect: core.NewRect(r.X, r.Y, 24, 24), VX: 2, VY: 2}
}
