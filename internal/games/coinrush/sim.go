package coinrush

import (
	"math"
	"time"

	"github.com/vovakirdan/coinrush/internal/core"
)

// Tick advances a run by one fixed step at simulation time now.
// It does nothing outside PLAYING. Later steps observe what earlier steps
// changed within the same tick.
func (s *Session) Tick(now time.Time) {
	if s.state != StatePlaying {
		return
	}

	s.movePlayer()
	s.moveEnemies(now)
	s.spawnItemIfDue(now)
	s.collectCoins()
	s.collectItems(now)
	s.checkHit(now)
	s.checkStageUp(now)
	s.checkTimeOver(now)
}

func (s *Session) movePlayer() {
	speed := s.cfg.Player.Speed
	dx, dy := 0, 0
	if s.left {
		dx -= speed
	}
	if s.right {
		dx += speed
	}
	if s.up {
		dy -= speed
	}
	if s.down {
		dy += speed
	}

	p := &s.player.Rect
	p.X = core.Clamp(p.X+dx, 0, s.cfg.Field.Width-p.W)
	p.Y = core.Clamp(p.Y+dy, s.cfg.Field.UIBarHeight, s.cfg.Field.Height-p.H)
}

// speedMultiplier combines stage scaling and the SLOW effect.
func (s *Session) speedMultiplier(now time.Time) float64 {
	mul := s.scaling.SpeedMultiplier(s.stage)
	if s.slowActive(now) {
		mul *= s.cfg.Items.SlowMultiplier
	}
	return mul
}

func (s *Session) moveEnemies(now time.Time) {
	mul := s.speedMultiplier(now)
	maxX := s.cfg.Field.Width
	minY := s.cfg.Field.UIBarHeight
	maxY := s.cfg.Field.Height

	for i := range s.enemies {
		e := &s.enemies[i]
		e.X += scaleStep(e.VX, mul)
		e.Y += scaleStep(e.VY, mul)

		if e.X < 0 {
			e.X = 0
			e.VX = -e.VX
		}
		if e.X > maxX-e.W {
			e.X = maxX - e.W
			e.VX = -e.VX
		}
		if e.Y < minY {
			e.Y = minY
			e.VY = -e.VY
		}
		if e.Y > maxY-e.H {
			e.Y = maxY - e.H
			e.VY = -e.VY
		}
	}
}

// scaleStep rounds v*mul half up. A result of zero becomes one unit in the
// direction of v, so enemies never stop.
func scaleStep(v int, mul float64) int {
	d := int(math.Floor(float64(v)*mul + 0.5))
	if d == 0 {
		if v > 0 {
			return 1
		}
		return -1
	}
	return d
}

func (s *Session) spawnItemIfDue(now time.Time) {
	if len(s.items) >= maxItemsOnField || now.Before(s.nextItemAt) {
		return
	}
	it := s.spawner.Item()
	s.items = append(s.items, it)
	s.scheduleItem(now)
	s.log.Debug("item spawned", "run", s.runID, "type", it.Type, "x", it.X, "y", it.Y)
}

// maxItemsOnField caps the item collection.
const maxItemsOnField = 1

func (s *Session) collectCoins() {
	for i := len(s.coins) - 1; i >= 0; i-- {
		if s.player.Intersects(s.coins[i].Rect) {
			s.score += s.cfg.Coins.Score
			s.coins[i] = s.spawner.Coin()
		}
	}
}

func (s *Session) collectItems(now time.Time) {
	for i := len(s.items) - 1; i >= 0; i-- {
		it := s.items[i]
		if !s.player.Intersects(it.Rect) {
			continue
		}
		switch it.Type {
		case ItemSlow:
			s.slowUntil = later(s.slowUntil, now.Add(s.profile.SlowDuration()))
		case ItemShield:
			s.shieldUntil = later(s.shieldUntil, now.Add(s.profile.ShieldDuration()))
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.log.Debug("item collected", "run", s.runID, "type", it.Type)
	}
}

func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func (s *Session) checkHit(now time.Time) {
	if s.invincible(now) || s.shieldActive(now) {
		return
	}

	for _, e := range s.enemies {
		if !s.player.Intersects(e.Rect) {
			continue
		}
		s.lives--
		s.lastHit = now

		kb := s.cfg.Player.Knockback
		p := &s.player.Rect
		p.X = core.Clamp(p.X+s.rng.Sign()*kb, 0, s.cfg.Field.Width-p.W)
		p.Y = core.Clamp(p.Y+s.rng.Sign()*kb, s.cfg.Field.UIBarHeight, s.cfg.Field.Height-p.H)

		s.log.Debug("player hit", "run", s.runID, "lives", s.lives)
		if s.lives <= 0 {
			s.lives = 0
			s.endRun(ReasonLives, now)
		}
		// One life per tick at most, even if knockback lands on another enemy
		return
	}
}

func (s *Session) checkStageUp(now time.Time) {
	for s.score >= s.nextStage && s.scaling.CanAdvance(s.stage) {
		s.stage++
		s.nextStage = s.scaling.NextThreshold(s.nextStage)

		for range s.cfg.Enemies.AddPerStage {
			s.enemies = append(s.enemies, s.spawner.Enemy(s.profile))
		}

		bonus := s.stage%s.cfg.Items.BonusEveryStages == 0 && len(s.items) < maxItemsOnField
		if bonus {
			s.items = append(s.items, s.spawner.Item())
			s.scheduleItem(now)
		}

		s.log.Info("stage up",
			"run", s.runID,
			"stage", s.stage,
			"enemies", len(s.enemies),
			"next", s.nextStage,
			"bonus_item", bonus)
	}
}

func (s *Session) checkTimeOver(now time.Time) {
	if s.remainingSec(now) <= 0 {
		s.endRun(ReasonTime, now)
	}
}

// remainingSec counts whole elapsed seconds against the time limit.
func (s *Session) remainingSec(now time.Time) int {
	elapsed := int(now.Sub(s.startedAt) / time.Second)
	return max(0, s.profile.TimeLimitSec-elapsed)
}

func (s *Session) invincible(now time.Time) bool {
	return !s.lastHit.IsZero() && now.Sub(s.lastHit) < s.cfg.Player.HitInvincible()
}

func (s *Session) slowActive(now time.Time) bool {
	return now.Before(s.slowUntil)
}

func (s *Session) shieldActive(now time.Time) bool {
	return now.Before(s.shieldUntil)
}
