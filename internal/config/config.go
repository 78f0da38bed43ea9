// Package config provides YAML-based game tuning and the difficulty profile
// table for Coin Rush.
package config

import (
	"fmt"
	"strings"
	"time"
)

// CoinRushConfig contains every tunable of the game.
// All lengths are in field units (the playfield is Field.Width x Field.Height)
// and all durations are in milliseconds unless the name says otherwise.
type CoinRushConfig struct {
	Field      FieldConfig                  `yaml:"field"`
	Spawn      SpawnConfig                  `yaml:"spawn"`
	Player     PlayerConfig                 `yaml:"player"`
	Coins      CoinConfig                   `yaml:"coins"`
	Enemies    EnemyConfig                  `yaml:"enemies"`
	Items      ItemConfig                   `yaml:"items"`
	Stage      StageConfig                  `yaml:"stage"`
	Input      InputConfig                  `yaml:"input"`
	Difficulty map[DifficultyPreset]Profile `yaml:"difficulty"`
}

// FieldConfig defines the playfield and its header band.
type FieldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	UIBarHeight int `yaml:"ui_bar_height"` // Top band reserved for the HUD
}

// SpawnConfig defines the insets used when placing new entities.
type SpawnConfig struct {
	Margin   int `yaml:"margin"`    // Left, right and bottom inset
	TopInset int `yaml:"top_inset"` // Top inset, keeps spawns clear of the HUD
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Size            int `yaml:"size"`
	Speed           int `yaml:"speed"` // Units per tick per held direction
	Lives           int `yaml:"lives"`
	HitInvincibleMs int `yaml:"hit_invincible_ms"`
	Knockback       int `yaml:"knockback"` // Offset applied per axis on hit
}

// HitInvincible returns the post-hit grace period.
func (p PlayerConfig) HitInvincible() time.Duration {
	return time.Duration(p.HitInvincibleMs) * time.Millisecond
}

// CoinConfig defines the coin collection.
type CoinConfig struct {
	Count int `yaml:"count"`
	Size  int `yaml:"size"`
	Score int `yaml:"score"` // Points per coin
}

// EnemyConfig defines enemies.
type EnemyConfig struct {
	Size        int `yaml:"size"`
	AddPerStage int `yaml:"add_per_stage"`
}

// ItemConfig defines power-up items.
type ItemConfig struct {
	Size             int     `yaml:"size"`
	SlowMultiplier   float64 `yaml:"slow_multiplier"`    // Enemy speed factor while SLOW is active
	BonusEveryStages int     `yaml:"bonus_every_stages"` // Guaranteed item on every Nth stage
}

// StageConfig defines stage progression.
type StageConfig struct {
	ScoreStep  int     `yaml:"score_step"`  // Score between two stage-ups
	MaxStage   int     `yaml:"max_stage"`   // Progression stops here
	SpeedScale float64 `yaml:"speed_scale"` // Enemy speed added per stage above 1
}

// InputConfig tunes the key-hold emulation used on terminals that only
// report key presses.
type InputConfig struct {
	HoldInitialMs int `yaml:"hold_initial_ms"` // Hold time after a single press
	HoldRepeatMs  int `yaml:"hold_repeat_ms"`  // Hold time once auto-repeat was seen
}

// HoldInitial returns the hold time after a single press.
func (c InputConfig) HoldInitial() time.Duration {
	return time.Duration(c.HoldInitialMs) * time.Millisecond
}

// HoldRepeat returns the hold time once key auto-repeat was observed.
func (c InputConfig) HoldRepeat() time.Duration {
	return time.Duration(c.HoldRepeatMs) * time.Millisecond
}

// Profile is the immutable parameter set of one difficulty level.
type Profile struct {
	Label            string `yaml:"label"`
	TimeLimitSec     int    `yaml:"time_limit_sec"`
	StartEnemies     int    `yaml:"start_enemies"`
	EnemySpeedMin    int    `yaml:"enemy_speed_min"`
	EnemySpeedMax    int    `yaml:"enemy_speed_max"`
	ItemSpawnMinMs   int    `yaml:"item_spawn_min_ms"`
	ItemSpawnMaxMs   int    `yaml:"item_spawn_max_ms"`
	SlowDurationMs   int    `yaml:"slow_duration_ms"`
	ShieldDurationMs int    `yaml:"shield_duration_ms"`
}

// TimeLimit returns the session length.
func (p Profile) TimeLimit() time.Duration {
	return time.Duration(p.TimeLimitSec) * time.Second
}

// SlowDuration returns how long a SLOW pickup lasts.
func (p Profile) SlowDuration() time.Duration {
	return time.Duration(p.SlowDurationMs) * time.Millisecond
}

// ShieldDuration returns how long a SHIELD pickup lasts.
func (p Profile) ShieldDuration() time.Duration {
	return time.Duration(p.ShieldDurationMs) * time.Millisecond
}

// ItemSpawnText formats the item spawn interval in whole seconds, e.g. "4-7s".
func (p Profile) ItemSpawnText() string {
	return fmt.Sprintf("%d-%ds", p.ItemSpawnMinMs/1000, p.ItemSpawnMaxMs/1000)
}

// EffectText formats both effect durations in whole seconds.
func (p Profile) EffectText() string {
	return fmt.Sprintf("SLOW %ds, SHIELD %ds", p.SlowDurationMs/1000, p.ShieldDurationMs/1000)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a user-supplied name into a preset.
// The empty string selects NORMAL.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal", "n":
		return DifficultyNormal, nil
	case "easy", "e":
		return DifficultyEasy, nil
	case "hard", "h":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
