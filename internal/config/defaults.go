package config

import (
	_ "embed"
)

//go:embed defaults/coinrush.yaml
var defaultCoinRushYAML []byte

// DefaultCoinRushConfig returns the built-in Coin Rush configuration.
// It mirrors defaults/coinrush.yaml and is used when no YAML can be read.
func DefaultCoinRushConfig() CoinRushConfig {
	return CoinRushConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      600,
			UIBarHeight: 40,
		},
		Spawn: SpawnConfig{
			Margin:   20,
			TopInset: 60,
		},
		Player: PlayerConfig{
			Size:            26,
			Speed:           5,
			Lives:           3,
			HitInvincibleMs: 900,
			Knockback:       20,
		},
		Coins: CoinConfig{
			Count: 12,
			Size:  16,
			Score: 100,
		},
		Enemies: EnemyConfig{
			Size:        24,
			AddPerStage: 1,
		},
		Items: ItemConfig{
			Size:             18,
			SlowMultiplier:   0.45,
			BonusEveryStages: 3,
		},
		Stage: StageConfig{
			ScoreStep:  800,
			MaxStage:   30,
			SpeedScale: 0.06,
		},
		Input: InputConfig{
			HoldInitialMs: 320,
			HoldRepeatMs:  90,
		},
		Difficulty: map[DifficultyPreset]Profile{
			DifficultyEasy: {
				Label:            "EASY",
				TimeLimitSec:     75,
				StartEnemies:     3,
				EnemySpeedMin:    2,
				EnemySpeedMax:    3,
				ItemSpawnMinMs:   2800, // Items show up often
				ItemSpawnMaxMs:   5200,
				SlowDurationMs:   6000,
				ShieldDurationMs: 5500,
			},
			DifficultyNormal: {
				Label:            "NORMAL",
				TimeLimitSec:     60,
				StartEnemies:     4,
				EnemySpeedMin:    2,
				EnemySpeedMax:    4,
				ItemSpawnMinMs:   4000,
				ItemSpawnMaxMs:   7500,
				SlowDurationMs:   5000,
				ShieldDurationMs: 4500,
			},
			DifficultyHard: {
				Label:            "HARD",
				TimeLimitSec:     45,
				StartEnemies:     6,
				EnemySpeedMin:    3,
				EnemySpeedMax:    5,
				ItemSpawnMinMs:   5200, // Items are rare and short
				ItemSpawnMaxMs:   9800,
				SlowDurationMs:   4200,
				ShieldDurationMs: 3500,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCoinRushYAML
}
