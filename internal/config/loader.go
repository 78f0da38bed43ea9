package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadCoinRush loads the Coin Rush configuration.
// Search order: customPath -> ~/.coinrush/configs/coinrush.yaml -> ./configs/coinrush.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. Difficulty entries are replaced whole and must be complete.
// A broken custom file is an error; broken user or local files are skipped.
func LoadCoinRush(customPath string) (CoinRushConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CoinRushConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CoinRushConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("coinrush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "coinrush.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCoinRushYAML)
	if err != nil {
		return DefaultCoinRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (CoinRushConfig, error) {
	cfg := DefaultCoinRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CoinRushConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CoinRushConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot use.
func (c CoinRushConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	check(c.Field.UIBarHeight >= 0 && c.Field.UIBarHeight < c.Field.Height, "ui_bar_height %d must be within the field", c.Field.UIBarHeight)
	check(c.Spawn.Margin >= 0 && c.Spawn.TopInset >= 0, "spawn insets must not be negative")
	check(c.Player.Size > 0 && c.Coins.Size > 0 && c.Enemies.Size > 0 && c.Items.Size > 0, "entity sizes must be positive")
	check(c.Player.Size <= c.Field.Width && c.Player.Size <= c.Field.Height-c.Field.UIBarHeight, "player size %d does not fit the field", c.Player.Size)
	check(c.Player.Speed >= 0, "player speed must not be negative")
	check(c.Player.Lives > 0, "lives must be positive, got %d", c.Player.Lives)
	check(c.Player.HitInvincibleMs >= 0, "hit_invincible_ms must not be negative")
	check(c.Coins.Count >= 0, "coin count must not be negative")
	check(c.Enemies.AddPerStage >= 0, "enemies.add_per_stage must not be negative")
	check(c.Items.SlowMultiplier > 0 && c.Items.SlowMultiplier <= 1, "slow_multiplier must be in (0, 1], got %v", c.Items.SlowMultiplier)
	check(c.Items.BonusEveryStages > 0, "bonus_every_stages must be positive")
	check(c.Stage.ScoreStep > 0, "stage.score_step must be positive")
	check(c.Stage.MaxStage >= 1, "stage.max_stage must be at least 1")
	check(c.Stage.SpeedScale >= 0, "stage.speed_scale must not be negative")
	check(c.Input.HoldInitialMs > 0 && c.Input.HoldRepeatMs > 0, "input hold times must be positive")

	for _, preset := range Presets() {
		p, ok := c.Difficulty[preset]
		if !ok {
			errs = append(errs, fmt.Errorf("difficulty %q is missing", preset))
			continue
		}
		check(p.Label != "", "difficulty %q needs a label", preset)
		check(p.TimeLimitSec > 0, "difficulty %q: time_limit_sec must be positive", preset)
		check(p.StartEnemies >= 0, "difficulty %q: start_enemies must not be negative", preset)
		check(p.EnemySpeedMin > 0 && p.EnemySpeedMin <= p.EnemySpeedMax,
			"difficulty %q: enemy speed range [%d, %d] is invalid", preset, p.EnemySpeedMin, p.EnemySpeedMax)
		check(p.ItemSpawnMinMs > 0 && p.ItemSpawnMinMs <= p.ItemSpawnMaxMs,
			"difficulty %q: item spawn range [%d, %d] is invalid", preset, p.ItemSpawnMinMs, p.ItemSpawnMaxMs)
		check(p.SlowDurationMs > 0 && p.ShieldDurationMs > 0, "difficulty %q: effect durations must be positive", preset)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinrush", "configs", filename)
}
