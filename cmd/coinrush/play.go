package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
	"github.com/vovakirdan/coinrush/internal/games/coinrush"
	"github.com/vovakirdan/coinrush/internal/platform/tui"
	"github.com/vovakirdan/coinrush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Coin Rush",
	Long: `Start the game on the title screen.

Controls:
  Arrows/WASD  - Move
  E / N / H    - Pick EASY, NORMAL or HARD on the title screen
  Enter        - Start
  R            - Restart (reset field on title)
  Esc          - Quit after game over
  Ctrl+C       - Quit at any time

Examples:
  coinrush play
  coinrush play --difficulty easy
  coinrush play --config ./my-coinrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Validate up front so a bad file is reported before the alt screen opens
	tuning, err := config.LoadCoinRush(flagConfig)
	if err != nil {
		return err
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size, 80x24 when stdout is not a terminal
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path, difficulty and logger before creation
	coinrush.SetConfigPath(flagConfig)
	coinrush.SetDifficultyPreset(flagDifficulty)
	coinrush.SetLogger(logger)

	if !registry.Exists(coinrush.ID) {
		return fmt.Errorf("game %q is not registered", coinrush.ID)
	}
	game, err := registry.Create(coinrush.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{
		Logger:      logger,
		HoldInitial: tuning.Input.HoldInitial(),
		HoldRepeat:  tuning.Input.HoldRepeat(),
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger builds the structured logger. Without a path logs are discarded,
// since the terminal belongs to the game.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinrush",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
