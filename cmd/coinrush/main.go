// coinrush is a terminal arcade game: collect coins, dodge enemies, survive the clock.
//
// Usage:
//
//	coinrush                 - Play (same as coinrush play)
//	coinrush play            - Play
//	coinrush list            - List registered games
//	coinrush profiles        - Show the difficulty table
//	coinrush config          - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <name>   - Preselect easy, normal or hard
//	--log <path>          - Write a structured log to a file
//	--log-level <level>   - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinrush",
	Short: "Coin Rush - collect coins and dodge enemies in your terminal",
	Long: `Coin Rush is a single-screen arcade game. Move with the arrow keys or
WASD, collect coins, dodge enemies and grab SLOW and SHIELD items before
the clock runs out.

Available commands:
  play      - Start the game (default)
  list      - Show registered games
  profiles  - Show the difficulty table
  config    - Print the default configuration

Examples:
  coinrush
  coinrush --difficulty hard
  coinrush play --seed 42 --log coinrush.log --log-level debug
  coinrush config > ~/.coinrush/configs/coinrush.yaml`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(configCmd)
}
