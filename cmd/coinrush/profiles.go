package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/platform/tui"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Show the difficulty table",
	Long: `Prints every difficulty profile and the stage rules of the active
configuration (honors --config).`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadCoinRush(flagConfig)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderProfiles(cfg))
	return nil
}
