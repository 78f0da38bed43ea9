package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinrush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Writes the built-in configuration as YAML. Save it to
~/.coinrush/configs/coinrush.yaml or pass it with --config after editing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
