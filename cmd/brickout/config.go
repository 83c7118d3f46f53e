package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in YAML configuration. Save it to
~/.brickout/configs/brickout.yaml or pass it with --config to override values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
