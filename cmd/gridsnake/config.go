package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, after the config
file, the difficulty preset and the command-line overrides are applied.
The output is valid YAML and can be edited and passed back with --config.

Config search order:
  --config <path>
  ~/.gridsnake/config.yaml
  ./configs/gridsnake.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
