// gridsnake is a snake game on a wrap-around grid with walls, bombs and
// power-ups, played in the terminal or simulated headless.
//
// Usage:
//
//	gridsnake play              - Play in the terminal
//	gridsnake simulate          - Run the autopilot without a terminal
//	gridsnake layouts           - List wall layouts
//	gridsnake config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Load a custom YAML config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--layout <name>       - Wall layout
//	--size <cells>        - Grid side length
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagSize       int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid Snake - a snake game with walls, bombs and power-ups",
	Long: `Grid Snake is a snake game on a wrap-around grid. Eating food raises a
wall somewhere on the board and may drop a power-up: potions make the
snake invincible, bombs clear the cells around them, shrink pills halve
the body and slow pills reset the speed.

Available commands:
  play      - Play in the terminal
  simulate  - Let the autopilot play without a terminal
  layouts   - Show the wall layouts
  config    - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --difficulty hard --layout box
  gridsnake simulate --frames 10000 --seed 42
  gridsnake config --difficulty easy > my.yaml
  gridsnake play --config my.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Wall layout (see 'gridsnake layouts')")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid side length in cells (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the file search path, the
// difficulty preset and the command-line overrides, in that order.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagLayout != "" {
		cfg.Grid.Layout = flagLayout
	}
	if flagSize > 0 {
		cfg.Grid.Size = flagSize
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}
