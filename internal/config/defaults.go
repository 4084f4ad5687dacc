package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded YAML
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size:             32,
			Layout:           "perimeter",
			PlacementRetries: 20,
			PlacementMargin:  1,
		},
		Snake: SnakeConfig{
			InitialSpeed:    0.1,
			MinSpeed:        0.02,
			SpeedIncrement:  0.02,
			SpeedStep:       0.01,
			InvincibleTicks: 512,
		},
		Scoring: ScoringConfig{
			MultiplierTicks: 600, // 10 seconds at 60fps
		},
		Elements: ElementsConfig{
			AppearanceTicks: 512,
			SpawnChance:     0.5,
		},
		Bomb: BombConfig{
			FuseSteps: 512,
			FuseStep:  5 * time.Millisecond,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
