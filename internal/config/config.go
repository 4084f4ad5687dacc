// Package config provides YAML-based simulation configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MaxGridSize is the largest grid the occupancy index supports.
const MaxGridSize = 128

// MinGridSize is the smallest grid that still leaves room inside the walls.
const MinGridSize = 8

// Config contains all configuration for the snake simulation.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Snake    SnakeConfig    `yaml:"snake"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Elements ElementsConfig `yaml:"elements"`
	Bomb     BombConfig     `yaml:"bomb"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
}

// GridConfig defines the board and placement parameters.
type GridConfig struct {
	Size             int    `yaml:"size"`
	Layout           string `yaml:"layout"`            // Registered wall layout name
	PlacementRetries int    `yaml:"placement_retries"` // Samples before a placement is deferred
	PlacementMargin  int    `yaml:"placement_margin"`  // Cells kept free along each edge
}

// SnakeConfig defines actor movement and status-effect parameters.
type SnakeConfig struct {
	InitialSpeed    float64 `yaml:"initial_speed"`   // Cells per tick; also the slow-pill baseline
	MinSpeed        float64 `yaml:"min_speed"`       // Floor for manual speed-down
	SpeedIncrement  float64 `yaml:"speed_increment"` // Added per food eaten
	SpeedStep       float64 `yaml:"speed_step"`      // Manual speed-up/down step
	InvincibleTicks int     `yaml:"invincible_ticks"`
}

// ScoringConfig defines the combo multiplier window.
type ScoringConfig struct {
	MultiplierTicks int `yaml:"multiplier_ticks"`
}

// ElementsConfig defines the interactive object lifecycle parameters.
type ElementsConfig struct {
	AppearanceTicks int     `yaml:"appearance_ticks"`
	SpawnChance     float64 `yaml:"spawn_chance"` // Probability that food spawns a new element
}

// BombConfig defines the detonation fuse.
type BombConfig struct {
	FuseSteps int           `yaml:"fuse_steps"`
	FuseStep  time.Duration `yaml:"fuse_step"`
}

// RuntimeConfig defines loop timing.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// TickDuration returns the wall-clock length of one simulation tick.
func (c Config) TickDuration() time.Duration {
	if c.Runtime.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Runtime.TickRate)
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.size must be in [%d, %d], got %d", MinGridSize, MaxGridSize, c.Grid.Size))
	}
	if c.Grid.PlacementRetries <= 0 {
		errs = append(errs, fmt.Errorf("grid.placement_retries must be positive, got %d", c.Grid.PlacementRetries))
	}
	if c.Grid.PlacementMargin < 0 || 2*c.Grid.PlacementMargin >= c.Grid.Size {
		errs = append(errs, fmt.Errorf("grid.placement_margin %d leaves no room on a %d grid", c.Grid.PlacementMargin, c.Grid.Size))
	}
	if c.Snake.InitialSpeed <= 0 || c.Snake.InitialSpeed >= 1 {
		errs = append(errs, fmt.Errorf("snake.initial_speed must be in (0, 1), got %v", c.Snake.InitialSpeed))
	}
	if c.Snake.MinSpeed <= 0 || c.Snake.MinSpeed > c.Snake.InitialSpeed {
		errs = append(errs, fmt.Errorf("snake.min_speed must be in (0, initial_speed], got %v", c.Snake.MinSpeed))
	}
	if c.Snake.InvincibleTicks < 16 {
		errs = append(errs, fmt.Errorf("snake.invincible_ticks must be at least 16, got %d", c.Snake.InvincibleTicks))
	}
	if c.Scoring.MultiplierTicks <= 0 {
		errs = append(errs, fmt.Errorf("scoring.multiplier_ticks must be positive, got %d", c.Scoring.MultiplierTicks))
	}
	if c.Elements.AppearanceTicks < 0 {
		errs = append(errs, fmt.Errorf("elements.appearance_ticks must not be negative, got %d", c.Elements.AppearanceTicks))
	}
	if c.Elements.SpawnChance < 0 || c.Elements.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("elements.spawn_chance must be in [0, 1], got %v", c.Elements.SpawnChance))
	}
	if c.Bomb.FuseSteps < 8 {
		errs = append(errs, fmt.Errorf("bomb.fuse_steps must be at least 8, got %d", c.Bomb.FuseSteps))
	}
	if c.Bomb.FuseStep <= 0 {
		errs = append(errs, fmt.Errorf("bomb.fuse_step must be positive, got %v", c.Bomb.FuseStep))
	}
	if c.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
